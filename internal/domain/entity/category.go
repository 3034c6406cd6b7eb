package entity

import "time"

// Category representa uma categoria de produtos (hierárquica opcional).
type Category struct {
	ID        string
	ParentID  string // vazio se for raiz
	Name      string
	Slug      string // único, usado nas URLs do catálogo
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
