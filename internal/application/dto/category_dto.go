package dto

import "time"

// CreateCategoryRequest criação de categoria (admin).
type CreateCategoryRequest struct {
	ParentID string `json:"parentId"`
	Name     string `json:"nome"`
	Slug     string `json:"slug"`
}

// UpdateCategoryRequest actualização de categoria (admin).
type UpdateCategoryRequest struct {
	Name   *string `json:"nome"`
	Slug   *string `json:"slug"`
	Status *string `json:"status"`
}

// CategoryResponse representação de uma categoria.
type CategoryResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parentId,omitempty"`
	Name      string    `json:"nome"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"actualizadoEm"`
}
