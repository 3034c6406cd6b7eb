package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest criação de produto (admin).
type CreateProductRequest struct {
	CategoryID  string          `json:"categoriaId"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Unit        string          `json:"unidade"`
	Stock       decimal.Decimal `json:"stock"`
	ImageURL    string          `json:"imagemUrl"`
	Origin      string          `json:"origem"`
}

// UpdateProductRequest actualização de produto (admin). Campos a nil/zero
// mantêm o valor actual.
type UpdateProductRequest struct {
	CategoryID  *string          `json:"categoriaId"`
	Name        *string          `json:"nome"`
	Description *string          `json:"descricao"`
	Price       *decimal.Decimal `json:"preco"`
	Unit        *string          `json:"unidade"`
	Stock       *decimal.Decimal `json:"stock"`
	ImageURL    *string          `json:"imagemUrl"`
	Origin      *string          `json:"origem"`
	Status      *string          `json:"status"`
}

// ProductResponse representação de um produto do catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoriaId"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Unit        string          `json:"unidade"`
	Stock       decimal.Decimal `json:"stock"`
	ImageURL    string          `json:"imagemUrl,omitempty"`
	Origin      string          `json:"origem,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"criadoEm"`
	UpdatedAt   time.Time       `json:"actualizadoEm"`
}

// ProductListResponse listagem paginada do catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
