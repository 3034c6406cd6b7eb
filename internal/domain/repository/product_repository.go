package repository

import (
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define o porto de persistência para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devolve produtos activos; categoryID vazio lista todos.
	List(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock subtrai qty de forma condicional (stock >= qty).
	// Devolve domain.ErrInsufficientStock se não houver stock suficiente.
	DecrementStock(productID string, qty decimal.Decimal) error
}
