package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto agrícola do catálogo.
// Price em Kz (AOA); Stock é decrementado transaccionalmente no checkout.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // preço de venda em Kz
	Unit        string          // kg, saco, molho, unidade...
	Stock       decimal.Decimal
	ImageURL    string
	Origin      string // província de origem (Huambo, Bié, ...)
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
