package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest linha do carrinho no checkout. O preço unitário é sempre
// relido do catálogo no servidor; o cliente só envia produto e quantidade.
type OrderItemRequest struct {
	ProductID string          `json:"produtoId"`
	Quantity  decimal.Decimal `json:"quantidade"`
}

// CreateOrderRequest checkout de um carrinho.
type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	DeliveryAddr string             `json:"enderecoEntrega"`
	Notes        string             `json:"observacoes"`
}

// ChangeOrderStateRequest corpo do PATCH de estado.
type ChangeOrderStateRequest struct {
	Estado string `json:"estado"`
	Nota   string `json:"nota"`
}

// OrderItemResponse linha de um pedido.
type OrderItemResponse struct {
	ProductID   string          `json:"produtoId"`
	ProductName string          `json:"produtoNome"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"precoUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderHistoryResponse entrada do histórico de um pedido.
type OrderHistoryResponse struct {
	Estado    string    `json:"estado"`
	Nota      string    `json:"nota,omitempty"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"criadoEm"`
}

// OrderResponse representação completa de um pedido. O histórico vem ordenado
// do mais recente para o mais antigo (ordem de exibição).
type OrderResponse struct {
	ID           string                 `json:"id"`
	Number       string                 `json:"numero"`
	UserID       string                 `json:"userId"`
	Estado       string                 `json:"estado"`
	Items        []OrderItemResponse    `json:"items"`
	Subtotal     decimal.Decimal        `json:"subtotal"`
	DeliveryFee  decimal.Decimal        `json:"taxaEntrega"`
	Discount     decimal.Decimal        `json:"desconto"`
	Total        decimal.Decimal        `json:"total"`
	DeliveryAddr string                 `json:"enderecoEntrega,omitempty"`
	Notes        string                 `json:"observacoes,omitempty"`
	History      []OrderHistoryResponse `json:"historico"`
	PaidAt       *time.Time             `json:"pagoEm,omitempty"`
	PreparingAt  *time.Time             `json:"emPreparacaoEm,omitempty"`
	InTransitAt  *time.Time             `json:"emTransitoEm,omitempty"`
	DeliveredAt  *time.Time             `json:"entregueEm,omitempty"`
	CanceledAt   *time.Time             `json:"canceladoEm,omitempty"`
	CreatedAt    time.Time              `json:"criadoEm"`
	UpdatedAt    time.Time              `json:"actualizadoEm"`
}

// OrderListResponse listagem paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// WhatsAppLinkResponse link de finalização do pedido por WhatsApp.
type WhatsAppLinkResponse struct {
	URL string `json:"url"`
}
