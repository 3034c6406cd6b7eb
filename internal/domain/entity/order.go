package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActorSystem identificador do actor quando a transição não parte de um
// utilizador (ex. entrada inicial do histórico).
const ActorSystem = "sistema"

// Order representa uma compra de um cliente. O campo State tem de ser sempre
// igual ao Estado da última entrada do histórico; o histórico é append-only.
// Version suporta lock optimista nas transições concorrentes.
type Order struct {
	ID            string
	Number        string // AGC-<ano>-<sequência de 5 dígitos>
	UserID        string
	State         OrderState
	Items         []OrderItem
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal // Subtotal + DeliveryFee - Discount
	DeliveryAddr  string
	Notes         string
	History       []OrderHistory
	PaidAt        *time.Time // pagoEm
	PreparingAt   *time.Time // emPreparacaoEm
	InTransitAt   *time.Time // emTransitoEm
	DeliveredAt   *time.Time // entregueEm
	CanceledAt    *time.Time // canceladoEm
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem linha de um pedido. Subtotal = Quantity × UnitPrice, congelado no
// momento do checkout (o preço do catálogo pode mudar depois).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// OrderHistory registo imutável de uma transição: criado exactamente uma vez
// por transição, na mesma operação que actualiza o estado do pedido.
type OrderHistory struct {
	ID        string
	OrderID   string
	Estado    OrderState
	Nota      string
	Actor     string // user id ou ActorSystem
	CreatedAt time.Time
}

// RecalculateTotals recalcula os subtotais de linha e os agregados do pedido.
// Invariante: Total == Subtotal + DeliveryFee - Discount.
func (o *Order) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].Quantity.Mul(o.Items[i].UnitPrice)
		subtotal = subtotal.Add(o.Items[i].Subtotal)
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Add(o.DeliveryFee).Sub(o.Discount)
}

// StampLifecycle regista o timestamp do estado atingido. Cada campo é escrito
// no máximo uma vez na vida do pedido; revisitas (modo não estrito) não o
// sobrescrevem.
func (o *Order) StampLifecycle(state OrderState, at time.Time) {
	stamp := func(field **time.Time) {
		if *field == nil {
			t := at
			*field = &t
		}
	}
	switch state {
	case StatePago:
		stamp(&o.PaidAt)
	case StateEmPreparacao:
		stamp(&o.PreparingAt)
	case StateEmTransito:
		stamp(&o.InTransitAt)
	case StateEntregue:
		stamp(&o.DeliveredAt)
	case StateCancelado:
		stamp(&o.CanceledAt)
	}
}

// LastHistory devolve a entrada mais recente do histórico (ordem de inserção),
// ou nil se o histórico estiver vazio.
func (o *Order) LastHistory() *OrderHistory {
	if len(o.History) == 0 {
		return nil
	}
	return &o.History[len(o.History)-1]
}
