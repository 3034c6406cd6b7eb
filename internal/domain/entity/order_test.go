package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_RecalculateTotals(t *testing.T) {
	o := &Order{
		Items: []OrderItem{
			{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(500)},
		},
	}
	o.RecalculateTotals()

	assert.True(t, o.Subtotal.Equal(decimal.NewFromInt(1500)), "subtotal = 3 × 500")
	assert.True(t, o.Total.Equal(decimal.NewFromInt(1500)), "sem taxa nem desconto, total == subtotal")
}

func TestOrder_RecalculateTotals_TaxaEDesconto(t *testing.T) {
	o := &Order{
		Items: []OrderItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1200)},
			{Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(300)},
		},
		DeliveryFee: decimal.NewFromInt(1000),
		Discount:    decimal.NewFromInt(400),
	}
	o.RecalculateTotals()

	require.True(t, o.Subtotal.Equal(decimal.NewFromInt(3900)))
	// total = subtotal + taxaEntrega - desconto
	assert.True(t, o.Total.Equal(decimal.NewFromInt(4500)))
	assert.True(t, o.Items[0].Subtotal.Equal(decimal.NewFromInt(2400)))
	assert.True(t, o.Items[1].Subtotal.Equal(decimal.NewFromInt(1500)))
}

func TestOrder_StampLifecycle_EscreveUmaVez(t *testing.T) {
	o := &Order{}
	primeiro := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	segundo := primeiro.Add(time.Hour)

	o.StampLifecycle(StatePago, primeiro)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, primeiro, *o.PaidAt)

	// revisita não sobrescreve o timestamp já gravado
	o.StampLifecycle(StatePago, segundo)
	assert.Equal(t, primeiro, *o.PaidAt)

	// PENDENTE não tem timestamp próprio
	o.StampLifecycle(StatePendente, segundo)
	assert.Nil(t, o.CanceledAt)
	assert.Nil(t, o.DeliveredAt)
}

func TestOrder_LastHistory(t *testing.T) {
	o := &Order{}
	assert.Nil(t, o.LastHistory())

	o.History = append(o.History,
		OrderHistory{Estado: StatePendente},
		OrderHistory{Estado: StatePago},
	)
	require.NotNil(t, o.LastHistory())
	assert.Equal(t, StatePago, o.LastHistory().Estado)
}
