package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

func setupCheckout(t *testing.T, fee decimal.Decimal) (*CreateOrderUseCase, *fakeOrderRepo, *fakeProductRepo, *fakeNotifier) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Fuba de milho", Price: decimal.NewFromInt(500), Stock: decimal.NewFromInt(50), Status: "active", Unit: "kg"},
		&entity.Product{ID: "p2", Name: "Feijão catarino", Price: decimal.NewFromInt(1200), Stock: decimal.NewFromInt(4), Status: "active", Unit: "kg"},
		&entity.Product{ID: "p3", Name: "Produto retirado", Price: decimal.NewFromInt(100), Stock: decimal.NewFromInt(10), Status: "inactive"},
	)
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Email: "cliente@exemplo.ao", Role: entity.RoleCustomer})
	notifier := newFakeNotifier()

	uc := NewCreateOrderUseCase(
		&fakeTxRunner{orderRepo: orderRepo, productRepo: productRepo},
		userRepo, notifier, quietLogger(), fee,
	)
	return uc, orderRepo, productRepo, notifier
}

func TestCreateOrder_Checkout(t *testing.T) {
	uc, orderRepo, productRepo, notifier := setupCheckout(t, decimal.Zero)

	out, err := uc.CreateOrder(context.Background(), "u1", dto.CreateOrderRequest{
		Items:        []dto.OrderItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(3)}},
		DeliveryAddr: "Bairro Maianga, Luanda",
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDENTE", out.Estado)
	assert.Regexp(t, `^AGC-\d{4}-00001$`, out.Number)
	// cenário da especificação: 3 × 500 -> subtotal 1500, total 1500
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1500)))
	require.Len(t, out.History, 1, "entrada seed do histórico")
	assert.Equal(t, "PENDENTE", out.History[0].Estado)
	assert.Equal(t, "u1", out.History[0].Actor)

	// stock descontado na mesma transacção
	p, _ := productRepo.GetByID("p1")
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(47)))

	stored, _ := orderRepo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, stored.State, stored.LastHistory().Estado)

	select {
	case num := <-notifier.confirmations:
		assert.Equal(t, out.Number, num)
	case <-time.After(2 * time.Second):
		t.Fatal("email de confirmação não foi disparado")
	}
}

func TestCreateOrder_TotaisComTaxaDeEntrega(t *testing.T) {
	uc, _, _, _ := setupCheckout(t, decimal.NewFromInt(1000))

	out, err := uc.CreateOrder(context.Background(), "u1", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(2)},
			{ProductID: "p2", Quantity: decimal.NewFromInt(1)},
		},
		DeliveryAddr: "Benguela",
	})
	require.NoError(t, err)

	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(2200)))
	assert.True(t, out.DeliveryFee.Equal(decimal.NewFromInt(1000)))
	// total = subtotal + taxaEntrega - desconto
	assert.True(t, out.Total.Equal(decimal.NewFromInt(3200)))
}

func TestCreateOrder_NumeracaoSequencial(t *testing.T) {
	uc, _, _, _ := setupCheckout(t, decimal.Zero)
	req := dto.CreateOrderRequest{
		Items:        []dto.OrderItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}},
		DeliveryAddr: "Luanda",
	}

	first, err := uc.CreateOrder(context.Background(), "u1", req)
	require.NoError(t, err)
	second, err := uc.CreateOrder(context.Background(), "u1", req)
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, "AGC-"+itoaYear(year)+"-00001", first.Number)
	assert.Equal(t, "AGC-"+itoaYear(year)+"-00002", second.Number)
}

func itoaYear(y int) string {
	return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func TestCreateOrder_StockInsuficiente(t *testing.T) {
	uc, orderRepo, productRepo, _ := setupCheckout(t, decimal.Zero)

	_, err := uc.CreateOrder(context.Background(), "u1", dto.CreateOrderRequest{
		Items:        []dto.OrderItemRequest{{ProductID: "p2", Quantity: decimal.NewFromInt(10)}},
		DeliveryAddr: "Luanda",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	list, _ := orderRepo.List("", 10, 0)
	assert.Empty(t, list, "checkout abortado não deixa pedido")
	p, _ := productRepo.GetByID("p2")
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(4)), "stock intacto")
}

func TestCreateOrder_ProdutoInactivo(t *testing.T) {
	uc, _, _, _ := setupCheckout(t, decimal.Zero)

	_, err := uc.CreateOrder(context.Background(), "u1", dto.CreateOrderRequest{
		Items:        []dto.OrderItemRequest{{ProductID: "p3", Quantity: decimal.NewFromInt(1)}},
		DeliveryAddr: "Luanda",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := setupCheckout(t, decimal.Zero)

	casos := []dto.CreateOrderRequest{
		{DeliveryAddr: "Luanda"}, // sem itens
		{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}}},                            // sem endereço
		{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: decimal.Zero}}, DeliveryAddr: "Luanda"},            // quantidade zero
		{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(-2)}}, DeliveryAddr: "Luanda"},  // negativa
	}
	for _, in := range casos {
		_, err := uc.CreateOrder(context.Background(), "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
