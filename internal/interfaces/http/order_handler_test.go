package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
	apphttp "github.com/agriconecta/agriconecta-api/internal/interfaces/http"
	"github.com/agriconecta/agriconecta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobros mínimos para exercitar o PATCH de estado ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[string]*entity.Order
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

func (r *stubOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }

func (r *stubOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	c.History = append([]entity.OrderHistory(nil), o.History...)
	return &c, nil
}

func (r *stubOrderRepo) GetByNumber(string) (*entity.Order, error)            { return nil, nil }
func (r *stubOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *stubOrderRepo) List(entity.OrderState, int, int) ([]*entity.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) UpdateState(o *entity.Order) error {
	stored := r.orders[o.ID]
	c := *o
	c.History = stored.History
	c.Version = stored.Version + 1
	r.orders[o.ID] = &c
	return nil
}

func (r *stubOrderRepo) AppendHistory(h *entity.OrderHistory) error {
	stored := r.orders[h.OrderID]
	stored.History = append(stored.History, *h)
	return nil
}

func (r *stubOrderRepo) LatestNumberForYear(int) (string, error) { return "", nil }

type stubUserRepo struct{ user *entity.User }

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(*entity.User) error { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}
func (r *stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) Update(*entity.User) error               { return nil }
func (r *stubUserRepo) UpdateRole(string, entity.Role) error    { return nil }
func (r *stubUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (r *stubUserRepo) Delete(string) error                     { return nil }

type stubTxRunner struct{ orderRepo repository.OrderRepository }

func (r *stubTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(r.orderRepo, nil)
}

type noopNotifier struct{}

func (noopNotifier) SendOrderConfirmation(context.Context, *entity.Order, string) error { return nil }
func (noopNotifier) SendStateChangeEmail(context.Context, *entity.Order, entity.OrderState, entity.OrderState, string, string) error {
	return nil
}

func pendingOrder() *entity.Order {
	return &entity.Order{
		ID:      "o1",
		Number:  "AGC-2025-00001",
		UserID:  testUserID,
		State:   entity.StatePendente,
		Version: 1,
		History: []entity.OrderHistory{{ID: "h1", OrderID: "o1", Estado: entity.StatePendente, Actor: testUserID, CreatedAt: time.Now()}},
	}
}

func buildOrderApp(t *testing.T, order *entity.Order) *fiber.App {
	t.Helper()
	orderRepo := &stubOrderRepo{orders: map[string]*entity.Order{order.ID: order}}
	userRepo := &stubUserRepo{user: &entity.User{ID: order.UserID, Email: "cliente@exemplo.ao", Role: entity.RoleCustomer}}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	transitionUC := orders.NewTransitionUseCase(&stubTxRunner{orderRepo: orderRepo}, orderRepo, userRepo, noopNotifier{}, log, true)
	queryUC := orders.NewQueryUseCase(orderRepo)
	handler := apphttp.NewOrderHandler(nil, transitionUC, queryUC, nil, nil, orders.PaymentInfo{})

	app := fiber.New()
	app.Patch("/api/orders/:id/estado", apphttp.AuthMiddleware(testJWTSecret), handler.ChangeState)
	return app
}

func patchEstado(t *testing.T, app *fiber.App, token, orderID, estado string) *http.Response {
	t.Helper()
	body, err := json.Marshal(dto.ChangeOrderStateRequest{Estado: estado})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID+"/estado", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PATCH /api/orders/:id/estado
// ──────────────────────────────────────────────────────────────────────────────

// Literal de estado desconhecido é erro de validação (400) mesmo para um
// CUSTOMER no próprio pedido; nunca mascarado como questão de permissão.
func TestChangeState_ClienteComEstadoDesconhecido_Retorna400(t *testing.T) {
	app := buildOrderApp(t, pendingOrder())
	resp := patchEstado(t, app, tokenForRole(t, "CUSTOMER"), "o1", "DESPACHADO")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestChangeState_ClienteCancelaPedidoPendente(t *testing.T) {
	app := buildOrderApp(t, pendingOrder())
	resp := patchEstado(t, app, tokenForRole(t, "CUSTOMER"), "o1", "CANCELADO")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "CANCELADO", out.Estado)
}

func TestChangeState_ClienteNaoPodeMarcarPago(t *testing.T) {
	app := buildOrderApp(t, pendingOrder())
	resp := patchEstado(t, app, tokenForRole(t, "CUSTOMER"), "o1", "PAGO")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
