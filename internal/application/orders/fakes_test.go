package orders

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobros de teste em memória (sem DB)
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	c.History = append([]entity.OrderHistory(nil), o.History...)
	return &c
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.Number == order.Number {
			return domain.ErrDuplicate
		}
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) GetByNumber(number string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.Number == number {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			list = append(list, cloneOrder(o))
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) List(state entity.OrderState, limit, offset int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if state == "" || o.State == state {
			list = append(list, cloneOrder(o))
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) UpdateState(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != order.Version {
		return domain.ErrConflict
	}
	updated := cloneOrder(order)
	updated.History = stored.History // histórico só muda via AppendHistory
	updated.Version = stored.Version + 1
	r.orders[order.ID] = updated
	return nil
}

func (r *fakeOrderRepo) AppendHistory(h *entity.OrderHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[h.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.History = append(stored.History, *h)
	return nil
}

func (r *fakeOrderRepo) LatestNumberForYear(year int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := ""
	for _, o := range r.orders {
		if strings.Contains(o.Number, "-") && strings.Split(o.Number, "-")[1] == strconv.Itoa(year) && o.Number > latest {
			latest = o.Number
		}
	}
	return latest, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	p.Stock = p.Stock.Sub(qty)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateRole(id string, role entity.Role) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error                        { delete(r.users, id); return nil }

// fakeTxRunner executa o callback directamente sobre os repos em memória.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	return fn(r.orderRepo, r.productRepo)
}

type stateChangeCall struct {
	number string
	from   entity.OrderState
	to     entity.OrderState
	nota   string
	email  string
}

// fakeNotifier grava as chamadas em canais (o envio real acontece em goroutine).
type fakeNotifier struct {
	confirmations chan string // número do pedido
	stateChanges  chan stateChangeCall
	fail          bool
}

var _ Notifier = (*fakeNotifier)(nil)

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		confirmations: make(chan string, 8),
		stateChanges:  make(chan stateChangeCall, 8),
	}
}

func (n *fakeNotifier) SendOrderConfirmation(_ context.Context, order *entity.Order, toEmail string) error {
	n.confirmations <- order.Number
	if n.fail {
		return domain.ErrConflict
	}
	return nil
}

func (n *fakeNotifier) SendStateChangeEmail(_ context.Context, order *entity.Order, from, to entity.OrderState, nota, toEmail string) error {
	n.stateChanges <- stateChangeCall{number: order.Number, from: from, to: to, nota: nota, email: toEmail}
	if n.fail {
		return domain.ErrConflict
	}
	return nil
}
