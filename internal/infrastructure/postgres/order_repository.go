package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
// Pode operar sobre o pool ou sobre uma transacção (ver TxRunner).
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, number, user_id, estado, subtotal, delivery_fee, discount, total,
	delivery_addr, notes, paid_at, preparing_at, in_transit_at, delivered_at, canceled_at,
	version, created_at, updated_at`

// Create persiste o cabeçalho, os itens e a entrada inicial do histórico.
// O índice único sobre number devolve domain.ErrDuplicate quando dois
// checkouts concorrentes geram a mesma sequência; o caso de uso tenta de novo.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, number, user_id, estado, subtotal, delivery_fee, discount, total,
			delivery_addr, notes, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Number, order.UserID, string(order.State),
		order.Subtotal, order.DeliveryFee, order.Discount, order.Total,
		order.DeliveryAddr, nullIfEmpty(order.Notes),
		order.Version, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		it := &order.Items[i]
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, order.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	for i := range order.History {
		if err := r.AppendHistory(&order.History[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID devolve o pedido completo (itens e histórico por ordem de inserção).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(r.q.QueryRow(context.Background(), query, id), "get order by id")
}

func (r *OrderRepo) GetByNumber(number string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number = $1`
	return r.getOne(r.q.QueryRow(context.Background(), query, number), "get order by number")
}

func (r *OrderRepo) getOne(row pgx.Row, op string) (*entity.Order, error) {
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.loadItems(o); err != nil {
		return nil, err
	}
	if err := r.loadHistory(o); err != nil {
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var estado string
	var notes *string
	err := row.Scan(
		&o.ID, &o.Number, &o.UserID, &estado,
		&o.Subtotal, &o.DeliveryFee, &o.Discount, &o.Total,
		&o.DeliveryAddr, &notes,
		&o.PaidAt, &o.PreparingAt, &o.InTransitAt, &o.DeliveredAt, &o.CanceledAt,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.State = entity.OrderState(estado)
	if notes != nil {
		o.Notes = *notes
	}
	return &o, nil
}

func (r *OrderRepo) loadItems(o *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

func (r *OrderRepo) loadHistory(o *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, estado, nota, actor, created_at
		FROM order_history WHERE order_id = $1 ORDER BY created_at ASC, id ASC`, o.ID)
	if err != nil {
		return fmt.Errorf("load order history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h entity.OrderHistory
		var estado string
		var nota *string
		if err := rows.Scan(&h.ID, &h.OrderID, &estado, &nota, &h.Actor, &h.CreatedAt); err != nil {
			return fmt.Errorf("scan order history: %w", err)
		}
		h.Estado = entity.OrderState(estado)
		if nota != nil {
			h.Nota = *nota
		}
		o.History = append(o.History, h)
	}
	return rows.Err()
}

func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

// List listagem administrativa, opcionalmente filtrada por estado.
func (r *OrderRepo) List(state entity.OrderState, limit, offset int) ([]*entity.Order, error) {
	if state == "" {
		query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		return r.list(query, limit, offset)
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE estado = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, string(state), limit, offset)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateState grava estado e timestamps com lock optimista. O WHERE inclui a
// versão lida; zero linhas afectadas significa que outra transição ganhou a
// corrida e devolvemos domain.ErrConflict sem tocar no pedido.
func (r *OrderRepo) UpdateState(order *entity.Order) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE orders SET estado = $3, paid_at = $4, preparing_at = $5, in_transit_at = $6,
			delivered_at = $7, canceled_at = $8, version = version + 1, updated_at = $9
		WHERE id = $1 AND version = $2`,
		order.ID, order.Version, string(order.State),
		order.PaidAt, order.PreparingAt, order.InTransitAt, order.DeliveredAt, order.CanceledAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *OrderRepo) AppendHistory(h *entity.OrderHistory) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO order_history (id, order_id, estado, nota, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.OrderID, string(h.Estado), nullIfEmpty(h.Nota), h.Actor, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order history: %w", err)
	}
	return nil
}

// LatestNumberForYear devolve o maior número emitido no ano. A ordenação
// lexicográfica coincide com a numérica porque a sequência tem largura fixa.
func (r *OrderRepo) LatestNumberForYear(year int) (string, error) {
	var number string
	err := r.q.QueryRow(context.Background(),
		`SELECT number FROM orders WHERE number LIKE $1 ORDER BY number DESC LIMIT 1`,
		fmt.Sprintf("AGC-%d-%%", year),
	).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("latest order number: %w", err)
	}
	return number, nil
}
