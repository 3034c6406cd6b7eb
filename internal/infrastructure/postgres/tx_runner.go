package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

// Garante que TxRunner implementa orders.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transacção PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transacção, executa fn com repos atados à tx e faz Commit ou Rollback.
// Usado no checkout (stock + pedido + numeração) e nas transições de estado
// (estado + histórico na mesma transacção).
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
