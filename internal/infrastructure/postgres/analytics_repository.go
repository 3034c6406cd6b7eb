package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only do dashboard e relatórios.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics receita e contagem de pedidos no período. PENDENTE ainda não
// é venda e CANCELADO deixou de o ser, por isso ambos ficam de fora.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, int, error) {
	var revenue decimal.Decimal
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE estado NOT IN ('PENDENTE', 'CANCELADO')
		  AND created_at >= $1 AND created_at < $2`,
		startDate, endDate,
	).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, count, nil
}

func (r *AnalyticsRepo) GetOrderCountsByState(ctx context.Context) ([]repository.StateCountResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT estado, COUNT(*)
		FROM orders
		GROUP BY estado
		ORDER BY estado`)
	if err != nil {
		return nil, fmt.Errorf("order counts by state: %w", err)
	}
	defer rows.Close()
	var results []repository.StateCountResult
	for rows.Next() {
		var rc repository.StateCountResult
		if err := rows.Scan(&rc.Estado, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan state count: %w", err)
		}
		results = append(results, rc)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT oi.product_id, oi.product_name, SUM(oi.quantity), SUM(oi.subtotal)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.estado NOT IN ('PENDENTE', 'CANCELADO')
		  AND o.created_at >= $1 AND o.created_at < $2
		GROUP BY oi.product_id, oi.product_name
		ORDER BY SUM(oi.subtotal) DESC
		LIMIT $3`,
		startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductResult
	for rows.Next() {
		var tp repository.TopProductResult
		if err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.UnitsSold, &tp.GrossRevenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, tp)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepo) GetLowStock(ctx context.Context, threshold decimal.Decimal, limit int) ([]repository.LowStockResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, stock, unit
		FROM products
		WHERE status = 'active' AND stock <= $1
		ORDER BY stock ASC
		LIMIT $2`,
		threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var results []repository.LowStockResult
	for rows.Next() {
		var ls repository.LowStockResult
		if err := rows.Scan(&ls.ProductID, &ls.ProductName, &ls.Stock, &ls.Unit); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		results = append(results, ls)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepo) GetSalesReport(ctx context.Context, startDate, endDate time.Time) ([]repository.SalesRowResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE estado NOT IN ('PENDENTE', 'CANCELADO')
		  AND created_at >= $1 AND created_at < $2
		GROUP BY day
		ORDER BY day ASC`,
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	var results []repository.SalesRowResult
	for rows.Next() {
		var sr repository.SalesRowResult
		if err := rows.Scan(&sr.Day, &sr.OrderCount, &sr.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}
