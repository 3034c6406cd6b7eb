package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StateCountResult contagem de pedidos por estado.
type StateCountResult struct {
	Estado string
	Count  int
}

// TopProductResult resultado cru da consulta de produtos mais vendidos.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	UnitsSold    decimal.Decimal
	GrossRevenue decimal.Decimal
}

// LowStockResult produto com stock abaixo do limiar.
type LowStockResult struct {
	ProductID   string
	ProductName string
	Stock       decimal.Decimal
	Unit        string
}

// SalesRowResult linha do relatório de vendas por dia.
type SalesRowResult struct {
	Day        time.Time
	OrderCount int
	Revenue    decimal.Decimal
}

// AnalyticsRepository define as consultas de leitura do dashboard e relatórios.
// As implementações são read-only (não modificam dados).
type AnalyticsRepository interface {
	// GetSalesMetrics devolve receita bruta e número de pedidos no período.
	// Só contam pedidos pagos ou posteriores (exclui PENDENTE e CANCELADO).
	// Usa COALESCE para devolver zero se não houver pedidos no período.
	GetSalesMetrics(ctx context.Context, startDate, endDate time.Time) (revenue decimal.Decimal, orderCount int, err error)

	// GetOrderCountsByState devolve a contagem de pedidos por estado (todos os tempos).
	GetOrderCountsByState(ctx context.Context) ([]StateCountResult, error)

	// GetTopProducts devolve os `limit` produtos com maior receita no período.
	GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopProductResult, error)

	// GetLowStock devolve produtos activos com stock <= threshold.
	GetLowStock(ctx context.Context, threshold decimal.Decimal, limit int) ([]LowStockResult, error)

	// GetSalesReport devolve receita e contagem de pedidos agregadas por dia.
	GetSalesReport(ctx context.Context, startDate, endDate time.Time) ([]SalesRowResult, error)
}
