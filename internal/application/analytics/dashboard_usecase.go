// Package analytics contém os casos de uso do dashboard administrativo e dos
// relatórios de vendas.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // produtos no widget "mais vendidos"
	dashboardLowStock    = 5  // produtos no widget "stock baixo"
	lowStockThreshold    = 10 // limiar de alerta de stock
)

// DashboardUseCase gera o resumo do dia e do mês em curso.
//
// Fonte de dados: AnalyticsRepository (consultas read-only).
// Não acede directamente à tabela de pedidos; delega tudo no repositório.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary constrói o DashboardSummaryDTO.
//
// Cinco consultas em paralelo:
//  1. GetSalesMetrics(hoje)       → ReceitaHoje + PedidosHoje
//  2. GetSalesMetrics(mês)        → ReceitaMes + PedidosMes
//  3. GetOrderCountsByState       → PedidosPorEstado
//  4. GetTopProducts(mês, top 5)  → MaisVendidos
//  5. GetLowStock(limiar 10)      → StockBaixo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoje: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mês em curso: dia 1 às 00:00 – hoje às 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		revenue decimal.Decimal
		orders  int
		err     error
	}
	type statesResult struct {
		states []repository.StateCountResult
		err    error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type lowResult struct {
		products []repository.LowStockResult
		err      error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	statesCh := make(chan statesResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		rev, n, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{rev, n, err}
	}()
	go func() {
		rev, n, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		monthCh <- metricsResult{rev, n, err}
	}()
	go func() {
		states, err := uc.analyticsRepo.GetOrderCountsByState(ctx)
		statesCh <- statesResult{states, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetLowStock(ctx, decimal.NewFromInt(lowStockThreshold), dashboardLowStock)
		lowCh <- lowResult{products, err}
	}()

	today := <-todayCh
	month := <-monthCh
	states := <-statesCh
	top := <-topCh
	low := <-lowCh

	for _, err := range []error{today.err, month.err, states.err, top.err, low.err} {
		if err != nil {
			return nil, err
		}
	}

	summary := &dto.DashboardSummaryDTO{
		TodayRevenue:   today.revenue,
		TodayOrders:    today.orders,
		MonthlyRevenue: month.revenue,
		MonthlyOrders:  month.orders,
		OrdersByState:  make([]dto.StateCountDTO, 0, len(states.states)),
		TopProducts:    make([]dto.TopProductDTO, 0, len(top.products)),
		LowStock:       make([]dto.LowStockDTO, 0, len(low.products)),
	}
	for _, s := range states.states {
		summary.OrdersByState = append(summary.OrdersByState, dto.StateCountDTO{Estado: s.Estado, Count: s.Count})
	}
	for _, p := range top.products {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			UnitsSold:    p.UnitsSold,
			GrossRevenue: p.GrossRevenue,
		})
	}
	for _, p := range low.products {
		summary.LowStock = append(summary.LowStock, dto.LowStockDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Stock:       p.Stock,
			Unit:        p.Unit,
		})
	}
	return summary, nil
}

// GetSalesReport devolve o relatório de vendas de um período, agregado por dia.
func (uc *DashboardUseCase) GetSalesReport(ctx context.Context, from, to time.Time) (*dto.SalesReportDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.analyticsRepo.GetSalesReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := &dto.SalesReportDTO{
		From:         from,
		To:           to,
		TotalRevenue: decimal.Zero,
		Rows:         make([]dto.SalesReportRowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		report.TotalRevenue = report.TotalRevenue.Add(r.Revenue)
		report.TotalOrders += r.OrderCount
		report.Rows = append(report.Rows, dto.SalesReportRowDTO{
			Day:        r.Day,
			OrderCount: r.OrderCount,
			Revenue:    r.Revenue,
		})
	}
	return report, nil
}
