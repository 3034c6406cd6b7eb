package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StateCountDTO contagem de pedidos num estado.
type StateCountDTO struct {
	Estado string `json:"estado"`
	Count  int    `json:"total"`
}

// TopProductDTO produto mais vendido no widget do dashboard.
type TopProductDTO struct {
	ProductID    string          `json:"produtoId"`
	ProductName  string          `json:"produtoNome"`
	UnitsSold    decimal.Decimal `json:"quantidadeVendida"`
	GrossRevenue decimal.Decimal `json:"receita"`
}

// LowStockDTO produto com stock baixo.
type LowStockDTO struct {
	ProductID   string          `json:"produtoId"`
	ProductName string          `json:"produtoNome"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unidade"`
}

// DashboardSummaryDTO resumo do dashboard administrativo.
type DashboardSummaryDTO struct {
	TodayRevenue   decimal.Decimal `json:"receitaHoje"`
	TodayOrders    int             `json:"pedidosHoje"`
	MonthlyRevenue decimal.Decimal `json:"receitaMes"`
	MonthlyOrders  int             `json:"pedidosMes"`
	OrdersByState  []StateCountDTO `json:"pedidosPorEstado"`
	TopProducts    []TopProductDTO `json:"maisVendidos"`
	LowStock       []LowStockDTO   `json:"stockBaixo"`
}

// SalesReportRowDTO linha do relatório de vendas por dia.
type SalesReportRowDTO struct {
	Day        time.Time       `json:"dia"`
	OrderCount int             `json:"pedidos"`
	Revenue    decimal.Decimal `json:"receita"`
}

// SalesReportDTO relatório de vendas de um período.
type SalesReportDTO struct {
	From         time.Time           `json:"de"`
	To           time.Time           `json:"ate"`
	TotalRevenue decimal.Decimal     `json:"receitaTotal"`
	TotalOrders  int                 `json:"pedidosTotal"`
	Rows         []SalesReportRowDTO `json:"linhas"`
}
