package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agriconecta/agriconecta-api/internal/application/analytics"
	"github.com/agriconecta/agriconecta-api/internal/application/dto"
)

// DashboardHandler métricas e relatórios administrativos.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do dashboard (receita, pedidos por estado, mais vendidos, stock baixo)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Relatório de vendas por dia num período
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        de   query  string  false  "Data inicial (YYYY-MM-DD), por omissão há 30 dias"
// @Param        ate  query  string  false  "Data final (YYYY-MM-DD), por omissão hoje"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/reports/sales [get]
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("de"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'de' inválido, esperado YYYY-MM-DD"})
		}
		from = t
	}
	if s := c.Query("ate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'ate' inválido, esperado YYYY-MM-DD"})
		}
		// Fim do dia indicado.
		to = t.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "'de' tem de ser anterior a 'ate'"})
	}

	out, err := h.uc.GetSalesReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
