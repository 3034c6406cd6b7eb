package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

// OrderHandler trata o ciclo de vida dos pedidos: checkout, consulta,
// transições de estado, factura PDF, QR de pagamento e link WhatsApp.
type OrderHandler struct {
	createUC     *orders.CreateOrderUseCase
	transitionUC *orders.TransitionUseCase
	queryUC      *orders.QueryUseCase
	invoiceUC    *orders.InvoicePDFUseCase
	qrGen        orders.PaymentQRGenerator
	pay          orders.PaymentInfo
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(
	createUC *orders.CreateOrderUseCase,
	transitionUC *orders.TransitionUseCase,
	queryUC *orders.QueryUseCase,
	invoiceUC *orders.InvoicePDFUseCase,
	qrGen orders.PaymentQRGenerator,
	pay orders.PaymentInfo,
) *OrderHandler {
	return &OrderHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		queryUC:      queryUC,
		invoiceUC:    invoiceUC,
		qrGen:        qrGen,
		pay:          pay,
	}
}

// Create godoc
// @Summary      Checkout: criar pedido a partir do carrinho
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Itens e endereço de entrega"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.createUC.CreateOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter pedido (dono ou STAFF+)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetForRequester(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar os pedidos do próprio utilizador
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.queryUC.ListByUser(GetUserID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAdmin godoc
// @Summary      Listagem administrativa de pedidos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListAdmin(c *fiber.Ctx) error {
	out, err := h.queryUC.ListAdmin(c.Query("estado"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeState godoc
// @Summary      Transicionar o estado de um pedido
// @Description  STAFF+ pode aplicar qualquer transição permitida. O cliente só
// @Description  pode cancelar o próprio pedido enquanto este estiver PENDENTE.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.ChangeOrderStateRequest  true  "Estado alvo e nota opcional"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/estado [patch]
func (h *OrderHandler) ChangeState(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var in dto.ChangeOrderStateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	userID := GetUserID(c)
	role := GetRole(c)

	// Literal desconhecido é erro de validação, independentemente do papel.
	target, ok := entity.ParseOrderState(in.Estado)
	if !ok {
		return respondError(c, domain.ErrInvalidState)
	}

	if !role.CanManageOrders() {
		order, err := h.queryUC.GetEntityForRequester(orderID, userID, role)
		if err != nil {
			return respondError(c, err)
		}
		if target != entity.StateCancelado || order.State != entity.StatePendente {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "só é possível cancelar pedidos pendentes"})
		}
	}

	out, err := h.transitionUC.Transition(c.Context(), orderID, in.Estado, in.Nota, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Invoice godoc
// @Summary      Descarregar a factura proforma em PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/invoice.pdf [get]
func (h *OrderHandler) Invoice(c *fiber.Ctx) error {
	order, err := h.queryUC.GetEntityForRequester(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.invoiceUC.Generate(c.Context(), order)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, order.Number))
	return c.Send(pdfBytes)
}

// PaymentQR godoc
// @Summary      QR de pagamento por transferência (PNG)
// @Tags         orders
// @Security     Bearer
// @Produce      image/png
// @Param        id    path   string  true   "ID do pedido"
// @Param        size  query  int     false  "Lado do PNG em pixels"  default(256)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payment-qr [get]
func (h *OrderHandler) PaymentQR(c *fiber.Ctx) error {
	order, err := h.queryUC.GetEntityForRequester(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	size := c.QueryInt("size", 256)
	pngBytes, err := h.qrGen.GeneratePaymentQR(order, h.pay, size)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(pngBytes)
}

// WhatsApp godoc
// @Summary      Link wa.me para finalizar o pedido por WhatsApp
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.WhatsAppLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/whatsapp [get]
func (h *OrderHandler) WhatsApp(c *fiber.Ctx) error {
	order, err := h.queryUC.GetEntityForRequester(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	url := orders.WhatsAppLink(h.pay.WhatsApp, order)
	return c.JSON(dto.WhatsAppLinkResponse{URL: url})
}
