package orders

import (
	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

// QueryUseCase consultas de pedidos (área de cliente e listagem administrativa).
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase constrói o caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetForRequester devolve o pedido se o requisitante for o dono ou tiver papel
// STAFF ou superior; caso contrário domain.ErrForbidden.
func (uc *QueryUseCase) GetForRequester(orderID, requesterID string, requesterRole entity.Role) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != requesterID && !requesterRole.CanManageOrders() {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// GetEntityForRequester variante que devolve a entidade (factura PDF, QR).
func (uc *QueryUseCase) GetEntityForRequester(orderID, requesterID string, requesterRole entity.Role) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != requesterID && !requesterRole.CanManageOrders() {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListByUser devolve os pedidos do próprio utilizador.
func (uc *QueryUseCase) ListByUser(userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}), nil
}

// ListAdmin listagem administrativa com filtro opcional por estado.
// Literal de estado desconhecido -> domain.ErrInvalidState.
func (uc *QueryUseCase) ListAdmin(estado string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	var state entity.OrderState
	if estado != "" {
		s, ok := entity.ParseOrderState(estado)
		if !ok {
			return nil, domain.ErrInvalidState
		}
		state = s
	}
	list, err := uc.orderRepo.List(state, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}), nil
}
