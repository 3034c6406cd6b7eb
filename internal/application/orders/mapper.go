package orders

import (
	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
)

// toOrderResponse converte a entidade em DTO. O histórico é armazenado em
// ordem de inserção; a resposta inverte-o para exibição (mais recente primeiro).
func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = dto.OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	history := make([]dto.OrderHistoryResponse, len(o.History))
	for i, h := range o.History {
		history[len(o.History)-1-i] = dto.OrderHistoryResponse{
			Estado:    string(h.Estado),
			Nota:      h.Nota,
			Actor:     h.Actor,
			CreatedAt: h.CreatedAt,
		}
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		UserID:       o.UserID,
		Estado:       string(o.State),
		Items:        items,
		Subtotal:     o.Subtotal,
		DeliveryFee:  o.DeliveryFee,
		Discount:     o.Discount,
		Total:        o.Total,
		DeliveryAddr: o.DeliveryAddr,
		Notes:        o.Notes,
		History:      history,
		PaidAt:       o.PaidAt,
		PreparingAt:  o.PreparingAt,
		InTransitAt:  o.InTransitAt,
		DeliveredAt:  o.DeliveredAt,
		CanceledAt:   o.CanceledAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOrderListResponse(list []*entity.Order, page dto.PageResponse) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Page: page}
}
