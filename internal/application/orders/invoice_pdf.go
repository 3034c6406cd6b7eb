package orders

import (
	"context"

	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
)

// InvoicePDFUseCase gera a factura proforma de um pedido em PDF, com o bloco
// de pagamento por transferência e o QR embebido.
type InvoicePDFUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator InvoicePDFGenerator
	pay       PaymentInfo
}

// NewInvoicePDFUseCase constrói o caso de uso.
func NewInvoicePDFUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	generator InvoicePDFGenerator,
	pay PaymentInfo,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{orderRepo: orderRepo, userRepo: userRepo, generator: generator, pay: pay}
}

// Generate devolve os bytes do PDF. O requisitante tem de ser o dono do pedido
// ou STAFF+ (verificado pelo handler via QueryUseCase).
func (uc *InvoicePDFUseCase) Generate(ctx context.Context, order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.generator.GenerateOrderInvoice(ctx, order, customer, uc.pay)
}
