package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
	"github.com/agriconecta/agriconecta-api/pkg/logger"
)

// maxNumberRetries tentativas de checkout quando dois pedidos concorrentes
// leram o mesmo "maior número do ano" e colidem no índice único.
const maxNumberRetries = 3

// CreateOrderUseCase faz o checkout de um carrinho: reprecifica os itens a
// partir do catálogo, desconta stock, atribui o número AGC e cria o pedido
// PENDENTE com a entrada seed do histórico — tudo numa transacção.
type CreateOrderUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserRepository
	notifier    Notifier
	log         *logger.Logger
	deliveryFee decimal.Decimal
}

// NewCreateOrderUseCase constrói o caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
	deliveryFee decimal.Decimal,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:    txRunner,
		userRepo:    userRepo,
		notifier:    notifier,
		log:         log,
		deliveryFee: deliveryFee,
	}
}

// CreateOrder cria o pedido para o utilizador autenticado.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" || len(in.Items) == 0 || in.DeliveryAddr == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	customer, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}

	var order *entity.Order
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		order, err = uc.createInTx(ctx, userID, in)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// colisão de número: outro checkout ganhou a sequência, tentar de novo
	}
	if err != nil {
		return nil, err
	}

	// Confirmação por email: fire-and-forget, nunca falha o checkout.
	go func(o entity.Order, email string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := uc.notifier.SendOrderConfirmation(sendCtx, &o, email); err != nil {
			uc.log.Warn().Err(err).Str("pedido", o.Number).Msg("email de confirmação falhou")
		}
	}(*order, customer.Email)

	return toOrderResponse(order), nil
}

// createInTx constrói e persiste o pedido dentro de uma transacção.
// Devolve domain.ErrDuplicate quando o número AGC colide (retry no caller).
func (uc *CreateOrderUseCase) createInTx(ctx context.Context, userID string, in dto.CreateOrderRequest) (*entity.Order, error) {
	now := time.Now()
	var order *entity.Order

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Status != "active" {
				return domain.ErrNotFound
			}
			// desconto condicional de stock; sem stock aborta o checkout inteiro
			if err := productRepo.DecrementStock(product.ID, item.Quantity); err != nil {
				return err
			}
			items = append(items, entity.OrderItem{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price, // preço do catálogo, congelado no checkout
			})
		}

		latest, err := orderRepo.LatestNumberForYear(now.Year())
		if err != nil {
			return err
		}
		number, err := NextOrderNumber(now.Year(), latest)
		if err != nil {
			return err
		}

		order = &entity.Order{
			ID:           uuid.New().String(),
			Number:       number,
			UserID:       userID,
			State:        entity.StatePendente,
			Items:        items,
			DeliveryFee:  uc.deliveryFee,
			Discount:     decimal.Zero,
			DeliveryAddr: in.DeliveryAddr,
			Notes:        in.Notes,
			Version:      1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		order.RecalculateTotals()
		order.History = []entity.OrderHistory{{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Estado:    entity.StatePendente,
			Nota:      "Pedido criado",
			Actor:     userID,
			CreatedAt: now,
		}}

		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
