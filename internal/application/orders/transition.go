package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agriconecta/agriconecta-api/internal/application/dto"
	"github.com/agriconecta/agriconecta-api/internal/domain"
	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/domain/repository"
	"github.com/agriconecta/agriconecta-api/pkg/logger"
)

// TransitionUseCase gere o ciclo de vida dos pedidos: valida o estado alvo,
// aplica a transição com lock optimista, carimba o timestamp de ciclo de vida,
// acrescenta a entrada do histórico e dispara a notificação por email.
type TransitionUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	notifier  Notifier
	log       *logger.Logger
	// strict activa a tabela de adjacência; desactivado, qualquer estado
	// válido é aceite (correcções administrativas retroactivas).
	strict bool
}

// NewTransitionUseCase constrói o caso de uso.
func NewTransitionUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
	strict bool,
) *TransitionUseCase {
	return &TransitionUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		log:       log,
		strict:    strict,
	}
}

// Transition aplica uma transição de estado ao pedido.
//
// Garantias:
//   - literal desconhecido -> domain.ErrInvalidState, sem qualquer mutação;
//   - pedido inexistente   -> domain.ErrNotFound;
//   - estado alvo == actual -> no-op idempotente (sem nova entrada de histórico);
//   - salto ilegal (modo estrito) -> domain.ErrInvalidTransition;
//   - corrida perdida (versão desactualizada) -> domain.ErrConflict;
//   - estado actual == estado da última entrada do histórico, sempre.
func (uc *TransitionUseCase) Transition(ctx context.Context, orderID, estado, nota, actor string) (*dto.OrderResponse, error) {
	newState, ok := entity.ParseOrderState(estado)
	if !ok {
		return nil, domain.ErrInvalidState
	}
	if actor == "" {
		actor = entity.ActorSystem
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	// Idempotência: reaplicar o mesmo estado não gera histórico nem timestamps.
	if order.State == newState {
		return toOrderResponse(order), nil
	}

	if uc.strict && !order.State.CanTransitionTo(newState) {
		return nil, domain.ErrInvalidTransition
	}

	from := order.State
	now := time.Now()
	order.State = newState
	order.StampLifecycle(newState, now)
	order.UpdatedAt = now

	history := entity.OrderHistory{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Estado:    newState,
		Nota:      nota,
		Actor:     actor,
		CreatedAt: now,
	}

	// Estado e histórico gravados na mesma transacção: o estado actual nunca
	// diverge da última entrada do histórico, mesmo sob escritores concorrentes.
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.ProductRepository) error {
		if err := orderRepo.UpdateState(order); err != nil {
			return err
		}
		return orderRepo.AppendHistory(&history)
	})
	if err != nil {
		return nil, err
	}
	order.History = append(order.History, history)
	order.Version++

	uc.notifyStateChange(order, from, newState, nota)

	return toOrderResponse(order), nil
}

// notifyStateChange dispara o email de mudança de estado. A mutação do pedido
// já está commitada; falhas de envio são registadas e nunca propagadas.
func (uc *TransitionUseCase) notifyStateChange(order *entity.Order, from, to entity.OrderState, nota string) {
	customer, err := uc.userRepo.GetByID(order.UserID)
	if err != nil || customer == nil {
		uc.log.Warn().Str("pedido", order.Number).Msg("cliente não encontrado para notificação")
		return
	}
	go func(o entity.Order, email string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := uc.notifier.SendStateChangeEmail(sendCtx, &o, from, to, nota, email); err != nil {
			uc.log.Warn().Err(err).
				Str("pedido", o.Number).
				Str("de", string(from)).
				Str("para", string(to)).
				Msg("email de mudança de estado falhou")
		}
	}(*order, customer.Email)
}
