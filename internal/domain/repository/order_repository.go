package repository

import "github.com/agriconecta/agriconecta-api/internal/domain/entity"

// OrderRepository define o porto de persistência para Order, itens e histórico.
type OrderRepository interface {
	// Create persiste cabeçalho, itens e a entrada seed do histórico.
	Create(order *entity.Order) error
	// GetByID devolve o pedido com itens e histórico (ordem de inserção).
	GetByID(id string) (*entity.Order, error)
	GetByNumber(number string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	// List listagem administrativa; state vazio devolve todos os estados.
	List(state entity.OrderState, limit, offset int) ([]*entity.Order, error)
	// UpdateState grava estado, timestamps de ciclo de vida e bump de versão
	// com lock optimista (WHERE id AND version). Devolve domain.ErrConflict
	// se outra transição ganhou a corrida.
	UpdateState(order *entity.Order) error
	AppendHistory(h *entity.OrderHistory) error
	// LatestNumberForYear devolve o maior número "AGC-<ano>-NNNNN" já emitido
	// nesse ano, ou string vazia se ainda não houver pedidos no ano.
	LatestNumberForYear(year int) (string, error)
}
