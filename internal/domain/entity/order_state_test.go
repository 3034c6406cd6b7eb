package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderState(t *testing.T) {
	for _, literal := range []string{"PENDENTE", "PAGO", "EM_PREPARACAO", "EM_TRANSITO", "ENTREGUE", "CANCELADO"} {
		s, ok := ParseOrderState(literal)
		assert.True(t, ok, "literal %q deve ser aceite", literal)
		assert.Equal(t, OrderState(literal), s)
	}

	for _, literal := range []string{"", "pendente", "ENVIADO", "PAGAMENTO"} {
		_, ok := ParseOrderState(literal)
		assert.False(t, ok, "literal %q deve ser rejeitado", literal)
	}
}

func TestOrderState_CanTransitionTo_Progressao(t *testing.T) {
	assert.True(t, StatePendente.CanTransitionTo(StatePago))
	assert.True(t, StatePago.CanTransitionTo(StateEmPreparacao))
	assert.True(t, StateEmPreparacao.CanTransitionTo(StateEmTransito))
	assert.True(t, StateEmTransito.CanTransitionTo(StateEntregue))

	// saltos para a frente não adjacentes
	assert.False(t, StatePendente.CanTransitionTo(StateEntregue))
	assert.False(t, StatePago.CanTransitionTo(StateEntregue))

	// retrocessos
	assert.False(t, StateEntregue.CanTransitionTo(StatePendente))
	assert.False(t, StateEmTransito.CanTransitionTo(StatePago))
}

func TestOrderState_CanceladoDeQualquerNaoTerminal(t *testing.T) {
	for _, s := range []OrderState{StatePendente, StatePago, StateEmPreparacao, StateEmTransito} {
		assert.True(t, s.CanTransitionTo(StateCancelado), "%s deve poder cancelar", s)
	}
	assert.False(t, StateEntregue.CanTransitionTo(StateCancelado))
	assert.False(t, StateCancelado.CanTransitionTo(StatePendente))
}

func TestOrderState_IsTerminal(t *testing.T) {
	assert.True(t, StateEntregue.IsTerminal())
	assert.True(t, StateCancelado.IsTerminal())
	assert.False(t, StatePendente.IsTerminal())
	assert.False(t, StateEmTransito.IsTerminal())
}
