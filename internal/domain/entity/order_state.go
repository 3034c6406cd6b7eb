package entity

// OrderState estado do ciclo de vida de um pedido. Contrato de wire: exactamente
// os seis literais abaixo; qualquer outra string é rejeitada com erro de validação.
type OrderState string

const (
	StatePendente     OrderState = "PENDENTE"      // inicial, aguarda comprovativo de transferência
	StatePago         OrderState = "PAGO"          // pagamento confirmado
	StateEmPreparacao OrderState = "EM_PREPARACAO" // em preparação pelo produtor
	StateEmTransito   OrderState = "EM_TRANSITO"   // em entrega
	StateEntregue     OrderState = "ENTREGUE"      // terminal (sucesso)
	StateCancelado    OrderState = "CANCELADO"     // terminal, alcançável de qualquer estado não-terminal
)

var validStates = map[OrderState]bool{
	StatePendente:     true,
	StatePago:         true,
	StateEmPreparacao: true,
	StateEmTransito:   true,
	StateEntregue:     true,
	StateCancelado:    true,
}

// allowedTransitions tabela de adjacência: progressão estritamente para a
// frente, com CANCELADO como escape de qualquer estado não-terminal.
var allowedTransitions = map[OrderState][]OrderState{
	StatePendente:     {StatePago, StateCancelado},
	StatePago:         {StateEmPreparacao, StateCancelado},
	StateEmPreparacao: {StateEmTransito, StateCancelado},
	StateEmTransito:   {StateEntregue, StateCancelado},
	StateEntregue:     {},
	StateCancelado:    {},
}

// IsValid verifica se o literal pertence ao conjunto de seis estados.
func (s OrderState) IsValid() bool {
	return validStates[s]
}

// IsTerminal indica se o estado não admite mais transições.
func (s OrderState) IsTerminal() bool {
	return s == StateEntregue || s == StateCancelado
}

// CanTransitionTo verifica a tabela de adjacência. Não cobre o caso idempotente
// (target == s), tratado antes pela operação de transição.
func (s OrderState) CanTransitionTo(target OrderState) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ParseOrderState valida um literal vindo da camada HTTP ou da DB.
func ParseOrderState(v string) (OrderState, bool) {
	s := OrderState(v)
	return s, s.IsValid()
}

// Label devolve o nome legível do estado para emails e documentos.
func (s OrderState) Label() string {
	switch s {
	case StatePendente:
		return "Pendente"
	case StatePago:
		return "Pago"
	case StateEmPreparacao:
		return "Em preparação"
	case StateEmTransito:
		return "Em trânsito"
	case StateEntregue:
		return "Entregue"
	case StateCancelado:
		return "Cancelado"
	}
	return string(s)
}
