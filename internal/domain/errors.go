package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("utilizador não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidState       = errors.New("estado de pedido inválido")
	ErrInvalidTransition  = errors.New("transição de estado não permitida")
	ErrInvalidRole        = errors.New("papel de utilizador inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
