package entity

import "time"

// User representa um utilizador da plataforma (cliente ou membro da equipa).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca em claro no domínio depois de persistir
	Name         string
	Phone        string // número angolano, usado no contacto WhatsApp
	Role         Role   // CUSTOMER por omissão; alterado apenas por SUPER_ADMIN
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
