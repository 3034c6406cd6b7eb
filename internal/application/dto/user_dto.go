package dto

import "time"

// RegisterRequest registo de um novo cliente. O papel é sempre CUSTOMER;
// promoções de papel passam por PATCH /api/admin/users/:id/role.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nome"`
	Phone    string `json:"telefone"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + utilizador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representação pública de um utilizador (sem hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"actualizadoEm"`
}

// UpdateProfileRequest actualização do próprio perfil.
type UpdateProfileRequest struct {
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}

// ChangePasswordRequest troca de password autenticada.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"passwordActual"`
	NewPassword     string `json:"passwordNova"`
}

// ChangeRoleRequest reatribuição de papel (SUPER_ADMIN).
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UserListResponse listagem de utilizadores.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
