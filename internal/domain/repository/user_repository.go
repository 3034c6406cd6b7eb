package repository

import "github.com/agriconecta/agriconecta-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateRole altera apenas o papel (acção de SUPER_ADMIN).
	UpdateRole(id string, role entity.Role) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
