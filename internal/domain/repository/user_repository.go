package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// UserRepository acceso a persistencia de usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail devuelve nil, nil si el email no existe.
	GetByEmail(email string) (*entity.User, error)
}
