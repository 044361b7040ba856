package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
// FindByEmail devuelve (nil, nil) si el email no está registrado.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
