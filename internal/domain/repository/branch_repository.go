package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
// GetByID devuelve (nil, nil) si la sucursal no existe.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id int64) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	List() ([]*entity.Branch, error)
	Delete(id int64) error
}
