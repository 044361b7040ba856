package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el inventario por
// sucursal+producto. Get y GetForUpdate devuelven (nil, nil) si no hay fila:
// "sin inventario en la sucursal" es distinto de "cantidad cero".
type StockRepository interface {
	Get(branchID, productID int64) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) durante la transacción:
	// serializa lectura+escritura contra escritores concurrentes de la misma fila.
	GetForUpdate(branchID, productID int64) (*entity.StockEntry, error)
	Upsert(entry *entity.StockEntry) error
	GetByID(id int64) (*entity.StockEntry, error)
	GetByIDForUpdate(id int64) (*entity.StockEntry, error)
	List(branchID, productID *int64) ([]*entity.StockEntry, error)
	Delete(id int64) error
}
