package repository

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas nunca se borran físicamente; Update solo cambia el flag Active.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	Update(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	GetLines(saleID int64) ([]*entity.SaleLine, error)
	// FindByFilters compone predicados opcionales: sucursal, fecha (día calendario)
	// y soloActivas. Filtros en nil no restringen.
	FindByFilters(branchID *int64, date *time.Time, onlyActive bool) ([]*entity.Sale, error)
	// Guardas de integridad referencial para borrado de maestros e inventario.
	ExistsByBranch(branchID int64) (bool, error)
	ExistsByProduct(productID int64) (bool, error)
	ExistsByBranchAndProduct(branchID, productID int64) (bool, error)
}
