package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// VoidSaleUseCase anula una venta de forma lógica: repone el stock de cada
// línea y marca la venta como inactiva, todo en una transacción. La venta
// nunca se borra físicamente y la anulación no es repetible.
type VoidSaleUseCase struct {
	txRunner TxRunner
}

// NewVoidSaleUseCase construye el caso de uso.
func NewVoidSaleUseCase(txRunner TxRunner) *VoidSaleUseCase {
	return &VoidSaleUseCase{txRunner: txRunner}
}

// VoidSale repone el inventario consumido por la venta y la desactiva.
// O todas las reposiciones y el flag confirman juntos, o ninguno.
func (uc *VoidSaleUseCase) VoidSale(ctx context.Context, saleID int64) error {
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if !sale.Active {
			return domain.ErrSaleAlreadyVoided
		}

		lines, err := saleRepo.GetLines(saleID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, line := range lines {
			// La fila debería existir siempre: el inventario no se borra
			// mientras haya ventas que lo referencien.
			entry, err := stockRepo.GetForUpdate(sale.BranchID, line.ProductID)
			if err != nil {
				return err
			}
			if entry == nil {
				return domain.ErrIntegrityViolation
			}
			entry.Quantity += line.Quantity
			entry.UpdatedAt = now
			if err := stockRepo.Upsert(entry); err != nil {
				return err
			}
		}

		sale.Active = false
		return saleRepo.Update(sale)
	})
}
