package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// RegisterSaleUseCase registra una venta multi-línea descontando inventario
// de forma transaccional: fase de validación sobre TODO el carrito (bloqueando
// filas con SELECT FOR UPDATE, sin mutar nada) y recién después la fase de
// mutación. Cualquier fallo hace rollback completo.
type RegisterSaleUseCase struct {
	txRunner    TxRunner
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		txRunner:    txRunner,
		branchRepo:  branchRepo,
		productRepo: productRepo,
	}
}

// RegisterSale valida el carrito completo contra el stock de la sucursal,
// descuenta cada línea, calcula el total con el precio vigente del producto
// (que queda capturado en la línea) y persiste la venta con active=true.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	// Resolver todos los productos del carrito en una sola consulta.
	// Cualquier ID ausente aborta antes de tocar inventario.
	found, err := uc.productRepo.GetAllByIDs(distinctProductIDs(in.Lines))
	if err != nil {
		return nil, err
	}
	products := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	for _, l := range in.Lines {
		if products[l.ProductID] == nil {
			return nil, domain.ErrProductNotFound
		}
	}

	var sale *entity.Sale
	var lines []*entity.SaleLine

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, saleRepo repository.SaleRepository) error {
		// ── Fase de validación ────────────────────────────────────────────
		// Bloquea cada fila de stock una sola vez y verifica el carrito
		// entero. `remaining` acumula lo ya pedido del mismo producto en
		// líneas anteriores, para que un carrito con el producto repetido no
		// pase validación y deje stock negativo en la mutación.
		entries := make(map[int64]*entity.StockEntry, len(in.Lines))
		remaining := make(map[int64]int, len(in.Lines))
		for _, item := range in.Lines {
			product := products[item.ProductID]
			entry, ok := entries[item.ProductID]
			if !ok {
				entry, err = stockRepo.GetForUpdate(in.BranchID, item.ProductID)
				if err != nil {
					return err
				}
				if entry == nil {
					return &domain.NotStockedError{Product: product.Name}
				}
				entries[item.ProductID] = entry
				remaining[item.ProductID] = entry.Quantity
			}
			if remaining[item.ProductID] < item.Quantity {
				return &domain.InsufficientStockError{
					Product:   product.Name,
					Available: remaining[item.ProductID],
					Requested: item.Quantity,
				}
			}
			remaining[item.ProductID] -= item.Quantity
		}

		// ── Fase de mutación ──────────────────────────────────────────────
		now := time.Now()
		total := decimal.Zero
		lines = lines[:0]
		for _, item := range in.Lines {
			entry := entries[item.ProductID]
			entry.Quantity -= item.Quantity
			entry.UpdatedAt = now
			if err := stockRepo.Upsert(entry); err != nil {
				return err
			}
			price := products[item.ProductID].Price
			line := &entity.SaleLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: price,
			}
			lines = append(lines, line)
			total = total.Add(line.Subtotal())
		}

		sale = &entity.Sale{
			BranchID: in.BranchID,
			Date:     now,
			Total:    total,
			Active:   true,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range lines {
			line.SaleID = sale.ID
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, branch.Name, lines, products), nil
}
