package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// StockUseCase gestión manual de inventario: consulta, alta de stock,
// ajuste absoluto y borrado de entradas. El descuento por ventas vive en el
// paquete sales; aquí solo entra el personal de bodega.
type StockUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		stockRepo:   stockRepo,
		branchRepo:  branchRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// ListStock lista el inventario con filtros opcionales por sucursal y producto,
// resolviendo nombres y precio vigente para la vista.
func (uc *StockUseCase) ListStock(ctx context.Context, branchID, productID *int64) ([]dto.StockResponse, error) {
	entries, err := uc.stockRepo.List(branchID, productID)
	if err != nil {
		return nil, err
	}
	branches := make(map[int64]*entity.Branch)
	products := make(map[int64]*entity.Product)
	results := make([]dto.StockResponse, 0, len(entries))
	for _, e := range entries {
		branch, ok := branches[e.BranchID]
		if !ok {
			if branch, err = uc.branchRepo.GetByID(e.BranchID); err != nil {
				return nil, err
			}
			branches[e.BranchID] = branch
		}
		product, ok := products[e.ProductID]
		if !ok {
			if product, err = uc.productRepo.GetByID(e.ProductID); err != nil {
				return nil, err
			}
			products[e.ProductID] = product
		}
		resp := dto.StockResponse{
			ID:        e.ID,
			BranchID:  e.BranchID,
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
		}
		if branch != nil {
			resp.BranchName = branch.Name
		}
		if product != nil {
			resp.ProductName = product.Name
			resp.UnitPrice = product.Price
		}
		results = append(results, resp)
	}
	return results, nil
}

// AddStock suma unidades al inventario de (sucursal, producto). Si la entrada
// no existe la crea en cero antes de sumar; esta es la única vía de alta de
// entradas, el motor de ventas nunca las crea.
func (uc *StockUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) (*dto.StockResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var entry *entity.StockEntry
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.SaleRepository) error {
		entry, err = stockRepo.GetForUpdate(in.BranchID, in.ProductID)
		if err != nil {
			return err
		}
		if entry == nil {
			entry = &entity.StockEntry{BranchID: in.BranchID, ProductID: in.ProductID, Quantity: 0}
		}
		entry.Quantity += in.Quantity
		entry.UpdatedAt = time.Now()
		return stockRepo.Upsert(entry)
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockResponse{
		ID:          entry.ID,
		BranchID:    in.BranchID,
		BranchName:  branch.Name,
		ProductID:   in.ProductID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    entry.Quantity,
	}, nil
}

// UpdateStock fija la cantidad absoluta de una entrada existente.
func (uc *StockUseCase) UpdateStock(ctx context.Context, id int64, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var entry *entity.StockEntry
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.SaleRepository) error {
		var err error
		entry, err = stockRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrStockEntryNotFound
		}
		entry.Quantity = in.Quantity
		entry.UpdatedAt = time.Now()
		return stockRepo.Upsert(entry)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.StockResponse{ID: entry.ID, BranchID: entry.BranchID, ProductID: entry.ProductID, Quantity: entry.Quantity}
	if branch, err := uc.branchRepo.GetByID(entry.BranchID); err == nil && branch != nil {
		resp.BranchName = branch.Name
	}
	if product, err := uc.productRepo.GetByID(entry.ProductID); err == nil && product != nil {
		resp.ProductName = product.Name
		resp.UnitPrice = product.Price
	}
	return &resp, nil
}

// DeleteStock elimina una entrada de inventario. Mientras exista alguna venta
// que referencie el par (sucursal, producto) el borrado se rechaza con error
// de integridad referencial.
func (uc *StockUseCase) DeleteStock(ctx context.Context, id int64) error {
	entry, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrStockEntryNotFound
	}
	referenced, err := uc.saleRepo.ExistsByBranchAndProduct(entry.BranchID, entry.ProductID)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.stockRepo.Delete(id)
}
