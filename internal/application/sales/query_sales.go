package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// QuerySalesUseCase listados de solo lectura sobre ventas persistidas.
// Sin lógica de negocio más allá de componer filtros y mapear la vista
// igual que RegisterSale.
type QuerySalesUseCase struct {
	saleRepo    repository.SaleRepository
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
}

// NewQuerySalesUseCase construye el caso de uso.
func NewQuerySalesUseCase(
	saleRepo repository.SaleRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
) *QuerySalesUseCase {
	return &QuerySalesUseCase{saleRepo: saleRepo, branchRepo: branchRepo, productRepo: productRepo}
}

// FindSales busca ventas con filtros opcionales por sucursal, fecha y estado.
// Un filtro de sucursal inexistente es un error, no un resultado vacío.
func (uc *QuerySalesUseCase) FindSales(ctx context.Context, f dto.SaleFilters) ([]*dto.SaleResponse, error) {
	if f.BranchID != nil {
		branch, err := uc.branchRepo.GetByID(*f.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrBranchNotFound
		}
	}

	salesList, err := uc.saleRepo.FindByFilters(f.BranchID, f.Date, f.OnlyActive)
	if err != nil {
		return nil, err
	}

	branchNames := make(map[int64]string)
	results := make([]*dto.SaleResponse, 0, len(salesList))
	for _, sale := range salesList {
		lines, err := uc.saleRepo.GetLines(sale.ID)
		if err != nil {
			return nil, err
		}
		products, err := uc.productsForLines(lines)
		if err != nil {
			return nil, err
		}
		name, ok := branchNames[sale.BranchID]
		if !ok {
			branch, err := uc.branchRepo.GetByID(sale.BranchID)
			if err != nil {
				return nil, err
			}
			if branch != nil {
				name = branch.Name
			}
			branchNames[sale.BranchID] = name
		}
		results = append(results, toSaleResponse(sale, name, lines, products))
	}
	return results, nil
}

// GetSale obtiene una venta por ID con la misma vista que RegisterSale.
func (uc *QuerySalesUseCase) GetSale(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	lines, err := uc.saleRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productsForLines(lines)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}
	name := ""
	if branch != nil {
		name = branch.Name
	}
	return toSaleResponse(sale, name, lines, products), nil
}

func (uc *QuerySalesUseCase) productsForLines(lines []*entity.SaleLine) (map[int64]*entity.Product, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	found, err := uc.productRepo.GetAllByIDs(ids)
	if err != nil {
		return nil, err
	}
	products := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	return products, nil
}
