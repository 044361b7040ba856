package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de una venta registrada.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		branchRepo:  branchRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// GenerateReceipt arma las líneas del ticket desde los precios capturados en
// la venta y delega el render al generador PDF.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID int64) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	lines, err := uc.saleRepo.GetLines(saleID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	found, err := uc.productRepo.GetAllByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(found))
	for _, p := range found {
		names[p.ID] = p.Name
	}

	receiptLines := make([]ReceiptLine, 0, len(lines))
	for _, l := range lines {
		receiptLines = append(receiptLines, ReceiptLine{
			ProductName: names[l.ProductID],
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal(),
		})
	}
	return uc.generator.GenerateReceipt(ctx, sale, branch, receiptLines)
}
