package sales

import (
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// toSaleResponse arma la vista de una venta: nombre de sucursal y, por línea,
// nombre/categoría del producto con el precio unitario capturado en la línea.
// Productos borrados del catálogo quedan con nombre vacío; el subtotal y el
// total no dependen de ellos.
func toSaleResponse(sale *entity.Sale, branchName string, lines []*entity.SaleLine, products map[int64]*entity.Product) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         sale.ID,
		BranchName: branchName,
		Date:       sale.Date,
		Total:      sale.Total,
		Active:     sale.Active,
		Lines:      make([]dto.SaleLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		line := dto.SaleLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		}
		if p := products[l.ProductID]; p != nil {
			line.ProductName = p.Name
			line.Category = p.Category
		}
		resp.Lines = append(resp.Lines, line)
	}
	return resp
}

// distinctProductIDs devuelve los IDs de producto de las líneas, sin repetidos
// y en orden de aparición.
func distinctProductIDs(lines []dto.SaleLineRequest) []int64 {
	seen := make(map[int64]bool, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}
