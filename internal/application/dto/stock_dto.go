package dto

import "github.com/shopspring/decimal"

// AddStockRequest body para POST /api/stock/add. Crea la entrada en cero si
// no existe y suma la cantidad.
type AddStockRequest struct {
	BranchID  int64 `json:"branch_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// UpdateStockRequest body para PUT /api/stock/:id (fija la cantidad absoluta).
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// StockResponse vista de una entrada de inventario con nombres resueltos.
type StockResponse struct {
	ID          int64           `json:"id"`
	BranchID    int64           `json:"branch_id"`
	BranchName  string          `json:"branch_name"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}
