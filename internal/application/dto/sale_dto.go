package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea del carrito: producto y cantidad solicitada.
type SaleLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// RegisterSaleRequest body para POST /api/sales.
type RegisterSaleRequest struct {
	BranchID int64             `json:"branch_id"`
	Lines    []SaleLineRequest `json:"lines"`
}

// SaleLineResponse línea de venta en respuestas. UnitPrice y Subtotal salen
// del precio capturado al registrar la venta; Name y Category son informativos.
type SaleLineResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse vista de una venta para la API.
type SaleResponse struct {
	ID         int64              `json:"id"`
	BranchName string             `json:"branch_name"`
	Date       time.Time          `json:"date"`
	Total      decimal.Decimal    `json:"total"`
	Active     bool               `json:"active"`
	Lines      []SaleLineResponse `json:"lines"`
}

// SaleFilters filtros opcionales para GET /api/sales.
type SaleFilters struct {
	BranchID   *int64
	Date       *time.Time
	OnlyActive bool
}
