package dto

import "github.com/shopspring/decimal"

// TopProductResponse producto más vendido por unidades.
type TopProductResponse struct {
	ProductName string `json:"product_name"`
	UnitsSold   int64  `json:"units_sold"`
}

// DailySalesPoint punto de la serie de ventas diarias. Las claves JSON
// conservan el contrato del frontend original (name/ventas).
type DailySalesPoint struct {
	Day   string          `json:"name"` // YYYY-MM-DD
	Total decimal.Decimal `json:"ventas"`
}
