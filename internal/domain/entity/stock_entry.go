package entity

import "time"

// StockEntry representa la cantidad disponible de un producto en una sucursal.
// Única por (sucursal, producto); la cantidad nunca baja de cero.
type StockEntry struct {
	ID        int64
	BranchID  int64
	ProductID int64
	Quantity  int
	UpdatedAt time.Time
}
