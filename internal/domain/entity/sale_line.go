package entity

import "github.com/shopspring/decimal"

// SaleLine representa una línea de una venta. UnitPrice es el precio del
// producto al momento de registrar la venta; los totales históricos se
// recalculan siempre desde esta copia, no desde el precio vigente.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario capturado.
func (l *SaleLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
