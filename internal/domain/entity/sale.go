package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. El registro es inmutable salvo el
// flag Active, que solo transiciona true→false en la anulación lógica.
type Sale struct {
	ID       int64
	BranchID int64
	Date     time.Time
	Total    decimal.Decimal
	Active   bool
}
