package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. El precio es el vigente para
// nuevas ventas; cada línea de venta guarda su propia copia al momento de venderse.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal // precio unitario de venta
	Category string
}
