package entity

// Branch representa una sucursal física del supermercado con su propio inventario.
type Branch struct {
	ID      int64
	Name    string
	Address string
}
