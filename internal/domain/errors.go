package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrBranchNotFound     = errors.New("sucursal no encontrada")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrStockEntryNotFound = errors.New("inventario no encontrado")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrSaleAlreadyVoided  = errors.New("esta venta ya fue anulada anteriormente")
	ErrIntegrityViolation = errors.New("error de integridad: no se encuentra inventario para reponer stock")
)

// InsufficientStockError indica que el stock disponible no cubre lo solicitado.
// Lleva el detalle disponible/solicitado para que el frontend lo muestre tal cual.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s'. Disponible: %d, solicitado: %d",
		e.Product, e.Available, e.Requested)
}

// NotStockedError indica que el producto no tiene inventario en la sucursal de la venta.
type NotStockedError struct {
	Product string
}

func (e *NotStockedError) Error() string {
	return fmt.Sprintf("el producto '%s' no está registrado en esta sucursal", e.Product)
}
