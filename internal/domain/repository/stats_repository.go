package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult producto más vendido por unidades acumuladas.
type TopProductResult struct {
	ProductName string
	UnitsSold   int64
}

// DailySalesResult total vendido en un día calendario (solo ventas activas).
type DailySalesResult struct {
	Day   time.Time
	Total decimal.Decimal
}

// StatsRepository consultas de solo lectura para estadísticas de ventas.
type StatsRepository interface {
	// TopSellingProduct devuelve (nil, nil) si aún no hay ventas.
	TopSellingProduct(ctx context.Context) (*TopProductResult, error)
	DailySalesTotals(ctx context.Context) ([]DailySalesResult, error)
}
