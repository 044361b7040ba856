package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura sobre ventas.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// TopSellingProduct devuelve el producto con más unidades vendidas en ventas
// activas. Devuelve (nil, nil) si aún no hay ventas.
func (r *StatsRepo) TopSellingProduct(ctx context.Context) (*repository.TopProductResult, error) {
	query := `
		SELECT p.name, SUM(l.quantity) AS units
		FROM sale_lines l
		JOIN sales s ON s.id = l.sale_id
		JOIN products p ON p.id = l.product_id
		WHERE s.active
		GROUP BY p.id, p.name
		ORDER BY units DESC, p.name
		LIMIT 1`
	var result repository.TopProductResult
	err := r.pool.QueryRow(ctx, query).Scan(&result.ProductName, &result.UnitsSold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top selling product: %w", err)
	}
	return &result, nil
}

// DailySalesTotals agrega el total vendido por día calendario sobre ventas
// activas, en orden cronológico.
func (r *StatsRepo) DailySalesTotals(ctx context.Context) ([]repository.DailySalesResult, error) {
	query := `
		SELECT date::date AS day, SUM(total) AS total
		FROM sales
		WHERE active
		GROUP BY day
		ORDER BY day`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("daily sales totals: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySalesResult
	for rows.Next() {
		var point repository.DailySalesResult
		if err := rows.Scan(&point.Day, &point.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, point)
	}
	return list, rows.Err()
}
