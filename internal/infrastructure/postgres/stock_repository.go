package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, branch_id, product_id, quantity, updated_at`

// Get obtiene la entrada de inventario de (sucursal, producto).
// Devuelve (nil, nil) si el producto no está registrado en esa sucursal.
func (r *StockRepo) Get(branchID, productID int64) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries WHERE branch_id = $1 AND product_id = $2`
	return r.scanOne(query, branchID, productID)
}

// GetForUpdate obtiene la entrada y bloquea la fila hasta el fin de la
// transacción (SELECT FOR UPDATE): serializa lectura+escritura por fila sin
// bloquear pares (sucursal, producto) disjuntos.
func (r *StockRepo) GetForUpdate(branchID, productID int64) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries WHERE branch_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(query, branchID, productID)
}

// GetByID obtiene una entrada por su ID.
func (r *StockRepo) GetByID(id int64) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene una entrada por ID bloqueando la fila.
func (r *StockRepo) GetByIDForUpdate(id int64) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

// Upsert inserta o actualiza la cantidad por (sucursal, producto) y deja el
// ID generado en la entidad.
func (r *StockRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (branch_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (branch_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.BranchID, entry.ProductID, entry.Quantity, entry.UpdatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List lista entradas con filtros opcionales por sucursal y producto.
func (r *StockRepo) List(branchID, productID *int64) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries
		WHERE ($1::bigint IS NULL OR branch_id = $1)
		  AND ($2::bigint IS NULL OR product_id = $2)
		ORDER BY branch_id, product_id`
	rows, err := r.q.Query(context.Background(), query, branchID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.BranchID, &e.ProductID, &e.Quantity, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *StockRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(query string, args ...any) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&e.ID, &e.BranchID, &e.ProductID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &e, nil
}
