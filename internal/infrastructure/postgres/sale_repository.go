package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y deja el ID generado en la entidad.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (branch_id, date, total, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.BranchID, sale.Date, sale.Total, sale.Active,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea con su precio unitario capturado.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.SaleID, line.ProductID, line.Quantity, line.UnitPrice,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// Update actualiza el flag active (único campo mutable de una venta).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET active = $2 WHERE id = $1`, sale.ID, sale.Active)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `
		SELECT id, branch_id, date, total, active
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.BranchID, &s.Date, &s.Total, &s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetLines obtiene las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetLines(saleID int64) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// FindByFilters compone predicados opcionales: sucursal, día calendario y
// soloActivas. Filtros en nil no restringen.
func (r *SaleRepo) FindByFilters(branchID *int64, date *time.Time, onlyActive bool) ([]*entity.Sale, error) {
	query := `
		SELECT id, branch_id, date, total, active
		FROM sales
		WHERE ($1::bigint IS NULL OR branch_id = $1)
		  AND ($2::date IS NULL OR date::date = $2::date)
		  AND (NOT $3 OR active)
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, branchID, date, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BranchID, &s.Date, &s.Total, &s.Active); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ExistsByBranch indica si la sucursal tiene ventas registradas.
func (r *SaleRepo) ExistsByBranch(branchID int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM sales WHERE branch_id = $1)`, branchID)
}

// ExistsByProduct indica si el producto aparece en alguna línea de venta.
func (r *SaleRepo) ExistsByProduct(productID int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM sale_lines WHERE product_id = $1)`, productID)
}

// ExistsByBranchAndProduct indica si alguna venta de la sucursal incluye el producto.
func (r *SaleRepo) ExistsByBranchAndProduct(branchID, productID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sale_lines l
			JOIN sales s ON s.id = l.sale_id
			WHERE s.branch_id = $1 AND l.product_id = $2
		)`
	return r.exists(query, branchID, productID)
}

func (r *SaleRepo) exists(query string, args ...any) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists sale: %w", err)
	}
	return exists, nil
}
