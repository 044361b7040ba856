package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el caso de uso de inventario.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	branches map[int64]*entity.Branch
	products map[int64]*entity.Product
	entries  map[int64]*entity.StockEntry // por ID
	soldPair map[[2]int64]bool            // (branch, product) con ventas
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		branches: make(map[int64]*entity.Branch),
		products: make(map[int64]*entity.Product),
		entries:  make(map[int64]*entity.StockEntry),
		soldPair: make(map[[2]int64]bool),
		nextID:   1,
	}
}

func (s *memStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) addBranch(name string) *entity.Branch {
	b := &entity.Branch{ID: s.id(), Name: name}
	s.branches[b.ID] = b
	return b
}

func (s *memStore) addProduct(name string, price string) *entity.Product {
	d, _ := decimal.NewFromString(price)
	p := &entity.Product{ID: s.id(), Name: name, Price: d, Category: "General"}
	s.products[p.ID] = p
	return p
}

func (s *memStore) addEntry(branchID, productID int64, qty int) *entity.StockEntry {
	e := &entity.StockEntry{ID: s.id(), BranchID: branchID, ProductID: productID, Quantity: qty, UpdatedAt: time.Now()}
	s.entries[e.ID] = e
	return e
}

func (s *memStore) findPair(branchID, productID int64) *entity.StockEntry {
	for _, e := range s.entries {
		if e.BranchID == branchID && e.ProductID == productID {
			return e
		}
	}
	return nil
}

type memBranchRepo struct{ s *memStore }

func (r *memBranchRepo) Create(b *entity.Branch) error                { b.ID = r.s.id(); r.s.branches[b.ID] = b; return nil }
func (r *memBranchRepo) GetByID(id int64) (*entity.Branch, error)     { return r.s.branches[id], nil }
func (r *memBranchRepo) Update(b *entity.Branch) error                { return nil }
func (r *memBranchRepo) List() ([]*entity.Branch, error)              { return nil, nil }
func (r *memBranchRepo) Delete(id int64) error                        { delete(r.s.branches, id); return nil }

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error               { p.ID = r.s.id(); r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id int64) (*entity.Product, error)    { return r.s.products[id], nil }
func (r *memProductRepo) GetAllByIDs([]int64) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error               { return nil }
func (r *memProductRepo) List() ([]*entity.Product, error)             { return nil, nil }
func (r *memProductRepo) Delete(id int64) error                        { delete(r.s.products, id); return nil }

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(branchID, productID int64) (*entity.StockEntry, error) {
	return r.s.findPair(branchID, productID), nil
}
func (r *memStockRepo) GetForUpdate(branchID, productID int64) (*entity.StockEntry, error) {
	return r.Get(branchID, productID)
}
func (r *memStockRepo) GetByID(id int64) (*entity.StockEntry, error)          { return r.s.entries[id], nil }
func (r *memStockRepo) GetByIDForUpdate(id int64) (*entity.StockEntry, error) { return r.s.entries[id], nil }
func (r *memStockRepo) Upsert(e *entity.StockEntry) error {
	if existing := r.s.findPair(e.BranchID, e.ProductID); existing != nil {
		e.ID = existing.ID
	} else if e.ID == 0 {
		e.ID = r.s.id()
	}
	r.s.entries[e.ID] = e
	return nil
}
func (r *memStockRepo) List(branchID, productID *int64) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.entries {
		if branchID != nil && e.BranchID != *branchID {
			continue
		}
		if productID != nil && e.ProductID != *productID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
func (r *memStockRepo) Delete(id int64) error { delete(r.s.entries, id); return nil }

// memSaleRepo solo responde las consultas de existencia que usa inventario.
type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(*entity.Sale) error          { return nil }
func (r *memSaleRepo) CreateLine(*entity.SaleLine) error  { return nil }
func (r *memSaleRepo) Update(*entity.Sale) error          { return nil }
func (r *memSaleRepo) GetByID(int64) (*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) GetLines(int64) ([]*entity.SaleLine, error) { return nil, nil }
func (r *memSaleRepo) FindByFilters(*int64, *time.Time, bool) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ExistsByBranch(int64) (bool, error)  { return false, nil }
func (r *memSaleRepo) ExistsByProduct(int64) (bool, error) { return false, nil }
func (r *memSaleRepo) ExistsByBranchAndProduct(branchID, productID int64) (bool, error) {
	return r.s.soldPair[[2]int64{branchID, productID}], nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(&memStockRepo{s: r.s}, &memSaleRepo{s: r.s})
}

func newStockUC(s *memStore) *StockUseCase {
	return NewStockUseCase(
		&memTxRunner{s: s},
		&memStockRepo{s: s},
		&memBranchRepo{s: s},
		&memProductRepo{s: s},
		&memSaleRepo{s: s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// AddStock sobre un par sin entrada la crea en cero y suma.
func TestAddStock_CreaEntradaSiNoExiste(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")

	uc := newStockUC(s)
	out, err := uc.AddStock(context.Background(), dto.AddStockRequest{
		BranchID: branch.ID, ProductID: product.ID, Quantity: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Quantity)
	assert.Equal(t, "Sucursal Centro", out.BranchName)
	assert.Equal(t, "Café", out.ProductName)

	entry := s.findPair(branch.ID, product.ID)
	require.NotNil(t, entry, "la entrada debe existir tras el alta")
	assert.Equal(t, 30, entry.Quantity)
}

// AddStock sobre una entrada existente acumula.
func TestAddStock_SumaSobreExistente(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")
	s.addEntry(branch.ID, product.ID, 10)

	out, err := newStockUC(s).AddStock(context.Background(), dto.AddStockRequest{
		BranchID: branch.ID, ProductID: product.ID, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Quantity)
}

// Cantidad no positiva, sucursal o producto inexistente.
func TestAddStock_Invalidos(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")

	uc := newStockUC(s)

	_, err := uc.AddStock(context.Background(), dto.AddStockRequest{BranchID: branch.ID, ProductID: product.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddStock(context.Background(), dto.AddStockRequest{BranchID: 999, ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	_, err = uc.AddStock(context.Background(), dto.AddStockRequest{BranchID: branch.ID, ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// UpdateStock fija la cantidad absoluta, incluso a cero.
func TestUpdateStock_FijaCantidad(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")
	entry := s.addEntry(branch.ID, product.ID, 10)

	uc := newStockUC(s)
	out, err := uc.UpdateStock(context.Background(), entry.ID, dto.UpdateStockRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)

	_, err = uc.UpdateStock(context.Background(), entry.ID, dto.UpdateStockRequest{Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStock(context.Background(), 999, dto.UpdateStockRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrStockEntryNotFound)
}

// DeleteStock se rechaza mientras haya ventas que referencien el par.
func TestDeleteStock_RechazadoConVentas(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")
	entry := s.addEntry(branch.ID, product.ID, 10)
	s.soldPair[[2]int64{branch.ID, product.ID}] = true

	err := newStockUC(s).DeleteStock(context.Background(), entry.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, s.entries[entry.ID], "la entrada no debe borrarse")
}

// DeleteStock sin ventas asociadas borra la entrada.
func TestDeleteStock_SinVentas(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")
	entry := s.addEntry(branch.ID, product.ID, 10)

	require.NoError(t, newStockUC(s).DeleteStock(context.Background(), entry.ID))
	assert.Nil(t, s.entries[entry.ID])

	err := newStockUC(s).DeleteStock(context.Background(), entry.ID)
	assert.ErrorIs(t, err, domain.ErrStockEntryNotFound)
}

// ListStock resuelve nombres y precio vigente.
func TestListStock_ResuelveNombres(t *testing.T) {
	s := newMemStore()
	branch := s.addBranch("Sucursal Centro")
	product := s.addProduct("Café", "2.50")
	s.addEntry(branch.ID, product.ID, 7)

	out, err := newStockUC(s).ListStock(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Sucursal Centro", out[0].BranchName)
	assert.Equal(t, "Café", out[0].ProductName)
	assert.Equal(t, 7, out[0].Quantity)
	assert.True(t, out[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
}
