package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. fakeStore simula la base: fakeTxRunner toma un snapshot
// antes de ejecutar el callback y lo restaura si falla, emulando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	branchID  int64
	productID int64
}

type fakeStore struct {
	branches map[int64]*entity.Branch
	products map[int64]*entity.Product
	stock    map[stockKey]*entity.StockEntry
	sales    map[int64]*entity.Sale
	lines    map[int64][]*entity.SaleLine // por sale ID
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		branches: make(map[int64]*entity.Branch),
		products: make(map[int64]*entity.Product),
		stock:    make(map[stockKey]*entity.StockEntry),
		sales:    make(map[int64]*entity.Sale),
		lines:    make(map[int64][]*entity.SaleLine),
		nextID:   1,
	}
}

func (s *fakeStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *fakeStore) addBranch(name string) *entity.Branch {
	b := &entity.Branch{ID: s.id(), Name: name, Address: "Calle Falsa 123"}
	s.branches[b.ID] = b
	return b
}

func (s *fakeStore) addProduct(name, price, category string) *entity.Product {
	p := &entity.Product{ID: s.id(), Name: name, Price: dec(price), Category: category}
	s.products[p.ID] = p
	return p
}

func (s *fakeStore) addStock(branchID, productID int64, qty int) *entity.StockEntry {
	e := &entity.StockEntry{ID: s.id(), BranchID: branchID, ProductID: productID, Quantity: qty, UpdatedAt: time.Now()}
	s.stock[stockKey{branchID, productID}] = e
	return e
}

func (s *fakeStore) stockQty(branchID, productID int64) int {
	e := s.stock[stockKey{branchID, productID}]
	if e == nil {
		return -1
	}
	return e.Quantity
}

// snapshot clona el estado mutable (stock, ventas y líneas).
func (s *fakeStore) snapshot() *fakeStore {
	clone := newFakeStore()
	clone.nextID = s.nextID
	clone.branches = s.branches
	clone.products = s.products
	for k, e := range s.stock {
		copied := *e
		clone.stock[k] = &copied
	}
	for id, sale := range s.sales {
		copied := *sale
		clone.sales[id] = &copied
	}
	for id, lines := range s.lines {
		copiedLines := make([]*entity.SaleLine, len(lines))
		for i, l := range lines {
			copied := *l
			copiedLines[i] = &copied
		}
		clone.lines[id] = copiedLines
	}
	return clone
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.nextID = snap.nextID
	s.stock = snap.stock
	s.sales = snap.sales
	s.lines = snap.lines
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type fakeBranchRepo struct{ store *fakeStore }

func (r *fakeBranchRepo) Create(b *entity.Branch) error { b.ID = r.store.id(); r.store.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) GetByID(id int64) (*entity.Branch, error) { return r.store.branches[id], nil }
func (r *fakeBranchRepo) Update(b *entity.Branch) error { r.store.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) List() ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range r.store.branches {
		out = append(out, b)
	}
	return out, nil
}
func (r *fakeBranchRepo) Delete(id int64) error { delete(r.store.branches, id); return nil }

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { p.ID = r.store.id(); r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) { return r.store.products[id], nil }
func (r *fakeProductRepo) GetAllByIDs(ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p := r.store.products[id]; p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id int64) error { delete(r.store.products, id); return nil }

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) Get(branchID, productID int64) (*entity.StockEntry, error) {
	return r.store.stock[stockKey{branchID, productID}], nil
}
func (r *fakeStockRepo) GetForUpdate(branchID, productID int64) (*entity.StockEntry, error) {
	return r.Get(branchID, productID)
}
func (r *fakeStockRepo) GetByID(id int64) (*entity.StockEntry, error) {
	for _, e := range r.store.stock {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeStockRepo) GetByIDForUpdate(id int64) (*entity.StockEntry, error) { return r.GetByID(id) }
func (r *fakeStockRepo) Upsert(e *entity.StockEntry) error {
	key := stockKey{e.BranchID, e.ProductID}
	if existing := r.store.stock[key]; existing != nil {
		e.ID = existing.ID
	} else if e.ID == 0 {
		e.ID = r.store.id()
	}
	r.store.stock[key] = e
	return nil
}
func (r *fakeStockRepo) List(branchID, productID *int64) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.store.stock {
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
func (r *fakeStockRepo) Delete(id int64) error {
	for k, e := range r.store.stock {
		if e.ID == id {
			delete(r.store.stock, k)
			return nil
		}
	}
	return nil
}

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.store.id()
	r.store.sales[sale.ID] = sale
	return nil
}
func (r *fakeSaleRepo) CreateLine(line *entity.SaleLine) error {
	line.ID = r.store.id()
	r.store.lines[line.SaleID] = append(r.store.lines[line.SaleID], line)
	return nil
}
func (r *fakeSaleRepo) Update(sale *entity.Sale) error { r.store.sales[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) { return r.store.sales[id], nil }
func (r *fakeSaleRepo) GetLines(saleID int64) ([]*entity.SaleLine, error) {
	return r.store.lines[saleID], nil
}
func (r *fakeSaleRepo) FindByFilters(branchID *int64, date *time.Time, onlyActive bool) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.store.sales {
		if branchID != nil && sale.BranchID != *branchID {
			continue
		}
		if date != nil && !sameDay(sale.Date, *date) {
			continue
		}
		if onlyActive && !sale.Active {
			continue
		}
		out = append(out, sale)
	}
	return out, nil
}
func (r *fakeSaleRepo) ExistsByBranch(branchID int64) (bool, error) {
	for _, sale := range r.store.sales {
		if sale.BranchID == branchID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeSaleRepo) ExistsByProduct(productID int64) (bool, error) {
	for _, lines := range r.store.lines {
		for _, l := range lines {
			if l.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}
func (r *fakeSaleRepo) ExistsByBranchAndProduct(branchID, productID int64) (bool, error) {
	for saleID, lines := range r.store.lines {
		sale := r.store.sales[saleID]
		if sale == nil || sale.BranchID != branchID {
			continue
		}
		for _, l := range lines {
			if l.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// fakeTxRunner emula la atomicidad: si el callback falla, restaura el estado
// previo del store.
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(&fakeStockRepo{store: r.store}, &fakeSaleRepo{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
