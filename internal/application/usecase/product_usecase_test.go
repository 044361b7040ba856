package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (compartidos con branch_usecase_test.go)
// ──────────────────────────────────────────────────────────────────────────────

type stubStore struct {
	branches     map[int64]*entity.Branch
	products     map[int64]*entity.Product
	soldProducts map[int64]bool
	soldBranches map[int64]bool
	nextID       int64
}

func newStubStore() *stubStore {
	return &stubStore{
		branches:     make(map[int64]*entity.Branch),
		products:     make(map[int64]*entity.Product),
		soldProducts: make(map[int64]bool),
		soldBranches: make(map[int64]bool),
		nextID:       1,
	}
}

func (s *stubStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *stubStore) addProduct(name, price, category string) *entity.Product {
	p := &entity.Product{ID: s.id(), Name: name, Price: decimal.RequireFromString(price), Category: category}
	s.products[p.ID] = p
	return p
}

func (s *stubStore) addBranch(name, address string) *entity.Branch {
	b := &entity.Branch{ID: s.id(), Name: name, Address: address}
	s.branches[b.ID] = b
	return b
}

type stubProductRepo struct{ s *stubStore }

func (r *stubProductRepo) Create(p *entity.Product) error { p.ID = r.s.id(); r.s.products[p.ID] = p; return nil }
func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) { return r.s.products[id], nil }
func (r *stubProductRepo) GetAllByIDs(ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p := r.s.products[id]; p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *stubProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *stubProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *stubProductRepo) Delete(id int64) error { delete(r.s.products, id); return nil }

type stubBranchRepo struct{ s *stubStore }

func (r *stubBranchRepo) Create(b *entity.Branch) error { b.ID = r.s.id(); r.s.branches[b.ID] = b; return nil }
func (r *stubBranchRepo) GetByID(id int64) (*entity.Branch, error) { return r.s.branches[id], nil }
func (r *stubBranchRepo) Update(b *entity.Branch) error { r.s.branches[b.ID] = b; return nil }
func (r *stubBranchRepo) List() ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range r.s.branches {
		out = append(out, b)
	}
	return out, nil
}
func (r *stubBranchRepo) Delete(id int64) error { delete(r.s.branches, id); return nil }

// stubSaleRepo solo responde las consultas de existencia de los guards.
type stubSaleRepo struct{ s *stubStore }

func (r *stubSaleRepo) Create(*entity.Sale) error                  { return nil }
func (r *stubSaleRepo) CreateLine(*entity.SaleLine) error          { return nil }
func (r *stubSaleRepo) Update(*entity.Sale) error                  { return nil }
func (r *stubSaleRepo) GetByID(int64) (*entity.Sale, error)        { return nil, nil }
func (r *stubSaleRepo) GetLines(int64) ([]*entity.SaleLine, error) { return nil, nil }
func (r *stubSaleRepo) FindByFilters(*int64, *time.Time, bool) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *stubSaleRepo) ExistsByBranch(id int64) (bool, error)  { return r.s.soldBranches[id], nil }
func (r *stubSaleRepo) ExistsByProduct(id int64) (bool, error) { return r.s.soldProducts[id], nil }
func (r *stubSaleRepo) ExistsByBranchAndProduct(int64, int64) (bool, error) {
	return false, nil
}

func newProductUC(s *stubStore) *ProductUseCase {
	return NewProductUseCase(&stubProductRepo{s: s}, &stubSaleRepo{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La búsqueda ignora mayúsculas y tildes: "cafe" encuentra "Café".
func TestProductList_BusquedaSinTildes(t *testing.T) {
	s := newStubStore()
	s.addProduct("Café Molido", "4.50", "Bebidas")
	s.addProduct("Té Verde", "3.00", "Bebidas")
	s.addProduct("Azúcar", "1.20", "Abarrotes")

	uc := newProductUC(s)

	out, err := uc.List("cafe")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Café Molido", out[0].Name)

	out, err = uc.List("AZUCAR")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Azúcar", out[0].Name)
}

// La búsqueda también matchea por categoría.
func TestProductList_BusquedaPorCategoria(t *testing.T) {
	s := newStubStore()
	s.addProduct("Café Molido", "4.50", "Bebidas")
	s.addProduct("Pan", "1.00", "Panadería")

	out, err := newProductUC(s).List("panaderia")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pan", out[0].Name)
}

// Sin término de búsqueda devuelve todo el catálogo.
func TestProductList_SinBusqueda(t *testing.T) {
	s := newStubStore()
	s.addProduct("Café", "4.50", "Bebidas")
	s.addProduct("Pan", "1.00", "Panadería")

	out, err := newProductUC(s).List("")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// Validación de producto: nombre, categoría y precio positivo.
func TestProductCreate_Validacion(t *testing.T) {
	uc := newProductUC(newStubStore())

	_, err := uc.Create(dto.ProductRequest{Name: "", Price: decimal.NewFromInt(1), Category: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.ProductRequest{Name: "Café", Price: decimal.Zero, Category: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.ProductRequest{Name: "Café", Price: decimal.NewFromInt(-2), Category: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.ProductRequest{Name: "Café", Price: decimal.RequireFromString("2.50"), Category: "Bebidas"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}

// Un producto vendido alguna vez no puede borrarse.
func TestProductDelete_RechazadoConVentas(t *testing.T) {
	s := newStubStore()
	p := s.addProduct("Café", "2.50", "Bebidas")
	s.soldProducts[p.ID] = true

	err := newProductUC(s).Delete(p.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, s.products[p.ID], "el producto debe conservarse")
}

func TestProductDelete_SinVentas(t *testing.T) {
	s := newStubStore()
	p := s.addProduct("Café", "2.50", "Bebidas")

	require.NoError(t, newProductUC(s).Delete(p.ID))
	assert.Nil(t, s.products[p.ID])

	err := newProductUC(s).Delete(p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := newProductUC(newStubStore())
	_, err := uc.Update(99, dto.ProductRequest{Name: "Café", Price: decimal.NewFromInt(2), Category: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
