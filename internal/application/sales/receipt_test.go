package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// captureGenerator guarda lo que recibe y devuelve bytes fijos.
type captureGenerator struct {
	sale   *entity.Sale
	branch *entity.Branch
	lines  []ReceiptLine
}

func (g *captureGenerator) GenerateReceipt(_ context.Context, sale *entity.Sale, branch *entity.Branch, lines []ReceiptLine) ([]byte, error) {
	g.sale = sale
	g.branch = branch
	g.lines = lines
	return []byte("%PDF-fake"), nil
}

// El ticket se arma con el precio capturado en la línea, no con el del catálogo.
func TestGenerateReceipt_UsaPrecioCapturado(t *testing.T) {
	store := newFakeStore()
	branch := store.addBranch("Sucursal Centro")
	product := store.addProduct("Café", "2.50", "Bebidas")
	store.addStock(branch.ID, product.ID, 10)
	saleID := registerSaleForTest(t, store, branch.ID, []dto.SaleLineRequest{{ProductID: product.ID, Quantity: 2}})

	// El precio del catálogo cambia después de la venta.
	product.Price = dec("7.00")

	gen := &captureGenerator{}
	uc := NewReceiptUseCase(&fakeSaleRepo{store: store}, &fakeBranchRepo{store: store}, &fakeProductRepo{store: store}, gen)
	pdf, err := uc.GenerateReceipt(context.Background(), saleID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)

	require.NotNil(t, gen.sale)
	assert.Equal(t, "Sucursal Centro", gen.branch.Name)
	require.Len(t, gen.lines, 1)
	assert.Equal(t, "Café", gen.lines[0].ProductName)
	assert.True(t, gen.lines[0].UnitPrice.Equal(dec("2.50")))
	assert.True(t, gen.lines[0].Subtotal.Equal(dec("5.00")))
}

func TestGenerateReceipt_VentaInexistente(t *testing.T) {
	store := newFakeStore()
	uc := NewReceiptUseCase(&fakeSaleRepo{store: store}, &fakeBranchRepo{store: store}, &fakeProductRepo{store: store}, &captureGenerator{})
	_, err := uc.GenerateReceipt(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
