package usecase

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, saleRepo: saleRepo}
}

// List lista el catálogo. Con search no vacío filtra por nombre o categoría
// sin distinguir mayúsculas ni tildes ("cafe" encuentra "Café").
func (uc *ProductUseCase) List(search string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	needle := foldText(search)
	results := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(foldText(p.Name), needle) &&
			!strings.Contains(foldText(p.Category), needle) {
			continue
		}
		results = append(results, toProductResponse(p))
	}
	return results, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{Name: in.Name, Price: in.Price, Category: in.Category}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update actualiza nombre, precio y categoría de un producto existente.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Category = in.Category
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto sin ventas asociadas; con ventas, el borrado se
// rechaza para no romper el histórico.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	sold, err := uc.saleRepo.ExistsByProduct(id)
	if err != nil {
		return err
	}
	if sold {
		return domain.ErrConflict
	}
	return uc.productRepo.Delete(id)
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Category: p.Category}
}

// foldTransformer quita marcas diacríticas (NFD → remover Mn → NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText normaliza para búsqueda: minúsculas y sin tildes.
func foldText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
