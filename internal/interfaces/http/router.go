package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/auth"
	"github.com/tu-usuario/ventas-pro/internal/application/inventory"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC   *usecase.BranchUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *inventory.StockUseCase
	RegisterUC *sales.RegisterSaleUseCase
	VoidUC     *sales.VoidSaleUseCase
	QueryUC    *sales.QuerySalesUseCase
	ReceiptUC  *sales.ReceiptUseCase
	StatsUC    *sales.StatsUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Branches (protegido)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", RequireRole(entity.RoleAdmin), branchHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/add", stockHandler.Add)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RegisterUC, deps.VoidUC, deps.QueryUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Register)
	salesGroup.Get("/", saleHandler.Find)
	salesGroup.Delete("/:id", saleHandler.Void)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Stats (protegido)
	stats := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/top-product", statsHandler.TopProduct)
	stats.Get("/daily-sales", statsHandler.DailySales)
}

// parseID lee el parámetro :id como int64.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// queryInt64 lee un query param numérico opcional; nil si no viene.
func queryInt64(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
