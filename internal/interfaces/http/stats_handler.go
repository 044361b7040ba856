package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
)

// StatsHandler maneja las peticiones HTTP de estadísticas (protegido).
type StatsHandler struct {
	uc *sales.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *sales.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// TopProduct devuelve el producto más vendido por unidades. Sin ventas aún,
// responde 404.
// GET /api/stats/top-product
func (h *StatsHandler) TopProduct(c *fiber.Ctx) error {
	out, err := h.uc.TopProduct(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aún no hay ventas registradas"})
	}
	return c.JSON(out)
}

// DailySales devuelve la serie de totales vendidos por día (solo ventas activas).
// GET /api/stats/daily-sales
func (h *StatsHandler) DailySales(c *fiber.Ctx) error {
	out, err := h.uc.DailySales(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
