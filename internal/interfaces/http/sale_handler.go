package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
	"github.com/tu-usuario/ventas-pro/internal/domain"
)

// SaleHandler maneja las peticiones HTTP del motor de ventas (protegido).
type SaleHandler struct {
	registerUC *sales.RegisterSaleUseCase
	voidUC     *sales.VoidSaleUseCase
	queryUC    *sales.QuerySalesUseCase
	receiptUC  *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	registerUC *sales.RegisterSaleUseCase,
	voidUC *sales.VoidSaleUseCase,
	queryUC *sales.QuerySalesUseCase,
	receiptUC *sales.ReceiptUseCase,
) *SaleHandler {
	return &SaleHandler{registerUC: registerUC, voidUC: voidUC, queryUC: queryUC, receiptUC: receiptUC}
}

// Register registra una venta completa: valida todo el carrito y descuenta
// stock de forma atómica. Cualquier línea inválida rechaza la venta entera.
// POST /api/sales
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.RegisterSale(c.Context(), in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		var notStocked *domain.NotStockedError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y al menos una línea con quantity > 0 son requeridos"})
		case errors.Is(err, domain.ErrBranchNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		case errors.As(err, &notStocked):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_STOCKED", Message: notStocked.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Find busca ventas con filtros opcionales ?branch_id=, ?date=YYYY-MM-DD y
// ?only_active=. Una búsqueda sin resultados responde 404.
// GET /api/sales
func (h *SaleHandler) Find(c *fiber.Ctx) error {
	branchID, err := queryInt64(c, "branch_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id debe ser numérico"})
	}
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		date = &parsed
	}
	filters := dto.SaleFilters{
		BranchID:   branchID,
		Date:       date,
		OnlyActive: c.QueryBool("only_active", false),
	}
	out, err := h.queryUC.FindSales(c.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrBranchNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no se encontraron ventas con esos criterios"})
	}
	return c.JSON(out)
}

// Void anula lógicamente una venta y repone el stock descontado.
// DELETE /api/sales/:id
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.voidUC.VoidSale(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrSaleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrSaleAlreadyVoided):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_VOIDED", Message: domain.ErrSaleAlreadyVoided.Error()})
		case errors.Is(err, domain.ErrIntegrityViolation):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: domain.ErrIntegrityViolation.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "venta anulada y stock repuesto"})
}

// Receipt genera el ticket PDF de una venta.
// GET /api/sales/:id/receipt
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	pdfBytes, err := h.receiptUC.GenerateReceipt(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="venta-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
