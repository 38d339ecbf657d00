package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos-api/internal/application/checkout"
	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/application/sales"
	"github.com/jhoicas/caja-pos-api/internal/domain"
)

// SalesHandler maneja el checkout de caja y las consultas de ventas (protegido).
type SalesHandler struct {
	checkoutUC *checkout.UseCase
	salesUC    *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(checkoutUC *checkout.UseCase, salesUC *sales.UseCase) *SalesHandler {
	return &SalesHandler{checkoutUC: checkoutUC, salesUC: salesUC}
}

// Checkout godoc
// @Summary      Registrar una venta (checkout de caja)
// @Description  Valida el carrito, descuenta stock y registra venta + pago en
//
//	una sola transacción. Cualquier fallo hace rollback completo.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "carrito, paymentType, paidAmount, discount"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.checkoutUC.Checkout(c.Context(), in)
	if err != nil {
		var unknown *domain.UnknownVariantError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "UNKNOWN_BARCODE",
				Message: fmt.Sprintf("código no registrado: %s", unknown.Code),
			})
		}
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("stock insuficiente para %s: pedido %d, disponible %d",
					insufficient.Code, insufficient.Requested, insufficient.Available),
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de venta duplicado, reintente"})
		}
		// No filtrar detalles internos de la transacción al cliente
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo registrar la venta"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de ventas con sus pagos
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesHistoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) History(c *fiber.Ctx) error {
	out, err := h.salesUC.History(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DailyReport godoc
// @Summary      Cierre de caja de un día
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        day  query  string  false  "Día en formato 2006-01-02 (vacío = hoy)"
// @Success      200  {object}  dto.DailyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *SalesHandler) DailyReport(c *fiber.Ctx) error {
	out, err := h.salesUC.DailyReport(c.Context(), c.Query("day"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "day debe tener formato 2006-01-02"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
