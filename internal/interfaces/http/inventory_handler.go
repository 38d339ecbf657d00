package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/application/inventory"
	"github.com/jhoicas/caja-pos-api/internal/domain"
)

// LabelGenerator renderiza el PDF de etiquetas de código de barras.
type LabelGenerator interface {
	GenerateLabels(codeText string, quantity int) ([]byte, error)
}

// InventoryHandler maneja variantes, existencias y etiquetas (protegido).
type InventoryHandler struct {
	uc     *inventory.UseCase
	labels LabelGenerator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, labels LabelGenerator) *InventoryHandler {
	return &InventoryHandler{uc: uc, labels: labels}
}

// CreateOrUpdate godoc
// @Summary      Alta/actualización masiva de variantes
// @Description  Para SKUs nuevos genera el código de barras y crea la variante
//
//	con su stock inicial; para existentes actualiza atributos y repone stock.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVariantsRequest  true  "items"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) CreateOrUpdate(c *fiber.Ctx) error {
	var in dto.CreateVariantsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateOrUpdate(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU o código duplicado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "inventario actualizado"})
}

// List godoc
// @Summary      Listar variantes con su stock actual
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VariantResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PriceCheck godoc
// @Summary      Consulta de precio por código escaneado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "código de barras"
// @Success      200  {object}  dto.PriceCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/barcode/{barcode} [get]
func (h *InventoryHandler) PriceCheck(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Context(), c.Params("barcode"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de una variante
// @Description  Solo admite los campos permitidos: item_name, design_no, size,
//
//	color y price. Campos ausentes no se tocan.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        barcode  path  string                    true  "código de barras"
// @Param        body     body  dto.VariantUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{barcode} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.VariantUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("barcode"), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "variante actualizada"})
}

// Delete godoc
// @Summary      Baja de variante por SKU
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteVariantRequest  true  "sku"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteVariantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Delete(c.Context(), in.SKU); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sku no registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "variante eliminada"})
}

// PrintLabels godoc
// @Summary      Imprimir etiquetas de código de barras (PDF)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.PrintLabelsRequest  true  "barcode, quantity"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/labels [post]
func (h *InventoryHandler) PrintLabels(c *fiber.Ctx) error {
	var in dto.PrintLabelsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode y quantity >= 1 requeridos"})
	}
	pdfBytes, err := h.labels.GenerateLabels(in.Code, in.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="labels.pdf"`)
	return c.Send(pdfBytes)
}
