package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos-api/internal/application/dto"
	"github.com/jhoicas/caja-pos-api/internal/application/shopify"
)

// ShopifyHandler dispara la sincronización de variantes con Shopify (protegido).
type ShopifyHandler struct {
	uc *shopify.UseCase
}

// NewShopifyHandler construye el handler.
func NewShopifyHandler(uc *shopify.UseCase) *ShopifyHandler {
	return &ShopifyHandler{uc: uc}
}

// Sync godoc
// @Summary      Sincronizar variantes con Shopify
// @Description  Empuja precio y stock de todas las variantes. Fallos por ítem
//
//	se cuentan y no detienen el lote.
//
// @Tags         shopify
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  shopify.SyncResult
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/shopify/sync [post]
func (h *ShopifyHandler) Sync(c *fiber.Ctx) error {
	out, err := h.uc.SyncAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
