package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
)

// StockHandler serves the one stock route shared by both roles. The use case decides
// whether the caller may read the shop.
type StockHandler struct {
	inv *inventory.UseCase
	errorResponder
}

// NewStockHandler builds the handler.
func NewStockHandler(inv *inventory.UseCase, r errorResponder) *StockHandler {
	return &StockHandler{inv: inv, errorResponder: r}
}

// ShopStock godoc
// @Summary      Stock of a shop (admin, or the shop's own manager)
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Shop ID"
// @Success      200  {object}  dto.Result{data=dto.ShopStockResponse}
// @Failure      401  {object}  dto.Result
// @Failure      404  {object}  dto.Result
// @Router       /api/shops/{id}/stock [get]
func (h *StockHandler) ShopStock(c *fiber.Ctx) error {
	out, err := h.inv.GetShopStock(c.Context(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}
