package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
)

// PublicHandler serves the directory anyone can browse: districts, shops and the catalog.
// Stock quantities are not part of it.
type PublicHandler struct {
	org      *organization.UseCase
	products *usecase.ProductUseCase
	errorResponder
}

// NewPublicHandler builds the handler.
func NewPublicHandler(org *organization.UseCase, products *usecase.ProductUseCase, r errorResponder) *PublicHandler {
	return &PublicHandler{org: org, products: products, errorResponder: r}
}

// ListDistricts godoc
// @Summary      List districts
// @Tags         directory
// @Produce      json
// @Success      200  {object}  dto.Result{data=[]dto.DistrictResponse}
// @Router       /api/districts [get]
func (h *PublicHandler) ListDistricts(c *fiber.Ctx) error {
	out, err := h.org.ListDistricts(c.Context())
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListDistrictShops godoc
// @Summary      Shops of a district
// @Tags         directory
// @Produce      json
// @Param        id   path  string  true  "District ID"
// @Success      200  {object}  dto.Result{data=dto.DistrictShopsResponse}
// @Failure      404  {object}  dto.Result
// @Router       /api/districts/{id}/shops [get]
func (h *PublicHandler) ListDistrictShops(c *fiber.Ctx) error {
	out, err := h.org.ListShopsByDistrict(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetShop godoc
// @Summary      Shop detail with manager contact
// @Tags         directory
// @Produce      json
// @Param        id   path  string  true  "Shop ID"
// @Success      200  {object}  dto.Result{data=dto.ShopResponse}
// @Failure      404  {object}  dto.Result
// @Router       /api/shops/{id} [get]
func (h *PublicHandler) GetShop(c *fiber.Ctx) error {
	out, err := h.org.GetShop(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListProducts godoc
// @Summary      Product catalog
// @Tags         directory
// @Produce      json
// @Success      200  {object}  dto.Result{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *PublicHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.List(c.Context())
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}
