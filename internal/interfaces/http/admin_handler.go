package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/analytics"
	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
)

// AdminHandler serves /api/admin. Every route sits behind RequireRole(admin); the use cases
// check the identity again.
type AdminHandler struct {
	org       *organization.UseCase
	inv       *inventory.UseCase
	dashboard *analytics.DashboardUseCase
	errorResponder
}

// NewAdminHandler builds the handler.
func NewAdminHandler(org *organization.UseCase, inv *inventory.UseCase, dashboard *analytics.DashboardUseCase, r errorResponder) *AdminHandler {
	return &AdminHandler{org: org, inv: inv, dashboard: dashboard, errorResponder: r}
}

// Dashboard godoc
// @Summary      Network counts
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=dto.AdminDashboardResponse}
// @Failure      401  {object}  dto.Result
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// CreateDistrict godoc
// @Summary      Create a district
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistrictRequest  true  "district_name"
// @Success      201   {object}  dto.Result{data=dto.DistrictResponse}
// @Failure      400   {object}  dto.Result
// @Failure      409   {object}  dto.Result
// @Router       /api/admin/districts [post]
func (h *AdminHandler) CreateDistrict(c *fiber.Ctx) error {
	var in dto.CreateDistrictRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.org.CreateDistrict(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("District "+out.Name+" created", out))
}

// CreateShop godoc
// @Summary      Create a shop in a district
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShopRequest  true  "shop_name, district_id, address"
// @Success      201   {object}  dto.Result{data=dto.ShopResponse}
// @Failure      400   {object}  dto.Result
// @Failure      404   {object}  dto.Result
// @Router       /api/admin/shops [post]
func (h *AdminHandler) CreateShop(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.org.CreateShop(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Shop "+out.Name+" created", out))
}

// ListShops godoc
// @Summary      All shops with district and manager
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=[]dto.ShopResponse}
// @Router       /api/admin/shops [get]
func (h *AdminHandler) ListShops(c *fiber.Ctx) error {
	out, err := h.org.ListBranches(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListUnmanaged godoc
// @Summary      Shops without a manager
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=[]dto.ShopResponse}
// @Router       /api/admin/shops/unmanaged [get]
func (h *AdminHandler) ListUnmanaged(c *fiber.Ctx) error {
	out, err := h.org.ShopsWithoutManager(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetShop godoc
// @Summary      Branch detail with stock
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Shop ID"
// @Success      200  {object}  dto.Result{data=dto.ShopStockResponse}
// @Failure      404  {object}  dto.Result
// @Router       /api/admin/shops/{id} [get]
func (h *AdminHandler) GetShop(c *fiber.Ctx) error {
	out, err := h.inv.GetShopStock(c.Context(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// StockSheet godoc
// @Summary      Printable stock sheet of a shop
// @Tags         admin
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path  string  true  "Shop ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Result
// @Router       /api/admin/shops/{id}/stock.pdf [get]
func (h *AdminHandler) StockSheet(c *fiber.Ctx) error {
	pdf, err := h.inv.StockSheet(c.Context(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return sendPDF(c, "stock-"+c.Params("id")+".pdf", pdf)
}

// AssignManager godoc
// @Summary      Create a manager account bound to a shop
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignManagerRequest  true  "shop_id and manager fields"
// @Success      201   {object}  dto.Result{data=dto.AssignManagerResponse}
// @Failure      400   {object}  dto.Result
// @Failure      404   {object}  dto.Result
// @Failure      409   {object}  dto.Result
// @Router       /api/admin/managers [post]
func (h *AdminHandler) AssignManager(c *fiber.Ctx) error {
	var in dto.AssignManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.org.AssignManager(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Manager assigned", out))
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
