package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
)

// BranchHandler serves /api/branch: a manager working on the shop assigned to them. No route
// takes a shop id.
type BranchHandler struct {
	inv *inventory.UseCase
	errorResponder
}

// NewBranchHandler builds the handler.
func NewBranchHandler(inv *inventory.UseCase, r errorResponder) *BranchHandler {
	return &BranchHandler{inv: inv, errorResponder: r}
}

// Dashboard godoc
// @Summary      Own shop, stock and products not yet stocked
// @Tags         branch
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=dto.BranchDashboardResponse}
// @Failure      401  {object}  dto.Result
// @Router       /api/branch/dashboard [get]
func (h *BranchHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.inv.BranchDashboard(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Unstocked godoc
// @Summary      Catalog products the shop has no entry for
// @Tags         branch
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=[]dto.ProductResponse}
// @Router       /api/branch/unstocked [get]
func (h *BranchHandler) Unstocked(c *fiber.Ctx) error {
	out, err := h.inv.ListUnstocked(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// SetQuantity godoc
// @Summary      Set the quantity of a product (upsert)
// @Tags         branch
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetQuantityRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.Result{data=dto.StockEntryResponse}
// @Failure      400   {object}  dto.Result
// @Failure      404   {object}  dto.Result
// @Router       /api/branch/stock [post]
func (h *BranchHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.inv.SetQuantity(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("Stock updated", out))
}

// AddProduct godoc
// @Summary      Start tracking a product in the shop
// @Tags         branch
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "product_id, optional quantity"
// @Success      201   {object}  dto.Result{data=dto.StockEntryResponse}
// @Failure      400   {object}  dto.Result
// @Failure      409   {object}  dto.Result
// @Router       /api/branch/products [post]
func (h *BranchHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.inv.AddProduct(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Product added", out))
}

// StockSheet godoc
// @Summary      Printable stock sheet of the own shop
// @Tags         branch
// @Security     BearerAuth
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/branch/stock.pdf [get]
func (h *BranchHandler) StockSheet(c *fiber.Ctx) error {
	pdf, err := h.inv.BranchStockSheet(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return sendPDF(c, "stock.pdf", pdf)
}
