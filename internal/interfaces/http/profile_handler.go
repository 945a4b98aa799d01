package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
)

// ProfileHandler serves the routes open to any signed-in user.
type ProfileHandler struct {
	users *usecase.UserUseCase
	errorResponder
}

// NewProfileHandler builds the handler.
func NewProfileHandler(users *usecase.UserUseCase, r errorResponder) *ProfileHandler {
	return &ProfileHandler{users: users, errorResponder: r}
}

// Get godoc
// @Summary      Own profile
// @Tags         profile
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Result{data=dto.UserResponse}
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.users.GetProfile(c.Context(), GetIdentity(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Update display name, email and contact
// @Tags         profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "name, email, contact"
// @Success      200   {object}  dto.Result{data=dto.UserResponse}
// @Failure      400   {object}  dto.Result
// @Failure      409   {object}  dto.Result
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.UpdateProfile(c.Context(), GetIdentity(c), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK("Profile updated", out))
}
