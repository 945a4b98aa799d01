package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

// LoginPath serves the login form. Denied page-style requests are sent there.
const LoginPath = "/login"

const genericStorageMessage = "Something went wrong. Please try again later."

// errorResponder turns use case errors into {success:false, code, message} bodies.
type errorResponder struct {
	log *logger.Logger
}

// respond maps err by kind. Storage errors are logged with detail and answered generically.
func (r errorResponder) respond(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindAuth:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_CREDENTIALS", err.Error()))
	case domain.KindAuthz:
		return deny(c)
	case domain.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	case domain.KindConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", err.Error()))
	case domain.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", err.Error()))
	default:
		r.log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", genericStorageMessage))
	}
}

// deny is the single denial answer: a redirect to the login page for page-style GETs, a
// 401 Unauthorized result otherwise. Missing session, bad token, wrong role and foreign shop
// all end here.
func deny(c *fiber.Ctx) error {
	if wantsPage(c) {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "Unauthorized access"))
}

func wantsPage(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodGet && strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
}
