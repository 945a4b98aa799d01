package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
)

// SessionCookie configures the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// AuthHandler handles login, logout and forgot-password.
type AuthHandler struct {
	uc      *auth.UseCase
	cookie  SessionCookie
	metrics *metrics.Metrics
	errorResponder
}

// NewAuthHandler builds the handler. m may be nil.
func NewAuthHandler(uc *auth.UseCase, cookie SessionCookie, m *metrics.Metrics, r errorResponder) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, metrics: m, errorResponder: r}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Description  A form post from the login page is answered with a 303 to the landing page,
// @Description  or back to the login page when the credentials are wrong.
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.Result{data=dto.LoginResponse}
// @Success      303
// @Failure      401   {object}  dto.Result
// @Failure      429   {object}  dto.Result
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	h.countLogin(err)
	form := isFormPost(c)
	if err != nil {
		if form && errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Redirect(LoginPath+"?error=1", fiber.StatusSeeOther)
		}
		return h.respond(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.MaxAge),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if form {
		return c.Redirect(out.Redirect, fiber.StatusSeeOther)
	}
	return c.JSON(dto.OK("Login successful", out))
}

func isFormPost(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationForm)
}

// Logout godoc
// @Summary      Log out (clears the session cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Result
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.OK("You have been logged out", nil))
}

// ForgotPassword godoc
// @Summary      Request a password reset (neutral answer)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.Result
// @Failure      400   {object}  dto.Result
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	msg, err := h.uc.ForgotPassword(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(msg, nil))
}

func (h *AuthHandler) countLogin(err error) {
	if h.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidCredentials):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	h.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
}
