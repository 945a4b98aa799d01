package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/domain/access"
)

// LocalIdentity is the Fiber locals key holding the caller's access.Identity.
const LocalIdentity = "identity"

// SessionParser turns a session token into the caller identity (auth.UseCase).
type SessionParser interface {
	ParseSession(token string) (access.Identity, error)
}

// AuthMiddleware reads the session from "Authorization: Bearer <token>" or, failing that,
// from the session cookie, and stores the identity in c.Locals.
func AuthMiddleware(sessions SessionParser, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" && cookieName != "" {
			token = c.Cookies(cookieName)
		}
		if token == "" {
			return deny(c)
		}
		id, err := sessions.ParseSession(token)
		if err != nil || id == nil {
			return deny(c)
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole lets the request through only when the identity's role is one of roles.
// Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role != "" && role == r {
				return c.Next()
			}
		}
		return deny(c)
	}
}

// GetIdentity returns the caller identity, or nil before AuthMiddleware.
func GetIdentity(c *fiber.Ctx) access.Identity {
	id, _ := c.Locals(LocalIdentity).(access.Identity)
	return id
}

// GetUserID returns the caller's user id, or "".
func GetUserID(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.UserID()
	}
	return ""
}

// GetRole returns "admin", "manager" or "".
func GetRole(c *fiber.Ctx) string {
	return access.RoleOf(GetIdentity(c))
}
