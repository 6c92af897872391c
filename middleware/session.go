// middleware/session.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"game-showcase-system/models"
	"game-showcase-system/sessions"
)

// CookieName carries the panel session token.
const CookieName = "panel_session"

const sessionLocal = "session"

// RequireSession guards panel API handlers. A missing, unknown or expired
// cookie is one and the same thing: 401, no detail about which it was.
func RequireSession(store sessions.Store, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := store.Validate(c.Cookies(CookieName))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		c.Locals(sessionLocal, sess)
		return h(c)
	}
}

// RequireAdmin layers on top of RequireSession for the user-management
// surface: allowedStudios is irrelevant there, only the role counts.
func RequireAdmin(h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFrom(c)
		if sess == nil || sess.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin role required",
			})
		}
		return h(c)
	}
}

// SessionFrom returns the validated session attached by RequireSession,
// or nil on unguarded paths.
func SessionFrom(c *fiber.Ctx) *sessions.Session {
	if sess, ok := c.Locals(sessionLocal).(*sessions.Session); ok {
		return sess
	}
	return nil
}
