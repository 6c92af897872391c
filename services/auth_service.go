// services/auth_service.go
package services

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"game-showcase-system/metrics"
	"game-showcase-system/middleware"
	"game-showcase-system/sessions"
	"game-showcase-system/store"
)

// cookieMaxAge matches the session TTL exactly (24h).
var cookieMaxAge = int(sessions.TTL.Seconds())

type AuthService struct {
	KV       *store.KV
	Sessions sessions.Store
}

func NewAuthService(kv *store.KV, sess sessions.Store) *AuthService {
	return &AuthService{KV: kv, Sessions: sess}
}

// Login handles the panel form POST. Success sets the session cookie and
// redirects to the panel root; failure re-renders the login page with an
// inline error and a 401: no cookie, no session.
func (s *AuthService) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		metrics.Logins.WithLabelValues("failure").Inc()
		return renderLoginPage(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	user, err := verifyCredentials(s.KV, username, password)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		log.Printf("🚫 [AUTH] Failed login for %q", username)
		metrics.Logins.WithLabelValues("failure").Inc()
		return renderLoginPage(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := s.Sessions.Create(user.Username, user.Role, user.AllowedStudios)
	if err != nil {
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	log.Printf("✅ [AUTH] %s logged in", user.Username)
	metrics.Logins.WithLabelValues("success").Inc()
	return c.Redirect("/", fiber.StatusFound)
}

// Logout destroys the session (idempotent: an unknown token is a no-op),
// clears the cookie and sends the browser back to the login page.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.CookieName); token != "" {
		s.Sessions.Destroy(token)
	}
	// fasthttp only writes Max-Age for positive values, so the expiring
	// cookie goes out as a raw header to keep Max-Age=0 on the wire.
	c.Response().Header.Add(fiber.HeaderSetCookie,
		middleware.CookieName+"=; Path=/; Max-Age=0; HttpOnly; Secure; SameSite=Strict")
	return c.Redirect("/", fiber.StatusFound)
}

// Me returns the identity behind the current session.
func (s *AuthService) Me(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	return c.JSON(fiber.Map{
		"username":       sess.Username,
		"role":           sess.Role,
		"allowedStudios": sess.AllowedStudios,
	})
}

// LoginPage renders the unauthenticated panel shell.
func (s *AuthService) LoginPage(c *fiber.Ctx) error {
	return renderLoginPage(c, fiber.StatusOK, "")
}
