// handlers/app.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"game-showcase-system/middleware"
	"game-showcase-system/sessions"
	"game-showcase-system/store"
	"game-showcase-system/utils"
)

// Deps is everything the app needs injected; tests build the same app
// main does, just with an in-memory store behind it.
type Deps struct {
	KV        *store.KV
	Sessions  sessions.Store
	PanelHost string
	SiteDir   string // public site bundle
	PanelDir  string // panel SPA bundle
	MediaDir  string // local media fallback; defaults to <SiteDir>/media
	R2        *utils.R2Client
}

// NewApp builds the full Fiber app: site resolution, CORS, the API for
// both surfaces, and static fallbacks with SPA-style index.html serving.
func NewApp(d Deps) *fiber.App {
	if d.SiteDir == "" {
		d.SiteDir = "./public/site"
	}
	if d.PanelDir == "" {
		d.PanelDir = "./public/panel"
	}
	if d.MediaDir == "" {
		d.MediaDir = filepath.Join(d.SiteDir, "media")
	}
	_ = os.MkdirAll(d.SiteDir, os.ModePerm)
	_ = os.MkdirAll(d.PanelDir, os.ModePerm)

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	app.Use(middleware.ResolveSite(d.PanelHost))
	app.Use(middleware.CountRequests())

	// The read API serves any origin. Cookie auth stays same-origin
	// through SameSite.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	authSvc := setupRoutes(app, d)

	// Unmatched API paths answer JSON, never the SPA shell.
	app.Use("/api", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	siteAssets := filesystem.New(filesystem.Config{
		Root:         http.Dir(d.SiteDir),
		Index:        "index.html",
		NotFoundFile: "index.html",
		MaxAge:       3600,
	})
	panelAssets := filesystem.New(filesystem.Config{
		Root:         http.Dir(d.PanelDir),
		Index:        "index.html",
		NotFoundFile: "index.html",
		MaxAge:       3600,
	})

	// Everything else is static. Panel navigations without a valid
	// session get the login page instead of the SPA shell.
	app.Use(func(c *fiber.Ctx) error {
		if middleware.SiteOf(c) == middleware.SitePanel {
			if _, ok := d.Sessions.Validate(c.Cookies(middleware.CookieName)); !ok {
				return authSvc.LoginPage(c)
			}
			return panelAssets(c)
		}
		return siteAssets(c)
	})

	return app
}
