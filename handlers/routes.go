// handlers/routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"game-showcase-system/middleware"
	"game-showcase-system/services"
)

// setupRoutes wires the API for both surfaces onto one app. Paths shared
// between the public site and the panel dispatch on the resolved site;
// panel-only paths 404 on the public hostname. Returns the auth service
// so the static fallback can render the login page.
func setupRoutes(app *fiber.App, d Deps) *services.AuthService {
	games := services.NewGameService(d.KV)
	studios := services.NewStudioService(d.KV)
	notifs := services.NewNotificationService(d.KV)
	users := services.NewUserService(d.KV)
	config := services.NewConfigService(d.KV)
	media := services.NewMediaService(d.MediaDir, d.R2)
	auth := services.NewAuthService(d.KV, d.Sessions)

	session := func(h fiber.Handler) fiber.Handler {
		return middleware.RequireSession(d.Sessions, h)
	}
	admin := func(h fiber.Handler) fiber.Handler {
		return middleware.RequireSession(d.Sessions, middleware.RequireAdmin(h))
	}
	bySite := func(public, panel fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			if middleware.SiteOf(c) == middleware.SitePanel {
				return panel(c)
			}
			if public == nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
			}
			return public(c)
		}
	}
	panelOnly := func(h fiber.Handler) fiber.Handler {
		return bySite(nil, h)
	}

	// Session lifecycle
	app.Post("/api/login", panelOnly(auth.Login))
	app.Get("/api/logout", panelOnly(auth.Logout))
	app.Get("/api/me", panelOnly(session(auth.Me)))

	// Games: public list is read-only and filtered/sorted; panel gets
	// full CRUD gated on studio permission.
	app.Get("/api/games", bySite(games.PublicList, session(games.List)))
	app.Get("/api/games/:id", panelOnly(session(games.Get)))
	app.Post("/api/games", panelOnly(session(games.Create)))
	app.Put("/api/games/:id", panelOnly(session(games.Update)))
	app.Delete("/api/games/:id", panelOnly(session(games.Delete)))

	// Announcements
	app.Get("/api/announcements", bySite(notifs.PublicList, session(notifs.List)))
	app.Post("/api/announcements", panelOnly(session(notifs.Create)))
	app.Put("/api/announcements/:id", panelOnly(session(notifs.Update)))
	app.Delete("/api/announcements/:id", panelOnly(session(notifs.Delete)))

	// Studios: reads everywhere, mutations admin-only
	app.Get("/api/studios", bySite(studios.List, session(studios.List)))
	app.Post("/api/studios", panelOnly(admin(studios.Create)))
	app.Put("/api/studios/:id", panelOnly(admin(studios.Update)))
	app.Delete("/api/studios/:id", panelOnly(admin(studios.Delete)))

	// Users: admin role outright, allowedStudios is irrelevant here
	app.Get("/api/users", panelOnly(admin(users.List)))
	app.Post("/api/users", panelOnly(admin(users.Create)))
	app.Get("/api/users/:username", panelOnly(admin(users.Get)))
	app.Put("/api/users/:username", panelOnly(admin(users.Update)))
	app.Delete("/api/users/:username", panelOnly(admin(users.Delete)))

	// Site config singleton
	app.Get("/api/config", panelOnly(session(config.Get)))
	app.Put("/api/config", panelOnly(session(config.Put)))

	// Media assets
	app.Get("/api/media", panelOnly(session(media.List)))
	app.Post("/api/media", panelOnly(admin(media.Upload)))

	return auth
}
