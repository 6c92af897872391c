// middleware/site.go
package middleware

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Site labels which surface a request addresses.
const (
	SitePublic = "public"
	SitePanel  = "panel"
)

const siteLocal = "site"

// ResolveSite tags every request as panel or public based on the
// hostname. The panel lives on its own subdomain; every other hostname is
// the public site. This is a per-request decision with no persisted state.
func ResolveSite(panelHost string) fiber.Handler {
	panelHost = strings.ToLower(panelHost)
	return func(c *fiber.Ctx) error {
		host := strings.ToLower(c.Hostname())
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		site := SitePublic
		if host == panelHost || strings.HasPrefix(host, "panel.") {
			site = SitePanel
		}
		c.Locals(siteLocal, site)
		return c.Next()
	}
}

func SiteOf(c *fiber.Ctx) string {
	if site, ok := c.Locals(siteLocal).(string); ok {
		return site
	}
	return SitePublic
}
