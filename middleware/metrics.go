// middleware/metrics.go
package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"game-showcase-system/metrics"
)

// CountRequests ticks the request counter once per completed request,
// labelled by site and status class.
func CountRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.Requests.WithLabelValues(SiteOf(c), fmt.Sprintf("%dxx", status/100)).Inc()
		return err
	}
}
