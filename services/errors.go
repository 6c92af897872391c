// services/errors.go
package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// apiError carries the status a handler should answer with. Authorization
// failures (403) and missing resources (404) are deliberately distinct;
// callers rely on telling them apart.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string { return e.Message }

func errBadRequest(msg string) error {
	return &apiError{Status: fiber.StatusBadRequest, Message: msg}
}

func errForbidden(msg string) error {
	return &apiError{Status: fiber.StatusForbidden, Message: msg}
}

func errNotFound(msg string) error {
	return &apiError{Status: fiber.StatusNotFound, Message: msg}
}

// fail translates a service error into the {"error": ...} envelope.
// Anything without an explicit status is a 500; store failures are not
// retried or masked, they surface here.
func fail(c *fiber.Ctx, err error) error {
	var ae *apiError
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{"error": ae.Message})
	}
	log.Printf("❌ [API] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
