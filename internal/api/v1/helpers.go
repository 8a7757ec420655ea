package apiv1

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// internalError logs the failed operation with the identifiers involved
// and answers a generic 500. Infrastructure failures are not retried.
func internalError(c *fiber.Ctx, operation string, id interface{}, err error) error {
	log.Printf("api: %s failed (id=%v): %v", operation, id, err)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
}
