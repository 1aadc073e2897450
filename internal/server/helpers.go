package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"devconnect/internal/models"
)

// paramID parses a numeric route parameter. A malformed id is reported the
// same way as an absent record, so probing with garbage ids reveals nothing.
func paramID(c *fiber.Ctx, name, resource string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource)
	}
	return uint(id), nil
}

// paramEntryID parses a sub-entry route parameter. Malformed values map to
// zero, which downstream removal treats as an entry that does not exist.
func paramEntryID(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parseBody decodes the JSON request body into dest.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}
