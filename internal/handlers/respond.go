package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/models"
)

// validationResponse renders a schema violation as 422 with per-field
// details, or passes the error through when it is not a validation failure.
func validationResponse(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": ve.Fields})
}
