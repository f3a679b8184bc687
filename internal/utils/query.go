package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseLimit reads the limit query param, falling back for missing,
// malformed or non-positive values.
func ParseLimit(c *fiber.Ctx, fallback int64) int64 {
	parsed, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
