package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/services"
)

// SeedHandler loads demo data into an empty catalog.
type SeedHandler struct {
	seed *services.SeedService
}

// NewSeedHandler constructs SeedHandler.
func NewSeedHandler(seed *services.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed inserts the sample catalog when empty and reports the inserted count.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	inserted, err := h.seed.Seed(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"inserted": inserted})
}
