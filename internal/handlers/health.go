package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/config"
	"github.com/example/luxe/internal/store"
)

// HealthHandler serves the liveness and store-connectivity probes.
type HealthHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(st store.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{store: st, cfg: cfg}
}

// Root answers the liveness probe.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Luxe Perfume Backend Ready"})
}

// Test reports store connectivity diagnostics.
func (h *HealthHandler) Test(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(c.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		return c.JSON(response)
	}

	response["database"] = "available"
	response["connection_status"] = "connected"

	collections, err := h.store.Collections(c.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		return c.JSON(response)
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["database"] = "connected and working"
	response["collections"] = collections

	return c.JSON(response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
