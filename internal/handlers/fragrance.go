package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/services"
	"github.com/example/luxe/internal/store"
	"github.com/example/luxe/internal/utils"
)

// FragranceHandler manages catalog endpoints.
type FragranceHandler struct {
	catalog *services.CatalogService
}

// NewFragranceHandler constructs FragranceHandler.
func NewFragranceHandler(catalog *services.CatalogService) *FragranceHandler {
	return &FragranceHandler{catalog: catalog}
}

// Create validates and persists a new fragrance.
func (h *FragranceHandler) Create(c *fiber.Ctx) error {
	var input models.FragranceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fragrance, err := models.NewFragrance(input)
	if err != nil {
		return validationResponse(c, err)
	}

	id, err := h.catalog.Create(c.Context(), fragrance)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id})
}

// List returns fragrances matching the query-string filters.
func (h *FragranceHandler) List(c *fiber.Ctx) error {
	filter := services.CatalogFilter{
		Query:      c.Query("q"),
		Family:     c.Query("family"),
		Occasion:   c.Query("occasion"),
		Season:     c.Query("season"),
		Gender:     c.Query("gender"),
		Featured:   parseBoolQuery(c, "featured"),
		NewArrival: parseBoolQuery(c, "new_arrival"),
		Limit:      utils.ParseLimit(c, services.DefaultListLimit),
	}

	fragrances, err := h.catalog.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fragrances)
}

// Get returns a single fragrance by id.
func (h *FragranceHandler) Get(c *fiber.Ctx) error {
	fragrance, err := h.catalog.Get(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrInvalidID) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(fragrance)
}

// Similar returns fragrances sharing a family with the identified one.
func (h *FragranceHandler) Similar(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, services.DefaultSearchLimit)

	fragrances, err := h.catalog.Similar(c.Context(), c.Params("id"), limit)
	if errors.Is(err, store.ErrInvalidID) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "fragrance not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(fragrances)
}

// Search matches fragrance names by case-insensitive substring.
func (h *FragranceHandler) Search(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, services.DefaultSearchLimit)

	fragrances, err := h.catalog.Search(c.Context(), c.Query("q"), limit)
	if err != nil {
		return err
	}
	return c.JSON(fragrances)
}

func parseBoolQuery(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
