package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/services"
	"github.com/example/luxe/internal/store"
)

// UserHandler manages profile upserts and favorites.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Upsert creates a profile or fully replaces the one with the same email.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	var input models.UserProfileInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := models.NewUserProfile(input)
	if err != nil {
		return validationResponse(c, err)
	}

	id, err := h.users.Upsert(c.Context(), profile)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id})
}

// ToggleFavorite flips membership of a fragrance id in the user's favorites.
func (h *UserHandler) ToggleFavorite(c *fiber.Ctx) error {
	favorites, err := h.users.ToggleFavorite(c.Context(), c.Params("email"), c.Params("fragrance_id"))
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"favorites": favorites})
}

// Favorites returns the user's favorites, empty for unknown emails.
func (h *UserHandler) Favorites(c *fiber.Ctx) error {
	favorites, err := h.users.Favorites(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(favorites)
}
