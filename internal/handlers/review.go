package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/services"
	"github.com/example/luxe/internal/store"
)

// ReviewHandler manages review submission and listing.
type ReviewHandler struct {
	reviews *services.ReviewService
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Add validates and persists a review, then updates the fragrance's
// aggregate rating.
func (h *ReviewHandler) Add(c *fiber.Ctx) error {
	var input models.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	review, err := models.NewReview(input)
	if err != nil {
		return validationResponse(c, err)
	}

	id, err := h.reviews.Add(c.Context(), review)
	if errors.Is(err, store.ErrInvalidID) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id})
}

// ListByFragrance returns every review for a fragrance.
func (h *ReviewHandler) ListByFragrance(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByFragrance(c.Context(), c.Params("fragrance_id"))
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
