package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/services"
)

// QuizHandler serves quiz-driven recommendations.
type QuizHandler struct {
	quiz *services.QuizService
}

// NewQuizHandler constructs QuizHandler.
func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// Recommend filters the catalog by the submitted quiz answers.
func (h *QuizHandler) Recommend(c *fiber.Ctx) error {
	var answers models.QuizAnswer
	if err := c.BodyParser(&answers); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fragrances, err := h.quiz.Recommend(c.Context(), answers)
	if err != nil {
		return err
	}
	return c.JSON(fragrances)
}
