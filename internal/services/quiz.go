package services

import (
	"context"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

// RecommendationLimit caps quiz recommendation results.
const RecommendationLimit = 12

// QuizService lowers quiz answers into a catalog filter.
type QuizService struct {
	store store.Store
}

// NewQuizService constructs QuizService.
func NewQuizService(st store.Store) *QuizService {
	return &QuizService{store: st}
}

// Recommend returns up to twelve fragrances matching every provided answer.
// An empty answer set returns arbitrary fragrances.
func (s *QuizService) Recommend(ctx context.Context, answers models.QuizAnswer) ([]models.Fragrance, error) {
	filter := store.Filter{}
	if answers.Gender != "" {
		filter = filter.Eq("gender", answers.Gender)
	}
	if answers.Season != "" {
		filter = filter.Eq("season", answers.Season)
	}
	if answers.Occasion != "" {
		filter = filter.Eq("occasion", answers.Occasion)
	}
	if len(answers.Preferences) > 0 {
		filter = filter.In("families", answers.Preferences)
	}

	fragrances := []models.Fragrance{}
	if err := s.store.Query(ctx, models.FragranceCollection, filter, RecommendationLimit, &fragrances); err != nil {
		return nil, err
	}
	return fragrances, nil
}
