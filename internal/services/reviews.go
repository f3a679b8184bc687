package services

import (
	"context"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

// ReviewService persists reviews and maintains the aggregate rating on the
// reviewed fragrance.
type ReviewService struct {
	store store.Store
}

// NewReviewService constructs ReviewService.
func NewReviewService(st store.Store) *ReviewService {
	return &ReviewService{store: st}
}

// Add persists the review, then recomputes the target fragrance's
// rating_average and rating_count from the full review set. The two writes
// are not atomic: a malformed fragrance_id fails the aggregate step after
// the review is already stored, and concurrent submissions for the same
// fragrance can interleave their read-then-write steps.
func (s *ReviewService) Add(ctx context.Context, review *models.Review) (string, error) {
	id, err := s.store.Insert(ctx, models.ReviewCollection, review)
	if err != nil {
		return "", err
	}

	reviews, err := s.ListByFragrance(ctx, review.FragranceID)
	if err != nil {
		return "", err
	}

	// A review document without a rating contributes 0 to the mean rather
	// than being excluded.
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	count := len(reviews)
	average := float64(sum) / float64(count)

	err = s.store.UpdateByID(ctx, models.FragranceCollection, review.FragranceID, map[string]interface{}{
		"rating_average": average,
		"rating_count":   count,
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// ListByFragrance returns every review for the fragrance, in store-default
// order, without limit.
func (s *ReviewService) ListByFragrance(ctx context.Context, fragranceID string) ([]models.Review, error) {
	reviews := []models.Review{}
	filter := store.Filter{}.Eq("fragrance_id", fragranceID)
	if err := s.store.Query(ctx, models.ReviewCollection, filter, 0, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
