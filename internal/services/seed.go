package services

import (
	"context"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

// SeedService loads demo catalog data for an empty store.
type SeedService struct {
	store store.Store
}

// NewSeedService constructs SeedService.
func NewSeedService(st store.Store) *SeedService {
	return &SeedService{store: st}
}

// Seed inserts the sample fragrances when the catalog is empty and returns
// how many were inserted. A non-empty catalog makes it a no-op.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx, models.FragranceCollection, nil)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, sample := range sampleFragrances() {
		if _, err := s.store.Insert(ctx, models.FragranceCollection, sample); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func sampleFragrances() []*models.Fragrance {
	return []*models.Fragrance{
		{
			Name:       "Noir Élite",
			Brand:      "Maison Éclat",
			Price:      289,
			Gender:     "unisex",
			Season:     []string{"fall", "winter"},
			Occasion:   []string{"evening", "date"},
			NotesTop:   []string{"bergamot", "pink pepper"},
			NotesHeart: []string{"rose", "saffron"},
			NotesBase:  []string{"oud", "sandalwood", "amber"},
			Families:   []string{"oriental", "woody"},
			Images:     []string{},
			Thumbnail:  "https://images.unsplash.com/photo-1556228578-8ea1fc0f8b2e?w=800&auto=format&fit=crop",
			Stock:      50,
			Featured:   true,
			NewArrival: true,
			Profile: map[string]float64{
				"floral": 0.5,
				"woody":  0.9,
				"citrus": 0.2,
				"spicy":  0.7,
				"sweet":  0.3,
			},
		},
		{
			Name:       "Lumière Blanche",
			Brand:      "Atelier de Paris",
			Price:      210,
			Gender:     "female",
			Season:     []string{"spring", "summer"},
			Occasion:   []string{"daytime", "office"},
			NotesTop:   []string{"pear", "mandarin"},
			NotesHeart: []string{"jasmine", "orange blossom"},
			NotesBase:  []string{"musk", "cedar"},
			Families:   []string{"floral", "citrus"},
			Images:     []string{},
			Thumbnail:  "https://images.unsplash.com/photo-1585386959984-a41552231605?w=800&auto=format&fit=crop",
			Stock:      50,
			Featured:   true,
		},
		{
			Name:       "Verde Sera",
			Brand:      "Casa Botanica",
			Price:      185,
			Gender:     "male",
			Season:     []string{"summer"},
			Occasion:   []string{"casual"},
			NotesTop:   []string{"lime", "mint"},
			NotesHeart: []string{"green tea", "neroli"},
			NotesBase:  []string{"vetiver"},
			Families:   []string{"citrus", "fresh"},
			Images:     []string{},
			Thumbnail:  "https://images.unsplash.com/photo-1541643600914-78b084683601?w=800&auto=format&fit=crop",
			Stock:      50,
			NewArrival: true,
		},
	}
}
