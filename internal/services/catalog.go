package services

import (
	"context"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

// Catalog list limits.
const (
	DefaultListLimit   = 24
	DefaultSearchLimit = 8
)

// CatalogFilter enumerates the recognized list options. Zero values impose
// no constraint; all present options are ANDed.
type CatalogFilter struct {
	Query      string
	Family     string
	Occasion   string
	Season     string
	Gender     string
	Featured   *bool
	NewArrival *bool
	Limit      int64
}

// CatalogService answers list, lookup, similarity and search queries over
// the fragrance collection.
type CatalogService struct {
	store store.Store
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Create persists a validated fragrance and returns its id.
func (s *CatalogService) Create(ctx context.Context, f *models.Fragrance) (string, error) {
	return s.store.Insert(ctx, models.FragranceCollection, f)
}

// List returns fragrances matching every provided option, in store-default
// order.
func (s *CatalogService) List(ctx context.Context, cf CatalogFilter) ([]models.Fragrance, error) {
	filter := store.Filter{}
	if cf.Query != "" {
		filter = filter.ContainsFold("name", cf.Query)
	}
	if cf.Family != "" {
		filter = filter.Eq("families", cf.Family)
	}
	if cf.Occasion != "" {
		filter = filter.Eq("occasion", cf.Occasion)
	}
	if cf.Season != "" {
		filter = filter.Eq("season", cf.Season)
	}
	if cf.Gender != "" {
		filter = filter.Eq("gender", cf.Gender)
	}
	if cf.Featured != nil {
		filter = filter.Eq("featured", *cf.Featured)
	}
	if cf.NewArrival != nil {
		filter = filter.Eq("new_arrival", *cf.NewArrival)
	}

	limit := cf.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	fragrances := []models.Fragrance{}
	if err := s.store.Query(ctx, models.FragranceCollection, filter, limit, &fragrances); err != nil {
		return nil, err
	}
	return fragrances, nil
}

// Get is a point lookup by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Fragrance, error) {
	var f models.Fragrance
	if err := s.store.FindByID(ctx, models.FragranceCollection, id, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Similar returns up to limit other fragrances sharing at least one family
// with the identified one. A fragrance with no families matches nothing.
func (s *CatalogService) Similar(ctx context.Context, id string, limit int64) ([]models.Fragrance, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	fragrances := []models.Fragrance{}
	if len(source.Families) == 0 {
		return fragrances, nil
	}

	filter := store.Filter{}.
		In("families", source.Families).
		Ne("_id", source.ID.Hex())
	if err := s.store.Query(ctx, models.FragranceCollection, filter, limit, &fragrances); err != nil {
		return nil, err
	}
	return fragrances, nil
}

// Search matches the query as a case-insensitive substring of the name.
func (s *CatalogService) Search(ctx context.Context, q string, limit int64) ([]models.Fragrance, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	fragrances := []models.Fragrance{}
	filter := store.Filter{}.ContainsFold("name", q)
	if err := s.store.Query(ctx, models.FragranceCollection, filter, limit, &fragrances); err != nil {
		return nil, err
	}
	return fragrances, nil
}
