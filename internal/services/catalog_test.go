package services

import (
	"context"
	"testing"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

func boolPtr(v bool) *bool { return &v }

// seededStore returns a memory store loaded with the demo catalog plus a
// name → id index.
func seededStore(t *testing.T) (*store.Memory, map[string]string) {
	t.Helper()

	st := store.NewMemory()
	if _, err := NewSeedService(st).Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var fragrances []models.Fragrance
	if err := st.Query(context.Background(), models.FragranceCollection, nil, 0, &fragrances); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	ids := make(map[string]string, len(fragrances))
	for _, f := range fragrances {
		ids[f.Name] = f.ID.Hex()
	}
	return st, ids
}

func names(fragrances []models.Fragrance) []string {
	out := make([]string, 0, len(fragrances))
	for _, f := range fragrances {
		out = append(out, f.Name)
	}
	return out
}

func TestCatalogList_NoFilters(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	fragrances, err := catalog.List(context.Background(), CatalogFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(fragrances) != 3 {
		t.Errorf("expected 3 fragrances, got %v", names(fragrances))
	}
}

func TestCatalogList_Conjunction(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	tests := []struct {
		name   string
		filter CatalogFilter
		want   []string
	}{
		{
			name:   "family",
			filter: CatalogFilter{Family: "woody"},
			want:   []string{"Noir Élite"},
		},
		{
			name:   "featured",
			filter: CatalogFilter{Featured: boolPtr(true)},
			want:   []string{"Noir Élite", "Lumière Blanche"},
		},
		{
			name:   "new arrivals",
			filter: CatalogFilter{NewArrival: boolPtr(true)},
			want:   []string{"Noir Élite", "Verde Sera"},
		},
		{
			name:   "gender and family",
			filter: CatalogFilter{Gender: "female", Family: "floral"},
			want:   []string{"Lumière Blanche"},
		},
		{
			name:   "season",
			filter: CatalogFilter{Season: "summer"},
			want:   []string{"Lumière Blanche", "Verde Sera"},
		},
		{
			name:   "occasion and gender",
			filter: CatalogFilter{Occasion: "casual", Gender: "male"},
			want:   []string{"Verde Sera"},
		},
		{
			name:   "substring query",
			filter: CatalogFilter{Query: "lum"},
			want:   []string{"Lumière Blanche"},
		},
		{
			name:   "contradictory filters",
			filter: CatalogFilter{Gender: "male", Family: "floral"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragrances, err := catalog.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			got := names(fragrances)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestCatalogList_Limit(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	fragrances, err := catalog.List(context.Background(), CatalogFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(fragrances) != 1 {
		t.Errorf("expected 1 fragrance, got %d", len(fragrances))
	}
}

func TestCatalogGet(t *testing.T) {
	st, ids := seededStore(t)
	catalog := NewCatalogService(st)

	fragrance, err := catalog.Get(context.Background(), ids["Verde Sera"])
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fragrance.Brand != "Casa Botanica" {
		t.Errorf("expected Casa Botanica, got %q", fragrance.Brand)
	}

	if _, err := catalog.Get(context.Background(), "garbage"); err != store.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := catalog.Get(context.Background(), "ffffffffffffffffffffffff"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogSimilar_SharedFamily(t *testing.T) {
	st, ids := seededStore(t)
	catalog := NewCatalogService(st)

	similar, err := catalog.Similar(context.Background(), ids["Lumière Blanche"], 0)
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	if len(similar) != 1 || similar[0].Name != "Verde Sera" {
		t.Errorf("expected [Verde Sera], got %v", names(similar))
	}
}

func TestCatalogSimilar_NeverIncludesSource(t *testing.T) {
	st, ids := seededStore(t)
	catalog := NewCatalogService(st)

	for name, id := range ids {
		similar, err := catalog.Similar(context.Background(), id, 0)
		if err != nil {
			t.Fatalf("similar failed for %s: %v", name, err)
		}
		for _, f := range similar {
			if f.ID.Hex() == id {
				t.Errorf("%s appeared in its own similar set", name)
			}
		}
	}
}

func TestCatalogSimilar_EmptyFamilies(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	id, err := catalog.Create(context.Background(), &models.Fragrance{
		Name:     "Sans Famille",
		Brand:    "Test",
		Families: []string{},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	similar, err := catalog.Similar(context.Background(), id, 0)
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	if len(similar) != 0 {
		t.Errorf("a fragrance with no families must match nothing, got %v", names(similar))
	}
}

func TestCatalogSimilar_Errors(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	if _, err := catalog.Similar(context.Background(), "garbage", 0); err != store.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := catalog.Similar(context.Background(), "ffffffffffffffffffffffff", 0); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogSearch(t *testing.T) {
	st, _ := seededStore(t)
	catalog := NewCatalogService(st)

	fragrances, err := catalog.Search(context.Background(), "noir", 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(fragrances) != 1 || fragrances[0].Name != "Noir Élite" {
		t.Errorf("expected [Noir Élite], got %v", names(fragrances))
	}
}
