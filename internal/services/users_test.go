package services

import (
	"context"
	"testing"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

func newProfile(t *testing.T, email, name string) *models.UserProfile {
	t.Helper()

	profile, err := models.NewUserProfile(models.UserProfileInput{Email: email, Name: name})
	if err != nil {
		t.Fatalf("building profile failed: %v", err)
	}
	return profile
}

func TestUserUpsert_InsertThenReplace(t *testing.T) {
	st := store.NewMemory()
	users := NewUserService(st)

	first, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Ada"))
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	second, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Grace"))
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if second != first {
		t.Errorf("upsert must return the existing id, got %s and %s", first, second)
	}

	var stored models.UserProfile
	if err := st.FindByID(context.Background(), models.UserProfileCollection, first, &stored); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Name != "Grace" {
		t.Errorf("expected replaced name Grace, got %q", stored.Name)
	}
}

// Upsert is a full replace, not a merge: a profile submitted without
// favorites resets the stored list.
func TestUserUpsert_ReplaceResetsFavorites(t *testing.T) {
	st := store.NewMemory()
	users := NewUserService(st)

	if _, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Ada")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := users.ToggleFavorite(context.Background(), "a@b.c", "frag-1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if _, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Ada")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	favorites, err := users.Favorites(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("favorites failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("expected favorites reset by full replace, got %v", favorites)
	}
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	st := store.NewMemory()
	users := NewUserService(st)

	if _, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Ada")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	favorites, err := users.ToggleFavorite(context.Background(), "a@b.c", "frag-1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(favorites) != 1 || favorites[0] != "frag-1" {
		t.Errorf("expected [frag-1], got %v", favorites)
	}

	favorites, err = users.ToggleFavorite(context.Background(), "a@b.c", "frag-1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("toggling twice must restore the original set, got %v", favorites)
	}
}

func TestToggleFavorite_RemoveThenReappendMovesToEnd(t *testing.T) {
	st := store.NewMemory()
	users := NewUserService(st)

	if _, err := users.Upsert(context.Background(), newProfile(t, "a@b.c", "Ada")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	for _, id := range []string{"frag-1", "frag-2"} {
		if _, err := users.ToggleFavorite(context.Background(), "a@b.c", id); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}

	if _, err := users.ToggleFavorite(context.Background(), "a@b.c", "frag-1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	favorites, err := users.ToggleFavorite(context.Background(), "a@b.c", "frag-1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(favorites) != 2 || favorites[0] != "frag-2" || favorites[1] != "frag-1" {
		t.Errorf("expected [frag-2 frag-1], got %v", favorites)
	}
}

// ToggleFavorite fails on unknown emails while Favorites silently returns an
// empty list; both must hold at once.
func TestFavorites_UnknownEmailAsymmetry(t *testing.T) {
	st := store.NewMemory()
	users := NewUserService(st)

	if _, err := users.ToggleFavorite(context.Background(), "ghost@b.c", "frag-1"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound from toggle, got %v", err)
	}

	favorites, err := users.Favorites(context.Background(), "ghost@b.c")
	if err != nil {
		t.Errorf("favorites on unknown email must not fail, got %v", err)
	}
	if favorites == nil || len(favorites) != 0 {
		t.Errorf("expected empty list, got %v", favorites)
	}
}
