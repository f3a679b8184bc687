package services

import (
	"context"

	"github.com/example/luxe/internal/models"
	"github.com/example/luxe/internal/store"
)

// UserService manages upsert-by-email profiles and toggle-based favorites.
type UserService struct {
	store store.Store
}

// NewUserService constructs UserService.
func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// Upsert inserts the profile, or replaces every mutable field of the
// existing profile with the same email, and returns the record's id.
func (s *UserService) Upsert(ctx context.Context, profile *models.UserProfile) (string, error) {
	existing, err := s.findByEmail(ctx, profile.Email)
	if err == store.ErrNotFound {
		return s.store.Insert(ctx, models.UserProfileCollection, profile)
	}
	if err != nil {
		return "", err
	}

	id := existing.ID.Hex()
	err = s.store.UpdateByID(ctx, models.UserProfileCollection, id, map[string]interface{}{
		"email":      profile.Email,
		"name":       profile.Name,
		"avatar_url": profile.AvatarURL,
		"favorites":  profile.Favorites,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ToggleFavorite removes the fragrance id from the profile's favorites if
// present, appends it otherwise, and returns the updated list. Unknown
// emails fail with ErrNotFound.
func (s *UserService) ToggleFavorite(ctx context.Context, email, fragranceID string) ([]string, error) {
	profile, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	favorites := make([]string, 0, len(profile.Favorites)+1)
	removed := false
	for _, fav := range profile.Favorites {
		if !removed && fav == fragranceID {
			removed = true
			continue
		}
		favorites = append(favorites, fav)
	}
	if !removed {
		favorites = append(favorites, fragranceID)
	}

	err = s.store.UpdateByID(ctx, models.UserProfileCollection, profile.ID.Hex(), map[string]interface{}{
		"favorites": favorites,
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Favorites returns the profile's favorites list, or an empty list for
// unknown emails. The asymmetry with ToggleFavorite is deliberate.
func (s *UserService) Favorites(ctx context.Context, email string) ([]string, error) {
	profile, err := s.findByEmail(ctx, email)
	if err == store.ErrNotFound {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if profile.Favorites == nil {
		return []string{}, nil
	}
	return profile.Favorites, nil
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	filter := store.Filter{}.Eq("email", email)
	if err := s.store.FindOne(ctx, models.UserProfileCollection, filter, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
