package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfileCollection is the collection holding user profiles.
const UserProfileCollection = "userprofile"

// UserProfile is keyed by email as a business identifier; uniqueness is
// enforced by lookup-before-insert, not a store constraint.
type UserProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Favorites []string           `bson:"favorites" json:"favorites"`
}

// UserProfileInput is the client-supplied shape for upserting a profile.
type UserProfileInput struct {
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatar_url"`
	Favorites []string `json:"favorites"`
}

// NewUserProfile validates input and builds a UserProfile.
func NewUserProfile(in UserProfileInput) (*UserProfile, error) {
	ve := newValidationError()

	if in.Email == "" {
		ve.add("email", "email is required")
	}

	if !ve.ok() {
		return nil, ve
	}

	return &UserProfile{
		Email:     in.Email,
		Name:      in.Name,
		AvatarURL: in.AvatarURL,
		Favorites: emptyIfNil(in.Favorites),
	}, nil
}
