package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewCollection is the collection holding submitted reviews.
const ReviewCollection = "review"

// Review is a single review submission. Reviews are write-once: nothing in
// the system updates or deletes them.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FragranceID string             `bson:"fragrance_id" json:"fragrance_id"`
	UserName    string             `bson:"user_name" json:"user_name"`
	Rating      int                `bson:"rating" json:"rating"`
	Comment     string             `bson:"comment,omitempty" json:"comment,omitempty"`
}

// ReviewInput is the client-supplied shape for submitting a review. Rating is
// decoded as a float so a fractional value fails validation rather than JSON
// decoding.
type ReviewInput struct {
	FragranceID string  `json:"fragrance_id"`
	UserName    string  `json:"user_name"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
}

// NewReview validates input and builds a Review with defaults applied.
func NewReview(in ReviewInput) (*Review, error) {
	ve := newValidationError()

	if in.FragranceID == "" {
		ve.add("fragrance_id", "fragrance_id is required")
	}
	if in.Rating != float64(int(in.Rating)) {
		ve.add("rating", "rating must be an integer")
	} else if in.Rating < 1 || in.Rating > 5 {
		ve.add("rating", "rating must be between 1 and 5")
	}

	if !ve.ok() {
		return nil, ve
	}

	userName := in.UserName
	if userName == "" {
		userName = "Anonymous"
	}

	return &Review{
		FragranceID: in.FragranceID,
		UserName:    userName,
		Rating:      int(in.Rating),
		Comment:     in.Comment,
	}, nil
}
