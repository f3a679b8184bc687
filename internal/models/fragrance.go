package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FragranceCollection is the collection holding catalog items.
const FragranceCollection = "fragrance"

const defaultStock = 50

// Fragrance is one perfume in the catalog. RatingAverage and RatingCount are
// derived from the review collection and never taken from client input.
type Fragrance struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Brand         string              `bson:"brand" json:"brand"`
	Price         float64             `bson:"price" json:"price"`
	Gender        string              `bson:"gender,omitempty" json:"gender,omitempty"`
	Season        []string            `bson:"season,omitempty" json:"season,omitempty"`
	Occasion      []string            `bson:"occasion,omitempty" json:"occasion,omitempty"`
	NotesTop      []string            `bson:"notes_top" json:"notes_top"`
	NotesHeart    []string            `bson:"notes_heart" json:"notes_heart"`
	NotesBase     []string            `bson:"notes_base" json:"notes_base"`
	Families      []string            `bson:"families" json:"families"`
	Images        []string            `bson:"images" json:"images"`
	Thumbnail     string              `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	RatingAverage float64             `bson:"rating_average" json:"rating_average"`
	RatingCount   int                 `bson:"rating_count" json:"rating_count"`
	Stock         int                 `bson:"stock" json:"stock"`
	Featured      bool                `bson:"featured" json:"featured"`
	NewArrival    bool                `bson:"new_arrival" json:"new_arrival"`
	Pyramid       map[string][]string `bson:"pyramid,omitempty" json:"pyramid,omitempty"`
	Profile       map[string]float64  `bson:"profile,omitempty" json:"profile,omitempty"`
}

// FragranceInput is the client-supplied shape for creating a catalog item.
type FragranceInput struct {
	Name       string              `json:"name"`
	Brand      string              `json:"brand"`
	Price      *float64            `json:"price"`
	Gender     string              `json:"gender"`
	Season     []string            `json:"season"`
	Occasion   []string            `json:"occasion"`
	NotesTop   []string            `json:"notes_top"`
	NotesHeart []string            `json:"notes_heart"`
	NotesBase  []string            `json:"notes_base"`
	Families   []string            `json:"families"`
	Images     []string            `json:"images"`
	Thumbnail  string              `json:"thumbnail"`
	Stock      *int                `json:"stock"`
	Featured   bool                `json:"featured"`
	NewArrival bool                `json:"new_arrival"`
	Pyramid    map[string][]string `json:"pyramid"`
	Profile    map[string]float64  `json:"profile"`
}

// NewFragrance validates input and builds a Fragrance with derived fields
// zeroed and defaults applied.
func NewFragrance(in FragranceInput) (*Fragrance, error) {
	ve := newValidationError()

	if in.Name == "" {
		ve.add("name", "name is required")
	}
	if in.Brand == "" {
		ve.add("brand", "brand is required")
	}
	if in.Price == nil {
		ve.add("price", "price is required")
	} else if *in.Price < 0 {
		ve.add("price", "price must be non-negative")
	}
	switch in.Gender {
	case "", "male", "female", "unisex":
	default:
		ve.add("gender", "gender must be one of male, female, unisex")
	}
	if in.Stock != nil && *in.Stock < 0 {
		ve.add("stock", "stock must be non-negative")
	}

	if !ve.ok() {
		return nil, ve
	}

	f := &Fragrance{
		Name:       in.Name,
		Brand:      in.Brand,
		Price:      *in.Price,
		Gender:     in.Gender,
		Season:     in.Season,
		Occasion:   in.Occasion,
		NotesTop:   emptyIfNil(in.NotesTop),
		NotesHeart: emptyIfNil(in.NotesHeart),
		NotesBase:  emptyIfNil(in.NotesBase),
		Families:   emptyIfNil(in.Families),
		Images:     emptyIfNil(in.Images),
		Thumbnail:  in.Thumbnail,
		Stock:      defaultStock,
		Featured:   in.Featured,
		NewArrival: in.NewArrival,
		Pyramid:    in.Pyramid,
		Profile:    in.Profile,
	}
	if in.Stock != nil {
		f.Stock = *in.Stock
	}
	return f, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
