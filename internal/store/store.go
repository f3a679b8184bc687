package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by point lookups when no document matches.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidID is returned when an identifier cannot be parsed into the
	// store's native key format.
	ErrInvalidID = errors.New("store: invalid identifier")
)

// Store is the document-store contract the services are written against.
// Identifiers are opaque hex strings generated by the store on insert.
type Store interface {
	// Insert stores a document and returns its generated identifier.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	// Query decodes every document matching filter into dest (a pointer to a
	// slice). A limit of zero or less means unbounded.
	Query(ctx context.Context, collection string, filter Filter, limit int64, dest interface{}) error
	// FindOne decodes the first document matching filter into dest, or
	// returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter Filter, dest interface{}) error
	// FindByID is a point lookup by identifier. It returns ErrInvalidID for
	// malformed identifiers and ErrNotFound for absent documents.
	FindByID(ctx context.Context, collection, id string, dest interface{}) error
	// UpdateByID sets the given fields on the identified document.
	UpdateByID(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Count reports how many documents match filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
}
