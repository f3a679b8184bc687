package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Op enumerates the per-field constraints a Filter may carry.
type Op int

const (
	// OpEq matches documents whose field equals the value; for array fields
	// this means the array contains the value.
	OpEq Op = iota
	// OpContainsFold matches string fields containing the value as a
	// case-insensitive substring.
	OpContainsFold
	// OpIn matches documents whose field equals any of the values; for array
	// fields it matches any overlap.
	OpIn
	// OpNe matches documents whose field does not equal the value.
	OpNe
)

// Condition is a single field constraint.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter is a conjunction of conditions. A nil or empty Filter matches
// every document.
type Filter []Condition

// Eq appends an equality condition.
func (f Filter) Eq(field string, value interface{}) Filter {
	return append(f, Condition{Field: field, Op: OpEq, Value: value})
}

// ContainsFold appends a case-insensitive substring condition.
func (f Filter) ContainsFold(field, value string) Filter {
	return append(f, Condition{Field: field, Op: OpContainsFold, Value: value})
}

// In appends an any-of condition.
func (f Filter) In(field string, values []string) Filter {
	return append(f, Condition{Field: field, Op: OpIn, Value: values})
}

// Ne appends a not-equal condition.
func (f Filter) Ne(field string, value interface{}) Filter {
	return append(f, Condition{Field: field, Op: OpNe, Value: value})
}

// normalizeID rewrites hex-string values on the _id field into native
// ObjectIDs so both store implementations compare keys in the same format.
func normalizeID(c Condition) (Condition, error) {
	if c.Field != "_id" {
		return c, nil
	}
	s, ok := c.Value.(string)
	if !ok {
		return c, nil
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return c, ErrInvalidID
	}
	c.Value = oid
	return c, nil
}
