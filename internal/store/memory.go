package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store with in-process maps. It mirrors the Mongo
// implementation's semantics, including ObjectID-formatted identifiers, and
// is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]bson.M
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]bson.M)}
}

// Insert stores a document under a freshly generated ObjectID.
func (m *Memory) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	stored["_id"] = oid

	m.mu.Lock()
	m.data[collection] = append(m.data[collection], stored)
	m.mu.Unlock()

	return oid.Hex(), nil
}

// Query decodes all matching documents into dest, truncated to limit.
func (m *Memory) Query(ctx context.Context, collection string, filter Filter, limit int64, dest interface{}) error {
	matches, err := m.matches(collection, filter, limit)
	if err != nil {
		return err
	}
	return decodeSlice(matches, dest)
}

// FindOne decodes the first matching document into dest.
func (m *Memory) FindOne(ctx context.Context, collection string, filter Filter, dest interface{}) error {
	matches, err := m.matches(collection, filter, 1)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return ErrNotFound
	}
	return decodeOne(matches[0], dest)
}

// FindByID is a point lookup by hex ObjectID.
func (m *Memory) FindByID(ctx context.Context, collection, id string, dest interface{}) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	return m.FindOne(ctx, collection, Filter{}.Eq("_id", id), dest)
}

// UpdateByID sets fields on the identified document.
func (m *Memory) UpdateByID(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.data[collection] {
		if doc["_id"] == oid {
			for k, v := range fields {
				normalized, err := roundTrip(v)
				if err != nil {
					return err
				}
				doc[k] = normalized
			}
			return nil
		}
	}
	return nil
}

// Count reports how many documents match filter.
func (m *Memory) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	matches, err := m.matches(collection, filter, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// Ping always succeeds.
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Collections lists the collection names holding at least one document.
func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) matches(collection string, filter Filter, limit int64) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []bson.M
	for _, doc := range m.data[collection] {
		ok, err := matchDoc(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func matchDoc(doc bson.M, filter Filter) (bool, error) {
	for _, cond := range filter {
		cond, err := normalizeID(cond)
		if err != nil {
			return false, err
		}

		value, present := doc[cond.Field]
		switch cond.Op {
		case OpEq:
			if !present || !fieldEq(value, cond.Value) {
				return false, nil
			}
		case OpContainsFold:
			needle, _ := cond.Value.(string)
			s, ok := value.(string)
			if !ok || !strings.Contains(strings.ToLower(s), strings.ToLower(needle)) {
				return false, nil
			}
		case OpIn:
			if !present || !fieldIn(value, cond.Value) {
				return false, nil
			}
		case OpNe:
			if present && fieldEq(value, cond.Value) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("store: unknown filter op %d", cond.Op)
		}
	}
	return true, nil
}

// fieldEq applies equality the way the document store does: an array field
// equals a scalar when it contains it.
func fieldEq(field, value interface{}) bool {
	if arr, ok := field.(bson.A); ok {
		for _, elem := range arr {
			if scalarEq(elem, value) {
				return true
			}
		}
		return false
	}
	return scalarEq(field, value)
}

func fieldIn(field, values interface{}) bool {
	list := reflect.ValueOf(values)
	if list.Kind() != reflect.Slice {
		return fieldEq(field, values)
	}
	for i := 0; i < list.Len(); i++ {
		if fieldEq(field, list.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func scalarEq(a, b interface{}) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// roundTrip pushes a value through the bson codec so stored field types match
// what a real driver round-trip would produce.
func roundTrip(v interface{}) (interface{}, error) {
	raw, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	var wrapped bson.M
	if err := bson.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped["v"], nil
}

func decodeOne(doc bson.M, dest interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}

func decodeSlice(docs []bson.M, dest interface{}) error {
	slicev := reflect.ValueOf(dest)
	if slicev.Kind() != reflect.Ptr || slicev.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: query destination must be a pointer to a slice, got %T", dest)
	}

	elemt := slicev.Elem().Type().Elem()
	out := reflect.MakeSlice(slicev.Elem().Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemt)
		if err := decodeOne(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slicev.Elem().Set(out)
	return nil
}
