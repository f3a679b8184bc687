package store

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Store on top of a MongoDB database handle.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps a connected database handle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Insert stores a document and returns the generated ObjectID as hex.
func (m *Mongo) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("store: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Query decodes all matching documents into dest, truncated to limit.
func (m *Mongo) Query(ctx context.Context, collection string, filter Filter, limit int64, dest interface{}) error {
	query, err := lower(filter)
	if err != nil {
		return err
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, dest)
}

// FindOne decodes the first matching document into dest.
func (m *Mongo) FindOne(ctx context.Context, collection string, filter Filter, dest interface{}) error {
	query, err := lower(filter)
	if err != nil {
		return err
	}

	err = m.db.Collection(collection).FindOne(ctx, query).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// FindByID is a point lookup by hex ObjectID.
func (m *Mongo) FindByID(ctx context.Context, collection, id string, dest interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// UpdateByID sets fields on the identified document.
func (m *Mongo) UpdateByID(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	_, err = m.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	return err
}

// Count reports how many documents match filter.
func (m *Mongo) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	query, err := lower(filter)
	if err != nil {
		return 0, err
	}
	return m.db.Collection(collection).CountDocuments(ctx, query)
}

// Ping verifies the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

// Collections lists collection names in the database.
func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// lower translates a Filter into a MongoDB query document.
func lower(filter Filter) (bson.M, error) {
	query := bson.M{}
	for _, cond := range filter {
		cond, err := normalizeID(cond)
		if err != nil {
			return nil, err
		}

		switch cond.Op {
		case OpEq:
			query[cond.Field] = cond.Value
		case OpContainsFold:
			s, _ := cond.Value.(string)
			query[cond.Field] = bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
		case OpIn:
			query[cond.Field] = bson.M{"$in": cond.Value}
		case OpNe:
			query[cond.Field] = bson.M{"$ne": cond.Value}
		default:
			return nil, fmt.Errorf("store: unknown filter op %d", cond.Op)
		}
	}
	return query, nil
}
