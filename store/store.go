package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the dashboard.
const (
	CollectionDonations     = "donations"
	CollectionNotifications = "notifications"
)

// ErrNotFound is returned when an update or delete matches no document.
var ErrNotFound = errors.New("store: document not found")

// Store is a thin façade over the Mongo collections. No retries; callers get
// connectivity errors as-is.
type Store struct {
	db *mongo.Database
}

func New(client *mongo.Client, dbName string) *Store {
	return &Store{db: client.Database(dbName)}
}

// ListOrderedBy fetches every document of a collection ordered by one field
// and decodes the result into out, which must be a pointer to a slice.
func (s *Store) ListOrderedBy(ctx context.Context, collection, field string, descending bool, out any) error {
	dir := 1
	if descending {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: dir}})
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// UpdateField sets a single field on one document.
func (s *Store) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a new document and returns its hex id.
func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(fields))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store: unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Delete removes one document by id.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
