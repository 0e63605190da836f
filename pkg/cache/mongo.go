package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed result store. Unlike the pure caches it
// keeps entries as queryable documents, so operators can inspect solved
// instances directly. Expired entries are reaped by a TTL index on the
// expires_at field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoEntry is the stored document shape.
type mongoEntry struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and prepares the given database and
// collection, creating the TTL index used for expiry.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", Retryable(ErrNetwork))
	}

	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ttl index: %w", err)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Get retrieves a value from the store.
func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo find: %w", err)
	}
	// the TTL reaper runs periodically, so an expired document may still
	// be present
	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set stores a value, replacing any previous entry for the key.
func (s *MongoStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	if ttl > 0 {
		t := time.Now().Add(ttl)
		entry.ExpiresAt = &t
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, entry, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert: %w", err)
	}
	return nil
}

// Delete removes a value from the store.
func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Cache.
var _ Cache = (*MongoStore)(nil)
