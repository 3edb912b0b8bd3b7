package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the MongoDB client. It is constructed once in main and handed to
// the query layer, there is no package level client.
type Store struct {
	Client *mongo.Client
	db     *mongo.Database
}

// NewStore wraps an already connected client
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		Client: client,
		db:     client.Database(dbName),
	}
}

// Connect to MongoDB and ping before returning the store
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	// Set a context to avoid long blocking
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return NewStore(client, dbName), nil
}

// Collection Get MongoDB collection
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Close MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
