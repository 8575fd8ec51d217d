package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Each model maps to a collection named after it.
const (
	Users   = "user"
	Courses = "course"
	Tasks   = "task"
	Moods   = "mood"
	Posts   = "post"
)

// Store wraps the Mongo client and database handle. It is created once at
// startup and passed to whoever needs it; there is no package-level
// singleton.
type Store struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Collection returns a collection by name.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.Database.Collection(name)
}

// Ping verifies connectivity to the backing store.
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// extractDBName parses the database name from the URI, defaulting to "test"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "test"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "test"
}

// Connect establishes a connection to MongoDB using the provided URI and
// verifies it with a ping.
func Connect(uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	return &Store{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}
