// FilePath: internal/database/database.go
package database

import (
	"context"
	"fmt"

	"github.com/uwnav/hub/internal/config"
	nuts "github.com/vaudience/go-nuts"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// DB is the connection handle the repositories operate on
type DB interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
	Name() string
	Close(ctx context.Context) error
}

// MongoDB wraps a single pooled client and the service database. It is
// opened once at startup and injected into the repositories.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB establishes the MongoDB connection and verifies it with a ping.
// The five collections and their indexes are expected to exist already;
// this service never creates schema.
func NewMongoDB(cfg config.MongoConfig) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	nuts.L.Infof("[MongoDB] Connected to database %s", cfg.Database)
	return &MongoDB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to the named collection
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping verifies the connection against the primary
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Name returns the database name
func (m *MongoDB) Name() string {
	return m.db.Name()
}

// Close disconnects the client and drains the connection pool
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
