// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/metrics"
)

// Database and collection names are fixed, not configurable. Clients that
// need a different namespace point BDI_MONGO_URL at a different deployment.
const (
	databaseName   = "bdi_aircraft"
	collectionName = "positions"
)

// Operation labels for metrics
const (
	opInsert        = "insert_one"
	opAggregate     = "aggregate"
	opFindOne       = "find_one"
	opDeleteMany    = "delete_many"
	opCreateIndexes = "create_indexes"
)

// DB wraps the MongoDB client and provides position data access methods
type DB struct {
	client       *mongo.Client
	positions    *mongo.Collection
	queryTimeout time.Duration
}

// New creates a new database connection, verifies it with a ping, and
// ensures the collection indexes exist. The returned DB is safe for
// concurrent use.
func New(cfg *config.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Connect does not verify the server is reachable; Ping does
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := &DB{
		client:       client,
		positions:    client.Database(databaseName).Collection(collectionName),
		queryTimeout: cfg.QueryTimeout,
	}

	idxCtx, idxCancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer idxCancel()
	if err := db.EnsureIndexes(idxCtx); err != nil {
		disconnectQuietly(client)
		return nil, err
	}

	logging.Info().
		Str("database", databaseName).
		Str("collection", collectionName).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return db, nil
}

// EnsureIndexes creates the collection indexes. CreateMany is idempotent
// for identical specifications, so this is safe to run on every startup.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			// Serves latest-position lookups and the per-aircraft grouping sort
			Keys: bson.D{{Key: "icao", Value: 1}, {Key: "timestamp", Value: -1}},
		},
		{
			// Serves the per-type aggregation
			Keys: bson.D{{Key: "type", Value: 1}},
		},
	}

	start := time.Now()
	_, err := db.positions.Indexes().CreateMany(ctx, indexes)
	metrics.RecordDBQuery(opCreateIndexes, collectionName, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logging.Debug().Int("count", len(indexes)).Msg("Ensured collection indexes")
	return nil
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.client == nil {
		return fmt.Errorf("database client is nil")
	}
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB, returning outstanding pooled connections
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	return db.client.Disconnect(ctx)
}

// Collection exposes the underlying positions collection for tests
func (db *DB) Collection() *mongo.Collection {
	return db.positions
}

// opCtx bounds an operation with the configured query timeout
func (db *DB) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}
