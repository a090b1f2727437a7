// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMongoImage is the MongoDB image used for integration tests.
	// Matches the major version the deployment targets.
	DefaultMongoImage = "mongo:7.0"

	// DefaultMongoPort is the MongoDB wire protocol port
	DefaultMongoPort = "27017"
)

// MongoContainer represents a running MongoDB container for testing.
// URI is a ready-to-use connection string for the mapped port; the
// container runs without authentication.
type MongoContainer struct {
	testcontainers.Container
	URI string
}

// MongoOption configures the MongoDB container.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	image        string
	startTimeout time.Duration
}

// WithMongoImage sets a custom MongoDB Docker image.
func WithMongoImage(image string) MongoOption {
	return func(c *mongoConfig) {
		c.image = image
	}
}

// WithMongoStartTimeout sets the timeout for waiting for MongoDB to start.
func WithMongoStartTimeout(timeout time.Duration) MongoOption {
	return func(c *mongoConfig) {
		c.startTimeout = timeout
	}
}

// NewMongoContainer creates and starts a new MongoDB container for testing.
//
// Example:
//
//	ctx := context.Background()
//	mongo, err := NewMongoContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer mongo.Terminate(ctx)
//
//	db, err := database.New(&config.MongoConfig{URL: mongo.URI, ...})
func NewMongoContainer(ctx context.Context, opts ...MongoOption) (*MongoContainer, error) {
	cfg := &mongoConfig{
		image:        DefaultMongoImage,
		startTimeout: 60 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// mongod logs "Waiting for connections" once it is ready to serve;
	// the listening port alone is up before the storage engine is.
	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultMongoPort + "/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultMongoPort+"/tcp"),
			wait.ForLog("Waiting for connections"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mongo container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultMongoPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &MongoContainer{
		Container: container,
		URI:       fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
	}, nil
}

// Terminate stops and removes the MongoDB container.
func (c *MongoContainer) Terminate(ctx context.Context) error {
	return c.Container.Terminate(ctx)
}
