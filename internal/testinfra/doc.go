// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests,
// providing realistic testing environments that closely match production.
//
// # MongoDB Container
//
// The MongoContainer provides a real MongoDB instance for testing the storage layer:
//
//	func TestPositions(t *testing.T) {
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer mongo.Terminate(ctx)
//
//	    db, err := database.New(&config.MongoConfig{
//	        URL:            mongo.URI,
//	        ConnectTimeout: 10 * time.Second,
//	        QueryTimeout:   5 * time.Second,
//	    })
//	    // Exercise real aggregation pipelines, indexes, null handling
//	}
//
// # Benefits Over Mocks
//
// Using real containers provides several advantages:
//   - Aggregation pipelines run against a real query planner
//   - BSON null round-tripping is validated, not assumed
//   - Index creation and idempotency are tested for real
//   - No mock drift between the fakes and the driver
//
// # CI Considerations
//
// These tests require Docker and network access. In CI:
//   - Self-hosted runners have Docker pre-installed
//   - Container images are cached between runs
//   - Tests are skipped gracefully if Docker is unavailable
//
// # Network Requirements
//
// First run may need to download container images. Subsequent runs use cached images.
package testinfra
