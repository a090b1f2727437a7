// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

// Package main is the entry point for the Volatus server application.
//
// Volatus is an aircraft position tracking API backed by MongoDB. It ingests
// position reports keyed by ICAO 24-bit transponder address and serves
// aggregate statistics, paginated aircraft listings, and per-aircraft latest
// positions.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog with JSON or console output
//  3. Database: Connect to MongoDB, verify with a ping, ensure indexes
//  4. NATS (optional): Position event publishing over JetStream
//  5. HTTP Server: REST API with Prometheus metrics and Swagger documentation
//
// All long-running components are managed by a Suture v4 supervisor tree for
// automatic restart on failure. See internal/supervisor for the tree layout.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (a .env file is read first, if present)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// The only required setting is BDI_MONGO_URL, the MongoDB connection string.
//
// # Build Tags
//
// Optional build tags enable additional functionality:
//
//	go build ./cmd/server                # Standard build
//	go build -tags nats ./cmd/server     # Enable NATS JetStream publishing
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Shuts down NATS components if enabled
//   - Closes the MongoDB client
//
// # Example Usage
//
// Local development:
//
//	export BDI_MONGO_URL=mongodb://localhost:27017
//	./volatus
//
// With NATS event publishing (requires -tags nats build):
//
//	export BDI_MONGO_URL=mongodb://localhost:27017
//	export NATS_ENABLED=true
//	export NATS_URL=nats://localhost:4222
//	./volatus
//
// Docker:
//
//	docker run -d \
//	  -e BDI_MONGO_URL=mongodb://mongo:27017 \
//	  -p 8080:8080 \
//	  ghcr.io/tomtom215/volatus
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/volatus/docs" // Import generated swagger docs
	"github.com/tomtom215/volatus/internal/api"
	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/database"
	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/supervisor"
	"github.com/tomtom215/volatus/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Volatus with supervisor tree")

	// Log configuration status. The Mongo URL is deliberately omitted since
	// connection strings may embed credentials.
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Bool("rate_limit_disabled", cfg.Security.RateLimitDisabled).
		Msg("Configuration loaded")

	// Initialize MongoDB: connect, ping, and ensure the positions indexes
	db, err := database.New(&cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for load tests and CI!")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(db, cfg)

	// Initialize NATS event publishing (optional - requires build with -tags nats)
	// Wires the event publisher to the handler so stored positions are
	// published after each acknowledged insert.
	natsComponents, err := InitNATS(cfg, handler)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize NATS")
	}

	// Add NATS to supervisor tree (if enabled)
	// Note: NATS components are started/managed by supervisor, not manually
	AddNATSToSupervisor(tree, natsComponents)

	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
