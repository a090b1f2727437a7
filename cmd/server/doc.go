// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package main is the entry point for the Volatus server application.

Volatus is an aircraft position tracking and aggregation API. It ingests
position reports keyed by ICAO 24-bit transponder address into MongoDB and
serves fleet statistics, paginated aircraft listings, per-aircraft latest
positions, and bulk deletion over a versioned REST API.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("volatus")
	├── MessagingSupervisor ("messaging-layer")
	│   └── NATS components (optional, -tags nats)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + metrics + swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: MongoDB client with ping verification and index provisioning
 4. API Handler: Position endpoints against the MongoDB store
 5. NATS Publisher: JetStream position events (optional, -tags nats)
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

A .env file in the working directory is read into the environment first,
if present. Core environment variables:

	# MongoDB (required)
	BDI_MONGO_URL=mongodb://localhost:27017

	# Server
	HTTP_PORT=8080               # HTTP listen port
	HTTP_HOST=0.0.0.0            # HTTP listen address
	HTTP_TIMEOUT=30s             # Read/write timeout
	ENVIRONMENT=development      # development or production

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Pagination
	API_DEFAULT_PAGE_SIZE=20
	API_MAX_PAGE_SIZE=100

	# Rate limiting and CORS
	RATE_LIMIT_REQUESTS=100      # Requests per window per IP
	RATE_LIMIT_WINDOW=1m
	CORS_ORIGINS=*               # Comma-separated allowed origins

	# NATS event publishing (optional, requires -tags nats build)
	NATS_ENABLED=false
	NATS_URL=nats://localhost:4222
	NATS_SUBJECT_PREFIX=volatus
	NATS_BREAKER_THRESHOLD=5

# Build Tags

Optional build tags enable additional functionality:

	go build ./cmd/server               # Standard build
	go build -tags nats ./cmd/server    # Enable NATS JetStream publishing

Build tags affect supervisor tree composition:
  - nats: Adds NATSComponentsService to the messaging layer

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Closes the NATS publisher and connection if enabled
 4. Closes the MongoDB client
 5. Reports any services that failed to stop

# Usage Examples

Development:

	export BDI_MONGO_URL=mongodb://localhost:27017
	go run ./cmd/server

Production with NATS publishing:

	export BDI_MONGO_URL=mongodb://mongo:27017
	export ENVIRONMENT=production
	export NATS_ENABLED=true
	export NATS_URL=nats://nats:4222
	./volatus

Docker:

	docker run -d \
	  -e BDI_MONGO_URL=mongodb://mongo:27017 \
	  -p 8080:8080 \
	  ghcr.io/tomtom215/volatus

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. The API surface:

  - POST   /api/v1/aircraft         Ingest a position report
  - GET    /api/v1/aircraft/        List distinct aircraft (paginated)
  - GET    /api/v1/aircraft/stats   Position counts grouped by aircraft type
  - GET    /api/v1/aircraft/{icao}  Latest position for one aircraft
  - DELETE /api/v1/aircraft/{icao}  Delete all positions for one aircraft
  - GET    /api/v1/health           Health and dependency status
  - GET    /metrics                 Prometheus metrics

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/database: MongoDB position store
  - internal/eventbus: NATS JetStream publishing
*/
package main
