// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package api provides the HTTP REST API layer for Volatus.

This package implements the aircraft position endpoints plus the operational
surface (health, metrics, Swagger UI). It is the only interface between
clients and the position store.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for the position endpoints
  - PositionStore: The storage interface handlers depend on; the Mongo-backed
    database.DB satisfies it, tests substitute stubs
  - Response formatting: Bare JSON payloads on success, a structured error
    object on failure
  - Rate limiting and CORS via the go-chi middleware ecosystem

Endpoints (/api/v1/):

  - POST /aircraft: Record a position report
  - GET /aircraft/stats: Position counts grouped by aircraft type
  - GET /aircraft/: Paginated distinct aircraft listing
  - GET /aircraft/{icao}: Latest recorded position for one aircraft
  - DELETE /aircraft/{icao}: Remove every position for one aircraft
  - GET /health: Liveness plus database ping status

Response Conventions:

Success bodies are the payload itself: a bare array for list endpoints, a
bare object otherwise, with no wrapper keys. Error bodies use
models.ErrorResponse with a machine-readable code (VALIDATION_ERROR,
NOT_FOUND, DATABASE_ERROR, RATE_LIMIT_EXCEEDED). Validation failures are
422 with per-field details; a missing aircraft is 404; store failures are
500 with the cause logged, never echoed to the client.

Usage Example:

	import (
	    "github.com/tomtom215/volatus/internal/api"
	    "github.com/tomtom215/volatus/internal/database"
	)

	db, _ := database.New(&cfg.Mongo)
	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, cfg)

	http.ListenAndServe(":8080", router.SetupChi())

Thread Safety:

All handlers are stateless and safe for concurrent request handling; the
injected store carries its own synchronization (the Mongo driver pool).
*/
package api
