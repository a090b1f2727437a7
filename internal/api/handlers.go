// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/models"
)

// PositionStore is the storage surface the handlers depend on.
// *database.DB satisfies it; unit tests substitute stubs so the full
// decode/validate/respond path runs without a live MongoDB.
type PositionStore interface {
	// InsertPosition stores one position record.
	InsertPosition(ctx context.Context, pos *models.AircraftPosition) error

	// StatsByType returns position counts grouped by aircraft type,
	// count descending with ties broken by type ascending.
	StatsByType(ctx context.Context) ([]models.TypeCount, error)

	// ListAircraft returns one summary per distinct aircraft, ICAO
	// ascending, for the given 1-based page.
	ListAircraft(ctx context.Context, page, pageSize int) ([]models.AircraftSummary, error)

	// LatestPosition returns the most recent record for an aircraft, or
	// database.ErrNotFound when none exists.
	LatestPosition(ctx context.Context, icao string) (*models.AircraftPosition, error)

	// DeletePositions removes every record for an aircraft and reports
	// how many were deleted. Zero is a valid result.
	DeletePositions(ctx context.Context, icao string) (int64, error)

	// Ping verifies store connectivity for health reporting.
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, shared guards (this file)
//   - handlers_aircraft.go: the five position endpoints
//   - handlers_health.go: health endpoint
//   - handler_event_publisher.go: optional NATS event hook
type Handler struct {
	store          PositionStore
	config         *config.Config
	eventPublisher EventPublisher // optional; nil disables event publishing
	startTime      time.Time
}

// NewHandler creates a new API handler with its required dependencies.
//
// Dependencies:
//   - store: position storage, normally the Mongo-backed *database.DB
//   - cfg: application configuration (paging defaults)
//
// The optional event publisher is attached later via SetEventPublisher,
// after NATS initialization has decided whether publishing is enabled.
//
// Example:
//
//	handler := api.NewHandler(db, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(store PositionStore, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}

// defaultPageSize returns the configured page size fallback, guarding
// against a missing config in tests.
func (h *Handler) defaultPageSize() int {
	if h.config != nil && h.config.API.DefaultPageSize > 0 {
		return h.config.API.DefaultPageSize
	}
	return 20
}

// requireMethod validates the HTTP method and returns true if valid, false
// if the error was already sent. The router only dispatches matching
// methods; this guard keeps handlers safe when mounted elsewhere (tests,
// future mux changes).
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return false
	}
	return true
}

// requireStore checks store availability and returns true if available,
// false if the error was already sent.
func (h *Handler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceError, "Storage not available", nil)
		return false
	}
	return true
}
