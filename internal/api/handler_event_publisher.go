// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"context"
	"time"

	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/models"
)

// EventPublisher defines the interface for publishing position events to
// NATS. The eventbus package provides the JetStream implementation under
// the nats build tag and a no-op stub otherwise.
type EventPublisher interface {
	// PublishPositionEvent publishes a position event to the event bus.
	// Returns nil if publishing is disabled or succeeds. Errors are logged
	// by the caller but never fail the originating request.
	PublishPositionEvent(ctx context.Context, event *models.PositionEvent) error
}

// SetEventPublisher sets the optional event publisher for NATS integration.
// When set, stored positions are published after a successful insert. The
// publisher is optional; passing nil disables event publishing.
//
// Thread Safety: Safe for concurrent access but should be called once
// during startup, before the router starts serving.
func (h *Handler) SetEventPublisher(publisher EventPublisher) {
	h.eventPublisher = publisher
}

// publishPositionEvent publishes a stored position to NATS if a publisher
// is configured. Publishing is asynchronous and best-effort: the insert has
// already been acknowledged, so a publish failure is logged, counted by the
// publisher's metrics, and otherwise dropped.
func (h *Handler) publishPositionEvent(ctx context.Context, pos *models.AircraftPosition) {
	if h.eventPublisher == nil {
		return
	}

	event := models.NewPositionEvent(pos)

	timeout := 5 * time.Second
	if h.config != nil && h.config.NATS.PublishTimeout > 0 {
		timeout = h.config.NATS.PublishTimeout
	}

	// Detach from the request context: the response must not wait on NATS,
	// and the publish must survive the request context's cancellation.
	requestID := logging.RequestIDFromContext(ctx)
	go func() {
		pubCtx := logging.ContextWithRequestID(context.Background(), requestID)
		pubCtx, cancel := context.WithTimeout(pubCtx, timeout)
		defer cancel()

		if err := h.eventPublisher.PublishPositionEvent(pubCtx, event); err != nil {
			logging.Warn().Err(err).
				Str("event_id", event.ID.String()).
				Str("icao", sanitizeLogValue(event.Position.ICAO)).
				Msg("Failed to publish position event to NATS")
		}
	}()
}
