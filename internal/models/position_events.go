// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionEvent is the message published to the event bus after a position
// insert succeeds. Consumers receive the stored record verbatim plus an
// event identity.
//
// ID doubles as the JetStream Msg-Id header, so redelivered publishes of
// the same event deduplicate server-side within the stream's dedup window.
type PositionEvent struct {
	// ID uniquely identifies this event (not the position; positions have
	// no exposed identity).
	ID uuid.UUID `json:"id"`

	// Position is the record exactly as stored, nulls included.
	Position AircraftPosition `json:"position"`

	// EmittedAt is when the API accepted the insert, in UTC. Distinct from
	// Position.Timestamp, which is the reporter's opaque string.
	EmittedAt time.Time `json:"emitted_at"`
}

// NewPositionEvent builds an event for a freshly stored position.
func NewPositionEvent(pos *AircraftPosition) *PositionEvent {
	return &PositionEvent{
		ID:        uuid.New(),
		Position:  *pos,
		EmittedAt: time.Now().UTC(),
	}
}
