// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package eventbus

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/volatus/internal/models"
)

const (
	// DefaultSubjectPrefix is the subject hierarchy root when the
	// application config does not override it.
	DefaultSubjectPrefix = "volatus"

	// DefaultStreamName is the JetStream stream holding position events.
	// Stream names cannot contain subject wildcards, so the stream binds
	// the <prefix>.positions.> hierarchy under a fixed name.
	DefaultStreamName = "VOLATUS_POSITIONS"

	// positionCreatedSuffix is appended to the subject prefix for events
	// emitted after a successful position insert.
	positionCreatedSuffix = "positions.created"
)

// PositionCreatedSubject returns the subject position-created events are
// published to for the given prefix, e.g. "volatus.positions.created".
func PositionCreatedSubject(prefix string) string {
	return prefix + "." + positionCreatedSuffix
}

// PositionSubjects returns the subject filters the position stream binds,
// covering the whole positions hierarchy under the prefix.
func PositionSubjects(prefix string) []string {
	return []string{prefix + ".positions.>"}
}

// Serializer handles event encoding/decoding for NATS messages.
type Serializer struct{}

// NewSerializer creates a new serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Marshal converts an event to JSON bytes.
// Events missing an ID or emission time are rejected before encoding:
// the ID doubles as the deduplication header, so an empty one would make
// every event collide in the stream's duplicate window.
func (s *Serializer) Marshal(event *models.PositionEvent) ([]byte, error) {
	if err := validateEvent(event); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}

	return data, nil
}

// Unmarshal converts JSON bytes to an event.
func (s *Serializer) Unmarshal(data []byte) (*models.PositionEvent, error) {
	var event models.PositionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	return &event, nil
}

// SerializeEvent is a convenience function that marshals an event to JSON.
func SerializeEvent(event *models.PositionEvent) ([]byte, error) {
	return NewSerializer().Marshal(event)
}

// DeserializeEvent is a convenience function that unmarshals JSON to an event.
func DeserializeEvent(data []byte) (*models.PositionEvent, error) {
	return NewSerializer().Unmarshal(data)
}

func validateEvent(event *models.PositionEvent) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}
	if event.ID == uuid.Nil {
		return fmt.Errorf("event ID is required")
	}
	if event.EmittedAt.IsZero() {
		return fmt.Errorf("event emission time is required")
	}
	return nil
}
