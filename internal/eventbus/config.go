// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package eventbus

import (
	"time"
)

// PublisherConfig holds publisher configuration.
//
// Values come from the application config (NATS_* environment variables via
// koanf); the Default* constructors supply production defaults for fields
// the application config does not expose.
type PublisherConfig struct {
	// URL is the NATS server connection URL.
	URL string

	// Subject is the JetStream subject position events are published to.
	Subject string

	// MaxReconnects bounds reconnection attempts. -1 means unlimited.
	MaxReconnects int

	// ReconnectWait is the delay between reconnection attempts.
	ReconnectWait time.Duration

	// ReconnectBuffer is the size in bytes of outgoing messages buffered
	// while the connection is down.
	ReconnectBuffer int

	// EnableTrackMsgID enables server-side deduplication via Nats-Msg-Id.
	EnableTrackMsgID bool // nolint:revive // ID is correct per Go conventions
}

// DefaultPublisherConfig returns production defaults for publisher.
func DefaultPublisherConfig(url string) PublisherConfig {
	return PublisherConfig{
		URL:              url,
		Subject:          PositionCreatedSubject(DefaultSubjectPrefix),
		MaxReconnects:    -1, // Unlimited
		ReconnectWait:    2 * time.Second,
		ReconnectBuffer:  8 * 1024 * 1024, // 8MB
		EnableTrackMsgID: true,
	}
}

// StreamConfig defines position event stream settings.
type StreamConfig struct {
	Name            string
	Subjects        []string
	MaxAge          time.Duration
	MaxBytes        int64
	MaxMsgs         int64
	DuplicateWindow time.Duration
	Replicas        int
}

// DefaultStreamConfig returns production stream configuration for the given
// subject prefix.
func DefaultStreamConfig(subjectPrefix string) StreamConfig {
	return StreamConfig{
		Name:            DefaultStreamName,
		Subjects:        PositionSubjects(subjectPrefix),
		MaxAge:          7 * 24 * time.Hour,      // 7 days
		MaxBytes:        10 * 1024 * 1024 * 1024, // 10GB
		MaxMsgs:         -1,                      // Unlimited
		DuplicateWindow: 2 * time.Minute,
		Replicas:        1, // Increase for clustering
	}
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Allowed in half-open state
	Interval         time.Duration // Reset interval for counts
	Timeout          time.Duration // Time to stay open
	FailureThreshold uint32        // Failures before opening
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}
