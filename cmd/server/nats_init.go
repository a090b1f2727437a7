// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

//go:build nats

package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/tomtom215/volatus/internal/api"
	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/eventbus"
	"github.com/tomtom215/volatus/internal/logging"
)

// NATSComponents holds all NATS-related components for lifecycle management.
//
// Volatus publishes position events only; there are no consumers here, so
// the component set is the JetStream admin connection, the stream manager,
// and the Watermill publisher with its circuit breaker.
type NATSComponents struct {
	natsConn      *natsgo.Conn
	streamManager *eventbus.StreamManager
	publisher     *eventbus.Publisher

	shutdownComplete chan struct{}
	mu               sync.Mutex
	running          bool
}

// InitNATS initializes the NATS publishing components when NATS_ENABLED=true.
//
// The publisher is wired to the API handler here, before the supervisor tree
// starts, so the handler never observes a publisher swap while serving.
// Stream provisioning is deferred to Start so an unreachable NATS server
// delays event publishing instead of failing the whole process: the
// supervisor retries Start until the stream exists.
//
// Returns nil, nil when NATS is disabled; main must tolerate a nil result.
func InitNATS(cfg *config.Config, handler *api.Handler) (*NATSComponents, error) {
	if !cfg.NATS.Enabled {
		logging.Info().Msg("NATS event publishing disabled (NATS_ENABLED=false)")
		return nil, nil
	}

	logging.Info().Msg("Initializing NATS event publishing...")

	components := &NATSComponents{
		shutdownComplete: make(chan struct{}),
	}

	// Step 1: Connect to NATS for JetStream administration. The publisher
	// maintains its own connection through Watermill; this one provisions
	// and inspects the stream.
	nc, err := natsgo.Connect(cfg.NATS.URL,
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.NATS.MaxReconnects),
		natsgo.ReconnectWait(cfg.NATS.ReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	components.natsConn = nc
	logging.Info().Str("url", cfg.NATS.URL).Msg("NATS connection established")

	// Step 2: Create the stream manager. EnsureStream runs in Start under
	// supervision, not here.
	streamCfg := eventbus.DefaultStreamConfig(cfg.NATS.SubjectPrefix)
	streamManager, err := eventbus.NewStreamManager(nc, &streamCfg)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream manager: %w", err)
	}
	components.streamManager = streamManager

	// Step 3: Create the publisher with a circuit breaker so a NATS outage
	// degrades to fast-failing publishes instead of stalling API requests.
	publisherCfg := eventbus.DefaultPublisherConfig(cfg.NATS.URL)
	publisherCfg.Subject = eventbus.PositionCreatedSubject(cfg.NATS.SubjectPrefix)
	publisherCfg.MaxReconnects = cfg.NATS.MaxReconnects
	publisherCfg.ReconnectWait = cfg.NATS.ReconnectWait

	publisher, err := eventbus.NewPublisher(publisherCfg, nil)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create publisher: %w", err)
	}

	breakerCfg := eventbus.DefaultCircuitBreakerConfig("nats-publish")
	if cfg.NATS.BreakerThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.NATS.BreakerThreshold
	}
	publisher.SetCircuitBreaker(eventbus.NewCircuitBreaker(breakerCfg))
	components.publisher = publisher
	logging.Info().
		Str("subject", publisherCfg.Subject).
		Uint32("breaker_threshold", breakerCfg.FailureThreshold).
		Msg("NATS publisher created")

	// Step 4: Wire the publisher to the API handler. Inserts acknowledged
	// from here on are published best-effort after the database write.
	if handler != nil {
		handler.SetEventPublisher(publisher)
		logging.Info().Msg("Event publisher wired to API handler")
	}

	components.mu.Lock()
	components.running = true
	components.mu.Unlock()

	logging.Info().Msg("NATS event publishing initialized successfully")
	return components, nil
}

// Start provisions the JetStream stream. It is called by the supervisor's
// messaging layer, so a failure here is retried with backoff rather than
// crashing the process. EnsureStream is idempotent: it updates the stream
// configuration when the stream already exists.
func (c *NATSComponents) Start(ctx context.Context) error {
	if c == nil || c.streamManager == nil {
		return nil
	}

	streamCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stream, err := c.streamManager.EnsureStream(streamCtx)
	if err != nil {
		return fmt.Errorf("ensure stream exists: %w", err)
	}

	streamInfo := stream.CachedInfo()
	logging.Info().
		Str("name", streamInfo.Config.Name).
		Strs("subjects", streamInfo.Config.Subjects).
		Dur("max_age", streamInfo.Config.MaxAge).
		Msg("JetStream stream ready")

	return nil
}

// Shutdown gracefully stops all NATS components.
//
// Shutdown order matters for clean termination:
//  1. Close the publisher first (flushes Watermill's NATS connection)
//  2. Close the admin NATS connection last
func (c *NATSComponents) Shutdown(_ context.Context) {
	if c == nil {
		return
	}

	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	logging.Info().Msg("Shutting down NATS components...")

	c.shutdownPublisher()
	c.shutdownConnection()

	close(c.shutdownComplete)
	logging.Info().Msg("NATS shutdown complete")
}

// shutdownPublisher closes the NATS publisher.
func (c *NATSComponents) shutdownPublisher() {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing publisher")
	}
	logging.Info().Msg("Publisher closed")
}

// shutdownConnection closes the admin NATS connection.
func (c *NATSComponents) shutdownConnection() {
	if c.natsConn == nil {
		return
	}
	c.natsConn.Close()
	logging.Info().Msg("NATS connection closed")
}

// IsRunning returns whether NATS components are active.
func (c *NATSComponents) IsRunning() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// EventPublisher returns the event publisher, or nil if NATS is not
// initialized. Exposed so future consumers can share the publisher the way
// the API handler does.
func (c *NATSComponents) EventPublisher() api.EventPublisher {
	if c == nil || c.publisher == nil {
		return nil
	}
	return c.publisher
}
