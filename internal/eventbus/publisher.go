// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

//go:build nats

package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/volatus/internal/metrics"
	"github.com/tomtom215/volatus/internal/models"
)

// Publisher wraps a Watermill NATS publisher with resilience patterns.
// It provides circuit breaker protection and automatic reconnection handling.
type Publisher struct {
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	subject        string
	mu             sync.RWMutex
	closed         bool
	logger         watermill.LoggerAdapter
}

// NewPublisher creates a resilient Watermill NATS publisher.
// The publisher is configured for JetStream with message ID tracking for
// deduplication. The stream itself is provisioned separately by
// StreamManager before the first publish.
func NewPublisher(cfg PublisherConfig, logger watermill.LoggerAdapter) (*Publisher, error) {
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}

	// NATS connection options with reconnection handling
	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.ReconnectBufSize(cfg.ReconnectBuffer),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
		natsgo.ErrorHandler(func(nc *natsgo.Conn, sub *natsgo.Subscription, err error) {
			fields := watermill.LogFields{}
			if sub != nil {
				fields["subject"] = sub.Subject
			}
			logger.Error("NATS error", err, fields)
		}),
	}

	// Watermill publisher configuration
	wmConfig := wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled:      false,
			AutoProvision: false,                // Stream is pre-created by StreamManager
			TrackMsgId:    cfg.EnableTrackMsgID, // Enable deduplication
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}

	pub, err := wmNats.NewPublisher(wmConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	return &Publisher{
		publisher: pub,
		subject:   cfg.Subject,
		logger:    logger,
	}, nil
}

// SetCircuitBreaker configures the circuit breaker for publish operations.
func (p *Publisher) SetCircuitBreaker(cb *gobreaker.CircuitBreaker[interface{}]) {
	p.circuitBreaker = cb
}

// Publish sends a message to the specified topic with circuit breaker protection.
// The message UUID is used as Nats-Msg-Id for deduplication if not already set.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return fmt.Errorf("publisher is closed")
	}
	p.mu.RUnlock()

	// Set Nats-Msg-Id for deduplication if not already set
	if msg.Metadata.Get(natsgo.MsgIdHdr) == "" {
		msg.Metadata.Set(natsgo.MsgIdHdr, msg.UUID)
	}

	var err error

	if p.circuitBreaker != nil {
		_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
			return nil, p.publisher.Publish(topic, msg)
		})
	} else {
		err = p.publisher.Publish(topic, msg)
	}

	if err != nil {
		metrics.RecordNATSPublishError()
		return err
	}

	metrics.RecordNATSPublish()
	return nil
}

// PublishPositionEvent serializes and publishes a position event to the
// configured subject. The event ID becomes the message UUID (and thus the
// Nats-Msg-Id), so retried publishes of the same event deduplicate
// server-side.
func (p *Publisher) PublishPositionEvent(ctx context.Context, event *models.PositionEvent) error {
	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.ID.String(), data)
	msg.Metadata.Set("icao", event.Position.ICAO)
	msg.Metadata.Set("emitted_at", event.EmittedAt.Format(time.RFC3339Nano))

	return p.Publish(ctx, p.subject, msg)
}

// Close gracefully shuts down the publisher.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.publisher.Close()
}

// WatermillPublisher returns the underlying Watermill publisher.
// This is useful for passing to Watermill components that require
// the native message.Publisher interface.
func (p *Publisher) WatermillPublisher() message.Publisher {
	return p.publisher
}
