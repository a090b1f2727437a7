// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

// Package eventbus publishes accepted aircraft positions to NATS JetStream
// using Watermill, so downstream consumers (feed aggregators, alerting,
// archival) can react to inserts without polling MongoDB.
//
// The bus is publish-only and strictly optional: the HTTP API acknowledges
// an insert before the event is published, and a publish failure never fails
// the originating request. MongoDB remains the source of truth; the stream
// is a change feed derived from it.
//
//	┌──────────────┐    insert    ┌──────────────┐
//	│  POST /api/  │─────────────▶│   MongoDB    │
//	│ v1/aircraft  │              │ (positions)  │
//	└──────┬───────┘              └──────────────┘
//	       │ ack, then publish (best effort)
//	       ▼
//	┌──────────────────┐
//	│  NATS JetStream  │  subject <prefix>.positions.created
//	│ (change feed)    │
//	└──────────────────┘
//
// # Delivery Semantics
//
// Publishing is at-least-once: the Watermill publisher retries transient
// failures and the NATS connection reconnects indefinitely. The event ID is
// carried as the Nats-Msg-Id header, so JetStream deduplicates redelivered
// publishes within the stream's duplicate window and consumers observe each
// event effectively once.
//
// A circuit breaker wraps every publish. When NATS is down the breaker opens
// after a configured number of consecutive failures and sheds publish
// attempts until the backend recovers, keeping request-path goroutines from
// piling up behind a dead broker.
//
// # Build Tags
//
// The full Watermill/NATS publisher compiles only with -tags=nats. Without
// the tag a stub Publisher is provided whose constructor returns an error,
// keeping NATS client libraries out of default builds. Configuration,
// subject naming, serialization, and the circuit breaker compile under both
// tag states.
package eventbus
