// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package services provides suture.Service wrappers for Volatus components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns (Start/Shutdown, ListenAndServe)
into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation (Start/Stop to Serve pattern)
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

NATS Components (NATSComponentsService, build tag: nats):
  - Wraps the NATS publisher stack from cmd/server
  - Starts the JetStream publisher, shuts it down on cancellation
  - Start failures propagate so the supervisor retries with backoff

# Design Principles

Interface-based dependencies: each wrapper depends on a small local
interface (HTTPServer, NATSComponentsRunner) rather than concrete types,
so wrappers can be unit tested with mocks and avoid import cycles with
cmd/server.

Fresh shutdown contexts: the serve context is already canceled when
shutdown begins, so each wrapper derives its shutdown deadline from
context.Background.
*/
package services
