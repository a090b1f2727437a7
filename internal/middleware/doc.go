// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package middleware provides HTTP middleware components for the application.

This package implements HandlerFunc-style infrastructure middleware for
request ID tracking, Prometheus instrumentation, and gzip compression. The
api package bridges these into the Chi router with an adapter; they remain
mux-agnostic so tests can compose them directly.

Key Components:

  - Request ID: UUID-based request tracking that also seeds the logging
    package's request and correlation IDs
  - Prometheus Metrics: HTTP request/response instrumentation (active
    requests, per-request counters, duration histograms)
  - Compression: Gzip compression for clients that accept it

Usage Example - Request ID:

	http.HandleFunc("/api/v1/aircraft",
	    middleware.RequestID(handler),
	)

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("Processing request")
	}

Usage Example - Prometheus:

	http.HandleFunc("/api/v1/aircraft/stats",
	    middleware.PrometheusMetrics(handler),
	)

Thread Safety:

All middleware components are thread-safe:
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations
  - Compression pools gzip writers per request via sync.Pool

See Also:

  - internal/api: HTTP handlers and the Chi router wrapping this middleware
  - internal/metrics: Prometheus metric definitions
*/
package middleware
