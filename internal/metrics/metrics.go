// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongodb_query_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongodb_query_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Position Metrics
	PositionsInserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "positions_inserted_total",
			Help: "Total number of aircraft position records written",
		},
	)

	PositionsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "positions_deleted_total",
			Help: "Total number of aircraft position records deleted",
		},
	)

	// NATS Event Publishing Metrics
	NATSMessagesPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_messages_published_total",
			Help: "Total number of position events published to NATS",
		},
	)

	NATSPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_publish_errors_total",
			Help: "Total number of failed NATS publishes",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database operation metric
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, collection, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection for an endpoint
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPositionInsert records a position record being written
func RecordPositionInsert() {
	PositionsInserted.Inc()
}

// RecordPositionsDeleted records position records being deleted
func RecordPositionsDeleted(count int64) {
	PositionsDeleted.Add(float64(count))
}

// RecordNATSPublish records a position event being published to NATS
func RecordNATSPublish() {
	NATSMessagesPublished.Inc()
}

// RecordNATSPublishError records a failed NATS publish
func RecordNATSPublishError() {
	NATSPublishErrors.Inc()
}

// RecordCircuitBreakerTransition records a circuit breaker state change.
// State values: 0=closed, 1=half-open, 2=open.
func RecordCircuitBreakerTransition(name, fromState, toState string, stateValue float64) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(stateValue)
}
