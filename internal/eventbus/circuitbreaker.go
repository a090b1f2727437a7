// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package eventbus

import (
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/metrics"
)

// NewCircuitBreaker creates a circuit breaker with the given configuration.
// Uses gobreaker v2 generic API with interface{} type parameter for flexibility.
//
// State transitions are logged and exported to Prometheus so an open breaker
// (NATS outage) is visible without log diving.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *gobreaker.CircuitBreaker[interface{}] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), breakerStateValue(to))
		},
	}

	return gobreaker.NewCircuitBreaker[interface{}](settings)
}

// CircuitBreakerState converts gobreaker.State to a string for monitoring.
func CircuitBreakerState(cb *gobreaker.CircuitBreaker[interface{}]) string {
	return cb.State().String()
}

// ExecuteWithBreaker wraps a function with circuit breaker protection.
// Returns the result and any error from the function or circuit breaker.
func ExecuteWithBreaker(cb *gobreaker.CircuitBreaker[interface{}], fn func() (interface{}, error)) (interface{}, error) {
	return cb.Execute(fn)
}

// breakerStateValue maps breaker states to the gauge values exported by the
// circuit breaker metric: 0=closed, 1=half-open, 2=open.
func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
