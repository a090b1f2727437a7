// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/volatus/internal/metrics"
)

// EndpointLabeler maps a request to its metrics endpoint label. It runs
// after the handler, so route patterns the router resolves during dispatch
// are visible to it. An empty return falls back to the request path.
type EndpointLabeler func(r *http.Request) string

// PrometheusMetrics creates middleware for recording Prometheus metrics:
// active request gauge plus per-request counter and duration histogram,
// labeled by method, path, and status.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return PrometheusMetricsLabeled(nil)(next)
}

// PrometheusMetricsLabeled is PrometheusMetrics with a custom endpoint
// labeler. Routers with parameterized paths pass their route pattern here
// so the endpoint label space stays bounded: /api/v1/aircraft/{icao} is one
// series, not one per aircraft.
func PrometheusMetricsLabeled(label EndpointLabeler) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Track active requests
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			start := time.Now()

			// Wrap ResponseWriter to capture status code
			wrapper := &metricsResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next(wrapper, r)

			endpoint := r.URL.Path
			if label != nil {
				if labeled := label(r); labeled != "" {
					endpoint = labeled
				}
			}

			metrics.RecordAPIRequest(
				r.Method,
				endpoint,
				strconv.Itoa(wrapper.statusCode),
				time.Since(start),
			)
		}
	}
}

// metricsResponseWriter wraps http.ResponseWriter to capture status code
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code
func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
