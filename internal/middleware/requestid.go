// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/volatus/internal/logging"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestID middleware generates a unique ID for each request and adds it
// to both the response header and request context. It also seeds the
// logging package's request and correlation IDs, so every log line emitted
// while serving the request carries them.
//
// An X-Request-ID supplied by an upstream proxy is honored instead of
// generating a new one.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Add to response header for client visibility
		w.Header().Set("X-Request-ID", requestID)

		// Add to request context for logging and tracing
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logging.ContextWithRequestID(ctx, requestID)
		ctx = logging.ContextWithNewCorrelationID(ctx)

		next(w, r.WithContext(ctx))
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
