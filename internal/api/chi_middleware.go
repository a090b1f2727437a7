// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

// Chi middleware factories for the production middleware stack: CORS via
// go-chi/cors and rate limiting via go-chi/httprate.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/volatus/internal/logging"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
	RateLimitOnLimit  http.HandlerFunc
}

// DefaultChiMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration; this
// prevents accidental deployment with wildcard CORS.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "Authorization"},
		CORSExposedHeaders:   []string{},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400, // 24 hours

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: false,
		RateLimitOnLimit:  rateLimitExceeded,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories backed by the
// production-hardened go-chi ecosystem implementations.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given
// configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// NewChiMiddlewareFromConfig builds the middleware factory from security
// settings, falling back to the error-object limit handler.
func NewChiMiddlewareFromConfig(corsOrigins []string, rateLimitReqs int, rateLimitWindow time.Duration, rateLimitDisabled bool) *ChiMiddleware {
	config := DefaultChiMiddlewareConfig()
	config.CORSAllowedOrigins = corsOrigins
	config.RateLimitRequests = rateLimitReqs
	config.RateLimitWindow = rateLimitWindow
	config.RateLimitDisabled = rateLimitDisabled
	return NewChiMiddleware(config)
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the default rate limiting middleware using
// go-chi/httprate, keyed by client IP. Exceeding the limit answers 429
// with the house RATE_LIMIT_EXCEEDED error object.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		// No-op middleware when rate limiting is disabled
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	opts := []httprate.Option{
		httprate.WithKeyFuncs(keyFunc),
	}
	if m.config.RateLimitOnLimit != nil {
		opts = append(opts, httprate.WithLimitHandler(m.config.RateLimitOnLimit))
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		opts...,
	)
}

// RateLimitConfig defines rate limit parameters for specific route groups.
type RateLimitConfig struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
}

// RateLimitHealth is permissive rate limiting for the health endpoint
// (1000/min): frequent monitoring probes stay unthrottled while abuse is
// still bounded.
var RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}

// RateLimitWrite is moderate limiting for write operations (insert,
// delete), protecting the store from write floods independently of the
// read limit.
var RateLimitWrite = RateLimitConfig{Requests: 60, Window: time.Minute}

// RateLimitCustom returns a rate limiter with custom configuration, keyed
// by client IP, keeping the house 429 body.
func (m *ChiMiddleware) RateLimitCustom(config RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	opts := []httprate.Option{
		httprate.WithKeyFuncs(httprate.KeyByIP),
	}
	if m.config.RateLimitOnLimit != nil {
		opts = append(opts, httprate.WithLimitHandler(m.config.RateLimitOnLimit))
	}

	return httprate.Limit(config.Requests, config.Window, opts...)
}

// RateLimitHealthEndpoint returns the permissive health-probe limiter.
func (m *ChiMiddleware) RateLimitHealthEndpoint() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// RateLimitWriteEndpoint returns the write-operation limiter.
func (m *ChiMiddleware) RateLimitWriteEndpoint() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitWrite)
}

// APISecurityHeaders returns a middleware that adds security headers to
// API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff (prevents MIME type sniffing)
//   - X-Frame-Options: DENY (prevents clickjacking)
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added conditionally when the request arrived over HTTPS or
// through a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogging returns a middleware that logs each completed request
// with method, path, status, and duration. Logged at debug level so
// production (info) stays quiet; raise LOG_LEVEL to debug for access logs.
func RequestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logging.Ctx(r.Context()).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.statusCode).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("Request completed")
		})
	}
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code and calls the underlying WriteHeader.
func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
