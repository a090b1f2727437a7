// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router for the given handler, building the
// middleware stack from the security section of the configuration. A nil
// config falls back to secure defaults (no CORS origins, 100 req/min).
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var chiMw *ChiMiddleware
	if cfg != nil {
		chiMw = NewChiMiddlewareFromConfig(
			cfg.Security.CORSOrigins,
			cfg.Security.RateLimitReqs,
			cfg.Security.RateLimitWindow,
			cfg.Security.RateLimitDisabled,
		)
	} else {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so middleware written against
// HandlerFunc (PrometheusMetrics) works with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// chiEndpointLabel returns the matched route pattern for metrics labels,
// e.g. /api/v1/aircraft/{icao}. Called after the handler runs, when chi has
// resolved the full pattern. Keeps the endpoint label space bounded no
// matter how many distinct aircraft are requested.
func chiEndpointLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// chiPathValue bridges Chi URL params to r.PathValue(). Handlers read path
// parameters through the stdlib accessor, so they stay routable from tests
// and any future mux without importing chi.
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					r.SetPathValue(key, rctx.URLParams.Values[i])
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics with a 500
	r.Use(RequestLogging())                    // Debug-level access log
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoint
	// ========================
	// Permissive rate limiting so monitoring probes stay unthrottled
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealthEndpoint())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Aircraft Endpoints
	// ========================
	r.Route("/api/v1/aircraft", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(middleware.PrometheusMetricsLabeled(chiEndpointLabel)))
		r.Use(chiPathValue) // Bridge Chi URL params to r.PathValue()

		// Reads. /stats must be registered on the same tree as /{icao};
		// chi gives the static segment priority.
		r.Get("/stats", router.handler.AircraftStats)
		r.Get("/", router.handler.ListAircraft)
		r.Get("/{icao}", router.handler.AircraftByICAO)

		// Writes carry an additional, stricter limit.
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWriteEndpoint())
			r.Post("/", router.handler.CreatePosition)
			r.Delete("/{icao}", router.handler.DeleteAircraft)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
