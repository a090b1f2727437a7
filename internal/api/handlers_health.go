// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/volatus/internal/models"
)

// Version is the reported application version. Overridden at build time:
//
//	go build -ldflags "-X github.com/tomtom215/volatus/internal/api.Version=v1.2.3"
var Version = "dev"

// Health handles health check requests.
//
// @Summary Get system health status
// @Description Returns liveness plus database connectivity and uptime. The endpoint itself always answers 200; a lost database connection is reported as status "degraded" rather than an error, so monitors can distinguish a down process from a down dependency.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	// nil store means not connected
	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}
