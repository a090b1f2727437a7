// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package models

import (
	"time"
)

// ErrorResponse is the standardized body for non-2xx responses. Successful
// responses serialize their payload directly (bare arrays and objects, no
// wrapper); only failures carry this envelope.
//
// Example validation failure:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Request validation failed",
//	    "details": {
//	      "fields": [{"field": "lat", "tag": "required", "value": null}]
//	    }
//	  },
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type ErrorResponse struct {
	Status   string    `json:"status"`
	Error    *APIError `json:"error"`
	Metadata Metadata  `json:"metadata"`
}

// Metadata carries response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError holds structured error details.
//
// Codes used by Volatus:
//   - VALIDATION_ERROR: malformed body or out-of-range parameters (HTTP 422)
//   - NOT_FOUND: no position recorded for the requested aircraft (HTTP 404)
//   - DATABASE_ERROR: store-layer failure (HTTP 500)
//   - RATE_LIMIT_EXCEEDED: too many requests (HTTP 429)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}
