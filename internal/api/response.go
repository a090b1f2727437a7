// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/metrics"
	"github.com/tomtom215/volatus/internal/models"
	"github.com/tomtom215/volatus/internal/validation"
)

// Error codes for API responses. These are the machine-readable values of
// models.APIError.Code; clients branch on them rather than on messages.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeServiceError     = "SERVICE_ERROR"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection. Newlines, carriage returns, and other control characters could
// otherwise forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a success response. The payload is serialized bare:
// list endpoints emit a JSON array, everything else the object itself,
// with no envelope around it.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends the house error object. The wrapped err, when present,
// is logged server-side only; clients see code and message.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		// Sanitize before logging to prevent log injection
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	writeErrorResponse(w, r, status, &models.APIError{
		Code:    code,
		Message: message,
	})
}

// respondValidationError sends a 422 with per-field details taken from the
// validation package.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	writeErrorResponse(w, r, http.StatusUnprocessableEntity, &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	})
}

// writeErrorResponse serializes a models.ErrorResponse. Unlike success
// payloads, errors always carry the envelope with status, error, and
// metadata keys.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	resp := &models.ErrorResponse{
		Status: "error",
		Error:  apiErr,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	}

	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal error response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write error response")
	}
}

// rateLimitExceeded is the httprate limit handler: same error object as the
// rest of the API instead of httprate's plain-text default. The metric label
// uses the route pattern matched so far, not the raw path, so heavy traffic
// across many aircraft stays one series per route.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	endpoint := chiEndpointLabel(r)
	if endpoint == "" {
		endpoint = r.URL.Path
	}
	metrics.RecordRateLimitHit(endpoint)
	writeErrorResponse(w, r, http.StatusTooManyRequests, &models.APIError{
		Code:    ErrCodeRateLimit,
		Message: "Too many requests, slow down",
	})
}
