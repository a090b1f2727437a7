// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/volatus/internal/models"
	"github.com/tomtom215/volatus/internal/validation"
)

// PositionRequest is the POST /aircraft body. Required fields are pointers
// so that validation can tell "absent" apart from the zero value: lat 0 and
// lon 0 are real coordinates and an empty-string icao is accepted, so none
// of them may be conflated with a missing key.
//
// Unknown body fields are ignored; wrong-type fields (e.g. a string lat)
// fail during decoding and surface the offending field in the 422 details.
type PositionRequest struct {
	ICAO         *string  `json:"icao" validate:"required"`
	Registration *string  `json:"registration"`
	Type         *string  `json:"type"`
	Lat          *float64 `json:"lat" validate:"required"`
	Lon          *float64 `json:"lon" validate:"required"`
	AltBaro      *float64 `json:"alt_baro"`
	GroundSpeed  *float64 `json:"ground_speed"`
	Timestamp    *string  `json:"timestamp" validate:"required"`
}

// ToPosition converts a validated request into the storage record. Optional
// fields pass through as-is: a nil pointer becomes an explicit BSON null.
// Must only be called after validation confirmed the required pointers are
// non-nil.
func (req *PositionRequest) ToPosition() *models.AircraftPosition {
	return &models.AircraftPosition{
		ICAO:         *req.ICAO,
		Registration: req.Registration,
		Type:         req.Type,
		Lat:          *req.Lat,
		Lon:          *req.Lon,
		AltBaro:      req.AltBaro,
		GroundSpeed:  req.GroundSpeed,
		Timestamp:    *req.Timestamp,
	}
}

// ListAircraftRequest holds the validated paging parameters for the
// distinct-aircraft listing. Bounds are enforced here, before any store
// call: page is 1-based and page_size is capped at 100.
type ListAircraftRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=100"`
}

// decodePositionRequest decodes a POST /aircraft body, translating decoder
// failures into request validation errors so malformed JSON and wrong-type
// fields produce the same 422 shape as missing required fields.
func decodePositionRequest(r *http.Request) (*PositionRequest, *validation.RequestValidationError) {
	var req PositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Wrong JSON type for a known field: name the field in details.
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return nil, validation.NewRequestValidationError(
				field, "type", typeErr.Value, field+" has wrong type: expected "+typeErr.Type.String())
		}
		if errors.Is(err, io.EOF) {
			return nil, validation.NewRequestValidationError(
				"body", "required", nil, "request body is required")
		}
		return nil, validation.NewRequestValidationError(
			"body", "json", nil, "request body is not valid JSON")
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}

// parseListAircraftRequest reads page and page_size from the query string,
// applying defaults for absent parameters. Non-integer values are rejected
// with the same validation shape as out-of-range ones.
func parseListAircraftRequest(r *http.Request, defaultPageSize int) (*ListAircraftRequest, *validation.RequestValidationError) {
	req := ListAircraftRequest{
		Page:     1,
		PageSize: defaultPageSize,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, validation.NewRequestValidationError(
				"page", "integer", raw, "page must be an integer")
		}
		req.Page = n
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, validation.NewRequestValidationError(
				"page_size", "integer", raw, "page_size must be an integer")
		}
		req.PageSize = n
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}
