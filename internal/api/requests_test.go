// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/volatus/internal/validation"
)

// ===================================================================================================
// PositionRequest Tests
// ===================================================================================================

func TestDecodePositionRequest_Valid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "all fields",
			body: `{"icao":"a1b2c3","registration":"EC-MYT","type":"B738",` +
				`"lat":40.4168,"lon":-3.7038,"alt_baro":12000,"ground_speed":420.5,` +
				`"timestamp":"2023-11-23T10:00:00"}`,
		},
		{
			name: "required fields only",
			body: `{"icao":"a1b2c3","lat":40.4168,"lon":-3.7038,"timestamp":"2023-11-23T10:00:00"}`,
		},
		{
			name: "zero coordinates",
			body: `{"icao":"a1b2c3","lat":0,"lon":0,"timestamp":"2023-11-23T10:00:00"}`,
		},
		{
			name: "empty strings",
			body: `{"icao":"","lat":1,"lon":2,"timestamp":""}`,
		},
		{
			name: "explicit nulls for optional fields",
			body: `{"icao":"a1b2c3","registration":null,"type":null,"lat":1,"lon":2,` +
				`"alt_baro":null,"ground_speed":null,"timestamp":"t"}`,
		},
		{
			name: "unknown fields ignored",
			body: `{"icao":"a1b2c3","lat":1,"lon":2,"timestamp":"t","squawk":"7700","hex":"xyz"}`,
		},
		{
			name: "negative coordinates and altitude",
			body: `{"icao":"a1b2c3","lat":-33.9,"lon":-151.2,"alt_baro":-50,"timestamp":"t"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/aircraft", strings.NewReader(tt.body))
			req, verr := decodePositionRequest(r)

			if verr != nil {
				t.Fatalf("Expected valid request, got %v", verr)
			}
			if req == nil {
				t.Fatal("Expected non-nil request")
			}
			if req.ICAO == nil || req.Lat == nil || req.Lon == nil || req.Timestamp == nil {
				t.Error("Required pointers must be non-nil after validation")
			}
		})
	}
}

func TestDecodePositionRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "empty body",
			body:  "",
			field: "body",
		},
		{
			name:  "malformed JSON",
			body:  `{"icao":`,
			field: "body",
		},
		{
			name:  "missing icao",
			body:  `{"lat":1,"lon":2,"timestamp":"t"}`,
			field: "icao",
		},
		{
			name:  "missing lat",
			body:  `{"icao":"a","lon":2,"timestamp":"t"}`,
			field: "lat",
		},
		{
			name:  "missing lon",
			body:  `{"icao":"a","lat":1,"timestamp":"t"}`,
			field: "lon",
		},
		{
			name:  "missing timestamp",
			body:  `{"icao":"a","lat":1,"lon":2}`,
			field: "timestamp",
		},
		{
			name:  "null for required field counts as missing",
			body:  `{"icao":"a","lat":null,"lon":2,"timestamp":"t"}`,
			field: "lat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/aircraft", strings.NewReader(tt.body))
			req, verr := decodePositionRequest(r)

			if verr == nil {
				t.Fatalf("Expected validation error, got request %+v", req)
			}
			apiErr := verr.ToAPIError()
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
			}
			if !fieldMentioned(verr, tt.field) {
				t.Errorf("Expected error to name field %q, got message %q details %v",
					tt.field, apiErr.Message, apiErr.Details)
			}
		})
	}
}

func TestDecodePositionRequest_WrongType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/aircraft",
		strings.NewReader(`{"icao":"a1b2c3","lat":"forty","lon":2,"timestamp":"t"}`))
	req, verr := decodePositionRequest(r)

	if verr == nil {
		t.Fatalf("Expected validation error for string lat, got %+v", req)
	}
	if errs := verr.Errors(); len(errs) != 1 || errs[0].Tag() != "type" {
		t.Errorf("Expected a single type-tagged failure, got %v", verr)
	}
}

func TestPositionRequest_ToPosition(t *testing.T) {
	reg := "EC-MYT"
	typ := "B738"
	alt := 12000.0
	gs := 420.5
	icao := "a1b2c3"
	ts := "2023-11-23T10:00:00"
	lat := 40.4168
	lon := -3.7038

	t.Run("all fields carried over", func(t *testing.T) {
		req := &PositionRequest{
			ICAO:         &icao,
			Registration: &reg,
			Type:         &typ,
			Lat:          &lat,
			Lon:          &lon,
			AltBaro:      &alt,
			GroundSpeed:  &gs,
			Timestamp:    &ts,
		}

		pos := req.ToPosition()

		if pos.ICAO != icao || pos.Lat != lat || pos.Lon != lon || pos.Timestamp != ts {
			t.Errorf("Required fields not carried over: %+v", pos)
		}
		if pos.Registration != &reg || pos.Type != &typ || pos.AltBaro != &alt || pos.GroundSpeed != &gs {
			t.Errorf("Optional pointers must pass through unchanged: %+v", pos)
		}
	})

	t.Run("nil optionals stay nil", func(t *testing.T) {
		req := &PositionRequest{
			ICAO:      &icao,
			Lat:       &lat,
			Lon:       &lon,
			Timestamp: &ts,
		}

		pos := req.ToPosition()

		if pos.Registration != nil || pos.Type != nil || pos.AltBaro != nil || pos.GroundSpeed != nil {
			t.Errorf("Expected nil optional fields, got %+v", pos)
		}
	})
}

// ===================================================================================================
// ListAircraftRequest Tests
// ===================================================================================================

func TestParseListAircraftRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"no parameters", "", 1, 20},
		{"explicit page", "?page=3", 3, 20},
		{"explicit page_size", "?page_size=50", 1, 50},
		{"both parameters", "?page=2&page_size=100", 2, 100},
		{"minimum values", "?page=1&page_size=1", 1, 1},
		{"maximum page_size", "?page_size=100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/aircraft/"+tt.query, nil)
			req, verr := parseListAircraftRequest(r, 20)

			if verr != nil {
				t.Fatalf("Expected valid request, got %v", verr)
			}
			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestParseListAircraftRequest_DefaultPageSize(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/aircraft/", nil)
	req, verr := parseListAircraftRequest(r, 42)

	if verr != nil {
		t.Fatalf("Expected valid request, got %v", verr)
	}
	if req.PageSize != 42 {
		t.Errorf("PageSize = %d, want the provided default 42", req.PageSize)
	}
}

func TestParseListAircraftRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"page zero", "?page=0", "page"},
		{"negative page", "?page=-3", "page"},
		{"page_size zero", "?page_size=0", "page_size"},
		{"page_size above cap", "?page_size=101", "page_size"},
		{"page_size far above cap", "?page_size=100000", "page_size"},
		{"non-integer page", "?page=two", "page"},
		{"float page", "?page=1.5", "page"},
		{"non-integer page_size", "?page_size=many", "page_size"},
		{"empty-after-equals page still defaults then page_size fails", "?page=&page_size=0", "page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/aircraft/"+tt.query, nil)
			req, verr := parseListAircraftRequest(r, 20)

			if verr == nil {
				t.Fatalf("Expected validation error, got %+v", req)
			}
			apiErr := verr.ToAPIError()
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
			}
			if !fieldMentioned(verr, tt.field) {
				t.Errorf("Expected error to name field %q, got message %q details %v",
					tt.field, apiErr.Message, apiErr.Details)
			}
		})
	}
}

// fieldMentioned reports whether any of the individual failures names the
// given wire field.
func fieldMentioned(verr *validation.RequestValidationError, field string) bool {
	for _, e := range verr.Errors() {
		if e.Field() == field {
			return true
		}
	}
	return false
}
