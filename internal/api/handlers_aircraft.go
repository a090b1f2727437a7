// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/volatus/internal/database"
	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/models"
)

// This file contains the aircraft position endpoints. All handlers follow
// a consistent pattern:
//  1. Method and store guards
//  2. Decode and validate inputs (422 before any store call)
//  3. Store operation with the request context
//  4. Bare-payload JSON response, or the house error object

// CreatePosition records a single position report.
//
// @Summary Record an aircraft position
// @Description Stores one position report for an aircraft. Optional fields (registration, type, alt_baro, ground_speed) may be omitted and are persisted as explicit nulls. lat 0, lon 0, and an empty icao are all valid values. The timestamp is kept as an opaque string; recency comparisons are lexicographic.
// @Tags Aircraft
// @Accept json
// @Produce json
// @Param position body PositionRequest true "Position report"
// @Success 200 {object} models.InsertAck "Position recorded"
// @Failure 422 {object} models.ErrorResponse "Missing or wrong-type fields"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /aircraft [post]
func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireStore(w, r) {
		return
	}

	req, verr := decodePositionRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	pos := req.ToPosition()
	if err := h.store.InsertPosition(r.Context(), pos); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to store position", err)
		return
	}

	h.publishPositionEvent(r.Context(), pos)

	respondJSON(w, http.StatusOK, models.InsertAck{Status: "ok"})
}

// AircraftStats returns position counts grouped by aircraft type.
//
// @Summary Get position counts by aircraft type
// @Description Returns the number of stored position reports per aircraft type, ordered by count descending with ties broken by type ascending. Positions without a type group under a null type.
// @Tags Aircraft
// @Produce json
// @Success 200 {array} models.TypeCount "Counts per type"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /aircraft/stats [get]
func (h *Handler) AircraftStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireStore(w, r) {
		return
	}

	stats, err := h.store.StatsByType(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to aggregate type counts", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// ListAircraft returns a paginated listing of distinct aircraft.
//
// @Summary List distinct aircraft
// @Description Returns one entry per distinct aircraft ordered by ICAO ascending, carrying the registration and type from that aircraft's latest position. Pages are 1-based; pages past the end are empty arrays, not errors.
// @Tags Aircraft
// @Produce json
// @Param page query int false "1-based page number" default(1) minimum(1)
// @Param page_size query int false "Aircraft per page (1-100)" default(20) minimum(1) maximum(100)
// @Success 200 {array} models.AircraftSummary "Aircraft for the requested page"
// @Failure 422 {object} models.ErrorResponse "Non-integer or out-of-range paging"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /aircraft/ [get]
func (h *Handler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireStore(w, r) {
		return
	}

	req, verr := parseListAircraftRequest(r, h.defaultPageSize())
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	aircraft, err := h.store.ListAircraft(r.Context(), req.Page, req.PageSize)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to list aircraft", err)
		return
	}

	respondJSON(w, http.StatusOK, aircraft)
}

// AircraftByICAO returns the latest recorded position for one aircraft.
//
// @Summary Get the latest position for an aircraft
// @Description Returns the most recent position report for the given ICAO code, where recency is the lexicographic ordering of the stored timestamp strings. The store's internal document ID is never exposed.
// @Tags Aircraft
// @Produce json
// @Param icao path string true "ICAO transponder code"
// @Success 200 {object} models.AircraftPosition "Latest position"
// @Failure 404 {object} models.ErrorResponse "No positions recorded for this aircraft"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /aircraft/{icao} [get]
func (h *Handler) AircraftByICAO(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireStore(w, r) {
		return
	}

	icao := r.PathValue("icao")

	pos, err := h.store.LatestPosition(r.Context(), icao)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "aircraft not found", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to fetch position", err)
		return
	}

	respondJSON(w, http.StatusOK, pos)
}

// DeleteAircraft removes every stored position for one aircraft.
//
// @Summary Delete all positions for an aircraft
// @Description Removes every position report for the given ICAO code and reports the deleted count. Deleting an unknown aircraft is a success with a count of zero, not an error.
// @Tags Aircraft
// @Produce json
// @Param icao path string true "ICAO transponder code"
// @Success 200 {object} models.DeleteResult "Number of positions removed"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /aircraft/{icao} [delete]
func (h *Handler) DeleteAircraft(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) || !h.requireStore(w, r) {
		return
	}

	icao := r.PathValue("icao")

	deleted, err := h.store.DeletePositions(r.Context(), icao)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to delete positions", err)
		return
	}

	if deleted > 0 {
		logging.Ctx(r.Context()).Info().
			Str("icao", sanitizeLogValue(icao)).
			Int64("deleted", deleted).
			Msg("Deleted aircraft positions")
	}

	respondJSON(w, http.StatusOK, models.DeleteResult{Deleted: deleted})
}
