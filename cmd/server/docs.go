// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

// Package main provides the Volatus HTTP server
//
// Volatus API tracks aircraft position reports keyed by ICAO 24-bit
// transponder address and serves aggregate statistics over them.
//
// @title Volatus API
// @version 1.0
// @description Aircraft position tracking and aggregation API backed by MongoDB
// @description
// @description ## Features
// @description
// @description - **Position Ingest**: Validated position reports keyed by ICAO hex address
// @description - **Fleet Statistics**: Position counts grouped by aircraft type
// @description - **Aircraft Listing**: Paginated distinct-aircraft listing with latest state
// @description - **Latest Position**: Most recent report per aircraft by timestamp
// @description - **Bulk Deletion**: Remove every report for one aircraft
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description Validation failures return HTTP 422 with a machine-readable error body:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "Request validation failed",
// @description     "details": {"lat": "must be between -90 and 90"}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-07-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/volatus/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Aircraft
// @tag.description Aircraft position ingest, listing, statistics, and deletion
//
// @tag.name Health
// @tag.description Health and dependency status endpoints
package main
