// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package models defines data structures for the Volatus application.

This package contains the aircraft position document stored in MongoDB, the
aggregation result shapes produced by the stats and listing pipelines, and
the standardized error response returned by every HTTP endpoint. It is the
single source of truth for wire and storage shapes.

Key Components:

  - AircraftPosition: position document (bson + json tags share field names)
  - AircraftSummary: one row of the paginated distinct-aircraft listing
  - TypeCount: one group of the stats-by-type aggregation
  - InsertAck / DeleteResult: acknowledgment payloads for writes
  - ErrorResponse / APIError: standardized error body
  - PositionEvent: envelope published to NATS after a successful insert

Storage Shape:

Optional fields (registration, type, alt_baro, ground_speed) are pointers
WITHOUT omitempty: a position inserted without them is stored with explicit
BSON nulls and read back with explicit JSON nulls, so a fetched record has
exactly the shape that was inserted. The timestamp is a plain string and is
ordered by the store's lexicographic string comparison; it is never parsed
into a time type.

Thread Safety:

All models are data-only structures with no internal state and are safe for
concurrent read access.

See Also:

  - internal/database: MongoDB operations producing and consuming these models
  - internal/api: HTTP handlers serializing these models
  - internal/eventbus: NATS publisher carrying PositionEvent
*/
package models
