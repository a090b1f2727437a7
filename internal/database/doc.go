// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package database provides MongoDB-backed storage for aircraft position records.

All position records live in a single collection (bdi_aircraft.positions).
Records are append-only: every report becomes a new document, and reads
resolve "current state" per aircraft by sorting on the timestamp field.

# Timestamp Ordering

Timestamps are stored as strings and compared lexicographically, both in
sort stages and in the $first accumulators. ISO-8601 timestamps with a
fixed timezone sort chronologically under this ordering; mixed formats
sort by byte order. The storage layer never parses timestamps.

# Timeouts

Every operation derives a context bounded by MONGO_QUERY_TIMEOUT from the
caller's context, so a hung server cannot pin request goroutines.

# Indexes

Two indexes are created at startup (idempotently):

  - {icao: 1, timestamp: -1}: serves latest-position lookups and the
    per-aircraft grouping sort
  - {type: 1}: serves the per-type aggregation

# Usage

	db, err := database.New(&cfg.Mongo)
	if err != nil {
	    return err
	}
	defer db.Close(context.Background())

	stats, err := db.StatsByType(ctx)
*/
package database
