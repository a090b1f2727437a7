// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package models

// AircraftPosition is a single reported position for one aircraft, stored as
// an independent document in the positions collection. Many positions share
// the same ICAO code over time; there is no primary key beyond the store's
// internal document identifier, which is never exposed through the API.
//
// Recency is defined by the lexicographic ordering of the Timestamp STRING.
// The value is stored and compared exactly as received; parsing it into a
// time type would change the ordering semantics for non-ISO inputs.
//
// Optional fields are pointers without omitempty so that a position inserted
// without them round-trips with explicit nulls:
//
//	{"icao":"a1b2c3","registration":null,"type":null,
//	 "lat":40.1,"lon":-3.7,"alt_baro":null,"ground_speed":null,
//	 "timestamp":"2023-11-23T10:00:00"}
type AircraftPosition struct {
	ICAO         string   `bson:"icao" json:"icao"`
	Registration *string  `bson:"registration" json:"registration"`
	Type         *string  `bson:"type" json:"type"`
	Lat          float64  `bson:"lat" json:"lat"`
	Lon          float64  `bson:"lon" json:"lon"`
	AltBaro      *float64 `bson:"alt_baro" json:"alt_baro"`
	GroundSpeed  *float64 `bson:"ground_speed" json:"ground_speed"`
	Timestamp    string   `bson:"timestamp" json:"timestamp"`
}

// AircraftSummary is one row of the paginated distinct-aircraft listing:
// the ICAO code plus the registration and type taken from that aircraft's
// latest position. Registration and type are null when the latest position
// did not carry them.
type AircraftSummary struct {
	ICAO         string  `bson:"icao" json:"icao"`
	Registration *string `bson:"registration" json:"registration"`
	Type         *string `bson:"type" json:"type"`
}

// TypeCount is one group of the stats-by-type aggregation. Type is nil for
// the group of positions whose type field is null or missing.
type TypeCount struct {
	Type  *string `bson:"type" json:"type"`
	Count int64   `bson:"count" json:"count"`
}

// InsertAck acknowledges a successful position insert.
type InsertAck struct {
	Status string `json:"status"`
}

// DeleteResult reports how many positions a bulk delete removed.
// Zero is a valid success outcome, not an error.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}
