// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

//go:build integration

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/volatus/internal/config"
	"github.com/tomtom215/volatus/internal/models"
	"github.com/tomtom215/volatus/internal/testinfra"
)

// These tests run the real aggregation pipelines and index specs against a
// MongoDB container. The unit tests in positions_test.go pin the pipeline
// shapes; these pin what the server actually does with them: null grouping,
// lexicographic timestamp ordering, $first semantics, and pagination.
//
// Usage:
//   go test -tags integration ./internal/database/...

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// position builds a minimal record; optional fields stay null.
func position(icao, ts string) *models.AircraftPosition {
	return &models.AircraftPosition{ICAO: icao, Lat: 40.0, Lon: -3.7, Timestamp: ts}
}

// typedPosition builds a record with only the type set among the optionals.
func typedPosition(icao, typ, ts string) *models.AircraftPosition {
	p := position(icao, ts)
	p.Type = strPtr(typ)
	return p
}

func TestPositionStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	mongoC, err := testinfra.NewMongoContainer(ctx,
		testinfra.WithMongoStartTimeout(90*time.Second),
	)
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, mongoC.Container)

	db, err := New(&config.MongoConfig{
		URL:            mongoC.URI,
		ConnectTimeout: 20 * time.Second,
		QueryTimeout:   10 * time.Second,
		MaxPoolSize:    10,
		MinPoolSize:    1,
	})
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	}()

	// wipe empties the collection so subtests start from a known state
	wipe := func(t *testing.T) {
		t.Helper()
		if _, err := db.Collection().DeleteMany(ctx, bson.D{}); err != nil {
			t.Fatalf("Failed to wipe collection: %v", err)
		}
	}

	t.Run("insert and fetch latest round-trip", func(t *testing.T) {
		wipe(t)

		want := &models.AircraftPosition{
			ICAO:         "a1b2c3",
			Registration: strPtr("EC-MYT"),
			Type:         strPtr("A321"),
			Lat:          40.4168,
			Lon:          -3.7038,
			AltBaro:      floatPtr(35000),
			GroundSpeed:  floatPtr(447.5),
			Timestamp:    "2023-11-23T10:00:00",
		}
		if err := db.InsertPosition(ctx, want); err != nil {
			t.Fatalf("InsertPosition() error: %v", err)
		}

		got, err := db.LatestPosition(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("LatestPosition() error: %v", err)
		}
		if got.ICAO != want.ICAO || got.Timestamp != want.Timestamp {
			t.Errorf("round-trip identity = %s/%s, want %s/%s",
				got.ICAO, got.Timestamp, want.ICAO, want.Timestamp)
		}
		if got.Lat != want.Lat || got.Lon != want.Lon {
			t.Errorf("round-trip coords = %v/%v, want %v/%v", got.Lat, got.Lon, want.Lat, want.Lon)
		}
		if got.Registration == nil || *got.Registration != "EC-MYT" {
			t.Errorf("Registration = %v, want EC-MYT", got.Registration)
		}
		if got.AltBaro == nil || *got.AltBaro != 35000 {
			t.Errorf("AltBaro = %v, want 35000", got.AltBaro)
		}
		if got.GroundSpeed == nil || *got.GroundSpeed != 447.5 {
			t.Errorf("GroundSpeed = %v, want 447.5", got.GroundSpeed)
		}
	})

	t.Run("optional fields persist as explicit nulls", func(t *testing.T) {
		wipe(t)

		if err := db.InsertPosition(ctx, position("a1b2c3", "2023-11-23T10:00:00")); err != nil {
			t.Fatalf("InsertPosition() error: %v", err)
		}

		// The stored document must carry the optional keys with null
		// values, not omit them.
		var raw bson.M
		err := db.Collection().FindOne(ctx, bson.D{{Key: "icao", Value: "a1b2c3"}}).Decode(&raw)
		if err != nil {
			t.Fatalf("FindOne() error: %v", err)
		}
		for _, field := range []string{"registration", "type", "alt_baro", "ground_speed"} {
			val, ok := raw[field]
			if !ok {
				t.Errorf("stored document is missing %q, want explicit null", field)
				continue
			}
			if val != nil {
				t.Errorf("stored %q = %v, want null", field, val)
			}
		}

		got, err := db.LatestPosition(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("LatestPosition() error: %v", err)
		}
		if got.Registration != nil || got.Type != nil || got.AltBaro != nil || got.GroundSpeed != nil {
			t.Errorf("optional fields = %v/%v/%v/%v, want all nil",
				got.Registration, got.Type, got.AltBaro, got.GroundSpeed)
		}
	})

	t.Run("latest is lexicographic, not chronological", func(t *testing.T) {
		wipe(t)

		// "2024-9-..." sorts after "2024-10-..." as a string even though
		// September precedes October. Insertion order must not matter.
		if err := db.InsertPosition(ctx, position("a1b2c3", "2024-10-01T10:00:00")); err != nil {
			t.Fatalf("InsertPosition() error: %v", err)
		}
		if err := db.InsertPosition(ctx, position("a1b2c3", "2024-9-01T10:00:00")); err != nil {
			t.Fatalf("InsertPosition() error: %v", err)
		}

		got, err := db.LatestPosition(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("LatestPosition() error: %v", err)
		}
		if got.Timestamp != "2024-9-01T10:00:00" {
			t.Errorf("latest timestamp = %s, want the lexicographically greater 2024-9-01T10:00:00", got.Timestamp)
		}
	})

	t.Run("latest picks newest of many records", func(t *testing.T) {
		wipe(t)

		stamps := []string{
			"2023-11-23T10:05:00",
			"2023-11-23T10:15:00",
			"2023-11-23T09:55:00",
		}
		for _, ts := range stamps {
			if err := db.InsertPosition(ctx, position("a1b2c3", ts)); err != nil {
				t.Fatalf("InsertPosition(%s) error: %v", ts, err)
			}
		}

		got, err := db.LatestPosition(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("LatestPosition() error: %v", err)
		}
		if got.Timestamp != "2023-11-23T10:15:00" {
			t.Errorf("latest timestamp = %s, want 2023-11-23T10:15:00", got.Timestamp)
		}
	})

	t.Run("latest for unknown aircraft returns not found", func(t *testing.T) {
		wipe(t)

		_, err := db.LatestPosition(ctx, "ffffff")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("LatestPosition(unknown) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes every record for one aircraft only", func(t *testing.T) {
		wipe(t)

		for _, ts := range []string{"t1", "t2", "t3"} {
			if err := db.InsertPosition(ctx, position("a1b2c3", ts)); err != nil {
				t.Fatalf("InsertPosition() error: %v", err)
			}
		}
		if err := db.InsertPosition(ctx, position("b2c3d4", "t1")); err != nil {
			t.Fatalf("InsertPosition() error: %v", err)
		}

		deleted, err := db.DeletePositions(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("DeletePositions() error: %v", err)
		}
		if deleted != 3 {
			t.Errorf("deleted = %d, want 3", deleted)
		}

		if _, err := db.LatestPosition(ctx, "a1b2c3"); !errors.Is(err, ErrNotFound) {
			t.Errorf("LatestPosition(deleted aircraft) error = %v, want ErrNotFound", err)
		}

		// The neighbor keeps its record
		if _, err := db.LatestPosition(ctx, "b2c3d4"); err != nil {
			t.Errorf("LatestPosition(untouched aircraft) error = %v, want nil", err)
		}

		// Deleting an aircraft with no records is a zero-count success
		deleted, err = db.DeletePositions(ctx, "a1b2c3")
		if err != nil {
			t.Fatalf("DeletePositions(again) error: %v", err)
		}
		if deleted != 0 {
			t.Errorf("deleted = %d, want 0", deleted)
		}
	})

	t.Run("stats order by count desc then type asc", func(t *testing.T) {
		wipe(t)

		// B738 x3, A321 x3, untyped x2, C172 x1. The tie at 3 must come
		// back type-ascending and the untyped group must survive as null.
		inserts := []*models.AircraftPosition{
			typedPosition("a1", "B738", "t1"),
			typedPosition("a1", "B738", "t2"),
			typedPosition("a2", "B738", "t1"),
			typedPosition("b1", "A321", "t1"),
			typedPosition("b2", "A321", "t1"),
			typedPosition("b2", "A321", "t2"),
			position("c1", "t1"),
			position("c2", "t1"),
			typedPosition("d1", "C172", "t1"),
		}
		for _, pos := range inserts {
			if err := db.InsertPosition(ctx, pos); err != nil {
				t.Fatalf("InsertPosition() error: %v", err)
			}
		}

		stats, err := db.StatsByType(ctx)
		if err != nil {
			t.Fatalf("StatsByType() error: %v", err)
		}

		want := []struct {
			typ   *string
			count int64
		}{
			{strPtr("A321"), 3},
			{strPtr("B738"), 3},
			{nil, 2},
			{strPtr("C172"), 1},
		}
		if len(stats) != len(want) {
			t.Fatalf("StatsByType() returned %d groups, want %d: %+v", len(stats), len(want), stats)
		}
		for i, w := range want {
			if stats[i].Count != w.count {
				t.Errorf("stats[%d].Count = %d, want %d", i, stats[i].Count, w.count)
			}
			switch {
			case w.typ == nil:
				if stats[i].Type != nil {
					t.Errorf("stats[%d].Type = %v, want null group", i, *stats[i].Type)
				}
			case stats[i].Type == nil || *stats[i].Type != *w.typ:
				t.Errorf("stats[%d].Type = %v, want %s", i, stats[i].Type, *w.typ)
			}
		}
	})

	t.Run("stats on empty collection", func(t *testing.T) {
		wipe(t)

		stats, err := db.StatsByType(ctx)
		if err != nil {
			t.Fatalf("StatsByType() error: %v", err)
		}
		if len(stats) != 0 {
			t.Errorf("StatsByType() on empty collection = %+v, want empty", stats)
		}
	})

	t.Run("list aircraft paginates and carries latest values", func(t *testing.T) {
		wipe(t)

		// a1b2c3 was re-registered: the summary must show the newest
		// registration and type, not the oldest.
		older := typedPosition("a1b2c3", "A320", "2024-01-01T00:00:00")
		older.Registration = strPtr("EC-OLD")
		newer := typedPosition("a1b2c3", "A321", "2024-06-01T00:00:00")
		newer.Registration = strPtr("EC-NEW")

		// b2c3d4's newest record carries no registration or type; the
		// summary must show nulls even though an older record has both.
		bOld := typedPosition("b2c3d4", "B738", "2024-01-01T00:00:00")
		bOld.Registration = strPtr("N12345")
		bNew := position("b2c3d4", "2024-06-01T00:00:00")

		inserts := []*models.AircraftPosition{
			newer, older, bOld, bNew,
			typedPosition("c3d4e5", "C172", "t1"),
			typedPosition("d4e5f6", "DA40", "t1"),
			typedPosition("e5f6a7", "E190", "t1"),
		}
		for _, pos := range inserts {
			if err := db.InsertPosition(ctx, pos); err != nil {
				t.Fatalf("InsertPosition() error: %v", err)
			}
		}

		page1, err := db.ListAircraft(ctx, 1, 2)
		if err != nil {
			t.Fatalf("ListAircraft(1, 2) error: %v", err)
		}
		if len(page1) != 2 {
			t.Fatalf("page 1 has %d aircraft, want 2: %+v", len(page1), page1)
		}
		if page1[0].ICAO != "a1b2c3" || page1[1].ICAO != "b2c3d4" {
			t.Errorf("page 1 order = %s, %s, want a1b2c3, b2c3d4", page1[0].ICAO, page1[1].ICAO)
		}
		if page1[0].Registration == nil || *page1[0].Registration != "EC-NEW" {
			t.Errorf("a1b2c3 registration = %v, want EC-NEW from the latest record", page1[0].Registration)
		}
		if page1[0].Type == nil || *page1[0].Type != "A321" {
			t.Errorf("a1b2c3 type = %v, want A321 from the latest record", page1[0].Type)
		}
		if page1[1].Registration != nil || page1[1].Type != nil {
			t.Errorf("b2c3d4 summary = %v/%v, want nulls from the latest record",
				page1[1].Registration, page1[1].Type)
		}

		page3, err := db.ListAircraft(ctx, 3, 2)
		if err != nil {
			t.Fatalf("ListAircraft(3, 2) error: %v", err)
		}
		if len(page3) != 1 || page3[0].ICAO != "e5f6a7" {
			t.Errorf("page 3 = %+v, want the single trailing aircraft e5f6a7", page3)
		}

		// Pages past the end are empty, not errors
		page4, err := db.ListAircraft(ctx, 4, 2)
		if err != nil {
			t.Fatalf("ListAircraft(4, 2) error: %v", err)
		}
		if len(page4) != 0 {
			t.Errorf("page 4 = %+v, want empty", page4)
		}
	})

	t.Run("list counts each aircraft once", func(t *testing.T) {
		wipe(t)

		for _, ts := range []string{"t1", "t2", "t3", "t4"} {
			if err := db.InsertPosition(ctx, position("a1b2c3", ts)); err != nil {
				t.Fatalf("InsertPosition() error: %v", err)
			}
		}

		got, err := db.ListAircraft(ctx, 1, 50)
		if err != nil {
			t.Fatalf("ListAircraft() error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("ListAircraft() returned %d rows for one aircraft, want 1", len(got))
		}
	})

	t.Run("ensure indexes is idempotent", func(t *testing.T) {
		// New() already ran EnsureIndexes once at connect time
		if err := db.EnsureIndexes(ctx); err != nil {
			t.Fatalf("EnsureIndexes(second run) error: %v", err)
		}

		cur, err := db.Collection().Indexes().List(ctx)
		if err != nil {
			t.Fatalf("Indexes().List() error: %v", err)
		}
		var indexes []bson.M
		if err := cur.All(ctx, &indexes); err != nil {
			t.Fatalf("cursor All() error: %v", err)
		}

		names := make(map[string]bool, len(indexes))
		for _, idx := range indexes {
			if name, ok := idx["name"].(string); ok {
				names[name] = true
			}
		}
		for _, want := range []string{"_id_", "icao_1_timestamp_-1", "type_1"} {
			if !names[want] {
				t.Errorf("index %q missing after repeated EnsureIndexes, have %v", want, names)
			}
		}
		if len(indexes) != 3 {
			t.Errorf("collection has %d indexes, want 3 (repeat runs must not duplicate)", len(indexes))
		}
	})

	t.Run("ping reports live connection", func(t *testing.T) {
		if err := db.Ping(ctx); err != nil {
			t.Errorf("Ping() error = %v, want nil", err)
		}
	})
}
