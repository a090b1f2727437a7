// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/volatus/internal/logging"
	"github.com/tomtom215/volatus/internal/metrics"
	"github.com/tomtom215/volatus/internal/models"
)

// InsertPosition appends a position record. Records are never updated in
// place: repeated reports for the same aircraft accumulate as separate
// documents, including exact duplicates.
func (db *DB) InsertPosition(ctx context.Context, pos *models.AircraftPosition) error {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.positions.InsertOne(ctx, pos)
	metrics.RecordDBQuery(opInsert, collectionName, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	metrics.RecordPositionInsert()
	logging.Ctx(ctx).Debug().
		Str("icao", pos.ICAO).
		Str("timestamp", pos.Timestamp).
		Msg("Inserted position record")
	return nil
}

// StatsByType returns the number of position records per aircraft type,
// ordered by count descending with ties broken by type ascending.
// Records without a type group under the null type.
func (db *DB) StatsByType(ctx context.Context) ([]models.TypeCount, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	start := time.Now()
	cur, err := db.positions.Aggregate(ctx, statsPipeline())
	if err != nil {
		metrics.RecordDBQuery(opAggregate, collectionName, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate type counts: %w", err)
	}
	defer closeCursor(ctx, cur)

	stats := make([]models.TypeCount, 0)
	err = cur.All(ctx, &stats)
	metrics.RecordDBQuery(opAggregate, collectionName, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode type counts: %w", err)
	}
	return stats, nil
}

// ListAircraft returns one summary per distinct aircraft, ordered by ICAO
// ascending, paginated with a 1-based page number. Registration and type
// are taken from each aircraft's latest record, even when those latest
// values are null. Pages past the end of the fleet are empty, not errors.
func (db *DB) ListAircraft(ctx context.Context, page, pageSize int) ([]models.AircraftSummary, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	start := time.Now()
	cur, err := db.positions.Aggregate(ctx, listPipeline(page, pageSize))
	if err != nil {
		metrics.RecordDBQuery(opAggregate, collectionName, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate aircraft list: %w", err)
	}
	defer closeCursor(ctx, cur)

	aircraft := make([]models.AircraftSummary, 0, pageSize)
	err = cur.All(ctx, &aircraft)
	metrics.RecordDBQuery(opAggregate, collectionName, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode aircraft list: %w", err)
	}
	return aircraft, nil
}

// LatestPosition returns the most recent position record for an aircraft,
// selected by descending timestamp. Returns ErrNotFound when the aircraft
// has no records.
func (db *DB) LatestPosition(ctx context.Context, icao string) (*models.AircraftPosition, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})

	start := time.Now()
	var pos models.AircraftPosition
	err := db.positions.FindOne(ctx, bson.D{{Key: "icao", Value: icao}}, opts).Decode(&pos)

	// Not-found is a domain outcome, not a database failure
	metricErr := err
	if errors.Is(err, mongo.ErrNoDocuments) {
		metricErr = nil
	}
	metrics.RecordDBQuery(opFindOne, collectionName, time.Since(start), metricErr)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query latest position for %s: %w", icao, err)
	}
	return &pos, nil
}

// DeletePositions removes every position record for an aircraft and
// returns the number removed. Deleting an unknown aircraft returns 0
// without error.
func (db *DB) DeletePositions(ctx context.Context, icao string) (int64, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.positions.DeleteMany(ctx, bson.D{{Key: "icao", Value: icao}})
	metrics.RecordDBQuery(opDeleteMany, collectionName, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete positions for %s: %w", icao, err)
	}

	if res.DeletedCount > 0 {
		metrics.RecordPositionsDeleted(res.DeletedCount)
	}
	logging.Ctx(ctx).Debug().
		Str("icao", icao).
		Int64("deleted", res.DeletedCount).
		Msg("Deleted position records")
	return res.DeletedCount, nil
}

// statsPipeline groups all records by type and counts them.
//
// The $sort stage orders by count descending, then type ascending, so
// equal counts come back in a stable, deterministic order. Null types
// survive the grouping as a null type key.
func statsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "type", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "type", Value: 1},
		}}},
	}
}

// listPipeline reduces the record stream to one row per aircraft.
//
// The leading sort puts each aircraft's records newest-first so the
// $first accumulators pick registration and type from the latest record.
// The second sort restores ICAO order after $group, which does not
// guarantee output order. Skip is derived from the 1-based page number.
func listPipeline(page, pageSize int) mongo.Pipeline {
	skip := int64(page-1) * int64(pageSize)
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{
			{Key: "icao", Value: 1},
			{Key: "timestamp", Value: -1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$icao"},
			{Key: "registration", Value: bson.D{{Key: "$first", Value: "$registration"}}},
			{Key: "type", Value: bson.D{{Key: "$first", Value: "$type"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "icao", Value: "$_id"},
			{Key: "registration", Value: 1},
			{Key: "type", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "icao", Value: 1}}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: int64(pageSize)}},
	}
}
