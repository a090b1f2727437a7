// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/volatus/internal/logging"
)

// ErrNotFound is returned when no position records exist for a requested
// aircraft. The message doubles as the API-facing error text.
var ErrNotFound = errors.New("aircraft not found")

// closeCursor closes a cursor and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeCursor(ctx context.Context, cur *mongo.Cursor) {
	if cur == nil {
		return
	}
	if err := cur.Close(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to close cursor")
	}
}

// disconnectQuietly disconnects a client and explicitly ignores any error
// Use this for cleanup in error paths where Disconnect errors are not actionable
func disconnectQuietly(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx) // Explicitly ignore error - cleanup is best-effort
}
