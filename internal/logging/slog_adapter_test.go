// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandlerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	for _, want := range []string{`"level":"info"`, `"level":"warn"`, `"level":"error"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandlerAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler)

	logger.Info("supervisor event",
		slog.String("supervisor_name", "volatus"),
		slog.Int("restarts", 2),
		slog.Bool("healthy", true),
	)

	output := buf.String()
	for _, want := range []string{`"supervisor_name":"volatus"`, `"restarts":2`, `"healthy":true`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).With(slog.String("service", "http-server"))

	logger.Info("service started")

	output := buf.String()
	if !strings.Contains(output, `"service":"http-server"`) {
		t.Errorf("expected pre-configured attr, got: %s", output)
	}
}

func TestSlogHandlerWithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).WithGroup("suture")

	logger.Info("service started", slog.String("state", "running"))

	output := buf.String()
	if !strings.Contains(output, `"suture.state":"running"`) {
		t.Errorf("expected group-prefixed attr, got: %s", output)
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf).Level(zerolog.WarnLevel)
	handler := NewSlogHandlerWithLogger(logger)

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    slog.Level
		expected zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.input); got != tt.expected {
			t.Errorf("slogToZerologLevel(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
