// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package config

import "time"

// Config holds all application configuration, grouped by component.
// Populated once by Load() at startup and treated as immutable afterwards.
type Config struct {
	Mongo    MongoConfig    `koanf:"mongo"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	NATS     NATSConfig     `koanf:"nats"` // Optional: position event publishing to NATS JetStream
}

// MongoConfig holds MongoDB connection settings. The database and
// collection names are fixed (see the database package); only connection
// behavior is configurable.
type MongoConfig struct {
	URL            string        `koanf:"url"`             // Connection string (BDI_MONGO_URL, required)
	ConnectTimeout time.Duration `koanf:"connect_timeout"` // Timeout for initial connect + ping
	QueryTimeout   time.Duration `koanf:"query_timeout"`   // Timeout applied to each storage operation
	MaxPoolSize    uint64        `koanf:"max_pool_size"`   // Driver connection pool ceiling
	MinPoolSize    uint64        `koanf:"min_pool_size"`   // Driver connection pool floor
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`     // Read and write timeout
	Environment string        `koanf:"environment"` // development or production
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"` // Used when page_size is omitted from a list request
	MaxPageSize     int `koanf:"max_page_size"`     // Requests above this are rejected with a validation error
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"` // Refused in production, see Validate
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// NATSConfig holds settings for the optional position event publisher.
// When Enabled is false (the default) the service runs standalone and
// skips NATS entirely.
type NATSConfig struct {
	Enabled          bool          `koanf:"enabled"`
	URL              string        `koanf:"url"`
	SubjectPrefix    string        `koanf:"subject_prefix"`    // Events publish to <prefix>.positions.created etc.
	MaxReconnects    int           `koanf:"max_reconnects"`    // -1 = reconnect forever
	ReconnectWait    time.Duration `koanf:"reconnect_wait"`
	PublishTimeout   time.Duration `koanf:"publish_timeout"`
	BreakerThreshold uint32        `koanf:"breaker_threshold"` // Consecutive publish failures before the circuit opens
}

// Load reads configuration from all sources in priority order:
//
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
