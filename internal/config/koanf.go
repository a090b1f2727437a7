// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/volatus/config.yaml",
	"/etc/volatus/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			URL:            "", // Required - no default, service refuses to start without it
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   15 * time.Second,
			MaxPoolSize:    100,
			MinPoolSize:    0,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development", // Set ENVIRONMENT=production for production checks
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		NATS: NATSConfig{
			Enabled:          false, // Opt-in - the service runs standalone by default
			URL:              "nats://127.0.0.1:4222",
			SubjectPrefix:    "volatus",
			MaxReconnects:    -1, // Reconnect forever
			ReconnectWait:    2 * time.Second,
			PublishTimeout:   5 * time.Second,
			BreakerThreshold: 5,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting (a .env file is read
//     into the environment first, if present)
//
// This function is the preferred way to load configuration and provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
func LoadWithKoanf() (*Config, error) {
	// Layer 0: Populate the process environment from a .env file if one
	// exists. godotenv never overrides variables already set, so real
	// environment variables still win.
	_ = godotenv.Load()

	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// BDI_MONGO_URL -> mongo.url
	// API_DEFAULT_PAGE_SIZE -> api.default_page_size
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - BDI_MONGO_URL -> mongo.url
//   - HTTP_PORT -> server.port
//   - RATE_LIMIT_REQUESTS -> security.rate_limit_reqs
//   - NATS_SUBJECT_PREFIX -> nats.subject_prefix
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	// Map environment variable names to config sections
	envMappings := map[string]string{
		// Mongo mappings (BDI_MONGO_URL is the canonical connection variable)
		"bdi_mongo_url":         "mongo.url",
		"mongo_url":             "mongo.url",
		"mongo_connect_timeout": "mongo.connect_timeout",
		"mongo_query_timeout":   "mongo.query_timeout",
		"mongo_max_pool_size":   "mongo.max_pool_size",
		"mongo_min_pool_size":   "mongo.min_pool_size",

		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// API mappings
		"api_default_page_size": "api.default_page_size",
		"api_max_page_size":     "api.max_page_size",

		// Security mappings
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// NATS mappings
		"nats_enabled":           "nats.enabled",
		"nats_url":               "nats.url",
		"nats_subject_prefix":    "nats.subject_prefix",
		"nats_max_reconnects":    "nats.max_reconnects",
		"nats_reconnect_wait":    "nats.reconnect_wait",
		"nats_publish_timeout":   "nats.publish_timeout",
		"nats_breaker_threshold": "nats.breaker_threshold",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// Note: The caller is responsible for mutex protection when accessing
// configuration during reloads.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	// Start watching the file for changes
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
