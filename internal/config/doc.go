// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package config provides centralized configuration management for Volatus.

Configuration is loaded in three layers with clear precedence
(environment variables > config file > defaults):

 1. Built-in defaults (see defaultConfig)
 2. Optional YAML config file (config.yaml, /etc/volatus/config.yaml,
    or the path named by CONFIG_PATH)
 3. Environment variables

A .env file in the working directory, if present, is loaded into the
process environment before layer 3; real environment variables are
never overridden by it.

# Environment Variables

MongoDB (MongoConfig):
  - BDI_MONGO_URL: MongoDB connection string (required, no default)
  - MONGO_CONNECT_TIMEOUT: Initial connect/ping timeout (default: 10s)
  - MONGO_QUERY_TIMEOUT: Per-operation timeout (default: 15s)
  - MONGO_MAX_POOL_SIZE: Driver connection pool ceiling (default: 100)
  - MONGO_MIN_POOL_SIZE: Driver connection pool floor (default: 0)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

API (APIConfig):
  - API_DEFAULT_PAGE_SIZE: Page size when page_size is omitted (default: 20)
  - API_MAX_PAGE_SIZE: Upper bound for page_size (default: 100)

Security (SecurityConfig):
  - RATE_LIMIT_REQUESTS: Requests allowed per window (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting, development only (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

NATS (NATSConfig, optional event publishing):
  - NATS_ENABLED: Publish position events to NATS JetStream (default: false)
  - NATS_URL: NATS server URL (default: nats://127.0.0.1:4222)
  - NATS_SUBJECT_PREFIX: Subject prefix for published events (default: volatus)
  - NATS_MAX_RECONNECTS: -1 for unlimited (default: -1)
  - NATS_RECONNECT_WAIT: Delay between reconnect attempts (default: 2s)
  - NATS_PUBLISH_TIMEOUT: Per-publish timeout (default: 5s)
  - NATS_BREAKER_THRESHOLD: Consecutive failures before the circuit opens (default: 5)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	fmt.Printf("listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent reads from multiple goroutines without synchronization.
*/
package config
