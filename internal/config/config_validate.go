// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateMongo(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateNATS(); err != nil {
		return err
	}

	return c.validateLogging()
}

// Mongo limit constants
const (
	mongoMinTimeout   = time.Second
	mongoMaxTimeout   = 5 * time.Minute
	mongoMaxPoolLimit = 1024
)

// validateMongo validates MongoDB connection configuration. The connection
// string has no default: the service refuses to start without it.
func (c *Config) validateMongo() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("BDI_MONGO_URL is required")
	}
	if err := validateMongoURL(c.Mongo.URL); err != nil {
		return fmt.Errorf("BDI_MONGO_URL is invalid: %w", err)
	}

	if err := c.validateMongoTimeouts(); err != nil {
		return err
	}
	return c.validateMongoPool()
}

// validateMongoTimeouts validates the connect and query timeouts
func (c *Config) validateMongoTimeouts() error {
	if c.Mongo.ConnectTimeout < mongoMinTimeout || c.Mongo.ConnectTimeout > mongoMaxTimeout {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be between %v and %v", mongoMinTimeout, mongoMaxTimeout)
	}
	if c.Mongo.QueryTimeout < mongoMinTimeout || c.Mongo.QueryTimeout > mongoMaxTimeout {
		return fmt.Errorf("MONGO_QUERY_TIMEOUT must be between %v and %v", mongoMinTimeout, mongoMaxTimeout)
	}
	return nil
}

// validateMongoPool validates the driver pool bounds
func (c *Config) validateMongoPool() error {
	if c.Mongo.MaxPoolSize < 1 || c.Mongo.MaxPoolSize > mongoMaxPoolLimit {
		return fmt.Errorf("MONGO_MAX_POOL_SIZE must be between 1 and %d", mongoMaxPoolLimit)
	}
	if c.Mongo.MinPoolSize > c.Mongo.MaxPoolSize {
		return fmt.Errorf("MONGO_MIN_POOL_SIZE must not exceed MONGO_MAX_POOL_SIZE")
	}
	return nil
}

// Server limit constants
const (
	serverMinTimeout = time.Second
	serverMaxTimeout = 10 * time.Minute
)

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < serverMinTimeout || c.Server.Timeout > serverMaxTimeout {
		return fmt.Errorf("HTTP_TIMEOUT must be between %v and %v", serverMinTimeout, serverMaxTimeout)
	}
	return nil
}

// API limit constants
const maxPageSizeLimit = 1000

// validateAPI validates API pagination configuration
func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 || c.API.MaxPageSize > maxPageSizeLimit {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be between 1 and %d", maxPageSizeLimit)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.API.MaxPageSize)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates rate limiting configuration bounds.
// Ensures rate limit values are within sensible ranges to prevent
// misconfiguration that could lead to DoS or ineffective protection.
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		// Refuse to start with rate limiting disabled in production.
		// This prevents accidental deployment of unprotected endpoints.
		if c.IsProduction() {
			return fmt.Errorf("DISABLE_RATE_LIMIT=true is not allowed when ENVIRONMENT=production. " +
				"Either keep rate limiting enabled or use ENVIRONMENT=development for testing purposes")
		}
		return nil
	}

	if err := c.validateRateLimitRequests(); err != nil {
		return err
	}
	return c.validateRateLimitWindow()
}

// validateRateLimitRequests validates the rate limit requests value
func (c *Config) validateRateLimitRequests() error {
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// validateRateLimitWindow validates the rate limit window value
func (c *Config) validateRateLimitWindow() error {
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// NATS limit constants
const (
	natsMinPublishTimeout = 100 * time.Millisecond
	natsMaxPublishTimeout = time.Minute
	natsMaxBreaker        = 100
)

// validateNATS validates NATS configuration (only if enabled)
func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}

	if err := validateNATSURL(c.NATS.URL); err != nil {
		return fmt.Errorf("NATS_URL is invalid: %w", err)
	}
	if c.NATS.SubjectPrefix == "" {
		return fmt.Errorf("NATS_SUBJECT_PREFIX must not be empty when NATS_ENABLED=true")
	}
	if c.NATS.PublishTimeout < natsMinPublishTimeout || c.NATS.PublishTimeout > natsMaxPublishTimeout {
		return fmt.Errorf("NATS_PUBLISH_TIMEOUT must be between %v and %v", natsMinPublishTimeout, natsMaxPublishTimeout)
	}
	if c.NATS.BreakerThreshold < 1 || c.NATS.BreakerThreshold > natsMaxBreaker {
		return fmt.Errorf("NATS_BREAKER_THRESHOLD must be between 1 and %d", natsMaxBreaker)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
// Production mode is determined by the ENVIRONMENT environment variable.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}
