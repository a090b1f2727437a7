// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

package config

import (
	"fmt"
	"net/url"
)

// validateMongoURL validates that a MongoDB connection string is properly formatted.
// Supports: mongodb:// and mongodb+srv:// schemes with hosts, credentials,
// replica set lists, and driver options.
func validateMongoURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	if parsedURL.Scheme != "mongodb" && parsedURL.Scheme != "mongodb+srv" {
		return fmt.Errorf("scheme must be mongodb or mongodb+srv, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required (e.g., localhost:27017, mongo.example.com)")
	}

	return nil
}

// validateNATSURL validates that the NATS URL is properly formatted
// Supports: nats://, tls://, and ws:// schemes with IP addresses/hostnames and optional ports
func validateNATSURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	validSchemes := map[string]bool{"nats": true, "tls": true, "ws": true, "wss": true}
	if !validSchemes[parsedURL.Scheme] {
		return fmt.Errorf("scheme must be nats, tls, ws, or wss, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required (e.g., localhost:4222, nats.example.com)")
	}

	return nil
}
