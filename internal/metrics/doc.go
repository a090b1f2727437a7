// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Database Metrics:
  - mongodb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, collection
  - mongodb_query_errors_total: Failed queries (counter)
    Labels: operation, collection, error_type

Position Metrics:
  - positions_inserted_total: Position records written (counter)
  - positions_deleted_total: Position records deleted (counter)

NATS Metrics (optional event publishing):
  - nats_messages_published_total: Events published (counter)
  - nats_publish_errors_total: Failed publishes (counter)
  - circuit_breaker_state: Publisher circuit state, 0=closed 1=half-open 2=open (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

System Metrics:
  - app_info: Version and build information (gauge)
  - app_uptime_seconds: Application uptime (gauge)

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

Endpoint labels on API metrics use the matched route pattern (e.g.
/api/v1/aircraft/{icao}) rather than the raw URL path, keeping the label
space bounded regardless of how many distinct aircraft are queried. The
middleware falls back to the request path only when no route pattern is
available. Database error labels are truncated to 50 characters.
*/
package metrics
