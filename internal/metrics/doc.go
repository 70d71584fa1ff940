// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

/*
Package metrics provides Prometheus metrics collection and export.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:50054/metrics

# Available Metrics

API metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)

Scoring metrics:
  - scoring_requests_total: Scoring invocations (counter)
    Labels: operation (category_match, product_recommend), outcome (ok, error)
  - scoring_duration_seconds: Scoring latency (histogram)
    Labels: operation
  - scoring_result_count: Identifiers returned per invocation (histogram)
    Labels: operation
  - weight_training_runs_total: Weight derivations by mode (counter)
    Labels: mode (trained, fallback)

Embedding backend metrics:
  - embedding_request_duration_seconds: Backend call latency (histogram)
    Labels: operation (embed, embed_batch)
  - embedding_errors_total: Failed backend calls (counter)
  - circuit_breaker_state: Breaker state, 0=closed 1=half-open 2=open (gauge)
    Labels: name
  - circuit_breaker_transitions_total: State transitions (counter)
    Labels: name, from, to
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
library handles synchronization internally.

# Cardinality

Endpoint labels carry route patterns, never raw paths with IDs, and error
detail never becomes a label value.
*/
package metrics
