// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recommend service:
// - API endpoint latency and throughput
// - Scoring outcomes (category match, product recommendation)
// - Weight training mode (trained vs. fallback)
// - Embedding backend calls and circuit breaker state

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Scoring Metrics
	ScoringRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_requests_total",
			Help: "Total number of scoring invocations",
		},
		[]string{"operation", "outcome"}, // operation: "category_match", "product_recommend"; outcome: "ok", "error"
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_duration_seconds",
			Help:    "Duration of scoring invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ScoringResultCount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_result_count",
			Help:    "Number of identifiers returned per scoring invocation",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
		[]string{"operation"},
	)

	// Weight training: "trained" when the classifier fit succeeds,
	// "fallback" when the label set is single-class.
	WeightTrainingRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weight_training_runs_total",
			Help: "Total number of interaction-weight derivations by mode",
		},
		[]string{"mode"},
	)

	// Embedding Backend Metrics
	EmbeddingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "embedding_request_duration_seconds",
			Help:    "Duration of embedding backend calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"}, // "embed", "embed_batch"
	)

	EmbeddingErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "embedding_errors_total",
			Help: "Total number of failed embedding backend calls",
		},
	)

	// Circuit Breaker Metrics (embedding backend)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)
)

// RecordAPIRequest records metrics for an API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordScoring records the outcome of a scoring invocation.
func RecordScoring(operation string, duration time.Duration, resultCount int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ScoringRequestsTotal.WithLabelValues(operation, outcome).Inc()
	ScoringDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err == nil {
		ScoringResultCount.WithLabelValues(operation).Observe(float64(resultCount))
	}
}

// RecordWeightTraining records which weight-derivation mode was used.
func RecordWeightTraining(fallback bool) {
	mode := "trained"
	if fallback {
		mode = "fallback"
	}
	WeightTrainingRuns.WithLabelValues(mode).Inc()
}

// RecordEmbeddingRequest records an embedding backend call.
func RecordEmbeddingRequest(operation string, duration time.Duration, err error) {
	EmbeddingRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		EmbeddingErrors.Inc()
	}
}
