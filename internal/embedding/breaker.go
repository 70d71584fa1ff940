// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package embedding

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/hoang3ber123/recommend-service/internal/config"
	"github.com/hoang3ber123/recommend-service/internal/logging"
	"github.com/hoang3ber123/recommend-service/internal/metrics"
)

// BreakerEmbedder wraps an Embedder with a circuit breaker so an
// unavailable or slow embedding backend fails fast instead of tying up
// every scoring request.
//
// DETERMINISM NOTE: The breaker uses real time (via sony/gobreaker) for
// its interval and timeout calculations. Tests should exercise the
// wrapped Embedder directly rather than racing the breaker clock.
type BreakerEmbedder struct {
	inner Embedder
	cb    *gobreaker.CircuitBreaker[[][]float32]
	name  string
}

// NewBreakerEmbedder wraps inner with a circuit breaker configured from
// cfg. The breaker opens once the failure rate reaches the configured
// threshold over at least MinRequests observations.
func NewBreakerEmbedder(inner Embedder, cfg *config.BreakerConfig) *BreakerEmbedder {
	cbName := "embedding-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	threshold := cfg.FailureThreshold
	minRequests := cfg.MinRequests

	cb := gobreaker.NewCircuitBreaker[[][]float32](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= threshold

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerEmbedder{
		inner: inner,
		cb:    cb,
		name:  cbName,
	}
}

func (b *BreakerEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := b.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.New("embedding: empty result")
	}
	return vectors[0], nil
}

func (b *BreakerEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result, err := b.cb.Execute(func() ([][]float32, error) {
		return b.inner.EmbedBatch(ctx, texts)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Embedding request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

func (b *BreakerEmbedder) Dimensions() int {
	return b.inner.Dimensions()
}

// State reports the breaker state as a readable label: closed,
// half-open, or open.
func (b *BreakerEmbedder) State() string {
	return stateToString(b.cb.State())
}

// stateToString converts gobreaker state to a readable label.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts gobreaker state to a metric value
// (0 = closed, 1 = half-open, 2 = open).
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
