// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package services

import (
	"context"
	"strings"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/hoang3ber123/recommend-service/internal/catalog"
	"github.com/hoang3ber123/recommend-service/internal/embedding"
	"github.com/hoang3ber123/recommend-service/internal/logging"
)

// WarmupService embeds the category catalog once at startup so the
// first match request does not pay the embedding cold-start cost.
// Warmup is best effort: a failure is logged and the service retires
// without restarting, since live requests embed on their own anyway.
type WarmupService struct {
	embedder   embedding.Embedder
	categories []catalog.Category
	timeout    time.Duration
}

// NewWarmupService creates a warmup service for the given catalog.
func NewWarmupService(embedder embedding.Embedder, categories []catalog.Category, timeout time.Duration) *WarmupService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WarmupService{
		embedder:   embedder,
		categories: categories,
		timeout:    timeout,
	}
}

// Serve implements suture.Service. It always returns ErrDoNotRestart:
// warmup runs exactly once per process.
func (s *WarmupService) Serve(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	texts := make([]string, len(s.categories))
	for i, c := range s.categories {
		texts[i] = strings.ToLower(c.Text())
	}

	start := time.Now()
	if _, err := s.embedder.EmbedBatch(ctx, texts); err != nil {
		logging.Warn().Err(err).Msg("Catalog embedding warmup failed")
		return suture.ErrDoNotRestart
	}

	logging.Info().
		Int("categories", len(texts)).
		Dur("duration", time.Since(start)).
		Msg("Catalog embedding warmup completed")
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *WarmupService) String() string {
	return "embedding-warmup"
}
