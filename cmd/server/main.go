// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Command server runs the recommend service: a stateless HTTP API
// exposing semantic category matching and hybrid product
// recommendation.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoang3ber123/recommend-service/internal/api"
	"github.com/hoang3ber123/recommend-service/internal/catalog"
	"github.com/hoang3ber123/recommend-service/internal/config"
	"github.com/hoang3ber123/recommend-service/internal/embedding"
	"github.com/hoang3ber123/recommend-service/internal/logging"
	"github.com/hoang3ber123/recommend-service/internal/match"
	"github.com/hoang3ber123/recommend-service/internal/recommend"
	"github.com/hoang3ber123/recommend-service/internal/supervisor"
	"github.com/hoang3ber123/recommend-service/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Service exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting recommend service")

	// Category catalog: built-in unless a file overrides it.
	categories := catalog.Default()
	if cfg.Scoring.CatalogPath != "" {
		categories, err = catalog.Load(cfg.Scoring.CatalogPath)
		if err != nil {
			return err
		}
		logging.Info().
			Str("path", cfg.Scoring.CatalogPath).
			Int("categories", len(categories)).
			Msg("Loaded category catalog from file")
	}

	// Embedding backend behind a circuit breaker.
	embedder := embedding.NewBreakerEmbedder(
		embedding.NewOpenAIEmbedder(&cfg.Embedding),
		&cfg.Embedding.Breaker,
	)

	matcher := match.NewMatcher(embedder,
		match.WithThreshold(cfg.Scoring.CategoryThreshold),
		match.WithLimit(cfg.Scoring.CategoryLimit),
	)
	recommender := recommend.NewRecommender(
		recommend.WithRecommendLimit(cfg.Scoring.ProductLimit),
		recommend.WithTraining(cfg.Scoring.TrainingEpochs, cfg.Scoring.TrainingLearningRate),
	)

	handler := api.NewHandler(matcher, recommender, categories, embedder)
	router := api.NewRouter(handler, &cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Embedding.WarmupOnStart {
		tree.AddScoringService(services.NewWarmupService(embedder, categories, cfg.Embedding.Timeout))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Recommend service stopped")
	return nil
}
