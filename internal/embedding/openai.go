// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/hoang3ber123/recommend-service/internal/config"
	"github.com/hoang3ber123/recommend-service/internal/metrics"
)

// openAIEmbedder implements Embedder over any OpenAI-compatible API
// (openai, ollama, siliconflow, dashscope, etc. via BaseURL).
type openAIEmbedder struct {
	client     *openai.Client
	model      string
	dimensions int
	timeout    time.Duration
}

// NewOpenAIEmbedder creates an Embedder backed by the configured
// OpenAI-compatible endpoint.
func NewOpenAIEmbedder(cfg *config.EmbeddingConfig) Embedder {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAIEmbedder{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		timeout:    cfg.Timeout,
	}
}

func (e *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.New("embedding: empty result")
	}
	return vectors[0], nil
}

func (e *openAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := openai.EmbeddingRequest{
		Input:      texts,
		Model:      openai.EmbeddingModel(e.model),
		Dimensions: e.dimensions,
	}

	start := time.Now()
	resp, err := e.client.CreateEmbeddings(ctx, req)
	metrics.RecordEmbeddingRequest("embed_batch", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("embedding: create embeddings failed: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding: got %d vectors for %d texts", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vectors[i] = data.Embedding
	}

	return vectors, nil
}

func (e *openAIEmbedder) Dimensions() int {
	return e.dimensions
}
