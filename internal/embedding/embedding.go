// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Package embedding provides text embedding via any OpenAI-compatible
// backend, guarded by a circuit breaker so a slow or failing embedding
// provider cannot cascade into the scoring pipeline.
package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrEmptyInput is returned when an embedding call receives no text.
var ErrEmptyInput = errors.New("embedding: no texts provided")

// Embedder generates dense vector representations of text.
type Embedder interface {
	// Embed generates a vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates vectors for multiple texts in one request.
	// The result has one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector dimension.
	Dimensions() int
}

// Cosine returns the cosine similarity of two vectors. It returns 0 for
// mismatched lengths or zero-magnitude vectors, so degenerate embeddings
// rank below any threshold instead of producing NaN.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
