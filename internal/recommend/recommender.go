// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package recommend

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/hoang3ber123/recommend-service/internal/logging"
	"github.com/hoang3ber123/recommend-service/internal/metrics"
)

// profileEpsilon keeps the profile normalization finite when the user
// has no positive interactions.
const profileEpsilon = 1e-6

// Recommender ranks products against a user's interaction history.
// It holds no per-request state and is safe for concurrent use.
type Recommender struct {
	limit        int
	epochs       int
	learningRate float64
}

// RecommenderOption configures a Recommender.
type RecommenderOption func(*Recommender)

// WithRecommendLimit overrides the maximum number of product IDs returned.
func WithRecommendLimit(limit int) RecommenderOption {
	return func(r *Recommender) { r.limit = limit }
}

// WithTraining overrides the gradient descent schedule used to fit
// interaction weights.
func WithTraining(epochs int, learningRate float64) RecommenderOption {
	return func(r *Recommender) { r.epochs = epochs; r.learningRate = learningRate }
}

// NewRecommender creates a Recommender returning at most 10 products.
func NewRecommender(opts ...RecommenderOption) *Recommender {
	r := &Recommender{
		limit:        10,
		epochs:       200,
		learningRate: 0.1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend returns the IDs of the products most similar to the user's
// interaction profile, best first, excluding already-purchased products.
// Ties keep product input order. An empty product set yields an empty
// result; interaction events referencing unknown product IDs are ignored.
func (r *Recommender) Recommend(ctx context.Context, products []Product, history History) ([]string, error) {
	start := time.Now()
	ids, err := r.recommend(ctx, products, history)
	metrics.RecordScoring("product_recommend", time.Since(start), len(ids), err)
	return ids, err
}

func (r *Recommender) recommend(ctx context.Context, products []Product, history History) ([]string, error) {
	if len(products) == 0 {
		return []string{}, nil
	}

	features, err := buildFeatures(products)
	if err != nil {
		return nil, err
	}

	clickCounts := countEvents(history.Clicks)
	viewCounts := countEvents(history.Views)
	boughtSet := make(map[string]struct{}, len(history.Bought))
	for _, id := range history.Bought {
		boughtSet[id] = struct{}{}
	}

	interactions := make([]interaction, len(products))
	for i, p := range products {
		it := interaction{
			clicks: float64(clickCounts[p.ID]),
			views:  float64(viewCounts[p.ID]),
		}
		if _, ok := boughtSet[p.ID]; ok {
			it.bought = 1
		}
		interactions[i] = it
	}

	weights := trainWeights(interactions, r.epochs, r.learningRate)

	// User profile: weighted sum of the feature rows of positively
	// scored products, L2-normalized.
	profile := make([]float64, len(features[0]))
	for i, it := range interactions {
		score := weights.Click*it.clicks + weights.View*it.views + weights.Bought*it.bought
		if score <= 0 {
			continue
		}
		for j, v := range features[i] {
			profile[j] += score * v
		}
	}
	var norm float64
	for _, v := range profile {
		norm += v * v
	}
	norm = math.Sqrt(norm) + profileEpsilon
	for j := range profile {
		profile[j] /= norm
	}

	type scored struct {
		id         string
		similarity float64
	}
	candidates := make([]scored, 0, len(products))
	for i, p := range products {
		if _, ok := boughtSet[p.ID]; ok {
			continue
		}
		candidates = append(candidates, scored{
			id:         p.ID,
			similarity: cosineRows(profile, features[i]),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) > r.limit {
		candidates = candidates[:r.limit]
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}

	logging.Ctx(ctx).Debug().
		Int("products", len(products)).
		Int("purchased", len(boughtSet)).
		Float64("w_click", weights.Click).
		Float64("w_view", weights.View).
		Int("recommended", len(ids)).
		Msg("Product recommendation completed")

	return ids, nil
}

// countEvents tallies event occurrences per product ID.
func countEvents(events []string) map[string]int {
	counts := make(map[string]int, len(events))
	for _, id := range events {
		counts[id]++
	}
	return counts
}
