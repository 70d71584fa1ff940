// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

func testProducts() []Product {
	return []Product{
		{ID: "p1", Categories: []string{"backend", "api"}, Pricing: 100},
		{ID: "p2", Categories: []string{"backend"}, Pricing: 50},
		{ID: "p3", Categories: []string{"frontend"}, Pricing: 80},
		{ID: "p4", Categories: []string{"frontend", "react"}, Pricing: 120},
		{ID: "p5", Categories: []string{"ai"}, Pricing: 200},
	}
}

func TestRecommend_EmptyProducts(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	ids, err := r.Recommend(context.Background(), nil, History{Clicks: []string{"p1"}})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("got %v, want empty", ids)
	}
}

func TestRecommend_ExcludesPurchased(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	history := History{
		Clicks: []string{"p1", "p1", "p2"},
		Views:  []string{"p1", "p2"},
		Bought: []string{"p1"},
	}
	ids, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for _, id := range ids {
		if id == "p1" {
			t.Error("purchased product p1 appeared in recommendations")
		}
	}
	if len(ids) != 4 {
		t.Errorf("got %d recommendations %v, want 4", len(ids), ids)
	}
}

func TestRecommend_SimilarProductsRankFirst(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	// User bought a backend product: the other backend product should
	// outrank the frontend and ai ones.
	history := History{Bought: []string{"p1"}}
	ids, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) == 0 {
		t.Fatal("no recommendations")
	}
	if ids[0] != "p2" {
		t.Errorf("top recommendation = %q, want p2 (shares the backend category)", ids[0])
	}
}

func TestRecommend_NoInteractions(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	ids, err := r.Recommend(context.Background(), testProducts(), History{})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// Zero profile: all similarities are 0, ties keep input order.
	if len(ids) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(ids))
	}
	for i, p := range testProducts() {
		if ids[i] != p.ID {
			t.Errorf("ids[%d] = %q, want input order %q", i, ids[i], p.ID)
		}
	}
}

func TestRecommend_LimitCapsResults(t *testing.T) {
	t.Parallel()

	products := make([]Product, 15)
	for i := range products {
		products[i] = Product{
			ID:         fmt.Sprintf("p%02d", i),
			Categories: []string{"backend"},
			Pricing:    10,
		}
	}

	r := NewRecommender()
	ids, err := r.Recommend(context.Background(), products, History{Clicks: []string{"p00"}})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) != 10 {
		t.Errorf("got %d recommendations, want 10", len(ids))
	}
}

func TestRecommend_UnknownEventIDsIgnored(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	history := History{
		Clicks: []string{"ghost", "ghost"},
		Views:  []string{"phantom"},
		Bought: []string{"spirit"},
	}
	ids, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) != 5 {
		t.Errorf("got %d recommendations, want all 5 products", len(ids))
	}
}

func TestRecommend_InvalidPricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pricing float64
	}{
		{"negative", -5},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			products := testProducts()
			products[2].Pricing = tt.pricing

			r := NewRecommender()
			_, err := r.Recommend(context.Background(), products, History{})
			if !errors.Is(err, ErrInvalidPricing) {
				t.Errorf("Recommend error = %v, want ErrInvalidPricing", err)
			}
		})
	}
}

func TestRecommend_AllPricesZero(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: "a", Categories: []string{"x"}, Pricing: 0},
		{ID: "b", Categories: []string{"x"}, Pricing: 0},
	}
	r := NewRecommender()
	ids, err := r.Recommend(context.Background(), products, History{Clicks: []string{"a"}})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("got %d recommendations, want 2", len(ids))
	}
}

func TestRecommend_AllProductsPurchased(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	history := History{Bought: []string{"p1", "p2", "p3", "p4", "p5"}}
	ids, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("got %v, want empty (everything already purchased)", ids)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	t.Parallel()

	r := NewRecommender()
	history := History{
		Clicks: []string{"p1", "p2", "p2"},
		Views:  []string{"p3"},
		Bought: []string{"p4"},
	}

	first, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := r.Recommend(context.Background(), testProducts(), history)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("results differ at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestBuildFeatures(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: "a", Categories: []string{"beta", "alpha"}, Pricing: 50},
		{ID: "b", Categories: []string{"beta"}, Pricing: 100},
	}
	features, err := buildFeatures(products)
	if err != nil {
		t.Fatalf("buildFeatures failed: %v", err)
	}

	// Columns: alpha, beta (sorted), then price.
	wantA := []float64{1, 1, 0.5}
	wantB := []float64{0, 1, 1.0}
	for i, want := range [][]float64{wantA, wantB} {
		for j, v := range want {
			if math.Abs(features[i][j]-v) > 1e-12 {
				t.Errorf("features[%d][%d] = %g, want %g", i, j, features[i][j], v)
			}
		}
	}
}

func TestTrainWeights_FallbackSingleClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		interactions []interaction
	}{
		{"nothing bought", []interaction{
			{clicks: 3, views: 1, bought: 0},
			{clicks: 0, views: 2, bought: 0},
		}},
		{"everything bought", []interaction{
			{clicks: 3, views: 1, bought: 1},
			{clicks: 0, views: 2, bought: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := trainWeights(tt.interactions, 200, 0.1)
			if w != FallbackWeights() {
				t.Errorf("weights = %+v, want fallback %+v", w, FallbackWeights())
			}
		})
	}
}

func TestTrainWeights_LearnsSeparableSignal(t *testing.T) {
	t.Parallel()

	// Purchases correlate with high click counts: the trained click
	// weight should come out positive.
	interactions := []interaction{
		{clicks: 10, views: 1, bought: 1},
		{clicks: 9, views: 2, bought: 1},
		{clicks: 8, views: 1, bought: 1},
		{clicks: 1, views: 2, bought: 0},
		{clicks: 0, views: 1, bought: 0},
		{clicks: 1, views: 1, bought: 0},
	}
	w := trainWeights(interactions, 500, 0.1)
	if w.Click <= 0 {
		t.Errorf("click weight = %g, want positive", w.Click)
	}
	if w.Bought != 1.0 {
		t.Errorf("bought weight = %g, want fixed 1.0", w.Bought)
	}
}
