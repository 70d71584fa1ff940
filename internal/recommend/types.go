// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package recommend

import "errors"

// ErrInvalidPricing is returned when a product carries a pricing value
// that cannot participate in similarity math (NaN, Inf, or negative).
var ErrInvalidPricing = errors.New("recommend: product pricing must be a finite non-negative number")

// Product is a recommendable item. Categories are free-form labels;
// Pricing is the product's price in whatever currency the caller uses,
// normalized internally against the max price in the request.
type Product struct {
	ID         string
	Categories []string
	Pricing    float64
}

// History is a user's interaction record. Clicks and Views hold one
// product ID per event, so a product clicked three times appears three
// times. Bought holds the IDs of purchased products.
type History struct {
	Clicks []string
	Views  []string
	Bought []string
}

// Weights scores a product's interaction strength:
//
//	score = Click*clicks + View*views + Bought*bought
//
// Click and View come from training (or the fallback); Bought is always
// 1.0 so a purchase dominates browsing signals.
type Weights struct {
	Click  float64
	View   float64
	Bought float64
}

// FallbackWeights are used when the purchase history has a single class
// and logistic regression cannot be fitted.
func FallbackWeights() Weights {
	return Weights{Click: 0.3, View: 0.5, Bought: 1.0}
}
