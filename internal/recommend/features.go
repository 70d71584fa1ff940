// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// buildFeatures encodes products as multi-hot category vectors with a
// trailing normalized price column. The columns are the sorted union of
// all category labels in the request, so feature layout is deterministic
// for a given product set. Prices are divided by the max price across
// products; if every price is zero the price column is all zeros.
//
// Returns one row per product, in input order.
func buildFeatures(products []Product) ([][]float64, error) {
	labelSet := make(map[string]struct{})
	maxPrice := 0.0
	for _, p := range products {
		if math.IsNaN(p.Pricing) || math.IsInf(p.Pricing, 0) || p.Pricing < 0 {
			return nil, fmt.Errorf("%w: product %s has pricing %g", ErrInvalidPricing, p.ID, p.Pricing)
		}
		if p.Pricing > maxPrice {
			maxPrice = p.Pricing
		}
		for _, label := range p.Categories {
			labelSet[label] = struct{}{}
		}
	}

	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	labelIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIndex[label] = i
	}

	width := len(labels) + 1 // category columns + price column
	features := make([][]float64, len(products))
	for i, p := range products {
		row := make([]float64, width)
		for _, label := range p.Categories {
			row[labelIndex[label]] = 1
		}
		if maxPrice > 0 {
			row[width-1] = p.Pricing / maxPrice
		}
		features[i] = row
	}

	return features, nil
}

// cosineRows returns the cosine similarity between a profile vector and
// a feature row. Zero-magnitude vectors yield 0 so an empty profile
// ranks everything equally instead of producing NaN.
func cosineRows(profile, row []float64) float64 {
	var dot, normA, normB float64
	for i := range profile {
		dot += profile[i] * row[i]
		normA += profile[i] * profile[i]
		normB += row[i] * row[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
