// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package recommend

import (
	"math"

	"github.com/hoang3ber123/recommend-service/internal/metrics"
)

// interaction is one product's aggregated history used for training.
type interaction struct {
	clicks float64
	views  float64
	bought float64 // 1 if purchased, else 0
}

// trainWeights fits click and view weights by logistic regression of
// purchase outcome on interaction counts. When the outcomes are a
// single class (nobody bought anything, or everything was bought) no
// decision boundary exists and the fallback weights are returned.
//
// Training is full-batch gradient descent on the standardized features;
// coefficients are mapped back to the raw count scale before use so
// they compose directly with click and view counts. The bought weight
// is fixed at 1.0 regardless of training.
func trainWeights(interactions []interaction, epochs int, learningRate float64) Weights {
	positives := 0
	for _, it := range interactions {
		if it.bought > 0 {
			positives++
		}
	}
	if positives == 0 || positives == len(interactions) {
		metrics.RecordWeightTraining(true)
		return FallbackWeights()
	}

	n := float64(len(interactions))

	// Standardize counts so one learning rate works regardless of how
	// heavy the browsing history is.
	var meanClick, meanView float64
	for _, it := range interactions {
		meanClick += it.clicks
		meanView += it.views
	}
	meanClick /= n
	meanView /= n

	var varClick, varView float64
	for _, it := range interactions {
		varClick += (it.clicks - meanClick) * (it.clicks - meanClick)
		varView += (it.views - meanView) * (it.views - meanView)
	}
	stdClick := math.Sqrt(varClick / n)
	stdView := math.Sqrt(varView / n)
	if stdClick == 0 {
		stdClick = 1
	}
	if stdView == 0 {
		stdView = 1
	}

	var wClick, wView, bias float64
	for epoch := 0; epoch < epochs; epoch++ {
		var gradClick, gradView, gradBias float64
		for _, it := range interactions {
			xc := (it.clicks - meanClick) / stdClick
			xv := (it.views - meanView) / stdView
			pred := sigmoid(wClick*xc + wView*xv + bias)
			diff := pred - it.bought
			gradClick += diff * xc
			gradView += diff * xv
			gradBias += diff
		}
		wClick -= learningRate * gradClick / n
		wView -= learningRate * gradView / n
		bias -= learningRate * gradBias / n
	}

	metrics.RecordWeightTraining(false)

	// Map coefficients back to raw count scale.
	return Weights{
		Click:  wClick / stdClick,
		View:   wView / stdView,
		Bought: 1.0,
	}
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
