// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Package recommend implements hybrid content-based product
// recommendation from a user's interaction history.
//
// Products are encoded as multi-hot category vectors plus a normalized
// price column. Interaction weights for clicks and views are fitted by
// logistic regression against purchase outcomes when the history
// contains both purchased and unpurchased products; otherwise fixed
// fallback weights apply. A weighted sum of interacted product features
// forms the user profile, and every product is ranked by cosine
// similarity to it, excluding already-purchased products.
//
// All operations are stateless: each request carries the full product
// set and interaction history, so the engine holds no per-user state
// and is safe for concurrent use.
package recommend
