// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package api

// CategoryInput is a caller-supplied category. When a request carries
// categories they replace the built-in catalog for that request.
type CategoryInput struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// MatchCategoriesRequest asks for categories semantically similar to a
// free-text query. Threshold and result cap are server configuration,
// not request parameters. An empty query is legal and matches nothing.
type MatchCategoriesRequest struct {
	Query      string          `json:"query"`
	Categories []CategoryInput `json:"categories,omitempty" validate:"omitempty,dive"`
}

// MatchCategoriesResponse carries matched category titles, best first.
type MatchCategoriesResponse struct {
	CategoryIDs []string `json:"category_ids"`
}

// ProductInput is a recommendable product with its category labels and
// price. Title and creation time are accepted from callers that send
// full product records but do not influence scoring.
type ProductInput struct {
	ID         string   `json:"id" validate:"required"`
	Title      string   `json:"title,omitempty"`
	Categories []string `json:"categories"`
	Pricing    float64  `json:"pricing"`
	CreatedAt  string   `json:"created_at,omitempty"`
}

// ClickEvent is one click on a product. The timestamp is carried for
// callers that log it but does not influence scoring.
type ClickEvent struct {
	ProductID string `json:"product_id" validate:"required"`
	ClickTime string `json:"click_time,omitempty"`
}

// ViewEvent is one product detail view.
type ViewEvent struct {
	ProductID string `json:"product_id" validate:"required"`
	ViewTime  string `json:"view_time,omitempty"`
}

// RecommendProductsRequest carries the candidate products and the
// user's full interaction history: one entry per click/view event, and
// the IDs of purchased products.
type RecommendProductsRequest struct {
	Products       []ProductInput `json:"products" validate:"dive"`
	ClickDetails   []ClickEvent   `json:"click_details,omitempty" validate:"omitempty,dive"`
	ViewProducts   []ViewEvent    `json:"view_products,omitempty" validate:"omitempty,dive"`
	BoughtProducts []string       `json:"bought_products,omitempty"`
}

// RecommendProductsResponse carries recommended product IDs, best first.
type RecommendProductsResponse struct {
	ProductIDs []string `json:"product_ids"`
}

// StatusResponse reports service health details. EmbeddingState is the
// circuit breaker state guarding the embedding backend: closed means
// healthy.
type StatusResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	CatalogSize    int    `json:"catalog_size"`
	EmbeddingState string `json:"embedding_state,omitempty"`
}
