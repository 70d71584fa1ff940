// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/hoang3ber123/recommend-service/internal/catalog"
	"github.com/hoang3ber123/recommend-service/internal/logging"
	"github.com/hoang3ber123/recommend-service/internal/match"
	"github.com/hoang3ber123/recommend-service/internal/recommend"
	"github.com/hoang3ber123/recommend-service/internal/validation"
)

// Version is the service version reported by the status endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// maxRequestBody caps request payloads at 10 MiB. Product recommendation
// requests carry full interaction histories, so they can get large.
const maxRequestBody = 10 << 20

// EmbeddingStatus reports the health of the embedding backend.
// Satisfied by embedding.BreakerEmbedder.
type EmbeddingStatus interface {
	State() string
}

// Handler serves the recommendation endpoints. Both scoring engines are
// stateless, so a single Handler serves all requests concurrently.
type Handler struct {
	matcher     *match.Matcher
	recommender *recommend.Recommender
	catalog     []catalog.Category
	embedding   EmbeddingStatus
	startTime   time.Time
}

// NewHandler creates a Handler. categories is the catalog used when a
// match request does not carry its own; embeddingStatus may be nil.
func NewHandler(matcher *match.Matcher, recommender *recommend.Recommender, categories []catalog.Category, embeddingStatus EmbeddingStatus) *Handler {
	return &Handler{
		matcher:     matcher,
		recommender: recommender,
		catalog:     categories,
		embedding:   embeddingStatus,
		startTime:   time.Now(),
	}
}

// MatchCategories handles POST /api/v1/recommendations/categories.
func (h *Handler) MatchCategories(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req MatchCategoriesRequest
	if !decodeRequest(rw, r, &req) {
		return
	}

	categories := h.catalog
	if len(req.Categories) > 0 {
		categories = make([]catalog.Category, len(req.Categories))
		for i, c := range req.Categories {
			categories[i] = catalog.Category{ID: c.ID, Title: c.Title, Description: c.Description}
		}
	}

	titles, err := h.matcher.Match(r.Context(), req.Query, categories)
	if err != nil {
		rw.ScoringError(err)
		return
	}

	rw.Success(MatchCategoriesResponse{CategoryIDs: titles})
}

// RecommendProducts handles POST /api/v1/recommendations/products.
func (h *Handler) RecommendProducts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendProductsRequest
	if !decodeRequest(rw, r, &req) {
		return
	}

	products := make([]recommend.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = recommend.Product{ID: p.ID, Categories: p.Categories, Pricing: p.Pricing}
	}
	clicks := make([]string, len(req.ClickDetails))
	for i, c := range req.ClickDetails {
		clicks[i] = c.ProductID
	}
	views := make([]string, len(req.ViewProducts))
	for i, v := range req.ViewProducts {
		views[i] = v.ProductID
	}
	history := recommend.History{
		Clicks: clicks,
		Views:  views,
		Bought: req.BoughtProducts,
	}

	ids, err := h.recommender.Recommend(r.Context(), products, history)
	if err != nil {
		rw.ScoringError(err)
		return
	}

	rw.Success(RecommendProductsResponse{ProductIDs: ids})
}

// HealthLive handles GET /healthz. Liveness only: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write health response")
	}
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	resp := StatusResponse{
		Status:        "ok",
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		CatalogSize:   len(h.catalog),
	}
	if h.embedding != nil {
		resp.EmbeddingState = h.embedding.State()
	}
	rw.Success(resp)
}

// decodeRequest parses and validates a JSON request body. On failure it
// writes the error response and returns false.
func decodeRequest(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(rw.w, r.Body, maxRequestBody)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		rw.BadRequest("Invalid JSON request body: " + err.Error())
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ValidationError("Request validation failed", verr.Fields())
		return false
	}

	return true
}
