// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hoang3ber123/recommend-service/internal/config"
	"github.com/hoang3ber123/recommend-service/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it composes with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter builds the service's HTTP routing tree.
func NewRouter(handler *Handler, cfg *config.APIConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Liveness and metrics stay outside the rate limiter so probes and
	// scrapes never starve under load.
	r.Get("/healthz", handler.HealthLive)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.RateLimitDisabled {
			r.Use(httprate.Limit(
				cfg.RateLimitRequests,
				cfg.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
					NewResponseWriter(w, req).TooManyRequests("Rate limit exceeded")
				}),
			))
		}
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/status", handler.Status)
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/categories", handler.MatchCategories)
			r.Post("/products", handler.RecommendProducts)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	return r
}
