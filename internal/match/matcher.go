// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Package match implements semantic category matching. A query is
// embedded next to every category's descriptive text, and categories
// whose cosine similarity clears a threshold are returned best-first.
package match

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hoang3ber123/recommend-service/internal/catalog"
	"github.com/hoang3ber123/recommend-service/internal/embedding"
	"github.com/hoang3ber123/recommend-service/internal/logging"
	"github.com/hoang3ber123/recommend-service/internal/metrics"
)

// Matcher scores a free-text query against a category catalog.
// It holds no per-request state and is safe for concurrent use.
type Matcher struct {
	embedder  embedding.Embedder
	threshold float64
	limit     int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides the minimum cosine similarity for a match.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) { m.threshold = threshold }
}

// WithLimit overrides the maximum number of titles returned.
func WithLimit(limit int) Option {
	return func(m *Matcher) { m.limit = limit }
}

// NewMatcher creates a Matcher with the default 0.60 threshold and a
// cap of 10 results.
func NewMatcher(embedder embedding.Embedder, opts ...Option) *Matcher {
	m := &Matcher{
		embedder:  embedder,
		threshold: 0.60,
		limit:     10,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the titles of categories semantically similar to query,
// ordered by descending similarity. Ties keep catalog order. The query
// is lowercased and stripped of stopwords before embedding; a query
// that is entirely stopwords matches nothing.
//
// The whole catalog is embedded in a single batch request, so a failing
// embedding backend fails the operation rather than degrading it.
func (m *Matcher) Match(ctx context.Context, query string, categories []catalog.Category) ([]string, error) {
	start := time.Now()
	titles, err := m.match(ctx, query, categories)
	metrics.RecordScoring("category_match", time.Since(start), len(titles), err)
	return titles, err
}

func (m *Matcher) match(ctx context.Context, query string, categories []catalog.Category) ([]string, error) {
	if len(categories) == 0 {
		return []string{}, nil
	}

	normalized := normalizeQuery(query)
	if normalized == "" {
		logging.Ctx(ctx).Debug().Str("query", query).Msg("Query empty after stopword filtering")
		return []string{}, nil
	}

	queryVec, err := m.embedder.Embed(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("match: embed query: %w", err)
	}

	texts := make([]string, len(categories))
	for i, c := range categories {
		texts[i] = strings.ToLower(c.Text())
	}
	categoryVecs, err := m.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("match: embed categories: %w", err)
	}

	type scored struct {
		title      string
		similarity float64
	}
	matched := make([]scored, 0, len(categories))
	for i, vec := range categoryVecs {
		similarity := embedding.Cosine(queryVec, vec)
		if similarity >= m.threshold {
			matched = append(matched, scored{title: categories[i].Title, similarity: similarity})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].similarity > matched[j].similarity
	})

	if len(matched) > m.limit {
		matched = matched[:m.limit]
	}

	titles := make([]string, len(matched))
	for i, s := range matched {
		titles[i] = s.title
	}

	logging.Ctx(ctx).Debug().
		Str("query", normalized).
		Int("catalog_size", len(categories)).
		Int("matches", len(titles)).
		Msg("Category match completed")

	return titles, nil
}

// normalizeQuery lowercases the query and removes stopwords.
func normalizeQuery(query string) string {
	fields := strings.Fields(strings.ToLower(query))
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if !isStopword(strings.Trim(f, ".,!?;:\"'()")) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
