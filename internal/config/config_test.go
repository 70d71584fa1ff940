// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.Server.Port != 50054 {
		t.Errorf("default port = %d, want 50054", cfg.Server.Port)
	}
	if cfg.Scoring.CategoryThreshold != 0.60 {
		t.Errorf("default category threshold = %g, want 0.60", cfg.Scoring.CategoryThreshold)
	}
	if cfg.Scoring.ProductLimit != 10 {
		t.Errorf("default product limit = %d, want 10", cfg.Scoring.ProductLimit)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"RECOMMEND_SERVER__PORT", "server.port"},
		{"RECOMMEND_SERVER__SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"RECOMMEND_SCORING__CATEGORY_THRESHOLD", "scoring.category_threshold"},
		{"RECOMMEND_EMBEDDING__BREAKER__TIMEOUT", "embedding.breaker.timeout"},
		{"RECOMMEND_API__CORS_ORIGINS", "api.cors_origins"},
		{"RECOMMEND_LOGGING__LEVEL", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RECOMMEND_SERVER__PORT", "9090")
	t.Setenv("RECOMMEND_SCORING__CATEGORY_THRESHOLD", "0.75")
	t.Setenv("RECOMMEND_EMBEDDING__TIMEOUT", "5s")
	t.Setenv("RECOMMEND_API__CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_LOGGING__FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Scoring.CategoryThreshold != 0.75 {
		t.Errorf("category threshold = %g, want 0.75", cfg.Scoring.CategoryThreshold)
	}
	if cfg.Embedding.Timeout != 5*time.Second {
		t.Errorf("embedding timeout = %s, want 5s", cfg.Embedding.Timeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("cors origins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.API.CORSOrigins[i] != origin {
			t.Errorf("cors origin[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], origin)
		}
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 8081
scoring:
  category_threshold: 0.5
  product_limit: 5
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Scoring.CategoryThreshold != 0.5 {
		t.Errorf("category threshold = %g, want 0.5", cfg.Scoring.CategoryThreshold)
	}
	if cfg.Scoring.ProductLimit != 5 {
		t.Errorf("product limit = %d, want 5", cfg.Scoring.ProductLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
	// Fields not in the file keep their defaults.
	if cfg.Scoring.CategoryLimit != 10 {
		t.Errorf("category limit = %d, want default 10", cfg.Scoring.CategoryLimit)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8081\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_SERVER__PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative threshold", func(c *Config) { c.Scoring.CategoryThreshold = -0.1 }},
		{"threshold above one", func(c *Config) { c.Scoring.CategoryThreshold = 1.5 }},
		{"zero category limit", func(c *Config) { c.Scoring.CategoryLimit = 0 }},
		{"zero product limit", func(c *Config) { c.Scoring.ProductLimit = 0 }},
		{"zero epochs", func(c *Config) { c.Scoring.TrainingEpochs = 0 }},
		{"zero learning rate", func(c *Config) { c.Scoring.TrainingLearningRate = 0 }},
		{"zero dimensions", func(c *Config) { c.Embedding.Dimensions = 0 }},
		{"zero embedding timeout", func(c *Config) { c.Embedding.Timeout = 0 }},
		{"breaker threshold above one", func(c *Config) { c.Embedding.Breaker.FailureThreshold = 1.5 }},
		{"zero rate limit", func(c *Config) { c.API.RateLimitRequests = 0 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() succeeded, want error")
			}
		})
	}
}

func TestValidateAllowsDisabledRateLimit(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.API.RateLimitDisabled = true
	cfg.API.RateLimitRequests = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed with rate limiting disabled: %v", err)
	}
}

func TestAddr(t *testing.T) {
	t.Parallel()

	sc := ServerConfig{Host: "127.0.0.1", Port: 50054}
	if got := sc.Addr(); got != "127.0.0.1:50054" {
		t.Errorf("Addr() = %q, want 127.0.0.1:50054", got)
	}
}
