// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Package config provides layered configuration loading for the recommend
// service. Configuration is assembled from three sources with clear
// precedence: environment variables override an optional YAML file, which
// overrides built-in defaults.
package config

import (
	"fmt"
	"time"
)

// ConfigPathEnvVar is the environment variable that overrides the config
// file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"./config.yaml",
	"./config.yml",
	"/etc/recommend-service/config.yaml",
	"/config/config.yaml",
}

// Config is the root configuration for the recommend service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Scoring   ScoringConfig   `koanf:"scoring"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// ScoringConfig controls the category matcher and product recommender.
type ScoringConfig struct {
	// CategoryThreshold is the minimum cosine similarity for a category
	// to be considered a match. Must be in [0, 1].
	CategoryThreshold float64 `koanf:"category_threshold"`

	// CategoryLimit caps the number of category titles returned.
	CategoryLimit int `koanf:"category_limit"`

	// ProductLimit caps the number of product recommendations returned.
	ProductLimit int `koanf:"product_limit"`

	// TrainingEpochs is the number of gradient descent passes used when
	// fitting interaction weights from purchase outcomes.
	TrainingEpochs int `koanf:"training_epochs"`

	// TrainingLearningRate is the gradient descent step size.
	TrainingLearningRate float64 `koanf:"training_learning_rate"`

	// CatalogPath optionally points to a YAML file replacing the built-in
	// category catalog. Empty means use the built-in catalog.
	CatalogPath string `koanf:"catalog_path"`
}

// EmbeddingConfig controls the embedding backend and its circuit breaker.
type EmbeddingConfig struct {
	BaseURL    string        `koanf:"base_url"`
	APIKey     string        `koanf:"api_key"`
	Model      string        `koanf:"model"`
	Dimensions int           `koanf:"dimensions"`
	Timeout    time.Duration `koanf:"timeout"`

	// WarmupOnStart embeds the category catalog at startup so the first
	// request does not pay the cold-cache cost. Failures are logged and
	// ignored.
	WarmupOnStart bool `koanf:"warmup_on_start"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker guarding the embedding backend.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold float64       `koanf:"failure_threshold"`
	MinRequests      uint32        `koanf:"min_requests"`
}

// APIConfig controls cross-cutting HTTP API behavior.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns the built-in defaults. The port matches the
// service's historical deployment address.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            50054,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Scoring: ScoringConfig{
			CategoryThreshold:    0.60,
			CategoryLimit:        10,
			ProductLimit:         10,
			TrainingEpochs:       200,
			TrainingLearningRate: 0.1,
			CatalogPath:          "",
		},
		Embedding: EmbeddingConfig{
			BaseURL:       "",
			APIKey:        "",
			Model:         "text-embedding-3-small",
			Dimensions:    1536,
			Timeout:       30 * time.Second,
			WarmupOnStart: true,
			Breaker: BreakerConfig{
				MaxRequests:      3,
				Interval:         2 * time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 0.6,
				MinRequests:      10,
			},
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for values that would make the service
// misbehave at runtime. It fails fast so operators see mistakes at startup
// rather than as scoring errors.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Scoring.CategoryThreshold < 0 || c.Scoring.CategoryThreshold > 1 {
		return fmt.Errorf("scoring.category_threshold must be in [0, 1], got %g", c.Scoring.CategoryThreshold)
	}
	if c.Scoring.CategoryLimit <= 0 {
		return fmt.Errorf("scoring.category_limit must be positive, got %d", c.Scoring.CategoryLimit)
	}
	if c.Scoring.ProductLimit <= 0 {
		return fmt.Errorf("scoring.product_limit must be positive, got %d", c.Scoring.ProductLimit)
	}
	if c.Scoring.TrainingEpochs <= 0 {
		return fmt.Errorf("scoring.training_epochs must be positive, got %d", c.Scoring.TrainingEpochs)
	}
	if c.Scoring.TrainingLearningRate <= 0 {
		return fmt.Errorf("scoring.training_learning_rate must be positive, got %g", c.Scoring.TrainingLearningRate)
	}
	if c.Embedding.Dimensions <= 0 {
		return fmt.Errorf("embedding.dimensions must be positive, got %d", c.Embedding.Dimensions)
	}
	if c.Embedding.Timeout <= 0 {
		return fmt.Errorf("embedding.timeout must be positive, got %s", c.Embedding.Timeout)
	}
	if c.Embedding.Breaker.FailureThreshold <= 0 || c.Embedding.Breaker.FailureThreshold > 1 {
		return fmt.Errorf("embedding.breaker.failure_threshold must be in (0, 1], got %g", c.Embedding.Breaker.FailureThreshold)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests <= 0 {
			return fmt.Errorf("api.rate_limit_requests must be positive, got %d", c.API.RateLimitRequests)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
