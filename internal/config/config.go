// Package config loads process-wide configuration from the environment once
// at startup. The resulting value is immutable and passed explicitly.
package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultInferenceModel is used when HF_MODEL is unset.
const DefaultInferenceModel = "distilbert-base-uncased-finetuned-sst-2-english"

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	// Optional hosted inference model. Empty token disables the feature.
	HFAPIToken string
	HFModel    string

	// Optional generative AI collaborator. Empty key disables the feature.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	EnhanceCacheTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		HFAPIToken:    getEnv("HF_API_TOKEN", ""),
		HFModel:       getEnv("HF_MODEL", DefaultInferenceModel),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	ttl := getEnv("ENHANCE_CACHE_TTL", "5m")
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("ENHANCE_CACHE_TTL must be a valid duration: %w", err)
	}
	cfg.EnhanceCacheTTL = parsed

	switch cfg.LogFormat {
	case "text", "json", "pretty":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be one of text, json, pretty, got %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	return cfg, nil
}

// InferenceEnabled reports whether the hosted inference model is configured.
func (c *Config) InferenceEnabled() bool {
	return c.HFAPIToken != ""
}

// GenerativeEnabled reports whether the generative AI collaborator is configured.
func (c *Config) GenerativeEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
