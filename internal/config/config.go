// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAddr is the default listen address for the web server.
const DefaultAddr = "127.0.0.1:8080"

// Config holds all runtime configuration for the studio.
type Config struct {
	Addr        string
	DatabaseURL string

	QlooAPIKey       string
	PerplexityAPIKey string
	OpenAIAPIKey     string
}

// Load reads configuration from a local .env file (if present) and the
// environment. Missing vendor keys are not an error; the dependent features
// are disabled instead.
func Load() Config {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return Config{
		Addr:             envStr("STUDIO_ADDR", DefaultAddr),
		DatabaseURL:      envStr("DATABASE_URL", ""),
		QlooAPIKey:       apiKey("QLOO_API_KEY"),
		PerplexityAPIKey: apiKey("PERPLEXITY_API_KEY"),
		OpenAIAPIKey:     apiKey("OPENAI_API_KEY"),
	}
}

// HasQloo reports whether the taste-graph API is configured.
func (c Config) HasQloo() bool { return c.QlooAPIKey != "" }

// HasPerplexity reports whether the search-grounded LLM API is configured.
func (c Config) HasPerplexity() bool { return c.PerplexityAPIKey != "" }

// HasOpenAI reports whether the general LLM API is configured.
func (c Config) HasOpenAI() bool { return c.OpenAIAPIKey != "" }

// apiKey reads a vendor key from the environment. Placeholder values left
// over from a secrets template ("your_qloo_api_key_here") count as unset.
func apiKey(name string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if isPlaceholder(v) {
		return ""
	}
	return v
}

func isPlaceholder(v string) bool {
	lower := strings.ToLower(v)
	return strings.HasPrefix(lower, "your_") && strings.HasSuffix(lower, "_here")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
