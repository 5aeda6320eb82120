// Package config loads the chat client's settings from the
// environment, with an optional .env file and development defaults
// matching a local model gateway.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a setting unset. They
// point at a local OpenAI-compatible gateway for development.
const (
	DefaultModel   = "anthropic:claude-4-sonnet-latest"
	DefaultBaseURL = "http://localhost:8080"
	DefaultAPIKey  = "test"
)

// Config holds the model endpoint settings.
type Config struct {
	// Model is a "provider:model" spec (see the client package).
	Model string
	// BaseURL is the API endpoint.
	BaseURL string
	// APIKey authenticates against the endpoint.
	APIKey string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; its absence is not an
// error. Real environment variables take precedence over .env values.
func Load() Config {
	godotenv.Load()

	return Config{
		Model:   getenv("LLM_API_MODEL", DefaultModel),
		BaseURL: getenv("LLM_API_URL", DefaultBaseURL),
		APIKey:  getenv("LLM_API_KEY", DefaultAPIKey),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
