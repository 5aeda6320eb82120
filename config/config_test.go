package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when unset", func(t *testing.T) {
		t.Setenv("LLM_API_MODEL", "")
		t.Setenv("LLM_API_URL", "")
		t.Setenv("LLM_API_KEY", "")

		cfg := Load()

		assert.Equal(t, DefaultModel, cfg.Model)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultAPIKey, cfg.APIKey)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("LLM_API_MODEL", "openai:gpt-4o")
		t.Setenv("LLM_API_URL", "https://api.example.com")
		t.Setenv("LLM_API_KEY", "sk-real")

		cfg := Load()

		assert.Equal(t, "openai:gpt-4o", cfg.Model)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, "sk-real", cfg.APIKey)
	})
}
