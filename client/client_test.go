package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		provider Provider
		model    string
	}{
		{"anthropic prefix", "anthropic:claude-4-sonnet-latest", ProviderAnthropic, "claude-4-sonnet-latest"},
		{"openai prefix", "openai:gpt-4o", ProviderOpenAI, "gpt-4o"},
		{"google prefix", "google:gemini-2.0-flash", ProviderGoogle, "gemini-2.0-flash"},
		{"bare claude model", "claude-sonnet-4-5", ProviderAnthropic, "claude-sonnet-4-5"},
		{"bare gemini model", "gemini-2.0-flash", ProviderGoogle, "gemini-2.0-flash"},
		{"bare openai model", "gpt-4o-mini", ProviderOpenAI, "gpt-4o-mini"},
		{"empty spec", "", ProviderOpenAI, ""},
		{"prefix casing", "Anthropic:claude-sonnet-4-5", ProviderAnthropic, "claude-sonnet-4-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, model, err := ParseModel(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.provider, provider)
			assert.Equal(t, tt.model, model)
		})
	}
}

func TestParseModelUnknownProvider(t *testing.T) {
	_, _, err := ParseModel("cohere:command-r")
	require.Error(t, err)

	var unknownErr *ErrUnknownProvider
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "cohere", unknownErr.Name)
}

func TestNewConstructsProviders(t *testing.T) {
	t.Run("anthropic", func(t *testing.T) {
		p, err := New(context.Background(), Config{Model: "anthropic:claude-sonnet-4-5", APIKey: "test"})
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("openai with base URL", func(t *testing.T) {
		p, err := New(context.Background(), Config{Model: "openai:gpt-4o", BaseURL: "http://localhost:8080", APIKey: "test"})
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(context.Background(), Config{Model: "cohere:command-r"})
		require.Error(t, err)
	})
}
