package client

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/provider/anthropic"
	"github.com/graphrag-tools/kbchat/provider/google"
	"github.com/graphrag-tools/kbchat/provider/openai"
)

// Provider identifies a chat backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// ErrUnknownProvider is returned when a model spec names a provider
// this package cannot construct.
type ErrUnknownProvider struct {
	Name string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider %q (supported: openai, anthropic, google)", e.Name)
}

// Config holds what is needed to reach a chat backend.
type Config struct {
	// Model is a spec of the form "provider:model". The provider
	// prefix may be omitted, in which case it is inferred from the
	// model name.
	Model string

	// BaseURL overrides the provider's default API endpoint. Useful
	// for local gateways that speak a provider's wire protocol.
	BaseURL string

	// APIKey authenticates against the endpoint.
	APIKey string
}

// ParseModel splits a model spec into its provider and model name.
// An empty spec yields an empty model name, letting the provider's
// default apply.
func ParseModel(spec string) (Provider, string, error) {
	name, model, found := strings.Cut(spec, ":")
	if !found {
		return inferProvider(spec), spec, nil
	}

	switch Provider(strings.ToLower(strings.TrimSpace(name))) {
	case ProviderOpenAI:
		return ProviderOpenAI, model, nil
	case ProviderAnthropic:
		return ProviderAnthropic, model, nil
	case ProviderGoogle:
		return ProviderGoogle, model, nil
	default:
		return "", "", &ErrUnknownProvider{Name: name}
	}
}

// inferProvider guesses the backend from a bare model name.
func inferProvider(model string) Provider {
	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "claude"):
		return ProviderAnthropic
	case strings.HasPrefix(lower, "gemini"):
		return ProviderGoogle
	default:
		return ProviderOpenAI
	}
}

// New resolves the configured model spec and constructs the matching
// provider client.
func New(ctx context.Context, cfg Config) (ai.ChatProvider, error) {
	provider, model, err := ParseModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	switch provider {
	case ProviderAnthropic:
		return anthropic.New(cfg.APIKey,
			anthropic.WithModel(model),
			anthropic.WithBaseURL(cfg.BaseURL),
		), nil
	case ProviderGoogle:
		return google.New(ctx, cfg.APIKey,
			google.WithModel(model),
			google.WithBaseURL(cfg.BaseURL),
		)
	default:
		return openai.New(cfg.APIKey,
			openai.WithModel(model),
			openai.WithBaseURL(cfg.BaseURL),
		), nil
	}
}
