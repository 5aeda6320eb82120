// Package google implements kbchat.ChatProvider over the Google GenAI
// SDK (Gemini API backend).
package google

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	ai "github.com/graphrag-tools/kbchat"
)

// DefaultModel is used when no model is configured or requested.
const DefaultModel = "gemini-2.0-flash"

// Client wraps the Google GenAI SDK to implement ai.ChatProvider.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		model: DefaultModel,
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(c, cfg)
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.client = client
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client, *genai.ClientConfig)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client, cfg *genai.ClientConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client, cfg *genai.ClientConfig) {
		if baseURL != "" {
			cfg.HTTPOptions.BaseURL = baseURL
		}
	}
}

func (c *Client) buildRequest(messages []ai.Message, options *ai.Options) (string, []*genai.Content, *genai.GenerateContentConfig) {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	contents, system := convertMessages(messages)
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.Temperature != nil {
		temp := float32(*options.Temperature)
		config.Temperature = &temp
	}
	if len(options.Tools) > 0 {
		config.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			config.ToolConfig = convertToolChoice(options.ToolChoice)
		}
	}
	return model, contents, config
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model, contents, config := c.buildRequest(messages, options)

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, err
	}

	content := ""
	var toolCalls []ai.ToolCall
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
		toolCalls = extractToolCalls(resp.Candidates[0].Content.Parts)
	}

	finishReason := ""
	if len(resp.Candidates) > 0 {
		finishReason = string(resp.Candidates[0].FinishReason)
	}

	usage := ai.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &ai.Response{
		Content:      content,
		FinishReason: finishReason,
		Usage:        usage,
		ToolCalls:    toolCalls,
	}, nil
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)
	model, contents, config := c.buildRequest(messages, options)

	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)

		var fullContent string
		var finishReason string
		var usage ai.Usage
		var allParts []*genai.Part

		for resp, err := range c.client.Models.GenerateContentStream(ctx, model, contents, config) {
			if err != nil {
				ch <- ai.StreamEvent{Err: err}
				return
			}

			if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
				ch <- ai.StreamEvent{
					Err: &BlockedError{Reason: string(resp.PromptFeedback.BlockReason)},
				}
				return
			}

			if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
				for _, part := range resp.Candidates[0].Content.Parts {
					allParts = append(allParts, part)
					if part.Text != "" {
						ch <- ai.StreamEvent{Delta: part.Text}
						fullContent += part.Text
					}
				}
				finishReason = string(resp.Candidates[0].FinishReason)
			}

			if resp.UsageMetadata != nil {
				usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
				usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
			}
		}

		ch <- ai.StreamEvent{
			Done: true,
			Response: &ai.Response{
				Content:      fullContent,
				FinishReason: finishReason,
				Usage:        usage,
				ToolCalls:    extractToolCalls(allParts),
			},
		}
	}()

	return ch, nil
}

// BlockedError indicates the request was blocked by content filtering.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}

var _ ai.ChatProvider = (*Client)(nil)
