// Package openai implements kbchat.ChatProvider over the OpenAI API.
// A custom base URL may be supplied to target OpenAI-compatible
// endpoints such as local inference proxies.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	ai "github.com/graphrag-tools/kbchat"
)

// DefaultModel is used when no model is configured or requested.
const DefaultModel = "gpt-4o"

// Client wraps the OpenAI SDK to implement ai.ChatProvider.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model: DefaultModel,
	}
	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	for _, opt := range opts {
		requestOpts = opt(c, requestOpts)
	}
	client := openai.NewClient(requestOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client, []option.RequestOption) []option.RequestOption

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		if model != "" {
			c.model = model
		}
		return ro
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		if baseURL != "" {
			ro = append(ro, option.WithBaseURL(baseURL))
		}
		return ro
	}
}

func (c *Client) buildParams(messages []ai.Message, options *ai.Options) openai.ChatCompletionNewParams {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}
	return params
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ai.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		ToolCalls: extractToolCalls(resp.Choices[0].Message),
	}, nil
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)
		var acc openai.ChatCompletionAccumulator

		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				ch <- ai.StreamEvent{
					Delta: chunk.Choices[0].Delta.Content,
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamEvent{Err: err}
			return
		}

		response, err := accumulatedResponse(acc)
		if err != nil {
			ch <- ai.StreamEvent{Err: err}
			return
		}
		ch <- ai.StreamEvent{Done: true, Response: response}
	}()

	return ch, nil
}

// accumulatedResponse builds the final response from an accumulated
// stream. A stream can close cleanly without ever delivering a choice;
// that is an error, not an empty response.
func accumulatedResponse(acc openai.ChatCompletionAccumulator) (*ai.Response, error) {
	if len(acc.Choices) == 0 {
		return nil, errors.New("stream ended without a completion choice")
	}

	completion := acc.Choices[0]
	return &ai.Response{
		Content:      completion.Message.Content,
		FinishReason: string(completion.FinishReason),
		Usage: ai.Usage{
			InputTokens:  int(acc.Usage.PromptTokens),
			OutputTokens: int(acc.Usage.CompletionTokens),
		},
		ToolCalls: extractToolCallsFromAccumulator(completion.Message.ToolCalls),
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
