// Package anthropic implements kbchat.ChatProvider over the Anthropic
// Messages API. A custom base URL may be supplied to target proxies
// that speak the same protocol.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	ai "github.com/graphrag-tools/kbchat"
)

// DefaultModel is used when no model is configured or requested.
const DefaultModel = "claude-sonnet-4-5"

// defaultMaxTokens applies when the caller does not set a limit; the
// Messages API requires max_tokens on every request.
const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK to implement ai.ChatProvider.
type Client struct {
	client *anthropic.Client
	model  string
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model: DefaultModel,
	}
	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	for _, opt := range opts {
		requestOpts = opt(c, requestOpts)
	}
	client := anthropic.NewClient(requestOpts...)
	c.client = &client
	return c
}

// ClientOption configures the Anthropic client.
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

// WithBaseURL points the client at an alternate Messages API endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		if baseURL != "" {
			ro = append(ro, option.WithBaseURL(baseURL))
		}
		return ro
	}
}

func (c *Client) buildParams(messages []ai.Message, options *ai.Options) anthropic.MessageNewParams {
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" && options.ToolChoice != ai.ToolChoiceNone {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}
	return params
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}

	content := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return &ai.Response{
		Content:      content,
		FinishReason: string(resp.StopReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
		ToolCalls: extractToolCalls(resp.Content),
	}, nil
}

// ChatStream sends a conversation and returns a channel of streaming events.
func (c *Client) ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	options := ai.ApplyOptions(opts...)
	params := c.buildParams(messages, options)

	stream := c.client.Messages.NewStreaming(ctx, params)
	ch := make(chan ai.StreamEvent)

	go func() {
		defer close(ch)
		var acc anthropic.Message

		for stream.Next() {
			event := stream.Current()
			acc.Accumulate(event)

			if event.Type == "content_block_delta" {
				delta := event.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" {
					ch <- ai.StreamEvent{
						Delta: textDelta.Text,
					}
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- ai.StreamEvent{Err: err}
			return
		}

		content := ""
		for _, block := range acc.Content {
			if block.Type == "text" {
				content += block.Text
			}
		}

		ch <- ai.StreamEvent{
			Done: true,
			Response: &ai.Response{
				Content:      content,
				FinishReason: string(acc.StopReason),
				Usage: ai.Usage{
					InputTokens:  int(acc.Usage.InputTokens),
					OutputTokens: int(acc.Usage.OutputTokens),
				},
				ToolCalls: extractToolCalls(acc.Content),
			},
		}
	}()

	return ch, nil
}

var _ ai.ChatProvider = (*Client)(nil)
