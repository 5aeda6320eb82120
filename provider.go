package kbchat

import "context"

// ChatProvider is the model capability: a conversation in, a response
// out, blocking or streamed.
type ChatProvider interface {
	// Chat sends a conversation and returns the complete response.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)

	// ChatStream sends a conversation and streams the response. The
	// returned channel closes after the final event; consumers must
	// check StreamEvent.Err.
	ChatStream(ctx context.Context, messages []Message, opts ...Option) (<-chan StreamEvent, error)
}

// Response is a completed model reply. When ToolCalls is non-empty the
// model is asking for tool executions before it can answer.
type Response struct {
	Content      string     `json:"content,omitempty"`
	FinishReason string     `json:"finishReason,omitempty"`
	Usage        Usage      `json:"usage"`
	ToolCalls    []ToolCall `json:"toolCalls,omitempty"`
}

// Usage counts the tokens a request consumed.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// StreamEvent is one element of a streamed response. Content arrives
// as Delta fragments; the last event has Done set and carries the
// assembled Response, or Err if the stream failed.
type StreamEvent struct {
	Delta    string
	Done     bool
	Response *Response
	Err      error
}
