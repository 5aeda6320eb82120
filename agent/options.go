package agent

import (
	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/store"
)

// DefaultMaxSteps limits reasoning iterations per turn.
const DefaultMaxSteps = 10

// Option configures an Agent.
type Option func(*Agent)

// WithSystemPrompt sets the system prompt injected on every model
// call. The prompt is never stored in the conversation history.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

// WithCheckpointer sets the adapter used to checkpoint the final turn
// history under the thread identifier. If nil, no checkpointing occurs.
func WithCheckpointer(adapter store.Adapter) Option {
	return func(a *Agent) {
		a.checkpoint = adapter
	}
}

// WithMaxSteps sets the maximum number of reasoning iterations per
// turn. Default is DefaultMaxSteps. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(a *Agent) {
		a.maxSteps = n
	}
}

// WithChatOptions passes options through to the chat provider on every
// model call.
func WithChatOptions(opts ...ai.Option) Option {
	return func(a *Agent) {
		a.chatOpts = append(a.chatOpts, opts...)
	}
}
