package agent

import (
	"context"

	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/event"
	"github.com/graphrag-tools/kbchat/store"
)

// ToolExecutor provides tools and executes calls against them. The
// mcp.Channel satisfies this interface.
type ToolExecutor interface {
	Tools() []ai.Tool
	Execute(ctx context.Context, call ai.ToolCall) (ai.ToolResult, error)
}

// Agent orchestrates tool-calling conversations against a chat provider.
type Agent struct {
	provider     ai.ChatProvider
	executor     ToolExecutor
	systemPrompt string
	checkpoint   store.Adapter
	maxSteps     int
	chatOpts     []ai.Option
}

// New creates an Agent from a chat provider and a tool executor.
// The executor may be nil, in which case the model is invoked without
// tools and every turn completes in a single step.
func New(provider ai.ChatProvider, executor ToolExecutor, opts ...Option) *Agent {
	a := &Agent{
		provider: provider,
		executor: executor,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one turn of the conversation and returns a channel of
// events. The channel is closed when the turn completes or fails;
// callers must drain it. The input slice is never mutated.
func (a *Agent) Run(ctx context.Context, threadID string, messages []ai.Message) <-chan event.Event {
	eventCh := event.NewChannel()

	go a.runLoop(ctx, threadID, messages, eventCh)

	return eventCh
}

func (a *Agent) runLoop(ctx context.Context, threadID string, messages []ai.Message, eventCh chan<- event.Event) {
	defer close(eventCh)

	event.Emit(eventCh, event.Event{Type: event.RunStart})

	history := store.NewMessageStoreFrom(messages, a.checkpoint)

	// The input state is the first snapshot of the turn.
	event.Emit(eventCh, event.Event{
		Type:     event.Snapshot,
		Messages: history.Messages(),
	})

	chatOpts := a.chatOpts
	if a.executor != nil {
		if tools := a.executor.Tools(); len(tools) > 0 {
			chatOpts = append([]ai.Option{ai.WithTools(tools)}, chatOpts...)
		}
	}

	step := 0

	for {
		step++

		if a.maxSteps > 0 && step > a.maxSteps {
			event.Emit(eventCh, event.Event{
				Type:  event.RunError,
				Step:  step,
				Error: ErrMaxStepsReached,
			})
			return
		}

		response, err := a.executeStep(ctx, history.Messages(), chatOpts, step, eventCh)
		if err != nil {
			event.Emit(eventCh, event.Event{Type: event.RunError, Step: step, Error: err})
			return
		}

		history.Append(ai.Message{
			ID:        ai.GenerateMessageID(),
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})
		event.Emit(eventCh, event.Event{
			Type:     event.Snapshot,
			Step:     step,
			Messages: history.Messages(),
		})

		if len(response.ToolCalls) == 0 {
			a.finish(ctx, threadID, history, response, step, eventCh)
			return
		}

		results, err := a.executeToolCalls(ctx, response.ToolCalls)
		if err != nil {
			event.Emit(eventCh, event.Event{Type: event.RunError, Step: step, Error: err})
			return
		}

		history.Append(ai.NewToolResultMessage(results...))
		event.Emit(eventCh, event.Event{
			Type:     event.Snapshot,
			Step:     step,
			Messages: history.Messages(),
		})
	}
}

// executeStep performs one model invocation, forwarding streamed deltas.
func (a *Agent) executeStep(ctx context.Context, messages []ai.Message, chatOpts []ai.Option, step int, eventCh chan<- event.Event) (*ai.Response, error) {
	request := messages
	if a.systemPrompt != "" {
		request = make([]ai.Message, 0, len(messages)+1)
		request = append(request, ai.Message{Role: ai.RoleSystem, Content: a.systemPrompt})
		request = append(request, messages...)
	}

	streamCh, err := a.provider.ChatStream(ctx, request, chatOpts...)
	if err != nil {
		return nil, err
	}

	messageID := ai.GenerateMessageID()
	var response *ai.Response

	for ev := range streamCh {
		switch {
		case ev.Err != nil:
			return nil, ev.Err

		case ev.Done:
			response = ev.Response

		case ev.Delta != "":
			event.Emit(eventCh, event.Event{
				Type:      event.MessageDelta,
				Step:      step,
				MessageID: messageID,
				Delta:     ev.Delta,
			})
		}
	}

	if response == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyStream
	}

	return response, nil
}

// executeToolCalls runs the model's tool calls in order. Tool-level
// failures come back as error results; only a broken channel is an
// error.
func (a *Agent) executeToolCalls(ctx context.Context, calls []ai.ToolCall) ([]ai.ToolResult, error) {
	results := make([]ai.ToolResult, len(calls))
	for i, call := range calls {
		if a.executor == nil || !a.hasTool(call.Name) {
			results[i] = ai.ToolResult{
				ToolCallID: call.ID,
				Content:    "unknown tool: " + call.Name,
				IsError:    true,
			}
			continue
		}

		result, err := a.executor.Execute(ctx, call)
		if err != nil {
			return nil, &ToolExecutionError{Tool: call.Name, Err: err}
		}
		results[i] = result
	}
	return results, nil
}

func (a *Agent) hasTool(name string) bool {
	for _, t := range a.executor.Tools() {
		if t.Name == name {
			return true
		}
	}
	return false
}

// finish checkpoints the turn history and emits the terminal events.
func (a *Agent) finish(ctx context.Context, threadID string, history *store.MessageStore, response *ai.Response, step int, eventCh chan<- event.Event) {
	if a.checkpoint != nil && threadID != "" {
		if err := history.Sync(ctx, threadID); err != nil {
			event.Emit(eventCh, event.Event{Type: event.RunError, Step: step, Error: err})
			return
		}
	}

	event.Emit(eventCh, event.Event{
		Type:     event.RunEnd,
		Step:     step,
		Messages: history.Messages(),
		Response: response,
		Message:  response.FinishReason,
	})
}
