package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/event"
)

// scriptedRunner appends a canned assistant reply to whatever history
// it is given, emitting events the way the agent does.
type scriptedRunner struct {
	replies []string
	calls   int
	// seen records the history passed to each call.
	seen [][]ai.Message
}

func (s *scriptedRunner) Run(ctx context.Context, threadID string, messages []ai.Message) <-chan event.Event {
	reply := "ok"
	if s.calls < len(s.replies) {
		reply = s.replies[s.calls]
	}
	s.calls++

	history := make([]ai.Message, len(messages))
	copy(history, messages)
	s.seen = append(s.seen, history)

	ch := make(chan event.Event, 8)
	go func() {
		defer close(ch)
		event.Emit(ch, event.Event{Type: event.RunStart})
		event.Emit(ch, event.Event{Type: event.Snapshot, Messages: history})

		final := append(history, ai.Message{Role: ai.RoleAssistant, Content: reply})
		event.Emit(ch, event.Event{Type: event.Snapshot, Messages: final})
		event.Emit(ch, event.Event{
			Type:     event.RunEnd,
			Messages: final,
			Response: &ai.Response{Content: reply},
		})
	}()
	return ch
}

// failingRunner emits a RunError and closes.
type failingRunner struct {
	err error
}

func (f *failingRunner) Run(ctx context.Context, threadID string, messages []ai.Message) <-chan event.Event {
	ch := make(chan event.Event, 2)
	ch <- event.Event{Type: event.RunStart}
	ch <- event.Event{Type: event.RunError, Error: f.err}
	close(ch)
	return ch
}

func TestLoopQuit(t *testing.T) {
	casings := []string{"quit", "QUIT", "Quit", "qUiT", "  quit  "}
	for _, input := range casings {
		t.Run(input, func(t *testing.T) {
			runner := &scriptedRunner{}
			var out bytes.Buffer
			loop := NewLoop(runner, strings.NewReader(input+"\n"), &out)

			err := loop.Run(context.Background())

			require.NoError(t, err)
			assert.Contains(t, out.String(), "Exiting...")
			assert.Zero(t, runner.calls, "quit must not invoke the agent")
			assert.Empty(t, loop.History(), "quit must not be appended")
		})
	}
}

func TestLoopEOF(t *testing.T) {
	runner := &scriptedRunner{}
	var out bytes.Buffer
	loop := NewLoop(runner, strings.NewReader(""), &out)

	err := loop.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, runner.calls)
}

func TestLoopTurn(t *testing.T) {
	t.Run("hello then quit", func(t *testing.T) {
		runner := &scriptedRunner{replies: []string{"Hi! How can I help?"}}
		var out bytes.Buffer
		loop := NewLoop(runner, strings.NewReader("Hello\nquit\n"), &out)

		err := loop.Run(context.Background())
		require.NoError(t, err)

		// Exactly one user entry reached the agent.
		require.Equal(t, 1, runner.calls)
		require.Len(t, runner.seen[0], 1)
		assert.Equal(t, ai.RoleUser, runner.seen[0][0].Role)
		assert.Equal(t, "Hello", runner.seen[0][0].Content)

		printed := out.String()
		assert.Contains(t, printed, "Human Message")
		assert.Contains(t, printed, "Hello")
		assert.Contains(t, printed, "Ai Message")
		assert.Contains(t, printed, "Hi! How can I help?")
		assert.Contains(t, printed, "Exiting...")
	})

	t.Run("history grows by turn", func(t *testing.T) {
		runner := &scriptedRunner{replies: []string{"one", "two"}}
		var out bytes.Buffer
		loop := NewLoop(runner, strings.NewReader("first\nsecond\nquit\n"), &out)

		require.NoError(t, loop.Run(context.Background()))

		history := loop.History()
		require.Len(t, history, 4)
		assert.Equal(t, "first", history[0].Content)
		assert.Equal(t, "one", history[1].Content)
		assert.Equal(t, "second", history[2].Content)
		assert.Equal(t, "two", history[3].Content)

		// The second turn received the first turn's full history plus
		// the new user message.
		require.Len(t, runner.seen[1], 3)
		assert.Equal(t, "first", runner.seen[1][0].Content)
		assert.Equal(t, "one", runner.seen[1][1].Content)
		assert.Equal(t, "second", runner.seen[1][2].Content)
	})

	t.Run("history is append-only across turns", func(t *testing.T) {
		runner := &scriptedRunner{replies: []string{"a", "b", "c"}}
		var out bytes.Buffer
		loop := NewLoop(runner, strings.NewReader("1\n2\n3\nquit\n"), &out)

		require.NoError(t, loop.Run(context.Background()))

		// Every call's history is a prefix of the next call's.
		for i := 1; i < len(runner.seen); i++ {
			prev, cur := runner.seen[i-1], runner.seen[i]
			require.Greater(t, len(cur), len(prev))
			for j := range prev {
				assert.Equal(t, prev[j].Content, cur[j].Content)
				assert.Equal(t, prev[j].Role, cur[j].Role)
			}
		}
	})

	t.Run("prior turns not reprinted", func(t *testing.T) {
		runner := &scriptedRunner{replies: []string{"reply one", "reply two"}}
		var out bytes.Buffer
		loop := NewLoop(runner, strings.NewReader("alpha\nbeta\nquit\n"), &out)

		require.NoError(t, loop.Run(context.Background()))

		assert.Equal(t, 1, strings.Count(out.String(), "alpha"))
		assert.Equal(t, 1, strings.Count(out.String(), "reply one"))
	})

	t.Run("turn failure is returned", func(t *testing.T) {
		cause := errors.New("model endpoint unreachable")
		var out bytes.Buffer
		loop := NewLoop(&failingRunner{err: cause}, strings.NewReader("Hello\nquit\n"), &out)

		err := loop.Run(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("prompt is written before input is read", func(t *testing.T) {
		runner := &scriptedRunner{}
		var out bytes.Buffer
		loop := NewLoop(runner, strings.NewReader("quit\n"), &out)

		require.NoError(t, loop.Run(context.Background()))
		assert.True(t, strings.HasPrefix(out.String(), "User: "))
	})
}

func TestPrintMessage(t *testing.T) {
	t.Run("assistant with tool calls", func(t *testing.T) {
		var out bytes.Buffer
		printMessage(&out, ai.Message{
			Role:    ai.RoleAssistant,
			Content: "Looking that up.",
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "search_knowledge", Arguments: `{"query":"redis"}`},
			},
		})

		s := out.String()
		assert.Contains(t, s, "Ai Message")
		assert.Contains(t, s, "Looking that up.")
		assert.Contains(t, s, "Tool Calls:")
		assert.Contains(t, s, "search_knowledge (call_1)")
		assert.Contains(t, s, `{"query":"redis"}`)
	})

	t.Run("tool result message", func(t *testing.T) {
		var out bytes.Buffer
		printMessage(&out, ai.NewToolResultMessage(ai.ToolResult{
			ToolCallID: "call_1",
			Content:    "three matches",
		}))

		s := out.String()
		assert.Contains(t, s, "Tool Message")
		assert.Contains(t, s, "three matches")
	})

	t.Run("tool error result", func(t *testing.T) {
		var out bytes.Buffer
		printMessage(&out, ai.NewToolResultMessage(ai.ToolResult{
			ToolCallID: "call_2",
			Content:    "index unavailable",
			IsError:    true,
		}))

		assert.Contains(t, out.String(), "Error: index unavailable")
	})
}

func TestBanner(t *testing.T) {
	b := banner("Human Message")

	assert.Len(t, b, bannerWidth)
	assert.Contains(t, b, " Human Message ")
	assert.True(t, strings.HasPrefix(b, "="))
	assert.True(t, strings.HasSuffix(b, "="))
}
