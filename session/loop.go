package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/event"
)

// DefaultThreadID scopes checkpoints when no identifier is configured.
const DefaultThreadID = "1"

// Runner executes one conversation turn. The agent package satisfies
// this interface.
type Runner interface {
	Run(ctx context.Context, threadID string, messages []ai.Message) <-chan event.Event
}

// Loop is the interactive read-eval-print cycle. It owns the
// conversation history; the history only ever grows.
type Loop struct {
	runner   Runner
	in       *bufio.Reader
	out      io.Writer
	threadID string
	history  []ai.Message
}

// Option configures a Loop.
type Option func(*Loop)

// WithThreadID sets the checkpoint identifier for the session.
// Default is DefaultThreadID.
func WithThreadID(id string) Option {
	return func(l *Loop) {
		l.threadID = id
	}
}

// NewLoop creates a session loop reading input from in and writing
// conversation output to out.
func NewLoop(runner Runner, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		runner:   runner,
		in:       bufio.NewReader(in),
		out:      out,
		threadID: DefaultThreadID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// History returns a copy of the conversation so far.
func (l *Loop) History() []ai.Message {
	history := make([]ai.Message, len(l.history))
	copy(history, l.history)
	return history
}

// Run blocks until the user quits, input is exhausted, or a turn
// fails. Quit and EOF are clean exits; a turn failure is returned.
func (l *Loop) Run(ctx context.Context) error {
	for {
		fmt.Fprint(l.out, "User: ")

		line, err := l.in.ReadString('\n')
		if err == io.EOF && line == "" {
			fmt.Fprintln(l.out)
			return nil
		}
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		if strings.EqualFold(input, "quit") {
			fmt.Fprintln(l.out, "Exiting...")
			return nil
		}

		l.history = append(l.history, ai.Message{
			ID:      ai.GenerateMessageID(),
			Role:    ai.RoleUser,
			Content: input,
		})

		if err := l.runTurn(ctx); err != nil {
			return err
		}
	}
}

// runTurn invokes the agent with the current history and adopts the
// turn's final snapshot as the new history.
func (l *Loop) runTurn(ctx context.Context) error {
	events := l.runner.Run(ctx, l.threadID, l.history)

	// Prior turns were already shown; start printing at the user
	// message appended for this turn.
	printed := len(l.history) - 1
	var runErr error

	for ev := range events {
		switch ev.Type {
		case event.Snapshot, event.RunEnd:
			// Print every message this snapshot added over what was
			// already shown, mirroring stream over conversation values.
			for ; printed < len(ev.Messages); printed++ {
				printMessage(l.out, ev.Messages[printed])
			}
			if ev.Type == event.RunEnd {
				l.history = ev.Messages
			}

		case event.RunError:
			runErr = ev.Error
		}
	}

	return runErr
}
