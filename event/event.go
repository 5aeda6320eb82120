// Package event defines the streamed event vocabulary produced by an
// agent invocation. A turn is delivered as a lazy, finite sequence of
// events: a run starts, assistant tokens stream as deltas, each state
// change yields a snapshot of the conversation so far, and the run ends
// with either a final response or an error.
package event

import (
	"time"

	ai "github.com/graphrag-tools/kbchat"
)

// Type identifies the kind of event.
type Type string

const (
	// RunStart fires when a turn begins.
	RunStart Type = "run_start"

	// MessageDelta fires for each streaming token of an assistant message.
	MessageDelta Type = "message_delta"

	// Snapshot fires after each state change with the full message list so far.
	Snapshot Type = "snapshot"

	// RunEnd fires when the turn completes successfully.
	RunEnd Type = "run_end"

	// RunError fires when an unrecoverable error occurs. No further
	// events follow a RunError.
	RunError Type = "run_error"
)

// Event represents an observable occurrence during a turn.
type Event struct {
	// Type identifies the kind of event.
	Type Type

	// MessageID identifies the assistant message for delta correlation.
	MessageID string

	// Delta contains streaming content for MessageDelta events.
	Delta string

	// Messages contains the conversation so far for Snapshot and RunEnd
	// events. The slice is a copy; later events never mutate it.
	Messages []ai.Message

	// Response contains the final model response for RunEnd events.
	Response *ai.Response

	// Step is the reasoning iteration (1-indexed) that produced the event.
	Step int

	// Error contains the error for RunError events.
	Error error

	// Message carries the model's finish reason for RunEnd events.
	Message string

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Emit sends an event with timestamp to the channel. The send blocks
// until the consumer is ready; every event of a turn is delivered.
func Emit(ch chan<- Event, e Event) {
	e.Timestamp = time.Now()
	ch <- e
}

// NewChannel creates a buffered event channel with standard capacity.
func NewChannel() chan Event {
	return make(chan Event, 100)
}
