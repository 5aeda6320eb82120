package agent

import (
	"errors"
	"fmt"
)

// Sentinel errors for agent termination conditions.
var (
	// ErrMaxStepsReached indicates the agent hit the step limit while
	// the model was still requesting tools.
	ErrMaxStepsReached = errors.New("agent: maximum steps reached")

	// ErrEmptyStream indicates the provider stream ended without a
	// final response.
	ErrEmptyStream = errors.New("agent: stream ended without a response")
)

// ToolExecutionError indicates the tool channel itself failed while
// executing a call. Tool-level failures are not errors; they travel
// back to the model as error results.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("agent: executing tool %q: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}
