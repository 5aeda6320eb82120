package kbchat

import "encoding/json"

// Tool describes one externally callable capability. Descriptors are
// discovered from the tool channel at startup and are immutable for
// the rest of the run.
type Tool struct {
	// Name uniquely identifies the tool.
	Name string
	// Description tells the model what the tool is for.
	Description string
	// Parameters is the JSON Schema of the tool's arguments.
	Parameters json.RawMessage
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	// ID ties the call to its eventual result.
	ID string `json:"id"`
	// Name of the tool to invoke.
	Name string `json:"name"`
	// Arguments as a JSON object string.
	Arguments string `json:"arguments"`
}

// ToolResult is the outcome of one tool call, keyed back to it by
// ToolCallID.
type ToolResult struct {
	ToolCallID string `json:"toolCallId"`
	Content    string `json:"content"`
	// IsError marks a tool-level failure the model should see.
	IsError bool `json:"isError,omitempty"`
}

// ToolChoice steers the model's tool use for a request.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide (the default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone forbids tool use.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces a tool call.
	ToolChoiceRequired ToolChoice = "required"
)
