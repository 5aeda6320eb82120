package kbchat

import "github.com/google/uuid"

// Role tags a conversation entry with its sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// Message is one entry of a conversation history. A user or system
// message carries only Content; an assistant message may additionally
// carry ToolCalls, and a tool message carries ToolResults answering
// them.
type Message struct {
	// ID optionally identifies the message, e.g. for delta correlation.
	ID      string `json:"id,omitempty"`
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`

	// ToolCalls holds the tool invocations an assistant message
	// requested.
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`

	// ToolResults holds the outcomes a tool message reports back.
	ToolResults []ToolResult `json:"toolResults,omitempty"`
}

// NewToolResultMessage wraps tool results in a tool-role message.
func NewToolResultMessage(results ...ToolResult) Message {
	return Message{
		Role:        RoleTool,
		ToolResults: results,
	}
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}
