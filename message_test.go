package kbchat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMessageID(t *testing.T) {
	t.Run("has msg prefix", func(t *testing.T) {
		id := GenerateMessageID()
		assert.True(t, strings.HasPrefix(id, "msg-"))
	})

	t.Run("generates unique identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := GenerateMessageID()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestNewToolResultMessage(t *testing.T) {
	result := ToolResult{ToolCallID: "call_1", Content: "42"}

	msg := NewToolResultMessage(result)

	assert.Equal(t, RoleTool, msg.Role)
	assert.Len(t, msg.ToolResults, 1)
	assert.Equal(t, "call_1", msg.ToolResults[0].ToolCallID)
}
