package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	ai "github.com/graphrag-tools/kbchat"
)

// convertMessages maps the conversation onto Messages API params.
// System content comes back separately for the request's system field.
// Empty text blocks are dropped; the API rejects them.
func convertMessages(messages []ai.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var params []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			if msg.Content != "" {
				system = append(system, anthropic.TextBlockParam{Text: msg.Content})
			}
		case ai.RoleAssistant:
			if param, ok := assistantMessage(msg); ok {
				params = append(params, param)
			}
		case ai.RoleTool:
			if param, ok := toolResultMessage(msg); ok {
				params = append(params, param)
			}
		default:
			if msg.Content != "" {
				params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
			}
		}
	}

	return params, system
}

func assistantMessage(msg ai.Message) (anthropic.MessageParam, bool) {
	if len(msg.ToolCalls) == 0 {
		if msg.Content == "" {
			return anthropic.MessageParam{}, false
		}
		return anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)), true
	}

	var blocks []anthropic.ContentBlockParamUnion
	if msg.Content != "" {
		blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
	}
	for _, tc := range msg.ToolCalls {
		var input any
		json.Unmarshal([]byte(tc.Arguments), &input)
		blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
	}

	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleAssistant,
		Content: blocks,
	}, true
}

// toolResultMessage renders tool results as a user message of
// tool_result blocks, which is how the Messages API receives them.
func toolResultMessage(msg ai.Message) (anthropic.MessageParam, bool) {
	if len(msg.ToolResults) == 0 {
		return anthropic.MessageParam{}, false
	}

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.ToolResults))
	for _, tr := range msg.ToolResults {
		blocks = append(blocks, anthropic.NewToolResultBlock(tr.ToolCallID, tr.Content, tr.IsError))
	}

	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleUser,
		Content: blocks,
	}, true
}
