package openai

import (
	"github.com/openai/openai-go"

	ai "github.com/graphrag-tools/kbchat"
)

// convertMessages maps the conversation onto the chat completions
// message union. Tool-result messages fan out to one API message per
// result; empty messages are dropped.
func convertMessages(messages []ai.Message) []openai.ChatCompletionMessageParamUnion {
	var out []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			if msg.Content != "" {
				out = append(out, openai.SystemMessage(msg.Content))
			}
		case ai.RoleAssistant:
			if param, ok := assistantMessage(msg); ok {
				out = append(out, param)
			}
		case ai.RoleTool:
			for _, tr := range msg.ToolResults {
				out = append(out, openai.ToolMessage(tr.Content, tr.ToolCallID))
			}
		default:
			if msg.Content != "" {
				out = append(out, openai.UserMessage(msg.Content))
			}
		}
	}
	return out
}

func assistantMessage(msg ai.Message) (openai.ChatCompletionMessageParamUnion, bool) {
	if len(msg.ToolCalls) == 0 {
		if msg.Content == "" {
			return openai.ChatCompletionMessageParamUnion{}, false
		}
		return openai.AssistantMessage(msg.Content), true
	}

	calls := make([]openai.ChatCompletionMessageToolCallParam, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		calls = append(calls, openai.ChatCompletionMessageToolCallParam{
			ID: tc.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      tc.Name,
				Arguments: tc.Arguments,
			},
		})
	}

	param := openai.ChatCompletionAssistantMessageParam{ToolCalls: calls}
	if msg.Content != "" {
		param.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
			OfString: openai.String(msg.Content),
		}
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &param}, true
}
