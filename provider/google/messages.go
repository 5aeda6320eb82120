package google

import (
	"encoding/json"

	"google.golang.org/genai"

	ai "github.com/graphrag-tools/kbchat"
)

// convertMessages maps the conversation onto genai contents. System
// messages are collected separately and returned as the system
// instruction text.
func convertMessages(messages []ai.Message) ([]*genai.Content, string) {
	var contents []*genai.Content
	var system string

	for _, msg := range messages {
		if msg.Role == ai.RoleSystem {
			if msg.Content != "" {
				if system != "" {
					system += "\n\n"
				}
				system += msg.Content
			}
			continue
		}

		role := genai.RoleUser
		if msg.Role == ai.RoleAssistant {
			role = genai.RoleModel
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			var args map[string]any
			json.Unmarshal([]byte(tc.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     tr.ToolCallID,
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents, system
}
