package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	ai "github.com/graphrag-tools/kbchat"
)

func convertTools(tools []ai.Tool) []anthropic.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		// The Messages API wants properties and required split out of
		// the JSON Schema document.
		var doc map[string]any
		if len(t.Parameters) > 0 {
			json.Unmarshal(t.Parameters, &doc)
		}

		var required []string
		if raw, ok := doc["required"].([]any); ok {
			for _, r := range raw {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}

		out = append(out, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        t.Name,
				Description: anthropic.String(t.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: doc["properties"],
					Required:   required,
				},
			},
		})
	}
	return out
}

func convertToolChoice(choice ai.ToolChoice) anthropic.ToolChoiceUnionParam {
	switch choice {
	case ai.ToolChoiceNone:
		return anthropic.ToolChoiceUnionParam{OfNone: &anthropic.ToolChoiceNoneParam{}}
	case ai.ToolChoiceRequired:
		return anthropic.ToolChoiceUnionParam{OfAny: &anthropic.ToolChoiceAnyParam{}}
	default:
		return anthropic.ToolChoiceUnionParam{OfAuto: &anthropic.ToolChoiceAutoParam{}}
	}
}

func extractToolCalls(content []anthropic.ContentBlockUnion) []ai.ToolCall {
	var calls []ai.ToolCall
	for _, block := range content {
		if block.Type != "tool_use" {
			continue
		}
		calls = append(calls, ai.ToolCall{
			ID:        block.ID,
			Name:      block.Name,
			Arguments: string(block.Input),
		})
	}
	return calls
}
