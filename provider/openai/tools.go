package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	ai "github.com/graphrag-tools/kbchat"
)

func convertTools(tools []ai.Tool) []openai.ChatCompletionToolParam {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.ChatCompletionToolParam, 0, len(tools))
	for _, t := range tools {
		var params shared.FunctionParameters
		if len(t.Parameters) > 0 {
			json.Unmarshal(t.Parameters, &params)
		}
		out = append(out, openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  params,
			},
		})
	}
	return out
}

func convertToolChoice(choice ai.ToolChoice) openai.ChatCompletionToolChoiceOptionUnionParam {
	mode := "auto"
	switch choice {
	case ai.ToolChoiceNone:
		mode = "none"
	case ai.ToolChoiceRequired:
		mode = "required"
	}
	return openai.ChatCompletionToolChoiceOptionUnionParam{
		OfAuto: openai.String(mode),
	}
}

func extractToolCalls(msg openai.ChatCompletionMessage) []ai.ToolCall {
	return toolCallsFromSDK(msg.ToolCalls)
}

func extractToolCallsFromAccumulator(calls []openai.ChatCompletionMessageToolCall) []ai.ToolCall {
	return toolCallsFromSDK(calls)
}

func toolCallsFromSDK(calls []openai.ChatCompletionMessageToolCall) []ai.ToolCall {
	if len(calls) == 0 {
		return nil
	}
	out := make([]ai.ToolCall, 0, len(calls))
	for _, tc := range calls {
		out = append(out, ai.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}
