package mcp

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	ai "github.com/graphrag-tools/kbchat"
)

// ToMCPTool converts a kbchat Tool to its MCP form. The JSON schema in
// Tool.Parameters travels as the raw input schema.
func ToMCPTool(t ai.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// FromMCPTool converts an MCP tool definition into a kbchat Tool,
// taking the raw schema when the server provided one and marshaling
// the structured schema otherwise.
func FromMCPTool(t mcp.Tool) ai.Tool {
	schema := json.RawMessage(t.RawInputSchema)
	if len(schema) == 0 {
		if data, err := json.Marshal(t.InputSchema); err == nil {
			schema = data
		}
	}

	return ai.Tool{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  schema,
	}
}

// ToMCPCallToolRequest converts a model tool call into an MCP call
// request. Arguments that do not parse as JSON are passed as a bare
// string.
func ToMCPCallToolRequest(call ai.ToolCall) mcp.CallToolRequest {
	var args any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			args = call.Arguments
		}
	}

	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      call.Name,
			Arguments: args,
		},
	}
}

// FromMCPCallToolResult flattens a call result into a kbchat
// ToolResult for the given call ID. A nil result counts as an error.
func FromMCPCallToolResult(callID string, result *mcp.CallToolResult) ai.ToolResult {
	if result == nil {
		return ai.ToolResult{ToolCallID: callID, IsError: true}
	}

	return ai.ToolResult{
		ToolCallID: callID,
		Content:    flattenContent(result),
		IsError:    result.IsError,
	}
}

// flattenContent renders the result's content blocks as one text
// payload: text blocks verbatim, anything else as JSON, structured
// content appended last.
func flattenContent(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		default:
			if data, err := json.Marshal(content); err == nil {
				parts = append(parts, string(data))
			}
		}
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			parts = append(parts, string(data))
		}
	}

	return strings.Join(parts, "\n")
}
