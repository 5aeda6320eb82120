package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ai "github.com/graphrag-tools/kbchat"
)

// Handler executes a tool call on the server side. The arguments are
// the raw JSON object sent by the client.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// ServerTool pairs a tool definition with its handler.
type ServerTool struct {
	Tool    ai.Tool
	Handler Handler
}

// NewServer builds a stdio-ready MCP server exposing the given tools.
func NewServer(name, version string, tools []ServerTool) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, st := range tools {
		s.AddTool(ToMCPTool(st.Tool), wrapHandler(st.Handler))
	}

	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects. This is the transport used when the server runs as a
// subprocess of the chat client.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func wrapHandler(handler Handler) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := json.RawMessage("{}")
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
			}
			args = data
		}

		result, err := handler(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(result), nil
	}
}
