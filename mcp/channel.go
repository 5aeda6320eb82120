package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	ai "github.com/graphrag-tools/kbchat"
)

// ServerConfig describes how to launch a tool server subprocess.
type ServerConfig struct {
	// Command is the executable to run.
	Command string
	// Args are passed to the command.
	Args []string
	// Env entries (KEY=VALUE) are added to the subprocess environment.
	Env []string
}

// Channel is a connection to a running MCP tool server. The tool list
// is discovered once during Open and does not change for the life of
// the channel, so reads need no locking.
type Channel struct {
	client *client.Client
	tools  []ai.Tool
	byName map[string]ai.Tool
}

// Open launches the configured tool server, performs the MCP
// initialize handshake over stdio, and discovers its tools. The caller
// owns the returned channel and must Close it to terminate the
// subprocess.
func Open(ctx context.Context, cfg ServerConfig) (*Channel, error) {
	c, err := client.NewStdioMCPClient(cfg.Command, cfg.Env, cfg.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to launch tool server: %w", err)
	}
	return openFromClient(ctx, c)
}

// OpenFromClient builds a Channel on top of an existing MCP client.
// The client must not have been started yet.
func OpenFromClient(ctx context.Context, c *client.Client) (*Channel, error) {
	return openFromClient(ctx, c)
}

func openFromClient(ctx context.Context, c *client.Client) (*Channel, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "kbchat",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	result, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	ch := &Channel{
		client: c,
		tools:  make([]ai.Tool, 0, len(result.Tools)),
		byName: make(map[string]ai.Tool, len(result.Tools)),
	}
	for _, t := range result.Tools {
		converted := FromMCPTool(t)
		ch.tools = append(ch.tools, converted)
		ch.byName[converted.Name] = converted
	}

	return ch, nil
}

// Close terminates the connection and the tool server subprocess.
func (c *Channel) Close() error {
	return c.client.Close()
}

// Tools returns the discovered tools in the order the server listed
// them. The returned slice is a copy.
func (c *Channel) Tools() []ai.Tool {
	tools := make([]ai.Tool, len(c.tools))
	copy(tools, c.tools)
	return tools
}

// Has reports whether the server exposes a tool with the given name.
func (c *Channel) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Len returns the number of discovered tools.
func (c *Channel) Len() int {
	return len(c.tools)
}

// Execute calls a tool on the server. A tool-level failure is returned
// as an error result rather than an error, so the conversation can
// continue with the model seeing the failure.
func (c *Channel) Execute(ctx context.Context, call ai.ToolCall) (ai.ToolResult, error) {
	req := ToMCPCallToolRequest(call)

	result, err := c.client.CallTool(ctx, req)
	if err != nil {
		return ai.ToolResult{
			ToolCallID: call.ID,
			Content:    err.Error(),
			IsError:    true,
		}, nil
	}

	return FromMCPCallToolResult(call.ID, result), nil
}
