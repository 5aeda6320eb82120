package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/graphrag-tools/kbchat"
)

// openTestChannel connects a Channel to an in-process server exposing
// the given tools.
func openTestChannel(t *testing.T, tools []ServerTool) *Channel {
	t.Helper()

	srv := NewServer("kb-test", "1.0.0", tools)
	c, err := client.NewInProcessClient(srv)
	require.NoError(t, err)

	ch, err := OpenFromClient(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { ch.Close() })
	return ch
}

func searchTool(results map[string]string) ServerTool {
	return ServerTool{
		Tool: ai.Tool{
			Name:        "search_knowledge",
			Description: "Search the knowledge base",
			Parameters:  json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}},"required":["query"]}`),
		},
		Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
			var params struct {
				Query string `json:"query"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return "", err
			}
			hit, ok := results[params.Query]
			if !ok {
				return "no results", nil
			}
			return hit, nil
		},
	}
}

func TestChannel(t *testing.T) {
	t.Run("discovers tools during open", func(t *testing.T) {
		ch := openTestChannel(t, []ServerTool{
			searchTool(nil),
			{
				Tool: ai.Tool{
					Name:        "list_entries",
					Description: "List all entries",
					Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
				},
				Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
					return "[]", nil
				},
			},
		})

		assert.Equal(t, 2, ch.Len())
		assert.True(t, ch.Has("search_knowledge"))
		assert.True(t, ch.Has("list_entries"))
		assert.False(t, ch.Has("delete_entry"))

		tools := ch.Tools()
		require.Len(t, tools, 2)
		assert.Equal(t, "search_knowledge", tools[0].Name)
		assert.Equal(t, "Search the knowledge base", tools[0].Description)
		assert.NotEmpty(t, tools[0].Parameters)
		assert.Equal(t, "list_entries", tools[1].Name)
	})

	t.Run("tool list is fixed after discovery", func(t *testing.T) {
		ch := openTestChannel(t, []ServerTool{searchTool(nil)})

		before := ch.Tools()

		// Mutating the returned slice must not affect the channel.
		before[0].Name = "mangled"
		before[0].Description = "mangled"

		after := ch.Tools()
		require.Len(t, after, 1)
		assert.Equal(t, "search_knowledge", after[0].Name)
		assert.Equal(t, "Search the knowledge base", after[0].Description)
		assert.Equal(t, 1, ch.Len())
		assert.True(t, ch.Has("search_knowledge"))
		assert.False(t, ch.Has("mangled"))
	})

	t.Run("executes a tool call", func(t *testing.T) {
		ch := openTestChannel(t, []ServerTool{
			searchTool(map[string]string{"redis": "Redis is an in-memory data store."}),
		})

		result, err := ch.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      "search_knowledge",
			Arguments: `{"query":"redis"}`,
		})
		require.NoError(t, err)

		assert.Equal(t, "call_1", result.ToolCallID)
		assert.Equal(t, "Redis is an in-memory data store.", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("handler failure becomes an error result", func(t *testing.T) {
		ch := openTestChannel(t, []ServerTool{
			{
				Tool: ai.Tool{
					Name:        "get_entry",
					Description: "Fetch one entry",
					Parameters:  json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"}}}`),
				},
				Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
					return "", errors.New("entry not found")
				},
			},
		})

		result, err := ch.Execute(context.Background(), ai.ToolCall{
			ID:        "call_2",
			Name:      "get_entry",
			Arguments: `{"name":"missing"}`,
		})
		require.NoError(t, err)

		assert.Equal(t, "call_2", result.ToolCallID)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "entry not found")
	})

	t.Run("unknown tool becomes an error result", func(t *testing.T) {
		ch := openTestChannel(t, []ServerTool{searchTool(nil)})

		result, err := ch.Execute(context.Background(), ai.ToolCall{
			ID:        "call_3",
			Name:      "no_such_tool",
			Arguments: `{}`,
		})
		require.NoError(t, err)

		assert.Equal(t, "call_3", result.ToolCallID)
		assert.True(t, result.IsError)
	})
}
