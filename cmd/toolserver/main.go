// Command toolserver is a development MCP server exposing a small
// in-memory knowledge base over stdio. It stands in for the
// containerized knowledge server so the chat client can be exercised
// locally:
//
//	go run ./cmd/kbchat -tools "go run ./cmd/toolserver"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	ai "github.com/graphrag-tools/kbchat"
	"github.com/graphrag-tools/kbchat/mcp"
)

// entries is the sample knowledge base.
var entries = map[string]string{
	"redis":      "Redis is an in-memory key-value store used for caching, queues, and session storage.",
	"postgresql": "PostgreSQL is a relational database with strong transactional guarantees and a rich type system.",
	"kafka":      "Apache Kafka is a distributed event log used for streaming pipelines and pub/sub messaging.",
	"golang":     "Go is a statically typed language designed for building simple, reliable, and efficient software.",
	"mcp":        "The Model Context Protocol lets language model clients discover and call tools exposed by servers.",
}

func main() {
	s := mcp.NewServer("kb-toolserver", "1.0.0", []mcp.ServerTool{
		{
			Tool: ai.Tool{
				Name:        "search_knowledge",
				Description: "Search the knowledge base for entries matching a query",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"query": {"type": "string", "description": "Text to search for"},
						"limit": {"type": "integer", "description": "Maximum number of results"}
					},
					"required": ["query"]
				}`),
			},
			Handler: searchKnowledge,
		},
		{
			Tool: ai.Tool{
				Name:        "get_entry",
				Description: "Fetch a knowledge base entry by its exact name",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"name": {"type": "string", "description": "Entry name"}
					},
					"required": ["name"]
				}`),
			},
			Handler: getEntry,
		},
		{
			Tool: ai.Tool{
				Name:        "list_entries",
				Description: "List the names of all knowledge base entries",
				Parameters:  json.RawMessage(`{"type": "object", "properties": {}}`),
			},
			Handler: listEntries,
		},
	})

	if err := mcp.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

func searchKnowledge(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Query == "" {
		return "", fmt.Errorf("query is required")
	}
	if params.Limit <= 0 {
		params.Limit = 5
	}

	query := strings.ToLower(params.Query)
	var matches []string
	for name, text := range entries {
		if strings.Contains(name, query) || strings.Contains(strings.ToLower(text), query) {
			matches = append(matches, fmt.Sprintf("%s: %s", name, text))
		}
	}
	sort.Strings(matches)
	if len(matches) > params.Limit {
		matches = matches[:params.Limit]
	}
	if len(matches) == 0 {
		return "No entries found.", nil
	}
	return strings.Join(matches, "\n"), nil
}

func getEntry(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	text, ok := entries[strings.ToLower(params.Name)]
	if !ok {
		return "", fmt.Errorf("no entry named %q", params.Name)
	}
	return text, nil
}

func listEntries(ctx context.Context, args json.RawMessage) (string, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "\n"), nil
}
