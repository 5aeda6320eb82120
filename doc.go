// Package kbchat provides the core types for a knowledge-base chat client
// that connects an LLM reasoning agent to an external MCP tool server.
//
// The root package defines the shared vocabulary used across the module:
//
//   - [Message], [Role]: role-tagged conversation entries
//   - [Tool], [ToolCall], [ToolResult]: tool descriptors and invocations
//   - [ChatProvider]: the model capability (blocking and streaming)
//   - [Option]: per-request configuration (model, tokens, temperature, tools)
//
// Higher-level behavior lives in the sub-packages:
//
//   - [github.com/graphrag-tools/kbchat/client]: model-string routing to a provider
//   - [github.com/graphrag-tools/kbchat/mcp]: the subprocess-backed tool channel
//   - [github.com/graphrag-tools/kbchat/agent]: the reasoning/tool-call loop
//   - [github.com/graphrag-tools/kbchat/session]: the interactive conversation loop
//   - [github.com/graphrag-tools/kbchat/store]: keyed checkpoint persistence
//
// # Basic Usage
//
// Open a tool channel, assemble an agent, and run the session loop:
//
//	channel, err := mcp.Open(ctx, mcp.ServerConfig{
//	    Command: "docker",
//	    Args:    []string{"run", "-i", "--rm", "mcp/fetch"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer channel.Close()
//
//	provider, err := client.New(ctx, client.Config{
//	    Model:   "anthropic:claude-4-sonnet-latest",
//	    BaseURL: "http://localhost:8080",
//	    APIKey:  os.Getenv("LLM_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ag := agent.New(provider, channel, agent.WithSystemPrompt(prompt))
//	loop := session.NewLoop(ag, os.Stdin, os.Stdout)
//	if err := loop.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package kbchat
