// Command kbchat is an interactive chat client that connects a
// language model to a knowledge-base MCP tool server.
//
// The tool server runs as a subprocess speaking MCP over stdio. By
// default it is the containerized knowledge server; pass -tools to
// launch a different server, for example the bundled development one:
//
//	go run ./cmd/kbchat -tools "go run ./cmd/toolserver"
//
// Configuration comes from the environment (optionally via .env):
// LLM_API_MODEL, LLM_API_URL, LLM_API_KEY. The system prompt is read
// from prompt.txt when present.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/graphrag-tools/kbchat/agent"
	"github.com/graphrag-tools/kbchat/client"
	"github.com/graphrag-tools/kbchat/config"
	"github.com/graphrag-tools/kbchat/mcp"
	"github.com/graphrag-tools/kbchat/session"
	"github.com/graphrag-tools/kbchat/store"
)

// knowledgeServer is the default tool server invocation: the
// containerized knowledge-base MCP server on its compose network.
var knowledgeServer = mcp.ServerConfig{
	Command: "docker",
	Args: []string{
		"run", "-i", "--rm",
		"--network=graphrag-knowledge_mcp_net",
		"graphrag-knowledge-mcp",
		"node", "dist/index.js",
	},
}

func main() {
	toolCmd := flag.String("tools", "", "tool server command (default: containerized knowledge server)")
	flag.Parse()

	ctx := context.Background()

	cfg := config.Load()
	prompt, err := config.LoadPrompt(config.PromptFile)
	if err != nil {
		log.Fatalf("loading prompt: %v", err)
	}

	log.Printf("using model %s via %s", cfg.Model, cfg.BaseURL)

	serverCfg := knowledgeServer
	if *toolCmd != "" {
		fields := strings.Fields(*toolCmd)
		serverCfg = mcp.ServerConfig{Command: fields[0], Args: fields[1:]}
	}

	channel, err := mcp.Open(ctx, serverCfg)
	if err != nil {
		log.Fatalf("opening tool channel: %v", err)
	}
	defer channel.Close()

	log.Printf("discovered %d tools", channel.Len())

	provider, err := client.New(ctx, client.Config{
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		log.Fatalf("resolving model: %v", err)
	}

	a := agent.New(provider, channel,
		agent.WithSystemPrompt(prompt),
		agent.WithCheckpointer(store.NewMemoryAdapter()),
	)

	loop := session.NewLoop(a, os.Stdin, os.Stdout)
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("session ended: %v", err)
	}
}
