// Package mcp connects the chat client to tool servers speaking the
// Model Context Protocol.
//
// The primary entry point is [Open], which launches a tool server as a
// subprocess, performs the MCP handshake over stdio, and discovers its
// tools:
//
//	channel, err := mcp.Open(ctx, mcp.ServerConfig{
//	    Command: "docker",
//	    Args:    []string{"run", "-i", "--rm", "my-tool-server"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer channel.Close()
//
// The package also exposes the server side: [NewServer] and
// [ServeStdio] build a stdio MCP server from plain handler functions,
// which is how cmd/toolserver is assembled.
package mcp
