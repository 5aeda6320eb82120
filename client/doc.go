// Package client resolves a model spec string to a configured chat
// provider. A spec has the form "provider:model", for example
// "anthropic:claude-4-sonnet-latest" or "openai:gpt-4o". When the
// provider prefix is omitted it is inferred from the model name.
package client
