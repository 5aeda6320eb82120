package config

import (
	"errors"
	"io/fs"
	"os"
)

// PromptFile is the conventional system prompt location, read from the
// working directory.
const PromptFile = "prompt.txt"

// DefaultPrompt is used when no prompt file exists.
const DefaultPrompt = `You are a helpful assistant that can answer questions about the knowledge base.
Use the tools provided to fetch information from the knowledge base.
If you don't know the answer, say "I don't know".`

// LoadPrompt reads the system prompt from path. A missing file yields
// DefaultPrompt; any other read failure is returned. File content is
// used verbatim, without trimming.
func LoadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultPrompt, nil
		}
		return "", err
	}
	return string(data), nil
}
