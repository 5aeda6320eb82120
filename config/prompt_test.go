package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompt(t *testing.T) {
	t.Run("missing file falls back to default", func(t *testing.T) {
		prompt, err := LoadPrompt(filepath.Join(t.TempDir(), "prompt.txt"))

		require.NoError(t, err)
		assert.Equal(t, DefaultPrompt, prompt)
	})

	t.Run("file content used verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.txt")
		require.NoError(t, os.WriteFile(path, []byte("X"), 0o644))

		prompt, err := LoadPrompt(path)

		require.NoError(t, err)
		assert.Equal(t, "X", prompt)
	})

	t.Run("trailing whitespace preserved", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.txt")
		require.NoError(t, os.WriteFile(path, []byte("Answer briefly.\n"), 0o644))

		prompt, err := LoadPrompt(path)

		require.NoError(t, err)
		assert.Equal(t, "Answer briefly.\n", prompt)
	})
}
