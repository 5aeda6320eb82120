package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		m := NewMemoryAdapter()

		v, ok, err := m.Get(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("set and get", func(t *testing.T) {
		m := NewMemoryAdapter()

		err := m.Set(ctx, "thread", json.RawMessage(`["a","b"]`))
		require.NoError(t, err)

		v, ok, err := m.Get(ctx, "thread")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `["a","b"]`, string(v))
	})

	t.Run("set overwrites", func(t *testing.T) {
		m := NewMemoryAdapter()

		require.NoError(t, m.Set(ctx, "k", json.RawMessage(`1`)))
		require.NoError(t, m.Set(ctx, "k", json.RawMessage(`2`)))

		v, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `2`, string(v))

		n, err := m.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("delete and has", func(t *testing.T) {
		m := NewMemoryAdapter()
		require.NoError(t, m.Set(ctx, "k", json.RawMessage(`1`)))

		ok, err := m.Has(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, m.Delete(ctx, "k"))

		ok, err = m.Has(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys and clear", func(t *testing.T) {
		m := NewMemoryAdapter()
		require.NoError(t, m.Set(ctx, "a", json.RawMessage(`1`)))
		require.NoError(t, m.Set(ctx, "b", json.RawMessage(`2`)))

		keys, err := m.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, keys)

		require.NoError(t, m.Clear(ctx))

		n, err := m.Len(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
