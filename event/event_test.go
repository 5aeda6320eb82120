package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/graphrag-tools/kbchat"
)

func TestEmit(t *testing.T) {
	t.Run("stamps and delivers the event", func(t *testing.T) {
		ch := NewChannel()

		Emit(ch, Event{Type: RunStart})

		ev := <-ch
		assert.Equal(t, RunStart, ev.Type)
		assert.False(t, ev.Timestamp.IsZero())
	})

	t.Run("preserves order", func(t *testing.T) {
		ch := NewChannel()

		Emit(ch, Event{Type: RunStart})
		Emit(ch, Event{Type: Snapshot, Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}}})
		Emit(ch, Event{Type: RunEnd})
		close(ch)

		var types []Type
		for ev := range ch {
			types = append(types, ev.Type)
		}
		require.Equal(t, []Type{RunStart, Snapshot, RunEnd}, types)
	})
}
