package store

import (
	"context"
	"encoding/json"
	"sync"

	ai "github.com/graphrag-tools/kbchat"
)

// MessageStore holds one conversation's history. The history is
// strictly append-only: entries are never reordered, mutated, or
// removed once added. Checkpointing serializes the whole history to an
// Adapter under a session key.
type MessageStore struct {
	mu       sync.RWMutex
	messages []ai.Message
	adapter  Adapter
}

// NewMessageStore creates an empty store backed by adapter. A nil
// adapter gets an in-memory one.
func NewMessageStore(adapter Adapter) *MessageStore {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	return &MessageStore{adapter: adapter}
}

// NewMessageStoreFrom creates a store seeded with a copy of messages.
func NewMessageStoreFrom(messages []ai.Message, adapter Adapter) *MessageStore {
	ms := NewMessageStore(adapter)
	ms.messages = copyMessages(messages)
	return ms
}

// Messages returns a copy of the history.
func (m *MessageStore) Messages() []ai.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyMessages(m.messages)
}

// Append adds messages to the end of the history.
func (m *MessageStore) Append(msgs ...ai.Message) {
	if len(msgs) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msgs...)
}

// Len returns the number of messages.
func (m *MessageStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}

// Last returns a copy of the most recent n messages, or all of them
// when fewer exist.
func (m *MessageStore) Last(n int) []ai.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	if n > len(m.messages) {
		n = len(m.messages)
	}
	return copyMessages(m.messages[len(m.messages)-n:])
}

// Sync checkpoints the history to the adapter under key.
func (m *MessageStore) Sync(ctx context.Context, key string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, err := json.Marshal(m.messages)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	return m.adapter.Set(ctx, key, raw)
}

// Reload replaces the history with the checkpoint stored under key.
// Returns ErrKeyNotFound when no checkpoint exists.
func (m *MessageStore) Reload(ctx context.Context, key string) error {
	raw, ok, err := m.adapter.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrKeyNotFound
	}

	var messages []ai.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return &SerializationError{Key: key, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = messages
	return nil
}

func copyMessages(messages []ai.Message) []ai.Message {
	if len(messages) == 0 {
		return nil
	}
	out := make([]ai.Message, len(messages))
	copy(out, messages)
	return out
}
