package store

import (
	"context"
	"encoding/json"
)

// Adapter is the persistence capability checkpoints are written
// through. Values are opaque JSON documents keyed by string.
// Implementations must be safe for concurrent use.
type Adapter interface {
	// Get retrieves the value stored under key. The second return is
	// false when the key does not exist.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Keys lists every stored key, in no particular order.
	Keys(ctx context.Context) ([]string, error)

	// Len counts the stored keys.
	Len(ctx context.Context) (int, error)

	// Clear removes everything.
	Clear(ctx context.Context) error
}
