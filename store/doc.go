// Package store provides the keyed checkpoint capability for conversation
// state. An [Adapter] is an opaque key-value persistence backend; a
// [MessageStore] is an append-only conversation history that can be
// checkpointed under a session key.
package store
