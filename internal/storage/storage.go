// Package storage holds the durable per-session key-value slots the
// frontend keeps between page loads: the shopping cart and the backend
// bearer token. Slots are scoped by the browser's sid cookie and survive
// restarts; they are never shared across sessions.
package storage

import "context"

// Store is a named-slot store keyed by (session id, slot name).
// Mutations are whole-value writes; concurrent writers race with
// last-write-wins semantics.
type Store interface {
	// Get returns the slot value. The second result is false when the slot
	// has never been written or was deleted.
	Get(ctx context.Context, sid, slot string) (string, bool, error)
	Set(ctx context.Context, sid, slot, value string) error
	Delete(ctx context.Context, sid, slot string) error
}

// Well-known slot names.
const (
	SlotCart  = "cart"
	SlotToken = "access_token"
)
