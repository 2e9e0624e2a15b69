// Package store defines the durable key/value contract the cache persists
// into, together with in-memory, Redis, and SQLite implementations.
package store

import "context"

// KeyedStore is the minimal storage surface the cache layer needs: string
// blobs addressed by string key, plus key enumeration. It mirrors the
// per-origin browser storage the dashboard originally persisted into.
//
// Implementations must be safe for concurrent use. No transactional
// guarantees are assumed beyond per-call atomicity; the cache layer owns
// every key under its namespace prefix and never touches keys outside it.
type KeyedStore interface {
	// GetItem returns the value stored under key. The boolean reports
	// whether the key was present.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Keys returns every key currently present that starts with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
