// Package fastcache is a typed, TTL- and schema-version-aware cache layer
// for the FAST/Futurity client applications. Values are wrapped in a small
// JSON envelope and persisted to a pluggable durable key/value store;
// reads transparently enforce expiry and schema-version checks, so callers
// only ever see fresh data or a miss.
//
// The cache is strictly an optimization, never a source of truth: every
// operation fails soft. Storage errors, serialization errors, and corrupt
// entries degrade to a miss or a no-op and are reported through the
// injectable [Observer] instead of being returned to callers.
package fastcache

import "time"

// Category describes one named class of cached data sharing a TTL and a
// schema version (e.g. "teamLabs").
type Category struct {
	// TTL is how long an entry of this category stays fresh after a write.
	TTL time.Duration

	// SchemaVersion is an opaque label bumped whenever the shape of the
	// cached payload changes. Entries written under a different version
	// are discarded on read, so bumping the constant invalidates every
	// cached shape at once without waiting for TTLs.
	SchemaVersion string
}

// Registry maps category names to their configuration. It is static
// startup configuration; every category used with Set or Get must be
// registered, and unregistered names are a no-op on write and a miss on
// read.
type Registry map[string]Category

// DefaultRegistry returns the categories used by the Futurity dashboard.
func DefaultRegistry() Registry {
	return Registry{
		"userRelationships": {TTL: 5 * time.Minute, SchemaVersion: "1.0"},
		"teamLabs":          {TTL: 2 * time.Minute, SchemaVersion: "1.0"},
		"extendedUserData":  {TTL: 10 * time.Minute, SchemaVersion: "1.0"},
		"workspace":         {TTL: 10 * time.Minute, SchemaVersion: "1.0"},
		"whiteboard":        {TTL: 5 * time.Minute, SchemaVersion: "1.0"},
	}
}
