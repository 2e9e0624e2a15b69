package fastcache

import (
	"context"
	"encoding/json"
	"strings"
)

// Stats is a point-in-time diagnostic snapshot of the namespaced entries
// in the underlying store. It is purely informational; taking a snapshot
// never removes anything (contrast with [Cache.ClearExpired]).
type Stats struct {
	// TotalEntries is the number of namespaced entries present.
	TotalEntries int
	// ExpiredEntries counts entries that are past expiry or unparseable.
	ExpiredEntries int
	// TotalSize is the summed size in bytes of the raw serialized entries.
	TotalSize int
	// EntriesByType counts entries per category name; entries whose key
	// matches no registered category are counted under "unknown".
	EntriesByType map[string]int
}

// Stats walks every namespaced entry and accumulates a [Stats] snapshot.
func (c *Cache) Stats(ctx context.Context) Stats {
	st := Stats{EntriesByType: make(map[string]int)}
	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		c.obs.Warn("stats", err)
		return st
	}
	now := c.now().UnixMilli()
	for _, key := range keys {
		raw, ok, err := c.store.GetItem(ctx, key)
		if err != nil || !ok {
			continue
		}
		st.TotalEntries++
		st.TotalSize += len(raw)
		st.EntriesByType[c.categoryOf(key)]++

		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil || now > env.ExpiresAt {
			st.ExpiredEntries++
		}
	}
	return st
}

// categoryOf recovers the category segment of a namespaced key. The
// longest registered name wins so that a category cannot shadow another
// that it prefixes.
func (c *Cache) categoryOf(key string) string {
	rest := strings.TrimPrefix(key, c.prefix)
	best := ""
	for name := range c.registry {
		if len(name) <= len(best) {
			continue
		}
		if rest == name || strings.HasPrefix(rest, name+"_") {
			best = name
		}
	}
	if best == "" {
		return "unknown"
	}
	return best
}
