package fastcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/futurity-ai/fastcache/store"
)

// DefaultPrefix is the key namespace prefix distinguishing this cache's
// entries from any other data sharing the underlying store.
const DefaultPrefix = "fast_cache_"

// envelope is the persisted wrapper around a cached payload. Timestamps
// are unix milliseconds.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	WrittenAt int64           `json:"writtenAt"`
	ExpiresAt int64           `json:"expiresAt"`
	Version   string          `json:"version"`
}

// Cache is a TTL- and schema-version-aware cache over a durable
// [store.KeyedStore]. Entries are addressed by category plus an optional
// identifier (pass "" for none). All methods fail soft; see the package
// documentation.
type Cache struct {
	store    store.KeyedStore
	registry Registry
	prefix   string
	obs      Observer
	now      func() time.Time
	front    *front
	sweep    *rate.Limiter
}

// New creates a Cache over st. Without options it uses [DefaultRegistry],
// [DefaultPrefix], the system clock, no front, and a 30 second minimum
// interval between failure-triggered sweeps.
func New(st store.KeyedStore, opts ...Option) *Cache {
	cfg := config{
		registry:   DefaultRegistry(),
		prefix:     DefaultPrefix,
		observer:   NoopObserver{},
		now:        time.Now,
		sweepEvery: 30 * time.Second,
	}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Cache{
		store:    st,
		registry: cfg.registry,
		prefix:   cfg.prefix,
		obs:      cfg.observer,
		now:      cfg.now,
		sweep:    rate.NewLimiter(rate.Every(cfg.sweepEvery), 1),
	}
	if cfg.frontCost > 0 {
		f, err := newFront(cfg.frontCost)
		if err != nil {
			c.obs.Warn("front", err)
		} else {
			c.front = f
		}
	}
	return c
}

// key builds the composite store key for a category and identifier.
func (c *Cache) key(category, identifier string) string {
	if identifier == "" {
		return c.prefix + category
	}
	return c.prefix + category + "_" + identifier
}

// Set stores v under category and the optional identifier. Unregistered
// categories and serialization failures are a warned no-op. A failed store
// write additionally triggers a rate-limited [Cache.ClearExpired] sweep to
// reclaim space; the write itself is not retried.
func (c *Cache) Set(ctx context.Context, category, identifier string, v any) {
	cat, ok := c.registry[category]
	if !ok {
		c.obs.Warn("set", fmt.Errorf("unregistered cache category %q", category))
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.obs.Warn("set", fmt.Errorf("marshal %s: %w", category, err))
		return
	}
	now := c.now()
	raw, err := json.Marshal(envelope{
		Data:      data,
		WrittenAt: now.UnixMilli(),
		ExpiresAt: now.Add(cat.TTL).UnixMilli(),
		Version:   cat.SchemaVersion,
	})
	if err != nil {
		c.obs.Warn("set", err)
		return
	}

	key := c.key(category, identifier)
	if err := c.store.SetItem(ctx, key, string(raw)); err != nil {
		c.obs.Warn("set", fmt.Errorf("write %s: %w", key, err))
		// A full store is the likely cause. Reclaim what we can, but never
		// more than once per sweep interval so a quota-error storm doesn't
		// become a sweep storm.
		if c.sweep.Allow() {
			c.ClearExpired(ctx)
		}
		return
	}
	if c.front != nil {
		c.front.set(key, string(raw))
	}
}

// Get loads the entry for category and the optional identifier into dest
// (a pointer, as for json.Unmarshal) and reports whether it did. Expired
// and version-stale entries are removed at the moment they are detected.
// Corrupt entries read as a miss and are left for [Cache.ClearExpired] to
// reap.
func (c *Cache) Get(ctx context.Context, category, identifier string, dest any) bool {
	cat, ok := c.registry[category]
	if !ok {
		c.obs.Warn("get", fmt.Errorf("unregistered cache category %q", category))
		c.obs.Miss(category, MissUnregistered)
		return false
	}

	key := c.key(category, identifier)
	raw, ok := c.load(ctx, key)
	if !ok {
		c.obs.Miss(category, MissAbsent)
		return false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		c.obs.Miss(category, MissCorrupt)
		return false
	}
	if c.now().UnixMilli() > env.ExpiresAt {
		c.drop(ctx, key)
		c.obs.Miss(category, MissExpired)
		return false
	}
	if env.Version != cat.SchemaVersion {
		c.drop(ctx, key)
		c.obs.Miss(category, MissStaleVersion)
		return false
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		c.obs.Warn("get", fmt.Errorf("decode %s: %w", key, err))
		c.obs.Miss(category, MissCorrupt)
		return false
	}
	c.obs.Hit(category)
	return true
}

// Get is the generic form of [Cache.Get]: it returns the cached value of
// type T, or the zero value and false on any miss.
func Get[T any](ctx context.Context, c *Cache, category, identifier string) (T, bool) {
	var v T
	if !c.Get(ctx, category, identifier, &v) {
		var zero T
		return zero, false
	}
	return v, true
}

// Has reports whether a fresh entry exists for category and the optional
// identifier. It is purely derived from [Cache.Get] and shares its side
// effects (expired and stale entries are removed).
func (c *Cache) Has(ctx context.Context, category, identifier string) bool {
	var raw json.RawMessage
	return c.Get(ctx, category, identifier, &raw)
}

// Remove deletes a single entry. Removing an absent entry is a no-op.
func (c *Cache) Remove(ctx context.Context, category, identifier string) {
	c.drop(ctx, c.key(category, identifier))
}

// ClearExpired removes every namespaced entry that is past its expiry or
// cannot be parsed. A failure on one entry never aborts the sweep.
func (c *Cache) ClearExpired(ctx context.Context) {
	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		c.obs.Warn("clearExpired", err)
		return
	}
	now := c.now().UnixMilli()
	for _, key := range keys {
		raw, ok, err := c.store.GetItem(ctx, key)
		if err != nil || !ok {
			continue
		}
		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil || now > env.ExpiresAt {
			// Unparseable entries are garbage; reap them with the expired.
			if err := c.store.RemoveItem(ctx, key); err != nil {
				c.obs.Warn("clearExpired", err)
			}
		}
	}
	if c.front != nil {
		c.front.clear()
	}
}

// ClearType removes every entry of category, regardless of identifier,
// TTL, or version.
func (c *Cache) ClearType(ctx context.Context, category string) {
	keys, err := c.store.Keys(ctx, c.prefix+category)
	if err != nil {
		c.obs.Warn("clearType", err)
		return
	}
	for _, key := range keys {
		if !c.matchesCategory(key, category) {
			continue
		}
		if err := c.store.RemoveItem(ctx, key); err != nil {
			c.obs.Warn("clearType", err)
		}
	}
	if c.front != nil {
		c.front.clear()
	}
}

// ClearAll removes every entry under the namespace prefix. Keys outside
// the prefix are never touched.
func (c *Cache) ClearAll(ctx context.Context) {
	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		c.obs.Warn("clearAll", err)
		return
	}
	for _, key := range keys {
		if err := c.store.RemoveItem(ctx, key); err != nil {
			c.obs.Warn("clearAll", err)
		}
	}
	if c.front != nil {
		c.front.clear()
	}
}

// Init sweeps expired entries and returns a snapshot of what remains.
// Call it once at application start; the returned Stats are the caller's
// to log.
func (c *Cache) Init(ctx context.Context) Stats {
	c.ClearExpired(ctx)
	return c.Stats(ctx)
}

// load reads a raw envelope by key, checking the front first and
// promoting store hits into it.
func (c *Cache) load(ctx context.Context, key string) (string, bool) {
	if c.front != nil {
		if raw, ok := c.front.get(key); ok {
			return raw, true
		}
	}
	raw, ok, err := c.store.GetItem(ctx, key)
	if err != nil {
		c.obs.Warn("get", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if c.front != nil {
		c.front.set(key, raw)
	}
	return raw, true
}

// drop deletes key from the store and the front.
func (c *Cache) drop(ctx context.Context, key string) {
	if c.front != nil {
		c.front.del(key)
	}
	if err := c.store.RemoveItem(ctx, key); err != nil {
		c.obs.Warn("remove", err)
	}
}

// matchesCategory reports whether key belongs to category. The explicit
// separator check keeps one category name from shadowing another that it
// prefixes ("team" vs "teamLabs").
func (c *Cache) matchesCategory(key, category string) bool {
	rest, ok := strings.CutPrefix(key, c.prefix+category)
	if !ok {
		return false
	}
	return rest == "" || strings.HasPrefix(rest, "_")
}
