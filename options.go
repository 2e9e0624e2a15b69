package fastcache

import "time"

// config holds the internal configuration assembled via functional options.
type config struct {
	registry   Registry
	prefix     string
	observer   Observer
	now        func() time.Time
	frontCost  int64
	sweepEvery time.Duration
}

// Option configures a Cache.
type Option func(*config)

// WithRegistry replaces the default category registry.
func WithRegistry(r Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithPrefix replaces the default key namespace prefix. Every key the
// cache writes, reads, or enumerates carries this prefix, so data outside
// it is never touched.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithObserver installs an observer for cache lifecycle events.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithClock replaces the wall clock used for TTL arithmetic. Tests use
// this to advance time deterministically.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithFront enables an in-process ristretto front holding up to maxCost
// entries in front of the durable store. Reads check the front first and
// promote store hits into it; envelope validation still applies on every
// read, so a front hit can never resurrect an expired or stale entry.
func WithFront(maxCost int64) Option {
	return func(c *config) {
		c.frontCost = maxCost
	}
}

// WithSweepEvery sets the minimum interval between the opportunistic
// expired-entry sweeps triggered by failed writes.
func WithSweepEvery(d time.Duration) Option {
	return func(c *config) {
		c.sweepEvery = d
	}
}
