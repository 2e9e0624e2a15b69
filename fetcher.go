package fastcache

import "context"

// FetchFunc produces a fresh value, typically via a network call.
type FetchFunc[T any] func(context.Context) (T, error)

// NewFetcher adapts fetch into a getter that consults the cache first. On
// a hit the cached value is returned and fetch is never called. On a miss
// fetch runs; a successful result is written back before being returned,
// and an error propagates unchanged with nothing cached, so a transient
// failure never poisons the cache for a full TTL.
//
// There is no request coalescing: two concurrent calls during a miss both
// invoke fetch, and the last write wins.
func NewFetcher[T any](c *Cache, category, identifier string, fetch FetchFunc[T]) FetchFunc[T] {
	return func(ctx context.Context) (T, error) {
		if v, ok := Get[T](ctx, c, category, identifier); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		c.Set(ctx, category, identifier, v)
		return v, nil
	}
}
