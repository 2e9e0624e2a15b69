package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a KeyedStore backed by a Redis instance. Unlike per-profile
// browser storage a Redis store is shared between clients; the cache
// layer's envelope TTLs remain the source of expiry truth, so entries are
// written without a Redis-side expiration.
type Redis struct {
	rdb *redis.Client
}

// NewRedis creates a Redis-backed store.
func NewRedis(addr, password string, db int) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{rdb: rdb}
}

// GetItem returns the value stored under key.
func (s *Redis) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// SetItem stores value under key with no Redis-side expiration.
func (s *Redis) SetItem(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

// RemoveItem deletes key.
func (s *Redis) RemoveItem(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Keys enumerates keys under prefix using SCAN, so large keyspaces don't
// block the server the way KEYS would.
func (s *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

// Ping checks the Redis connection.
func (s *Redis) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (s *Redis) Close() error {
	return s.rdb.Close()
}
