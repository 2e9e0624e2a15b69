package fastcache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetcherServesFromCache(t *testing.T) {
	c, _, _, _ := testCache(t)
	ctx := t.Context()

	var calls atomic.Int32
	get := NewFetcher(c, "teamLabs", "team-42", func(_ context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"lab-a", "lab-b"}, nil
	})

	v1, err := get(ctx)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	v2, err := get(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(v1) != 2 || len(v2) != 2 {
		t.Fatalf("got %v / %v, want two labs each", v1, v2)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("fetch called %d times, want 1", n)
	}
}

func TestFetcherRefetchesAfterExpiry(t *testing.T) {
	c, _, clk, _ := testCache(t)
	ctx := t.Context()

	var calls atomic.Int32
	get := NewFetcher(c, "teamLabs", "team-42", func(_ context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"lab-a"}, nil
	})

	if _, err := get(ctx); err != nil {
		t.Fatalf("first call: %v", err)
	}
	clk.Advance(121 * time.Second)
	if _, err := get(ctx); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("fetch called %d times, want 2 (TTL elapsed)", n)
	}
}

func TestFetcherErrorPropagatesUncached(t *testing.T) {
	c, _, _, _ := testCache(t)
	ctx := t.Context()

	sentinel := errors.New("upstream down")
	var calls atomic.Int32
	get := NewFetcher(c, "workspace", "ws-1", func(_ context.Context) (string, error) {
		calls.Add(1)
		return "", sentinel
	})

	if _, err := get(ctx); !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want sentinel error", err)
	}
	if c.Has(ctx, "workspace", "ws-1") {
		t.Fatal("failed fetches must never be cached")
	}
	// The next call tries again instead of serving a poisoned entry.
	if _, err := get(ctx); !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want sentinel error", err)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("fetch called %d times, want 2", n)
	}
}
