package store

import (
	"slices"
	"testing"
)

func TestMemory_GetSetRemove(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	_, ok, err := s.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if ok {
		t.Fatal("expected absent")
	}

	if err := s.SetItem(ctx, "k", "v1"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := s.SetItem(ctx, "k", "v2"); err != nil {
		t.Fatalf("SetItem overwrite: %v", err)
	}
	v, ok, _ := s.GetItem(ctx, "k")
	if !ok || v != "v2" {
		t.Fatalf("got %q ok=%v, want v2", v, ok)
	}

	if err := s.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if _, ok, _ := s.GetItem(ctx, "k"); ok {
		t.Fatal("expected removed")
	}
	// Removing again is not an error.
	if err := s.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("RemoveItem absent: %v", err)
	}
}

func TestMemory_Keys(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	for _, k := range []string{"fast_cache_a", "fast_cache_b", "other"} {
		if err := s.SetItem(ctx, k, "x"); err != nil {
			t.Fatalf("SetItem %s: %v", k, err)
		}
	}
	keys, err := s.Keys(ctx, "fast_cache_")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"fast_cache_a", "fast_cache_b"}
	if !slices.Equal(keys, want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
}
