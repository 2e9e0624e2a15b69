package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/futurity-ai/fastcache"
	"github.com/futurity-ai/fastcache/store"
)

func TestPromObserverCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := NewPromObserver(reg)
	ctx := t.Context()

	c := fastcache.New(store.NewMemory(), fastcache.WithObserver(o))
	c.Set(ctx, "teamLabs", "team-1", []string{"a"})
	c.Has(ctx, "teamLabs", "team-1")  // hit
	c.Has(ctx, "teamLabs", "team-2")  // miss: absent
	c.Set(ctx, "bogus", "", "x")      // warn: unregistered

	if got := testutil.ToFloat64(o.hits.WithLabelValues("teamLabs")); got != 1 {
		t.Fatalf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.misses.WithLabelValues("teamLabs", "absent")); got != 1 {
		t.Fatalf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.warnings.WithLabelValues("set")); got != 1 {
		t.Fatalf("warnings = %v, want 1", got)
	}
}

func TestPromObserverDirectEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := NewPromObserver(reg)

	o.Hit("workspace")
	o.Hit("workspace")
	o.Miss("workspace", fastcache.MissExpired)
	o.Warn("clearExpired", errors.New("boom"))

	if got := testutil.ToFloat64(o.hits.WithLabelValues("workspace")); got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(o.misses.WithLabelValues("workspace", "expired")); got != 1 {
		t.Fatalf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.warnings.WithLabelValues("clearExpired")); got != 1 {
		t.Fatalf("warnings = %v, want 1", got)
	}
}
