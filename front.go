package fastcache

import "github.com/dgraph-io/ristretto/v2"

// front is an optional in-process layer over the durable store, holding
// raw envelopes by full namespaced key. Because envelope validation runs
// on every read, a front hit can never resurrect an expired or
// version-stale entry.
//
// Ristretto cannot enumerate its keys, so bulk operations drop the whole
// front rather than picking entries out of it; it repopulates on the next
// store hit.
type front struct {
	rc *ristretto.Cache[string, string]
}

// newFront creates a front holding up to maxCost entries (each entry has
// a cost of 1).
func newFront(maxCost int64) (*front, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &front{rc: rc}, nil
}

func (f *front) get(key string) (string, bool) {
	return f.rc.Get(key)
}

func (f *front) set(key, raw string) {
	f.rc.Set(key, raw, 1)
	f.rc.Wait()
}

func (f *front) del(key string) {
	f.rc.Del(key)
}

func (f *front) clear() {
	f.rc.Clear()
}
