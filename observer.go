package fastcache

// MissReason classifies why a read returned no data.
type MissReason string

const (
	// MissAbsent means no entry existed under the key.
	MissAbsent MissReason = "absent"
	// MissExpired means the entry's TTL had elapsed; it was removed.
	MissExpired MissReason = "expired"
	// MissStaleVersion means the entry was written under an older schema
	// version; it was removed.
	MissStaleVersion MissReason = "staleVersion"
	// MissCorrupt means the stored entry could not be decoded.
	MissCorrupt MissReason = "corrupt"
	// MissUnregistered means the category has no registered configuration.
	MissUnregistered MissReason = "unregistered"
)

// Observer receives cache lifecycle events. The cache calls it inline, so
// implementations must be safe for concurrent use and must not block.
type Observer interface {
	// Hit is called when a read returns cached data.
	Hit(category string)

	// Miss is called when a read returns nothing, with the reason.
	Miss(category string, reason MissReason)

	// Warn is called when an internal operation fails. The cache swallows
	// the error; Warn is the only place it becomes visible.
	Warn(op string, err error)
}

// NoopObserver ignores all events. It is the default when no observer is
// configured, so the cache never needs nil checks.
type NoopObserver struct{}

func (NoopObserver) Hit(string)              {}
func (NoopObserver) Miss(string, MissReason) {}
func (NoopObserver) Warn(string, error)      {}
