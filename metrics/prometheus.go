// Package metrics provides a Prometheus-backed fastcache.Observer so that
// hit rates and swallowed failures are visible without any logging.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/futurity-ai/fastcache"
)

// PromObserver counts cache lifecycle events in Prometheus counters.
type PromObserver struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	warnings *prometheus.CounterVec
}

// NewPromObserver registers the fastcache counters on reg and returns the
// observer. Pass prometheus.DefaultRegisterer to use the process-wide
// registry.
func NewPromObserver(reg prometheus.Registerer) *PromObserver {
	o := &PromObserver{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastcache_hits_total",
			Help: "Cache reads served from a fresh entry.",
		}, []string{"category"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastcache_misses_total",
			Help: "Cache reads that returned nothing, by reason.",
		}, []string{"category", "reason"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastcache_warnings_total",
			Help: "Internal failures swallowed by the cache, by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(o.hits, o.misses, o.warnings)
	return o
}

// Hit implements fastcache.Observer.
func (o *PromObserver) Hit(category string) {
	o.hits.WithLabelValues(category).Inc()
}

// Miss implements fastcache.Observer.
func (o *PromObserver) Miss(category string, reason fastcache.MissReason) {
	o.misses.WithLabelValues(category, string(reason)).Inc()
}

// Warn implements fastcache.Observer. The error itself is not recorded;
// attach a logging observer as well if the message matters.
func (o *PromObserver) Warn(op string, _ error) {
	o.warnings.WithLabelValues(op).Inc()
}
