// Package metrics exports cache lifecycle events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vireo-labs/viewcache/types"
)

// Prometheus implements types.Metrics on Prometheus counters. Register it
// through the cache Config to export hit/miss/eviction/expiry rates and
// compression savings.
type Prometheus struct {
	Hits             prometheus.Counter
	Misses           prometheus.Counter
	Evictions        prometheus.Counter
	Expirations      prometheus.Counter
	Refreshes        prometheus.Counter
	SavedBytes       prometheus.Counter
}

var _ types.Metrics = (*Prometheus)(nil)

// NewPrometheus creates and registers the collectors on the default
// registerer under the given namespace.
func NewPrometheus(namespace string) *Prometheus {
	return NewPrometheusWith(namespace, prometheus.DefaultRegisterer)
}

// NewPrometheusWith registers the collectors on an explicit registerer.
// Tests pass a private registry to avoid duplicate-registration panics.
func NewPrometheusWith(namespace string, reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total reads that returned a live value",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total reads that found no usable value",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total entries removed to satisfy capacity budgets",
		}),
		Expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_expirations_total",
			Help:      "Total entries removed because their TTL elapsed",
		}),
		Refreshes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_refreshes_total",
			Help:      "Total reads that triggered the refresh hook",
		}),
		SavedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_compression_saved_bytes_total",
			Help:      "Total bytes saved by storing payloads compressed",
		}),
	}
}

func (p *Prometheus) Hit()      { p.Hits.Inc() }
func (p *Prometheus) Miss()     { p.Misses.Inc() }
func (p *Prometheus) Eviction() { p.Evictions.Inc() }
func (p *Prometheus) Expire()   { p.Expirations.Inc() }
func (p *Prometheus) Refresh()  { p.Refreshes.Inc() }

func (p *Prometheus) CompressionSaved(bytes int64) {
	p.SavedBytes.Add(float64(bytes))
}
