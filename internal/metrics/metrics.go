package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gstcheck"

var durationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics covers the lookup flow. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Lookups          *prometheus.CounterVec
	CacheResults     *prometheus.CounterVec
	SharedFetches    prometheus.Counter
	UpstreamDuration *prometheus.HistogramVec
}

// New registers the lookup metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Lookups by terminal state (success, not_found, error, invalid).",
		}, []string{"outcome"}),
		CacheResults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_results_total",
			Help:      "Lookup cache hits and misses per tier.",
		}, []string{"tier", "result"}),
		SharedFetches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shared_fetches_total",
			Help:      "Lookups whose upstream request was shared with concurrent lookups of the same GSTIN.",
		}),
		UpstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of GST return API requests by result.",
			Buckets:   durationBuckets,
		}, []string{"result"}),
	}
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCache(tier string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheResults.WithLabelValues(tier, result).Inc()
}

func (m *Metrics) IncrementSharedFetch() {
	if m == nil {
		return
	}
	m.SharedFetches.Inc()
}

// ObserveUpstream records an upstream call started at start.
func (m *Metrics) ObserveUpstream(result string, start time.Time) {
	if m == nil {
		return
	}
	m.UpstreamDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
