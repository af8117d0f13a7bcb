package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus counters for backend fetches and view outcomes.
type Recorder struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	degradedViews *prometheus.CounterVec
	staleViews    *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_fetch_total",
				Help: "Backend sub-fetches by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_fetch_duration_seconds",
				Help:    "Duration of backend sub-fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		degradedViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_degraded_views_total",
				Help: "Views rendered with at least one failed sub-fetch",
			},
			[]string{"view"},
		),
		staleViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_stale_views_total",
				Help: "Views rendered from stale or fallback data",
			},
			[]string{"view"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_cache_hits_total",
				Help: "View payloads served from cache",
			},
			[]string{"view"},
		),
	}
}

// RecordFetch records one backend sub-fetch.
func (r *Recorder) RecordFetch(endpoint string, err error, seconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.fetchTotal.WithLabelValues(endpoint, outcome).Inc()
	r.fetchDuration.WithLabelValues(endpoint).Observe(seconds)
}

// RecordDegradedView records a view that lost at least one section.
func (r *Recorder) RecordDegradedView(view string) {
	r.degradedViews.WithLabelValues(view).Inc()
}

// RecordStaleView records a view rendered from fallback data.
func (r *Recorder) RecordStaleView(view string) {
	r.staleViews.WithLabelValues(view).Inc()
}

// RecordCacheHit records a view served from cache.
func (r *Recorder) RecordCacheHit(view string) {
	r.cacheHits.WithLabelValues(view).Inc()
}
