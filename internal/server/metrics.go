package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics registered against the default registerer, so the bare
// promhttp.Handler() mounted at /metrics exposes them alongside the Go
// runtime defaults.
var (
	searchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksentry",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total number of search requests handled, by query mode.",
		},
		[]string{"mode"},
	)

	searchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worksentry",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search request latency in seconds, by query mode.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		},
		[]string{"mode"},
	)

	indexOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksentry",
			Subsystem: "index",
			Name:      "operations_total",
			Help:      "Total number of add-folder, remove-folder, and rebuild operations handled.",
		},
		[]string{"operation"},
	)

	documentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "worksentry",
			Subsystem: "index",
			Name:      "documents_total",
			Help:      "Current number of documents in the index, sampled after each write operation.",
		},
	)
)

// observeSearch records one search request's mode and latency.
func observeSearch(mode string, start time.Time) {
	searchRequestsTotal.WithLabelValues(mode).Inc()
	searchDurationSeconds.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// recordIndexOperation counts one add_folder/remove_folder/rebuild call and
// resamples the current document count, best-effort.
func (s *Server) recordIndexOperation(operation string) {
	indexOperationsTotal.WithLabelValues(operation).Inc()
	if count, err := s.engine.DocumentCount(); err == nil {
		documentsTotal.Set(float64(count))
	}
}
