package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the notes pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ExtractionsTotal  *prometheus.CounterVec
	ExtractionSeconds prometheus.Histogram
	FallbacksTotal    *prometheus.CounterVec

	UploadsTotal   *prometheus.CounterVec
	ActiveStreams  prometheus.Gauge
	ExportsTotal   *prometheus.CounterVec
	StatsCacheHits *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ExtractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_extractions_total",
				Help: "Notes extractions by outcome",
			},
			[]string{"outcome"},
		),
		ExtractionSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meeting_notes_extraction_seconds",
				Help:    "Latency of the remote notes model call",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_fallbacks_total",
				Help: "Fallback notes produced, by reason",
			},
			[]string{"reason"},
		),
		UploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_uploads_total",
				Help: "Uploads received, by endpoint",
			},
			[]string{"mode"},
		),
		ActiveStreams: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "meeting_notes_active_progress_streams",
				Help: "Progress streams currently open",
			},
		),
		ExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_exports_total",
				Help: "Documents exported, by format",
			},
			[]string{"format"},
		),
		StatsCacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_stats_cache_total",
				Help: "Stats cache lookups, by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveExtraction records one model call
func (m *Metrics) ObserveExtraction(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(outcome).Inc()
	m.ExtractionSeconds.Observe(seconds)
}

// IncFallback records a fallback notes document
func (m *Metrics) IncFallback(reason string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}

// IncUpload records an upload
func (m *Metrics) IncUpload(mode string) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(mode).Inc()
}

// StreamOpened increments the active stream gauge and returns its decrement
func (m *Metrics) StreamOpened() func() {
	if m == nil {
		return func() {}
	}
	m.ActiveStreams.Inc()
	return m.ActiveStreams.Dec
}

// IncExport records an exported document
func (m *Metrics) IncExport(format string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format).Inc()
}

// ObserveStatsCache records a cache hit or miss
func (m *Metrics) ObserveStatsCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.StatsCacheHits.WithLabelValues(result).Inc()
}
