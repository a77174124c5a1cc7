// Package metrics exposes Prometheus instrumentation for style providers.
//
// A nil *Metrics is valid and records nothing, so providers created without
// metrics pay no cost.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cssgo"

// Registration results.
const (
	ResultNew   = "new"
	ResultDedup = "dedup"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	// RegistrationsTotal counts Register calls.
	// Labels: result (new, dedup)
	RegistrationsTotal *prometheus.CounterVec

	// RebuildsTotal counts full rebuilds triggered by theme changes.
	RebuildsTotal prometheus.Counter

	// SkippedUpdatesTotal counts theme updates short-circuited as unchanged.
	SkippedUpdatesTotal prometheus.Counter

	// StylesheetBytes is the size of the most recently flushed stylesheet.
	StylesheetBytes prometheus.Gauge

	// RebuildDuration measures full rebuild time.
	RebuildDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RegistrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Style sheet registrations by result",
		}, []string{"result"}),
		RebuildsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Full stylesheet rebuilds after a theme change",
		}),
		SkippedUpdatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_updates_skipped_total",
			Help:      "Theme updates skipped because the theme was unchanged",
		}),
		StylesheetBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stylesheet_bytes",
			Help:      "Size of the last flushed stylesheet",
		}),
		RebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rebuild_duration_seconds",
			Help:      "Duration of full stylesheet rebuilds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.RegistrationsTotal,
			m.RebuildsTotal,
			m.SkippedUpdatesTotal,
			m.StylesheetBytes,
			m.RebuildDuration,
		)
	}
	return m
}

// RecordRegistration counts a Register call.
func (m *Metrics) RecordRegistration(isNew bool) {
	if m == nil {
		return
	}
	result := ResultDedup
	if isNew {
		result = ResultNew
	}
	m.RegistrationsTotal.WithLabelValues(result).Inc()
}

// RecordRebuild counts a rebuild and its duration.
func (m *Metrics) RecordRebuild(d time.Duration) {
	if m == nil {
		return
	}
	m.RebuildsTotal.Inc()
	m.RebuildDuration.Observe(d.Seconds())
}

// RecordSkip counts a short-circuited theme update.
func (m *Metrics) RecordSkip() {
	if m == nil {
		return
	}
	m.SkippedUpdatesTotal.Inc()
}

// RecordFlush records the size of a flushed stylesheet.
func (m *Metrics) RecordFlush(size int) {
	if m == nil {
		return
	}
	m.StylesheetBytes.Set(float64(size))
}
