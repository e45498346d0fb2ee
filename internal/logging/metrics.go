// internal/logging/metrics.go
package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Suppression reasons.
const (
	reasonBenchmark = "benchmark"
	reasonThreshold = "threshold"
)

// Report kinds.
const (
	kindBreadcrumb = "breadcrumb"
	kindError      = "error"
)

// Metrics holds Prometheus counters for the logger. A nil *Metrics is valid
// and records nothing.
//
// Metrics (namespace defaults to "walletlog"):
//   - <ns>_entries_total{level} - console writes
//   - <ns>_suppressed_total{level,reason} - calls dropped by benchmark window or threshold
//   - <ns>_reports_total{kind} - records forwarded to the reporter
//   - <ns>_reporter_panics_total - reporter panics recovered
type Metrics struct {
	EntriesTotal        *prometheus.CounterVec
	SuppressedTotal     *prometheus.CounterVec
	ReportsTotal        *prometheus.CounterVec
	ReporterPanicsTotal prometheus.Counter
}

// NewMetrics creates and registers logger metrics on reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_total",
				Help:      "Total number of log entries written to the console",
			},
			[]string{"level"},
		),
		SuppressedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suppressed_total",
				Help:      "Total number of log calls suppressed before reaching the console",
			},
			[]string{"level", "reason"}, // reason: "benchmark" or "threshold"
		),
		ReportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_total",
				Help:      "Total number of records forwarded to the error reporter",
			},
			[]string{"kind"}, // "breadcrumb" or "error"
		),
		ReporterPanicsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reporter_panics_total",
				Help:      "Total number of panics recovered from the error reporter",
			},
		),
	}
}

func (m *Metrics) entry(label string) {
	if m == nil {
		return
	}
	m.EntriesTotal.WithLabelValues(label).Inc()
}

func (m *Metrics) suppressed(label, reason string) {
	if m == nil {
		return
	}
	m.SuppressedTotal.WithLabelValues(label, reason).Inc()
}

func (m *Metrics) report(kind string) {
	if m == nil {
		return
	}
	m.ReportsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) reporterPanic() {
	if m == nil {
		return
	}
	m.ReporterPanicsTotal.Inc()
}
