// SPDX-License-Identifier: MIT

package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the calculator collectors. The zero value and the instance
// returned for a disabled config are no-ops.
type Metrics struct {
	operations     *prometheus.CounterVec
	failures       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	historyEntries prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics registers the collectors in a fresh registry.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{}, nil
	}

	ns := cfg.Namespace
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "operations_total",
				Help:      "Engine operations by name and outcome",
			},
			[]string{"op", "status"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "failures_total",
				Help:      "Failed operations by error kind",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "operation_duration_seconds",
				Help:      "Engine operation latency",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"op"},
		),
		historyEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: ns,
				Name:      "history_entries",
				Help:      "Records currently held in the history log",
			},
		),
	}
	if err := m.registry.Register(m.operations); err != nil {
		return nil, err
	}
	m.registry.MustRegister(m.failures, m.duration, m.historyEntries)

	return m, nil
}

// Enabled reports whether the collectors are live.
func (m *Metrics) Enabled() bool { return m != nil && m.registry != nil }

// RecordOperation counts one operation and observes its latency.
func (m *Metrics) RecordOperation(op, status string, d time.Duration) {
	if !m.Enabled() {
		return
	}
	m.operations.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordFailure counts one failure of the given kind.
func (m *Metrics) RecordFailure(kind string) {
	if !m.Enabled() {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}

// SetHistoryEntries publishes the current history length.
func (m *Metrics) SetHistoryEntries(n int) {
	if !m.Enabled() {
		return
	}
	m.historyEntries.Set(float64(n))
}

// Gatherer exposes the registry, or nil when disabled.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if !m.Enabled() {
		return nil
	}

	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if !m.Enabled() {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
