package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	changes         *prometheus.CounterVec
	cleared         *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	sessionsActive  prometheus.Gauge
}

// NewMetrics registers the collectors on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_changes_total",
			Help: "Filter changes applied, by dimension.",
		}, []string{"dimension"}),
		cleared: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_cleared_selections_total",
			Help: "Selections cleared because they were no longer selectable, by dimension.",
		}, []string{"dimension"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_rejected_changes_total",
			Help: "Filter changes rejected, by reason.",
		}, []string{"reason"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cascade_sessions_created_total",
			Help: "Sessions created.",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cascade_sessions_active",
			Help: "Sessions currently held in memory.",
		}),
	}
	m.registry.MustRegister(m.changes, m.cleared, m.rejected, m.sessionsCreated, m.sessionsActive)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
