// Package prom provides a Prometheus-backed metrics.Recorder for hosts that
// embed the ledger engine and already scrape a registry.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exports applied/rejected counters through a Prometheus registry.
type Recorder struct {
	applied  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "txledger",
			Name:      "events_applied_total",
			Help:      "Events successfully applied to the ledger.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "txledger",
			Name:      "events_rejected_total",
			Help:      "Events ignored by the ledger, by rejection reason.",
		}, []string{"type", "reason"}),
	}
	reg.MustRegister(r.applied, r.rejected)
	return r
}

// Applied implements metrics.Recorder.
func (r *Recorder) Applied(eventType string) {
	r.applied.WithLabelValues(eventType).Inc()
}

// Rejected implements metrics.Recorder.
func (r *Recorder) Rejected(eventType, reason string) {
	r.rejected.WithLabelValues(eventType, reason).Inc()
}
