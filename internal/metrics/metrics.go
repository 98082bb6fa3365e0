// Package metrics exposes evaluation counters and latencies
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for case evaluation. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Decision statuses by benefit and status
	Decisions *prometheus.CounterVec

	// Scenarios selected for accepted decisions
	Scenarios *prometheus.CounterVec

	// Report cache lookups by result
	CacheLookups *prometheus.CounterVec

	// Full evaluation latency including extraction and rendering
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance registered on its own registry, so several
// instances can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entitlement_decisions_total",
			Help: "Total decisions by benefit and status",
		}, []string{"benefit", "status"}),

		Scenarios: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entitlement_scenarios_total",
			Help: "Total accepted decisions by benefit and scenario",
		}, []string{"benefit", "scenario"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "entitlement_cache_lookups_total",
			Help: "Report cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "entitlement_evaluate_duration_seconds",
			Help:    "Duration of a full case evaluation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncrementDecision records a decision status
func (m *Metrics) IncrementDecision(benefit, status string) {
	if m != nil {
		m.Decisions.WithLabelValues(benefit, status).Inc()
	}
}

// IncrementScenario records the scenario of an accepted decision
func (m *Metrics) IncrementScenario(benefit, scenario string) {
	if m != nil {
		m.Scenarios.WithLabelValues(benefit, scenario).Inc()
	}
}

// ObserveCache records a cache hit or miss
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveEvaluateLatency records the total evaluation duration
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
