package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncrementDecision("UC", "accepted")
	m.IncrementDecision("UC", "accepted")
	m.IncrementDecision("ESA", "rejected")
	m.IncrementScenario("UC", "SCENARIO_5")
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveEvaluateLatency(2 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Decisions.WithLabelValues("UC", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("ESA", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Scenarios.WithLabelValues("UC", "SCENARIO_5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.IncrementDecision("UC", "skipped")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Decisions.WithLabelValues("UC", "skipped")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Decisions.WithLabelValues("UC", "skipped")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementDecision("UC", "accepted")
		m.IncrementScenario("UC", "SCENARIO_1")
		m.ObserveCache(true)
		m.ObserveEvaluateLatency(time.Second)
	})
	assert.Nil(t, m.Registry())
}
