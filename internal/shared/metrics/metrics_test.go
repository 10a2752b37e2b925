package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CollectsNamespaceCounters(t *testing.T) {
	counter := NewCounterVec(
		CounterOpts{
			Namespace: Namespace,
			Subsystem: "selftest",
			Name:      "events_total",
		},
		[]string{"kind"},
	)
	counter.WithLabelValues("a").Inc()
	counter.WithLabelValues("a").Inc()
	counter.WithLabelValues("b").Inc()

	snap := Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 2.0, snap[`nginx_report_selftest_events_total{kind="a"}`])
	assert.Equal(t, 1.0, snap[`nginx_report_selftest_events_total{kind="b"}`])
}

func TestSnapshot_IgnoresForeignNamespaces(t *testing.T) {
	snap := Snapshot()
	for name := range snap {
		assert.Contains(t, name, Namespace+"_")
	}
}
