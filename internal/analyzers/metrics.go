package analyzers

import (
	"nginx-report/internal/shared/metrics"
)

// metricRunDurationSeconds records wall time of whole analyzer runs,
// from log discovery to report publish.
var metricRunDurationSeconds = metrics.NewHistogram(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAnalyze,
		Name:      "run_duration_seconds",
		Buckets:   metrics.DefBuckets,
	},
)

// metricRunsDegradedTotal counts runs whose parse-error ratio exceeded
// the configured tolerance. Degraded runs still publish a report.
var metricRunsDegradedTotal = metrics.NewCounter(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAnalyze,
		Name:      "runs_degraded_total",
	},
)
