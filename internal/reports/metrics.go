package reports

import (
	"nginx-report/internal/shared/metrics"
)

// metricReportsPublishedTotal counts reports successfully published.
// A run publishes at most one report, so across runs of a long-lived
// wrapper process this equals the number of completed analyses.
var metricReportsPublishedTotal = metrics.NewCounter(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubReport,
		Name:      "published_total",
	},
)

// metricReportBytes records the size of rendered report bodies.
var metricReportBytes = metrics.NewHistogram(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubReport,
		Name:      "body_bytes",
		Buckets:   []float64{1 << 10, 16 << 10, 256 << 10, 1 << 20, 16 << 20},
	},
)
