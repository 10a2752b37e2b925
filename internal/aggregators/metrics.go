package aggregators

import (
	"nginx-report/internal/shared/metrics"
)

// metricLinesTotal counts every consumed source line by parse result.
//
// The result label is "parsed" for lines that matched the access-log
// grammar and "failed" for lines that did not. Failed lines never reach
// the per-URL accumulators.
var metricLinesTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubParse,
		Name:      "lines_total",
	},
	[]string{"result"},
)

const (
	resultParsed = "parsed"
	resultFailed = "failed"
)
