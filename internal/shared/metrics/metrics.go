package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	Namespace  = "nginx_report"
	SubSource  = "source"
	SubParse   = "parse"
	SubReport  = "report"
	SubAnalyze = "analyze"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounter creates a new Counter with the given CounterOpts.
// It is automatically registered with the default prometheus registry.
var NewCounter = promauto.NewCounter

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogram creates a new Histogram with the given HistogramOpts.
// It is automatically registered with the default prometheus registry.
var NewHistogram = promauto.NewHistogram

// Snapshot gathers the default registry and flattens every sample of
// this tool's namespace into a "name{labels}" -> value map. The tool has
// no metrics listener; the snapshot is logged once at the end of a run.
func Snapshot() map[string]float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil
	}

	out := make(map[string]float64)
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), Namespace+"_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			out[sampleName(family.GetName(), metric)] = sampleValue(family.GetType(), metric)
		}
	}
	return out
}

func sampleName(name string, metric *dto.Metric) string {
	labels := metric.GetLabel()
	if len(labels) == 0 {
		return name
	}

	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
	}
	sort.Strings(pairs)
	return name + "{" + strings.Join(pairs, ",") + "}"
}

func sampleValue(kind dto.MetricType, metric *dto.Metric) float64 {
	switch kind {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return metric.GetHistogram().GetSampleSum()
	default:
		return metric.GetUntyped().GetValue()
	}
}
