package aggregators

import (
	"nginx-report/internal/models"
	"nginx-report/internal/parsers"
	"nginx-report/internal/shared/loggers"

	"github.com/mileusna/useragent"
)

// Only the first few malformed lines are worth seeing; past that the
// error counters tell the story.
const maxLoggedErrorLines = 5

//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Observe consumes one raw source line. Malformed lines are counted
	// and absorbed; they never stop the stream.
	Observe(line string)
	// Snapshot ends the streaming phase and returns the frozen state.
	// The aggregator accepts no lines afterwards; a new run needs a new
	// aggregator.
	Snapshot() *models.Snapshot
	// Degraded reports whether the parse-error ratio exceeds threshold.
	// An empty stream is never degraded.
	Degraded(threshold float64) bool
}

type aggregator struct {
	logger    loggers.Logger
	urls      map[string]*models.URLAccumulator
	agents    map[string]int64
	counters  models.GlobalCounters
	finalized bool
}

func NewAggregator(logger loggers.Logger) Aggregator {
	return &aggregator{
		logger: logger,
		urls:   make(map[string]*models.URLAccumulator),
		agents: make(map[string]int64),
	}
}

func (a *aggregator) Observe(line string) {
	if a.finalized {
		panic("aggregator: observe after snapshot")
	}

	a.counters.TotalLines++

	parsed := parsers.Parse(line)
	if !parsed.Valid {
		a.counters.ErrorLines++
		metricLinesTotal.WithLabelValues(resultFailed).Inc()
		if a.counters.ErrorLines <= maxLoggedErrorLines {
			a.logger.Debug().Str("line", line).Msg("line did not match the access-log grammar")
		}
		return
	}

	a.counters.TotalCount++
	a.counters.TotalTime += parsed.RequestTime

	acc, exists := a.urls[parsed.URL]
	if !exists {
		acc = &models.URLAccumulator{
			URL: parsed.URL,
			Seq: len(a.urls),
		}
		a.urls[parsed.URL] = acc
	}
	acc.Count++
	acc.Times = append(acc.Times, parsed.RequestTime)

	a.agents[normalizeUserAgent(parsed.UserAgent)]++
	metricLinesTotal.WithLabelValues(resultParsed).Inc()
}

func (a *aggregator) Snapshot() *models.Snapshot {
	a.finalized = true
	return &models.Snapshot{
		URLs:     a.urls,
		Counters: a.counters,
		Agents:   a.agents,
	}
}

func (a *aggregator) Degraded(threshold float64) bool {
	if a.counters.TotalLines == 0 {
		return false
	}
	return a.counters.ErrorRatio() > threshold
}

// normalizeUserAgent parses the user agent to extract its family, or
// returns the original string if parsing yields nothing.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	return ua
}
