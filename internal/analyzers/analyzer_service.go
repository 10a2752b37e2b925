package analyzers

import (
	"context"
	"errors"
	"sort"
	"time"

	"nginx-report/internal/aggregators"
	"nginx-report/internal/models"
	"nginx-report/internal/reports"
	"nginx-report/internal/shared/filestorages"
	"nginx-report/internal/shared/loggers"
	"nginx-report/internal/shared/svcerrors"
	"nginx-report/internal/sources"
	"nginx-report/internal/stats"
)

// topAgentCount limits the user-agent breakdown in the run summary.
const topAgentCount = 5

// cancelCheckInterval is the number of source lines consumed between
// context checks. The fold itself has no suspension points; this keeps
// Ctrl+C responsive on multi-gigabyte logs without a per-line check.
const cancelCheckInterval = 4096

// Options are the knobs one analyzer run honors.
type Options struct {
	LogDir        string
	ReportSize    int
	MaxErrorRatio float64
}

//go:generate mockgen -source=analyzer_service.go -destination=./mocks/analyzer_service_mock.go -package=mocks
type AnalyzerService interface {
	// RunReport executes one full analysis: discover the freshest log,
	// fold it into per-URL statistics, and publish the top-N report.
	// The pipeline is a single linear pass; parse failures are absorbed
	// and counted, only source- and publish-level problems surface.
	RunReport(ctx context.Context) (*models.RunSummary, *svcerrors.ServiceError)
}

type analyzerService struct {
	opts        Options
	reportStore reports.ReportStore
}

func NewAnalyzerService(opts Options, reportStore reports.ReportStore) AnalyzerService {
	return &analyzerService{opts: opts, reportStore: reportStore}
}

func (s *analyzerService) RunReport(ctx context.Context) (*models.RunSummary, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	started := time.Now()
	defer func() {
		metricRunDurationSeconds.Observe(time.Since(started).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, errRunCanceled(err)
	}

	logFile, err := sources.FindLatest(s.opts.LogDir)
	if err != nil {
		if errors.Is(err, sources.ErrNoFreshLogs) {
			return nil, errNoFreshLogs(err)
		}
		return nil, errLogDirInvalid(err)
	}
	logger.Info().
		Str(loggers.FieldLogFile, logFile.Path).
		Str(loggers.FieldLogDate, logFile.Date.Format("2006-01-02")).
		Msg("fresh log file selected")

	reportKey := reports.ReportKey(logFile.Date)
	exists, err := s.reportStore.Exists(ctx, logFile.Date)
	if err != nil {
		return nil, errInternalReportStoreFailed(err)
	}
	if exists {
		return nil, errReportAlreadyPublished(reportKey, nil)
	}

	snapshot, degraded, svcErr := s.consume(ctx, logFile)
	if svcErr != nil {
		return nil, svcErr
	}

	if degraded {
		metricRunsDegradedTotal.Inc()
		logger.Warn().
			Int64(loggers.FieldTotalLines, snapshot.Counters.TotalLines).
			Int64(loggers.FieldErrorLines, snapshot.Counters.ErrorLines).
			Float64("error_ratio", snapshot.Counters.ErrorRatio()).
			Float64("max_error_ratio", s.opts.MaxErrorRatio).
			Msg("parse-error ratio above tolerance, report is degraded")
	}

	finalized := stats.Finalize(snapshot)
	selected := stats.SelectTop(finalized, s.opts.ReportSize)

	body, err := reports.Render(selected, degraded)
	if err != nil {
		return nil, errInternalRenderFailed(err)
	}

	publishedKey, err := s.reportStore.Publish(ctx, logFile.Date, body)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return nil, errReportAlreadyPublished(reportKey, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	logger.Info().Str(loggers.FieldReportKey, publishedKey).Msg("report published")

	return &models.RunSummary{
		LogFile:    logFile.Path,
		ReportKey:  publishedKey,
		TotalLines: snapshot.Counters.TotalLines,
		ErrorLines: snapshot.Counters.ErrorLines,
		TotalCount: snapshot.Counters.TotalCount,
		UniqueURLs: len(snapshot.URLs),
		Reported:   len(selected),
		ErrorRatio: snapshot.Counters.ErrorRatio(),
		Degraded:   degraded,
		TopAgents:  topAgents(snapshot.Agents, topAgentCount),
	}, nil
}

// consume streams every line of the log file through a fresh aggregator
// and returns the frozen snapshot plus its degradation verdict.
func (s *analyzerService) consume(ctx context.Context, logFile models.LogFile) (*models.Snapshot, bool, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	source, err := sources.Open(logFile.Path)
	if err != nil {
		return nil, false, errInternalSourceFailed(err)
	}
	defer source.Close()

	aggregator := aggregators.NewAggregator(*logger)
	var consumed int64
	for source.Scan() {
		aggregator.Observe(source.Text())
		consumed++
		if consumed%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, false, errRunCanceled(err)
			}
		}
	}
	if err := source.Err(); err != nil {
		return nil, false, errInternalSourceFailed(err)
	}

	degraded := aggregator.Degraded(s.opts.MaxErrorRatio)
	return aggregator.Snapshot(), degraded, nil
}

// topAgents returns the n most frequent normalized agent families,
// most frequent first, names breaking count ties.
func topAgents(agents map[string]int64, n int) []models.AgentCount {
	if len(agents) == 0 || n <= 0 {
		return nil
	}

	ranked := make([]models.AgentCount, 0, len(agents))
	for agent, count := range agents {
		ranked = append(ranked, models.AgentCount{Agent: agent, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Agent < ranked[j].Agent
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
