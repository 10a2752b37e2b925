package app

import (
	"context"
	"fmt"

	"nginx-report/internal/analyzers"
	"nginx-report/internal/reports"
	"nginx-report/internal/shared/configs"
	"nginx-report/internal/shared/filestorages"
	"nginx-report/internal/shared/loggers"
	"nginx-report/internal/shared/metrics"
	"nginx-report/internal/shared/ulid"
)

// App holds all application dependencies for one analyzer run.
type App struct {
	config          *configs.Config
	appLogger       loggers.Logger
	analyzerService analyzers.AnalyzerService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Logging.Level, config.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "nginx-report").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	// Initialize report storage
	fileStorage, err := filestorages.NewFileStorage(config.Report.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}
	reportStore := reports.NewReportStore(fileStorage)

	// Initialize analyzer service
	analyzerService := analyzers.NewAnalyzerService(analyzers.Options{
		LogDir:        config.Log.Dir,
		ReportSize:    config.Report.Size,
		MaxErrorRatio: config.Analyze.MaxErrorRatio,
	}, reportStore)

	return &App{
		config:          config,
		appLogger:       appLogger,
		analyzerService: analyzerService,
	}, nil
}

// Run executes one analysis end to end and logs the outcome. The
// returned error, if any, is a svcerrors.ServiceError carrying the
// process exit code.
func (app *App) Run(ctx context.Context) error {
	app.appLogger.Info().
		Msgf("Starting nginx-report (log_dir=%s, report_dir=%s, report_size=%d, max_error_ratio=%.2f)",
			app.config.Log.Dir,
			app.config.Report.Dir,
			app.config.Report.Size,
			app.config.Analyze.MaxErrorRatio)

	ctx = app.appLogger.WithContext(ctx)

	summary, svcErr := app.analyzerService.RunReport(ctx)
	if svcErr != nil {
		if svcErr.IsCleanStop() {
			app.appLogger.Info().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg(svcErr.Message)
			return svcErr
		}
		app.appLogger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg(svcErr.Message)
		return svcErr
	}

	logEvent := app.appLogger.Info().
		Int64(loggers.FieldTotalLines, summary.TotalLines).
		Int64(loggers.FieldErrorLines, summary.ErrorLines).
		Int("unique_urls", summary.UniqueURLs).
		Int("reported", summary.Reported).
		Bool("degraded", summary.Degraded).
		Str(loggers.FieldReportKey, summary.ReportKey)
	if len(summary.TopAgents) > 0 {
		logEvent = logEvent.Interface("top_agents", summary.TopAgents)
	}
	logEvent.Msg("run completed")

	app.appLogger.Debug().
		Interface("counters", metrics.Snapshot()).
		Msg("run metrics")

	return nil
}
