package analyzers

import (
	"fmt"

	"nginx-report/internal/shared/svcerrors"
)

const (
	codeLogDirInvalid          = "SRC_1000"
	codeNoFreshLogs            = "SRC_1001"
	codeReportAlreadyPublished = "RPT_1000"

	codeInternalSourceFailed      = "SRC_9000"
	codeInternalRenderFailed      = "RPT_9000"
	codeInternalReportStoreFailed = "RPT_9001"
	codeRunCanceled               = "SYS_1000"
)

// errLogDirInvalid returns an error when the configured log directory cannot be scanned.
func errLogDirInvalid(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLogDirInvalid, "log directory cannot be scanned", cause)
}

// errNoFreshLogs returns an error when the log directory holds no candidates.
// The run has nothing to do and stops cleanly.
func errNoFreshLogs(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoFreshLogs, "no fresh nginx access-log files", cause)
}

// errReportAlreadyPublished returns an error when the discovered date's report already exists.
func errReportAlreadyPublished(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyPublished, fmt.Sprintf("report %q already published", key), cause)
}

// errRunCanceled returns an error when the run's context is canceled
// before the pipeline finishes. It keeps the context error in its chain
// so callers can tell interruption apart from other internal failures.
func errRunCanceled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeRunCanceled, fmt.Errorf("runCanceled: %w", cause))
}

// errInternalSourceFailed returns an error when the log source cannot be opened or read.
func errInternalSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceFailed, fmt.Errorf("sourceFailed: %w", cause))
}

// errInternalRenderFailed returns an error when report rendering fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
