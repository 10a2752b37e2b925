package sources

import "errors"

var (
	// ErrLogDirNotFound means the configured log directory does not exist.
	ErrLogDirNotFound = errors.New("log directory not found")
	// ErrNoFreshLogs means the directory holds no access-log candidates.
	ErrNoFreshLogs = errors.New("no nginx access-log files found")
)
