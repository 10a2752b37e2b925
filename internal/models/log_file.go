package models

import "time"

// LogFile is one discovered nginx access-log source: its path and the
// date embedded in its filename. The date identifies the report the run
// will produce; the core pipeline never looks at it otherwise.
type LogFile struct {
	Path string
	Date time.Time
	Gzip bool
}
