package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"nginx-report/internal/models"
)

// Candidate filename pattern: nginx-access-ui.log-YYYYMMDD, optionally
// gzip-compressed. Anything else in the directory is ignored.
var logFileRegexp = regexp.MustCompile(`^nginx-access-ui\.log-([0-9]{8})(\.gz)?$`)

const filenameDateLayout = "20060102"

// FindLatest scans logDir and returns the candidate with the youngest
// date embedded in its filename. Entries whose date is not a real
// calendar date are skipped. Directory scan order is sorted, so a plain
// and a compressed file with the same date resolve deterministically
// (the plain one, scanned first, wins).
func FindLatest(logDir string) (models.LogFile, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return models.LogFile{}, fmt.Errorf("%w: %q", ErrLogDirNotFound, logDir)
		}
		return models.LogFile{}, fmt.Errorf("failed to scan log directory %q: %w", logDir, err)
	}

	var latest models.LogFile
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched := logFileRegexp.FindStringSubmatch(entry.Name())
		if matched == nil {
			continue
		}

		date, err := time.Parse(filenameDateLayout, matched[1])
		if err != nil {
			continue
		}

		if !found || date.After(latest.Date) {
			latest = models.LogFile{
				Path: filepath.Join(logDir, entry.Name()),
				Date: date,
				Gzip: strings.HasSuffix(entry.Name(), ".gz"),
			}
			found = true
		}
	}

	if !found {
		return models.LogFile{}, fmt.Errorf("%w in %q", ErrNoFreshLogs, logDir)
	}
	return latest, nil
}
