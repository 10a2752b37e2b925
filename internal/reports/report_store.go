package reports

import (
	"bytes"
	"context"
	"time"

	"nginx-report/internal/shared/filestorages"
)

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Exists reports whether a report for the given log date was
	// already published.
	Exists(ctx context.Context, date time.Time) (bool, error)
	// Publish writes the rendered report body under the date's report
	// key. The write is atomic: a failed run never leaves a partial
	// report, and an existing report is never replaced
	// (filestorages.ErrFileAlreadyExists).
	Publish(ctx context.Context, date time.Time, body []byte) (string, error)
}

type reportStore struct {
	storage filestorages.FileStorage
}

func NewReportStore(storage filestorages.FileStorage) ReportStore {
	return &reportStore{storage: storage}
}

func (s *reportStore) Exists(ctx context.Context, date time.Time) (bool, error) {
	return s.storage.Exists(ctx, ReportKey(date))
}

func (s *reportStore) Publish(ctx context.Context, date time.Time, body []byte) (string, error) {
	key := ReportKey(date)

	result, err := s.storage.Put(ctx, key, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	metricReportsPublishedTotal.Inc()
	metricReportBytes.Observe(float64(len(body)))

	return result.FileKey, nil
}
