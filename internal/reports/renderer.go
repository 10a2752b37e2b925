package reports

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nginx-report/internal/models"

	json "github.com/goccy/go-json"
)

//go:embed report_template.html
var reportTemplate string

const (
	tableJSONPlaceholder = "$table_json"
	degradedPlaceholder  = "$degraded"
	reportKeyLayout      = "2006.01.02"

	// displayPrecision is the number of decimals the report shows.
	// Finalized records keep full precision; this is rendering only.
	displayPrecision = 3
)

// ReportKey builds the report filename for the given log date,
// e.g. report-2017.06.30.html.
func ReportKey(date time.Time) string {
	return fmt.Sprintf("report-%s.html", date.Format(reportKeyLayout))
}

// Render embeds the selected records into the report template as a JSON
// table payload, along with the run's degradation flag. Rendering the
// same input always produces identical bytes.
func Render(records []models.URLStat, degraded bool) ([]byte, error) {
	rows := make([]models.URLStat, len(records))
	for i, record := range records {
		rows[i] = roundForDisplay(record)
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report table: %w", err)
	}

	body := strings.Replace(reportTemplate, tableJSONPlaceholder, string(payload), 1)
	body = strings.Replace(body, degradedPlaceholder, strconv.FormatBool(degraded), 1)
	return []byte(body), nil
}

func roundForDisplay(record models.URLStat) models.URLStat {
	record.CountPerc = round(record.CountPerc)
	record.TimeSum = round(record.TimeSum)
	record.TimePerc = round(record.TimePerc)
	record.TimeAvg = round(record.TimeAvg)
	record.TimeMax = round(record.TimeMax)
	record.TimeMed = round(record.TimeMed)
	return record
}

func round(v float64) float64 {
	shift := math.Pow10(displayPrecision)
	return math.Round(v*shift) / shift
}
