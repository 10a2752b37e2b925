package stats

import (
	"sort"

	"nginx-report/internal/models"
)

// Finalize converts a closed aggregation snapshot into immutable per-URL
// report records. Percentages carry full precision and guard the
// zero-total case (empty input yields an empty slice, never a division
// error). The returned records are ordered by URL discovery.
func Finalize(snap *models.Snapshot) []models.URLStat {
	records := make([]models.URLStat, 0, len(snap.URLs))

	for _, acc := range snap.URLs {
		var timeSum, timeMax float64
		for _, t := range acc.Times {
			timeSum += t
			if t > timeMax {
				timeMax = t
			}
		}

		record := models.URLStat{
			URL:     acc.URL,
			Seq:     acc.Seq,
			Count:   acc.Count,
			TimeSum: timeSum,
			TimeAvg: timeSum / float64(acc.Count),
			TimeMax: timeMax,
			TimeMed: median(acc.Times),
		}
		if snap.Counters.TotalTime > 0 {
			record.TimePerc = 100 * timeSum / snap.Counters.TotalTime
		}
		if snap.Counters.TotalCount > 0 {
			record.CountPerc = 100 * float64(acc.Count) / float64(snap.Counters.TotalCount)
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})

	return records
}

// median returns the exact statistical median: the middle of the sorted
// values for odd counts, the mean of the two central values for even
// counts. The input slice is never mutated; the accumulator keeps its
// encounter order.
func median(times []float64) float64 {
	n := len(times)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, times)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
