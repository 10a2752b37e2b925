package stats

import (
	"sort"

	"nginx-report/internal/models"
)

// SelectTop ranks finalized records by descending total time and
// truncates to n. Equal totals keep URL discovery order, so the ranking
// is deterministic for identical input. n <= 0 yields an empty slice.
// Pure: the input is not reordered.
func SelectTop(records []models.URLStat, n int) []models.URLStat {
	if n <= 0 {
		return []models.URLStat{}
	}

	ranked := make([]models.URLStat, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TimeSum != ranked[j].TimeSum {
			return ranked[i].TimeSum > ranked[j].TimeSum
		}
		return ranked[i].Seq < ranked[j].Seq
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
