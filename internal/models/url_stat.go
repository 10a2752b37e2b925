package models

// URLStat is the finalized, immutable per-URL report record. The JSON
// field names are the column keys the report table is built from.
// Values carry full float64 precision; display rounding happens in the
// renderer only.
type URLStat struct {
	URL       string  `json:"url"`
	Count     int64   `json:"count"`
	CountPerc float64 `json:"count_perc"`
	TimeSum   float64 `json:"time_sum"`
	TimePerc  float64 `json:"time_perc"`
	TimeAvg   float64 `json:"time_avg"`
	TimeMax   float64 `json:"time_max"`
	TimeMed   float64 `json:"time_med"`

	// Seq is the URL's discovery index within the source stream,
	// kept out of the report payload; ranking ties break on it.
	Seq int `json:"-"`
}
