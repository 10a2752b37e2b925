package models

// URLAccumulator is the mutable running aggregate for one URL during the
// streaming phase. Times keeps encounter order; the exact median at
// finalize time needs every observed value. Invariant: len(Times) == Count.
type URLAccumulator struct {
	URL   string
	Seq   int // discovery index, used as the ranking tie-break
	Count int64
	Times []float64
}

// GlobalCounters are the run-wide line and time totals.
// Invariant: ErrorLines == TotalLines - TotalCount.
type GlobalCounters struct {
	TotalLines int64
	ErrorLines int64
	TotalCount int64
	TotalTime  float64
}

// ErrorRatio returns ErrorLines/TotalLines, or 0 for an empty stream.
func (c GlobalCounters) ErrorRatio() float64 {
	if c.TotalLines == 0 {
		return 0
	}
	return float64(c.ErrorLines) / float64(c.TotalLines)
}

// Snapshot is the immutable end-of-stream view of one aggregation run.
// Once taken, the originating aggregator accepts no further lines.
type Snapshot struct {
	URLs     map[string]*URLAccumulator
	Counters GlobalCounters
	Agents   map[string]int64
}
