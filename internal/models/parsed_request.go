package models

// ParsedRequest is the result of parsing one access-log line.
// When Valid is false the remaining fields are meaningless and must not
// be aggregated.
type ParsedRequest struct {
	URL         string
	RequestTime float64
	UserAgent   string
	Valid       bool
}
