package models

// AgentCount is one normalized user-agent family and its request count.
type AgentCount struct {
	Agent string `json:"agent"`
	Count int64  `json:"count"`
}

// RunSummary describes one completed analyzer run. It is logged at the
// end of the run and is the caller-visible record of degradation.
type RunSummary struct {
	LogFile    string       `json:"log_file"`
	ReportKey  string       `json:"report_key"`
	TotalLines int64        `json:"total_lines"`
	ErrorLines int64        `json:"error_lines"`
	TotalCount int64        `json:"total_count"`
	UniqueURLs int          `json:"unique_urls"`
	Reported   int          `json:"reported"`
	ErrorRatio float64      `json:"error_ratio"`
	Degraded   bool         `json:"degraded"`
	TopAgents  []AgentCount `json:"top_agents,omitempty"`
}
