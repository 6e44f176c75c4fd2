package models

// RawInputKey is the stable key under which the job's original text/question
// appears in every agent's consolidated input map.
const RawInputKey = "raw_input"

// DepOutputKey returns the input-map key carrying an upstream dependency's output.
func DepOutputKey(depID string) string {
	return depID + "_output"
}

// EntryStatus is the per-node status recorded in the execution log.
type EntryStatus string

const (
	EntrySuccess EntryStatus = "success"
	EntryCached  EntryStatus = "cached"
	EntryError   EntryStatus = "error"
	EntrySkipped EntryStatus = "skipped"
)

// ExecutionLogEntry is one line of a job's execution log. The JSON shape is a
// stable wire contract consumed by clients and cross-checked by tests.
type ExecutionLogEntry struct {
	AgentID         string         `json:"agent_id"`
	AgentName       string         `json:"agent_name"`
	Status          EntryStatus    `json:"status"`
	Timestamp       string         `json:"timestamp"` // RFC3339 UTC
	Reasoning       string         `json:"reasoning"`
	Output          map[string]any `json:"output"` // null when error/skipped
	ExecutionTimeMs int64          `json:"execution_time_ms"`
	ErrorMessage    string         `json:"error_message,omitempty"`
}

// FinalStatus is the terminal status of one orchestrator run.
type FinalStatus string

const (
	RunCompleted FinalStatus = "completed"
	RunFailed    FinalStatus = "failed"
)

// CacheStats summarizes per-job cache behavior, snapshotted from the
// execution log before the cache is released.
type CacheStats struct {
	CachedAgents   int `json:"cachedAgents"`
	ExecutedAgents int `json:"executedAgents"`
	TotalAgents    int `json:"totalAgents"`
}

// ExecutionResult is what Execute returns: terminal status, the ordered
// execution log, and cache statistics. All per-job state behind it has been
// released by the time the caller sees it.
type ExecutionResult struct {
	FinalStatus  FinalStatus         `json:"final_status"`
	ExecutionLog []ExecutionLogEntry `json:"execution_log"`
	CacheStats   CacheStats          `json:"cache_stats"`
}

// Failed reports whether the run ended in failure.
func (r *ExecutionResult) Failed() bool {
	return r.FinalStatus == RunFailed
}
