package models

// Status tags published during a job's lifetime. The orchestrator emits the
// first five; the enclosing job handler emits the rest plus the job-level
// terminal complete/error.
const (
	StatusLoadingAgents = "loading_agents"
	StatusAgentsLoaded  = "agents_loaded"
	StatusInvoking      = "invoking"
	StatusComplete      = "complete"
	StatusError         = "error"
	StatusVerifying     = "verifying"
	StatusSynthesizing  = "synthesizing"
	StatusSaving        = "saving"
)

// StatusEvent is the fire-and-forget progress event streamed to subscribers.
// Delivery is best-effort; a failed publish never fails the job.
type StatusEvent struct {
	JobID     string         `json:"jobId"`
	UserID    string         `json:"userId"`
	TenantID  string         `json:"tenantId"`
	AgentName *string        `json:"agentName"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata"`
	Timestamp string         `json:"timestamp"` // RFC3339 UTC
}
