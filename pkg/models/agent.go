// Package models defines the shared data model for Reportline: agent and
// domain definitions, playbooks, jobs, agent outputs, execution logs, and
// status events. These are passive types; validation and persistence live
// in pkg/graph, pkg/services, and ent/schema.
package models

// AgentClass partitions agents by the kind of playbook they may appear in.
type AgentClass string

const (
	ClassIngestion  AgentClass = "ingestion"
	ClassQuery      AgentClass = "query"
	ClassManagement AgentClass = "management"
)

// IsValid reports whether the class is one of the three known values.
func (c AgentClass) IsValid() bool {
	switch c {
	case ClassIngestion, ClassQuery, ClassManagement:
		return true
	}
	return false
}

// MaxOutputSchemaKeys bounds the declared output schema of an agent.
const MaxOutputSchemaKeys = 5

// AgentDef is an immutable snapshot of an agent definition as loaded from the
// registry. The orchestrator treats it as read-only shared state.
type AgentDef struct {
	AgentID      string            `json:"agent_id"`
	Name         string            `json:"name"`
	TenantID     string            `json:"tenant_id"`
	Class        AgentClass        `json:"agent_class"`
	SystemPrompt string            `json:"system_prompt"`
	Tools        []string          `json:"tools,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty"`
	OutputSchema map[string]string `json:"output_schema"`
	Enabled      bool              `json:"enabled"`
	Version      int               `json:"version"`
	Builtin      bool              `json:"is_builtin"`
}

// DisplayName returns the human-readable name, falling back to the agent ID.
func (d *AgentDef) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.AgentID
}

// OutputStatus tags an AgentOutput as success or error.
type OutputStatus string

const (
	OutputSuccess OutputStatus = "success"
	OutputError   OutputStatus = "error"
)

// AgentOutput is the result of one agent invocation. The invoker never
// returns a Go error for invocation failures; failures are expressed as
// Status == OutputError with ErrorMessage set and Output nil.
type AgentOutput struct {
	Status       OutputStatus   `json:"status"`
	Output       map[string]any `json:"output"`
	Reasoning    string         `json:"reasoning"`
	Confidence   float64        `json:"confidence"`
	ErrorMessage string         `json:"error_message,omitempty"`
}
