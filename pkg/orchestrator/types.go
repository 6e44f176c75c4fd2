package orchestrator

import (
	"context"
	"time"

	"github.com/reportline/reportline/pkg/models"
)

// DefaultAgentTimeout bounds a single agent invocation, including the LLM call.
const DefaultAgentTimeout = 2 * time.Minute

// Clock supplies timestamps. Injectable so tests can pin the clock and get
// byte-identical execution logs across runs.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Invoker executes one agent against the LLM. Implementations never return a
// Go error; all failure modes are expressed on the AgentOutput.
type Invoker interface {
	Invoke(ctx context.Context, jobID string, def *models.AgentDef, input map[string]any) *models.AgentOutput
}

// AgentSource resolves agent definitions. Implementations fall back to the
// shared system tenant when the primary tenant lacks the id, and must be safe
// for concurrent use.
type AgentSource interface {
	GetAgent(ctx context.Context, tenantID, agentID string) (*models.AgentDef, error)
}

// StatusPublisher is the best-effort sink for progress events. Publish errors
// are logged and swallowed; they never affect job outcome. Must be safe for
// concurrent use by multiple orchestrators.
type StatusPublisher interface {
	Publish(ctx context.Context, event *models.StatusEvent) error
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *models.StatusEvent) error { return nil }
