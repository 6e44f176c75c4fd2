package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
)

// fixedClock always returns the same instant, making timestamps (and with
// them the whole log) reproducible.
type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// steppingClock advances by a fixed step on every read.
type steppingClock struct {
	mu   sync.Mutex
	at   time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.at
	c.at = c.at.Add(c.step)
	return now
}

// staticAgents is an in-memory AgentSource.
type staticAgents map[string]*models.AgentDef

func (s staticAgents) GetAgent(_ context.Context, _ string, agentID string) (*models.AgentDef, error) {
	def, ok := s[agentID]
	if !ok {
		return nil, fmt.Errorf("agent not found: %s", agentID)
	}
	return def, nil
}

// scriptedInvoker returns canned outputs per agent and records every call.
type scriptedInvoker struct {
	outputs map[string]*models.AgentOutput
	calls   []string
	inputs  map[string]map[string]any
}

func newScriptedInvoker(outputs map[string]*models.AgentOutput) *scriptedInvoker {
	return &scriptedInvoker{outputs: outputs, inputs: make(map[string]map[string]any)}
}

func (s *scriptedInvoker) Invoke(_ context.Context, _ string, def *models.AgentDef, input map[string]any) *models.AgentOutput {
	s.calls = append(s.calls, def.AgentID)
	s.inputs[def.AgentID] = input
	if out, ok := s.outputs[def.AgentID]; ok {
		return out
	}
	return success(map[string]any{"x": 1})
}

// capturingPublisher records events; fail makes every Publish return an error.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*models.StatusEvent
	fail   bool
}

func (p *capturingPublisher) Publish(_ context.Context, e *models.StatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("publisher down")
	}
	p.events = append(p.events, e)
	return nil
}

func (p *capturingPublisher) statuses() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Status
	}
	return out
}

func success(output map[string]any) *models.AgentOutput {
	return &models.AgentOutput{
		Status:     models.OutputSuccess,
		Output:     output,
		Reasoning:  "done",
		Confidence: 1.0,
	}
}

func failure(msg string) *models.AgentOutput {
	return &models.AgentOutput{Status: models.OutputError, ErrorMessage: msg}
}

func defs(class models.AgentClass, deps map[string][]string) staticAgents {
	out := make(staticAgents, len(deps))
	for id, d := range deps {
		out[id] = &models.AgentDef{
			AgentID:      id,
			Name:         id,
			Class:        class,
			Dependencies: d,
			OutputSchema: map[string]string{"x": "number"},
		}
	}
	return out
}

func newTestOrchestrator(pb *models.Playbook, agents AgentSource, inv Invoker, pub StatusPublisher, clock Clock) *Orchestrator {
	return New(Config{
		JobID:     "job-1",
		DomainID:  "support",
		TenantID:  "acme",
		UserID:    "user-1",
		Playbook:  pb,
		Agents:    agents,
		Invoker:   inv,
		Publisher: pub,
		Clock:     clock,
	})
}

func TestExecuteLinearSuccess(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"A", "B", "C"},
		Edges: []models.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
	}
	inv := newScriptedInvoker(nil)
	pub := &capturingPublisher{}
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{
		"A": nil, "B": {"A"}, "C": {"B"},
	}), inv, pub, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{models.RawInputKey: "hello"})

	assert.Equal(t, models.RunCompleted, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 3)
	for i, id := range []string{"A", "B", "C"} {
		assert.Equal(t, id, res.ExecutionLog[i].AgentID)
		assert.Equal(t, models.EntrySuccess, res.ExecutionLog[i].Status)
	}
	assert.Equal(t, models.CacheStats{CachedAgents: 0, ExecutedAgents: 3, TotalAgents: 3}, res.CacheStats)
	assert.Equal(t, []string{"A", "B", "C"}, inv.calls)

	statuses := pub.statuses()
	assert.Equal(t, []string{
		models.StatusLoadingAgents, models.StatusAgentsLoaded,
		models.StatusInvoking, models.StatusComplete,
		models.StatusInvoking, models.StatusComplete,
		models.StatusInvoking, models.StatusComplete,
	}, statuses)
}

func TestExecuteDiamondMemoization(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"A", "B", "C", "D"},
		Edges: []models.Edge{
			{From: "A", To: "B"}, {From: "A", To: "C"},
			{From: "B", To: "D"}, {From: "C", To: "D"},
		},
	}
	inv := newScriptedInvoker(map[string]*models.AgentOutput{
		"A": success(map[string]any{"x": "a"}),
		"B": success(map[string]any{"x": "b"}),
		"C": success(map[string]any{"x": "c"}),
	})
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{
		"A": nil, "B": {"A"}, "C": {"A"}, "D": {"B", "C"},
	}), inv, &capturingPublisher{}, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{models.RawInputKey: "q"})

	assert.Equal(t, models.RunCompleted, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 4)
	for _, e := range res.ExecutionLog {
		assert.Equal(t, models.EntrySuccess, e.Status)
	}

	// Each agent invoked exactly once, A included despite two dependents.
	assert.Equal(t, []string{"A", "B", "C", "D"}, inv.calls)

	// D's input carries both upstream outputs.
	dInput := inv.inputs["D"]
	require.NotNil(t, dInput)
	assert.Equal(t, map[string]any{"x": "b"}, dInput["B_output"])
	assert.Equal(t, map[string]any{"x": "c"}, dInput["C_output"])
	assert.Equal(t, "q", dInput[models.RawInputKey])
}

func TestExecuteMidGraphFailure(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"A", "B", "C"},
		Edges: []models.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
	}
	inv := newScriptedInvoker(map[string]*models.AgentOutput{
		"B": failure("LLM timeout"),
	})
	pub := &capturingPublisher{}
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{
		"A": nil, "B": {"A"}, "C": {"B"},
	}), inv, pub, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{})

	assert.Equal(t, models.RunFailed, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 3)

	assert.Equal(t, models.EntrySuccess, res.ExecutionLog[0].Status)

	b := res.ExecutionLog[1]
	assert.Equal(t, models.EntryError, b.Status)
	assert.Equal(t, "LLM timeout", b.ErrorMessage)
	assert.Nil(t, b.Output)

	c := res.ExecutionLog[2]
	assert.Equal(t, models.EntrySkipped, c.Status)
	assert.Contains(t, c.Reasoning, "B")

	// A and B only; C is never attempted.
	assert.Equal(t, []string{"A", "B"}, inv.calls)

	// No per-agent events for the skipped node.
	statuses := pub.statuses()
	assert.Equal(t, []string{
		models.StatusLoadingAgents, models.StatusAgentsLoaded,
		models.StatusInvoking, models.StatusComplete,
		models.StatusInvoking, models.StatusError,
	}, statuses)
}

func TestExecuteRegistryMiss(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"A", "B"},
		Edges: []models.Edge{{From: "A", To: "B"}},
	}
	inv := newScriptedInvoker(nil)
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{
		"B": {"A"}, // A is declared in the playbook but missing from the source
	}), inv, &capturingPublisher{}, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{})

	assert.Equal(t, models.RunFailed, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 2)
	assert.Equal(t, models.EntryError, res.ExecutionLog[0].Status)
	assert.Contains(t, res.ExecutionLog[0].ErrorMessage, `"A"`)
	assert.Equal(t, models.EntrySkipped, res.ExecutionLog[1].Status)
	assert.Empty(t, inv.calls)
}

func TestExecuteRejectsMalformedPlaybook(t *testing.T) {
	inv := newScriptedInvoker(nil)
	agents := defs(models.ClassIngestion, map[string][]string{"A": nil, "B": nil})

	t.Run("empty nodes", func(t *testing.T) {
		pb := &models.Playbook{Nodes: []string{}, Edges: []models.Edge{}}
		res := newTestOrchestrator(pb, agents, inv, &capturingPublisher{}, fixedClock{}).
			Execute(context.Background(), map[string]any{})
		assert.Equal(t, models.RunFailed, res.FinalStatus)
		assert.Empty(t, res.ExecutionLog)
	})

	t.Run("nil playbook", func(t *testing.T) {
		res := newTestOrchestrator(nil, agents, inv, &capturingPublisher{}, fixedClock{}).
			Execute(context.Background(), map[string]any{})
		assert.Equal(t, models.RunFailed, res.FinalStatus)
		assert.Empty(t, res.ExecutionLog)
	})

	t.Run("cycle", func(t *testing.T) {
		pb := &models.Playbook{
			Nodes: []string{"A", "B"},
			Edges: []models.Edge{{From: "A", To: "B"}, {From: "B", To: "A"}},
		}
		res := newTestOrchestrator(pb, agents, inv, &capturingPublisher{}, fixedClock{}).
			Execute(context.Background(), map[string]any{})
		assert.Equal(t, models.RunFailed, res.FinalStatus)
		assert.Empty(t, res.ExecutionLog)
	})

	assert.Empty(t, inv.calls)
}

func TestExecuteCancellation(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"A", "B", "C"},
		Edges: []models.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
	}
	agents := defs(models.ClassIngestion, map[string][]string{
		"A": nil, "B": {"A"}, "C": {"B"},
	})

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while A is in flight; B and C must be skipped at the boundary.
	inv := &cancellingInvoker{cancel: cancel}
	o := newTestOrchestrator(pb, agents, inv, &capturingPublisher{}, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(ctx, map[string]any{})

	assert.Equal(t, models.RunFailed, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 3)
	assert.Equal(t, models.EntrySuccess, res.ExecutionLog[0].Status)
	for _, e := range res.ExecutionLog[1:] {
		assert.Equal(t, models.EntrySkipped, e.Status)
		assert.Equal(t, "Cancelled", e.Reasoning)
	}
	assert.Equal(t, 1, inv.calls)
}

type cancellingInvoker struct {
	cancel context.CancelFunc
	calls  int
}

func (c *cancellingInvoker) Invoke(_ context.Context, _ string, _ *models.AgentDef, _ map[string]any) *models.AgentOutput {
	c.calls++
	c.cancel()
	return success(map[string]any{"x": 1})
}

func TestExecutePublisherFailureIsSwallowed(t *testing.T) {
	pb := &models.Playbook{Nodes: []string{"A"}, Edges: []models.Edge{}}
	inv := newScriptedInvoker(nil)
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{"A": nil}),
		inv, &capturingPublisher{fail: true}, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{})

	assert.Equal(t, models.RunCompleted, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 1)
	assert.Equal(t, models.EntrySuccess, res.ExecutionLog[0].Status)
}

func TestExecuteEventShape(t *testing.T) {
	pb := &models.Playbook{Nodes: []string{"A"}, Edges: []models.Edge{}}
	agents := staticAgents{"A": {
		AgentID: "A", Name: "Triage Agent", Class: models.ClassIngestion,
		OutputSchema: map[string]string{"x": "number"},
	}}
	pub := &capturingPublisher{}
	clock := &steppingClock{at: time.Unix(1700000000, 0).UTC(), step: 250 * time.Millisecond}
	o := newTestOrchestrator(pb, agents, newScriptedInvoker(nil), pub, clock)

	o.Execute(context.Background(), map[string]any{})

	require.Len(t, pub.events, 4)

	loaded := pub.events[1]
	assert.Equal(t, models.StatusAgentsLoaded, loaded.Status)
	assert.Equal(t, []string{"A"}, loaded.Metadata["agents"])
	assert.Nil(t, loaded.AgentName)

	invoking := pub.events[2]
	require.NotNil(t, invoking.AgentName)
	assert.Equal(t, "Triage Agent", *invoking.AgentName)

	complete := pub.events[3]
	assert.Equal(t, models.StatusComplete, complete.Status)
	assert.EqualValues(t, 250, complete.Metadata["executionTimeMs"])

	for _, e := range pub.events {
		assert.Equal(t, "job-1", e.JobID)
		assert.Equal(t, "user-1", e.UserID)
		assert.Equal(t, "acme", e.TenantID)
		assert.NotEmpty(t, e.Timestamp)
	}

	// Wire shape is camelCase.
	raw, err := json.Marshal(pub.events[2])
	require.NoError(t, err)
	for _, key := range []string{"jobId", "userId", "tenantId", "agentName", "status", "message", "timestamp"} {
		assert.Contains(t, string(raw), `"`+key+`"`)
	}
}

func TestExecuteLogEntryWireShape(t *testing.T) {
	pb := &models.Playbook{Nodes: []string{"A"}, Edges: []models.Edge{}}
	clock := &steppingClock{at: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), step: 100 * time.Millisecond}
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{"A": nil}),
		newScriptedInvoker(nil), &capturingPublisher{}, clock)

	res := o.Execute(context.Background(), map[string]any{})

	require.Len(t, res.ExecutionLog, 1)
	raw, err := json.Marshal(res.ExecutionLog[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "A", decoded["agent_id"])
	assert.Equal(t, "success", decoded["status"])
	assert.EqualValues(t, 100, decoded["execution_time_ms"])
	assert.NotContains(t, decoded, "error_message")

	ts, ok := decoded["timestamp"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestExecuteDeterminism(t *testing.T) {
	pb := &models.Playbook{
		Nodes: []string{"d", "b", "c", "a"},
		Edges: []models.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "b", To: "d"}},
	}
	agents := defs(models.ClassIngestion, map[string][]string{
		"a": nil, "b": {"a"}, "c": {"a"}, "d": {"b"},
	})
	clock := fixedClock{at: time.Unix(1700000000, 0)}

	run := func() ([]byte, []string) {
		pub := &capturingPublisher{}
		o := newTestOrchestrator(pb, agents, newScriptedInvoker(nil), pub, clock)
		res := o.Execute(context.Background(), map[string]any{models.RawInputKey: "q"})
		raw, err := json.Marshal(res)
		require.NoError(t, err)
		return raw, pub.statuses()
	}

	firstLog, firstStatuses := run()
	for i := 0; i < 10; i++ {
		log, statuses := run()
		assert.Equal(t, firstLog, log)
		assert.Equal(t, firstStatuses, statuses)
	}
}

func TestExecuteErrorOutputSchemaViolation(t *testing.T) {
	// A schema violation from the invoker is just an error output; it must
	// cascade like any other agent failure.
	pb := &models.Playbook{
		Nodes: []string{"A", "B"},
		Edges: []models.Edge{{From: "A", To: "B"}},
	}
	inv := newScriptedInvoker(map[string]*models.AgentOutput{
		"A": failure(`agent output key "bogus" is not declared in the output schema`),
	})
	o := newTestOrchestrator(pb, defs(models.ClassIngestion, map[string][]string{
		"A": nil, "B": {"A"},
	}), inv, &capturingPublisher{}, fixedClock{at: time.Unix(1700000000, 0)})

	res := o.Execute(context.Background(), map[string]any{})

	assert.Equal(t, models.RunFailed, res.FinalStatus)
	require.Len(t, res.ExecutionLog, 2)
	assert.Equal(t, models.EntryError, res.ExecutionLog[0].Status)
	assert.Equal(t, models.EntrySkipped, res.ExecutionLog[1].Status)
	assert.Equal(t, []string{"A"}, inv.calls)
}
