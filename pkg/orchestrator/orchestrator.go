// Package orchestrator executes one playbook for one job: a linear walk of
// the topological order with per-job memoization, fail-fast error
// propagation, skip-cascade, and live status broadcasting. All per-job state
// is allocated inside Execute and released before it returns.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reportline/reportline/pkg/graph"
	"github.com/reportline/reportline/pkg/models"
)

// Config carries the construction inputs for one Orchestrator.
type Config struct {
	JobID    string
	DomainID string
	TenantID string
	UserID   string
	Playbook *models.Playbook

	Agents    AgentSource
	Invoker   Invoker
	Publisher StatusPublisher

	// Optional. Zero values fall back to SystemClock, DefaultAgentTimeout,
	// and slog.Default.
	Clock        Clock
	AgentTimeout time.Duration
	Logger       *slog.Logger
}

// Orchestrator drives a single job execution. One instance per job; instances
// share no mutable state, so independent jobs may run in parallel.
type Orchestrator struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Orchestrator for one job.
func New(cfg Config) *Orchestrator {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.AgentTimeout <= 0 {
		cfg.AgentTimeout = DefaultAgentTimeout
	}
	if cfg.Publisher == nil {
		cfg.Publisher = NopPublisher{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Orchestrator{
		cfg: cfg,
		logger: cfg.Logger.With(
			"component", "orchestrator",
			"job_id", cfg.JobID,
			"domain_id", cfg.DomainID,
		),
	}
}

// Execute runs the playbook over the given job input and returns the terminal
// status, the ordered execution log, and cache statistics. It never returns a
// Go error: every failure mode lands in the result.
func (o *Orchestrator) Execute(ctx context.Context, input map[string]any) *models.ExecutionResult {
	o.publish(ctx, models.StatusLoadingAgents, nil, "Loading agents for playbook", nil)

	order, err := o.plan()
	if err != nil {
		o.logger.Error("Rejecting malformed playbook", "error", err)
		return &models.ExecutionResult{
			FinalStatus:  models.RunFailed,
			ExecutionLog: []models.ExecutionLogEntry{},
		}
	}

	o.publish(ctx, models.StatusAgentsLoaded, nil,
		fmt.Sprintf("Loaded %d agents", len(order)),
		map[string]any{"agents": order})

	// Per-job memo cache. Local to this call so it cannot outlive the job.
	cache := make(map[string]*models.AgentOutput, len(order))
	log := make([]models.ExecutionLogEntry, 0, len(order))

	failedID := ""
	cancelled := false

	for i, agentID := range order {
		if ctx.Err() != nil {
			cancelled = true
			log = append(log, o.skipEntries(order[i:], "Cancelled")...)
			break
		}

		if cached, ok := cache[agentID]; ok {
			// A topological walk visits each node once, so this branch only
			// fires on playbooks that list a node twice. Reuse without
			// invoking and without publishing.
			log = append(log, o.cachedEntry(agentID, cached))
			continue
		}

		entry := o.runAgent(ctx, agentID, input, cache)
		log = append(log, entry)

		if entry.Status == models.EntryError {
			failedID = agentID
			log = append(log, o.skipEntries(order[i+1:],
				fmt.Sprintf("Skipped due to failure of %s", agentID))...)
			break
		}
	}

	result := &models.ExecutionResult{
		FinalStatus:  models.RunCompleted,
		ExecutionLog: log,
		CacheStats:   statsFromLog(log),
	}
	if failedID != "" || cancelled {
		result.FinalStatus = models.RunFailed
	}

	o.logger.Info("Playbook execution finished",
		"final_status", result.FinalStatus,
		"executed", result.CacheStats.ExecutedAgents,
		"cached", result.CacheStats.CachedAgents,
		"total", result.CacheStats.TotalAgents)
	return result
}

// plan validates the playbook shape and returns the full topological order.
// The validator rejects malformed playbooks at write time; this is the
// runtime backstop.
func (o *Orchestrator) plan() ([]string, error) {
	pb := o.cfg.Playbook
	if pb == nil || len(pb.Nodes) == 0 {
		return nil, graph.ErrEmptyGraph
	}
	return graph.TopologicalOrder(pb.Nodes, pb.Edges)
}

// runAgent resolves, invokes, caches, and logs one agent. The returned entry
// is success or error; skip-cascade decisions belong to the caller.
func (o *Orchestrator) runAgent(ctx context.Context, agentID string, input map[string]any, cache map[string]*models.AgentOutput) models.ExecutionLogEntry {
	def, err := o.cfg.Agents.GetAgent(ctx, o.cfg.TenantID, agentID)
	if err != nil {
		o.logger.Error("Agent lookup failed", "agent_id", agentID, "error", err)
		msg := fmt.Sprintf("agent %q not found in registry: %v", agentID, err)
		o.publishAgent(ctx, models.StatusError, agentID, msg, nil)
		return o.errorEntry(agentID, agentID, msg, 0)
	}

	name := def.DisplayName()
	o.publishAgent(ctx, models.StatusInvoking, name, fmt.Sprintf("Invoking %s", name), nil)

	merged, err := o.mergeInput(input, def, cache)
	if err != nil {
		o.logger.Error("Dependency resolution failed", "agent_id", agentID, "error", err)
		o.publishAgent(ctx, models.StatusError, name, err.Error(), nil)
		return o.errorEntry(agentID, name, err.Error(), 0)
	}

	invokeCtx, cancel := context.WithTimeout(ctx, o.cfg.AgentTimeout)
	start := o.cfg.Clock.Now()
	out := o.cfg.Invoker.Invoke(invokeCtx, o.cfg.JobID, def, merged)
	elapsed := o.cfg.Clock.Now().Sub(start).Milliseconds()
	cancel()

	// Cached regardless of status so dependents of an errored agent are not
	// re-attempted.
	cache[agentID] = out

	if out.Status == models.OutputError {
		o.publishAgent(ctx, models.StatusError, name, out.ErrorMessage,
			map[string]any{"executionTimeMs": elapsed})
		return o.errorEntry(agentID, name, out.ErrorMessage, elapsed)
	}

	o.publishAgent(ctx, models.StatusComplete, name,
		fmt.Sprintf("%s completed", name),
		map[string]any{"executionTimeMs": elapsed})
	return models.ExecutionLogEntry{
		AgentID:         agentID,
		AgentName:       name,
		Status:          models.EntrySuccess,
		Timestamp:       o.timestamp(),
		Reasoning:       out.Reasoning,
		Output:          out.Output,
		ExecutionTimeMs: elapsed,
	}
}

// mergeInput builds the consolidated input for one agent: the job input plus
// each dependency's cached output under "<depId>_output". Every dependency
// must already be cached; the topological order guarantees it.
func (o *Orchestrator) mergeInput(input map[string]any, def *models.AgentDef, cache map[string]*models.AgentOutput) (map[string]any, error) {
	merged := make(map[string]any, len(input)+len(def.Dependencies))
	for k, v := range input {
		merged[k] = v
	}
	for _, depID := range def.Dependencies {
		dep, ok := cache[depID]
		if !ok {
			return nil, fmt.Errorf("internal: dependency %s of %s not satisfied before invocation", depID, def.AgentID)
		}
		merged[models.DepOutputKey(depID)] = dep.Output
	}
	return merged, nil
}

func (o *Orchestrator) cachedEntry(agentID string, out *models.AgentOutput) models.ExecutionLogEntry {
	return models.ExecutionLogEntry{
		AgentID:   agentID,
		AgentName: agentID,
		Status:    models.EntryCached,
		Timestamp: o.timestamp(),
		Reasoning: out.Reasoning,
		Output:    out.Output,
	}
}

func (o *Orchestrator) errorEntry(agentID, name, msg string, elapsed int64) models.ExecutionLogEntry {
	return models.ExecutionLogEntry{
		AgentID:         agentID,
		AgentName:       name,
		Status:          models.EntryError,
		Timestamp:       o.timestamp(),
		ExecutionTimeMs: elapsed,
		ErrorMessage:    msg,
	}
}

func (o *Orchestrator) skipEntries(agentIDs []string, reasoning string) []models.ExecutionLogEntry {
	entries := make([]models.ExecutionLogEntry, 0, len(agentIDs))
	for _, id := range agentIDs {
		entries = append(entries, models.ExecutionLogEntry{
			AgentID:   id,
			AgentName: id,
			Status:    models.EntrySkipped,
			Timestamp: o.timestamp(),
			Reasoning: reasoning,
		})
	}
	return entries
}

func (o *Orchestrator) publish(ctx context.Context, status string, agentName *string, message string, metadata map[string]any) {
	event := &models.StatusEvent{
		JobID:     o.cfg.JobID,
		UserID:    o.cfg.UserID,
		TenantID:  o.cfg.TenantID,
		AgentName: agentName,
		Status:    status,
		Message:   message,
		Metadata:  metadata,
		Timestamp: o.timestamp(),
	}
	if err := o.cfg.Publisher.Publish(ctx, event); err != nil {
		o.logger.Warn("Failed to publish status event", "status", status, "error", err)
	}
}

func (o *Orchestrator) publishAgent(ctx context.Context, status, agentName, message string, metadata map[string]any) {
	o.publish(ctx, status, &agentName, message, metadata)
}

func (o *Orchestrator) timestamp() string {
	return o.cfg.Clock.Now().UTC().Format(time.RFC3339)
}

func statsFromLog(log []models.ExecutionLogEntry) models.CacheStats {
	stats := models.CacheStats{TotalAgents: len(log)}
	for _, e := range log {
		switch e.Status {
		case models.EntryCached:
			stats.CachedAgents++
		case models.EntrySuccess, models.EntryError:
			stats.ExecutedAgents++
		}
	}
	return stats
}
