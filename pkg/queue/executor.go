package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/queryanswer"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/orchestrator"
	"github.com/reportline/reportline/pkg/registry"
)

// RealJobExecutor implements JobExecutor using the orchestrator.
//
// Per job it resolves the domain and playbook through the registry, runs the
// playbook DAG, and persists the final artifact: an Incident for ingestion
// jobs, a QueryAnswer for query and management jobs. Progress events stream
// through the shared publisher: the orchestrator emits per-agent statuses,
// this executor the handler-level verifying/synthesizing/saving phases.
type RealJobExecutor struct {
	cfg       *config.Config
	client    *ent.Client
	registry  registry.Registry
	invoker   orchestrator.Invoker
	publisher orchestrator.StatusPublisher
}

// NewRealJobExecutor creates a new job executor. publisher may be nil
// (streaming disabled).
func NewRealJobExecutor(cfg *config.Config, client *ent.Client, reg registry.Registry, invoker orchestrator.Invoker, publisher orchestrator.StatusPublisher) *RealJobExecutor {
	if publisher == nil {
		publisher = orchestrator.NopPublisher{}
	}
	return &RealJobExecutor{
		cfg:       cfg,
		client:    client,
		registry:  reg,
		invoker:   invoker,
		publisher: publisher,
	}
}

// Execute runs one claimed job end to end.
func (e *RealJobExecutor) Execute(ctx context.Context, job *ent.ReportJob) *ExecutionResult {
	logger := slog.With(
		"job_id", job.ID,
		"kind", job.Kind,
		"tenant_id", job.TenantID,
		"domain_id", job.DomainID,
	)
	logger.Info("Job executor: starting execution")

	kind := models.JobKind(job.Kind)

	// 1. Resolve domain and playbook
	e.publishPhase(ctx, job, models.StatusVerifying,
		fmt.Sprintf("Verifying domain %s", job.DomainID))

	domain, err := e.registry.GetDomain(ctx, job.TenantID, job.DomainID)
	if err != nil {
		logger.Error("Failed to resolve domain", "error", err)
		return &ExecutionResult{
			Status: reportjob.StatusFailed,
			Error:  fmt.Errorf("domain %q not found: %w", job.DomainID, err),
		}
	}
	playbook, err := domain.PlaybookFor(kind)
	if err != nil {
		logger.Error("Failed to resolve playbook", "error", err)
		return &ExecutionResult{
			Status: reportjob.StatusFailed,
			Error:  err,
		}
	}

	// 2. Run the playbook DAG
	orch := orchestrator.New(orchestrator.Config{
		JobID:        job.ID,
		DomainID:     job.DomainID,
		TenantID:     job.TenantID,
		UserID:       job.UserID,
		Playbook:     playbook,
		Agents:       e.registry,
		Invoker:      e.invoker,
		Publisher:    e.publisher,
		AgentTimeout: e.cfg.LLM.AgentTimeout,
	})
	res := orch.Execute(ctx, job.Input)

	result := &ExecutionResult{
		ExecutionLog: res.ExecutionLog,
		CacheStats:   &res.CacheStats,
	}

	if res.Failed() {
		if errors.Is(ctx.Err(), context.Canceled) {
			result.Status = reportjob.StatusCancelled
			result.Error = fmt.Errorf("job cancelled during playbook execution")
		} else {
			result.Status = reportjob.StatusFailed
			result.Error = playbookError(res.ExecutionLog)
		}
		return result
	}

	// 3. Synthesize and persist the artifact
	e.publishPhase(ctx, job, models.StatusSynthesizing, "Synthesizing final artifact")
	finalOutput := finalPlaybookOutput(res.ExecutionLog)

	e.publishPhase(ctx, job, models.StatusSaving, "Saving artifact")
	artifactID, err := e.saveArtifact(ctx, job, kind, res.ExecutionLog, finalOutput)
	if err != nil {
		logger.Error("Failed to save artifact", "error", err)
		result.Status = reportjob.StatusFailed
		result.Error = fmt.Errorf("failed to save artifact: %w", err)
		return result
	}

	result.Status = reportjob.StatusCompleted
	result.ArtifactID = artifactID
	logger.Info("Job executor: execution complete", "artifact_id", artifactID)
	return result
}

// saveArtifact writes the job's terminal artifact and returns its ID.
func (e *RealJobExecutor) saveArtifact(ctx context.Context, job *ent.ReportJob, kind models.JobKind, log []models.ExecutionLogEntry, finalOutput map[string]any) (string, error) {
	rawInput, _ := job.Input[models.RawInputKey].(string)
	artifactID := uuid.New().String()

	if kind == models.KindIngestion {
		builder := e.client.Incident.Create().
			SetID(artifactID).
			SetTenantID(job.TenantID).
			SetDomainID(job.DomainID).
			SetJobID(job.ID).
			SetRawReport(rawInput).
			SetData(finalOutput)
		if v := stringFromOutputs(log, "category"); v != "" {
			builder.SetCategory(v)
		}
		if v := stringFromOutputs(log, "severity"); v != "" {
			builder.SetSeverity(v)
		}
		if _, err := builder.Save(ctx); err != nil {
			return "", err
		}
		return artifactID, nil
	}

	builder := e.client.QueryAnswer.Create().
		SetID(artifactID).
		SetTenantID(job.TenantID).
		SetDomainID(job.DomainID).
		SetJobID(job.ID).
		SetKind(queryanswer.Kind(kind)).
		SetQuestion(rawInput).
		SetData(finalOutput)
	if v, ok := finalOutput["confidence"].(float64); ok {
		builder.SetConfidence(v)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", err
	}
	return artifactID, nil
}

// publishPhase emits a handler-level status event. Best-effort.
func (e *RealJobExecutor) publishPhase(ctx context.Context, job *ent.ReportJob, status, message string) {
	event := &models.StatusEvent{
		JobID:     job.ID,
		UserID:    job.UserID,
		TenantID:  job.TenantID,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish phase status",
			"job_id", job.ID, "status", status, "error", err)
	}
}

// finalPlaybookOutput returns the last successful entry's output: the final
// agent in topological order, which carries the synthesized result.
func finalPlaybookOutput(log []models.ExecutionLogEntry) map[string]any {
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Status == models.EntrySuccess || log[i].Status == models.EntryCached {
			return log[i].Output
		}
	}
	return map[string]any{}
}

// playbookError summarizes a failed run from its first error entry.
func playbookError(log []models.ExecutionLogEntry) error {
	for _, entry := range log {
		if entry.Status == models.EntryError {
			return fmt.Errorf("agent %s failed: %s", entry.AgentID, entry.ErrorMessage)
		}
	}
	return errors.New("playbook execution failed")
}

// stringFromOutputs scans the execution log for the first non-empty string
// value under key. Used to lift category/severity out of agent outputs.
func stringFromOutputs(log []models.ExecutionLogEntry, key string) string {
	for _, entry := range log {
		if entry.Output == nil {
			continue
		}
		if v, ok := entry.Output[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
