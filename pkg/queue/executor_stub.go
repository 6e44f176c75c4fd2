package queue

import (
	"context"
	"log/slog"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

// StubExecutor is a no-op JobExecutor used in tests and when running the
// queue without an LLM backend. It completes every job immediately with an
// empty execution log.
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result without invoking anything.
func (e *StubExecutor) Execute(ctx context.Context, job *ent.ReportJob) *ExecutionResult {
	jobID := ""
	domainID := ""
	if job != nil {
		jobID = job.ID
		domainID = job.DomainID
	}
	slog.Info("Stub executor: job processing (no-op)",
		"job_id", jobID,
		"domain_id", domainID,
	)

	if ctx.Err() != nil {
		return &ExecutionResult{
			Status: reportjob.StatusCancelled,
			Error:  ctx.Err(),
		}
	}

	return &ExecutionResult{
		Status:       reportjob.StatusCompleted,
		ExecutionLog: []models.ExecutionLogEntry{},
		CacheStats:   &models.CacheStats{},
	}
}
