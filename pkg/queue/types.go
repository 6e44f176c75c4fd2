// Package queue provides the DB-backed job queue: claiming, worker pool,
// heartbeats, cancellation propagation, and orphan recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor runs one claimed job end to end.
//
// The executor owns the job's execution: it resolves the domain and playbook,
// drives the orchestrator, emits handler-level status events, and persists
// the final artifact. The worker only handles claiming, heartbeat, the
// terminal job-row update, and event cleanup.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.ReportJob) *ExecutionResult
}

// ExecutionResult is the terminal state of one job. The artifact (if any) was
// already written by the executor; the worker copies the rest onto the job row.
type ExecutionResult struct {
	Status       reportjob.Status // completed, failed, cancelled
	ExecutionLog []models.ExecutionLogEntry
	CacheStats   *models.CacheStats
	ArtifactID   string // incident or query answer ID (if completed)
	Error        error  // error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
