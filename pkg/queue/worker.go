package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/event"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/orchestrator"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// eventCleanupGrace is how long terminal events stay in the outbox so late
// subscribers can still catch up before the job's rows are deleted.
const eventCleanupGrace = 60 * time.Second

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  JobExecutor
	publisher orchestrator.StatusPublisher
	pool      JobRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker. publisher may be nil (streaming disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry, publisher orchestrator.StatusPublisher) *Worker {
	if publisher == nil {
		publisher = orchestrator.NopPublisher{}
	}
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.ReportJob.Query().
		Where(reportjob.StatusEQ(reportjob.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next job
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "worker_id", w.id)
	log.Info("Job claimed", "kind", job.Kind, "domain_id", job.DomainID)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	// 5. Start heartbeat (also watches for cross-pod cancellation requests)
	heartbeatCtx, stopHeartbeat := context.WithCancel(jobCtx)
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID, cancelJob)

	// 6. Execute job
	result := w.executor.Execute(jobCtx, job)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		result = &ExecutionResult{Error: fmt.Errorf("executor returned nil result")}
	}

	// 7. Map timeout and cancellation onto an unset status
	if result.Status == "" {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result.Status = reportjob.StatusFailed
			result.Error = fmt.Errorf("job timed out after %v", w.config.JobTimeout)
		case errors.Is(jobCtx.Err(), context.Canceled):
			result.Status = reportjob.StatusCancelled
			if result.Error == nil {
				result.Error = context.Canceled
			}
		default:
			result.Status = reportjob.StatusFailed
			if result.Error == nil {
				result.Error = fmt.Errorf("executor returned no status")
			}
		}
	}

	// 8. Stop heartbeat
	stopHeartbeat()

	// 9. Update terminal status (background context; job ctx may be cancelled)
	if err := w.updateJobTerminalStatus(context.Background(), job, result); err != nil {
		log.Error("Failed to update job terminal status", "error", err)
		return err
	}

	// 9a. Publish terminal job status event
	w.publishJobStatus(context.Background(), job, result)

	// 10. Cleanup outbox events after a grace period so subscribers receive
	// the terminal event before the rows disappear.
	w.scheduleEventCleanup(job.ID)

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// claimNextJob atomically claims the next pending job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.ReportJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Order by created_at for FIFO processing.
	job, err := tx.ReportJob.Query().
		Where(reportjob.StatusEQ(reportjob.StatusPending)).
		Order(ent.Asc(reportjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(reportjob.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// runHeartbeat periodically refreshes last_interaction_at for orphan
// detection. The same tick checks for a cancelling status written by another
// pod and cancels the job context when it sees one.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string, cancelJob context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.client.ReportJob.UpdateOneID(jobID).
				SetLastInteractionAt(time.Now()).
				Save(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
				continue
			}
			if job.Status == reportjob.StatusCancelling {
				slog.Info("Cancellation requested, stopping job", "job_id", jobID)
				cancelJob()
				return
			}
		}
	}
}

// updateJobTerminalStatus writes the final job status and execution record.
func (w *Worker) updateJobTerminalStatus(ctx context.Context, job *ent.ReportJob, result *ExecutionResult) error {
	update := w.client.ReportJob.UpdateOneID(job.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.ExecutionLog != nil {
		update = update.SetExecutionLog(result.ExecutionLog)
	}
	if result.CacheStats != nil {
		update = update.SetCacheStats(result.CacheStats)
	}
	if result.ArtifactID != "" {
		update = update.SetArtifactID(result.ArtifactID)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	return update.Exec(ctx)
}

// publishJobStatus publishes the job-level terminal event. AgentName is nil,
// which routes a copy onto the global jobs channel. Best-effort.
func (w *Worker) publishJobStatus(ctx context.Context, job *ent.ReportJob, result *ExecutionResult) {
	status := models.StatusComplete
	message := "Job completed"
	if result.Status != reportjob.StatusCompleted {
		status = models.StatusError
		message = fmt.Sprintf("Job %s", result.Status)
		if result.Error != nil {
			message = result.Error.Error()
		}
	}

	event := &models.StatusEvent{
		JobID:     job.ID,
		UserID:    job.UserID,
		TenantID:  job.TenantID,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if result.CacheStats != nil {
		event.Metadata = map[string]any{
			"cachedAgents":   result.CacheStats.CachedAgents,
			"executedAgents": result.CacheStats.ExecutedAgents,
			"totalAgents":    result.CacheStats.TotalAgents,
		}
	}
	if err := w.publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish job status",
			"job_id", job.ID, "status", status, "error", err)
	}
}

// scheduleEventCleanup deletes the job's outbox events after the grace period.
func (w *Worker) scheduleEventCleanup(jobID string) {
	time.AfterFunc(eventCleanupGrace, func() {
		if _, err := w.client.Event.Delete().
			Where(event.JobIDEQ(jobID)).
			Exec(context.Background()); err != nil {
			slog.Warn("Failed to cleanup job events after grace period",
				"job_id", jobID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
