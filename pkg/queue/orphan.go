package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/reportjob"
)

// maxRequeues bounds how many times an orphaned job is returned to the queue
// before it is failed outright.
const maxRequeues = 1

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats and
// either re-queues them (first time) or fails them (already requeued once).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.ReportJob.Query().
		Where(
			reportjob.StatusEQ(reportjob.StatusInProgress),
			reportjob.LastInteractionAtNotNil(),
			reportjob.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob handles one orphan: back to pending on the first
// recovery, failed terminally after that.
func recoverOrphanedJob(ctx context.Context, job *ent.ReportJob) error {
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}
	lastHeartbeat := "unknown"
	if job.LastInteractionAt != nil {
		lastHeartbeat = job.LastInteractionAt.Format(time.RFC3339)
	}
	log := slog.With("job_id", job.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)

	if job.RequeueCount < maxRequeues {
		err := job.Update().
			SetStatus(reportjob.StatusPending).
			SetRequeueCount(job.RequeueCount + 1).
			ClearPodID().
			ClearStartedAt().
			ClearLastInteractionAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue orphaned job: %w", err)
		}
		log.Warn("Orphaned job requeued", "requeue_count", job.RequeueCount+1)
		return nil
	}

	err := job.Update().
		SetStatus(reportjob.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s after %d requeue(s)", podID, lastHeartbeat, job.RequeueCount)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail orphaned job: %w", err)
	}
	log.Warn("Orphaned job marked as failed")
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs owned by this pod
// that were in progress when the pod previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.ReportJob.Query().
		Where(
			reportjob.StatusEQ(reportjob.StatusInProgress),
			reportjob.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
