// Package cleanup provides background data retention.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/event"
	"github.com/reportline/reportline/ent/predicate"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes terminal job rows past the retention window
//   - Removes catchup Event rows past their TTL
//
// Incidents and query answers are never expired. All operations are
// idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.deleteExpiredJobs(ctx)
	s.deleteStaleEvents(ctx)
}

// deleteExpiredJobs removes terminal job rows whose completed_at is older
// than the retention window. Pending and running jobs are never touched.
func (s *Service) deleteExpiredJobs(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.JobRetentionDays)

	count, err := s.client.ReportJob.Delete().
		Where(
			reportjob.StatusIn(
				reportjob.StatusCompleted,
				reportjob.StatusFailed,
				reportjob.StatusCancelled,
			),
			reportjob.CompletedAtNotNil(),
			reportjob.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired jobs", "count", count)
	}
}

// deleteStaleEvents removes catchup events past the TTL for jobs that are no
// longer active. Workers normally delete a job's events shortly after it
// finishes; this pass catches rows orphaned by a pod dying before that timer
// fired.
func (s *Service) deleteStaleEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)

	activeIDs, err := s.client.ReportJob.Query().
		Where(reportjob.StatusIn(
			reportjob.StatusPending,
			reportjob.StatusInProgress,
			reportjob.StatusCancelling,
		)).
		Select(reportjob.FieldID).
		Strings(ctx)
	if err != nil {
		slog.Error("Retention: listing active jobs failed", "error", err)
		return
	}

	predicates := []predicate.Event{event.CreatedAtLT(cutoff)}
	if len(activeIDs) > 0 {
		predicates = append(predicates, event.JobIDNotIn(activeIDs...))
	}

	count, err := s.client.Event.Delete().Where(predicates...).Exec(ctx)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted stale events", "count", count)
	}
}
