package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/incident"
	"github.com/reportline/reportline/ent/queryanswer"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

// SubmitJobInput contains the domain-level data needed to create a job.
// Transformed from the HTTP request + headers by the handler.
type SubmitJobInput struct {
	Kind     models.JobKind
	TenantID string
	UserID   string
	DomainID string
	// RawInput is the report text (ingestion) or the question (query,
	// management). Stored under raw_input in the job's input map.
	RawInput string
	// Extra is merged into the input map alongside raw_input.
	Extra map[string]any
}

// JobService handles job submission, inspection, and cancellation. Jobs
// start pending and are picked up by the worker pool.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	return &JobService{client: client}
}

// SubmitJob creates a new job in pending status.
func (s *JobService) SubmitJob(ctx context.Context, input SubmitJobInput) (*ent.ReportJob, error) {
	if !input.Kind.IsValid() {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown job kind %q", input.Kind))
	}
	if input.RawInput == "" {
		return nil, NewValidationError("input", "input text is required")
	}
	if input.DomainID == "" {
		return nil, NewValidationError("domain_id", "domain_id is required")
	}

	jobInput := make(map[string]any, len(input.Extra)+1)
	for k, v := range input.Extra {
		jobInput[k] = v
	}
	jobInput[models.RawInputKey] = input.RawInput

	job, err := s.client.ReportJob.Create().
		SetID(uuid.New().String()).
		SetKind(reportjob.Kind(input.Kind)).
		SetTenantID(input.TenantID).
		SetUserID(input.UserID).
		SetDomainID(input.DomainID).
		SetInput(jobInput).
		SetStatus(reportjob.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob returns one job row, tenant-scoped.
func (s *JobService) GetJob(ctx context.Context, tenantID, jobID string) (*ent.ReportJob, error) {
	job, err := s.client.ReportJob.Query().
		Where(reportjob.ID(jobID), reportjob.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return job, nil
}

// CancelJob requests cancellation. A pending job is cancelled outright; an
// in-progress job transitions to cancelling and its worker stops at the next
// agent boundary. Terminal jobs are left untouched.
func (s *JobService) CancelJob(ctx context.Context, tenantID, jobID string) (*ent.ReportJob, error) {
	job, err := s.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}

	switch job.Status {
	case reportjob.StatusPending:
		n, err := s.client.ReportJob.Update().
			Where(reportjob.ID(jobID), reportjob.StatusEQ(reportjob.StatusPending)).
			SetStatus(reportjob.StatusCancelled).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cancel job: %w", err)
		}
		if n == 0 {
			// A worker claimed it between the read and the update.
			return s.CancelJob(ctx, tenantID, jobID)
		}
	case reportjob.StatusInProgress:
		if _, err := s.client.ReportJob.Update().
			Where(reportjob.ID(jobID), reportjob.StatusEQ(reportjob.StatusInProgress)).
			SetStatus(reportjob.StatusCancelling).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to request job cancellation: %w", err)
		}
	case reportjob.StatusCancelling:
		// Already requested.
	default:
		return nil, NewValidationError("status",
			fmt.Sprintf("job is already %s", job.Status))
	}

	return s.GetJob(ctx, tenantID, jobID)
}

// GetIncident returns one ingestion artifact, tenant-scoped.
func (s *JobService) GetIncident(ctx context.Context, tenantID, incidentID string) (*ent.Incident, error) {
	rec, err := s.client.Incident.Query().
		Where(incident.ID(incidentID), incident.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID)
		}
		return nil, fmt.Errorf("failed to load incident: %w", err)
	}
	return rec, nil
}

// GetQueryAnswer returns one query/management artifact, tenant-scoped.
func (s *JobService) GetQueryAnswer(ctx context.Context, tenantID, answerID string) (*ent.QueryAnswer, error) {
	rec, err := s.client.QueryAnswer.Query().
		Where(queryanswer.ID(answerID), queryanswer.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: answer %s", ErrNotFound, answerID)
		}
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}
	return rec, nil
}
