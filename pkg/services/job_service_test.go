package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
	testdb "github.com/reportline/reportline/test/database"
)

func submitInput() SubmitJobInput {
	return SubmitJobInput{
		Kind:     models.KindIngestion,
		TenantID: "acme",
		UserID:   "user-1",
		DomainID: "incidents",
		RawInput: "Database replica is lagging by 20 minutes.",
	}
}

func TestJobServiceSubmit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewJobService(client.Client)

	in := submitInput()
	in.Extra = map[string]any{"source": "email"}
	job, err := svc.SubmitJob(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, reportjob.StatusPending, job.Status)
	assert.Equal(t, "acme", job.TenantID)
	assert.Equal(t, in.RawInput, job.Input[models.RawInputKey])
	assert.Equal(t, "email", job.Input["source"])

	got, err := svc.GetJob(ctx, "acme", job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	// Jobs are tenant-scoped.
	_, err = svc.GetJob(ctx, "other", job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobServiceSubmitValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewJobService(client.Client)

	in := submitInput()
	in.Kind = "synthesis"
	_, err := svc.SubmitJob(ctx, in)
	assert.True(t, IsValidationError(err))

	in = submitInput()
	in.RawInput = ""
	_, err = svc.SubmitJob(ctx, in)
	assert.True(t, IsValidationError(err))

	in = submitInput()
	in.DomainID = ""
	_, err = svc.SubmitJob(ctx, in)
	assert.True(t, IsValidationError(err))
}

func TestJobServiceCancelPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewJobService(client.Client)

	job, err := svc.SubmitJob(ctx, submitInput())
	require.NoError(t, err)

	cancelled, err := svc.CancelJob(ctx, "acme", job.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCancelled, cancelled.Status)

	// Cancelling an already terminal job is rejected.
	_, err = svc.CancelJob(ctx, "acme", job.ID)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestJobServiceCancelInProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewJobService(client.Client)

	job, err := svc.SubmitJob(ctx, submitInput())
	require.NoError(t, err)

	// Simulate a worker claim.
	_, err = client.Client.ReportJob.UpdateOneID(job.ID).
		SetStatus(reportjob.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	cancelling, err := svc.CancelJob(ctx, "acme", job.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCancelling, cancelling.Status)

	// A second request is an idempotent no-op.
	again, err := svc.CancelJob(ctx, "acme", job.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCancelling, again.Status)
}

func TestJobServiceCancelTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewJobService(client.Client)

	for _, status := range []reportjob.Status{reportjob.StatusCompleted, reportjob.StatusFailed} {
		job, err := svc.SubmitJob(ctx, submitInput())
		require.NoError(t, err)
		_, err = client.Client.ReportJob.UpdateOneID(job.ID).SetStatus(status).Save(ctx)
		require.NoError(t, err)

		_, err = svc.CancelJob(ctx, "acme", job.ID)
		assert.True(t, IsValidationError(err), "status %s should reject cancellation", status)
	}
}
