package cleanup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/event"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
	testdb "github.com/reportline/reportline/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetentionDays: 90,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

func createJob(t *testing.T, client *ent.Client, status reportjob.Status, completedAt time.Time) *ent.ReportJob {
	t.Helper()
	create := client.ReportJob.Create().
		SetID(uuid.New().String()).
		SetKind(reportjob.KindIngestion).
		SetTenantID("acme").
		SetDomainID("incidents").
		SetInput(map[string]any{models.RawInputKey: "report text"}).
		SetStatus(status)
	if !completedAt.IsZero() {
		create.SetCompletedAt(completedAt)
	}
	job, err := create.Save(context.Background())
	require.NoError(t, err)
	return job
}

func createEvent(t *testing.T, client *ent.Client, jobID string, createdAt time.Time) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetJobID(jobID).
		SetChannel("job:" + jobID).
		SetPayload(json.RawMessage(`{"status":"complete"}`)).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestRunOnceDeletesExpiredJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := createJob(t, client.Client, reportjob.StatusCompleted, time.Now().AddDate(0, 0, -120))
	recent := createJob(t, client.Client, reportjob.StatusCompleted, time.Now().AddDate(0, 0, -1))
	running := createJob(t, client.Client, reportjob.StatusInProgress, time.Time{})

	svc := NewService(retentionConfig(), client.Client)
	svc.RunOnce(ctx)

	_, err := client.ReportJob.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))

	for _, id := range []string{recent.ID, running.ID} {
		_, err := client.ReportJob.Get(ctx, id)
		assert.NoError(t, err)
	}
}

func TestRunOnceDeletesStaleEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	done := createJob(t, client.Client, reportjob.StatusCompleted, time.Now().Add(-2*time.Hour))
	active := createJob(t, client.Client, reportjob.StatusInProgress, time.Time{})

	stale := createEvent(t, client.Client, done.ID, time.Now().Add(-2*time.Hour))
	fresh := createEvent(t, client.Client, done.ID, time.Now())
	// Events for active jobs survive the TTL; subscribers may still need them
	// for catchup.
	activeOld := createEvent(t, client.Client, active.ID, time.Now().Add(-2*time.Hour))

	svc := NewService(retentionConfig(), client.Client)
	svc.RunOnce(ctx)

	_, err := client.Event.Get(ctx, stale.ID)
	assert.True(t, ent.IsNotFound(err))

	remaining, err := client.Event.Query().Where(event.IDIn(fresh.ID, activeOld.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestStartStopIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()
}
