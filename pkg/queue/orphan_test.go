package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/reportjob"
	testdb "github.com/reportline/reportline/test/database"
)

func makeOrphan(t *testing.T, client *ent.Client, podID string, staleness time.Duration, requeues int) *ent.ReportJob {
	t.Helper()
	job := createPendingJob(t, client, time.Now().Add(-time.Hour))
	job, err := job.Update().
		SetStatus(reportjob.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now().Add(-staleness)).
		SetLastInteractionAt(time.Now().Add(-staleness)).
		SetRequeueCount(requeues).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestOrphanRequeuedOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute
	pool := NewWorkerPool("pod-1", client.Client, cfg, NewStubExecutor(), nil)

	orphan := makeOrphan(t, client.Client, "dead-pod", 10*time.Minute, 0)
	fresh := makeOrphan(t, client.Client, "pod-1", 10*time.Second, 0)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.Client.ReportJob.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusPending, got.Status)
	assert.Equal(t, 1, got.RequeueCount)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.StartedAt)
	assert.Nil(t, got.LastInteractionAt)

	// A job with a recent heartbeat is left alone.
	got, err = client.Client.ReportJob.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusInProgress, got.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestOrphanFailedAfterSecondAbandonment(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute
	pool := NewWorkerPool("pod-1", client.Client, cfg, NewStubExecutor(), nil)

	orphan := makeOrphan(t, client.Client, "dead-pod", 10*time.Minute, 1)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.Client.ReportJob.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusFailed, got.Status)
	assert.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "Orphaned")
	assert.Contains(t, *got.ErrorMessage, "dead-pod")
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	mine := makeOrphan(t, client.Client, "pod-1", time.Minute, 0)
	other := makeOrphan(t, client.Client, "pod-2", time.Minute, 0)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-1"))

	got, err := client.Client.ReportJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusPending, got.Status)
	assert.Equal(t, 1, got.RequeueCount)

	// Jobs owned by other pods are not touched at startup.
	got, err = client.Client.ReportJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusInProgress, got.Status)
}
