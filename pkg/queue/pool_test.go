package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent/reportjob"
	testdb "github.com/reportline/reportline/test/database"
)

func TestPoolCancelRegistry(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := NewWorkerPool("pod-1", client.Client, testQueueConfig(), NewStubExecutor(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.RegisterJob("job-1", cancel)
	assert.True(t, pool.CancelJob("job-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// Unknown jobs (owned by another pod) are not found locally.
	assert.False(t, pool.CancelJob("job-2"))

	pool.UnregisterJob("job-1")
	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	pool := NewWorkerPool("pod-1", client.Client, cfg, NewStubExecutor(), nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
	assert.Equal(t, cfg.MaxConcurrentJobs, health.MaxConcurrent)
}

func TestPoolStartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	pool := NewWorkerPool("pod-1", client.Client, testQueueConfig(), NewStubExecutor(), nil)
	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))
	assert.Equal(t, 1, len(pool.workers))
	pool.Stop()
}

func TestPoolProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	jobs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		jobs = append(jobs, createPendingJob(t, client.Client, time.Now()).ID)
	}

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	pool := NewWorkerPool("pod-1", client.Client, cfg, NewStubExecutor(), nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := client.Client.ReportJob.Query().
			Where(reportjob.StatusEQ(reportjob.StatusCompleted)).
			Count(ctx)
		return err == nil && n == len(jobs)
	}, 10*time.Second, 50*time.Millisecond, "all jobs should complete")

	for _, id := range jobs {
		job, err := client.Client.ReportJob.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, reportjob.StatusCompleted, job.Status)
		require.NotNil(t, job.PodID)
		assert.Equal(t, "pod-1", *job.PodID)
	}
}
