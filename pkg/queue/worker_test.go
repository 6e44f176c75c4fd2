package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
	testdb "github.com/reportline/reportline/test/database"
)

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.HeartbeatInterval = 20 * time.Millisecond
	cfg.JobTimeout = 5 * time.Second
	return &cfg
}

// nopRegistry satisfies JobRegistry for single-worker tests.
type nopRegistry struct{}

func (nopRegistry) RegisterJob(string, context.CancelFunc) {}
func (nopRegistry) UnregisterJob(string)                   {}

func createPendingJob(t *testing.T, client *ent.Client, createdAt time.Time) *ent.ReportJob {
	t.Helper()
	job, err := client.ReportJob.Create().
		SetID(uuid.New().String()).
		SetKind(reportjob.KindIngestion).
		SetTenantID("acme").
		SetDomainID("incidents").
		SetInput(map[string]any{models.RawInputKey: "report text"}).
		SetStatus(reportjob.StatusPending).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestWorkerClaimIsFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	now := time.Now()
	second := createPendingJob(t, client.Client, now)
	first := createPendingJob(t, client.Client, now.Add(-time.Minute))

	w := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), NewStubExecutor(), nopRegistry{}, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, reportjob.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastInteractionAt)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorkerProcessesJobToCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	job := createPendingJob(t, client.Client, time.Now())

	w := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), NewStubExecutor(), nopRegistry{}, nil)
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := client.Client.ReportJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	health := w.Health()
	assert.Equal(t, 1, health.JobsProcessed)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
}

// blockingExecutor holds until its context is cancelled, then reports what
// the worker should map from the context state.
type blockingExecutor struct {
	started chan string
}

func (e *blockingExecutor) Execute(ctx context.Context, job *ent.ReportJob) *ExecutionResult {
	e.started <- job.ID
	<-ctx.Done()
	// Status left empty: the worker maps it from the context error.
	return &ExecutionResult{}
}

func TestWorkerHeartbeatPropagatesCancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	job := createPendingJob(t, client.Client, time.Now())

	exec := &blockingExecutor{started: make(chan string, 1)}
	w := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), exec, nopRegistry{}, nil)

	done := make(chan error, 1)
	go func() { done <- w.pollAndProcess(ctx) }()

	select {
	case <-exec.started:
	case <-time.After(5 * time.Second):
		t.Fatal("executor never started")
	}

	// Another pod requests cancellation by flipping the status; this pod's
	// heartbeat notices and cancels the job context.
	_, err := client.Client.ReportJob.UpdateOneID(job.ID).
		SetStatus(reportjob.StatusCancelling).
		Save(ctx)
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never finished after cancellation")
	}

	got, err := client.Client.ReportJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCancelled, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, context.Canceled.Error(), *got.ErrorMessage)
}

func TestWorkerRespectsCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.MaxConcurrentJobs = 1

	// One job already in progress fills the global capacity.
	busy := createPendingJob(t, client.Client, time.Now())
	_, err := client.Client.ReportJob.UpdateOneID(busy.ID).
		SetStatus(reportjob.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)
	createPendingJob(t, client.Client, time.Now())

	w := NewWorker("w-0", "pod-1", client.Client, cfg, NewStubExecutor(), nopRegistry{}, nil)
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrAtCapacity)
}

func TestWorkerPollIntervalJitterBounds(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 100 * time.Millisecond
	cfg.PollIntervalJitter = 20 * time.Millisecond
	w := NewWorker("w-0", "pod-1", nil, cfg, NewStubExecutor(), nopRegistry{}, nil)

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}

	cfg.PollIntervalJitter = 0
	assert.Equal(t, 100*time.Millisecond, w.pollInterval())
}
