package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/incident"
	"github.com/reportline/reportline/ent/queryanswer"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/orchestrator"
	"github.com/reportline/reportline/pkg/registry"
	testdb "github.com/reportline/reportline/test/database"
)

// scriptedInvoker returns a canned success output per agent ID.
type scriptedInvoker struct {
	outputs map[string]map[string]any
}

func (s *scriptedInvoker) Invoke(_ context.Context, _ string, def *models.AgentDef, _ map[string]any) *models.AgentOutput {
	out, ok := s.outputs[def.AgentID]
	if !ok {
		return &models.AgentOutput{
			Status:       models.OutputError,
			ErrorMessage: "no script for agent " + def.AgentID,
		}
	}
	return &models.AgentOutput{
		Status:     models.OutputSuccess,
		Output:     out,
		Reasoning:  "scripted",
		Confidence: 1.0,
	}
}

func testRegistry() *registry.Static {
	reg := registry.NewStatic()
	reg.PutAgent(&models.AgentDef{
		AgentID:      "triage",
		TenantID:     registry.SystemTenant,
		Class:        models.ClassIngestion,
		SystemPrompt: "Classify the report.",
		OutputSchema: map[string]string{"category": "string"},
		Enabled:      true,
	})
	reg.PutAgent(&models.AgentDef{
		AgentID:      "severity",
		TenantID:     registry.SystemTenant,
		Class:        models.ClassIngestion,
		SystemPrompt: "Rate the severity.",
		Dependencies: []string{"triage"},
		OutputSchema: map[string]string{"severity": "string", "rationale": "string"},
		Enabled:      true,
	})
	reg.PutAgent(&models.AgentDef{
		AgentID:      "answer",
		TenantID:     registry.SystemTenant,
		Class:        models.ClassQuery,
		SystemPrompt: "Answer the question.",
		OutputSchema: map[string]string{"answer": "string", "confidence": "number"},
		Enabled:      true,
	})
	reg.PutDomain(&models.DomainDef{
		DomainID: "incidents",
		TenantID: registry.SystemTenant,
		Ingestion: models.Playbook{
			Nodes: []string{"triage", "severity"},
			Edges: []models.Edge{{From: "triage", To: "severity"}},
		},
		Query: models.Playbook{
			Nodes: []string{"answer"},
			Edges: []models.Edge{},
		},
		Management: models.Playbook{
			Nodes: []string{"answer"},
			Edges: []models.Edge{},
		},
	})
	return reg
}

func newTestExecutor(client *ent.Client, inv orchestrator.Invoker) *RealJobExecutor {
	cfg := config.Default()
	return NewRealJobExecutor(&cfg, client, testRegistry(), inv, nil)
}

func createJob(t *testing.T, client *ent.Client, kind reportjob.Kind, rawInput string) *ent.ReportJob {
	t.Helper()
	job, err := client.ReportJob.Create().
		SetID(uuid.New().String()).
		SetKind(kind).
		SetTenantID("acme").
		SetUserID("user-1").
		SetDomainID("incidents").
		SetInput(map[string]any{models.RawInputKey: rawInput}).
		SetStatus(reportjob.StatusInProgress).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestExecutorIngestionCreatesIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	inv := &scriptedInvoker{outputs: map[string]map[string]any{
		"triage":   {"category": "database"},
		"severity": {"severity": "major", "rationale": "replica lag"},
	}}
	exec := newTestExecutor(client.Client, inv)
	job := createJob(t, client.Client, reportjob.KindIngestion, "DB replica lagging")

	result := exec.Execute(ctx, job)
	require.Equal(t, reportjob.StatusCompleted, result.Status)
	require.NotEmpty(t, result.ArtifactID)
	assert.Len(t, result.ExecutionLog, 2)
	assert.Equal(t, 2, result.CacheStats.ExecutedAgents)

	rec, err := client.Client.Incident.Query().
		Where(incident.ID(result.ArtifactID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme", rec.TenantID)
	assert.Equal(t, job.ID, rec.JobID)
	assert.Equal(t, "DB replica lagging", rec.RawReport)
	assert.Equal(t, "database", rec.Category)
	assert.Equal(t, "major", rec.Severity)
	assert.Equal(t, "major", rec.Data["severity"])
}

func TestExecutorQueryCreatesAnswer(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	inv := &scriptedInvoker{outputs: map[string]map[string]any{
		"answer": {"answer": "Two incidents last week.", "confidence": 0.9},
	}}
	exec := newTestExecutor(client.Client, inv)
	job := createJob(t, client.Client, reportjob.KindQuery, "How many incidents last week?")

	result := exec.Execute(ctx, job)
	require.Equal(t, reportjob.StatusCompleted, result.Status)

	rec, err := client.Client.QueryAnswer.Query().
		Where(queryanswer.ID(result.ArtifactID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, queryanswer.KindQuery, rec.Kind)
	assert.Equal(t, "How many incidents last week?", rec.Question)
	assert.Equal(t, "Two incidents last week.", rec.Data["answer"])
	assert.InDelta(t, 0.9, rec.Confidence, 1e-9)
}

func TestExecutorUnknownDomainFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	exec := newTestExecutor(client.Client, &scriptedInvoker{})
	job := createJob(t, client.Client, reportjob.KindIngestion, "report")
	job.DomainID = "nonexistent"

	result := exec.Execute(ctx, job)
	assert.Equal(t, reportjob.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "nonexistent")
}

func TestExecutorAgentFailureFailsJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Only triage is scripted; severity errors and the job fails.
	inv := &scriptedInvoker{outputs: map[string]map[string]any{
		"triage": {"category": "database"},
	}}
	exec := newTestExecutor(client.Client, inv)
	job := createJob(t, client.Client, reportjob.KindIngestion, "report")

	result := exec.Execute(ctx, job)
	assert.Equal(t, reportjob.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "agent severity failed")

	// The log still carries the successful triage entry for post-mortem.
	require.Len(t, result.ExecutionLog, 2)
	assert.Equal(t, models.EntrySuccess, result.ExecutionLog[0].Status)
	assert.Equal(t, models.EntryError, result.ExecutionLog[1].Status)

	// No artifact for failed jobs.
	n, err := client.Client.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExecutorCancelledContext(t *testing.T) {
	client := testdb.NewTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := newTestExecutor(client.Client, &scriptedInvoker{})
	job := createJob(t, client.Client, reportjob.KindIngestion, "report")

	result := exec.Execute(ctx, job)
	assert.Equal(t, reportjob.StatusCancelled, result.Status)
	require.Error(t, result.Error)
}
