package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
	testdb "github.com/reportline/reportline/test/database"
)

// recordingInvalidator captures cache invalidations triggered by writes.
type recordingInvalidator struct {
	tenants []string
}

func (r *recordingInvalidator) Invalidate(tenantID string) {
	r.tenants = append(r.tenants, tenantID)
}

func boolPtr(b bool) *bool { return &b }

func validAgentInput(agentID string) AgentInput {
	return AgentInput{
		AgentID:      agentID,
		Name:         "Test " + agentID,
		Class:        models.ClassIngestion,
		SystemPrompt: "You classify incoming reports.",
		OutputSchema: map[string]string{"category": "string"},
	}
}

func TestAgentServiceCreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inv := &recordingInvalidator{}
	svc := NewAgentService(client.Client, inv)

	rec, err := svc.CreateAgent(ctx, "acme", validAgentInput("triage"))
	require.NoError(t, err)
	assert.Equal(t, "triage", rec.AgentID)
	assert.Equal(t, "acme", rec.TenantID)
	assert.Equal(t, 1, rec.Version)
	assert.True(t, rec.Enabled)
	assert.False(t, rec.IsBuiltin)
	assert.Equal(t, []string{"acme"}, inv.tenants)

	got, err := svc.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	// Same agent ID in a different tenant is a separate row.
	_, err = svc.CreateAgent(ctx, "other", validAgentInput("triage"))
	require.NoError(t, err)

	// Duplicate within the tenant is rejected.
	_, err = svc.CreateAgent(ctx, "acme", validAgentInput("triage"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAgentServiceCreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewAgentService(client.Client, nil)

	tests := []struct {
		name   string
		mutate func(*AgentInput)
		field  string
	}{
		{"missing agent id", func(in *AgentInput) { in.AgentID = "" }, "agent_id"},
		{"unknown class", func(in *AgentInput) { in.Class = "synthesis" }, "agent_class"},
		{"missing prompt", func(in *AgentInput) { in.SystemPrompt = "" }, "system_prompt"},
		{"empty schema", func(in *AgentInput) { in.OutputSchema = nil }, "output_schema"},
		{"oversized schema", func(in *AgentInput) {
			in.OutputSchema = map[string]string{
				"a": "string", "b": "string", "c": "string",
				"d": "string", "e": "string", "f": "string",
			}
		}, "output_schema"},
		{"unknown dependency", func(in *AgentInput) { in.Dependencies = []string{"missing"} }, "dependencies"},
		{"self dependency", func(in *AgentInput) { in.Dependencies = []string{"newagent"} }, "dependencies"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAgentInput("newagent")
			tt.mutate(&in)
			_, err := svc.CreateAgent(ctx, "acme", in)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAgentServiceRejectsDependencyCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewAgentService(client.Client, nil)

	_, err := svc.CreateAgent(ctx, "acme", validAgentInput("a"))
	require.NoError(t, err)

	inB := validAgentInput("b")
	inB.Dependencies = []string{"a"}
	_, err = svc.CreateAgent(ctx, "acme", inB)
	require.NoError(t, err)

	// Pointing a's dependencies at b would close the cycle a -> b -> a.
	inA := validAgentInput("a")
	inA.Dependencies = []string{"b"}
	_, err = svc.UpdateAgent(ctx, "acme", "a", inA)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "cycle")
}

func TestAgentServiceUpdateBumpsVersion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inv := &recordingInvalidator{}
	svc := NewAgentService(client.Client, inv)

	_, err := svc.CreateAgent(ctx, "acme", validAgentInput("triage"))
	require.NoError(t, err)

	in := validAgentInput("triage")
	in.SystemPrompt = "Updated prompt."
	in.Enabled = boolPtr(false)
	updated, err := svc.UpdateAgent(ctx, "acme", "triage", in)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "Updated prompt.", updated.SystemPrompt)
	assert.False(t, updated.Enabled)
	assert.Equal(t, []string{"acme", "acme"}, inv.tenants)

	// Class omitted on update keeps the stored class.
	in.Class = ""
	in.Enabled = nil
	updated, err = svc.UpdateAgent(ctx, "acme", "triage", in)
	require.NoError(t, err)
	assert.Equal(t, "ingestion", string(updated.AgentClass))
	assert.Equal(t, 3, updated.Version)
}

func TestAgentServiceBuiltinImmutable(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, SeedBuiltins(ctx, client.Client))
	svc := NewAgentService(client.Client, nil)

	in := validAgentInput("report-triage")
	_, err := svc.UpdateAgent(ctx, registry.SystemTenant, "report-triage", in)
	assert.ErrorIs(t, err, ErrBuiltinImmutable)

	err = svc.DeleteAgent(ctx, registry.SystemTenant, "report-triage")
	assert.ErrorIs(t, err, ErrBuiltinImmutable)
}

func TestAgentServiceDeleteGuardsDependents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewAgentService(client.Client, nil)

	_, err := svc.CreateAgent(ctx, "acme", validAgentInput("base"))
	require.NoError(t, err)
	in := validAgentInput("dependent")
	in.Dependencies = []string{"base"}
	_, err = svc.CreateAgent(ctx, "acme", in)
	require.NoError(t, err)

	err = svc.DeleteAgent(ctx, "acme", "base")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), `"dependent" depends on "base"`)

	require.NoError(t, svc.DeleteAgent(ctx, "acme", "dependent"))
	require.NoError(t, svc.DeleteAgent(ctx, "acme", "base"))

	_, err = svc.GetAgent(ctx, "acme", "base")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentServiceListIncludesBuiltins(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, SeedBuiltins(ctx, client.Client))
	svc := NewAgentService(client.Client, nil)

	_, err := svc.CreateAgent(ctx, "acme", validAgentInput("custom"))
	require.NoError(t, err)

	recs, err := svc.ListAgents(ctx, "acme")
	require.NoError(t, err)

	byID := make(map[string]string, len(recs))
	for _, rec := range recs {
		byID[rec.AgentID] = rec.TenantID
	}
	assert.Equal(t, "acme", byID["custom"])
	assert.Equal(t, registry.SystemTenant, byID["report-triage"])

	// Another tenant does not see acme's agent.
	recs, err = svc.ListAgents(ctx, "other")
	require.NoError(t, err)
	for _, rec := range recs {
		assert.NotEqual(t, "custom", rec.AgentID)
	}
}
