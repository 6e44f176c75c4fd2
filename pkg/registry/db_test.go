package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/pkg/models"
	testdb "github.com/reportline/reportline/test/database"
)

func createAgentRecord(t *testing.T, client *ent.Client, tenantID, agentID, prompt string) {
	t.Helper()
	err := client.AgentRecord.Create().
		SetTenantID(tenantID).
		SetAgentID(agentID).
		SetName(agentID).
		SetAgentClass(agentrecord.AgentClassIngestion).
		SetSystemPrompt(prompt).
		SetOutputSchema(map[string]string{"category": "string"}).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestDBGetAgentFallsBackToSystem(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createAgentRecord(t, client.Client, SystemTenant, "triage", "system prompt")
	createAgentRecord(t, client.Client, "acme", "triage", "tenant prompt")

	reg := NewDB(client.Client)

	// A tenant row shadows the system row.
	def, err := reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, "tenant prompt", def.SystemPrompt)
	assert.Equal(t, "acme", def.TenantID)

	// A tenant with no row of its own resolves through the fallback.
	def, err = reg.GetAgent(ctx, "other", "triage")
	require.NoError(t, err)
	assert.Equal(t, "system prompt", def.SystemPrompt)
	assert.Equal(t, SystemTenant, def.TenantID)

	_, err = reg.GetAgent(ctx, "acme", "missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestDBCacheInvalidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createAgentRecord(t, client.Client, "acme", "triage", "v1")
	reg := NewDB(client.Client)

	def, err := reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, "v1", def.SystemPrompt)

	// An update is invisible until the write side invalidates.
	err = client.AgentRecord.Update().
		Where(agentrecord.TenantID("acme"), agentrecord.AgentID("triage")).
		SetSystemPrompt("v2").
		Exec(ctx)
	require.NoError(t, err)

	def, err = reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, "v1", def.SystemPrompt)

	reg.Invalidate("acme")
	def, err = reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, "v2", def.SystemPrompt)
}

func TestDBInvalidateSystemDropsEverything(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createAgentRecord(t, client.Client, SystemTenant, "triage", "v1")
	reg := NewDB(client.Client)

	// Warm the cache through the fallback path.
	_, err := reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)

	err = client.AgentRecord.Update().
		Where(agentrecord.TenantID(SystemTenant), agentrecord.AgentID("triage")).
		SetSystemPrompt("v2").
		Exec(ctx)
	require.NoError(t, err)

	reg.Invalidate(SystemTenant)

	def, err := reg.GetAgent(ctx, "acme", "triage")
	require.NoError(t, err)
	assert.Equal(t, "v2", def.SystemPrompt)
}

func TestDBListAgentsOmitsMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createAgentRecord(t, client.Client, "acme", "a", "p")
	createAgentRecord(t, client.Client, "acme", "b", "p")

	reg := NewDB(client.Client)
	defs, err := reg.ListAgents(ctx, "acme", []string{"a", "b", "ghost"})
	require.NoError(t, err)
	assert.Len(t, defs, 2)
	assert.NotContains(t, defs, "ghost")
}

func TestDBGetPlaybookByKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	err := client.DomainRecord.Create().
		SetTenantID("acme").
		SetDomainID("incidents").
		SetName("Incidents").
		SetIngestionPlaybook(models.Playbook{Nodes: []string{"a"}}).
		SetQueryPlaybook(models.Playbook{Nodes: []string{"b"}}).
		SetManagementPlaybook(models.Playbook{Nodes: []string{"c"}}).
		Exec(ctx)
	require.NoError(t, err)

	reg := NewDB(client.Client)
	pb, err := reg.GetPlaybook(ctx, "acme", "incidents", models.KindQuery)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, pb.Nodes)
}
