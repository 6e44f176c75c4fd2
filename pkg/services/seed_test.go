package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/registry"
	testdb "github.com/reportline/reportline/test/database"
)

func TestSeedBuiltins(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, SeedBuiltins(ctx, client.Client))

	defs := config.GetBuiltinDefs()
	agentCount, err := client.Client.AgentRecord.Query().
		Where(agentrecord.TenantID(registry.SystemTenant)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defs.Agents), agentCount)

	domainCount, err := client.Client.DomainRecord.Query().
		Where(domainrecord.TenantID(registry.SystemTenant)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defs.Domains), domainCount)

	rec, err := client.Client.AgentRecord.Query().
		Where(agentrecord.TenantID(registry.SystemTenant), agentrecord.AgentID("report-triage")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, rec.IsBuiltin)
	assert.NotEmpty(t, rec.SystemPrompt)

	extraction, err := client.Client.AgentRecord.Query().
		Where(agentrecord.TenantID(registry.SystemTenant), agentrecord.AgentID("report-extraction")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"report-triage"}, extraction.Dependencies)
}

func TestSeedBuiltinsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, SeedBuiltins(ctx, client.Client))

	// Edit a built-in row directly, then reseed. The edit must survive.
	_, err := client.Client.AgentRecord.Update().
		Where(agentrecord.TenantID(registry.SystemTenant), agentrecord.AgentID("report-triage")).
		SetSystemPrompt("operator-adjusted prompt").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, SeedBuiltins(ctx, client.Client))

	rec, err := client.Client.AgentRecord.Query().
		Where(agentrecord.TenantID(registry.SystemTenant), agentrecord.AgentID("report-triage")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "operator-adjusted prompt", rec.SystemPrompt)

	count, err := client.Client.AgentRecord.Query().
		Where(agentrecord.TenantID(registry.SystemTenant)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(config.GetBuiltinDefs().Agents), count)
}
