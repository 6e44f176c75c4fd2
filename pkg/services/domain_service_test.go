package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
	testdb "github.com/reportline/reportline/test/database"
)

// seedDomainAgents creates one agent of each class so domain playbooks have
// something valid to reference.
func seedDomainAgents(t *testing.T, svc *AgentService, tenantID string) {
	t.Helper()
	ctx := context.Background()
	for _, cls := range []models.AgentClass{models.ClassIngestion, models.ClassQuery, models.ClassManagement} {
		in := validAgentInput(string(cls) + "-agent")
		in.Class = cls
		_, err := svc.CreateAgent(ctx, tenantID, in)
		require.NoError(t, err)
	}
}

func validDomainInput(domainID string) DomainInput {
	return DomainInput{
		DomainID: domainID,
		Name:     "Test " + domainID,
		Ingestion: models.Playbook{
			Nodes: []string{"ingestion-agent"},
			Edges: []models.Edge{},
		},
		Query: models.Playbook{
			Nodes: []string{"query-agent"},
			Edges: []models.Edge{},
		},
		Management: models.Playbook{
			Nodes: []string{"management-agent"},
			Edges: []models.Edge{},
		},
	}
}

func TestDomainServiceCreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	agents := NewAgentService(client.Client, nil)
	svc := NewDomainService(client.Client, agents, nil)
	seedDomainAgents(t, agents, "acme")

	rec, err := svc.CreateDomain(ctx, "acme", validDomainInput("support"))
	require.NoError(t, err)
	assert.Equal(t, "support", rec.DomainID)
	assert.Equal(t, []string{"ingestion-agent"}, rec.IngestionPlaybook.Nodes)

	got, err := svc.GetDomain(ctx, "acme", "support")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = svc.CreateDomain(ctx, "acme", validDomainInput("support"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDomainServicePlaybookValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	agents := NewAgentService(client.Client, nil)
	svc := NewDomainService(client.Client, agents, nil)
	seedDomainAgents(t, agents, "acme")

	tests := []struct {
		name   string
		mutate func(*DomainInput)
		field  string
	}{
		{"missing domain id", func(in *DomainInput) { in.DomainID = "" }, "domain_id"},
		{"empty ingestion playbook", func(in *DomainInput) {
			in.Ingestion.Nodes = []string{}
		}, "ingestion_playbook"},
		{"unknown node", func(in *DomainInput) {
			in.Query.Nodes = []string{"nonexistent"}
		}, "query_playbook"},
		{"class mismatch", func(in *DomainInput) {
			// A query agent cannot appear in the management playbook.
			in.Management.Nodes = []string{"query-agent"}
		}, "management_playbook"},
		{"dangling edge", func(in *DomainInput) {
			in.Ingestion.Edges = []models.Edge{{From: "ingestion-agent", To: "elsewhere"}}
		}, "ingestion_playbook"},
		{"cyclic playbook", func(in *DomainInput) {
			in.Ingestion.Edges = []models.Edge{{From: "ingestion-agent", To: "ingestion-agent"}}
		}, "ingestion_playbook"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDomainInput("bad")
			tt.mutate(&in)
			_, err := svc.CreateDomain(ctx, "acme", in)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDomainServiceSystemFallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, SeedBuiltins(ctx, client.Client))
	agents := NewAgentService(client.Client, nil)
	svc := NewDomainService(client.Client, agents, nil)

	// A tenant with no domains of its own resolves the built-in one.
	rec, err := svc.GetDomain(ctx, "acme", "incidents")
	require.NoError(t, err)
	assert.Equal(t, registry.SystemTenant, rec.TenantID)
	assert.True(t, rec.IsBuiltin)

	_, err = svc.GetDomain(ctx, "acme", "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDomainServiceUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, SeedBuiltins(ctx, client.Client))
	inv := &recordingInvalidator{}
	agents := NewAgentService(client.Client, nil)
	svc := NewDomainService(client.Client, agents, inv)
	seedDomainAgents(t, agents, "acme")

	_, err := svc.CreateDomain(ctx, "acme", validDomainInput("support"))
	require.NoError(t, err)

	in := validDomainInput("support")
	in.Name = "Customer Support"
	updated, err := svc.UpdateDomain(ctx, "acme", "support", in)
	require.NoError(t, err)
	assert.Equal(t, "Customer Support", updated.Name)
	assert.Equal(t, []string{"acme", "acme"}, inv.tenants)

	// Built-in domains reject tenant updates.
	_, err = svc.UpdateDomain(ctx, registry.SystemTenant, "incidents", in)
	assert.ErrorIs(t, err, ErrBuiltinImmutable)

	_, err = svc.UpdateDomain(ctx, "acme", "nonexistent", in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDomainServiceListIncludesBuiltins(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, SeedBuiltins(ctx, client.Client))
	agents := NewAgentService(client.Client, nil)
	svc := NewDomainService(client.Client, agents, nil)
	seedDomainAgents(t, agents, "acme")

	_, err := svc.CreateDomain(ctx, "acme", validDomainInput("support"))
	require.NoError(t, err)

	recs, err := svc.ListDomains(ctx, "acme")
	require.NoError(t, err)
	ids := make(map[string]bool, len(recs))
	for _, rec := range recs {
		ids[rec.DomainID] = true
	}
	assert.True(t, ids["support"])
	assert.True(t, ids["incidents"])
}
