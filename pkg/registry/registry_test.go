package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
)

func seedStatic() *Static {
	s := NewStatic()
	s.PutAgent(&models.AgentDef{
		AgentID: "triage", TenantID: "acme", Class: models.ClassIngestion,
	})
	s.PutAgent(&models.AgentDef{
		AgentID: "shared-summarizer", TenantID: SystemTenant, Class: models.ClassQuery,
	})
	s.PutAgent(&models.AgentDef{
		AgentID: "triage", TenantID: SystemTenant, Class: models.ClassIngestion, Builtin: true,
	})
	s.PutDomain(&models.DomainDef{
		DomainID: "support", TenantID: "acme",
		Ingestion: models.Playbook{Nodes: []string{"triage"}, Edges: []models.Edge{}},
		Query:     models.Playbook{Nodes: []string{"shared-summarizer"}, Edges: []models.Edge{}},
	})
	s.PutDomain(&models.DomainDef{
		DomainID: "incidents", TenantID: SystemTenant,
		Ingestion: models.Playbook{Nodes: []string{"triage"}, Edges: []models.Edge{}},
	})
	return s
}

func TestStaticGetAgent(t *testing.T) {
	s := seedStatic()
	ctx := context.Background()

	t.Run("tenant agent wins over system", func(t *testing.T) {
		def, err := s.GetAgent(ctx, "acme", "triage")
		require.NoError(t, err)
		assert.Equal(t, "acme", def.TenantID)
		assert.False(t, def.Builtin)
	})

	t.Run("falls back to system tenant", func(t *testing.T) {
		def, err := s.GetAgent(ctx, "acme", "shared-summarizer")
		require.NoError(t, err)
		assert.Equal(t, SystemTenant, def.TenantID)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := s.GetAgent(ctx, "acme", "ghost")
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("unknown tenant still sees system agents", func(t *testing.T) {
		def, err := s.GetAgent(ctx, "nobody", "triage")
		require.NoError(t, err)
		assert.Equal(t, SystemTenant, def.TenantID)
	})
}

func TestStaticGetDomain(t *testing.T) {
	s := seedStatic()
	ctx := context.Background()

	t.Run("tenant domain", func(t *testing.T) {
		def, err := s.GetDomain(ctx, "acme", "support")
		require.NoError(t, err)
		assert.Equal(t, "acme", def.TenantID)
	})

	t.Run("system fallback", func(t *testing.T) {
		def, err := s.GetDomain(ctx, "acme", "incidents")
		require.NoError(t, err)
		assert.Equal(t, SystemTenant, def.TenantID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.GetDomain(ctx, "acme", "ghost")
		assert.ErrorIs(t, err, ErrDomainNotFound)
	})
}

func TestStaticGetPlaybook(t *testing.T) {
	s := seedStatic()
	ctx := context.Background()

	pb, err := s.GetPlaybook(ctx, "acme", "support", models.KindQuery)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared-summarizer"}, pb.Nodes)

	_, err = s.GetPlaybook(ctx, "acme", "support", models.JobKind("bogus"))
	assert.ErrorIs(t, err, ErrPlaybookNotFound)

	_, err = s.GetPlaybook(ctx, "acme", "ghost", models.KindQuery)
	assert.ErrorIs(t, err, ErrDomainNotFound)
}

func TestStaticListAgents(t *testing.T) {
	s := seedStatic()

	out, err := s.ListAgents(context.Background(), "acme", []string{"triage", "shared-summarizer", "ghost"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Contains(t, out, "triage")
	assert.Contains(t, out, "shared-summarizer")
	assert.NotContains(t, out, "ghost")
}
