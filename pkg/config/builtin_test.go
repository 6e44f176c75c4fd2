package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/graph"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
)

func TestBuiltinDefsAreValid(t *testing.T) {
	defs := GetBuiltinDefs()
	require.NotEmpty(t, defs.Agents)
	require.NotEmpty(t, defs.Domains)

	all := make(map[string]*models.AgentDef, len(defs.Agents))
	for _, a := range defs.Agents {
		all[a.AgentID] = a
	}

	for _, a := range defs.Agents {
		assert.Equal(t, registry.SystemTenant, a.TenantID, a.AgentID)
		assert.True(t, a.Builtin, a.AgentID)
		assert.True(t, a.Class.IsValid(), a.AgentID)
		assert.NotEmpty(t, a.SystemPrompt, a.AgentID)
		assert.LessOrEqual(t, len(a.OutputSchema), models.MaxOutputSchemaKeys, a.AgentID)
		assert.NoError(t, graph.ValidateAgentDependencies(a.AgentID, a.Dependencies, all), a.AgentID)
	}

	for _, d := range defs.Domains {
		assert.NoError(t, graph.ValidatePlaybook(&d.Ingestion, models.ClassIngestion, all), d.DomainID)
		assert.NoError(t, graph.ValidatePlaybook(&d.Query, models.ClassQuery, all), d.DomainID)
		assert.NoError(t, graph.ValidatePlaybook(&d.Management, models.ClassManagement, all), d.DomainID)
	}
}

func TestBuiltinDefsSingleton(t *testing.T) {
	assert.Same(t, GetBuiltinDefs(), GetBuiltinDefs())
}
