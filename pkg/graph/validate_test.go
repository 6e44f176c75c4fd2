package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
)

func agents(class models.AgentClass, defs map[string][]string) map[string]*models.AgentDef {
	out := make(map[string]*models.AgentDef, len(defs))
	for id, deps := range defs {
		out[id] = &models.AgentDef{
			AgentID:      id,
			Class:        class,
			Dependencies: deps,
			OutputSchema: map[string]string{"value": "string"},
		}
	}
	return out
}

func TestValidateAgentDependencies(t *testing.T) {
	all := agents(models.ClassIngestion, map[string][]string{
		"triage":    nil,
		"extract":   {"triage"},
		"severity":  {"extract"},
		"unrelated": nil,
	})

	t.Run("valid new agent", func(t *testing.T) {
		err := ValidateAgentDependencies("summarize", []string{"severity", "triage"}, all)
		assert.NoError(t, err)
	})

	t.Run("empty deps always valid", func(t *testing.T) {
		assert.NoError(t, ValidateAgentDependencies("leaf", nil, all))
	})

	t.Run("unknown dep rejected", func(t *testing.T) {
		err := ValidateAgentDependencies("summarize", []string{"nope"}, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDependency)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("self dependency is a cycle", func(t *testing.T) {
		err := ValidateAgentDependencies("triage", []string{"triage"}, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCyclicDependency)
	})

	t.Run("two-node cycle rejected", func(t *testing.T) {
		// triage already flows into extract; extract -> triage closes the loop.
		err := ValidateAgentDependencies("triage", []string{"extract"}, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCyclicDependency)
	})

	t.Run("update replaces existing deps", func(t *testing.T) {
		// severity currently depends on extract; repointing it at triage is fine.
		assert.NoError(t, ValidateAgentDependencies("severity", []string{"triage"}, all))
	})

	t.Run("deep cycle through existing edges", func(t *testing.T) {
		err := ValidateAgentDependencies("triage", []string{"severity"}, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCyclicDependency)
	})
}

func TestValidatePlaybook(t *testing.T) {
	all := agents(models.ClassIngestion, map[string][]string{
		"a": nil, "b": nil, "c": nil, "d": nil,
	})

	t.Run("linear chain accepted", func(t *testing.T) {
		pb := &models.Playbook{
			Nodes: []string{"a", "b", "c"},
			Edges: []models.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
		}
		assert.NoError(t, ValidatePlaybook(pb, models.ClassIngestion, all))
	})

	t.Run("single node no edges accepted", func(t *testing.T) {
		pb := &models.Playbook{Nodes: []string{"a"}, Edges: []models.Edge{}}
		assert.NoError(t, ValidatePlaybook(pb, models.ClassIngestion, all))
	})

	t.Run("nil playbook rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePlaybook(nil, models.ClassIngestion, all), ErrMissingGraph)
	})

	t.Run("missing edges field rejected", func(t *testing.T) {
		pb := &models.Playbook{Nodes: []string{"a"}}
		assert.ErrorIs(t, ValidatePlaybook(pb, models.ClassIngestion, all), ErrMissingGraph)
	})

	t.Run("empty node list rejected", func(t *testing.T) {
		pb := &models.Playbook{Nodes: []string{}, Edges: []models.Edge{}}
		assert.ErrorIs(t, ValidatePlaybook(pb, models.ClassIngestion, all), ErrEmptyGraph)
	})

	t.Run("unknown node rejected", func(t *testing.T) {
		pb := &models.Playbook{Nodes: []string{"a", "ghost"}, Edges: []models.Edge{}}
		err := ValidatePlaybook(pb, models.ClassIngestion, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownNode)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("class mismatch names the node", func(t *testing.T) {
		mixed := agents(models.ClassIngestion, map[string][]string{"a": nil})
		mixed["q"] = &models.AgentDef{AgentID: "q", Class: models.ClassQuery}
		pb := &models.Playbook{Nodes: []string{"a", "q"}, Edges: []models.Edge{}}
		err := ValidatePlaybook(pb, models.ClassIngestion, mixed)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrClassMismatch)
		assert.Contains(t, err.Error(), `"q"`)
	})

	t.Run("dangling edge rejected", func(t *testing.T) {
		pb := &models.Playbook{
			Nodes: []string{"a", "b"},
			Edges: []models.Edge{{From: "a", To: "c"}},
		}
		assert.ErrorIs(t, ValidatePlaybook(pb, models.ClassIngestion, all), ErrDanglingEdge)
	})

	t.Run("multi-parent rejected naming the child", func(t *testing.T) {
		pb := &models.Playbook{
			Nodes: []string{"a", "b", "c"},
			Edges: []models.Edge{{From: "a", To: "c"}, {From: "b", To: "c"}},
		}
		err := ValidatePlaybook(pb, models.ClassIngestion, all)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMultiParent)
		assert.Contains(t, err.Error(), `"c"`)
	})

	t.Run("cycle rejected", func(t *testing.T) {
		pb := &models.Playbook{
			Nodes: []string{"a", "b"},
			Edges: []models.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
		}
		assert.ErrorIs(t, ValidatePlaybook(pb, models.ClassIngestion, all), ErrCycleInPlaybook)
	})
}

func TestTopologicalLevelize(t *testing.T) {
	t.Run("diamond levels", func(t *testing.T) {
		levels, err := TopologicalLevelize(
			[]string{"d", "c", "b", "a"},
			[]models.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "b", To: "d"}},
		)
		require.NoError(t, err)
		require.Len(t, levels, 3)
		assert.Equal(t, []string{"a"}, levels[0])
		assert.Equal(t, []string{"b", "c"}, levels[1])
		assert.Equal(t, []string{"d"}, levels[2])
	})

	t.Run("no edges yields single sorted level", func(t *testing.T) {
		levels, err := TopologicalLevelize([]string{"z", "m", "a"}, nil)
		require.NoError(t, err)
		require.Len(t, levels, 1)
		assert.Equal(t, []string{"a", "m", "z"}, levels[0])
	})

	t.Run("cycle reported", func(t *testing.T) {
		_, err := TopologicalLevelize(
			[]string{"a", "b"},
			[]models.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
		)
		assert.ErrorIs(t, err, ErrCycleInPlaybook)
	})
}

func TestTopologicalOrder(t *testing.T) {
	t.Run("order respects edges", func(t *testing.T) {
		order, err := TopologicalOrder(
			[]string{"c", "b", "a", "d"},
			[]models.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "d"}},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, order)
	})

	t.Run("ties broken lexicographically", func(t *testing.T) {
		order, err := TopologicalOrder(
			[]string{"beta", "alpha", "gamma"},
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, order)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		nodes := []string{"n3", "n1", "n4", "n2"}
		edges := []models.Edge{{From: "n1", To: "n3"}, {From: "n1", To: "n4"}}
		first, err := TopologicalOrder(nodes, edges)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := TopologicalOrder(nodes, edges)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}
