// Package graph validates agent dependency sets and playbook DAGs, and
// computes the topological structure the orchestrator schedules from.
//
// Validation is fail-fast: the first violated rule is reported and checking
// stops. Cycle detection is a tri-color DFS; topological ordering is Kahn's
// algorithm with lexicographic tie-breaking so results are deterministic for
// a given graph. Both are linear in nodes + edges.
package graph

import (
	"fmt"
	"sort"

	"github.com/reportline/reportline/pkg/models"
)

// dfs colors for cycle detection.
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

// ValidateAgentDependencies decides whether writing selfID with proposedDeps
// keeps the tenant's dependency graph acyclic. Every proposed dep must exist
// in allAgents; selfID itself may be new. A self-dependency counts as a cycle.
func ValidateAgentDependencies(selfID string, proposedDeps []string, allAgents map[string]*models.AgentDef) error {
	for _, dep := range proposedDeps {
		if dep == selfID {
			return fmt.Errorf("%w: agent %q depends on itself", ErrCyclicDependency, selfID)
		}
		if _, ok := allAgents[dep]; !ok {
			return fmt.Errorf("%w: agent %q depends on unknown agent %q", ErrInvalidDependency, selfID, dep)
		}
	}

	// Compose the existing dependency graph with the proposed overlay for selfID.
	adj := make(map[string][]string, len(allAgents)+1)
	for id, def := range allAgents {
		if id == selfID {
			continue
		}
		adj[id] = def.Dependencies
	}
	adj[selfID] = proposedDeps

	if from, to, ok := findCycle(adj); ok {
		return fmt.Errorf("%w: adding %q -> %q closes a cycle", ErrCyclicDependency, from, to)
	}
	return nil
}

// ValidatePlaybook checks a playbook against the full rule set: non-empty
// node list, known nodes of the right class, edges within the node set, at
// most one parent per node, and acyclicity.
func ValidatePlaybook(pb *models.Playbook, class models.AgentClass, allAgents map[string]*models.AgentDef) error {
	if pb == nil || pb.Nodes == nil || pb.Edges == nil {
		return fmt.Errorf("%w: nodes and edges are required (may be empty lists)", ErrMissingGraph)
	}
	if len(pb.Nodes) == 0 {
		return ErrEmptyGraph
	}

	nodeSet := make(map[string]bool, len(pb.Nodes))
	for _, id := range pb.Nodes {
		def, ok := allAgents[id]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
		if def.Class != class {
			return fmt.Errorf("%w: node %q has class %q, playbook requires %q", ErrClassMismatch, id, def.Class, class)
		}
		nodeSet[id] = true
	}

	inDegree := make(map[string]int, len(pb.Nodes))
	adj := make(map[string][]string, len(pb.Nodes))
	for _, e := range pb.Edges {
		if !nodeSet[e.From] {
			return fmt.Errorf("%w: edge %q -> %q references node %q outside the playbook", ErrDanglingEdge, e.From, e.To, e.From)
		}
		if !nodeSet[e.To] {
			return fmt.Errorf("%w: edge %q -> %q references node %q outside the playbook", ErrDanglingEdge, e.From, e.To, e.To)
		}
		inDegree[e.To]++
		if inDegree[e.To] > 1 {
			return fmt.Errorf("%w: node %q has more than one incoming edge", ErrMultiParent, e.To)
		}
		adj[e.From] = append(adj[e.From], e.To)
	}

	if from, to, ok := findCycle(adj); ok {
		return fmt.Errorf("%w: edge %q -> %q closes a cycle", ErrCycleInPlaybook, from, to)
	}
	return nil
}

// TopologicalOrder returns every node in a topological order of the edge
// graph, ties broken by lexicographic node ID. Returns ErrCycleInPlaybook if
// the graph is cyclic.
func TopologicalOrder(nodes []string, edges []models.Edge) ([]string, error) {
	levels, err := TopologicalLevelize(nodes, edges)
	if err != nil {
		return nil, err
	}
	order := make([]string, 0, len(nodes))
	for _, level := range levels {
		order = append(order, level...)
	}
	return order, nil
}

// TopologicalLevelize groups nodes into levels: level 0 holds all nodes with
// in-degree zero, level k+1 all nodes whose predecessors lie in levels <= k.
// Nodes within a level are sorted by ID. Returns ErrCycleInPlaybook when the
// graph is cyclic (some nodes can never reach in-degree zero).
func TopologicalLevelize(nodes []string, edges []models.Edge) ([][]string, error) {
	inDegree := make(map[string]int, len(nodes))
	adj := make(map[string][]string, len(nodes))
	for _, id := range nodes {
		inDegree[id] = 0
	}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		inDegree[e.To]++
	}

	var frontier []string
	for _, id := range nodes {
		if inDegree[id] == 0 {
			frontier = append(frontier, id)
		}
	}

	var levels [][]string
	seen := 0
	for len(frontier) > 0 {
		sort.Strings(frontier)
		levels = append(levels, frontier)
		seen += len(frontier)

		var next []string
		for _, id := range frontier {
			for _, succ := range adj[id] {
				inDegree[succ]--
				if inDegree[succ] == 0 {
					next = append(next, succ)
				}
			}
		}
		frontier = next
	}

	if seen != len(nodes) {
		return nil, fmt.Errorf("%w: %d of %d nodes unreachable from a zero in-degree node", ErrCycleInPlaybook, len(nodes)-seen, len(nodes))
	}
	return levels, nil
}

// findCycle runs a tri-color DFS over the adjacency map. On a cycle it
// returns the closing edge (from, to, true): the edge that reached an
// in-progress node. Iteration order is sorted so the reported edge is stable.
func findCycle(adj map[string][]string) (string, string, bool) {
	color := make(map[string]int, len(adj))

	roots := make([]string, 0, len(adj))
	for id := range adj {
		roots = append(roots, id)
	}
	sort.Strings(roots)

	var closeFrom, closeTo string
	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = colorInProgress
		for _, succ := range adj[id] {
			switch color[succ] {
			case colorInProgress:
				closeFrom, closeTo = id, succ
				return true
			case colorUnvisited:
				if visit(succ) {
					return true
				}
			}
		}
		color[id] = colorDone
		return false
	}

	for _, id := range roots {
		if color[id] == colorUnvisited && visit(id) {
			return closeFrom, closeTo, true
		}
	}
	return "", "", false
}
