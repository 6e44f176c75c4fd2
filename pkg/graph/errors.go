package graph

import "errors"

// Sentinel errors for dependency and playbook validation. Callers match with
// errors.Is; the wrapped message names the offending node or edge.
var (
	// ErrInvalidDependency indicates a proposed dependency that does not exist.
	ErrInvalidDependency = errors.New("invalid dependency")

	// ErrCyclicDependency indicates the proposed dependency set would close a cycle.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrMissingGraph indicates a playbook without a nodes or edges field.
	ErrMissingGraph = errors.New("playbook graph missing")

	// ErrEmptyGraph indicates a playbook with no nodes.
	ErrEmptyGraph = errors.New("playbook has no nodes")

	// ErrUnknownNode indicates a playbook node with no matching agent definition.
	ErrUnknownNode = errors.New("unknown node")

	// ErrClassMismatch indicates a node whose agent class differs from the playbook's.
	ErrClassMismatch = errors.New("agent class mismatch")

	// ErrDanglingEdge indicates an edge endpoint outside the playbook's node set.
	ErrDanglingEdge = errors.New("dangling edge")

	// ErrMultiParent indicates a node with more than one incoming edge.
	ErrMultiParent = errors.New("multiple parents")

	// ErrCycleInPlaybook indicates the playbook's edge graph is cyclic.
	ErrCycleInPlaybook = errors.New("cycle in playbook")
)
