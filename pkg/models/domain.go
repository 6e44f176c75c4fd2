package models

import "fmt"

// Edge is a directed dependency edge between two playbook nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Playbook is a DAG of agent IDs for one job kind. Both fields are required
// on the wire even when empty; Nodes must be non-empty for a valid playbook.
type Playbook struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// JobKind selects which of a domain's three playbooks a job runs.
type JobKind string

const (
	KindIngestion  JobKind = "ingestion"
	KindQuery      JobKind = "query"
	KindManagement JobKind = "management"
)

// IsValid reports whether the kind is one of the three known values.
func (k JobKind) IsValid() bool {
	switch k {
	case KindIngestion, KindQuery, KindManagement:
		return true
	}
	return false
}

// Class returns the agent class required of every node in a playbook of this kind.
func (k JobKind) Class() AgentClass {
	return AgentClass(k)
}

// DomainDef is an immutable snapshot of a domain: three playbooks sharing a
// domain ID. Invariant (enforced at write time): every node of a playbook
// references an agent whose class matches the playbook's kind.
type DomainDef struct {
	DomainID   string   `json:"domain_id"`
	TenantID   string   `json:"tenant_id"`
	Name       string   `json:"name,omitempty"`
	Ingestion  Playbook `json:"ingestion_playbook"`
	Query      Playbook `json:"query_playbook"`
	Management Playbook `json:"management_playbook"`
}

// PlaybookFor returns the playbook for the given job kind.
func (d *DomainDef) PlaybookFor(kind JobKind) (*Playbook, error) {
	switch kind {
	case KindIngestion:
		return &d.Ingestion, nil
	case KindQuery:
		return &d.Query, nil
	case KindManagement:
		return &d.Management, nil
	}
	return nil, fmt.Errorf("unknown job kind: %s", kind)
}
