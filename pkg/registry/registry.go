// Package registry provides read-side lookups of agent and domain
// definitions. Lookups fall through to the shared system tenant when the
// primary tenant lacks the id; that fallback is a rule of this contract, not
// of the orchestrator.
package registry

import (
	"context"
	"errors"

	"github.com/reportline/reportline/pkg/models"
)

// SystemTenant owns the built-in agents and domains shared by every tenant.
const SystemTenant = "system"

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrDomainNotFound   = errors.New("domain not found")
	ErrPlaybookNotFound = errors.New("playbook not found")
)

// Registry resolves agent and domain definitions. Implementations must be
// safe for concurrent use and may cache; returned values are snapshots the
// caller may hold for the duration of a job.
type Registry interface {
	// GetAgent returns the agent for the tenant, falling back to the system
	// tenant. Returns ErrAgentNotFound when neither has it.
	GetAgent(ctx context.Context, tenantID, agentID string) (*models.AgentDef, error)

	// GetDomain returns the domain for the tenant, falling back to the
	// system tenant. Returns ErrDomainNotFound when neither has it.
	GetDomain(ctx context.Context, tenantID, domainID string) (*models.DomainDef, error)

	// GetPlaybook returns one of the domain's three playbooks.
	GetPlaybook(ctx context.Context, tenantID, domainID string, kind models.JobKind) (*models.Playbook, error)

	// ListAgents resolves a set of agent IDs; missing ids are omitted from
	// the result, never an error.
	ListAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*models.AgentDef, error)
}

// playbookFor is the shared GetPlaybook tail used by implementations.
func playbookFor(domain *models.DomainDef, kind models.JobKind) (*models.Playbook, error) {
	pb, err := domain.PlaybookFor(kind)
	if err != nil {
		return nil, ErrPlaybookNotFound
	}
	return pb, nil
}
