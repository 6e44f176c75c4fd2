package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/reportline/reportline/pkg/models"
)

// Static is an in-memory Registry. It backs tests and the built-in seed;
// production lookups go through the database-backed registry.
type Static struct {
	mu      sync.RWMutex
	agents  map[string]map[string]*models.AgentDef  // tenant → agentID → def
	domains map[string]map[string]*models.DomainDef // tenant → domainID → def
}

// NewStatic creates an empty in-memory registry.
func NewStatic() *Static {
	return &Static{
		agents:  make(map[string]map[string]*models.AgentDef),
		domains: make(map[string]map[string]*models.DomainDef),
	}
}

// PutAgent registers or replaces an agent definition.
func (s *Static) PutAgent(def *models.AgentDef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tenant, ok := s.agents[def.TenantID]
	if !ok {
		tenant = make(map[string]*models.AgentDef)
		s.agents[def.TenantID] = tenant
	}
	tenant[def.AgentID] = def
}

// PutDomain registers or replaces a domain definition.
func (s *Static) PutDomain(def *models.DomainDef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tenant, ok := s.domains[def.TenantID]
	if !ok {
		tenant = make(map[string]*models.DomainDef)
		s.domains[def.TenantID] = tenant
	}
	tenant[def.DomainID] = def
}

// GetAgent implements Registry.
func (s *Static) GetAgent(_ context.Context, tenantID, agentID string) (*models.AgentDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if def, ok := s.agents[tenantID][agentID]; ok {
		return def, nil
	}
	if def, ok := s.agents[SystemTenant][agentID]; ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s (tenant %s)", ErrAgentNotFound, agentID, tenantID)
}

// GetDomain implements Registry.
func (s *Static) GetDomain(_ context.Context, tenantID, domainID string) (*models.DomainDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if def, ok := s.domains[tenantID][domainID]; ok {
		return def, nil
	}
	if def, ok := s.domains[SystemTenant][domainID]; ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s (tenant %s)", ErrDomainNotFound, domainID, tenantID)
}

// GetPlaybook implements Registry.
func (s *Static) GetPlaybook(ctx context.Context, tenantID, domainID string, kind models.JobKind) (*models.Playbook, error) {
	domain, err := s.GetDomain(ctx, tenantID, domainID)
	if err != nil {
		return nil, err
	}
	return playbookFor(domain, kind)
}

// ListAgents implements Registry. Missing ids are omitted.
func (s *Static) ListAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*models.AgentDef, error) {
	out := make(map[string]*models.AgentDef, len(agentIDs))
	for _, id := range agentIDs {
		def, err := s.GetAgent(ctx, tenantID, id)
		if err != nil {
			continue
		}
		out[id] = def
	}
	return out, nil
}
