package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/models"
)

// DB is the database-backed Registry. Resolved definitions are cached per
// (tenant, id) until Invalidate is called by the write side.
type DB struct {
	client *ent.Client

	mu      sync.RWMutex
	agents  map[string]*models.AgentDef
	domains map[string]*models.DomainDef
}

// NewDB creates a database-backed registry.
func NewDB(client *ent.Client) *DB {
	return &DB{
		client:  client,
		agents:  make(map[string]*models.AgentDef),
		domains: make(map[string]*models.DomainDef),
	}
}

// Invalidate drops all cached definitions for a tenant. Called after any
// agent or domain write. Invalidating the system tenant drops everything,
// since every tenant may resolve through the fallback.
func (r *DB) Invalidate(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tenantID == SystemTenant {
		r.agents = make(map[string]*models.AgentDef)
		r.domains = make(map[string]*models.DomainDef)
		return
	}
	prefix := tenantID + "/"
	for key := range r.agents {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(r.agents, key)
		}
	}
	for key := range r.domains {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(r.domains, key)
		}
	}
}

func cacheKey(tenantID, id string) string {
	return tenantID + "/" + id
}

// GetAgent implements Registry.
func (r *DB) GetAgent(ctx context.Context, tenantID, agentID string) (*models.AgentDef, error) {
	key := cacheKey(tenantID, agentID)
	r.mu.RLock()
	if def, ok := r.agents[key]; ok {
		r.mu.RUnlock()
		return def, nil
	}
	r.mu.RUnlock()

	rec, err := r.queryAgent(ctx, tenantID, agentID)
	if err != nil {
		return nil, err
	}
	def := agentFromRecord(rec)

	r.mu.Lock()
	r.agents[key] = def
	r.mu.Unlock()
	return def, nil
}

// queryAgent resolves the row, trying the tenant first and the system
// tenant second.
func (r *DB) queryAgent(ctx context.Context, tenantID, agentID string) (*ent.AgentRecord, error) {
	rec, err := r.client.AgentRecord.Query().
		Where(agentrecord.TenantID(tenantID), agentrecord.AgentID(agentID)).
		Only(ctx)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent %s: %w", agentID, err)
	}
	if tenantID != SystemTenant {
		rec, err = r.client.AgentRecord.Query().
			Where(agentrecord.TenantID(SystemTenant), agentrecord.AgentID(agentID)).
			Only(ctx)
		if err == nil {
			return rec, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query agent %s: %w", agentID, err)
		}
	}
	return nil, fmt.Errorf("%w: %s (tenant %s)", ErrAgentNotFound, agentID, tenantID)
}

// GetDomain implements Registry.
func (r *DB) GetDomain(ctx context.Context, tenantID, domainID string) (*models.DomainDef, error) {
	key := cacheKey(tenantID, domainID)
	r.mu.RLock()
	if def, ok := r.domains[key]; ok {
		r.mu.RUnlock()
		return def, nil
	}
	r.mu.RUnlock()

	rec, err := r.queryDomain(ctx, tenantID, domainID)
	if err != nil {
		return nil, err
	}
	def := domainFromRecord(rec)

	r.mu.Lock()
	r.domains[key] = def
	r.mu.Unlock()
	return def, nil
}

func (r *DB) queryDomain(ctx context.Context, tenantID, domainID string) (*ent.DomainRecord, error) {
	rec, err := r.client.DomainRecord.Query().
		Where(domainrecord.TenantID(tenantID), domainrecord.DomainID(domainID)).
		Only(ctx)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query domain %s: %w", domainID, err)
	}
	if tenantID != SystemTenant {
		rec, err = r.client.DomainRecord.Query().
			Where(domainrecord.TenantID(SystemTenant), domainrecord.DomainID(domainID)).
			Only(ctx)
		if err == nil {
			return rec, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query domain %s: %w", domainID, err)
		}
	}
	return nil, fmt.Errorf("%w: %s (tenant %s)", ErrDomainNotFound, domainID, tenantID)
}

// GetPlaybook implements Registry.
func (r *DB) GetPlaybook(ctx context.Context, tenantID, domainID string, kind models.JobKind) (*models.Playbook, error) {
	domain, err := r.GetDomain(ctx, tenantID, domainID)
	if err != nil {
		return nil, err
	}
	return playbookFor(domain, kind)
}

// ListAgents implements Registry. Missing ids are omitted.
func (r *DB) ListAgents(ctx context.Context, tenantID string, agentIDs []string) (map[string]*models.AgentDef, error) {
	out := make(map[string]*models.AgentDef, len(agentIDs))
	for _, id := range agentIDs {
		def, err := r.GetAgent(ctx, tenantID, id)
		if err != nil {
			if errors.Is(err, ErrAgentNotFound) {
				continue
			}
			return nil, err
		}
		out[id] = def
	}
	return out, nil
}

// agentFromRecord converts a stored row to the immutable in-memory snapshot.
func agentFromRecord(rec *ent.AgentRecord) *models.AgentDef {
	return &models.AgentDef{
		AgentID:      rec.AgentID,
		Name:         rec.Name,
		TenantID:     rec.TenantID,
		Class:        models.AgentClass(rec.AgentClass),
		SystemPrompt: rec.SystemPrompt,
		Tools:        append([]string(nil), rec.Tools...),
		Dependencies: append([]string(nil), rec.Dependencies...),
		OutputSchema: copySchema(rec.OutputSchema),
		Enabled:      rec.Enabled,
		Version:      rec.Version,
		Builtin:      rec.IsBuiltin,
	}
}

func domainFromRecord(rec *ent.DomainRecord) *models.DomainDef {
	return &models.DomainDef{
		DomainID:   rec.DomainID,
		TenantID:   rec.TenantID,
		Name:       rec.Name,
		Ingestion:  rec.IngestionPlaybook,
		Query:      rec.QueryPlaybook,
		Management: rec.ManagementPlaybook,
	}
}

func copySchema(schema map[string]string) map[string]string {
	out := make(map[string]string, len(schema))
	for k, v := range schema {
		out[k] = v
	}
	return out
}
