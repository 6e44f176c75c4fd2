package services

import (
	"context"
	"fmt"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/pkg/graph"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
)

// RegistryInvalidator is the write-side hook into the read cache.
type RegistryInvalidator interface {
	Invalidate(tenantID string)
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(string) {}

// AgentInput carries the writable fields of an agent definition.
type AgentInput struct {
	AgentID      string            `json:"agent_id"`
	Name         string            `json:"name"`
	Class        models.AgentClass `json:"agent_class"`
	SystemPrompt string            `json:"system_prompt"`
	Tools        []string          `json:"tools"`
	Dependencies []string          `json:"dependencies"`
	OutputSchema map[string]string `json:"output_schema"`
	Enabled      *bool             `json:"enabled"`
}

// AgentService handles agent definition CRUD. Every write revalidates the
// dependency graph and invalidates the registry cache.
type AgentService struct {
	client      *ent.Client
	invalidator RegistryInvalidator
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, invalidator RegistryInvalidator) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	return &AgentService{client: client, invalidator: invalidator}
}

// CreateAgent validates and stores a new agent definition.
func (s *AgentService) CreateAgent(ctx context.Context, tenantID string, input AgentInput) (*ent.AgentRecord, error) {
	if err := s.validateInput(ctx, tenantID, input); err != nil {
		return nil, err
	}

	exists, err := s.client.AgentRecord.Query().
		Where(agentrecord.TenantID(tenantID), agentrecord.AgentID(input.AgentID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: agent %s", ErrAlreadyExists, input.AgentID)
	}

	builder := s.client.AgentRecord.Create().
		SetAgentID(input.AgentID).
		SetTenantID(tenantID).
		SetName(input.Name).
		SetAgentClass(agentrecord.AgentClass(input.Class)).
		SetSystemPrompt(input.SystemPrompt).
		SetTools(input.Tools).
		SetDependencies(input.Dependencies).
		SetOutputSchema(input.OutputSchema)
	if input.Enabled != nil {
		builder.SetEnabled(*input.Enabled)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	s.invalidator.Invalidate(tenantID)
	return rec, nil
}

// UpdateAgent validates and applies changes to an existing agent, bumping
// its version.
func (s *AgentService) UpdateAgent(ctx context.Context, tenantID, agentID string, input AgentInput) (*ent.AgentRecord, error) {
	rec, err := s.client.AgentRecord.Query().
		Where(agentrecord.TenantID(tenantID), agentrecord.AgentID(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if rec.IsBuiltin {
		return nil, fmt.Errorf("%w: agent %s", ErrBuiltinImmutable, agentID)
	}

	input.AgentID = agentID
	if input.Class == "" {
		input.Class = models.AgentClass(rec.AgentClass)
	}
	if err := s.validateInput(ctx, tenantID, input); err != nil {
		return nil, err
	}

	builder := rec.Update().
		SetName(input.Name).
		SetAgentClass(agentrecord.AgentClass(input.Class)).
		SetSystemPrompt(input.SystemPrompt).
		SetTools(input.Tools).
		SetDependencies(input.Dependencies).
		SetOutputSchema(input.OutputSchema).
		SetVersion(rec.Version + 1)
	if input.Enabled != nil {
		builder.SetEnabled(*input.Enabled)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	s.invalidator.Invalidate(tenantID)
	return updated, nil
}

// GetAgent returns one agent row for the tenant.
func (s *AgentService) GetAgent(ctx context.Context, tenantID, agentID string) (*ent.AgentRecord, error) {
	rec, err := s.client.AgentRecord.Query().
		Where(agentrecord.TenantID(tenantID), agentrecord.AgentID(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return rec, nil
}

// ListAgents returns all agent rows visible to the tenant: its own plus the
// built-in system ones.
func (s *AgentService) ListAgents(ctx context.Context, tenantID string) ([]*ent.AgentRecord, error) {
	recs, err := s.client.AgentRecord.Query().
		Where(agentrecord.TenantIDIn(tenantID, registry.SystemTenant)).
		Order(ent.Asc(agentrecord.FieldTenantID), ent.Asc(agentrecord.FieldAgentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return recs, nil
}

// DeleteAgent removes a tenant agent. Built-in agents cannot be deleted, and
// neither can agents other agents depend on.
func (s *AgentService) DeleteAgent(ctx context.Context, tenantID, agentID string) error {
	rec, err := s.GetAgent(ctx, tenantID, agentID)
	if err != nil {
		return err
	}
	if rec.IsBuiltin {
		return fmt.Errorf("%w: agent %s", ErrBuiltinImmutable, agentID)
	}

	all, err := s.visibleAgents(ctx, tenantID)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.AgentID == agentID {
			continue
		}
		for _, dep := range other.Dependencies {
			if dep == agentID {
				return NewValidationError("agent_id",
					fmt.Sprintf("agent %q depends on %q", other.AgentID, agentID))
			}
		}
	}

	if _, err := s.client.AgentRecord.Delete().
		Where(agentrecord.TenantID(tenantID), agentrecord.AgentID(agentID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	s.invalidator.Invalidate(tenantID)
	return nil
}

// validateInput applies the write-time rules: valid class, bounded schema,
// existing prompt, and an acyclic dependency graph over the tenant's view.
func (s *AgentService) validateInput(ctx context.Context, tenantID string, input AgentInput) error {
	if input.AgentID == "" {
		return NewValidationError("agent_id", "agent_id is required")
	}
	if !input.Class.IsValid() {
		return NewValidationError("agent_class",
			fmt.Sprintf("unknown agent class %q", input.Class))
	}
	if input.SystemPrompt == "" {
		return NewValidationError("system_prompt", "system_prompt is required")
	}
	if len(input.OutputSchema) == 0 {
		return NewValidationError("output_schema", "output_schema is required")
	}
	if len(input.OutputSchema) > models.MaxOutputSchemaKeys {
		return NewValidationError("output_schema",
			fmt.Sprintf("output_schema has %d keys, limit is %d", len(input.OutputSchema), models.MaxOutputSchemaKeys))
	}

	all, err := s.visibleAgents(ctx, tenantID)
	if err != nil {
		return err
	}
	if err := graph.ValidateAgentDependencies(input.AgentID, input.Dependencies, all); err != nil {
		return NewValidationError("dependencies", err.Error())
	}
	return nil
}

// visibleAgents loads the tenant's agent set, with system agents underlaid
// the way the registry fallback resolves them.
func (s *AgentService) visibleAgents(ctx context.Context, tenantID string) (map[string]*models.AgentDef, error) {
	recs, err := s.client.AgentRecord.Query().
		Where(agentrecord.TenantIDIn(tenantID, registry.SystemTenant)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents for validation: %w", err)
	}

	all := make(map[string]*models.AgentDef, len(recs))
	for _, rec := range recs {
		// Tenant rows shadow system rows with the same agent ID.
		if existing, ok := all[rec.AgentID]; ok && existing.TenantID == tenantID {
			continue
		}
		all[rec.AgentID] = &models.AgentDef{
			AgentID:      rec.AgentID,
			TenantID:     rec.TenantID,
			Class:        models.AgentClass(rec.AgentClass),
			Dependencies: rec.Dependencies,
			OutputSchema: rec.OutputSchema,
		}
	}
	return all, nil
}
