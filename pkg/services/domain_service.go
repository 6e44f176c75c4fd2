package services

import (
	"context"
	"fmt"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/graph"
	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
)

// DomainInput carries the writable fields of a domain definition.
type DomainInput struct {
	DomainID   string          `json:"domain_id"`
	Name       string          `json:"name"`
	Ingestion  models.Playbook `json:"ingestion_playbook"`
	Query      models.Playbook `json:"query_playbook"`
	Management models.Playbook `json:"management_playbook"`
}

// DomainService handles domain CRUD. Each of the three playbooks is
// validated against its class before any write.
type DomainService struct {
	client      *ent.Client
	agents      *AgentService
	invalidator RegistryInvalidator
}

// NewDomainService creates a new DomainService.
func NewDomainService(client *ent.Client, agents *AgentService, invalidator RegistryInvalidator) *DomainService {
	if client == nil {
		panic("NewDomainService: client must not be nil")
	}
	if agents == nil {
		panic("NewDomainService: agents must not be nil")
	}
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	return &DomainService{client: client, agents: agents, invalidator: invalidator}
}

// CreateDomain validates and stores a new domain.
func (s *DomainService) CreateDomain(ctx context.Context, tenantID string, input DomainInput) (*ent.DomainRecord, error) {
	if err := s.validateInput(ctx, tenantID, input); err != nil {
		return nil, err
	}

	exists, err := s.client.DomainRecord.Query().
		Where(domainrecord.TenantID(tenantID), domainrecord.DomainID(input.DomainID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check domain existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: domain %s", ErrAlreadyExists, input.DomainID)
	}

	rec, err := s.client.DomainRecord.Create().
		SetDomainID(input.DomainID).
		SetTenantID(tenantID).
		SetName(input.Name).
		SetIngestionPlaybook(input.Ingestion).
		SetQueryPlaybook(input.Query).
		SetManagementPlaybook(input.Management).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain: %w", err)
	}

	s.invalidator.Invalidate(tenantID)
	return rec, nil
}

// UpdateDomain validates and replaces an existing domain's playbooks.
func (s *DomainService) UpdateDomain(ctx context.Context, tenantID, domainID string, input DomainInput) (*ent.DomainRecord, error) {
	rec, err := s.client.DomainRecord.Query().
		Where(domainrecord.TenantID(tenantID), domainrecord.DomainID(domainID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: domain %s", ErrNotFound, domainID)
		}
		return nil, fmt.Errorf("failed to load domain: %w", err)
	}
	if rec.IsBuiltin {
		return nil, fmt.Errorf("%w: domain %s", ErrBuiltinImmutable, domainID)
	}

	input.DomainID = domainID
	if err := s.validateInput(ctx, tenantID, input); err != nil {
		return nil, err
	}

	updated, err := rec.Update().
		SetName(input.Name).
		SetIngestionPlaybook(input.Ingestion).
		SetQueryPlaybook(input.Query).
		SetManagementPlaybook(input.Management).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update domain: %w", err)
	}

	s.invalidator.Invalidate(tenantID)
	return updated, nil
}

// GetDomain returns one domain row for the tenant, falling back to the
// system tenant like the registry does.
func (s *DomainService) GetDomain(ctx context.Context, tenantID, domainID string) (*ent.DomainRecord, error) {
	rec, err := s.client.DomainRecord.Query().
		Where(domainrecord.TenantID(tenantID), domainrecord.DomainID(domainID)).
		Only(ctx)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load domain: %w", err)
	}
	if tenantID != registry.SystemTenant {
		rec, err = s.client.DomainRecord.Query().
			Where(domainrecord.TenantID(registry.SystemTenant), domainrecord.DomainID(domainID)).
			Only(ctx)
		if err == nil {
			return rec, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load domain: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: domain %s", ErrNotFound, domainID)
}

// ListDomains returns the tenant's domains plus the built-in ones.
func (s *DomainService) ListDomains(ctx context.Context, tenantID string) ([]*ent.DomainRecord, error) {
	recs, err := s.client.DomainRecord.Query().
		Where(domainrecord.TenantIDIn(tenantID, registry.SystemTenant)).
		Order(ent.Asc(domainrecord.FieldTenantID), ent.Asc(domainrecord.FieldDomainID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return recs, nil
}

// validateInput checks the three playbooks against their classes over the
// tenant's visible agent set.
func (s *DomainService) validateInput(ctx context.Context, tenantID string, input DomainInput) error {
	if input.DomainID == "" {
		return NewValidationError("domain_id", "domain_id is required")
	}

	all, err := s.agents.visibleAgents(ctx, tenantID)
	if err != nil {
		return err
	}

	if err := graph.ValidatePlaybook(&input.Ingestion, models.ClassIngestion, all); err != nil {
		return NewValidationError("ingestion_playbook", err.Error())
	}
	if err := graph.ValidatePlaybook(&input.Query, models.ClassQuery, all); err != nil {
		return NewValidationError("query_playbook", err.Error())
	}
	if err := graph.ValidatePlaybook(&input.Management, models.ClassManagement, all); err != nil {
		return NewValidationError("management_playbook", err.Error())
	}
	return nil
}
