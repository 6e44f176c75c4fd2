package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reportline/reportline/ent"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/config"
	"github.com/reportline/reportline/pkg/models"
)

// SeedBuiltins installs the compiled-in system-tenant agents and domains
// when missing. Existing rows are left alone so operator edits to built-ins
// survive restarts.
func SeedBuiltins(ctx context.Context, client *ent.Client) error {
	defs := config.GetBuiltinDefs()

	seededAgents := 0
	for _, def := range defs.Agents {
		exists, err := client.AgentRecord.Query().
			Where(agentrecord.TenantID(def.TenantID), agentrecord.AgentID(def.AgentID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check builtin agent %s: %w", def.AgentID, err)
		}
		if exists {
			continue
		}
		if err := createBuiltinAgent(ctx, client, def); err != nil {
			return err
		}
		seededAgents++
	}

	seededDomains := 0
	for _, def := range defs.Domains {
		exists, err := client.DomainRecord.Query().
			Where(domainrecord.TenantID(def.TenantID), domainrecord.DomainID(def.DomainID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check builtin domain %s: %w", def.DomainID, err)
		}
		if exists {
			continue
		}
		if err := createBuiltinDomain(ctx, client, def); err != nil {
			return err
		}
		seededDomains++
	}

	if seededAgents > 0 || seededDomains > 0 {
		slog.Info("Seeded builtin definitions",
			"agents", seededAgents, "domains", seededDomains)
	}
	return nil
}

func createBuiltinAgent(ctx context.Context, client *ent.Client, def *models.AgentDef) error {
	_, err := client.AgentRecord.Create().
		SetAgentID(def.AgentID).
		SetTenantID(def.TenantID).
		SetName(def.Name).
		SetAgentClass(agentrecord.AgentClass(def.Class)).
		SetSystemPrompt(def.SystemPrompt).
		SetTools(def.Tools).
		SetDependencies(def.Dependencies).
		SetOutputSchema(def.OutputSchema).
		SetEnabled(def.Enabled).
		SetVersion(def.Version).
		SetIsBuiltin(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed builtin agent %s: %w", def.AgentID, err)
	}
	return nil
}

func createBuiltinDomain(ctx context.Context, client *ent.Client, def *models.DomainDef) error {
	_, err := client.DomainRecord.Create().
		SetDomainID(def.DomainID).
		SetTenantID(def.TenantID).
		SetName(def.Name).
		SetIngestionPlaybook(def.Ingestion).
		SetQueryPlaybook(def.Query).
		SetManagementPlaybook(def.Management).
		SetIsBuiltin(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed builtin domain %s: %w", def.DomainID, err)
	}
	return nil
}
