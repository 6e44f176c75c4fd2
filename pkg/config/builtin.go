package config

import (
	"sync"

	"github.com/reportline/reportline/pkg/models"
	"github.com/reportline/reportline/pkg/registry"
)

// BuiltinDefs holds the compiled-in system-tenant definitions: a generic
// incident domain and the agents its playbooks reference. They are seeded
// into the database at startup when missing, so a fresh deployment can
// ingest reports without any configuration.
type BuiltinDefs struct {
	Agents  []*models.AgentDef
	Domains []*models.DomainDef
}

var (
	builtinDefs     *BuiltinDefs
	builtinDefsOnce sync.Once
)

// GetBuiltinDefs returns the singleton built-in definitions.
func GetBuiltinDefs() *BuiltinDefs {
	builtinDefsOnce.Do(initBuiltinDefs)
	return builtinDefs
}

func initBuiltinDefs() {
	builtinDefs = &BuiltinDefs{
		Agents:  initBuiltinAgents(),
		Domains: initBuiltinDomains(),
	}
}

func initBuiltinAgents() []*models.AgentDef {
	return []*models.AgentDef{
		{
			AgentID:  "report-triage",
			Name:     "Report Triage",
			TenantID: registry.SystemTenant,
			Class:    models.ClassIngestion,
			SystemPrompt: "You triage incoming incident reports. Classify the report " +
				"into a category, summarize it in one sentence, and rate its urgency " +
				"as low, medium, or high.",
			OutputSchema: map[string]string{
				"category": "string",
				"summary":  "string",
				"urgency":  "string",
			},
			Enabled: true,
			Version: 1,
			Builtin: true,
		},
		{
			AgentID:  "report-extraction",
			Name:     "Detail Extraction",
			TenantID: registry.SystemTenant,
			Class:    models.ClassIngestion,
			SystemPrompt: "You extract structured details from an incident report, " +
				"using the triage result provided in the input. List affected systems, " +
				"involved people or teams, and the reported timeline.",
			Dependencies: []string{"report-triage"},
			OutputSchema: map[string]string{
				"affected_systems": "array",
				"involved_parties": "array",
				"timeline":         "string",
			},
			Enabled: true,
			Version: 1,
			Builtin: true,
		},
		{
			AgentID:  "report-severity",
			Name:     "Severity Assessment",
			TenantID: registry.SystemTenant,
			Class:    models.ClassIngestion,
			SystemPrompt: "You assess incident severity from the extracted details. " +
				"Assign one of: critical, major, minor, informational. Explain the " +
				"assignment briefly.",
			Dependencies: []string{"report-extraction"},
			OutputSchema: map[string]string{
				"severity":  "string",
				"rationale": "string",
			},
			Enabled: true,
			Version: 1,
			Builtin: true,
		},
		{
			AgentID:  "incident-answer",
			Name:     "Incident Q&A",
			TenantID: registry.SystemTenant,
			Class:    models.ClassQuery,
			SystemPrompt: "You answer questions about recorded incidents. Answer " +
				"concisely and state what the answer is based on.",
			OutputSchema: map[string]string{
				"answer": "string",
				"basis":  "string",
			},
			Enabled: true,
			Version: 1,
			Builtin: true,
		},
		{
			AgentID:  "incident-digest",
			Name:     "Management Digest",
			TenantID: registry.SystemTenant,
			Class:    models.ClassManagement,
			SystemPrompt: "You produce a management-level digest for an incident " +
				"question: a short summary and concrete recommendations.",
			OutputSchema: map[string]string{
				"summary":         "string",
				"recommendations": "array",
			},
			Enabled: true,
			Version: 1,
			Builtin: true,
		},
	}
}

func initBuiltinDomains() []*models.DomainDef {
	return []*models.DomainDef{
		{
			DomainID: "incidents",
			TenantID: registry.SystemTenant,
			Name:     "Generic incident reports",
			Ingestion: models.Playbook{
				Nodes: []string{"report-triage", "report-extraction", "report-severity"},
				Edges: []models.Edge{
					{From: "report-triage", To: "report-extraction"},
					{From: "report-extraction", To: "report-severity"},
				},
			},
			Query: models.Playbook{
				Nodes: []string{"incident-answer"},
				Edges: []models.Edge{},
			},
			Management: models.Playbook{
				Nodes: []string{"incident-digest"},
				Edges: []models.Edge{},
			},
		},
	}
}
