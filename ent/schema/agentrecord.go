package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the schema definition for a stored agent definition.
// Agents are unique per (tenant_id, agent_id); the shared "system" tenant
// carries the built-in agents every tenant can reference.
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id").
			Comment("Stable identifier referenced by playbooks and dependencies"),
		field.String("tenant_id"),
		field.String("name").
			Optional(),
		field.Enum("agent_class").
			Values("ingestion", "query", "management"),
		field.Text("system_prompt"),
		field.JSON("tools", []string{}).
			Optional(),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Upstream agent IDs, validated acyclic on write"),
		field.JSON("output_schema", map[string]string{}).
			Comment("Declared output fields, at most five"),
		field.Bool("enabled").
			Default(true),
		field.Int("version").
			Default(1).
			Comment("Bumped on every update"),
		field.Bool("is_builtin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "agent_id").
			Unique(),
		index.Fields("tenant_id", "agent_class"),
	}
}
