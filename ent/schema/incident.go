package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the artifact of an ingestion job:
// the structured record distilled from a free-form report.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("tenant_id"),
		field.String("domain_id"),
		field.String("job_id"),
		field.Text("raw_report").
			Comment("Original report text as submitted"),
		field.String("category").
			Optional(),
		field.String("severity").
			Optional(),
		field.JSON("data", map[string]interface{}{}).
			Comment("Final agent's structured output"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "domain_id"),
		index.Fields("job_id"),
	}
}
