package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/reportline/reportline/pkg/models"
)

// DomainRecord holds the schema definition for a stored domain: three
// playbooks sharing a domain ID, unique per tenant.
type DomainRecord struct {
	ent.Schema
}

// Fields of the DomainRecord.
func (DomainRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain_id"),
		field.String("tenant_id"),
		field.String("name").
			Optional(),
		field.JSON("ingestion_playbook", models.Playbook{}).
			Comment("DAG of ingestion-class agents: {nodes, edges}"),
		field.JSON("query_playbook", models.Playbook{}),
		field.JSON("management_playbook", models.Playbook{}),
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

// Indexes of the DomainRecord.
func (DomainRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "domain_id").
			Unique(),
	}
}
