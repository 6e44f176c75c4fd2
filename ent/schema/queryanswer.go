package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryAnswer holds the schema definition for the artifact of a query or
// management job.
type QueryAnswer struct {
	ent.Schema
}

// Fields of the QueryAnswer.
func (QueryAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("answer_id").
			Unique().
			Immutable(),
		field.String("tenant_id"),
		field.String("domain_id"),
		field.String("job_id"),
		field.Enum("kind").
			Values("query", "management"),
		field.Text("question"),
		field.JSON("data", map[string]interface{}{}).
			Comment("Final agent's structured output"),
		field.Float("confidence").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QueryAnswer.
func (QueryAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "domain_id"),
		index.Fields("job_id"),
	}
}
