package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/reportline/reportline/pkg/models"
)

// ReportJob holds the schema definition for one queued job: a report to
// ingest or a question to answer. The row doubles as the work-queue entry
// (status pending → in_progress → terminal) and the post-mortem record
// (execution log + cache stats are written back on completion).
type ReportJob struct {
	ent.Schema
}

// Fields of the ReportJob.
func (ReportJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("ingestion", "query", "management"),
		field.String("tenant_id"),
		field.String("user_id").
			Optional(),
		field.String("domain_id"),
		field.JSON("input", map[string]interface{}{}).
			Comment("Job input map; raw_input carries the report text or question"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("execution_log", []models.ExecutionLogEntry{}).
			Optional(),
		field.JSON("cache_stats", &models.CacheStats{}).
			Optional(),
		field.String("artifact_id").
			Optional().
			Nillable().
			Comment("Incident or query answer produced by the job"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Int("requeue_count").
			Default(0).
			Comment("Orphaned jobs are requeued once, then failed"),
	}
}

// Indexes of the ReportJob.
func (ReportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
