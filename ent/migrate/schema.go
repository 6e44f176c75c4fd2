// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "agent_class", Type: field.TypeEnum, Enums: []string{"ingestion", "query", "management"}},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "output_schema", Type: field.TypeJSON},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_tenant_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{AgentRecordsColumns[2], AgentRecordsColumns[1]},
			},
			{
				Name:    "agentrecord_tenant_id_agent_class",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[2], AgentRecordsColumns[4]},
			},
		},
	}
	// DomainRecordsColumns holds the columns for the "domain_records" table.
	DomainRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "ingestion_playbook", Type: field.TypeJSON},
		{Name: "query_playbook", Type: field.TypeJSON},
		{Name: "management_playbook", Type: field.TypeJSON},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DomainRecordsTable holds the schema information for the "domain_records" table.
	DomainRecordsTable = &schema.Table{
		Name:       "domain_records",
		Columns:    DomainRecordsColumns,
		PrimaryKey: []*schema.Column{DomainRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainrecord_tenant_id_domain_id",
				Unique:  true,
				Columns: []*schema.Column{DomainRecordsColumns[2], DomainRecordsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_job_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "raw_report", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_tenant_id_domain_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[2]},
			},
			{
				Name:    "incident_job_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[3]},
			},
		},
	}
	// QueryAnswersColumns holds the columns for the "query_answers" table.
	QueryAnswersColumns = []*schema.Column{
		{Name: "answer_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"query", "management"}},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueryAnswersTable holds the schema information for the "query_answers" table.
	QueryAnswersTable = &schema.Table{
		Name:       "query_answers",
		Columns:    QueryAnswersColumns,
		PrimaryKey: []*schema.Column{QueryAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryanswer_tenant_id_domain_id",
				Unique:  false,
				Columns: []*schema.Column{QueryAnswersColumns[1], QueryAnswersColumns[2]},
			},
			{
				Name:    "queryanswer_job_id",
				Unique:  false,
				Columns: []*schema.Column{QueryAnswersColumns[3]},
			},
		},
	}
	// ReportJobsColumns holds the columns for the "report_jobs" table.
	ReportJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"ingestion", "query", "management"}},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_log", Type: field.TypeJSON, Nullable: true},
		{Name: "cache_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "requeue_count", Type: field.TypeInt, Default: 0},
	}
	// ReportJobsTable holds the schema information for the "report_jobs" table.
	ReportJobsTable = &schema.Table{
		Name:       "report_jobs",
		Columns:    ReportJobsColumns,
		PrimaryKey: []*schema.Column{ReportJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportjob_status",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[6]},
			},
			{
				Name:    "reportjob_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[2]},
			},
			{
				Name:    "reportjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[6], ReportJobsColumns[7]},
			},
			{
				Name:    "reportjob_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[6], ReportJobsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRecordsTable,
		DomainRecordsTable,
		EventsTable,
		IncidentsTable,
		QueryAnswersTable,
		ReportJobsTable,
	}
)

func init() {
}
