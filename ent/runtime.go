// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/ent/event"
	"github.com/reportline/reportline/ent/incident"
	"github.com/reportline/reportline/ent/queryanswer"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescEnabled is the schema descriptor for enabled field.
	agentrecordDescEnabled := agentrecordFields[8].Descriptor()
	// agentrecord.DefaultEnabled holds the default value on creation for the enabled field.
	agentrecord.DefaultEnabled = agentrecordDescEnabled.Default.(bool)
	// agentrecordDescVersion is the schema descriptor for version field.
	agentrecordDescVersion := agentrecordFields[9].Descriptor()
	// agentrecord.DefaultVersion holds the default value on creation for the version field.
	agentrecord.DefaultVersion = agentrecordDescVersion.Default.(int)
	// agentrecordDescIsBuiltin is the schema descriptor for is_builtin field.
	agentrecordDescIsBuiltin := agentrecordFields[10].Descriptor()
	// agentrecord.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	agentrecord.DefaultIsBuiltin = agentrecordDescIsBuiltin.Default.(bool)
	// agentrecordDescCreatedAt is the schema descriptor for created_at field.
	agentrecordDescCreatedAt := agentrecordFields[11].Descriptor()
	// agentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrecord.DefaultCreatedAt = agentrecordDescCreatedAt.Default.(func() time.Time)
	// agentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	agentrecordDescUpdatedAt := agentrecordFields[12].Descriptor()
	// agentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrecord.DefaultUpdatedAt = agentrecordDescUpdatedAt.Default.(func() time.Time)
	// agentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrecord.UpdateDefaultUpdatedAt = agentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	domainrecordFields := schema.DomainRecord{}.Fields()
	_ = domainrecordFields
	// domainrecordDescIsBuiltin is the schema descriptor for is_builtin field.
	domainrecordDescIsBuiltin := domainrecordFields[6].Descriptor()
	// domainrecord.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	domainrecord.DefaultIsBuiltin = domainrecordDescIsBuiltin.Default.(bool)
	// domainrecordDescCreatedAt is the schema descriptor for created_at field.
	domainrecordDescCreatedAt := domainrecordFields[7].Descriptor()
	// domainrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainrecord.DefaultCreatedAt = domainrecordDescCreatedAt.Default.(func() time.Time)
	// domainrecordDescUpdatedAt is the schema descriptor for updated_at field.
	domainrecordDescUpdatedAt := domainrecordFields[8].Descriptor()
	// domainrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domainrecord.DefaultUpdatedAt = domainrecordDescUpdatedAt.Default.(func() time.Time)
	// domainrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	domainrecord.UpdateDefaultUpdatedAt = domainrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[8].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	queryanswerFields := schema.QueryAnswer{}.Fields()
	_ = queryanswerFields
	// queryanswerDescCreatedAt is the schema descriptor for created_at field.
	queryanswerDescCreatedAt := queryanswerFields[8].Descriptor()
	// queryanswer.DefaultCreatedAt holds the default value on creation for the created_at field.
	queryanswer.DefaultCreatedAt = queryanswerDescCreatedAt.Default.(func() time.Time)
	reportjobFields := schema.ReportJob{}.Fields()
	_ = reportjobFields
	// reportjobDescCreatedAt is the schema descriptor for created_at field.
	reportjobDescCreatedAt := reportjobFields[7].Descriptor()
	// reportjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportjob.DefaultCreatedAt = reportjobDescCreatedAt.Default.(func() time.Time)
	// reportjobDescRequeueCount is the schema descriptor for requeue_count field.
	reportjobDescRequeueCount := reportjobFields[16].Descriptor()
	// reportjob.DefaultRequeueCount holds the default value on creation for the requeue_count field.
	reportjob.DefaultRequeueCount = reportjobDescRequeueCount.Default.(int)
}
