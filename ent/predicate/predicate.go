// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// DomainRecord is the predicate function for domainrecord builders.
type DomainRecord func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// QueryAnswer is the predicate function for queryanswer builders.
type QueryAnswer func(*sql.Selector)

// ReportJob is the predicate function for reportjob builders.
type ReportJob func(*sql.Selector)
