// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/models"
)

// DomainRecord is the model entity for the DomainRecord schema.
type DomainRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID string `json:"domain_id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DAG of ingestion-class agents: {nodes, edges}
	IngestionPlaybook models.Playbook `json:"ingestion_playbook,omitempty"`
	// QueryPlaybook holds the value of the "query_playbook" field.
	QueryPlaybook models.Playbook `json:"query_playbook,omitempty"`
	// ManagementPlaybook holds the value of the "management_playbook" field.
	ManagementPlaybook models.Playbook `json:"management_playbook,omitempty"`
	// IsBuiltin holds the value of the "is_builtin" field.
	IsBuiltin bool `json:"is_builtin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DomainRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domainrecord.FieldIngestionPlaybook, domainrecord.FieldQueryPlaybook, domainrecord.FieldManagementPlaybook:
			values[i] = new([]byte)
		case domainrecord.FieldIsBuiltin:
			values[i] = new(sql.NullBool)
		case domainrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case domainrecord.FieldDomainID, domainrecord.FieldTenantID, domainrecord.FieldName:
			values[i] = new(sql.NullString)
		case domainrecord.FieldCreatedAt, domainrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DomainRecord fields.
func (_m *DomainRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domainrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case domainrecord.FieldDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = value.String
			}
		case domainrecord.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case domainrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case domainrecord.FieldIngestionPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IngestionPlaybook); err != nil {
					return fmt.Errorf("unmarshal field ingestion_playbook: %w", err)
				}
			}
		case domainrecord.FieldQueryPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryPlaybook); err != nil {
					return fmt.Errorf("unmarshal field query_playbook: %w", err)
				}
			}
		case domainrecord.FieldManagementPlaybook:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field management_playbook", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ManagementPlaybook); err != nil {
					return fmt.Errorf("unmarshal field management_playbook: %w", err)
				}
			}
		case domainrecord.FieldIsBuiltin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_builtin", values[i])
			} else if value.Valid {
				_m.IsBuiltin = value.Bool
			}
		case domainrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case domainrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DomainRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DomainRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DomainRecord.
// Note that you need to call DomainRecord.Unwrap() before calling this method if this DomainRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DomainRecord) Update() *DomainRecordUpdateOne {
	return NewDomainRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DomainRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DomainRecord) Unwrap() *DomainRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DomainRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DomainRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DomainRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain_id=")
	builder.WriteString(_m.DomainID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("ingestion_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngestionPlaybook))
	builder.WriteString(", ")
	builder.WriteString("query_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryPlaybook))
	builder.WriteString(", ")
	builder.WriteString("management_playbook=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManagementPlaybook))
	builder.WriteString(", ")
	builder.WriteString("is_builtin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBuiltin))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DomainRecords is a parsable slice of DomainRecord.
type DomainRecords []*DomainRecord
