// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/incident"
	"github.com/reportline/reportline/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *IncidentUpdate) SetTenantID(v string) *IncidentUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTenantID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *IncidentUpdate) SetDomainID(v string) *IncidentUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDomainID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *IncidentUpdate) SetJobID(v string) *IncidentUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableJobID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRawReport sets the "raw_report" field.
func (_u *IncidentUpdate) SetRawReport(v string) *IncidentUpdate {
	_u.mutation.SetRawReport(v)
	return _u
}

// SetNillableRawReport sets the "raw_report" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRawReport(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetRawReport(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *IncidentUpdate) SetCategory(v string) *IncidentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCategory(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *IncidentUpdate) ClearCategory() *IncidentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v string) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *IncidentUpdate) ClearSeverity() *IncidentUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetData sets the "data" field.
func (_u *IncidentUpdate) SetData(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(incident.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(incident.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(incident.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawReport(); ok {
		_spec.SetField(incident.FieldRawReport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(incident.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(incident.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(incident.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(incident.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *IncidentUpdateOne) SetTenantID(v string) *IncidentUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTenantID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *IncidentUpdateOne) SetDomainID(v string) *IncidentUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDomainID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *IncidentUpdateOne) SetJobID(v string) *IncidentUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableJobID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRawReport sets the "raw_report" field.
func (_u *IncidentUpdateOne) SetRawReport(v string) *IncidentUpdateOne {
	_u.mutation.SetRawReport(v)
	return _u
}

// SetNillableRawReport sets the "raw_report" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRawReport(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetRawReport(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *IncidentUpdateOne) SetCategory(v string) *IncidentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCategory(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *IncidentUpdateOne) ClearCategory() *IncidentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v string) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *IncidentUpdateOne) ClearSeverity() *IncidentUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetData sets the "data" field.
func (_u *IncidentUpdateOne) SetData(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(incident.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(incident.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(incident.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawReport(); ok {
		_spec.SetField(incident.FieldRawReport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(incident.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(incident.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(incident.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(incident.FieldData, field.TypeJSON, value)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
