// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/ent/predicate"
	"github.com/reportline/reportline/pkg/models"
)

// DomainRecordUpdate is the builder for updating DomainRecord entities.
type DomainRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DomainRecordMutation
}

// Where appends a list predicates to the DomainRecordUpdate builder.
func (_u *DomainRecordUpdate) Where(ps ...predicate.DomainRecord) *DomainRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *DomainRecordUpdate) SetDomainID(v string) *DomainRecordUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableDomainID(v *string) *DomainRecordUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *DomainRecordUpdate) SetTenantID(v string) *DomainRecordUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableTenantID(v *string) *DomainRecordUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DomainRecordUpdate) SetName(v string) *DomainRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableName(v *string) *DomainRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *DomainRecordUpdate) ClearName() *DomainRecordUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_u *DomainRecordUpdate) SetIngestionPlaybook(v models.Playbook) *DomainRecordUpdate {
	_u.mutation.SetIngestionPlaybook(v)
	return _u
}

// SetNillableIngestionPlaybook sets the "ingestion_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableIngestionPlaybook(v *models.Playbook) *DomainRecordUpdate {
	if v != nil {
		_u.SetIngestionPlaybook(*v)
	}
	return _u
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_u *DomainRecordUpdate) SetQueryPlaybook(v models.Playbook) *DomainRecordUpdate {
	_u.mutation.SetQueryPlaybook(v)
	return _u
}

// SetNillableQueryPlaybook sets the "query_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableQueryPlaybook(v *models.Playbook) *DomainRecordUpdate {
	if v != nil {
		_u.SetQueryPlaybook(*v)
	}
	return _u
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_u *DomainRecordUpdate) SetManagementPlaybook(v models.Playbook) *DomainRecordUpdate {
	_u.mutation.SetManagementPlaybook(v)
	return _u
}

// SetNillableManagementPlaybook sets the "management_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableManagementPlaybook(v *models.Playbook) *DomainRecordUpdate {
	if v != nil {
		_u.SetManagementPlaybook(*v)
	}
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *DomainRecordUpdate) SetIsBuiltin(v bool) *DomainRecordUpdate {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *DomainRecordUpdate) SetNillableIsBuiltin(v *bool) *DomainRecordUpdate {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainRecordUpdate) SetUpdatedAt(v time.Time) *DomainRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DomainRecordMutation object of the builder.
func (_u *DomainRecordUpdate) Mutation() *DomainRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DomainRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainrecord.Table, domainrecord.Columns, sqlgraph.NewFieldSpec(domainrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(domainrecord.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(domainrecord.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(domainrecord.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(domainrecord.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainrecord.FieldIngestionPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainrecord.FieldQueryPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainrecord.FieldManagementPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(domainrecord.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainRecordUpdateOne is the builder for updating a single DomainRecord entity.
type DomainRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainRecordMutation
}

// SetDomainID sets the "domain_id" field.
func (_u *DomainRecordUpdateOne) SetDomainID(v string) *DomainRecordUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableDomainID(v *string) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *DomainRecordUpdateOne) SetTenantID(v string) *DomainRecordUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableTenantID(v *string) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DomainRecordUpdateOne) SetName(v string) *DomainRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableName(v *string) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *DomainRecordUpdateOne) ClearName() *DomainRecordUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_u *DomainRecordUpdateOne) SetIngestionPlaybook(v models.Playbook) *DomainRecordUpdateOne {
	_u.mutation.SetIngestionPlaybook(v)
	return _u
}

// SetNillableIngestionPlaybook sets the "ingestion_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableIngestionPlaybook(v *models.Playbook) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetIngestionPlaybook(*v)
	}
	return _u
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_u *DomainRecordUpdateOne) SetQueryPlaybook(v models.Playbook) *DomainRecordUpdateOne {
	_u.mutation.SetQueryPlaybook(v)
	return _u
}

// SetNillableQueryPlaybook sets the "query_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableQueryPlaybook(v *models.Playbook) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetQueryPlaybook(*v)
	}
	return _u
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_u *DomainRecordUpdateOne) SetManagementPlaybook(v models.Playbook) *DomainRecordUpdateOne {
	_u.mutation.SetManagementPlaybook(v)
	return _u
}

// SetNillableManagementPlaybook sets the "management_playbook" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableManagementPlaybook(v *models.Playbook) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetManagementPlaybook(*v)
	}
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *DomainRecordUpdateOne) SetIsBuiltin(v bool) *DomainRecordUpdateOne {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *DomainRecordUpdateOne) SetNillableIsBuiltin(v *bool) *DomainRecordUpdateOne {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainRecordUpdateOne) SetUpdatedAt(v time.Time) *DomainRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DomainRecordMutation object of the builder.
func (_u *DomainRecordUpdateOne) Mutation() *DomainRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainRecordUpdate builder.
func (_u *DomainRecordUpdateOne) Where(ps ...predicate.DomainRecord) *DomainRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainRecordUpdateOne) Select(field string, fields ...string) *DomainRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainRecord entity.
func (_u *DomainRecordUpdateOne) Save(ctx context.Context) (*DomainRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainRecordUpdateOne) SaveX(ctx context.Context) *DomainRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DomainRecordUpdateOne) sqlSave(ctx context.Context) (_node *DomainRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(domainrecord.Table, domainrecord.Columns, sqlgraph.NewFieldSpec(domainrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainrecord.FieldID)
		for _, f := range fields {
			if !domainrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainrecord.FieldID {
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
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(domainrecord.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(domainrecord.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(domainrecord.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(domainrecord.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainrecord.FieldIngestionPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainrecord.FieldQueryPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainrecord.FieldManagementPlaybook, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(domainrecord.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DomainRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
