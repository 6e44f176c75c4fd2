// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/pkg/models"
)

// DomainRecordCreate is the builder for creating a DomainRecord entity.
type DomainRecordCreate struct {
	config
	mutation *DomainRecordMutation
	hooks    []Hook
}

// SetDomainID sets the "domain_id" field.
func (_c *DomainRecordCreate) SetDomainID(v string) *DomainRecordCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *DomainRecordCreate) SetTenantID(v string) *DomainRecordCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DomainRecordCreate) SetName(v string) *DomainRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *DomainRecordCreate) SetNillableName(v *string) *DomainRecordCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (_c *DomainRecordCreate) SetIngestionPlaybook(v models.Playbook) *DomainRecordCreate {
	_c.mutation.SetIngestionPlaybook(v)
	return _c
}

// SetQueryPlaybook sets the "query_playbook" field.
func (_c *DomainRecordCreate) SetQueryPlaybook(v models.Playbook) *DomainRecordCreate {
	_c.mutation.SetQueryPlaybook(v)
	return _c
}

// SetManagementPlaybook sets the "management_playbook" field.
func (_c *DomainRecordCreate) SetManagementPlaybook(v models.Playbook) *DomainRecordCreate {
	_c.mutation.SetManagementPlaybook(v)
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *DomainRecordCreate) SetIsBuiltin(v bool) *DomainRecordCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *DomainRecordCreate) SetNillableIsBuiltin(v *bool) *DomainRecordCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DomainRecordCreate) SetCreatedAt(v time.Time) *DomainRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DomainRecordCreate) SetNillableCreatedAt(v *time.Time) *DomainRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DomainRecordCreate) SetUpdatedAt(v time.Time) *DomainRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DomainRecordCreate) SetNillableUpdatedAt(v *time.Time) *DomainRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DomainRecordMutation object of the builder.
func (_c *DomainRecordCreate) Mutation() *DomainRecordMutation {
	return _c.mutation
}

// Save creates the DomainRecord in the database.
func (_c *DomainRecordCreate) Save(ctx context.Context) (*DomainRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainRecordCreate) SaveX(ctx context.Context) *DomainRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainRecordCreate) defaults() {
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := domainrecord.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := domainrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := domainrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainRecordCreate) check() error {
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "DomainRecord.domain_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DomainRecord.tenant_id"`)}
	}
	if _, ok := _c.mutation.IngestionPlaybook(); !ok {
		return &ValidationError{Name: "ingestion_playbook", err: errors.New(`ent: missing required field "DomainRecord.ingestion_playbook"`)}
	}
	if _, ok := _c.mutation.QueryPlaybook(); !ok {
		return &ValidationError{Name: "query_playbook", err: errors.New(`ent: missing required field "DomainRecord.query_playbook"`)}
	}
	if _, ok := _c.mutation.ManagementPlaybook(); !ok {
		return &ValidationError{Name: "management_playbook", err: errors.New(`ent: missing required field "DomainRecord.management_playbook"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "DomainRecord.is_builtin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DomainRecord.updated_at"`)}
	}
	return nil
}

func (_c *DomainRecordCreate) sqlSave(ctx context.Context) (*DomainRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DomainRecordCreate) createSpec() (*DomainRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domainrecord.Table, sqlgraph.NewFieldSpec(domainrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(domainrecord.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(domainrecord.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(domainrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.IngestionPlaybook(); ok {
		_spec.SetField(domainrecord.FieldIngestionPlaybook, field.TypeJSON, value)
		_node.IngestionPlaybook = value
	}
	if value, ok := _c.mutation.QueryPlaybook(); ok {
		_spec.SetField(domainrecord.FieldQueryPlaybook, field.TypeJSON, value)
		_node.QueryPlaybook = value
	}
	if value, ok := _c.mutation.ManagementPlaybook(); ok {
		_spec.SetField(domainrecord.FieldManagementPlaybook, field.TypeJSON, value)
		_node.ManagementPlaybook = value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(domainrecord.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(domainrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(domainrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DomainRecordCreateBulk is the builder for creating many DomainRecord entities in bulk.
type DomainRecordCreateBulk struct {
	config
	err      error
	builders []*DomainRecordCreate
}

// Save creates the DomainRecord entities in the database.
func (_c *DomainRecordCreateBulk) Save(ctx context.Context) ([]*DomainRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DomainRecordCreateBulk) SaveX(ctx context.Context) []*DomainRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
