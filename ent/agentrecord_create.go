// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/agentrecord"
)

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentRecordCreate) SetAgentID(v string) *AgentRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *AgentRecordCreate) SetTenantID(v string) *AgentRecordCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentRecordCreate) SetName(v string) *AgentRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableName(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAgentClass sets the "agent_class" field.
func (_c *AgentRecordCreate) SetAgentClass(v agentrecord.AgentClass) *AgentRecordCreate {
	_c.mutation.SetAgentClass(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentRecordCreate) SetSystemPrompt(v string) *AgentRecordCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetTools sets the "tools" field.
func (_c *AgentRecordCreate) SetTools(v []string) *AgentRecordCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *AgentRecordCreate) SetDependencies(v []string) *AgentRecordCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *AgentRecordCreate) SetOutputSchema(v map[string]string) *AgentRecordCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AgentRecordCreate) SetEnabled(v bool) *AgentRecordCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableEnabled(v *bool) *AgentRecordCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentRecordCreate) SetVersion(v int) *AgentRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableVersion(v *int) *AgentRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *AgentRecordCreate) SetIsBuiltin(v bool) *AgentRecordCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableIsBuiltin(v *bool) *AgentRecordCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRecordCreate) SetCreatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCreatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRecordCreate) SetUpdatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableUpdatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := agentrecord.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := agentrecord.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentRecord.agent_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AgentRecord.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentClass(); !ok {
		return &ValidationError{Name: "agent_class", err: errors.New(`ent: missing required field "AgentRecord.agent_class"`)}
	}
	if v, ok := _c.mutation.AgentClass(); ok {
		if err := agentrecord.AgentClassValidator(v); err != nil {
			return &ValidationError{Name: "agent_class", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.agent_class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "AgentRecord.system_prompt"`)}
	}
	if _, ok := _c.mutation.OutputSchema(); !ok {
		return &ValidationError{Name: "output_schema", err: errors.New(`ent: missing required field "AgentRecord.output_schema"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AgentRecord.enabled"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentRecord.version"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "AgentRecord.is_builtin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRecord.updated_at"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(agentrecord.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgentClass(); ok {
		_spec.SetField(agentrecord.FieldAgentClass, field.TypeEnum, value)
		_node.AgentClass = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agentrecord.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(agentrecord.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(agentrecord.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(agentrecord.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(agentrecord.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentrecord.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(agentrecord.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
