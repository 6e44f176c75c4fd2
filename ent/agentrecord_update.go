// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/predicate"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentRecordUpdate) SetAgentID(v string) *AgentRecordUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableAgentID(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *AgentRecordUpdate) SetTenantID(v string) *AgentRecordUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableTenantID(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentRecordUpdate) SetName(v string) *AgentRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableName(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AgentRecordUpdate) ClearName() *AgentRecordUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAgentClass sets the "agent_class" field.
func (_u *AgentRecordUpdate) SetAgentClass(v agentrecord.AgentClass) *AgentRecordUpdate {
	_u.mutation.SetAgentClass(v)
	return _u
}

// SetNillableAgentClass sets the "agent_class" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableAgentClass(v *agentrecord.AgentClass) *AgentRecordUpdate {
	if v != nil {
		_u.SetAgentClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentRecordUpdate) SetSystemPrompt(v string) *AgentRecordUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableSystemPrompt(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentRecordUpdate) SetTools(v []string) *AgentRecordUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentRecordUpdate) AppendTools(v []string) *AgentRecordUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentRecordUpdate) ClearTools() *AgentRecordUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentRecordUpdate) SetDependencies(v []string) *AgentRecordUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentRecordUpdate) AppendDependencies(v []string) *AgentRecordUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentRecordUpdate) ClearDependencies() *AgentRecordUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentRecordUpdate) SetOutputSchema(v map[string]string) *AgentRecordUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentRecordUpdate) SetEnabled(v bool) *AgentRecordUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableEnabled(v *bool) *AgentRecordUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentRecordUpdate) SetVersion(v int) *AgentRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableVersion(v *int) *AgentRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentRecordUpdate) AddVersion(v int) *AgentRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *AgentRecordUpdate) SetIsBuiltin(v bool) *AgentRecordUpdate {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableIsBuiltin(v *bool) *AgentRecordUpdate {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdate) SetUpdatedAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if v, ok := _u.mutation.AgentClass(); ok {
		if err := agentrecord.AgentClassValidator(v); err != nil {
			return &ValidationError{Name: "agent_class", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.agent_class": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentrecord.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(agentrecord.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(agentrecord.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentClass(); ok {
		_spec.SetField(agentrecord.FieldAgentClass, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentrecord.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentrecord.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agentrecord.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentrecord.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentrecord.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentrecord.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentrecord.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentrecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentrecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(agentrecord.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentRecordUpdateOne) SetAgentID(v string) *AgentRecordUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableAgentID(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *AgentRecordUpdateOne) SetTenantID(v string) *AgentRecordUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableTenantID(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentRecordUpdateOne) SetName(v string) *AgentRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableName(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *AgentRecordUpdateOne) ClearName() *AgentRecordUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAgentClass sets the "agent_class" field.
func (_u *AgentRecordUpdateOne) SetAgentClass(v agentrecord.AgentClass) *AgentRecordUpdateOne {
	_u.mutation.SetAgentClass(v)
	return _u
}

// SetNillableAgentClass sets the "agent_class" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableAgentClass(v *agentrecord.AgentClass) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetAgentClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentRecordUpdateOne) SetSystemPrompt(v string) *AgentRecordUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableSystemPrompt(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentRecordUpdateOne) SetTools(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentRecordUpdateOne) AppendTools(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentRecordUpdateOne) ClearTools() *AgentRecordUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentRecordUpdateOne) SetDependencies(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentRecordUpdateOne) AppendDependencies(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentRecordUpdateOne) ClearDependencies() *AgentRecordUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentRecordUpdateOne) SetOutputSchema(v map[string]string) *AgentRecordUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentRecordUpdateOne) SetEnabled(v bool) *AgentRecordUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableEnabled(v *bool) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentRecordUpdateOne) SetVersion(v int) *AgentRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableVersion(v *int) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentRecordUpdateOne) AddVersion(v int) *AgentRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsBuiltin sets the "is_builtin" field.
func (_u *AgentRecordUpdateOne) SetIsBuiltin(v bool) *AgentRecordUpdateOne {
	_u.mutation.SetIsBuiltin(v)
	return _u
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableIsBuiltin(v *bool) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetIsBuiltin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdateOne) SetUpdatedAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.AgentClass(); ok {
		if err := agentrecord.AgentClassValidator(v); err != nil {
			return &ValidationError{Name: "agent_class", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.agent_class": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentrecord.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(agentrecord.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentrecord.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(agentrecord.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AgentClass(); ok {
		_spec.SetField(agentrecord.FieldAgentClass, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentrecord.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agentrecord.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agentrecord.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentrecord.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentrecord.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentrecord.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentrecord.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentrecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentrecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBuiltin(); ok {
		_spec.SetField(agentrecord.FieldIsBuiltin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
