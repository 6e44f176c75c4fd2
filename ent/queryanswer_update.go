// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/predicate"
	"github.com/reportline/reportline/ent/queryanswer"
)

// QueryAnswerUpdate is the builder for updating QueryAnswer entities.
type QueryAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *QueryAnswerMutation
}

// Where appends a list predicates to the QueryAnswerUpdate builder.
func (_u *QueryAnswerUpdate) Where(ps ...predicate.QueryAnswer) *QueryAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *QueryAnswerUpdate) SetTenantID(v string) *QueryAnswerUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableTenantID(v *string) *QueryAnswerUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *QueryAnswerUpdate) SetDomainID(v string) *QueryAnswerUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableDomainID(v *string) *QueryAnswerUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QueryAnswerUpdate) SetJobID(v string) *QueryAnswerUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableJobID(v *string) *QueryAnswerUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QueryAnswerUpdate) SetKind(v queryanswer.Kind) *QueryAnswerUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableKind(v *queryanswer.Kind) *QueryAnswerUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryAnswerUpdate) SetQuestion(v string) *QueryAnswerUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableQuestion(v *string) *QueryAnswerUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *QueryAnswerUpdate) SetData(v map[string]interface{}) *QueryAnswerUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QueryAnswerUpdate) SetConfidence(v float64) *QueryAnswerUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QueryAnswerUpdate) SetNillableConfidence(v *float64) *QueryAnswerUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QueryAnswerUpdate) AddConfidence(v float64) *QueryAnswerUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *QueryAnswerUpdate) ClearConfidence() *QueryAnswerUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// Mutation returns the QueryAnswerMutation object of the builder.
func (_u *QueryAnswerUpdate) Mutation() *QueryAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryAnswerUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := queryanswer.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueryAnswer.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryanswer.Table, queryanswer.Columns, sqlgraph.NewFieldSpec(queryanswer.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(queryanswer.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(queryanswer.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(queryanswer.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(queryanswer.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(queryanswer.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(queryanswer.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(queryanswer.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(queryanswer.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(queryanswer.FieldConfidence, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryAnswerUpdateOne is the builder for updating a single QueryAnswer entity.
type QueryAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryAnswerMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *QueryAnswerUpdateOne) SetTenantID(v string) *QueryAnswerUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableTenantID(v *string) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *QueryAnswerUpdateOne) SetDomainID(v string) *QueryAnswerUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableDomainID(v *string) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QueryAnswerUpdateOne) SetJobID(v string) *QueryAnswerUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableJobID(v *string) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QueryAnswerUpdateOne) SetKind(v queryanswer.Kind) *QueryAnswerUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableKind(v *queryanswer.Kind) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryAnswerUpdateOne) SetQuestion(v string) *QueryAnswerUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableQuestion(v *string) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *QueryAnswerUpdateOne) SetData(v map[string]interface{}) *QueryAnswerUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QueryAnswerUpdateOne) SetConfidence(v float64) *QueryAnswerUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QueryAnswerUpdateOne) SetNillableConfidence(v *float64) *QueryAnswerUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QueryAnswerUpdateOne) AddConfidence(v float64) *QueryAnswerUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *QueryAnswerUpdateOne) ClearConfidence() *QueryAnswerUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// Mutation returns the QueryAnswerMutation object of the builder.
func (_u *QueryAnswerUpdateOne) Mutation() *QueryAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryAnswerUpdate builder.
func (_u *QueryAnswerUpdateOne) Where(ps ...predicate.QueryAnswer) *QueryAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryAnswerUpdateOne) Select(field string, fields ...string) *QueryAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryAnswer entity.
func (_u *QueryAnswerUpdateOne) Save(ctx context.Context) (*QueryAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryAnswerUpdateOne) SaveX(ctx context.Context) *QueryAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryAnswerUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := queryanswer.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueryAnswer.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryAnswerUpdateOne) sqlSave(ctx context.Context) (_node *QueryAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryanswer.Table, queryanswer.Columns, sqlgraph.NewFieldSpec(queryanswer.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryanswer.FieldID)
		for _, f := range fields {
			if !queryanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryanswer.FieldID {
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
		_spec.SetField(queryanswer.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(queryanswer.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(queryanswer.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(queryanswer.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(queryanswer.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(queryanswer.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(queryanswer.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(queryanswer.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(queryanswer.FieldConfidence, field.TypeFloat64)
	}
	_node = &QueryAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
