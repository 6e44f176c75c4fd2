// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/queryanswer"
)

// QueryAnswerCreate is the builder for creating a QueryAnswer entity.
type QueryAnswerCreate struct {
	config
	mutation *QueryAnswerMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *QueryAnswerCreate) SetTenantID(v string) *QueryAnswerCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *QueryAnswerCreate) SetDomainID(v string) *QueryAnswerCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *QueryAnswerCreate) SetJobID(v string) *QueryAnswerCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QueryAnswerCreate) SetKind(v queryanswer.Kind) *QueryAnswerCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QueryAnswerCreate) SetQuestion(v string) *QueryAnswerCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetData sets the "data" field.
func (_c *QueryAnswerCreate) SetData(v map[string]interface{}) *QueryAnswerCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QueryAnswerCreate) SetConfidence(v float64) *QueryAnswerCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *QueryAnswerCreate) SetNillableConfidence(v *float64) *QueryAnswerCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryAnswerCreate) SetCreatedAt(v time.Time) *QueryAnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryAnswerCreate) SetNillableCreatedAt(v *time.Time) *QueryAnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryAnswerCreate) SetID(v string) *QueryAnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueryAnswerMutation object of the builder.
func (_c *QueryAnswerCreate) Mutation() *QueryAnswerMutation {
	return _c.mutation
}

// Save creates the QueryAnswer in the database.
func (_c *QueryAnswerCreate) Save(ctx context.Context) (*QueryAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryAnswerCreate) SaveX(ctx context.Context) *QueryAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryAnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queryanswer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryAnswerCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "QueryAnswer.tenant_id"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "QueryAnswer.domain_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "QueryAnswer.job_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QueryAnswer.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := queryanswer.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueryAnswer.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QueryAnswer.question"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "QueryAnswer.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryAnswer.created_at"`)}
	}
	return nil
}

func (_c *QueryAnswerCreate) sqlSave(ctx context.Context) (*QueryAnswer, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QueryAnswer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryAnswerCreate) createSpec() (*QueryAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryanswer.Table, sqlgraph.NewFieldSpec(queryanswer.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(queryanswer.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(queryanswer.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(queryanswer.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(queryanswer.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(queryanswer.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(queryanswer.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(queryanswer.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queryanswer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QueryAnswerCreateBulk is the builder for creating many QueryAnswer entities in bulk.
type QueryAnswerCreateBulk struct {
	config
	err      error
	builders []*QueryAnswerCreate
}

// Save creates the QueryAnswer entities in the database.
func (_c *QueryAnswerCreateBulk) Save(ctx context.Context) ([]*QueryAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryAnswerMutation)
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
func (_c *QueryAnswerCreateBulk) SaveX(ctx context.Context) []*QueryAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
