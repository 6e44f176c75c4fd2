// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

// ReportJobCreate is the builder for creating a ReportJob entity.
type ReportJobCreate struct {
	config
	mutation *ReportJobMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *ReportJobCreate) SetKind(v reportjob.Kind) *ReportJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *ReportJobCreate) SetTenantID(v string) *ReportJobCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReportJobCreate) SetUserID(v string) *ReportJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableUserID(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *ReportJobCreate) SetDomainID(v string) *ReportJobCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *ReportJobCreate) SetInput(v map[string]interface{}) *ReportJobCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportJobCreate) SetStatus(v reportjob.Status) *ReportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableStatus(v *reportjob.Status) *ReportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportJobCreate) SetCreatedAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableCreatedAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ReportJobCreate) SetStartedAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableStartedAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ReportJobCreate) SetCompletedAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableCompletedAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReportJobCreate) SetErrorMessage(v string) *ReportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableErrorMessage(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExecutionLog sets the "execution_log" field.
func (_c *ReportJobCreate) SetExecutionLog(v []models.ExecutionLogEntry) *ReportJobCreate {
	_c.mutation.SetExecutionLog(v)
	return _c
}

// SetCacheStats sets the "cache_stats" field.
func (_c *ReportJobCreate) SetCacheStats(v *models.CacheStats) *ReportJobCreate {
	_c.mutation.SetCacheStats(v)
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *ReportJobCreate) SetArtifactID(v string) *ReportJobCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableArtifactID(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetArtifactID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ReportJobCreate) SetPodID(v string) *ReportJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillablePodID(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *ReportJobCreate) SetLastInteractionAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableLastInteractionAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetRequeueCount sets the "requeue_count" field.
func (_c *ReportJobCreate) SetRequeueCount(v int) *ReportJobCreate {
	_c.mutation.SetRequeueCount(v)
	return _c
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableRequeueCount(v *int) *ReportJobCreate {
	if v != nil {
		_c.SetRequeueCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportJobCreate) SetID(v string) *ReportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReportJobMutation object of the builder.
func (_c *ReportJobCreate) Mutation() *ReportJobMutation {
	return _c.mutation
}

// Save creates the ReportJob in the database.
func (_c *ReportJobCreate) Save(ctx context.Context) (*ReportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportJobCreate) SaveX(ctx context.Context) *ReportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reportjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		v := reportjob.DefaultRequeueCount
		_c.mutation.SetRequeueCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportJobCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ReportJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := reportjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ReportJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ReportJob.tenant_id"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "ReportJob.domain_id"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "ReportJob.input"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportJob.created_at"`)}
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		return &ValidationError{Name: "requeue_count", err: errors.New(`ent: missing required field "ReportJob.requeue_count"`)}
	}
	return nil
}

func (_c *ReportJobCreate) sqlSave(ctx context.Context) (*ReportJob, error) {
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
			return nil, fmt.Errorf("unexpected ReportJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportJobCreate) createSpec() (*ReportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportjob.Table, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(reportjob.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(reportjob.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reportjob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(reportjob.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(reportjob.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(reportjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExecutionLog(); ok {
		_spec.SetField(reportjob.FieldExecutionLog, field.TypeJSON, value)
		_node.ExecutionLog = value
	}
	if value, ok := _c.mutation.CacheStats(); ok {
		_spec.SetField(reportjob.FieldCacheStats, field.TypeJSON, value)
		_node.CacheStats = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(reportjob.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(reportjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(reportjob.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.RequeueCount(); ok {
		_spec.SetField(reportjob.FieldRequeueCount, field.TypeInt, value)
		_node.RequeueCount = value
	}
	return _node, _spec
}

// ReportJobCreateBulk is the builder for creating many ReportJob entities in bulk.
type ReportJobCreateBulk struct {
	config
	err      error
	builders []*ReportJobCreate
}

// Save creates the ReportJob entities in the database.
func (_c *ReportJobCreateBulk) Save(ctx context.Context) ([]*ReportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportJobMutation)
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
func (_c *ReportJobCreateBulk) SaveX(ctx context.Context) []*ReportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
