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
	"github.com/reportline/reportline/ent/predicate"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

// ReportJobUpdate is the builder for updating ReportJob entities.
type ReportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ReportJobMutation
}

// Where appends a list predicates to the ReportJobUpdate builder.
func (_u *ReportJobUpdate) Where(ps ...predicate.ReportJob) *ReportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReportJobUpdate) SetKind(v reportjob.Kind) *ReportJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableKind(v *reportjob.Kind) *ReportJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ReportJobUpdate) SetTenantID(v string) *ReportJobUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableTenantID(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportJobUpdate) SetUserID(v string) *ReportJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableUserID(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ReportJobUpdate) ClearUserID() *ReportJobUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *ReportJobUpdate) SetDomainID(v string) *ReportJobUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableDomainID(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ReportJobUpdate) SetInput(v map[string]interface{}) *ReportJobUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportJobUpdate) SetStatus(v reportjob.Status) *ReportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableStatus(v *reportjob.Status) *ReportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReportJobUpdate) SetStartedAt(v time.Time) *ReportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableStartedAt(v *time.Time) *ReportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReportJobUpdate) ClearStartedAt() *ReportJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReportJobUpdate) SetCompletedAt(v time.Time) *ReportJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableCompletedAt(v *time.Time) *ReportJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReportJobUpdate) ClearCompletedAt() *ReportJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportJobUpdate) SetErrorMessage(v string) *ReportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableErrorMessage(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportJobUpdate) ClearErrorMessage() *ReportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionLog sets the "execution_log" field.
func (_u *ReportJobUpdate) SetExecutionLog(v []models.ExecutionLogEntry) *ReportJobUpdate {
	_u.mutation.SetExecutionLog(v)
	return _u
}

// AppendExecutionLog appends value to the "execution_log" field.
func (_u *ReportJobUpdate) AppendExecutionLog(v []models.ExecutionLogEntry) *ReportJobUpdate {
	_u.mutation.AppendExecutionLog(v)
	return _u
}

// ClearExecutionLog clears the value of the "execution_log" field.
func (_u *ReportJobUpdate) ClearExecutionLog() *ReportJobUpdate {
	_u.mutation.ClearExecutionLog()
	return _u
}

// SetCacheStats sets the "cache_stats" field.
func (_u *ReportJobUpdate) SetCacheStats(v *models.CacheStats) *ReportJobUpdate {
	_u.mutation.SetCacheStats(v)
	return _u
}

// ClearCacheStats clears the value of the "cache_stats" field.
func (_u *ReportJobUpdate) ClearCacheStats() *ReportJobUpdate {
	_u.mutation.ClearCacheStats()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ReportJobUpdate) SetArtifactID(v string) *ReportJobUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableArtifactID(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *ReportJobUpdate) ClearArtifactID() *ReportJobUpdate {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReportJobUpdate) SetPodID(v string) *ReportJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillablePodID(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReportJobUpdate) ClearPodID() *ReportJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ReportJobUpdate) SetLastInteractionAt(v time.Time) *ReportJobUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableLastInteractionAt(v *time.Time) *ReportJobUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ReportJobUpdate) ClearLastInteractionAt() *ReportJobUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *ReportJobUpdate) SetRequeueCount(v int) *ReportJobUpdate {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableRequeueCount(v *int) *ReportJobUpdate {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *ReportJobUpdate) AddRequeueCount(v int) *ReportJobUpdate {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// Mutation returns the ReportJobMutation object of the builder.
func (_u *ReportJobUpdate) Mutation() *ReportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := reportjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ReportJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportjob.Table, reportjob.Columns, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reportjob.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(reportjob.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reportjob.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(reportjob.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(reportjob.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(reportjob.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reportjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reportjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reportjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reportjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionLog(); ok {
		_spec.SetField(reportjob.FieldExecutionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportjob.FieldExecutionLog, value)
		})
	}
	if _u.mutation.ExecutionLogCleared() {
		_spec.ClearField(reportjob.FieldExecutionLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.CacheStats(); ok {
		_spec.SetField(reportjob.FieldCacheStats, field.TypeJSON, value)
	}
	if _u.mutation.CacheStatsCleared() {
		_spec.ClearField(reportjob.FieldCacheStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(reportjob.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(reportjob.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reportjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reportjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(reportjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(reportjob.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(reportjob.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(reportjob.FieldRequeueCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportJobUpdateOne is the builder for updating a single ReportJob entity.
type ReportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportJobMutation
}

// SetKind sets the "kind" field.
func (_u *ReportJobUpdateOne) SetKind(v reportjob.Kind) *ReportJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableKind(v *reportjob.Kind) *ReportJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ReportJobUpdateOne) SetTenantID(v string) *ReportJobUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableTenantID(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportJobUpdateOne) SetUserID(v string) *ReportJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableUserID(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ReportJobUpdateOne) ClearUserID() *ReportJobUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *ReportJobUpdateOne) SetDomainID(v string) *ReportJobUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableDomainID(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ReportJobUpdateOne) SetInput(v map[string]interface{}) *ReportJobUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportJobUpdateOne) SetStatus(v reportjob.Status) *ReportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableStatus(v *reportjob.Status) *ReportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReportJobUpdateOne) SetStartedAt(v time.Time) *ReportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ReportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReportJobUpdateOne) ClearStartedAt() *ReportJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReportJobUpdateOne) SetCompletedAt(v time.Time) *ReportJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ReportJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReportJobUpdateOne) ClearCompletedAt() *ReportJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportJobUpdateOne) SetErrorMessage(v string) *ReportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableErrorMessage(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportJobUpdateOne) ClearErrorMessage() *ReportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionLog sets the "execution_log" field.
func (_u *ReportJobUpdateOne) SetExecutionLog(v []models.ExecutionLogEntry) *ReportJobUpdateOne {
	_u.mutation.SetExecutionLog(v)
	return _u
}

// AppendExecutionLog appends value to the "execution_log" field.
func (_u *ReportJobUpdateOne) AppendExecutionLog(v []models.ExecutionLogEntry) *ReportJobUpdateOne {
	_u.mutation.AppendExecutionLog(v)
	return _u
}

// ClearExecutionLog clears the value of the "execution_log" field.
func (_u *ReportJobUpdateOne) ClearExecutionLog() *ReportJobUpdateOne {
	_u.mutation.ClearExecutionLog()
	return _u
}

// SetCacheStats sets the "cache_stats" field.
func (_u *ReportJobUpdateOne) SetCacheStats(v *models.CacheStats) *ReportJobUpdateOne {
	_u.mutation.SetCacheStats(v)
	return _u
}

// ClearCacheStats clears the value of the "cache_stats" field.
func (_u *ReportJobUpdateOne) ClearCacheStats() *ReportJobUpdateOne {
	_u.mutation.ClearCacheStats()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ReportJobUpdateOne) SetArtifactID(v string) *ReportJobUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableArtifactID(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *ReportJobUpdateOne) ClearArtifactID() *ReportJobUpdateOne {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReportJobUpdateOne) SetPodID(v string) *ReportJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillablePodID(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReportJobUpdateOne) ClearPodID() *ReportJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ReportJobUpdateOne) SetLastInteractionAt(v time.Time) *ReportJobUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ReportJobUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ReportJobUpdateOne) ClearLastInteractionAt() *ReportJobUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *ReportJobUpdateOne) SetRequeueCount(v int) *ReportJobUpdateOne {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableRequeueCount(v *int) *ReportJobUpdateOne {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *ReportJobUpdateOne) AddRequeueCount(v int) *ReportJobUpdateOne {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// Mutation returns the ReportJobMutation object of the builder.
func (_u *ReportJobUpdateOne) Mutation() *ReportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportJobUpdate builder.
func (_u *ReportJobUpdateOne) Where(ps ...predicate.ReportJob) *ReportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportJobUpdateOne) Select(field string, fields ...string) *ReportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportJob entity.
func (_u *ReportJobUpdateOne) Save(ctx context.Context) (*ReportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportJobUpdateOne) SaveX(ctx context.Context) *ReportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := reportjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ReportJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportJobUpdateOne) sqlSave(ctx context.Context) (_node *ReportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportjob.Table, reportjob.Columns, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportjob.FieldID)
		for _, f := range fields {
			if !reportjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportjob.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reportjob.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(reportjob.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reportjob.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(reportjob.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.DomainID(); ok {
		_spec.SetField(reportjob.FieldDomainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(reportjob.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reportjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reportjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reportjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reportjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionLog(); ok {
		_spec.SetField(reportjob.FieldExecutionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportjob.FieldExecutionLog, value)
		})
	}
	if _u.mutation.ExecutionLogCleared() {
		_spec.ClearField(reportjob.FieldExecutionLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.CacheStats(); ok {
		_spec.SetField(reportjob.FieldCacheStats, field.TypeJSON, value)
	}
	if _u.mutation.CacheStatsCleared() {
		_spec.ClearField(reportjob.FieldCacheStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(reportjob.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(reportjob.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reportjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reportjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(reportjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(reportjob.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(reportjob.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(reportjob.FieldRequeueCount, field.TypeInt, value)
	}
	_node = &ReportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
