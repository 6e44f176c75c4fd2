// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reportline/reportline/ent/agentrecord"
	"github.com/reportline/reportline/ent/domainrecord"
	"github.com/reportline/reportline/ent/event"
	"github.com/reportline/reportline/ent/incident"
	"github.com/reportline/reportline/ent/predicate"
	"github.com/reportline/reportline/ent/queryanswer"
	"github.com/reportline/reportline/ent/reportjob"
	"github.com/reportline/reportline/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRecord  = "AgentRecord"
	TypeDomainRecord = "DomainRecord"
	TypeEvent        = "Event"
	TypeIncident     = "Incident"
	TypeQueryAnswer  = "QueryAnswer"
	TypeReportJob    = "ReportJob"
)

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	agent_id           *string
	tenant_id          *string
	name               *string
	agent_class        *agentrecord.AgentClass
	system_prompt      *string
	tools              *[]string
	appendtools        []string
	dependencies       *[]string
	appenddependencies []string
	output_schema      *map[string]string
	enabled            *bool
	version            *int
	addversion         *int
	is_builtin         *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AgentRecord, error)
	predicates         []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id int) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentRecordMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentRecordMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentRecordMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *AgentRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *AgentRecordMutation) ClearName() {
	m.name = nil
	m.clearedFields[agentrecord.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *AgentRecordMutation) NameCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *AgentRecordMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, agentrecord.FieldName)
}

// SetAgentClass sets the "agent_class" field.
func (m *AgentRecordMutation) SetAgentClass(ac agentrecord.AgentClass) {
	m.agent_class = &ac
}

// AgentClass returns the value of the "agent_class" field in the mutation.
func (m *AgentRecordMutation) AgentClass() (r agentrecord.AgentClass, exists bool) {
	v := m.agent_class
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentClass returns the old "agent_class" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldAgentClass(ctx context.Context) (v agentrecord.AgentClass, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentClass: %w", err)
	}
	return oldValue.AgentClass, nil
}

// ResetAgentClass resets all changes to the "agent_class" field.
func (m *AgentRecordMutation) ResetAgentClass() {
	m.agent_class = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentRecordMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentRecordMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentRecordMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetTools sets the "tools" field.
func (m *AgentRecordMutation) SetTools(s []string) {
	m.tools = &s
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *AgentRecordMutation) Tools() (r []string, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds s to the "tools" field.
func (m *AgentRecordMutation) AppendTools(s []string) {
	m.appendtools = append(m.appendtools, s...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *AgentRecordMutation) AppendedTools() ([]string, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *AgentRecordMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[agentrecord.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *AgentRecordMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *AgentRecordMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, agentrecord.FieldTools)
}

// SetDependencies sets the "dependencies" field.
func (m *AgentRecordMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *AgentRecordMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *AgentRecordMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *AgentRecordMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *AgentRecordMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[agentrecord.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *AgentRecordMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *AgentRecordMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, agentrecord.FieldDependencies)
}

// SetOutputSchema sets the "output_schema" field.
func (m *AgentRecordMutation) SetOutputSchema(value map[string]string) {
	m.output_schema = &value
}

// OutputSchema returns the value of the "output_schema" field in the mutation.
func (m *AgentRecordMutation) OutputSchema() (r map[string]string, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchema returns the old "output_schema" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldOutputSchema(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchema: %w", err)
	}
	return oldValue.OutputSchema, nil
}

// ResetOutputSchema resets all changes to the "output_schema" field.
func (m *AgentRecordMutation) ResetOutputSchema() {
	m.output_schema = nil
}

// SetEnabled sets the "enabled" field.
func (m *AgentRecordMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AgentRecordMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AgentRecordMutation) ResetEnabled() {
	m.enabled = nil
}

// SetVersion sets the "version" field.
func (m *AgentRecordMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentRecordMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentRecordMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentRecordMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *AgentRecordMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *AgentRecordMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *AgentRecordMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_id != nil {
		fields = append(fields, agentrecord.FieldAgentID)
	}
	if m.tenant_id != nil {
		fields = append(fields, agentrecord.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, agentrecord.FieldName)
	}
	if m.agent_class != nil {
		fields = append(fields, agentrecord.FieldAgentClass)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentrecord.FieldSystemPrompt)
	}
	if m.tools != nil {
		fields = append(fields, agentrecord.FieldTools)
	}
	if m.dependencies != nil {
		fields = append(fields, agentrecord.FieldDependencies)
	}
	if m.output_schema != nil {
		fields = append(fields, agentrecord.FieldOutputSchema)
	}
	if m.enabled != nil {
		fields = append(fields, agentrecord.FieldEnabled)
	}
	if m.version != nil {
		fields = append(fields, agentrecord.FieldVersion)
	}
	if m.is_builtin != nil {
		fields = append(fields, agentrecord.FieldIsBuiltin)
	}
	if m.created_at != nil {
		fields = append(fields, agentrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldAgentID:
		return m.AgentID()
	case agentrecord.FieldTenantID:
		return m.TenantID()
	case agentrecord.FieldName:
		return m.Name()
	case agentrecord.FieldAgentClass:
		return m.AgentClass()
	case agentrecord.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentrecord.FieldTools:
		return m.Tools()
	case agentrecord.FieldDependencies:
		return m.Dependencies()
	case agentrecord.FieldOutputSchema:
		return m.OutputSchema()
	case agentrecord.FieldEnabled:
		return m.Enabled()
	case agentrecord.FieldVersion:
		return m.Version()
	case agentrecord.FieldIsBuiltin:
		return m.IsBuiltin()
	case agentrecord.FieldCreatedAt:
		return m.CreatedAt()
	case agentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentrecord.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentrecord.FieldName:
		return m.OldName(ctx)
	case agentrecord.FieldAgentClass:
		return m.OldAgentClass(ctx)
	case agentrecord.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentrecord.FieldTools:
		return m.OldTools(ctx)
	case agentrecord.FieldDependencies:
		return m.OldDependencies(ctx)
	case agentrecord.FieldOutputSchema:
		return m.OldOutputSchema(ctx)
	case agentrecord.FieldEnabled:
		return m.OldEnabled(ctx)
	case agentrecord.FieldVersion:
		return m.OldVersion(ctx)
	case agentrecord.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case agentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentrecord.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentrecord.FieldAgentClass:
		v, ok := value.(agentrecord.AgentClass)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentClass(v)
		return nil
	case agentrecord.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentrecord.FieldTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case agentrecord.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case agentrecord.FieldOutputSchema:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchema(v)
		return nil
	case agentrecord.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case agentrecord.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentrecord.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case agentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agentrecord.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldName) {
		fields = append(fields, agentrecord.FieldName)
	}
	if m.FieldCleared(agentrecord.FieldTools) {
		fields = append(fields, agentrecord.FieldTools)
	}
	if m.FieldCleared(agentrecord.FieldDependencies) {
		fields = append(fields, agentrecord.FieldDependencies)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldName:
		m.ClearName()
		return nil
	case agentrecord.FieldTools:
		m.ClearTools()
		return nil
	case agentrecord.FieldDependencies:
		m.ClearDependencies()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentrecord.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentrecord.FieldName:
		m.ResetName()
		return nil
	case agentrecord.FieldAgentClass:
		m.ResetAgentClass()
		return nil
	case agentrecord.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentrecord.FieldTools:
		m.ResetTools()
		return nil
	case agentrecord.FieldDependencies:
		m.ResetDependencies()
		return nil
	case agentrecord.FieldOutputSchema:
		m.ResetOutputSchema()
		return nil
	case agentrecord.FieldEnabled:
		m.ResetEnabled()
		return nil
	case agentrecord.FieldVersion:
		m.ResetVersion()
		return nil
	case agentrecord.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case agentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// DomainRecordMutation represents an operation that mutates the DomainRecord nodes in the graph.
type DomainRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	domain_id           *string
	tenant_id           *string
	name                *string
	ingestion_playbook  *models.Playbook
	query_playbook      *models.Playbook
	management_playbook *models.Playbook
	is_builtin          *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*DomainRecord, error)
	predicates          []predicate.DomainRecord
}

var _ ent.Mutation = (*DomainRecordMutation)(nil)

// domainrecordOption allows management of the mutation configuration using functional options.
type domainrecordOption func(*DomainRecordMutation)

// newDomainRecordMutation creates new mutation for the DomainRecord entity.
func newDomainRecordMutation(c config, op Op, opts ...domainrecordOption) *DomainRecordMutation {
	m := &DomainRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainRecordID sets the ID field of the mutation.
func withDomainRecordID(id int) domainrecordOption {
	return func(m *DomainRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainRecord
		)
		m.oldValue = func(ctx context.Context) (*DomainRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainRecord sets the old DomainRecord of the mutation.
func withDomainRecord(node *DomainRecord) domainrecordOption {
	return func(m *DomainRecordMutation) {
		m.oldValue = func(context.Context) (*DomainRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomainID sets the "domain_id" field.
func (m *DomainRecordMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *DomainRecordMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *DomainRecordMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *DomainRecordMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DomainRecordMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DomainRecordMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *DomainRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DomainRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *DomainRecordMutation) ClearName() {
	m.name = nil
	m.clearedFields[domainrecord.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *DomainRecordMutation) NameCleared() bool {
	_, ok := m.clearedFields[domainrecord.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *DomainRecordMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, domainrecord.FieldName)
}

// SetIngestionPlaybook sets the "ingestion_playbook" field.
func (m *DomainRecordMutation) SetIngestionPlaybook(value models.Playbook) {
	m.ingestion_playbook = &value
}

// IngestionPlaybook returns the value of the "ingestion_playbook" field in the mutation.
func (m *DomainRecordMutation) IngestionPlaybook() (r models.Playbook, exists bool) {
	v := m.ingestion_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionPlaybook returns the old "ingestion_playbook" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldIngestionPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionPlaybook: %w", err)
	}
	return oldValue.IngestionPlaybook, nil
}

// ResetIngestionPlaybook resets all changes to the "ingestion_playbook" field.
func (m *DomainRecordMutation) ResetIngestionPlaybook() {
	m.ingestion_playbook = nil
}

// SetQueryPlaybook sets the "query_playbook" field.
func (m *DomainRecordMutation) SetQueryPlaybook(value models.Playbook) {
	m.query_playbook = &value
}

// QueryPlaybook returns the value of the "query_playbook" field in the mutation.
func (m *DomainRecordMutation) QueryPlaybook() (r models.Playbook, exists bool) {
	v := m.query_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryPlaybook returns the old "query_playbook" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldQueryPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryPlaybook: %w", err)
	}
	return oldValue.QueryPlaybook, nil
}

// ResetQueryPlaybook resets all changes to the "query_playbook" field.
func (m *DomainRecordMutation) ResetQueryPlaybook() {
	m.query_playbook = nil
}

// SetManagementPlaybook sets the "management_playbook" field.
func (m *DomainRecordMutation) SetManagementPlaybook(value models.Playbook) {
	m.management_playbook = &value
}

// ManagementPlaybook returns the value of the "management_playbook" field in the mutation.
func (m *DomainRecordMutation) ManagementPlaybook() (r models.Playbook, exists bool) {
	v := m.management_playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldManagementPlaybook returns the old "management_playbook" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldManagementPlaybook(ctx context.Context) (v models.Playbook, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagementPlaybook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagementPlaybook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagementPlaybook: %w", err)
	}
	return oldValue.ManagementPlaybook, nil
}

// ResetManagementPlaybook resets all changes to the "management_playbook" field.
func (m *DomainRecordMutation) ResetManagementPlaybook() {
	m.management_playbook = nil
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *DomainRecordMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *DomainRecordMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *DomainRecordMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DomainRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DomainRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DomainRecord entity.
// If the DomainRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DomainRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DomainRecordMutation builder.
func (m *DomainRecordMutation) Where(ps ...predicate.DomainRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainRecord).
func (m *DomainRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.domain_id != nil {
		fields = append(fields, domainrecord.FieldDomainID)
	}
	if m.tenant_id != nil {
		fields = append(fields, domainrecord.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, domainrecord.FieldName)
	}
	if m.ingestion_playbook != nil {
		fields = append(fields, domainrecord.FieldIngestionPlaybook)
	}
	if m.query_playbook != nil {
		fields = append(fields, domainrecord.FieldQueryPlaybook)
	}
	if m.management_playbook != nil {
		fields = append(fields, domainrecord.FieldManagementPlaybook)
	}
	if m.is_builtin != nil {
		fields = append(fields, domainrecord.FieldIsBuiltin)
	}
	if m.created_at != nil {
		fields = append(fields, domainrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, domainrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainrecord.FieldDomainID:
		return m.DomainID()
	case domainrecord.FieldTenantID:
		return m.TenantID()
	case domainrecord.FieldName:
		return m.Name()
	case domainrecord.FieldIngestionPlaybook:
		return m.IngestionPlaybook()
	case domainrecord.FieldQueryPlaybook:
		return m.QueryPlaybook()
	case domainrecord.FieldManagementPlaybook:
		return m.ManagementPlaybook()
	case domainrecord.FieldIsBuiltin:
		return m.IsBuiltin()
	case domainrecord.FieldCreatedAt:
		return m.CreatedAt()
	case domainrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainrecord.FieldDomainID:
		return m.OldDomainID(ctx)
	case domainrecord.FieldTenantID:
		return m.OldTenantID(ctx)
	case domainrecord.FieldName:
		return m.OldName(ctx)
	case domainrecord.FieldIngestionPlaybook:
		return m.OldIngestionPlaybook(ctx)
	case domainrecord.FieldQueryPlaybook:
		return m.OldQueryPlaybook(ctx)
	case domainrecord.FieldManagementPlaybook:
		return m.OldManagementPlaybook(ctx)
	case domainrecord.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case domainrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case domainrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DomainRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainrecord.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case domainrecord.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case domainrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case domainrecord.FieldIngestionPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionPlaybook(v)
		return nil
	case domainrecord.FieldQueryPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryPlaybook(v)
		return nil
	case domainrecord.FieldManagementPlaybook:
		v, ok := value.(models.Playbook)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagementPlaybook(v)
		return nil
	case domainrecord.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case domainrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case domainrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DomainRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DomainRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domainrecord.FieldName) {
		fields = append(fields, domainrecord.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainRecordMutation) ClearField(name string) error {
	switch name {
	case domainrecord.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown DomainRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainRecordMutation) ResetField(name string) error {
	switch name {
	case domainrecord.FieldDomainID:
		m.ResetDomainID()
		return nil
	case domainrecord.FieldTenantID:
		m.ResetTenantID()
		return nil
	case domainrecord.FieldName:
		m.ResetName()
		return nil
	case domainrecord.FieldIngestionPlaybook:
		m.ResetIngestionPlaybook()
		return nil
	case domainrecord.FieldQueryPlaybook:
		m.ResetQueryPlaybook()
		return nil
	case domainrecord.FieldManagementPlaybook:
		m.ResetManagementPlaybook()
		return nil
	case domainrecord.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case domainrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case domainrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainRecord edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	job_id        *string
	channel       *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *EventMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EventMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EventMutation) ResetJobID() {
	m.job_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job_id != nil {
		fields = append(fields, event.FieldJobID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldJobID:
		return m.JobID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldJobID:
		return m.OldJobID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldJobID:
		m.ResetJobID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	domain_id     *string
	job_id        *string
	raw_report    *string
	category      *string
	severity      *string
	data          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Incident, error)
	predicates    []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *IncidentMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *IncidentMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *IncidentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDomainID sets the "domain_id" field.
func (m *IncidentMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *IncidentMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *IncidentMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetJobID sets the "job_id" field.
func (m *IncidentMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *IncidentMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *IncidentMutation) ResetJobID() {
	m.job_id = nil
}

// SetRawReport sets the "raw_report" field.
func (m *IncidentMutation) SetRawReport(s string) {
	m.raw_report = &s
}

// RawReport returns the value of the "raw_report" field in the mutation.
func (m *IncidentMutation) RawReport() (r string, exists bool) {
	v := m.raw_report
	if v == nil {
		return
	}
	return *v, true
}

// OldRawReport returns the old "raw_report" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRawReport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawReport: %w", err)
	}
	return oldValue.RawReport, nil
}

// ResetRawReport resets all changes to the "raw_report" field.
func (m *IncidentMutation) ResetRawReport() {
	m.raw_report = nil
}

// SetCategory sets the "category" field.
func (m *IncidentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *IncidentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *IncidentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[incident.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *IncidentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[incident.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *IncidentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, incident.FieldCategory)
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *IncidentMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[incident.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *IncidentMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[incident.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, incident.FieldSeverity)
}

// SetData sets the "data" field.
func (m *IncidentMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *IncidentMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *IncidentMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, incident.FieldTenantID)
	}
	if m.domain_id != nil {
		fields = append(fields, incident.FieldDomainID)
	}
	if m.job_id != nil {
		fields = append(fields, incident.FieldJobID)
	}
	if m.raw_report != nil {
		fields = append(fields, incident.FieldRawReport)
	}
	if m.category != nil {
		fields = append(fields, incident.FieldCategory)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.data != nil {
		fields = append(fields, incident.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldTenantID:
		return m.TenantID()
	case incident.FieldDomainID:
		return m.DomainID()
	case incident.FieldJobID:
		return m.JobID()
	case incident.FieldRawReport:
		return m.RawReport()
	case incident.FieldCategory:
		return m.Category()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldData:
		return m.Data()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldTenantID:
		return m.OldTenantID(ctx)
	case incident.FieldDomainID:
		return m.OldDomainID(ctx)
	case incident.FieldJobID:
		return m.OldJobID(ctx)
	case incident.FieldRawReport:
		return m.OldRawReport(ctx)
	case incident.FieldCategory:
		return m.OldCategory(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldData:
		return m.OldData(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case incident.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case incident.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case incident.FieldRawReport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawReport(v)
		return nil
	case incident.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldCategory) {
		fields = append(fields, incident.FieldCategory)
	}
	if m.FieldCleared(incident.FieldSeverity) {
		fields = append(fields, incident.FieldSeverity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldCategory:
		m.ClearCategory()
		return nil
	case incident.FieldSeverity:
		m.ClearSeverity()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldTenantID:
		m.ResetTenantID()
		return nil
	case incident.FieldDomainID:
		m.ResetDomainID()
		return nil
	case incident.FieldJobID:
		m.ResetJobID()
		return nil
	case incident.FieldRawReport:
		m.ResetRawReport()
		return nil
	case incident.FieldCategory:
		m.ResetCategory()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldData:
		m.ResetData()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Incident edge %s", name)
}

// QueryAnswerMutation represents an operation that mutates the QueryAnswer nodes in the graph.
type QueryAnswerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	domain_id     *string
	job_id        *string
	kind          *queryanswer.Kind
	question      *string
	data          *map[string]interface{}
	confidence    *float64
	addconfidence *float64
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueryAnswer, error)
	predicates    []predicate.QueryAnswer
}

var _ ent.Mutation = (*QueryAnswerMutation)(nil)

// queryanswerOption allows management of the mutation configuration using functional options.
type queryanswerOption func(*QueryAnswerMutation)

// newQueryAnswerMutation creates new mutation for the QueryAnswer entity.
func newQueryAnswerMutation(c config, op Op, opts ...queryanswerOption) *QueryAnswerMutation {
	m := &QueryAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryAnswerID sets the ID field of the mutation.
func withQueryAnswerID(id string) queryanswerOption {
	return func(m *QueryAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryAnswer
		)
		m.oldValue = func(ctx context.Context) (*QueryAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryAnswer sets the old QueryAnswer of the mutation.
func withQueryAnswer(node *QueryAnswer) queryanswerOption {
	return func(m *QueryAnswerMutation) {
		m.oldValue = func(context.Context) (*QueryAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueryAnswer entities.
func (m *QueryAnswerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryAnswerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryAnswerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *QueryAnswerMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *QueryAnswerMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *QueryAnswerMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDomainID sets the "domain_id" field.
func (m *QueryAnswerMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *QueryAnswerMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *QueryAnswerMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetJobID sets the "job_id" field.
func (m *QueryAnswerMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *QueryAnswerMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *QueryAnswerMutation) ResetJobID() {
	m.job_id = nil
}

// SetKind sets the "kind" field.
func (m *QueryAnswerMutation) SetKind(q queryanswer.Kind) {
	m.kind = &q
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QueryAnswerMutation) Kind() (r queryanswer.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldKind(ctx context.Context) (v queryanswer.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QueryAnswerMutation) ResetKind() {
	m.kind = nil
}

// SetQuestion sets the "question" field.
func (m *QueryAnswerMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *QueryAnswerMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *QueryAnswerMutation) ResetQuestion() {
	m.question = nil
}

// SetData sets the "data" field.
func (m *QueryAnswerMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *QueryAnswerMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *QueryAnswerMutation) ResetData() {
	m.data = nil
}

// SetConfidence sets the "confidence" field.
func (m *QueryAnswerMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *QueryAnswerMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *QueryAnswerMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *QueryAnswerMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *QueryAnswerMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[queryanswer.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *QueryAnswerMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[queryanswer.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *QueryAnswerMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, queryanswer.FieldConfidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueryAnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueryAnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueryAnswer entity.
// If the QueryAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryAnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueryAnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueryAnswerMutation builder.
func (m *QueryAnswerMutation) Where(ps ...predicate.QueryAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryAnswer).
func (m *QueryAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryAnswerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, queryanswer.FieldTenantID)
	}
	if m.domain_id != nil {
		fields = append(fields, queryanswer.FieldDomainID)
	}
	if m.job_id != nil {
		fields = append(fields, queryanswer.FieldJobID)
	}
	if m.kind != nil {
		fields = append(fields, queryanswer.FieldKind)
	}
	if m.question != nil {
		fields = append(fields, queryanswer.FieldQuestion)
	}
	if m.data != nil {
		fields = append(fields, queryanswer.FieldData)
	}
	if m.confidence != nil {
		fields = append(fields, queryanswer.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, queryanswer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queryanswer.FieldTenantID:
		return m.TenantID()
	case queryanswer.FieldDomainID:
		return m.DomainID()
	case queryanswer.FieldJobID:
		return m.JobID()
	case queryanswer.FieldKind:
		return m.Kind()
	case queryanswer.FieldQuestion:
		return m.Question()
	case queryanswer.FieldData:
		return m.Data()
	case queryanswer.FieldConfidence:
		return m.Confidence()
	case queryanswer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queryanswer.FieldTenantID:
		return m.OldTenantID(ctx)
	case queryanswer.FieldDomainID:
		return m.OldDomainID(ctx)
	case queryanswer.FieldJobID:
		return m.OldJobID(ctx)
	case queryanswer.FieldKind:
		return m.OldKind(ctx)
	case queryanswer.FieldQuestion:
		return m.OldQuestion(ctx)
	case queryanswer.FieldData:
		return m.OldData(ctx)
	case queryanswer.FieldConfidence:
		return m.OldConfidence(ctx)
	case queryanswer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueryAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queryanswer.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case queryanswer.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case queryanswer.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case queryanswer.FieldKind:
		v, ok := value.(queryanswer.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case queryanswer.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case queryanswer.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case queryanswer.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case queryanswer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueryAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryAnswerMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, queryanswer.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queryanswer.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queryanswer.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown QueryAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryAnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queryanswer.FieldConfidence) {
		fields = append(fields, queryanswer.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryAnswerMutation) ClearField(name string) error {
	switch name {
	case queryanswer.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown QueryAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryAnswerMutation) ResetField(name string) error {
	switch name {
	case queryanswer.FieldTenantID:
		m.ResetTenantID()
		return nil
	case queryanswer.FieldDomainID:
		m.ResetDomainID()
		return nil
	case queryanswer.FieldJobID:
		m.ResetJobID()
		return nil
	case queryanswer.FieldKind:
		m.ResetKind()
		return nil
	case queryanswer.FieldQuestion:
		m.ResetQuestion()
		return nil
	case queryanswer.FieldData:
		m.ResetData()
		return nil
	case queryanswer.FieldConfidence:
		m.ResetConfidence()
		return nil
	case queryanswer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueryAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueryAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueryAnswer edge %s", name)
}

// ReportJobMutation represents an operation that mutates the ReportJob nodes in the graph.
type ReportJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *reportjob.Kind
	tenant_id           *string
	user_id             *string
	domain_id           *string
	input               *map[string]interface{}
	status              *reportjob.Status
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	error_message       *string
	execution_log       *[]models.ExecutionLogEntry
	appendexecution_log []models.ExecutionLogEntry
	cache_stats         **models.CacheStats
	artifact_id         *string
	pod_id              *string
	last_interaction_at *time.Time
	requeue_count       *int
	addrequeue_count    *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ReportJob, error)
	predicates          []predicate.ReportJob
}

var _ ent.Mutation = (*ReportJobMutation)(nil)

// reportjobOption allows management of the mutation configuration using functional options.
type reportjobOption func(*ReportJobMutation)

// newReportJobMutation creates new mutation for the ReportJob entity.
func newReportJobMutation(c config, op Op, opts ...reportjobOption) *ReportJobMutation {
	m := &ReportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeReportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportJobID sets the ID field of the mutation.
func withReportJobID(id string) reportjobOption {
	return func(m *ReportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportJob
		)
		m.oldValue = func(ctx context.Context) (*ReportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportJob sets the old ReportJob of the mutation.
func withReportJob(node *ReportJob) reportjobOption {
	return func(m *ReportJobMutation) {
		m.oldValue = func(context.Context) (*ReportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportJob entities.
func (m *ReportJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ReportJobMutation) SetKind(r reportjob.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReportJobMutation) Kind() (r reportjob.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldKind(ctx context.Context) (v reportjob.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReportJobMutation) ResetKind() {
	m.kind = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *ReportJobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ReportJobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ReportJobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ReportJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReportJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ReportJobMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[reportjob.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ReportJobMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReportJobMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, reportjob.FieldUserID)
}

// SetDomainID sets the "domain_id" field.
func (m *ReportJobMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *ReportJobMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *ReportJobMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetInput sets the "input" field.
func (m *ReportJobMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ReportJobMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *ReportJobMutation) ResetInput() {
	m.input = nil
}

// SetStatus sets the "status" field.
func (m *ReportJobMutation) SetStatus(r reportjob.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportJobMutation) Status() (r reportjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldStatus(ctx context.Context) (v reportjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportJobMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ReportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ReportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ReportJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[reportjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ReportJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ReportJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, reportjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ReportJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ReportJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ReportJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[reportjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ReportJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ReportJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, reportjob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ReportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reportjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reportjob.FieldErrorMessage)
}

// SetExecutionLog sets the "execution_log" field.
func (m *ReportJobMutation) SetExecutionLog(mle []models.ExecutionLogEntry) {
	m.execution_log = &mle
	m.appendexecution_log = nil
}

// ExecutionLog returns the value of the "execution_log" field in the mutation.
func (m *ReportJobMutation) ExecutionLog() (r []models.ExecutionLogEntry, exists bool) {
	v := m.execution_log
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionLog returns the old "execution_log" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldExecutionLog(ctx context.Context) (v []models.ExecutionLogEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionLog: %w", err)
	}
	return oldValue.ExecutionLog, nil
}

// AppendExecutionLog adds mle to the "execution_log" field.
func (m *ReportJobMutation) AppendExecutionLog(mle []models.ExecutionLogEntry) {
	m.appendexecution_log = append(m.appendexecution_log, mle...)
}

// AppendedExecutionLog returns the list of values that were appended to the "execution_log" field in this mutation.
func (m *ReportJobMutation) AppendedExecutionLog() ([]models.ExecutionLogEntry, bool) {
	if len(m.appendexecution_log) == 0 {
		return nil, false
	}
	return m.appendexecution_log, true
}

// ClearExecutionLog clears the value of the "execution_log" field.
func (m *ReportJobMutation) ClearExecutionLog() {
	m.execution_log = nil
	m.appendexecution_log = nil
	m.clearedFields[reportjob.FieldExecutionLog] = struct{}{}
}

// ExecutionLogCleared returns if the "execution_log" field was cleared in this mutation.
func (m *ReportJobMutation) ExecutionLogCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldExecutionLog]
	return ok
}

// ResetExecutionLog resets all changes to the "execution_log" field.
func (m *ReportJobMutation) ResetExecutionLog() {
	m.execution_log = nil
	m.appendexecution_log = nil
	delete(m.clearedFields, reportjob.FieldExecutionLog)
}

// SetCacheStats sets the "cache_stats" field.
func (m *ReportJobMutation) SetCacheStats(ms *models.CacheStats) {
	m.cache_stats = &ms
}

// CacheStats returns the value of the "cache_stats" field in the mutation.
func (m *ReportJobMutation) CacheStats() (r *models.CacheStats, exists bool) {
	v := m.cache_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheStats returns the old "cache_stats" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldCacheStats(ctx context.Context) (v *models.CacheStats, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheStats: %w", err)
	}
	return oldValue.CacheStats, nil
}

// ClearCacheStats clears the value of the "cache_stats" field.
func (m *ReportJobMutation) ClearCacheStats() {
	m.cache_stats = nil
	m.clearedFields[reportjob.FieldCacheStats] = struct{}{}
}

// CacheStatsCleared returns if the "cache_stats" field was cleared in this mutation.
func (m *ReportJobMutation) CacheStatsCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldCacheStats]
	return ok
}

// ResetCacheStats resets all changes to the "cache_stats" field.
func (m *ReportJobMutation) ResetCacheStats() {
	m.cache_stats = nil
	delete(m.clearedFields, reportjob.FieldCacheStats)
}

// SetArtifactID sets the "artifact_id" field.
func (m *ReportJobMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *ReportJobMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (m *ReportJobMutation) ClearArtifactID() {
	m.artifact_id = nil
	m.clearedFields[reportjob.FieldArtifactID] = struct{}{}
}

// ArtifactIDCleared returns if the "artifact_id" field was cleared in this mutation.
func (m *ReportJobMutation) ArtifactIDCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldArtifactID]
	return ok
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *ReportJobMutation) ResetArtifactID() {
	m.artifact_id = nil
	delete(m.clearedFields, reportjob.FieldArtifactID)
}

// SetPodID sets the "pod_id" field.
func (m *ReportJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ReportJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ReportJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[reportjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ReportJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ReportJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, reportjob.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ReportJobMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ReportJobMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ReportJobMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[reportjob.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ReportJobMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ReportJobMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, reportjob.FieldLastInteractionAt)
}

// SetRequeueCount sets the "requeue_count" field.
func (m *ReportJobMutation) SetRequeueCount(i int) {
	m.requeue_count = &i
	m.addrequeue_count = nil
}

// RequeueCount returns the value of the "requeue_count" field in the mutation.
func (m *ReportJobMutation) RequeueCount() (r int, exists bool) {
	v := m.requeue_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequeueCount returns the old "requeue_count" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldRequeueCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequeueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequeueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequeueCount: %w", err)
	}
	return oldValue.RequeueCount, nil
}

// AddRequeueCount adds i to the "requeue_count" field.
func (m *ReportJobMutation) AddRequeueCount(i int) {
	if m.addrequeue_count != nil {
		*m.addrequeue_count += i
	} else {
		m.addrequeue_count = &i
	}
}

// AddedRequeueCount returns the value that was added to the "requeue_count" field in this mutation.
func (m *ReportJobMutation) AddedRequeueCount() (r int, exists bool) {
	v := m.addrequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequeueCount resets all changes to the "requeue_count" field.
func (m *ReportJobMutation) ResetRequeueCount() {
	m.requeue_count = nil
	m.addrequeue_count = nil
}

// Where appends a list predicates to the ReportJobMutation builder.
func (m *ReportJobMutation) Where(ps ...predicate.ReportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportJob).
func (m *ReportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportJobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.kind != nil {
		fields = append(fields, reportjob.FieldKind)
	}
	if m.tenant_id != nil {
		fields = append(fields, reportjob.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, reportjob.FieldUserID)
	}
	if m.domain_id != nil {
		fields = append(fields, reportjob.FieldDomainID)
	}
	if m.input != nil {
		fields = append(fields, reportjob.FieldInput)
	}
	if m.status != nil {
		fields = append(fields, reportjob.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, reportjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, reportjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, reportjob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, reportjob.FieldErrorMessage)
	}
	if m.execution_log != nil {
		fields = append(fields, reportjob.FieldExecutionLog)
	}
	if m.cache_stats != nil {
		fields = append(fields, reportjob.FieldCacheStats)
	}
	if m.artifact_id != nil {
		fields = append(fields, reportjob.FieldArtifactID)
	}
	if m.pod_id != nil {
		fields = append(fields, reportjob.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, reportjob.FieldLastInteractionAt)
	}
	if m.requeue_count != nil {
		fields = append(fields, reportjob.FieldRequeueCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportjob.FieldKind:
		return m.Kind()
	case reportjob.FieldTenantID:
		return m.TenantID()
	case reportjob.FieldUserID:
		return m.UserID()
	case reportjob.FieldDomainID:
		return m.DomainID()
	case reportjob.FieldInput:
		return m.Input()
	case reportjob.FieldStatus:
		return m.Status()
	case reportjob.FieldCreatedAt:
		return m.CreatedAt()
	case reportjob.FieldStartedAt:
		return m.StartedAt()
	case reportjob.FieldCompletedAt:
		return m.CompletedAt()
	case reportjob.FieldErrorMessage:
		return m.ErrorMessage()
	case reportjob.FieldExecutionLog:
		return m.ExecutionLog()
	case reportjob.FieldCacheStats:
		return m.CacheStats()
	case reportjob.FieldArtifactID:
		return m.ArtifactID()
	case reportjob.FieldPodID:
		return m.PodID()
	case reportjob.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case reportjob.FieldRequeueCount:
		return m.RequeueCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportjob.FieldKind:
		return m.OldKind(ctx)
	case reportjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case reportjob.FieldUserID:
		return m.OldUserID(ctx)
	case reportjob.FieldDomainID:
		return m.OldDomainID(ctx)
	case reportjob.FieldInput:
		return m.OldInput(ctx)
	case reportjob.FieldStatus:
		return m.OldStatus(ctx)
	case reportjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reportjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case reportjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case reportjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reportjob.FieldExecutionLog:
		return m.OldExecutionLog(ctx)
	case reportjob.FieldCacheStats:
		return m.OldCacheStats(ctx)
	case reportjob.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case reportjob.FieldPodID:
		return m.OldPodID(ctx)
	case reportjob.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case reportjob.FieldRequeueCount:
		return m.OldRequeueCount(ctx)
	}
	return nil, fmt.Errorf("unknown ReportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportjob.FieldKind:
		v, ok := value.(reportjob.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reportjob.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case reportjob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reportjob.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case reportjob.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case reportjob.FieldStatus:
		v, ok := value.(reportjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reportjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reportjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case reportjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case reportjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reportjob.FieldExecutionLog:
		v, ok := value.([]models.ExecutionLogEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionLog(v)
		return nil
	case reportjob.FieldCacheStats:
		v, ok := value.(*models.CacheStats)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheStats(v)
		return nil
	case reportjob.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case reportjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case reportjob.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case reportjob.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequeueCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportJobMutation) AddedFields() []string {
	var fields []string
	if m.addrequeue_count != nil {
		fields = append(fields, reportjob.FieldRequeueCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportjob.FieldRequeueCount:
		return m.AddedRequeueCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportjob.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequeueCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportjob.FieldUserID) {
		fields = append(fields, reportjob.FieldUserID)
	}
	if m.FieldCleared(reportjob.FieldStartedAt) {
		fields = append(fields, reportjob.FieldStartedAt)
	}
	if m.FieldCleared(reportjob.FieldCompletedAt) {
		fields = append(fields, reportjob.FieldCompletedAt)
	}
	if m.FieldCleared(reportjob.FieldErrorMessage) {
		fields = append(fields, reportjob.FieldErrorMessage)
	}
	if m.FieldCleared(reportjob.FieldExecutionLog) {
		fields = append(fields, reportjob.FieldExecutionLog)
	}
	if m.FieldCleared(reportjob.FieldCacheStats) {
		fields = append(fields, reportjob.FieldCacheStats)
	}
	if m.FieldCleared(reportjob.FieldArtifactID) {
		fields = append(fields, reportjob.FieldArtifactID)
	}
	if m.FieldCleared(reportjob.FieldPodID) {
		fields = append(fields, reportjob.FieldPodID)
	}
	if m.FieldCleared(reportjob.FieldLastInteractionAt) {
		fields = append(fields, reportjob.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportJobMutation) ClearField(name string) error {
	switch name {
	case reportjob.FieldUserID:
		m.ClearUserID()
		return nil
	case reportjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case reportjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case reportjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reportjob.FieldExecutionLog:
		m.ClearExecutionLog()
		return nil
	case reportjob.FieldCacheStats:
		m.ClearCacheStats()
		return nil
	case reportjob.FieldArtifactID:
		m.ClearArtifactID()
		return nil
	case reportjob.FieldPodID:
		m.ClearPodID()
		return nil
	case reportjob.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ReportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportJobMutation) ResetField(name string) error {
	switch name {
	case reportjob.FieldKind:
		m.ResetKind()
		return nil
	case reportjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case reportjob.FieldUserID:
		m.ResetUserID()
		return nil
	case reportjob.FieldDomainID:
		m.ResetDomainID()
		return nil
	case reportjob.FieldInput:
		m.ResetInput()
		return nil
	case reportjob.FieldStatus:
		m.ResetStatus()
		return nil
	case reportjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reportjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case reportjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case reportjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reportjob.FieldExecutionLog:
		m.ResetExecutionLog()
		return nil
	case reportjob.FieldCacheStats:
		m.ResetCacheStats()
		return nil
	case reportjob.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case reportjob.FieldPodID:
		m.ResetPodID()
		return nil
	case reportjob.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case reportjob.FieldRequeueCount:
		m.ResetRequeueCount()
		return nil
	}
	return fmt.Errorf("unknown ReportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReportJob edge %s", name)
}
