// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subject"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/task"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topic"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSubject            = "Subject"
	TypeSubjectPreference  = "SubjectPreference"
	TypeSubtopic           = "Subtopic"
	TypeSubtopicConfidence = "SubtopicConfidence"
	TypeTask               = "Task"
	TypeTaskSubtopic       = "TaskSubtopic"
	TypeTaskType           = "TaskType"
	TypeTaskTypePreference = "TaskTypePreference"
	TypeTopic              = "Topic"
	TypeTopicConfidence    = "TopicConfidence"
	TypeUser               = "User"
)

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op            Op
	typ           string
	id            *int
	title         *string
	description   *string
	group_name    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Subject, error)
	predicates    []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SubjectMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubjectMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubjectMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SubjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SubjectMutation) ResetDescription() {
	m.description = nil
}

// SetGroupName sets the "group_name" field.
func (m *SubjectMutation) SetGroupName(s string) {
	m.group_name = &s
}

// GroupName returns the value of the "group_name" field in the mutation.
func (m *SubjectMutation) GroupName() (r string, exists bool) {
	v := m.group_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupName returns the old "group_name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldGroupName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupName: %w", err)
	}
	return oldValue.GroupName, nil
}

// ResetGroupName resets all changes to the "group_name" field.
func (m *SubjectMutation) ResetGroupName() {
	m.group_name = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, subject.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, subject.FieldDescription)
	}
	if m.group_name != nil {
		fields = append(fields, subject.FieldGroupName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldTitle:
		return m.Title()
	case subject.FieldDescription:
		return m.Description()
	case subject.FieldGroupName:
		return m.GroupName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldTitle:
		return m.OldTitle(ctx)
	case subject.FieldDescription:
		return m.OldDescription(ctx)
	case subject.FieldGroupName:
		return m.OldGroupName(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case subject.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subject.FieldGroupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupName(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldTitle:
		m.ResetTitle()
		return nil
	case subject.FieldDescription:
		m.ResetDescription()
		return nil
	case subject.FieldGroupName:
		m.ResetGroupName()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subject edge %s", name)
}

// SubjectPreferenceMutation represents an operation that mutates the SubjectPreference nodes in the graph.
type SubjectPreferenceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	user_id                   *int64
	adduser_id                *int64
	subject_id                *int64
	addsubject_id             *int64
	exclusive_task_type_id    *int64
	addexclusive_task_type_id *int64
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*SubjectPreference, error)
	predicates                []predicate.SubjectPreference
}

var _ ent.Mutation = (*SubjectPreferenceMutation)(nil)

// subjectpreferenceOption allows management of the mutation configuration using functional options.
type subjectpreferenceOption func(*SubjectPreferenceMutation)

// newSubjectPreferenceMutation creates new mutation for the SubjectPreference entity.
func newSubjectPreferenceMutation(c config, op Op, opts ...subjectpreferenceOption) *SubjectPreferenceMutation {
	m := &SubjectPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectPreferenceID sets the ID field of the mutation.
func withSubjectPreferenceID(id int) subjectpreferenceOption {
	return func(m *SubjectPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectPreference
		)
		m.oldValue = func(ctx context.Context) (*SubjectPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectPreference sets the old SubjectPreference of the mutation.
func withSubjectPreference(node *SubjectPreference) subjectpreferenceOption {
	return func(m *SubjectPreferenceMutation) {
		m.oldValue = func(context.Context) (*SubjectPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectPreferenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectPreferenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubjectPreferenceMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubjectPreferenceMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubjectPreference entity.
// If the SubjectPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPreferenceMutation) OldUserID(ctx context.Context) (v int64, err error) {
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

// AddUserID adds i to the "user_id" field.
func (m *SubjectPreferenceMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SubjectPreferenceMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubjectPreferenceMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *SubjectPreferenceMutation) SetSubjectID(i int64) {
	m.subject_id = &i
	m.addsubject_id = nil
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SubjectPreferenceMutation) SubjectID() (r int64, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the SubjectPreference entity.
// If the SubjectPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPreferenceMutation) OldSubjectID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// AddSubjectID adds i to the "subject_id" field.
func (m *SubjectPreferenceMutation) AddSubjectID(i int64) {
	if m.addsubject_id != nil {
		*m.addsubject_id += i
	} else {
		m.addsubject_id = &i
	}
}

// AddedSubjectID returns the value that was added to the "subject_id" field in this mutation.
func (m *SubjectPreferenceMutation) AddedSubjectID() (r int64, exists bool) {
	v := m.addsubject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SubjectPreferenceMutation) ResetSubjectID() {
	m.subject_id = nil
	m.addsubject_id = nil
}

// SetExclusiveTaskTypeID sets the "exclusive_task_type_id" field.
func (m *SubjectPreferenceMutation) SetExclusiveTaskTypeID(i int64) {
	m.exclusive_task_type_id = &i
	m.addexclusive_task_type_id = nil
}

// ExclusiveTaskTypeID returns the value of the "exclusive_task_type_id" field in the mutation.
func (m *SubjectPreferenceMutation) ExclusiveTaskTypeID() (r int64, exists bool) {
	v := m.exclusive_task_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExclusiveTaskTypeID returns the old "exclusive_task_type_id" field's value of the SubjectPreference entity.
// If the SubjectPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPreferenceMutation) OldExclusiveTaskTypeID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExclusiveTaskTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExclusiveTaskTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExclusiveTaskTypeID: %w", err)
	}
	return oldValue.ExclusiveTaskTypeID, nil
}

// AddExclusiveTaskTypeID adds i to the "exclusive_task_type_id" field.
func (m *SubjectPreferenceMutation) AddExclusiveTaskTypeID(i int64) {
	if m.addexclusive_task_type_id != nil {
		*m.addexclusive_task_type_id += i
	} else {
		m.addexclusive_task_type_id = &i
	}
}

// AddedExclusiveTaskTypeID returns the value that was added to the "exclusive_task_type_id" field in this mutation.
func (m *SubjectPreferenceMutation) AddedExclusiveTaskTypeID() (r int64, exists bool) {
	v := m.addexclusive_task_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearExclusiveTaskTypeID clears the value of the "exclusive_task_type_id" field.
func (m *SubjectPreferenceMutation) ClearExclusiveTaskTypeID() {
	m.exclusive_task_type_id = nil
	m.addexclusive_task_type_id = nil
	m.clearedFields[subjectpreference.FieldExclusiveTaskTypeID] = struct{}{}
}

// ExclusiveTaskTypeIDCleared returns if the "exclusive_task_type_id" field was cleared in this mutation.
func (m *SubjectPreferenceMutation) ExclusiveTaskTypeIDCleared() bool {
	_, ok := m.clearedFields[subjectpreference.FieldExclusiveTaskTypeID]
	return ok
}

// ResetExclusiveTaskTypeID resets all changes to the "exclusive_task_type_id" field.
func (m *SubjectPreferenceMutation) ResetExclusiveTaskTypeID() {
	m.exclusive_task_type_id = nil
	m.addexclusive_task_type_id = nil
	delete(m.clearedFields, subjectpreference.FieldExclusiveTaskTypeID)
}

// Where appends a list predicates to the SubjectPreferenceMutation builder.
func (m *SubjectPreferenceMutation) Where(ps ...predicate.SubjectPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectPreference).
func (m *SubjectPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, subjectpreference.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, subjectpreference.FieldSubjectID)
	}
	if m.exclusive_task_type_id != nil {
		fields = append(fields, subjectpreference.FieldExclusiveTaskTypeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectpreference.FieldUserID:
		return m.UserID()
	case subjectpreference.FieldSubjectID:
		return m.SubjectID()
	case subjectpreference.FieldExclusiveTaskTypeID:
		return m.ExclusiveTaskTypeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectpreference.FieldUserID:
		return m.OldUserID(ctx)
	case subjectpreference.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case subjectpreference.FieldExclusiveTaskTypeID:
		return m.OldExclusiveTaskTypeID(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectpreference.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case subjectpreference.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case subjectpreference.FieldExclusiveTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExclusiveTaskTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectPreferenceMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, subjectpreference.FieldUserID)
	}
	if m.addsubject_id != nil {
		fields = append(fields, subjectpreference.FieldSubjectID)
	}
	if m.addexclusive_task_type_id != nil {
		fields = append(fields, subjectpreference.FieldExclusiveTaskTypeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectpreference.FieldUserID:
		return m.AddedUserID()
	case subjectpreference.FieldSubjectID:
		return m.AddedSubjectID()
	case subjectpreference.FieldExclusiveTaskTypeID:
		return m.AddedExclusiveTaskTypeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectpreference.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case subjectpreference.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectID(v)
		return nil
	case subjectpreference.FieldExclusiveTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExclusiveTaskTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectPreferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subjectpreference.FieldExclusiveTaskTypeID) {
		fields = append(fields, subjectpreference.FieldExclusiveTaskTypeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectPreferenceMutation) ClearField(name string) error {
	switch name {
	case subjectpreference.FieldExclusiveTaskTypeID:
		m.ClearExclusiveTaskTypeID()
		return nil
	}
	return fmt.Errorf("unknown SubjectPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectPreferenceMutation) ResetField(name string) error {
	switch name {
	case subjectpreference.FieldUserID:
		m.ResetUserID()
		return nil
	case subjectpreference.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case subjectpreference.FieldExclusiveTaskTypeID:
		m.ResetExclusiveTaskTypeID()
		return nil
	}
	return fmt.Errorf("unknown SubjectPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectPreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectPreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectPreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectPreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectPreference edge %s", name)
}

// SubtopicMutation represents an operation that mutates the Subtopic nodes in the graph.
type SubtopicMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	topic_id              *int64
	addtopic_id           *int64
	title                 *string
	description           *string
	estimated_duration    *int
	addestimated_duration *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Subtopic, error)
	predicates            []predicate.Subtopic
}

var _ ent.Mutation = (*SubtopicMutation)(nil)

// subtopicOption allows management of the mutation configuration using functional options.
type subtopicOption func(*SubtopicMutation)

// newSubtopicMutation creates new mutation for the Subtopic entity.
func newSubtopicMutation(c config, op Op, opts ...subtopicOption) *SubtopicMutation {
	m := &SubtopicMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtopicID sets the ID field of the mutation.
func withSubtopicID(id int) subtopicOption {
	return func(m *SubtopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Subtopic
		)
		m.oldValue = func(ctx context.Context) (*Subtopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subtopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtopic sets the old Subtopic of the mutation.
func withSubtopic(node *Subtopic) subtopicOption {
	return func(m *SubtopicMutation) {
		m.oldValue = func(context.Context) (*Subtopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subtopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *SubtopicMutation) SetTopicID(i int64) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SubtopicMutation) TopicID() (r int64, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldTopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *SubtopicMutation) AddTopicID(i int64) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *SubtopicMutation) AddedTopicID() (r int64, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SubtopicMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetTitle sets the "title" field.
func (m *SubtopicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubtopicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubtopicMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SubtopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubtopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SubtopicMutation) ResetDescription() {
	m.description = nil
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (m *SubtopicMutation) SetEstimatedDuration(i int) {
	m.estimated_duration = &i
	m.addestimated_duration = nil
}

// EstimatedDuration returns the value of the "estimated_duration" field in the mutation.
func (m *SubtopicMutation) EstimatedDuration() (r int, exists bool) {
	v := m.estimated_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDuration returns the old "estimated_duration" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldEstimatedDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDuration: %w", err)
	}
	return oldValue.EstimatedDuration, nil
}

// AddEstimatedDuration adds i to the "estimated_duration" field.
func (m *SubtopicMutation) AddEstimatedDuration(i int) {
	if m.addestimated_duration != nil {
		*m.addestimated_duration += i
	} else {
		m.addestimated_duration = &i
	}
}

// AddedEstimatedDuration returns the value that was added to the "estimated_duration" field in this mutation.
func (m *SubtopicMutation) AddedEstimatedDuration() (r int, exists bool) {
	v := m.addestimated_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedDuration resets all changes to the "estimated_duration" field.
func (m *SubtopicMutation) ResetEstimatedDuration() {
	m.estimated_duration = nil
	m.addestimated_duration = nil
}

// Where appends a list predicates to the SubtopicMutation builder.
func (m *SubtopicMutation) Where(ps ...predicate.Subtopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subtopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subtopic).
func (m *SubtopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtopicMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.topic_id != nil {
		fields = append(fields, subtopic.FieldTopicID)
	}
	if m.title != nil {
		fields = append(fields, subtopic.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, subtopic.FieldDescription)
	}
	if m.estimated_duration != nil {
		fields = append(fields, subtopic.FieldEstimatedDuration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtopic.FieldTopicID:
		return m.TopicID()
	case subtopic.FieldTitle:
		return m.Title()
	case subtopic.FieldDescription:
		return m.Description()
	case subtopic.FieldEstimatedDuration:
		return m.EstimatedDuration()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtopic.FieldTopicID:
		return m.OldTopicID(ctx)
	case subtopic.FieldTitle:
		return m.OldTitle(ctx)
	case subtopic.FieldDescription:
		return m.OldDescription(ctx)
	case subtopic.FieldEstimatedDuration:
		return m.OldEstimatedDuration(ctx)
	}
	return nil, fmt.Errorf("unknown Subtopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtopic.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case subtopic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case subtopic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subtopic.FieldEstimatedDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtopicMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, subtopic.FieldTopicID)
	}
	if m.addestimated_duration != nil {
		fields = append(fields, subtopic.FieldEstimatedDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtopic.FieldTopicID:
		return m.AddedTopicID()
	case subtopic.FieldEstimatedDuration:
		return m.AddedEstimatedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtopic.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case subtopic.FieldEstimatedDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Subtopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subtopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtopicMutation) ResetField(name string) error {
	switch name {
	case subtopic.FieldTopicID:
		m.ResetTopicID()
		return nil
	case subtopic.FieldTitle:
		m.ResetTitle()
		return nil
	case subtopic.FieldDescription:
		m.ResetDescription()
		return nil
	case subtopic.FieldEstimatedDuration:
		m.ResetEstimatedDuration()
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subtopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subtopic edge %s", name)
}

// SubtopicConfidenceMutation represents an operation that mutates the SubtopicConfidence nodes in the graph.
type SubtopicConfidenceMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *int64
	adduser_id     *int64
	subtopic_id    *int64
	addsubtopic_id *int64
	level          *int
	addlevel       *int
	priority       *bool
	last_updated   *time.Time
	last_addressed *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SubtopicConfidence, error)
	predicates     []predicate.SubtopicConfidence
}

var _ ent.Mutation = (*SubtopicConfidenceMutation)(nil)

// subtopicconfidenceOption allows management of the mutation configuration using functional options.
type subtopicconfidenceOption func(*SubtopicConfidenceMutation)

// newSubtopicConfidenceMutation creates new mutation for the SubtopicConfidence entity.
func newSubtopicConfidenceMutation(c config, op Op, opts ...subtopicconfidenceOption) *SubtopicConfidenceMutation {
	m := &SubtopicConfidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtopicConfidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtopicConfidenceID sets the ID field of the mutation.
func withSubtopicConfidenceID(id int) subtopicconfidenceOption {
	return func(m *SubtopicConfidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *SubtopicConfidence
		)
		m.oldValue = func(ctx context.Context) (*SubtopicConfidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubtopicConfidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtopicConfidence sets the old SubtopicConfidence of the mutation.
func withSubtopicConfidence(node *SubtopicConfidence) subtopicconfidenceOption {
	return func(m *SubtopicConfidenceMutation) {
		m.oldValue = func(context.Context) (*SubtopicConfidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtopicConfidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtopicConfidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtopicConfidenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtopicConfidenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubtopicConfidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubtopicConfidenceMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubtopicConfidenceMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldUserID(ctx context.Context) (v int64, err error) {
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

// AddUserID adds i to the "user_id" field.
func (m *SubtopicConfidenceMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SubtopicConfidenceMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubtopicConfidenceMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *SubtopicConfidenceMutation) SetSubtopicID(i int64) {
	m.subtopic_id = &i
	m.addsubtopic_id = nil
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *SubtopicConfidenceMutation) SubtopicID() (r int64, exists bool) {
	v := m.subtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldSubtopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (m *SubtopicConfidenceMutation) AddSubtopicID(i int64) {
	if m.addsubtopic_id != nil {
		*m.addsubtopic_id += i
	} else {
		m.addsubtopic_id = &i
	}
}

// AddedSubtopicID returns the value that was added to the "subtopic_id" field in this mutation.
func (m *SubtopicConfidenceMutation) AddedSubtopicID() (r int64, exists bool) {
	v := m.addsubtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *SubtopicConfidenceMutation) ResetSubtopicID() {
	m.subtopic_id = nil
	m.addsubtopic_id = nil
}

// SetLevel sets the "level" field.
func (m *SubtopicConfidenceMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *SubtopicConfidenceMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *SubtopicConfidenceMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *SubtopicConfidenceMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *SubtopicConfidenceMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetPriority sets the "priority" field.
func (m *SubtopicConfidenceMutation) SetPriority(b bool) {
	m.priority = &b
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SubtopicConfidenceMutation) Priority() (r bool, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldPriority(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *SubtopicConfidenceMutation) ResetPriority() {
	m.priority = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *SubtopicConfidenceMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *SubtopicConfidenceMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *SubtopicConfidenceMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// SetLastAddressed sets the "last_addressed" field.
func (m *SubtopicConfidenceMutation) SetLastAddressed(t time.Time) {
	m.last_addressed = &t
}

// LastAddressed returns the value of the "last_addressed" field in the mutation.
func (m *SubtopicConfidenceMutation) LastAddressed() (r time.Time, exists bool) {
	v := m.last_addressed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAddressed returns the old "last_addressed" field's value of the SubtopicConfidence entity.
// If the SubtopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicConfidenceMutation) OldLastAddressed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAddressed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAddressed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAddressed: %w", err)
	}
	return oldValue.LastAddressed, nil
}

// ClearLastAddressed clears the value of the "last_addressed" field.
func (m *SubtopicConfidenceMutation) ClearLastAddressed() {
	m.last_addressed = nil
	m.clearedFields[subtopicconfidence.FieldLastAddressed] = struct{}{}
}

// LastAddressedCleared returns if the "last_addressed" field was cleared in this mutation.
func (m *SubtopicConfidenceMutation) LastAddressedCleared() bool {
	_, ok := m.clearedFields[subtopicconfidence.FieldLastAddressed]
	return ok
}

// ResetLastAddressed resets all changes to the "last_addressed" field.
func (m *SubtopicConfidenceMutation) ResetLastAddressed() {
	m.last_addressed = nil
	delete(m.clearedFields, subtopicconfidence.FieldLastAddressed)
}

// Where appends a list predicates to the SubtopicConfidenceMutation builder.
func (m *SubtopicConfidenceMutation) Where(ps ...predicate.SubtopicConfidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtopicConfidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtopicConfidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubtopicConfidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtopicConfidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtopicConfidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubtopicConfidence).
func (m *SubtopicConfidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtopicConfidenceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, subtopicconfidence.FieldUserID)
	}
	if m.subtopic_id != nil {
		fields = append(fields, subtopicconfidence.FieldSubtopicID)
	}
	if m.level != nil {
		fields = append(fields, subtopicconfidence.FieldLevel)
	}
	if m.priority != nil {
		fields = append(fields, subtopicconfidence.FieldPriority)
	}
	if m.last_updated != nil {
		fields = append(fields, subtopicconfidence.FieldLastUpdated)
	}
	if m.last_addressed != nil {
		fields = append(fields, subtopicconfidence.FieldLastAddressed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtopicConfidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtopicconfidence.FieldUserID:
		return m.UserID()
	case subtopicconfidence.FieldSubtopicID:
		return m.SubtopicID()
	case subtopicconfidence.FieldLevel:
		return m.Level()
	case subtopicconfidence.FieldPriority:
		return m.Priority()
	case subtopicconfidence.FieldLastUpdated:
		return m.LastUpdated()
	case subtopicconfidence.FieldLastAddressed:
		return m.LastAddressed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtopicConfidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtopicconfidence.FieldUserID:
		return m.OldUserID(ctx)
	case subtopicconfidence.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case subtopicconfidence.FieldLevel:
		return m.OldLevel(ctx)
	case subtopicconfidence.FieldPriority:
		return m.OldPriority(ctx)
	case subtopicconfidence.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case subtopicconfidence.FieldLastAddressed:
		return m.OldLastAddressed(ctx)
	}
	return nil, fmt.Errorf("unknown SubtopicConfidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicConfidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtopicconfidence.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case subtopicconfidence.FieldSubtopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case subtopicconfidence.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case subtopicconfidence.FieldPriority:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case subtopicconfidence.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case subtopicconfidence.FieldLastAddressed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAddressed(v)
		return nil
	}
	return fmt.Errorf("unknown SubtopicConfidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtopicConfidenceMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, subtopicconfidence.FieldUserID)
	}
	if m.addsubtopic_id != nil {
		fields = append(fields, subtopicconfidence.FieldSubtopicID)
	}
	if m.addlevel != nil {
		fields = append(fields, subtopicconfidence.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtopicConfidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtopicconfidence.FieldUserID:
		return m.AddedUserID()
	case subtopicconfidence.FieldSubtopicID:
		return m.AddedSubtopicID()
	case subtopicconfidence.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicConfidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtopicconfidence.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case subtopicconfidence.FieldSubtopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicID(v)
		return nil
	case subtopicconfidence.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown SubtopicConfidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtopicConfidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subtopicconfidence.FieldLastAddressed) {
		fields = append(fields, subtopicconfidence.FieldLastAddressed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtopicConfidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtopicConfidenceMutation) ClearField(name string) error {
	switch name {
	case subtopicconfidence.FieldLastAddressed:
		m.ClearLastAddressed()
		return nil
	}
	return fmt.Errorf("unknown SubtopicConfidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtopicConfidenceMutation) ResetField(name string) error {
	switch name {
	case subtopicconfidence.FieldUserID:
		m.ResetUserID()
		return nil
	case subtopicconfidence.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case subtopicconfidence.FieldLevel:
		m.ResetLevel()
		return nil
	case subtopicconfidence.FieldPriority:
		m.ResetPriority()
		return nil
	case subtopicconfidence.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case subtopicconfidence.FieldLastAddressed:
		m.ResetLastAddressed()
		return nil
	}
	return fmt.Errorf("unknown SubtopicConfidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtopicConfidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtopicConfidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtopicConfidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtopicConfidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtopicConfidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtopicConfidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtopicConfidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubtopicConfidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtopicConfidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubtopicConfidence edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *int64
	adduser_id        *int64
	subject_id        *int64
	addsubject_id     *int64
	topic_id          *int64
	addtopic_id       *int64
	task_type_id      *int64
	addtask_type_id   *int64
	title             *string
	description       *string
	due_date          *time.Time
	completed_at      *time.Time
	skipped_at        *time.Time
	total_duration    *int
	addtotal_duration *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v int64, err error) {
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

// AddUserID adds i to the "user_id" field.
func (m *TaskMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *TaskMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *TaskMutation) SetSubjectID(i int64) {
	m.subject_id = &i
	m.addsubject_id = nil
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *TaskMutation) SubjectID() (r int64, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubjectID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// AddSubjectID adds i to the "subject_id" field.
func (m *TaskMutation) AddSubjectID(i int64) {
	if m.addsubject_id != nil {
		*m.addsubject_id += i
	} else {
		m.addsubject_id = &i
	}
}

// AddedSubjectID returns the value that was added to the "subject_id" field in this mutation.
func (m *TaskMutation) AddedSubjectID() (r int64, exists bool) {
	v := m.addsubject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *TaskMutation) ResetSubjectID() {
	m.subject_id = nil
	m.addsubject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TaskMutation) SetTopicID(i int64) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TaskMutation) TopicID() (r int64, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TaskMutation) AddTopicID(i int64) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TaskMutation) AddedTopicID() (r int64, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TaskMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetTaskTypeID sets the "task_type_id" field.
func (m *TaskMutation) SetTaskTypeID(i int64) {
	m.task_type_id = &i
	m.addtask_type_id = nil
}

// TaskTypeID returns the value of the "task_type_id" field in the mutation.
func (m *TaskMutation) TaskTypeID() (r int64, exists bool) {
	v := m.task_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskTypeID returns the old "task_type_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskTypeID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskTypeID: %w", err)
	}
	return oldValue.TaskTypeID, nil
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (m *TaskMutation) AddTaskTypeID(i int64) {
	if m.addtask_type_id != nil {
		*m.addtask_type_id += i
	} else {
		m.addtask_type_id = &i
	}
}

// AddedTaskTypeID returns the value that was added to the "task_type_id" field in this mutation.
func (m *TaskMutation) AddedTaskTypeID() (r int64, exists bool) {
	v := m.addtask_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskTypeID resets all changes to the "task_type_id" field.
func (m *TaskMutation) ResetTaskTypeID() {
	m.task_type_id = nil
	m.addtask_type_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetDueDate sets the "due_date" field.
func (m *TaskMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *TaskMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *TaskMutation) ResetDueDate() {
	m.due_date = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetSkippedAt sets the "skipped_at" field.
func (m *TaskMutation) SetSkippedAt(t time.Time) {
	m.skipped_at = &t
}

// SkippedAt returns the value of the "skipped_at" field in the mutation.
func (m *TaskMutation) SkippedAt() (r time.Time, exists bool) {
	v := m.skipped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedAt returns the old "skipped_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSkippedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedAt: %w", err)
	}
	return oldValue.SkippedAt, nil
}

// ClearSkippedAt clears the value of the "skipped_at" field.
func (m *TaskMutation) ClearSkippedAt() {
	m.skipped_at = nil
	m.clearedFields[task.FieldSkippedAt] = struct{}{}
}

// SkippedAtCleared returns if the "skipped_at" field was cleared in this mutation.
func (m *TaskMutation) SkippedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldSkippedAt]
	return ok
}

// ResetSkippedAt resets all changes to the "skipped_at" field.
func (m *TaskMutation) ResetSkippedAt() {
	m.skipped_at = nil
	delete(m.clearedFields, task.FieldSkippedAt)
}

// SetTotalDuration sets the "total_duration" field.
func (m *TaskMutation) SetTotalDuration(i int) {
	m.total_duration = &i
	m.addtotal_duration = nil
}

// TotalDuration returns the value of the "total_duration" field in the mutation.
func (m *TaskMutation) TotalDuration() (r int, exists bool) {
	v := m.total_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDuration returns the old "total_duration" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTotalDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDuration: %w", err)
	}
	return oldValue.TotalDuration, nil
}

// AddTotalDuration adds i to the "total_duration" field.
func (m *TaskMutation) AddTotalDuration(i int) {
	if m.addtotal_duration != nil {
		*m.addtotal_duration += i
	} else {
		m.addtotal_duration = &i
	}
}

// AddedTotalDuration returns the value that was added to the "total_duration" field in this mutation.
func (m *TaskMutation) AddedTotalDuration() (r int, exists bool) {
	v := m.addtotal_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDuration resets all changes to the "total_duration" field.
func (m *TaskMutation) ResetTotalDuration() {
	m.total_duration = nil
	m.addtotal_duration = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, task.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, task.FieldTopicID)
	}
	if m.task_type_id != nil {
		fields = append(fields, task.FieldTaskTypeID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.due_date != nil {
		fields = append(fields, task.FieldDueDate)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.skipped_at != nil {
		fields = append(fields, task.FieldSkippedAt)
	}
	if m.total_duration != nil {
		fields = append(fields, task.FieldTotalDuration)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldSubjectID:
		return m.SubjectID()
	case task.FieldTopicID:
		return m.TopicID()
	case task.FieldTaskTypeID:
		return m.TaskTypeID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldDueDate:
		return m.DueDate()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldSkippedAt:
		return m.SkippedAt()
	case task.FieldTotalDuration:
		return m.TotalDuration()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case task.FieldTopicID:
		return m.OldTopicID(ctx)
	case task.FieldTaskTypeID:
		return m.OldTaskTypeID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldDueDate:
		return m.OldDueDate(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldSkippedAt:
		return m.OldSkippedAt(ctx)
	case task.FieldTotalDuration:
		return m.OldTotalDuration(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case task.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case task.FieldTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskTypeID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldSkippedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedAt(v)
		return nil
	case task.FieldTotalDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDuration(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.addsubject_id != nil {
		fields = append(fields, task.FieldSubjectID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, task.FieldTopicID)
	}
	if m.addtask_type_id != nil {
		fields = append(fields, task.FieldTaskTypeID)
	}
	if m.addtotal_duration != nil {
		fields = append(fields, task.FieldTotalDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.AddedUserID()
	case task.FieldSubjectID:
		return m.AddedSubjectID()
	case task.FieldTopicID:
		return m.AddedTopicID()
	case task.FieldTaskTypeID:
		return m.AddedTaskTypeID()
	case task.FieldTotalDuration:
		return m.AddedTotalDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case task.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectID(v)
		return nil
	case task.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case task.FieldTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskTypeID(v)
		return nil
	case task.FieldTotalDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldSkippedAt) {
		fields = append(fields, task.FieldSkippedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldSkippedAt:
		m.ClearSkippedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case task.FieldTopicID:
		m.ResetTopicID()
		return nil
	case task.FieldTaskTypeID:
		m.ResetTaskTypeID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldDueDate:
		m.ResetDueDate()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldSkippedAt:
		m.ResetSkippedAt()
		return nil
	case task.FieldTotalDuration:
		m.ResetTotalDuration()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskSubtopicMutation represents an operation that mutates the TaskSubtopic nodes in the graph.
type TaskSubtopicMutation struct {
	config
	op             Op
	typ            string
	id             *int
	task_id        *int64
	addtask_id     *int64
	subtopic_id    *int64
	addsubtopic_id *int64
	duration       *int
	addduration    *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TaskSubtopic, error)
	predicates     []predicate.TaskSubtopic
}

var _ ent.Mutation = (*TaskSubtopicMutation)(nil)

// tasksubtopicOption allows management of the mutation configuration using functional options.
type tasksubtopicOption func(*TaskSubtopicMutation)

// newTaskSubtopicMutation creates new mutation for the TaskSubtopic entity.
func newTaskSubtopicMutation(c config, op Op, opts ...tasksubtopicOption) *TaskSubtopicMutation {
	m := &TaskSubtopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskSubtopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskSubtopicID sets the ID field of the mutation.
func withTaskSubtopicID(id int) tasksubtopicOption {
	return func(m *TaskSubtopicMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskSubtopic
		)
		m.oldValue = func(ctx context.Context) (*TaskSubtopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskSubtopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskSubtopic sets the old TaskSubtopic of the mutation.
func withTaskSubtopic(node *TaskSubtopic) tasksubtopicOption {
	return func(m *TaskSubtopicMutation) {
		m.oldValue = func(context.Context) (*TaskSubtopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskSubtopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskSubtopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskSubtopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskSubtopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskSubtopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskSubtopicMutation) SetTaskID(i int64) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskSubtopicMutation) TaskID() (r int64, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskSubtopic entity.
// If the TaskSubtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskSubtopicMutation) OldTaskID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *TaskSubtopicMutation) AddTaskID(i int64) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *TaskSubtopicMutation) AddedTaskID() (r int64, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskSubtopicMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *TaskSubtopicMutation) SetSubtopicID(i int64) {
	m.subtopic_id = &i
	m.addsubtopic_id = nil
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *TaskSubtopicMutation) SubtopicID() (r int64, exists bool) {
	v := m.subtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the TaskSubtopic entity.
// If the TaskSubtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskSubtopicMutation) OldSubtopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (m *TaskSubtopicMutation) AddSubtopicID(i int64) {
	if m.addsubtopic_id != nil {
		*m.addsubtopic_id += i
	} else {
		m.addsubtopic_id = &i
	}
}

// AddedSubtopicID returns the value that was added to the "subtopic_id" field in this mutation.
func (m *TaskSubtopicMutation) AddedSubtopicID() (r int64, exists bool) {
	v := m.addsubtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *TaskSubtopicMutation) ResetSubtopicID() {
	m.subtopic_id = nil
	m.addsubtopic_id = nil
}

// SetDuration sets the "duration" field.
func (m *TaskSubtopicMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *TaskSubtopicMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the TaskSubtopic entity.
// If the TaskSubtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskSubtopicMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *TaskSubtopicMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *TaskSubtopicMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *TaskSubtopicMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// Where appends a list predicates to the TaskSubtopicMutation builder.
func (m *TaskSubtopicMutation) Where(ps ...predicate.TaskSubtopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskSubtopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskSubtopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskSubtopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskSubtopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskSubtopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskSubtopic).
func (m *TaskSubtopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskSubtopicMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.task_id != nil {
		fields = append(fields, tasksubtopic.FieldTaskID)
	}
	if m.subtopic_id != nil {
		fields = append(fields, tasksubtopic.FieldSubtopicID)
	}
	if m.duration != nil {
		fields = append(fields, tasksubtopic.FieldDuration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskSubtopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasksubtopic.FieldTaskID:
		return m.TaskID()
	case tasksubtopic.FieldSubtopicID:
		return m.SubtopicID()
	case tasksubtopic.FieldDuration:
		return m.Duration()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskSubtopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasksubtopic.FieldTaskID:
		return m.OldTaskID(ctx)
	case tasksubtopic.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case tasksubtopic.FieldDuration:
		return m.OldDuration(ctx)
	}
	return nil, fmt.Errorf("unknown TaskSubtopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskSubtopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasksubtopic.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tasksubtopic.FieldSubtopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case tasksubtopic.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	}
	return fmt.Errorf("unknown TaskSubtopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskSubtopicMutation) AddedFields() []string {
	var fields []string
	if m.addtask_id != nil {
		fields = append(fields, tasksubtopic.FieldTaskID)
	}
	if m.addsubtopic_id != nil {
		fields = append(fields, tasksubtopic.FieldSubtopicID)
	}
	if m.addduration != nil {
		fields = append(fields, tasksubtopic.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskSubtopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tasksubtopic.FieldTaskID:
		return m.AddedTaskID()
	case tasksubtopic.FieldSubtopicID:
		return m.AddedSubtopicID()
	case tasksubtopic.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskSubtopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tasksubtopic.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case tasksubtopic.FieldSubtopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicID(v)
		return nil
	case tasksubtopic.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown TaskSubtopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskSubtopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskSubtopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskSubtopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskSubtopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskSubtopicMutation) ResetField(name string) error {
	switch name {
	case tasksubtopic.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tasksubtopic.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case tasksubtopic.FieldDuration:
		m.ResetDuration()
		return nil
	}
	return fmt.Errorf("unknown TaskSubtopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskSubtopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskSubtopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskSubtopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskSubtopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskSubtopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskSubtopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskSubtopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskSubtopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskSubtopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskSubtopic edge %s", name)
}

// TaskTypeMutation represents an operation that mutates the TaskType nodes in the graph.
type TaskTypeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TaskType, error)
	predicates    []predicate.TaskType
}

var _ ent.Mutation = (*TaskTypeMutation)(nil)

// tasktypeOption allows management of the mutation configuration using functional options.
type tasktypeOption func(*TaskTypeMutation)

// newTaskTypeMutation creates new mutation for the TaskType entity.
func newTaskTypeMutation(c config, op Op, opts ...tasktypeOption) *TaskTypeMutation {
	m := &TaskTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTypeID sets the ID field of the mutation.
func withTaskTypeID(id int) tasktypeOption {
	return func(m *TaskTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskType
		)
		m.oldValue = func(ctx context.Context) (*TaskType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskType sets the old TaskType of the mutation.
func withTaskType(node *TaskType) tasktypeOption {
	return func(m *TaskTypeMutation) {
		m.oldValue = func(context.Context) (*TaskType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTypeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTypeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TaskType entity.
// If the TaskType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTypeMutation) OldName(ctx context.Context) (v string, err error) {
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

// ResetName resets all changes to the "name" field.
func (m *TaskTypeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TaskTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskType entity.
// If the TaskType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTypeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskTypeMutation) ResetDescription() {
	m.description = nil
}

// Where appends a list predicates to the TaskTypeMutation builder.
func (m *TaskTypeMutation) Where(ps ...predicate.TaskType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskType).
func (m *TaskTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTypeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, tasktype.FieldName)
	}
	if m.description != nil {
		fields = append(fields, tasktype.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktype.FieldName:
		return m.Name()
	case tasktype.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktype.FieldName:
		return m.OldName(ctx)
	case tasktype.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown TaskType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tasktype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown TaskType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTypeMutation) ResetField(name string) error {
	switch name {
	case tasktype.FieldName:
		m.ResetName()
		return nil
	case tasktype.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown TaskType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTypeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTypeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTypeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTypeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTypeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskType edge %s", name)
}

// TaskTypePreferenceMutation represents an operation that mutates the TaskTypePreference nodes in the graph.
type TaskTypePreferenceMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *int64
	adduser_id      *int64
	task_type_id    *int64
	addtask_type_id *int64
	enabled         *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TaskTypePreference, error)
	predicates      []predicate.TaskTypePreference
}

var _ ent.Mutation = (*TaskTypePreferenceMutation)(nil)

// tasktypepreferenceOption allows management of the mutation configuration using functional options.
type tasktypepreferenceOption func(*TaskTypePreferenceMutation)

// newTaskTypePreferenceMutation creates new mutation for the TaskTypePreference entity.
func newTaskTypePreferenceMutation(c config, op Op, opts ...tasktypepreferenceOption) *TaskTypePreferenceMutation {
	m := &TaskTypePreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskTypePreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTypePreferenceID sets the ID field of the mutation.
func withTaskTypePreferenceID(id int) tasktypepreferenceOption {
	return func(m *TaskTypePreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskTypePreference
		)
		m.oldValue = func(ctx context.Context) (*TaskTypePreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskTypePreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskTypePreference sets the old TaskTypePreference of the mutation.
func withTaskTypePreference(node *TaskTypePreference) tasktypepreferenceOption {
	return func(m *TaskTypePreferenceMutation) {
		m.oldValue = func(context.Context) (*TaskTypePreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTypePreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTypePreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTypePreferenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTypePreferenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskTypePreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskTypePreferenceMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskTypePreferenceMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TaskTypePreference entity.
// If the TaskTypePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTypePreferenceMutation) OldUserID(ctx context.Context) (v int64, err error) {
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

// AddUserID adds i to the "user_id" field.
func (m *TaskTypePreferenceMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *TaskTypePreferenceMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskTypePreferenceMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTaskTypeID sets the "task_type_id" field.
func (m *TaskTypePreferenceMutation) SetTaskTypeID(i int64) {
	m.task_type_id = &i
	m.addtask_type_id = nil
}

// TaskTypeID returns the value of the "task_type_id" field in the mutation.
func (m *TaskTypePreferenceMutation) TaskTypeID() (r int64, exists bool) {
	v := m.task_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskTypeID returns the old "task_type_id" field's value of the TaskTypePreference entity.
// If the TaskTypePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTypePreferenceMutation) OldTaskTypeID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskTypeID: %w", err)
	}
	return oldValue.TaskTypeID, nil
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (m *TaskTypePreferenceMutation) AddTaskTypeID(i int64) {
	if m.addtask_type_id != nil {
		*m.addtask_type_id += i
	} else {
		m.addtask_type_id = &i
	}
}

// AddedTaskTypeID returns the value that was added to the "task_type_id" field in this mutation.
func (m *TaskTypePreferenceMutation) AddedTaskTypeID() (r int64, exists bool) {
	v := m.addtask_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskTypeID resets all changes to the "task_type_id" field.
func (m *TaskTypePreferenceMutation) ResetTaskTypeID() {
	m.task_type_id = nil
	m.addtask_type_id = nil
}

// SetEnabled sets the "enabled" field.
func (m *TaskTypePreferenceMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TaskTypePreferenceMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the TaskTypePreference entity.
// If the TaskTypePreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTypePreferenceMutation) OldEnabled(ctx context.Context) (v bool, err error) {
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
func (m *TaskTypePreferenceMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the TaskTypePreferenceMutation builder.
func (m *TaskTypePreferenceMutation) Where(ps ...predicate.TaskTypePreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTypePreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTypePreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskTypePreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTypePreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTypePreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskTypePreference).
func (m *TaskTypePreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTypePreferenceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, tasktypepreference.FieldUserID)
	}
	if m.task_type_id != nil {
		fields = append(fields, tasktypepreference.FieldTaskTypeID)
	}
	if m.enabled != nil {
		fields = append(fields, tasktypepreference.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTypePreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktypepreference.FieldUserID:
		return m.UserID()
	case tasktypepreference.FieldTaskTypeID:
		return m.TaskTypeID()
	case tasktypepreference.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTypePreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktypepreference.FieldUserID:
		return m.OldUserID(ctx)
	case tasktypepreference.FieldTaskTypeID:
		return m.OldTaskTypeID(ctx)
	case tasktypepreference.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown TaskTypePreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTypePreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktypepreference.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tasktypepreference.FieldTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskTypeID(v)
		return nil
	case tasktypepreference.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTypePreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTypePreferenceMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, tasktypepreference.FieldUserID)
	}
	if m.addtask_type_id != nil {
		fields = append(fields, tasktypepreference.FieldTaskTypeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTypePreferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tasktypepreference.FieldUserID:
		return m.AddedUserID()
	case tasktypepreference.FieldTaskTypeID:
		return m.AddedTaskTypeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTypePreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tasktypepreference.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case tasktypepreference.FieldTaskTypeID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTypePreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTypePreferenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTypePreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTypePreferenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskTypePreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTypePreferenceMutation) ResetField(name string) error {
	switch name {
	case tasktypepreference.FieldUserID:
		m.ResetUserID()
		return nil
	case tasktypepreference.FieldTaskTypeID:
		m.ResetTaskTypeID()
		return nil
	case tasktypepreference.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown TaskTypePreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTypePreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTypePreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTypePreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTypePreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTypePreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTypePreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTypePreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskTypePreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTypePreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskTypePreference edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	subject_id         *int64
	addsubject_id      *int64
	parent_topic_id    *int64
	addparent_topic_id *int64
	title              *string
	description        *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Topic, error)
	predicates         []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *TopicMutation) SetSubjectID(i int64) {
	m.subject_id = &i
	m.addsubject_id = nil
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *TopicMutation) SubjectID() (r int64, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldSubjectID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// AddSubjectID adds i to the "subject_id" field.
func (m *TopicMutation) AddSubjectID(i int64) {
	if m.addsubject_id != nil {
		*m.addsubject_id += i
	} else {
		m.addsubject_id = &i
	}
}

// AddedSubjectID returns the value that was added to the "subject_id" field in this mutation.
func (m *TopicMutation) AddedSubjectID() (r int64, exists bool) {
	v := m.addsubject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *TopicMutation) ResetSubjectID() {
	m.subject_id = nil
	m.addsubject_id = nil
}

// SetParentTopicID sets the "parent_topic_id" field.
func (m *TopicMutation) SetParentTopicID(i int64) {
	m.parent_topic_id = &i
	m.addparent_topic_id = nil
}

// ParentTopicID returns the value of the "parent_topic_id" field in the mutation.
func (m *TopicMutation) ParentTopicID() (r int64, exists bool) {
	v := m.parent_topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTopicID returns the old "parent_topic_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldParentTopicID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTopicID: %w", err)
	}
	return oldValue.ParentTopicID, nil
}

// AddParentTopicID adds i to the "parent_topic_id" field.
func (m *TopicMutation) AddParentTopicID(i int64) {
	if m.addparent_topic_id != nil {
		*m.addparent_topic_id += i
	} else {
		m.addparent_topic_id = &i
	}
}

// AddedParentTopicID returns the value that was added to the "parent_topic_id" field in this mutation.
func (m *TopicMutation) AddedParentTopicID() (r int64, exists bool) {
	v := m.addparent_topic_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentTopicID clears the value of the "parent_topic_id" field.
func (m *TopicMutation) ClearParentTopicID() {
	m.parent_topic_id = nil
	m.addparent_topic_id = nil
	m.clearedFields[topic.FieldParentTopicID] = struct{}{}
}

// ParentTopicIDCleared returns if the "parent_topic_id" field was cleared in this mutation.
func (m *TopicMutation) ParentTopicIDCleared() bool {
	_, ok := m.clearedFields[topic.FieldParentTopicID]
	return ok
}

// ResetParentTopicID resets all changes to the "parent_topic_id" field.
func (m *TopicMutation) ResetParentTopicID() {
	m.parent_topic_id = nil
	m.addparent_topic_id = nil
	delete(m.clearedFields, topic.FieldParentTopicID)
}

// SetTitle sets the "title" field.
func (m *TopicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TopicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TopicMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TopicMutation) ResetDescription() {
	m.description = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.subject_id != nil {
		fields = append(fields, topic.FieldSubjectID)
	}
	if m.parent_topic_id != nil {
		fields = append(fields, topic.FieldParentTopicID)
	}
	if m.title != nil {
		fields = append(fields, topic.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, topic.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldSubjectID:
		return m.SubjectID()
	case topic.FieldParentTopicID:
		return m.ParentTopicID()
	case topic.FieldTitle:
		return m.Title()
	case topic.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case topic.FieldParentTopicID:
		return m.OldParentTopicID(ctx)
	case topic.FieldTitle:
		return m.OldTitle(ctx)
	case topic.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case topic.FieldParentTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTopicID(v)
		return nil
	case topic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case topic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addsubject_id != nil {
		fields = append(fields, topic.FieldSubjectID)
	}
	if m.addparent_topic_id != nil {
		fields = append(fields, topic.FieldParentTopicID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldSubjectID:
		return m.AddedSubjectID()
	case topic.FieldParentTopicID:
		return m.AddedParentTopicID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldSubjectID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectID(v)
		return nil
	case topic.FieldParentTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentTopicID(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldParentTopicID) {
		fields = append(fields, topic.FieldParentTopicID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldParentTopicID:
		m.ClearParentTopicID()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case topic.FieldParentTopicID:
		m.ResetParentTopicID()
		return nil
	case topic.FieldTitle:
		m.ResetTitle()
		return nil
	case topic.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TopicConfidenceMutation represents an operation that mutates the TopicConfidence nodes in the graph.
type TopicConfidenceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int64
	adduser_id    *int64
	topic_id      *int64
	addtopic_id   *int64
	percent       *int
	addpercent    *int
	priority      *bool
	last_updated  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TopicConfidence, error)
	predicates    []predicate.TopicConfidence
}

var _ ent.Mutation = (*TopicConfidenceMutation)(nil)

// topicconfidenceOption allows management of the mutation configuration using functional options.
type topicconfidenceOption func(*TopicConfidenceMutation)

// newTopicConfidenceMutation creates new mutation for the TopicConfidence entity.
func newTopicConfidenceMutation(c config, op Op, opts ...topicconfidenceOption) *TopicConfidenceMutation {
	m := &TopicConfidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicConfidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicConfidenceID sets the ID field of the mutation.
func withTopicConfidenceID(id int) topicconfidenceOption {
	return func(m *TopicConfidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicConfidence
		)
		m.oldValue = func(ctx context.Context) (*TopicConfidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicConfidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicConfidence sets the old TopicConfidence of the mutation.
func withTopicConfidence(node *TopicConfidence) topicconfidenceOption {
	return func(m *TopicConfidenceMutation) {
		m.oldValue = func(context.Context) (*TopicConfidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicConfidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicConfidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicConfidenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicConfidenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicConfidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicConfidenceMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicConfidenceMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicConfidence entity.
// If the TopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicConfidenceMutation) OldUserID(ctx context.Context) (v int64, err error) {
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

// AddUserID adds i to the "user_id" field.
func (m *TopicConfidenceMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *TopicConfidenceMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicConfidenceMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TopicConfidenceMutation) SetTopicID(i int64) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicConfidenceMutation) TopicID() (r int64, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicConfidence entity.
// If the TopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicConfidenceMutation) OldTopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TopicConfidenceMutation) AddTopicID(i int64) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TopicConfidenceMutation) AddedTopicID() (r int64, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicConfidenceMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetPercent sets the "percent" field.
func (m *TopicConfidenceMutation) SetPercent(i int) {
	m.percent = &i
	m.addpercent = nil
}

// Percent returns the value of the "percent" field in the mutation.
func (m *TopicConfidenceMutation) Percent() (r int, exists bool) {
	v := m.percent
	if v == nil {
		return
	}
	return *v, true
}

// OldPercent returns the old "percent" field's value of the TopicConfidence entity.
// If the TopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicConfidenceMutation) OldPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercent: %w", err)
	}
	return oldValue.Percent, nil
}

// AddPercent adds i to the "percent" field.
func (m *TopicConfidenceMutation) AddPercent(i int) {
	if m.addpercent != nil {
		*m.addpercent += i
	} else {
		m.addpercent = &i
	}
}

// AddedPercent returns the value that was added to the "percent" field in this mutation.
func (m *TopicConfidenceMutation) AddedPercent() (r int, exists bool) {
	v := m.addpercent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercent resets all changes to the "percent" field.
func (m *TopicConfidenceMutation) ResetPercent() {
	m.percent = nil
	m.addpercent = nil
}

// SetPriority sets the "priority" field.
func (m *TopicConfidenceMutation) SetPriority(b bool) {
	m.priority = &b
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TopicConfidenceMutation) Priority() (r bool, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TopicConfidence entity.
// If the TopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicConfidenceMutation) OldPriority(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TopicConfidenceMutation) ResetPriority() {
	m.priority = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *TopicConfidenceMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *TopicConfidenceMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the TopicConfidence entity.
// If the TopicConfidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicConfidenceMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *TopicConfidenceMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the TopicConfidenceMutation builder.
func (m *TopicConfidenceMutation) Where(ps ...predicate.TopicConfidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicConfidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicConfidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicConfidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicConfidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicConfidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicConfidence).
func (m *TopicConfidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicConfidenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, topicconfidence.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, topicconfidence.FieldTopicID)
	}
	if m.percent != nil {
		fields = append(fields, topicconfidence.FieldPercent)
	}
	if m.priority != nil {
		fields = append(fields, topicconfidence.FieldPriority)
	}
	if m.last_updated != nil {
		fields = append(fields, topicconfidence.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicConfidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicconfidence.FieldUserID:
		return m.UserID()
	case topicconfidence.FieldTopicID:
		return m.TopicID()
	case topicconfidence.FieldPercent:
		return m.Percent()
	case topicconfidence.FieldPriority:
		return m.Priority()
	case topicconfidence.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicConfidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicconfidence.FieldUserID:
		return m.OldUserID(ctx)
	case topicconfidence.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicconfidence.FieldPercent:
		return m.OldPercent(ctx)
	case topicconfidence.FieldPriority:
		return m.OldPriority(ctx)
	case topicconfidence.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown TopicConfidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicConfidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicconfidence.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicconfidence.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicconfidence.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercent(v)
		return nil
	case topicconfidence.FieldPriority:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case topicconfidence.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown TopicConfidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicConfidenceMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, topicconfidence.FieldUserID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, topicconfidence.FieldTopicID)
	}
	if m.addpercent != nil {
		fields = append(fields, topicconfidence.FieldPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicConfidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicconfidence.FieldUserID:
		return m.AddedUserID()
	case topicconfidence.FieldTopicID:
		return m.AddedTopicID()
	case topicconfidence.FieldPercent:
		return m.AddedPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicConfidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicconfidence.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case topicconfidence.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case topicconfidence.FieldPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercent(v)
		return nil
	}
	return fmt.Errorf("unknown TopicConfidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicConfidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicConfidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicConfidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicConfidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicConfidenceMutation) ResetField(name string) error {
	switch name {
	case topicconfidence.FieldUserID:
		m.ResetUserID()
		return nil
	case topicconfidence.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicconfidence.FieldPercent:
		m.ResetPercent()
		return nil
	case topicconfidence.FieldPriority:
		m.ResetPriority()
		return nil
	case topicconfidence.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown TopicConfidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicConfidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicConfidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicConfidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicConfidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicConfidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicConfidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicConfidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicConfidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicConfidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicConfidence edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	email                  *string
	username               *string
	password_hash          *string
	study_hours_per_day    *float64
	addstudy_hours_per_day *float64
	weekend_study_hours    *float64
	addweekend_study_hours *float64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetStudyHoursPerDay sets the "study_hours_per_day" field.
func (m *UserMutation) SetStudyHoursPerDay(f float64) {
	m.study_hours_per_day = &f
	m.addstudy_hours_per_day = nil
}

// StudyHoursPerDay returns the value of the "study_hours_per_day" field in the mutation.
func (m *UserMutation) StudyHoursPerDay() (r float64, exists bool) {
	v := m.study_hours_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyHoursPerDay returns the old "study_hours_per_day" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStudyHoursPerDay(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyHoursPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyHoursPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyHoursPerDay: %w", err)
	}
	return oldValue.StudyHoursPerDay, nil
}

// AddStudyHoursPerDay adds f to the "study_hours_per_day" field.
func (m *UserMutation) AddStudyHoursPerDay(f float64) {
	if m.addstudy_hours_per_day != nil {
		*m.addstudy_hours_per_day += f
	} else {
		m.addstudy_hours_per_day = &f
	}
}

// AddedStudyHoursPerDay returns the value that was added to the "study_hours_per_day" field in this mutation.
func (m *UserMutation) AddedStudyHoursPerDay() (r float64, exists bool) {
	v := m.addstudy_hours_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyHoursPerDay resets all changes to the "study_hours_per_day" field.
func (m *UserMutation) ResetStudyHoursPerDay() {
	m.study_hours_per_day = nil
	m.addstudy_hours_per_day = nil
}

// SetWeekendStudyHours sets the "weekend_study_hours" field.
func (m *UserMutation) SetWeekendStudyHours(f float64) {
	m.weekend_study_hours = &f
	m.addweekend_study_hours = nil
}

// WeekendStudyHours returns the value of the "weekend_study_hours" field in the mutation.
func (m *UserMutation) WeekendStudyHours() (r float64, exists bool) {
	v := m.weekend_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekendStudyHours returns the old "weekend_study_hours" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldWeekendStudyHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekendStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekendStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekendStudyHours: %w", err)
	}
	return oldValue.WeekendStudyHours, nil
}

// AddWeekendStudyHours adds f to the "weekend_study_hours" field.
func (m *UserMutation) AddWeekendStudyHours(f float64) {
	if m.addweekend_study_hours != nil {
		*m.addweekend_study_hours += f
	} else {
		m.addweekend_study_hours = &f
	}
}

// AddedWeekendStudyHours returns the value that was added to the "weekend_study_hours" field in this mutation.
func (m *UserMutation) AddedWeekendStudyHours() (r float64, exists bool) {
	v := m.addweekend_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekendStudyHours resets all changes to the "weekend_study_hours" field.
func (m *UserMutation) ResetWeekendStudyHours() {
	m.weekend_study_hours = nil
	m.addweekend_study_hours = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.study_hours_per_day != nil {
		fields = append(fields, user.FieldStudyHoursPerDay)
	}
	if m.weekend_study_hours != nil {
		fields = append(fields, user.FieldWeekendStudyHours)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldStudyHoursPerDay:
		return m.StudyHoursPerDay()
	case user.FieldWeekendStudyHours:
		return m.WeekendStudyHours()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldStudyHoursPerDay:
		return m.OldStudyHoursPerDay(ctx)
	case user.FieldWeekendStudyHours:
		return m.OldWeekendStudyHours(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldStudyHoursPerDay:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyHoursPerDay(v)
		return nil
	case user.FieldWeekendStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekendStudyHours(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addstudy_hours_per_day != nil {
		fields = append(fields, user.FieldStudyHoursPerDay)
	}
	if m.addweekend_study_hours != nil {
		fields = append(fields, user.FieldWeekendStudyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldStudyHoursPerDay:
		return m.AddedStudyHoursPerDay()
	case user.FieldWeekendStudyHours:
		return m.AddedWeekendStudyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldStudyHoursPerDay:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyHoursPerDay(v)
		return nil
	case user.FieldWeekendStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekendStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldStudyHoursPerDay:
		m.ResetStudyHoursPerDay()
		return nil
	case user.FieldWeekendStudyHours:
		m.ResetWeekendStudyHours()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
