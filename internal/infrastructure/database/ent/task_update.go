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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetUserID sets the "user_id" field.
func (tu *TaskUpdate) SetUserID(i int64) *TaskUpdate {
	tu.mutation.ResetUserID()
	tu.mutation.SetUserID(i)
	return tu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableUserID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetUserID(*i)
	}
	return tu
}

// AddUserID adds i to the "user_id" field.
func (tu *TaskUpdate) AddUserID(i int64) *TaskUpdate {
	tu.mutation.AddUserID(i)
	return tu
}

// SetSubjectID sets the "subject_id" field.
func (tu *TaskUpdate) SetSubjectID(i int64) *TaskUpdate {
	tu.mutation.ResetSubjectID()
	tu.mutation.SetSubjectID(i)
	return tu
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableSubjectID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetSubjectID(*i)
	}
	return tu
}

// AddSubjectID adds i to the "subject_id" field.
func (tu *TaskUpdate) AddSubjectID(i int64) *TaskUpdate {
	tu.mutation.AddSubjectID(i)
	return tu
}

// SetTopicID sets the "topic_id" field.
func (tu *TaskUpdate) SetTopicID(i int64) *TaskUpdate {
	tu.mutation.ResetTopicID()
	tu.mutation.SetTopicID(i)
	return tu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTopicID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetTopicID(*i)
	}
	return tu
}

// AddTopicID adds i to the "topic_id" field.
func (tu *TaskUpdate) AddTopicID(i int64) *TaskUpdate {
	tu.mutation.AddTopicID(i)
	return tu
}

// SetTaskTypeID sets the "task_type_id" field.
func (tu *TaskUpdate) SetTaskTypeID(i int64) *TaskUpdate {
	tu.mutation.ResetTaskTypeID()
	tu.mutation.SetTaskTypeID(i)
	return tu
}

// SetNillableTaskTypeID sets the "task_type_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTaskTypeID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetTaskTypeID(*i)
	}
	return tu
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (tu *TaskUpdate) AddTaskTypeID(i int64) *TaskUpdate {
	tu.mutation.AddTaskTypeID(i)
	return tu
}

// SetTitle sets the "title" field.
func (tu *TaskUpdate) SetTitle(s string) *TaskUpdate {
	tu.mutation.SetTitle(s)
	return tu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTitle(s *string) *TaskUpdate {
	if s != nil {
		tu.SetTitle(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TaskUpdate) SetDescription(s string) *TaskUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDescription(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// SetDueDate sets the "due_date" field.
func (tu *TaskUpdate) SetDueDate(t time.Time) *TaskUpdate {
	tu.mutation.SetDueDate(t)
	return tu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDueDate(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetDueDate(*t)
	}
	return tu
}

// SetCompletedAt sets the "completed_at" field.
func (tu *TaskUpdate) SetCompletedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetCompletedAt(t)
	return tu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCompletedAt(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetCompletedAt(*t)
	}
	return tu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tu *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	tu.mutation.ClearCompletedAt()
	return tu
}

// SetSkippedAt sets the "skipped_at" field.
func (tu *TaskUpdate) SetSkippedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetSkippedAt(t)
	return tu
}

// SetNillableSkippedAt sets the "skipped_at" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableSkippedAt(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetSkippedAt(*t)
	}
	return tu
}

// ClearSkippedAt clears the value of the "skipped_at" field.
func (tu *TaskUpdate) ClearSkippedAt() *TaskUpdate {
	tu.mutation.ClearSkippedAt()
	return tu
}

// SetTotalDuration sets the "total_duration" field.
func (tu *TaskUpdate) SetTotalDuration(i int) *TaskUpdate {
	tu.mutation.ResetTotalDuration()
	tu.mutation.SetTotalDuration(i)
	return tu
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTotalDuration(i *int) *TaskUpdate {
	if i != nil {
		tu.SetTotalDuration(*i)
	}
	return tu
}

// AddTotalDuration adds i to the "total_duration" field.
func (tu *TaskUpdate) AddTotalDuration(i int) *TaskUpdate {
	tu.mutation.AddTotalDuration(i)
	return tu
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedUserID(); ok {
		_spec.AddField(task.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.SubjectID(); ok {
		_spec.SetField(task.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedSubjectID(); ok {
		_spec.AddField(task.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.TopicID(); ok {
		_spec.SetField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedTopicID(); ok {
		_spec.AddField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.TaskTypeID(); ok {
		_spec.SetField(task.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedTaskTypeID(); ok {
		_spec.AddField(task.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tu.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := tu.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tu.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := tu.mutation.SkippedAt(); ok {
		_spec.SetField(task.FieldSkippedAt, field.TypeTime, value)
	}
	if tu.mutation.SkippedAtCleared() {
		_spec.ClearField(task.FieldSkippedAt, field.TypeTime)
	}
	if value, ok := tu.mutation.TotalDuration(); ok {
		_spec.SetField(task.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedTotalDuration(); ok {
		_spec.AddField(task.FieldTotalDuration, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetUserID sets the "user_id" field.
func (tuo *TaskUpdateOne) SetUserID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetUserID()
	tuo.mutation.SetUserID(i)
	return tuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableUserID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetUserID(*i)
	}
	return tuo
}

// AddUserID adds i to the "user_id" field.
func (tuo *TaskUpdateOne) AddUserID(i int64) *TaskUpdateOne {
	tuo.mutation.AddUserID(i)
	return tuo
}

// SetSubjectID sets the "subject_id" field.
func (tuo *TaskUpdateOne) SetSubjectID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetSubjectID()
	tuo.mutation.SetSubjectID(i)
	return tuo
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableSubjectID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetSubjectID(*i)
	}
	return tuo
}

// AddSubjectID adds i to the "subject_id" field.
func (tuo *TaskUpdateOne) AddSubjectID(i int64) *TaskUpdateOne {
	tuo.mutation.AddSubjectID(i)
	return tuo
}

// SetTopicID sets the "topic_id" field.
func (tuo *TaskUpdateOne) SetTopicID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetTopicID()
	tuo.mutation.SetTopicID(i)
	return tuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTopicID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetTopicID(*i)
	}
	return tuo
}

// AddTopicID adds i to the "topic_id" field.
func (tuo *TaskUpdateOne) AddTopicID(i int64) *TaskUpdateOne {
	tuo.mutation.AddTopicID(i)
	return tuo
}

// SetTaskTypeID sets the "task_type_id" field.
func (tuo *TaskUpdateOne) SetTaskTypeID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetTaskTypeID()
	tuo.mutation.SetTaskTypeID(i)
	return tuo
}

// SetNillableTaskTypeID sets the "task_type_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTaskTypeID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetTaskTypeID(*i)
	}
	return tuo
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (tuo *TaskUpdateOne) AddTaskTypeID(i int64) *TaskUpdateOne {
	tuo.mutation.AddTaskTypeID(i)
	return tuo
}

// SetTitle sets the "title" field.
func (tuo *TaskUpdateOne) SetTitle(s string) *TaskUpdateOne {
	tuo.mutation.SetTitle(s)
	return tuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTitle(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetTitle(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TaskUpdateOne) SetDescription(s string) *TaskUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDescription(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// SetDueDate sets the "due_date" field.
func (tuo *TaskUpdateOne) SetDueDate(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetDueDate(t)
	return tuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDueDate(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetDueDate(*t)
	}
	return tuo
}

// SetCompletedAt sets the "completed_at" field.
func (tuo *TaskUpdateOne) SetCompletedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetCompletedAt(t)
	return tuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCompletedAt(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetCompletedAt(*t)
	}
	return tuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tuo *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	tuo.mutation.ClearCompletedAt()
	return tuo
}

// SetSkippedAt sets the "skipped_at" field.
func (tuo *TaskUpdateOne) SetSkippedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetSkippedAt(t)
	return tuo
}

// SetNillableSkippedAt sets the "skipped_at" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableSkippedAt(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetSkippedAt(*t)
	}
	return tuo
}

// ClearSkippedAt clears the value of the "skipped_at" field.
func (tuo *TaskUpdateOne) ClearSkippedAt() *TaskUpdateOne {
	tuo.mutation.ClearSkippedAt()
	return tuo
}

// SetTotalDuration sets the "total_duration" field.
func (tuo *TaskUpdateOne) SetTotalDuration(i int) *TaskUpdateOne {
	tuo.mutation.ResetTotalDuration()
	tuo.mutation.SetTotalDuration(i)
	return tuo
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTotalDuration(i *int) *TaskUpdateOne {
	if i != nil {
		tuo.SetTotalDuration(*i)
	}
	return tuo
}

// AddTotalDuration adds i to the "total_duration" field.
func (tuo *TaskUpdateOne) AddTotalDuration(i int) *TaskUpdateOne {
	tuo.mutation.AddTotalDuration(i)
	return tuo
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedUserID(); ok {
		_spec.AddField(task.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.SubjectID(); ok {
		_spec.SetField(task.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedSubjectID(); ok {
		_spec.AddField(task.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.TopicID(); ok {
		_spec.SetField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedTopicID(); ok {
		_spec.AddField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.TaskTypeID(); ok {
		_spec.SetField(task.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedTaskTypeID(); ok {
		_spec.AddField(task.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tuo.mutation.DueDate(); ok {
		_spec.SetField(task.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tuo.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := tuo.mutation.SkippedAt(); ok {
		_spec.SetField(task.FieldSkippedAt, field.TypeTime, value)
	}
	if tuo.mutation.SkippedAtCleared() {
		_spec.ClearField(task.FieldSkippedAt, field.TypeTime)
	}
	if value, ok := tuo.mutation.TotalDuration(); ok {
		_spec.SetField(task.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedTotalDuration(); ok {
		_spec.AddField(task.FieldTotalDuration, field.TypeInt, value)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
