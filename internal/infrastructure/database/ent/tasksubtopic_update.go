// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
)

// TaskSubtopicUpdate is the builder for updating TaskSubtopic entities.
type TaskSubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *TaskSubtopicMutation
}

// Where appends a list predicates to the TaskSubtopicUpdate builder.
func (tsu *TaskSubtopicUpdate) Where(ps ...predicate.TaskSubtopic) *TaskSubtopicUpdate {
	tsu.mutation.Where(ps...)
	return tsu
}

// SetTaskID sets the "task_id" field.
func (tsu *TaskSubtopicUpdate) SetTaskID(i int64) *TaskSubtopicUpdate {
	tsu.mutation.ResetTaskID()
	tsu.mutation.SetTaskID(i)
	return tsu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (tsu *TaskSubtopicUpdate) SetNillableTaskID(i *int64) *TaskSubtopicUpdate {
	if i != nil {
		tsu.SetTaskID(*i)
	}
	return tsu
}

// AddTaskID adds i to the "task_id" field.
func (tsu *TaskSubtopicUpdate) AddTaskID(i int64) *TaskSubtopicUpdate {
	tsu.mutation.AddTaskID(i)
	return tsu
}

// SetSubtopicID sets the "subtopic_id" field.
func (tsu *TaskSubtopicUpdate) SetSubtopicID(i int64) *TaskSubtopicUpdate {
	tsu.mutation.ResetSubtopicID()
	tsu.mutation.SetSubtopicID(i)
	return tsu
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (tsu *TaskSubtopicUpdate) SetNillableSubtopicID(i *int64) *TaskSubtopicUpdate {
	if i != nil {
		tsu.SetSubtopicID(*i)
	}
	return tsu
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (tsu *TaskSubtopicUpdate) AddSubtopicID(i int64) *TaskSubtopicUpdate {
	tsu.mutation.AddSubtopicID(i)
	return tsu
}

// SetDuration sets the "duration" field.
func (tsu *TaskSubtopicUpdate) SetDuration(i int) *TaskSubtopicUpdate {
	tsu.mutation.ResetDuration()
	tsu.mutation.SetDuration(i)
	return tsu
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (tsu *TaskSubtopicUpdate) SetNillableDuration(i *int) *TaskSubtopicUpdate {
	if i != nil {
		tsu.SetDuration(*i)
	}
	return tsu
}

// AddDuration adds i to the "duration" field.
func (tsu *TaskSubtopicUpdate) AddDuration(i int) *TaskSubtopicUpdate {
	tsu.mutation.AddDuration(i)
	return tsu
}

// Mutation returns the TaskSubtopicMutation object of the builder.
func (tsu *TaskSubtopicUpdate) Mutation() *TaskSubtopicMutation {
	return tsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tsu *TaskSubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tsu.sqlSave, tsu.mutation, tsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsu *TaskSubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := tsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tsu *TaskSubtopicUpdate) Exec(ctx context.Context) error {
	_, err := tsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsu *TaskSubtopicUpdate) ExecX(ctx context.Context) {
	if err := tsu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (tsu *TaskSubtopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasksubtopic.Table, tasksubtopic.Columns, sqlgraph.NewFieldSpec(tasksubtopic.FieldID, field.TypeInt))
	if ps := tsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsu.mutation.TaskID(); ok {
		_spec.SetField(tasksubtopic.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := tsu.mutation.AddedTaskID(); ok {
		_spec.AddField(tasksubtopic.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := tsu.mutation.SubtopicID(); ok {
		_spec.SetField(tasksubtopic.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := tsu.mutation.AddedSubtopicID(); ok {
		_spec.AddField(tasksubtopic.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := tsu.mutation.Duration(); ok {
		_spec.SetField(tasksubtopic.FieldDuration, field.TypeInt, value)
	}
	if value, ok := tsu.mutation.AddedDuration(); ok {
		_spec.AddField(tasksubtopic.FieldDuration, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasksubtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tsu.mutation.done = true
	return n, nil
}

// TaskSubtopicUpdateOne is the builder for updating a single TaskSubtopic entity.
type TaskSubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskSubtopicMutation
}

// SetTaskID sets the "task_id" field.
func (tsuo *TaskSubtopicUpdateOne) SetTaskID(i int64) *TaskSubtopicUpdateOne {
	tsuo.mutation.ResetTaskID()
	tsuo.mutation.SetTaskID(i)
	return tsuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (tsuo *TaskSubtopicUpdateOne) SetNillableTaskID(i *int64) *TaskSubtopicUpdateOne {
	if i != nil {
		tsuo.SetTaskID(*i)
	}
	return tsuo
}

// AddTaskID adds i to the "task_id" field.
func (tsuo *TaskSubtopicUpdateOne) AddTaskID(i int64) *TaskSubtopicUpdateOne {
	tsuo.mutation.AddTaskID(i)
	return tsuo
}

// SetSubtopicID sets the "subtopic_id" field.
func (tsuo *TaskSubtopicUpdateOne) SetSubtopicID(i int64) *TaskSubtopicUpdateOne {
	tsuo.mutation.ResetSubtopicID()
	tsuo.mutation.SetSubtopicID(i)
	return tsuo
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (tsuo *TaskSubtopicUpdateOne) SetNillableSubtopicID(i *int64) *TaskSubtopicUpdateOne {
	if i != nil {
		tsuo.SetSubtopicID(*i)
	}
	return tsuo
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (tsuo *TaskSubtopicUpdateOne) AddSubtopicID(i int64) *TaskSubtopicUpdateOne {
	tsuo.mutation.AddSubtopicID(i)
	return tsuo
}

// SetDuration sets the "duration" field.
func (tsuo *TaskSubtopicUpdateOne) SetDuration(i int) *TaskSubtopicUpdateOne {
	tsuo.mutation.ResetDuration()
	tsuo.mutation.SetDuration(i)
	return tsuo
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (tsuo *TaskSubtopicUpdateOne) SetNillableDuration(i *int) *TaskSubtopicUpdateOne {
	if i != nil {
		tsuo.SetDuration(*i)
	}
	return tsuo
}

// AddDuration adds i to the "duration" field.
func (tsuo *TaskSubtopicUpdateOne) AddDuration(i int) *TaskSubtopicUpdateOne {
	tsuo.mutation.AddDuration(i)
	return tsuo
}

// Mutation returns the TaskSubtopicMutation object of the builder.
func (tsuo *TaskSubtopicUpdateOne) Mutation() *TaskSubtopicMutation {
	return tsuo.mutation
}

// Where appends a list predicates to the TaskSubtopicUpdate builder.
func (tsuo *TaskSubtopicUpdateOne) Where(ps ...predicate.TaskSubtopic) *TaskSubtopicUpdateOne {
	tsuo.mutation.Where(ps...)
	return tsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tsuo *TaskSubtopicUpdateOne) Select(field string, fields ...string) *TaskSubtopicUpdateOne {
	tsuo.fields = append([]string{field}, fields...)
	return tsuo
}

// Save executes the query and returns the updated TaskSubtopic entity.
func (tsuo *TaskSubtopicUpdateOne) Save(ctx context.Context) (*TaskSubtopic, error) {
	return withHooks(ctx, tsuo.sqlSave, tsuo.mutation, tsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsuo *TaskSubtopicUpdateOne) SaveX(ctx context.Context) *TaskSubtopic {
	node, err := tsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tsuo *TaskSubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := tsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsuo *TaskSubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := tsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (tsuo *TaskSubtopicUpdateOne) sqlSave(ctx context.Context) (_node *TaskSubtopic, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasksubtopic.Table, tasksubtopic.Columns, sqlgraph.NewFieldSpec(tasksubtopic.FieldID, field.TypeInt))
	id, ok := tsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskSubtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasksubtopic.FieldID)
		for _, f := range fields {
			if !tasksubtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasksubtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsuo.mutation.TaskID(); ok {
		_spec.SetField(tasksubtopic.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := tsuo.mutation.AddedTaskID(); ok {
		_spec.AddField(tasksubtopic.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := tsuo.mutation.SubtopicID(); ok {
		_spec.SetField(tasksubtopic.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := tsuo.mutation.AddedSubtopicID(); ok {
		_spec.AddField(tasksubtopic.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := tsuo.mutation.Duration(); ok {
		_spec.SetField(tasksubtopic.FieldDuration, field.TypeInt, value)
	}
	if value, ok := tsuo.mutation.AddedDuration(); ok {
		_spec.AddField(tasksubtopic.FieldDuration, field.TypeInt, value)
	}
	_node = &TaskSubtopic{config: tsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasksubtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tsuo.mutation.done = true
	return _node, nil
}
