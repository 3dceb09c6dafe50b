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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
)

// TaskTypePreferenceUpdate is the builder for updating TaskTypePreference entities.
type TaskTypePreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTypePreferenceMutation
}

// Where appends a list predicates to the TaskTypePreferenceUpdate builder.
func (ttpu *TaskTypePreferenceUpdate) Where(ps ...predicate.TaskTypePreference) *TaskTypePreferenceUpdate {
	ttpu.mutation.Where(ps...)
	return ttpu
}

// SetUserID sets the "user_id" field.
func (ttpu *TaskTypePreferenceUpdate) SetUserID(i int64) *TaskTypePreferenceUpdate {
	ttpu.mutation.ResetUserID()
	ttpu.mutation.SetUserID(i)
	return ttpu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ttpu *TaskTypePreferenceUpdate) SetNillableUserID(i *int64) *TaskTypePreferenceUpdate {
	if i != nil {
		ttpu.SetUserID(*i)
	}
	return ttpu
}

// AddUserID adds i to the "user_id" field.
func (ttpu *TaskTypePreferenceUpdate) AddUserID(i int64) *TaskTypePreferenceUpdate {
	ttpu.mutation.AddUserID(i)
	return ttpu
}

// SetTaskTypeID sets the "task_type_id" field.
func (ttpu *TaskTypePreferenceUpdate) SetTaskTypeID(i int64) *TaskTypePreferenceUpdate {
	ttpu.mutation.ResetTaskTypeID()
	ttpu.mutation.SetTaskTypeID(i)
	return ttpu
}

// SetNillableTaskTypeID sets the "task_type_id" field if the given value is not nil.
func (ttpu *TaskTypePreferenceUpdate) SetNillableTaskTypeID(i *int64) *TaskTypePreferenceUpdate {
	if i != nil {
		ttpu.SetTaskTypeID(*i)
	}
	return ttpu
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (ttpu *TaskTypePreferenceUpdate) AddTaskTypeID(i int64) *TaskTypePreferenceUpdate {
	ttpu.mutation.AddTaskTypeID(i)
	return ttpu
}

// SetEnabled sets the "enabled" field.
func (ttpu *TaskTypePreferenceUpdate) SetEnabled(b bool) *TaskTypePreferenceUpdate {
	ttpu.mutation.SetEnabled(b)
	return ttpu
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (ttpu *TaskTypePreferenceUpdate) SetNillableEnabled(b *bool) *TaskTypePreferenceUpdate {
	if b != nil {
		ttpu.SetEnabled(*b)
	}
	return ttpu
}

// Mutation returns the TaskTypePreferenceMutation object of the builder.
func (ttpu *TaskTypePreferenceUpdate) Mutation() *TaskTypePreferenceMutation {
	return ttpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ttpu *TaskTypePreferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ttpu.sqlSave, ttpu.mutation, ttpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttpu *TaskTypePreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := ttpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ttpu *TaskTypePreferenceUpdate) Exec(ctx context.Context) error {
	_, err := ttpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpu *TaskTypePreferenceUpdate) ExecX(ctx context.Context) {
	if err := ttpu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ttpu *TaskTypePreferenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasktypepreference.Table, tasktypepreference.Columns, sqlgraph.NewFieldSpec(tasktypepreference.FieldID, field.TypeInt))
	if ps := ttpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttpu.mutation.UserID(); ok {
		_spec.SetField(tasktypepreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ttpu.mutation.AddedUserID(); ok {
		_spec.AddField(tasktypepreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ttpu.mutation.TaskTypeID(); ok {
		_spec.SetField(tasktypepreference.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := ttpu.mutation.AddedTaskTypeID(); ok {
		_spec.AddField(tasktypepreference.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := ttpu.mutation.Enabled(); ok {
		_spec.SetField(tasktypepreference.FieldEnabled, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ttpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktypepreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ttpu.mutation.done = true
	return n, nil
}

// TaskTypePreferenceUpdateOne is the builder for updating a single TaskTypePreference entity.
type TaskTypePreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTypePreferenceMutation
}

// SetUserID sets the "user_id" field.
func (ttpuo *TaskTypePreferenceUpdateOne) SetUserID(i int64) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.ResetUserID()
	ttpuo.mutation.SetUserID(i)
	return ttpuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ttpuo *TaskTypePreferenceUpdateOne) SetNillableUserID(i *int64) *TaskTypePreferenceUpdateOne {
	if i != nil {
		ttpuo.SetUserID(*i)
	}
	return ttpuo
}

// AddUserID adds i to the "user_id" field.
func (ttpuo *TaskTypePreferenceUpdateOne) AddUserID(i int64) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.AddUserID(i)
	return ttpuo
}

// SetTaskTypeID sets the "task_type_id" field.
func (ttpuo *TaskTypePreferenceUpdateOne) SetTaskTypeID(i int64) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.ResetTaskTypeID()
	ttpuo.mutation.SetTaskTypeID(i)
	return ttpuo
}

// SetNillableTaskTypeID sets the "task_type_id" field if the given value is not nil.
func (ttpuo *TaskTypePreferenceUpdateOne) SetNillableTaskTypeID(i *int64) *TaskTypePreferenceUpdateOne {
	if i != nil {
		ttpuo.SetTaskTypeID(*i)
	}
	return ttpuo
}

// AddTaskTypeID adds i to the "task_type_id" field.
func (ttpuo *TaskTypePreferenceUpdateOne) AddTaskTypeID(i int64) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.AddTaskTypeID(i)
	return ttpuo
}

// SetEnabled sets the "enabled" field.
func (ttpuo *TaskTypePreferenceUpdateOne) SetEnabled(b bool) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.SetEnabled(b)
	return ttpuo
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (ttpuo *TaskTypePreferenceUpdateOne) SetNillableEnabled(b *bool) *TaskTypePreferenceUpdateOne {
	if b != nil {
		ttpuo.SetEnabled(*b)
	}
	return ttpuo
}

// Mutation returns the TaskTypePreferenceMutation object of the builder.
func (ttpuo *TaskTypePreferenceUpdateOne) Mutation() *TaskTypePreferenceMutation {
	return ttpuo.mutation
}

// Where appends a list predicates to the TaskTypePreferenceUpdate builder.
func (ttpuo *TaskTypePreferenceUpdateOne) Where(ps ...predicate.TaskTypePreference) *TaskTypePreferenceUpdateOne {
	ttpuo.mutation.Where(ps...)
	return ttpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ttpuo *TaskTypePreferenceUpdateOne) Select(field string, fields ...string) *TaskTypePreferenceUpdateOne {
	ttpuo.fields = append([]string{field}, fields...)
	return ttpuo
}

// Save executes the query and returns the updated TaskTypePreference entity.
func (ttpuo *TaskTypePreferenceUpdateOne) Save(ctx context.Context) (*TaskTypePreference, error) {
	return withHooks(ctx, ttpuo.sqlSave, ttpuo.mutation, ttpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttpuo *TaskTypePreferenceUpdateOne) SaveX(ctx context.Context) *TaskTypePreference {
	node, err := ttpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ttpuo *TaskTypePreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := ttpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpuo *TaskTypePreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := ttpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ttpuo *TaskTypePreferenceUpdateOne) sqlSave(ctx context.Context) (_node *TaskTypePreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(tasktypepreference.Table, tasktypepreference.Columns, sqlgraph.NewFieldSpec(tasktypepreference.FieldID, field.TypeInt))
	id, ok := ttpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskTypePreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ttpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktypepreference.FieldID)
		for _, f := range fields {
			if !tasktypepreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasktypepreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ttpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttpuo.mutation.UserID(); ok {
		_spec.SetField(tasktypepreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ttpuo.mutation.AddedUserID(); ok {
		_spec.AddField(tasktypepreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := ttpuo.mutation.TaskTypeID(); ok {
		_spec.SetField(tasktypepreference.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := ttpuo.mutation.AddedTaskTypeID(); ok {
		_spec.AddField(tasktypepreference.FieldTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := ttpuo.mutation.Enabled(); ok {
		_spec.SetField(tasktypepreference.FieldEnabled, field.TypeBool, value)
	}
	_node = &TaskTypePreference{config: ttpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ttpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktypepreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ttpuo.mutation.done = true
	return _node, nil
}
