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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
)

// SubjectPreferenceUpdate is the builder for updating SubjectPreference entities.
type SubjectPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectPreferenceMutation
}

// Where appends a list predicates to the SubjectPreferenceUpdate builder.
func (spu *SubjectPreferenceUpdate) Where(ps ...predicate.SubjectPreference) *SubjectPreferenceUpdate {
	spu.mutation.Where(ps...)
	return spu
}

// SetUserID sets the "user_id" field.
func (spu *SubjectPreferenceUpdate) SetUserID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.ResetUserID()
	spu.mutation.SetUserID(i)
	return spu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (spu *SubjectPreferenceUpdate) SetNillableUserID(i *int64) *SubjectPreferenceUpdate {
	if i != nil {
		spu.SetUserID(*i)
	}
	return spu
}

// AddUserID adds i to the "user_id" field.
func (spu *SubjectPreferenceUpdate) AddUserID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.AddUserID(i)
	return spu
}

// SetSubjectID sets the "subject_id" field.
func (spu *SubjectPreferenceUpdate) SetSubjectID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.ResetSubjectID()
	spu.mutation.SetSubjectID(i)
	return spu
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (spu *SubjectPreferenceUpdate) SetNillableSubjectID(i *int64) *SubjectPreferenceUpdate {
	if i != nil {
		spu.SetSubjectID(*i)
	}
	return spu
}

// AddSubjectID adds i to the "subject_id" field.
func (spu *SubjectPreferenceUpdate) AddSubjectID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.AddSubjectID(i)
	return spu
}

// SetExclusiveTaskTypeID sets the "exclusive_task_type_id" field.
func (spu *SubjectPreferenceUpdate) SetExclusiveTaskTypeID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.ResetExclusiveTaskTypeID()
	spu.mutation.SetExclusiveTaskTypeID(i)
	return spu
}

// SetNillableExclusiveTaskTypeID sets the "exclusive_task_type_id" field if the given value is not nil.
func (spu *SubjectPreferenceUpdate) SetNillableExclusiveTaskTypeID(i *int64) *SubjectPreferenceUpdate {
	if i != nil {
		spu.SetExclusiveTaskTypeID(*i)
	}
	return spu
}

// AddExclusiveTaskTypeID adds i to the "exclusive_task_type_id" field.
func (spu *SubjectPreferenceUpdate) AddExclusiveTaskTypeID(i int64) *SubjectPreferenceUpdate {
	spu.mutation.AddExclusiveTaskTypeID(i)
	return spu
}

// ClearExclusiveTaskTypeID clears the value of the "exclusive_task_type_id" field.
func (spu *SubjectPreferenceUpdate) ClearExclusiveTaskTypeID() *SubjectPreferenceUpdate {
	spu.mutation.ClearExclusiveTaskTypeID()
	return spu
}

// Mutation returns the SubjectPreferenceMutation object of the builder.
func (spu *SubjectPreferenceUpdate) Mutation() *SubjectPreferenceMutation {
	return spu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (spu *SubjectPreferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, spu.sqlSave, spu.mutation, spu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spu *SubjectPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := spu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (spu *SubjectPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := spu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spu *SubjectPreferenceUpdate) ExecX(ctx context.Context) {
	if err := spu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (spu *SubjectPreferenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(subjectpreference.Table, subjectpreference.Columns, sqlgraph.NewFieldSpec(subjectpreference.FieldID, field.TypeInt))
	if ps := spu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spu.mutation.UserID(); ok {
		_spec.SetField(subjectpreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := spu.mutation.AddedUserID(); ok {
		_spec.AddField(subjectpreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := spu.mutation.SubjectID(); ok {
		_spec.SetField(subjectpreference.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := spu.mutation.AddedSubjectID(); ok {
		_spec.AddField(subjectpreference.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := spu.mutation.ExclusiveTaskTypeID(); ok {
		_spec.SetField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := spu.mutation.AddedExclusiveTaskTypeID(); ok {
		_spec.AddField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64, value)
	}
	if spu.mutation.ExclusiveTaskTypeIDCleared() {
		_spec.ClearField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, spu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	spu.mutation.done = true
	return n, nil
}

// SubjectPreferenceUpdateOne is the builder for updating a single SubjectPreference entity.
type SubjectPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectPreferenceMutation
}

// SetUserID sets the "user_id" field.
func (spuo *SubjectPreferenceUpdateOne) SetUserID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.ResetUserID()
	spuo.mutation.SetUserID(i)
	return spuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (spuo *SubjectPreferenceUpdateOne) SetNillableUserID(i *int64) *SubjectPreferenceUpdateOne {
	if i != nil {
		spuo.SetUserID(*i)
	}
	return spuo
}

// AddUserID adds i to the "user_id" field.
func (spuo *SubjectPreferenceUpdateOne) AddUserID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.AddUserID(i)
	return spuo
}

// SetSubjectID sets the "subject_id" field.
func (spuo *SubjectPreferenceUpdateOne) SetSubjectID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.ResetSubjectID()
	spuo.mutation.SetSubjectID(i)
	return spuo
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (spuo *SubjectPreferenceUpdateOne) SetNillableSubjectID(i *int64) *SubjectPreferenceUpdateOne {
	if i != nil {
		spuo.SetSubjectID(*i)
	}
	return spuo
}

// AddSubjectID adds i to the "subject_id" field.
func (spuo *SubjectPreferenceUpdateOne) AddSubjectID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.AddSubjectID(i)
	return spuo
}

// SetExclusiveTaskTypeID sets the "exclusive_task_type_id" field.
func (spuo *SubjectPreferenceUpdateOne) SetExclusiveTaskTypeID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.ResetExclusiveTaskTypeID()
	spuo.mutation.SetExclusiveTaskTypeID(i)
	return spuo
}

// SetNillableExclusiveTaskTypeID sets the "exclusive_task_type_id" field if the given value is not nil.
func (spuo *SubjectPreferenceUpdateOne) SetNillableExclusiveTaskTypeID(i *int64) *SubjectPreferenceUpdateOne {
	if i != nil {
		spuo.SetExclusiveTaskTypeID(*i)
	}
	return spuo
}

// AddExclusiveTaskTypeID adds i to the "exclusive_task_type_id" field.
func (spuo *SubjectPreferenceUpdateOne) AddExclusiveTaskTypeID(i int64) *SubjectPreferenceUpdateOne {
	spuo.mutation.AddExclusiveTaskTypeID(i)
	return spuo
}

// ClearExclusiveTaskTypeID clears the value of the "exclusive_task_type_id" field.
func (spuo *SubjectPreferenceUpdateOne) ClearExclusiveTaskTypeID() *SubjectPreferenceUpdateOne {
	spuo.mutation.ClearExclusiveTaskTypeID()
	return spuo
}

// Mutation returns the SubjectPreferenceMutation object of the builder.
func (spuo *SubjectPreferenceUpdateOne) Mutation() *SubjectPreferenceMutation {
	return spuo.mutation
}

// Where appends a list predicates to the SubjectPreferenceUpdate builder.
func (spuo *SubjectPreferenceUpdateOne) Where(ps ...predicate.SubjectPreference) *SubjectPreferenceUpdateOne {
	spuo.mutation.Where(ps...)
	return spuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (spuo *SubjectPreferenceUpdateOne) Select(field string, fields ...string) *SubjectPreferenceUpdateOne {
	spuo.fields = append([]string{field}, fields...)
	return spuo
}

// Save executes the query and returns the updated SubjectPreference entity.
func (spuo *SubjectPreferenceUpdateOne) Save(ctx context.Context) (*SubjectPreference, error) {
	return withHooks(ctx, spuo.sqlSave, spuo.mutation, spuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spuo *SubjectPreferenceUpdateOne) SaveX(ctx context.Context) *SubjectPreference {
	node, err := spuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (spuo *SubjectPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := spuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spuo *SubjectPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := spuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (spuo *SubjectPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *SubjectPreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(subjectpreference.Table, subjectpreference.Columns, sqlgraph.NewFieldSpec(subjectpreference.FieldID, field.TypeInt))
	id, ok := spuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := spuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectpreference.FieldID)
		for _, f := range fields {
			if !subjectpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectpreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := spuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spuo.mutation.UserID(); ok {
		_spec.SetField(subjectpreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := spuo.mutation.AddedUserID(); ok {
		_spec.AddField(subjectpreference.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := spuo.mutation.SubjectID(); ok {
		_spec.SetField(subjectpreference.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := spuo.mutation.AddedSubjectID(); ok {
		_spec.AddField(subjectpreference.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := spuo.mutation.ExclusiveTaskTypeID(); ok {
		_spec.SetField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64, value)
	}
	if value, ok := spuo.mutation.AddedExclusiveTaskTypeID(); ok {
		_spec.AddField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64, value)
	}
	if spuo.mutation.ExclusiveTaskTypeIDCleared() {
		_spec.ClearField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64)
	}
	_node = &SubjectPreference{config: spuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, spuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	spuo.mutation.done = true
	return _node, nil
}
