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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
)

// TaskTypeUpdate is the builder for updating TaskType entities.
type TaskTypeUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTypeMutation
}

// Where appends a list predicates to the TaskTypeUpdate builder.
func (ttu *TaskTypeUpdate) Where(ps ...predicate.TaskType) *TaskTypeUpdate {
	ttu.mutation.Where(ps...)
	return ttu
}

// SetName sets the "name" field.
func (ttu *TaskTypeUpdate) SetName(s string) *TaskTypeUpdate {
	ttu.mutation.SetName(s)
	return ttu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ttu *TaskTypeUpdate) SetNillableName(s *string) *TaskTypeUpdate {
	if s != nil {
		ttu.SetName(*s)
	}
	return ttu
}

// SetDescription sets the "description" field.
func (ttu *TaskTypeUpdate) SetDescription(s string) *TaskTypeUpdate {
	ttu.mutation.SetDescription(s)
	return ttu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ttu *TaskTypeUpdate) SetNillableDescription(s *string) *TaskTypeUpdate {
	if s != nil {
		ttu.SetDescription(*s)
	}
	return ttu
}

// Mutation returns the TaskTypeMutation object of the builder.
func (ttu *TaskTypeUpdate) Mutation() *TaskTypeMutation {
	return ttu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ttu *TaskTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ttu.sqlSave, ttu.mutation, ttu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttu *TaskTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := ttu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ttu *TaskTypeUpdate) Exec(ctx context.Context) error {
	_, err := ttu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttu *TaskTypeUpdate) ExecX(ctx context.Context) {
	if err := ttu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttu *TaskTypeUpdate) check() error {
	if v, ok := ttu.mutation.Name(); ok {
		if err := tasktype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TaskType.name": %w`, err)}
		}
	}
	return nil
}

func (ttu *TaskTypeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ttu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktype.Table, tasktype.Columns, sqlgraph.NewFieldSpec(tasktype.FieldID, field.TypeInt))
	if ps := ttu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttu.mutation.Name(); ok {
		_spec.SetField(tasktype.FieldName, field.TypeString, value)
	}
	if value, ok := ttu.mutation.Description(); ok {
		_spec.SetField(tasktype.FieldDescription, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ttu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ttu.mutation.done = true
	return n, nil
}

// TaskTypeUpdateOne is the builder for updating a single TaskType entity.
type TaskTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTypeMutation
}

// SetName sets the "name" field.
func (ttuo *TaskTypeUpdateOne) SetName(s string) *TaskTypeUpdateOne {
	ttuo.mutation.SetName(s)
	return ttuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ttuo *TaskTypeUpdateOne) SetNillableName(s *string) *TaskTypeUpdateOne {
	if s != nil {
		ttuo.SetName(*s)
	}
	return ttuo
}

// SetDescription sets the "description" field.
func (ttuo *TaskTypeUpdateOne) SetDescription(s string) *TaskTypeUpdateOne {
	ttuo.mutation.SetDescription(s)
	return ttuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ttuo *TaskTypeUpdateOne) SetNillableDescription(s *string) *TaskTypeUpdateOne {
	if s != nil {
		ttuo.SetDescription(*s)
	}
	return ttuo
}

// Mutation returns the TaskTypeMutation object of the builder.
func (ttuo *TaskTypeUpdateOne) Mutation() *TaskTypeMutation {
	return ttuo.mutation
}

// Where appends a list predicates to the TaskTypeUpdate builder.
func (ttuo *TaskTypeUpdateOne) Where(ps ...predicate.TaskType) *TaskTypeUpdateOne {
	ttuo.mutation.Where(ps...)
	return ttuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ttuo *TaskTypeUpdateOne) Select(field string, fields ...string) *TaskTypeUpdateOne {
	ttuo.fields = append([]string{field}, fields...)
	return ttuo
}

// Save executes the query and returns the updated TaskType entity.
func (ttuo *TaskTypeUpdateOne) Save(ctx context.Context) (*TaskType, error) {
	return withHooks(ctx, ttuo.sqlSave, ttuo.mutation, ttuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttuo *TaskTypeUpdateOne) SaveX(ctx context.Context) *TaskType {
	node, err := ttuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ttuo *TaskTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := ttuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttuo *TaskTypeUpdateOne) ExecX(ctx context.Context) {
	if err := ttuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttuo *TaskTypeUpdateOne) check() error {
	if v, ok := ttuo.mutation.Name(); ok {
		if err := tasktype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TaskType.name": %w`, err)}
		}
	}
	return nil
}

func (ttuo *TaskTypeUpdateOne) sqlSave(ctx context.Context) (_node *TaskType, err error) {
	if err := ttuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktype.Table, tasktype.Columns, sqlgraph.NewFieldSpec(tasktype.FieldID, field.TypeInt))
	id, ok := ttuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ttuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktype.FieldID)
		for _, f := range fields {
			if !tasktype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasktype.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ttuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttuo.mutation.Name(); ok {
		_spec.SetField(tasktype.FieldName, field.TypeString, value)
	}
	if value, ok := ttuo.mutation.Description(); ok {
		_spec.SetField(tasktype.FieldDescription, field.TypeString, value)
	}
	_node = &TaskType{config: ttuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ttuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ttuo.mutation.done = true
	return _node, nil
}
