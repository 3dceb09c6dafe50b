// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
)

// TaskSubtopicCreate is the builder for creating a TaskSubtopic entity.
type TaskSubtopicCreate struct {
	config
	mutation *TaskSubtopicMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (tsc *TaskSubtopicCreate) SetTaskID(i int64) *TaskSubtopicCreate {
	tsc.mutation.SetTaskID(i)
	return tsc
}

// SetSubtopicID sets the "subtopic_id" field.
func (tsc *TaskSubtopicCreate) SetSubtopicID(i int64) *TaskSubtopicCreate {
	tsc.mutation.SetSubtopicID(i)
	return tsc
}

// SetDuration sets the "duration" field.
func (tsc *TaskSubtopicCreate) SetDuration(i int) *TaskSubtopicCreate {
	tsc.mutation.SetDuration(i)
	return tsc
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (tsc *TaskSubtopicCreate) SetNillableDuration(i *int) *TaskSubtopicCreate {
	if i != nil {
		tsc.SetDuration(*i)
	}
	return tsc
}

// Mutation returns the TaskSubtopicMutation object of the builder.
func (tsc *TaskSubtopicCreate) Mutation() *TaskSubtopicMutation {
	return tsc.mutation
}

// Save creates the TaskSubtopic in the database.
func (tsc *TaskSubtopicCreate) Save(ctx context.Context) (*TaskSubtopic, error) {
	tsc.defaults()
	return withHooks(ctx, tsc.sqlSave, tsc.mutation, tsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tsc *TaskSubtopicCreate) SaveX(ctx context.Context) *TaskSubtopic {
	v, err := tsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tsc *TaskSubtopicCreate) Exec(ctx context.Context) error {
	_, err := tsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsc *TaskSubtopicCreate) ExecX(ctx context.Context) {
	if err := tsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsc *TaskSubtopicCreate) defaults() {
	if _, ok := tsc.mutation.Duration(); !ok {
		v := tasksubtopic.DefaultDuration
		tsc.mutation.SetDuration(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsc *TaskSubtopicCreate) check() error {
	if _, ok := tsc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskSubtopic.task_id"`)}
	}
	if _, ok := tsc.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "TaskSubtopic.subtopic_id"`)}
	}
	if _, ok := tsc.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "TaskSubtopic.duration"`)}
	}
	return nil
}

func (tsc *TaskSubtopicCreate) sqlSave(ctx context.Context) (*TaskSubtopic, error) {
	if err := tsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tsc.mutation.id = &_node.ID
	tsc.mutation.done = true
	return _node, nil
}

func (tsc *TaskSubtopicCreate) createSpec() (*TaskSubtopic, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskSubtopic{config: tsc.config}
		_spec = sqlgraph.NewCreateSpec(tasksubtopic.Table, sqlgraph.NewFieldSpec(tasksubtopic.FieldID, field.TypeInt))
	)
	if value, ok := tsc.mutation.TaskID(); ok {
		_spec.SetField(tasksubtopic.FieldTaskID, field.TypeInt64, value)
		_node.TaskID = value
	}
	if value, ok := tsc.mutation.SubtopicID(); ok {
		_spec.SetField(tasksubtopic.FieldSubtopicID, field.TypeInt64, value)
		_node.SubtopicID = value
	}
	if value, ok := tsc.mutation.Duration(); ok {
		_spec.SetField(tasksubtopic.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	return _node, _spec
}

// TaskSubtopicCreateBulk is the builder for creating many TaskSubtopic entities in bulk.
type TaskSubtopicCreateBulk struct {
	config
	err      error
	builders []*TaskSubtopicCreate
}

// Save creates the TaskSubtopic entities in the database.
func (tscb *TaskSubtopicCreateBulk) Save(ctx context.Context) ([]*TaskSubtopic, error) {
	if tscb.err != nil {
		return nil, tscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tscb.builders))
	nodes := make([]*TaskSubtopic, len(tscb.builders))
	mutators := make([]Mutator, len(tscb.builders))
	for i := range tscb.builders {
		func(i int, root context.Context) {
			builder := tscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskSubtopicMutation)
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
					_, err = mutators[i+1].Mutate(root, tscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, tscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tscb *TaskSubtopicCreateBulk) SaveX(ctx context.Context) []*TaskSubtopic {
	v, err := tscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tscb *TaskSubtopicCreateBulk) Exec(ctx context.Context) error {
	_, err := tscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tscb *TaskSubtopicCreateBulk) ExecX(ctx context.Context) {
	if err := tscb.Exec(ctx); err != nil {
		panic(err)
	}
}
