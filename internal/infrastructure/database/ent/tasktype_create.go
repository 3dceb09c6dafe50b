// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
)

// TaskTypeCreate is the builder for creating a TaskType entity.
type TaskTypeCreate struct {
	config
	mutation *TaskTypeMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (ttc *TaskTypeCreate) SetName(s string) *TaskTypeCreate {
	ttc.mutation.SetName(s)
	return ttc
}

// SetDescription sets the "description" field.
func (ttc *TaskTypeCreate) SetDescription(s string) *TaskTypeCreate {
	ttc.mutation.SetDescription(s)
	return ttc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ttc *TaskTypeCreate) SetNillableDescription(s *string) *TaskTypeCreate {
	if s != nil {
		ttc.SetDescription(*s)
	}
	return ttc
}

// Mutation returns the TaskTypeMutation object of the builder.
func (ttc *TaskTypeCreate) Mutation() *TaskTypeMutation {
	return ttc.mutation
}

// Save creates the TaskType in the database.
func (ttc *TaskTypeCreate) Save(ctx context.Context) (*TaskType, error) {
	ttc.defaults()
	return withHooks(ctx, ttc.sqlSave, ttc.mutation, ttc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ttc *TaskTypeCreate) SaveX(ctx context.Context) *TaskType {
	v, err := ttc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttc *TaskTypeCreate) Exec(ctx context.Context) error {
	_, err := ttc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttc *TaskTypeCreate) ExecX(ctx context.Context) {
	if err := ttc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ttc *TaskTypeCreate) defaults() {
	if _, ok := ttc.mutation.Description(); !ok {
		v := tasktype.DefaultDescription
		ttc.mutation.SetDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttc *TaskTypeCreate) check() error {
	if _, ok := ttc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TaskType.name"`)}
	}
	if v, ok := ttc.mutation.Name(); ok {
		if err := tasktype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TaskType.name": %w`, err)}
		}
	}
	if _, ok := ttc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "TaskType.description"`)}
	}
	return nil
}

func (ttc *TaskTypeCreate) sqlSave(ctx context.Context) (*TaskType, error) {
	if err := ttc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ttc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ttc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ttc.mutation.id = &_node.ID
	ttc.mutation.done = true
	return _node, nil
}

func (ttc *TaskTypeCreate) createSpec() (*TaskType, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskType{config: ttc.config}
		_spec = sqlgraph.NewCreateSpec(tasktype.Table, sqlgraph.NewFieldSpec(tasktype.FieldID, field.TypeInt))
	)
	if value, ok := ttc.mutation.Name(); ok {
		_spec.SetField(tasktype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ttc.mutation.Description(); ok {
		_spec.SetField(tasktype.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// TaskTypeCreateBulk is the builder for creating many TaskType entities in bulk.
type TaskTypeCreateBulk struct {
	config
	err      error
	builders []*TaskTypeCreate
}

// Save creates the TaskType entities in the database.
func (ttcb *TaskTypeCreateBulk) Save(ctx context.Context) ([]*TaskType, error) {
	if ttcb.err != nil {
		return nil, ttcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ttcb.builders))
	nodes := make([]*TaskType, len(ttcb.builders))
	mutators := make([]Mutator, len(ttcb.builders))
	for i := range ttcb.builders {
		func(i int, root context.Context) {
			builder := ttcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTypeMutation)
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
					_, err = mutators[i+1].Mutate(root, ttcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ttcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ttcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ttcb *TaskTypeCreateBulk) SaveX(ctx context.Context) []*TaskType {
	v, err := ttcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttcb *TaskTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := ttcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttcb *TaskTypeCreateBulk) ExecX(ctx context.Context) {
	if err := ttcb.Exec(ctx); err != nil {
		panic(err)
	}
}
