// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
)

// TaskTypePreferenceCreate is the builder for creating a TaskTypePreference entity.
type TaskTypePreferenceCreate struct {
	config
	mutation *TaskTypePreferenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ttpc *TaskTypePreferenceCreate) SetUserID(i int64) *TaskTypePreferenceCreate {
	ttpc.mutation.SetUserID(i)
	return ttpc
}

// SetTaskTypeID sets the "task_type_id" field.
func (ttpc *TaskTypePreferenceCreate) SetTaskTypeID(i int64) *TaskTypePreferenceCreate {
	ttpc.mutation.SetTaskTypeID(i)
	return ttpc
}

// SetEnabled sets the "enabled" field.
func (ttpc *TaskTypePreferenceCreate) SetEnabled(b bool) *TaskTypePreferenceCreate {
	ttpc.mutation.SetEnabled(b)
	return ttpc
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (ttpc *TaskTypePreferenceCreate) SetNillableEnabled(b *bool) *TaskTypePreferenceCreate {
	if b != nil {
		ttpc.SetEnabled(*b)
	}
	return ttpc
}

// Mutation returns the TaskTypePreferenceMutation object of the builder.
func (ttpc *TaskTypePreferenceCreate) Mutation() *TaskTypePreferenceMutation {
	return ttpc.mutation
}

// Save creates the TaskTypePreference in the database.
func (ttpc *TaskTypePreferenceCreate) Save(ctx context.Context) (*TaskTypePreference, error) {
	ttpc.defaults()
	return withHooks(ctx, ttpc.sqlSave, ttpc.mutation, ttpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ttpc *TaskTypePreferenceCreate) SaveX(ctx context.Context) *TaskTypePreference {
	v, err := ttpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttpc *TaskTypePreferenceCreate) Exec(ctx context.Context) error {
	_, err := ttpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpc *TaskTypePreferenceCreate) ExecX(ctx context.Context) {
	if err := ttpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ttpc *TaskTypePreferenceCreate) defaults() {
	if _, ok := ttpc.mutation.Enabled(); !ok {
		v := tasktypepreference.DefaultEnabled
		ttpc.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttpc *TaskTypePreferenceCreate) check() error {
	if _, ok := ttpc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TaskTypePreference.user_id"`)}
	}
	if _, ok := ttpc.mutation.TaskTypeID(); !ok {
		return &ValidationError{Name: "task_type_id", err: errors.New(`ent: missing required field "TaskTypePreference.task_type_id"`)}
	}
	if _, ok := ttpc.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "TaskTypePreference.enabled"`)}
	}
	return nil
}

func (ttpc *TaskTypePreferenceCreate) sqlSave(ctx context.Context) (*TaskTypePreference, error) {
	if err := ttpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ttpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ttpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ttpc.mutation.id = &_node.ID
	ttpc.mutation.done = true
	return _node, nil
}

func (ttpc *TaskTypePreferenceCreate) createSpec() (*TaskTypePreference, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTypePreference{config: ttpc.config}
		_spec = sqlgraph.NewCreateSpec(tasktypepreference.Table, sqlgraph.NewFieldSpec(tasktypepreference.FieldID, field.TypeInt))
	)
	if value, ok := ttpc.mutation.UserID(); ok {
		_spec.SetField(tasktypepreference.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := ttpc.mutation.TaskTypeID(); ok {
		_spec.SetField(tasktypepreference.FieldTaskTypeID, field.TypeInt64, value)
		_node.TaskTypeID = value
	}
	if value, ok := ttpc.mutation.Enabled(); ok {
		_spec.SetField(tasktypepreference.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	return _node, _spec
}

// TaskTypePreferenceCreateBulk is the builder for creating many TaskTypePreference entities in bulk.
type TaskTypePreferenceCreateBulk struct {
	config
	err      error
	builders []*TaskTypePreferenceCreate
}

// Save creates the TaskTypePreference entities in the database.
func (ttpcb *TaskTypePreferenceCreateBulk) Save(ctx context.Context) ([]*TaskTypePreference, error) {
	if ttpcb.err != nil {
		return nil, ttpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ttpcb.builders))
	nodes := make([]*TaskTypePreference, len(ttpcb.builders))
	mutators := make([]Mutator, len(ttpcb.builders))
	for i := range ttpcb.builders {
		func(i int, root context.Context) {
			builder := ttpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTypePreferenceMutation)
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
					_, err = mutators[i+1].Mutate(root, ttpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ttpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ttpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ttpcb *TaskTypePreferenceCreateBulk) SaveX(ctx context.Context) []*TaskTypePreference {
	v, err := ttpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttpcb *TaskTypePreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := ttpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpcb *TaskTypePreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := ttpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
