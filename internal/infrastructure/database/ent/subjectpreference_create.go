// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
)

// SubjectPreferenceCreate is the builder for creating a SubjectPreference entity.
type SubjectPreferenceCreate struct {
	config
	mutation *SubjectPreferenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (spc *SubjectPreferenceCreate) SetUserID(i int64) *SubjectPreferenceCreate {
	spc.mutation.SetUserID(i)
	return spc
}

// SetSubjectID sets the "subject_id" field.
func (spc *SubjectPreferenceCreate) SetSubjectID(i int64) *SubjectPreferenceCreate {
	spc.mutation.SetSubjectID(i)
	return spc
}

// SetExclusiveTaskTypeID sets the "exclusive_task_type_id" field.
func (spc *SubjectPreferenceCreate) SetExclusiveTaskTypeID(i int64) *SubjectPreferenceCreate {
	spc.mutation.SetExclusiveTaskTypeID(i)
	return spc
}

// SetNillableExclusiveTaskTypeID sets the "exclusive_task_type_id" field if the given value is not nil.
func (spc *SubjectPreferenceCreate) SetNillableExclusiveTaskTypeID(i *int64) *SubjectPreferenceCreate {
	if i != nil {
		spc.SetExclusiveTaskTypeID(*i)
	}
	return spc
}

// Mutation returns the SubjectPreferenceMutation object of the builder.
func (spc *SubjectPreferenceCreate) Mutation() *SubjectPreferenceMutation {
	return spc.mutation
}

// Save creates the SubjectPreference in the database.
func (spc *SubjectPreferenceCreate) Save(ctx context.Context) (*SubjectPreference, error) {
	return withHooks(ctx, spc.sqlSave, spc.mutation, spc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (spc *SubjectPreferenceCreate) SaveX(ctx context.Context) *SubjectPreference {
	v, err := spc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spc *SubjectPreferenceCreate) Exec(ctx context.Context) error {
	_, err := spc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spc *SubjectPreferenceCreate) ExecX(ctx context.Context) {
	if err := spc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (spc *SubjectPreferenceCreate) check() error {
	if _, ok := spc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubjectPreference.user_id"`)}
	}
	if _, ok := spc.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SubjectPreference.subject_id"`)}
	}
	return nil
}

func (spc *SubjectPreferenceCreate) sqlSave(ctx context.Context) (*SubjectPreference, error) {
	if err := spc.check(); err != nil {
		return nil, err
	}
	_node, _spec := spc.createSpec()
	if err := sqlgraph.CreateNode(ctx, spc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	spc.mutation.id = &_node.ID
	spc.mutation.done = true
	return _node, nil
}

func (spc *SubjectPreferenceCreate) createSpec() (*SubjectPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectPreference{config: spc.config}
		_spec = sqlgraph.NewCreateSpec(subjectpreference.Table, sqlgraph.NewFieldSpec(subjectpreference.FieldID, field.TypeInt))
	)
	if value, ok := spc.mutation.UserID(); ok {
		_spec.SetField(subjectpreference.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := spc.mutation.SubjectID(); ok {
		_spec.SetField(subjectpreference.FieldSubjectID, field.TypeInt64, value)
		_node.SubjectID = value
	}
	if value, ok := spc.mutation.ExclusiveTaskTypeID(); ok {
		_spec.SetField(subjectpreference.FieldExclusiveTaskTypeID, field.TypeInt64, value)
		_node.ExclusiveTaskTypeID = &value
	}
	return _node, _spec
}

// SubjectPreferenceCreateBulk is the builder for creating many SubjectPreference entities in bulk.
type SubjectPreferenceCreateBulk struct {
	config
	err      error
	builders []*SubjectPreferenceCreate
}

// Save creates the SubjectPreference entities in the database.
func (spcb *SubjectPreferenceCreateBulk) Save(ctx context.Context) ([]*SubjectPreference, error) {
	if spcb.err != nil {
		return nil, spcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(spcb.builders))
	nodes := make([]*SubjectPreference, len(spcb.builders))
	mutators := make([]Mutator, len(spcb.builders))
	for i := range spcb.builders {
		func(i int, root context.Context) {
			builder := spcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectPreferenceMutation)
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
					_, err = mutators[i+1].Mutate(root, spcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, spcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, spcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (spcb *SubjectPreferenceCreateBulk) SaveX(ctx context.Context) []*SubjectPreference {
	v, err := spcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spcb *SubjectPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := spcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spcb *SubjectPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := spcb.Exec(ctx); err != nil {
		panic(err)
	}
}
