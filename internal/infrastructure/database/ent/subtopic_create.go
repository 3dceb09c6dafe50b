// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
)

// SubtopicCreate is the builder for creating a Subtopic entity.
type SubtopicCreate struct {
	config
	mutation *SubtopicMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (sc *SubtopicCreate) SetTopicID(i int64) *SubtopicCreate {
	sc.mutation.SetTopicID(i)
	return sc
}

// SetTitle sets the "title" field.
func (sc *SubtopicCreate) SetTitle(s string) *SubtopicCreate {
	sc.mutation.SetTitle(s)
	return sc
}

// SetDescription sets the "description" field.
func (sc *SubtopicCreate) SetDescription(s string) *SubtopicCreate {
	sc.mutation.SetDescription(s)
	return sc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (sc *SubtopicCreate) SetNillableDescription(s *string) *SubtopicCreate {
	if s != nil {
		sc.SetDescription(*s)
	}
	return sc
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (sc *SubtopicCreate) SetEstimatedDuration(i int) *SubtopicCreate {
	sc.mutation.SetEstimatedDuration(i)
	return sc
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (sc *SubtopicCreate) SetNillableEstimatedDuration(i *int) *SubtopicCreate {
	if i != nil {
		sc.SetEstimatedDuration(*i)
	}
	return sc
}

// Mutation returns the SubtopicMutation object of the builder.
func (sc *SubtopicCreate) Mutation() *SubtopicMutation {
	return sc.mutation
}

// Save creates the Subtopic in the database.
func (sc *SubtopicCreate) Save(ctx context.Context) (*Subtopic, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SubtopicCreate) SaveX(ctx context.Context) *Subtopic {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SubtopicCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SubtopicCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SubtopicCreate) defaults() {
	if _, ok := sc.mutation.Description(); !ok {
		v := subtopic.DefaultDescription
		sc.mutation.SetDescription(v)
	}
	if _, ok := sc.mutation.EstimatedDuration(); !ok {
		v := subtopic.DefaultEstimatedDuration
		sc.mutation.SetEstimatedDuration(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SubtopicCreate) check() error {
	if _, ok := sc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Subtopic.topic_id"`)}
	}
	if _, ok := sc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Subtopic.title"`)}
	}
	if v, ok := sc.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Subtopic.description"`)}
	}
	if _, ok := sc.mutation.EstimatedDuration(); !ok {
		return &ValidationError{Name: "estimated_duration", err: errors.New(`ent: missing required field "Subtopic.estimated_duration"`)}
	}
	return nil
}

func (sc *SubtopicCreate) sqlSave(ctx context.Context) (*Subtopic, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SubtopicCreate) createSpec() (*Subtopic, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtopic{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(subtopic.Table, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt64, value)
		_node.TopicID = value
	}
	if value, ok := sc.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := sc.mutation.Description(); ok {
		_spec.SetField(subtopic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := sc.mutation.EstimatedDuration(); ok {
		_spec.SetField(subtopic.FieldEstimatedDuration, field.TypeInt, value)
		_node.EstimatedDuration = value
	}
	return _node, _spec
}

// SubtopicCreateBulk is the builder for creating many Subtopic entities in bulk.
type SubtopicCreateBulk struct {
	config
	err      error
	builders []*SubtopicCreate
}

// Save creates the Subtopic entities in the database.
func (scb *SubtopicCreateBulk) Save(ctx context.Context) ([]*Subtopic, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Subtopic, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SubtopicCreateBulk) SaveX(ctx context.Context) []*Subtopic {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SubtopicCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SubtopicCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
