// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
)

// TopicConfidenceCreate is the builder for creating a TopicConfidence entity.
type TopicConfidenceCreate struct {
	config
	mutation *TopicConfidenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (tcc *TopicConfidenceCreate) SetUserID(i int64) *TopicConfidenceCreate {
	tcc.mutation.SetUserID(i)
	return tcc
}

// SetTopicID sets the "topic_id" field.
func (tcc *TopicConfidenceCreate) SetTopicID(i int64) *TopicConfidenceCreate {
	tcc.mutation.SetTopicID(i)
	return tcc
}

// SetPercent sets the "percent" field.
func (tcc *TopicConfidenceCreate) SetPercent(i int) *TopicConfidenceCreate {
	tcc.mutation.SetPercent(i)
	return tcc
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (tcc *TopicConfidenceCreate) SetNillablePercent(i *int) *TopicConfidenceCreate {
	if i != nil {
		tcc.SetPercent(*i)
	}
	return tcc
}

// SetPriority sets the "priority" field.
func (tcc *TopicConfidenceCreate) SetPriority(b bool) *TopicConfidenceCreate {
	tcc.mutation.SetPriority(b)
	return tcc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tcc *TopicConfidenceCreate) SetNillablePriority(b *bool) *TopicConfidenceCreate {
	if b != nil {
		tcc.SetPriority(*b)
	}
	return tcc
}

// SetLastUpdated sets the "last_updated" field.
func (tcc *TopicConfidenceCreate) SetLastUpdated(t time.Time) *TopicConfidenceCreate {
	tcc.mutation.SetLastUpdated(t)
	return tcc
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (tcc *TopicConfidenceCreate) SetNillableLastUpdated(t *time.Time) *TopicConfidenceCreate {
	if t != nil {
		tcc.SetLastUpdated(*t)
	}
	return tcc
}

// Mutation returns the TopicConfidenceMutation object of the builder.
func (tcc *TopicConfidenceCreate) Mutation() *TopicConfidenceMutation {
	return tcc.mutation
}

// Save creates the TopicConfidence in the database.
func (tcc *TopicConfidenceCreate) Save(ctx context.Context) (*TopicConfidence, error) {
	tcc.defaults()
	return withHooks(ctx, tcc.sqlSave, tcc.mutation, tcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tcc *TopicConfidenceCreate) SaveX(ctx context.Context) *TopicConfidence {
	v, err := tcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcc *TopicConfidenceCreate) Exec(ctx context.Context) error {
	_, err := tcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcc *TopicConfidenceCreate) ExecX(ctx context.Context) {
	if err := tcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tcc *TopicConfidenceCreate) defaults() {
	if _, ok := tcc.mutation.Percent(); !ok {
		v := topicconfidence.DefaultPercent
		tcc.mutation.SetPercent(v)
	}
	if _, ok := tcc.mutation.Priority(); !ok {
		v := topicconfidence.DefaultPriority
		tcc.mutation.SetPriority(v)
	}
	if _, ok := tcc.mutation.LastUpdated(); !ok {
		v := topicconfidence.DefaultLastUpdated()
		tcc.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tcc *TopicConfidenceCreate) check() error {
	if _, ok := tcc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicConfidence.user_id"`)}
	}
	if _, ok := tcc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicConfidence.topic_id"`)}
	}
	if _, ok := tcc.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "TopicConfidence.percent"`)}
	}
	if _, ok := tcc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TopicConfidence.priority"`)}
	}
	if _, ok := tcc.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "TopicConfidence.last_updated"`)}
	}
	return nil
}

func (tcc *TopicConfidenceCreate) sqlSave(ctx context.Context) (*TopicConfidence, error) {
	if err := tcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tcc.mutation.id = &_node.ID
	tcc.mutation.done = true
	return _node, nil
}

func (tcc *TopicConfidenceCreate) createSpec() (*TopicConfidence, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicConfidence{config: tcc.config}
		_spec = sqlgraph.NewCreateSpec(topicconfidence.Table, sqlgraph.NewFieldSpec(topicconfidence.FieldID, field.TypeInt))
	)
	if value, ok := tcc.mutation.UserID(); ok {
		_spec.SetField(topicconfidence.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := tcc.mutation.TopicID(); ok {
		_spec.SetField(topicconfidence.FieldTopicID, field.TypeInt64, value)
		_node.TopicID = value
	}
	if value, ok := tcc.mutation.Percent(); ok {
		_spec.SetField(topicconfidence.FieldPercent, field.TypeInt, value)
		_node.Percent = value
	}
	if value, ok := tcc.mutation.Priority(); ok {
		_spec.SetField(topicconfidence.FieldPriority, field.TypeBool, value)
		_node.Priority = value
	}
	if value, ok := tcc.mutation.LastUpdated(); ok {
		_spec.SetField(topicconfidence.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// TopicConfidenceCreateBulk is the builder for creating many TopicConfidence entities in bulk.
type TopicConfidenceCreateBulk struct {
	config
	err      error
	builders []*TopicConfidenceCreate
}

// Save creates the TopicConfidence entities in the database.
func (tccb *TopicConfidenceCreateBulk) Save(ctx context.Context) ([]*TopicConfidence, error) {
	if tccb.err != nil {
		return nil, tccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tccb.builders))
	nodes := make([]*TopicConfidence, len(tccb.builders))
	mutators := make([]Mutator, len(tccb.builders))
	for i := range tccb.builders {
		func(i int, root context.Context) {
			builder := tccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicConfidenceMutation)
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
					_, err = mutators[i+1].Mutate(root, tccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tccb *TopicConfidenceCreateBulk) SaveX(ctx context.Context) []*TopicConfidence {
	v, err := tccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tccb *TopicConfidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := tccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tccb *TopicConfidenceCreateBulk) ExecX(ctx context.Context) {
	if err := tccb.Exec(ctx); err != nil {
		panic(err)
	}
}
