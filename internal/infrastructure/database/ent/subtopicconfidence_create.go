// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
)

// SubtopicConfidenceCreate is the builder for creating a SubtopicConfidence entity.
type SubtopicConfidenceCreate struct {
	config
	mutation *SubtopicConfidenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (scc *SubtopicConfidenceCreate) SetUserID(i int64) *SubtopicConfidenceCreate {
	scc.mutation.SetUserID(i)
	return scc
}

// SetSubtopicID sets the "subtopic_id" field.
func (scc *SubtopicConfidenceCreate) SetSubtopicID(i int64) *SubtopicConfidenceCreate {
	scc.mutation.SetSubtopicID(i)
	return scc
}

// SetLevel sets the "level" field.
func (scc *SubtopicConfidenceCreate) SetLevel(i int) *SubtopicConfidenceCreate {
	scc.mutation.SetLevel(i)
	return scc
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (scc *SubtopicConfidenceCreate) SetNillableLevel(i *int) *SubtopicConfidenceCreate {
	if i != nil {
		scc.SetLevel(*i)
	}
	return scc
}

// SetPriority sets the "priority" field.
func (scc *SubtopicConfidenceCreate) SetPriority(b bool) *SubtopicConfidenceCreate {
	scc.mutation.SetPriority(b)
	return scc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (scc *SubtopicConfidenceCreate) SetNillablePriority(b *bool) *SubtopicConfidenceCreate {
	if b != nil {
		scc.SetPriority(*b)
	}
	return scc
}

// SetLastUpdated sets the "last_updated" field.
func (scc *SubtopicConfidenceCreate) SetLastUpdated(t time.Time) *SubtopicConfidenceCreate {
	scc.mutation.SetLastUpdated(t)
	return scc
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (scc *SubtopicConfidenceCreate) SetNillableLastUpdated(t *time.Time) *SubtopicConfidenceCreate {
	if t != nil {
		scc.SetLastUpdated(*t)
	}
	return scc
}

// SetLastAddressed sets the "last_addressed" field.
func (scc *SubtopicConfidenceCreate) SetLastAddressed(t time.Time) *SubtopicConfidenceCreate {
	scc.mutation.SetLastAddressed(t)
	return scc
}

// SetNillableLastAddressed sets the "last_addressed" field if the given value is not nil.
func (scc *SubtopicConfidenceCreate) SetNillableLastAddressed(t *time.Time) *SubtopicConfidenceCreate {
	if t != nil {
		scc.SetLastAddressed(*t)
	}
	return scc
}

// Mutation returns the SubtopicConfidenceMutation object of the builder.
func (scc *SubtopicConfidenceCreate) Mutation() *SubtopicConfidenceMutation {
	return scc.mutation
}

// Save creates the SubtopicConfidence in the database.
func (scc *SubtopicConfidenceCreate) Save(ctx context.Context) (*SubtopicConfidence, error) {
	scc.defaults()
	return withHooks(ctx, scc.sqlSave, scc.mutation, scc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (scc *SubtopicConfidenceCreate) SaveX(ctx context.Context) *SubtopicConfidence {
	v, err := scc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scc *SubtopicConfidenceCreate) Exec(ctx context.Context) error {
	_, err := scc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scc *SubtopicConfidenceCreate) ExecX(ctx context.Context) {
	if err := scc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (scc *SubtopicConfidenceCreate) defaults() {
	if _, ok := scc.mutation.Level(); !ok {
		v := subtopicconfidence.DefaultLevel
		scc.mutation.SetLevel(v)
	}
	if _, ok := scc.mutation.Priority(); !ok {
		v := subtopicconfidence.DefaultPriority
		scc.mutation.SetPriority(v)
	}
	if _, ok := scc.mutation.LastUpdated(); !ok {
		v := subtopicconfidence.DefaultLastUpdated()
		scc.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (scc *SubtopicConfidenceCreate) check() error {
	if _, ok := scc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubtopicConfidence.user_id"`)}
	}
	if _, ok := scc.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "SubtopicConfidence.subtopic_id"`)}
	}
	if _, ok := scc.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SubtopicConfidence.level"`)}
	}
	if _, ok := scc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "SubtopicConfidence.priority"`)}
	}
	if _, ok := scc.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "SubtopicConfidence.last_updated"`)}
	}
	return nil
}

func (scc *SubtopicConfidenceCreate) sqlSave(ctx context.Context) (*SubtopicConfidence, error) {
	if err := scc.check(); err != nil {
		return nil, err
	}
	_node, _spec := scc.createSpec()
	if err := sqlgraph.CreateNode(ctx, scc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	scc.mutation.id = &_node.ID
	scc.mutation.done = true
	return _node, nil
}

func (scc *SubtopicConfidenceCreate) createSpec() (*SubtopicConfidence, *sqlgraph.CreateSpec) {
	var (
		_node = &SubtopicConfidence{config: scc.config}
		_spec = sqlgraph.NewCreateSpec(subtopicconfidence.Table, sqlgraph.NewFieldSpec(subtopicconfidence.FieldID, field.TypeInt))
	)
	if value, ok := scc.mutation.UserID(); ok {
		_spec.SetField(subtopicconfidence.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := scc.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicconfidence.FieldSubtopicID, field.TypeInt64, value)
		_node.SubtopicID = value
	}
	if value, ok := scc.mutation.Level(); ok {
		_spec.SetField(subtopicconfidence.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := scc.mutation.Priority(); ok {
		_spec.SetField(subtopicconfidence.FieldPriority, field.TypeBool, value)
		_node.Priority = value
	}
	if value, ok := scc.mutation.LastUpdated(); ok {
		_spec.SetField(subtopicconfidence.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := scc.mutation.LastAddressed(); ok {
		_spec.SetField(subtopicconfidence.FieldLastAddressed, field.TypeTime, value)
		_node.LastAddressed = &value
	}
	return _node, _spec
}

// SubtopicConfidenceCreateBulk is the builder for creating many SubtopicConfidence entities in bulk.
type SubtopicConfidenceCreateBulk struct {
	config
	err      error
	builders []*SubtopicConfidenceCreate
}

// Save creates the SubtopicConfidence entities in the database.
func (sccb *SubtopicConfidenceCreateBulk) Save(ctx context.Context) ([]*SubtopicConfidence, error) {
	if sccb.err != nil {
		return nil, sccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sccb.builders))
	nodes := make([]*SubtopicConfidence, len(sccb.builders))
	mutators := make([]Mutator, len(sccb.builders))
	for i := range sccb.builders {
		func(i int, root context.Context) {
			builder := sccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicConfidenceMutation)
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
					_, err = mutators[i+1].Mutate(root, sccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sccb *SubtopicConfidenceCreateBulk) SaveX(ctx context.Context) []*SubtopicConfidence {
	v, err := sccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sccb *SubtopicConfidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := sccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sccb *SubtopicConfidenceCreateBulk) ExecX(ctx context.Context) {
	if err := sccb.Exec(ctx); err != nil {
		panic(err)
	}
}
