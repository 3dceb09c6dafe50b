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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (su *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetTopicID sets the "topic_id" field.
func (su *SubtopicUpdate) SetTopicID(i int64) *SubtopicUpdate {
	su.mutation.ResetTopicID()
	su.mutation.SetTopicID(i)
	return su
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableTopicID(i *int64) *SubtopicUpdate {
	if i != nil {
		su.SetTopicID(*i)
	}
	return su
}

// AddTopicID adds i to the "topic_id" field.
func (su *SubtopicUpdate) AddTopicID(i int64) *SubtopicUpdate {
	su.mutation.AddTopicID(i)
	return su
}

// SetTitle sets the "title" field.
func (su *SubtopicUpdate) SetTitle(s string) *SubtopicUpdate {
	su.mutation.SetTitle(s)
	return su
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableTitle(s *string) *SubtopicUpdate {
	if s != nil {
		su.SetTitle(*s)
	}
	return su
}

// SetDescription sets the "description" field.
func (su *SubtopicUpdate) SetDescription(s string) *SubtopicUpdate {
	su.mutation.SetDescription(s)
	return su
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableDescription(s *string) *SubtopicUpdate {
	if s != nil {
		su.SetDescription(*s)
	}
	return su
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (su *SubtopicUpdate) SetEstimatedDuration(i int) *SubtopicUpdate {
	su.mutation.ResetEstimatedDuration()
	su.mutation.SetEstimatedDuration(i)
	return su
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableEstimatedDuration(i *int) *SubtopicUpdate {
	if i != nil {
		su.SetEstimatedDuration(*i)
	}
	return su
}

// AddEstimatedDuration adds i to the "estimated_duration" field.
func (su *SubtopicUpdate) AddEstimatedDuration(i int) *SubtopicUpdate {
	su.mutation.AddEstimatedDuration(i)
	return su
}

// Mutation returns the SubtopicMutation object of the builder.
func (su *SubtopicUpdate) Mutation() *SubtopicMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SubtopicUpdate) check() error {
	if v, ok := su.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	return nil
}

func (su *SubtopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := su.mutation.AddedTopicID(); ok {
		_spec.AddField(subtopic.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := su.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := su.mutation.Description(); ok {
		_spec.SetField(subtopic.FieldDescription, field.TypeString, value)
	}
	if value, ok := su.mutation.EstimatedDuration(); ok {
		_spec.SetField(subtopic.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedEstimatedDuration(); ok {
		_spec.AddField(subtopic.FieldEstimatedDuration, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetTopicID sets the "topic_id" field.
func (suo *SubtopicUpdateOne) SetTopicID(i int64) *SubtopicUpdateOne {
	suo.mutation.ResetTopicID()
	suo.mutation.SetTopicID(i)
	return suo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableTopicID(i *int64) *SubtopicUpdateOne {
	if i != nil {
		suo.SetTopicID(*i)
	}
	return suo
}

// AddTopicID adds i to the "topic_id" field.
func (suo *SubtopicUpdateOne) AddTopicID(i int64) *SubtopicUpdateOne {
	suo.mutation.AddTopicID(i)
	return suo
}

// SetTitle sets the "title" field.
func (suo *SubtopicUpdateOne) SetTitle(s string) *SubtopicUpdateOne {
	suo.mutation.SetTitle(s)
	return suo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableTitle(s *string) *SubtopicUpdateOne {
	if s != nil {
		suo.SetTitle(*s)
	}
	return suo
}

// SetDescription sets the "description" field.
func (suo *SubtopicUpdateOne) SetDescription(s string) *SubtopicUpdateOne {
	suo.mutation.SetDescription(s)
	return suo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableDescription(s *string) *SubtopicUpdateOne {
	if s != nil {
		suo.SetDescription(*s)
	}
	return suo
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (suo *SubtopicUpdateOne) SetEstimatedDuration(i int) *SubtopicUpdateOne {
	suo.mutation.ResetEstimatedDuration()
	suo.mutation.SetEstimatedDuration(i)
	return suo
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableEstimatedDuration(i *int) *SubtopicUpdateOne {
	if i != nil {
		suo.SetEstimatedDuration(*i)
	}
	return suo
}

// AddEstimatedDuration adds i to the "estimated_duration" field.
func (suo *SubtopicUpdateOne) AddEstimatedDuration(i int) *SubtopicUpdateOne {
	suo.mutation.AddEstimatedDuration(i)
	return suo
}

// Mutation returns the SubtopicMutation object of the builder.
func (suo *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return suo.mutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (suo *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Subtopic entity.
func (suo *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SubtopicUpdateOne) check() error {
	if v, ok := suo.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	return nil
}

func (suo *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.AddedTopicID(); ok {
		_spec.AddField(subtopic.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := suo.mutation.Description(); ok {
		_spec.SetField(subtopic.FieldDescription, field.TypeString, value)
	}
	if value, ok := suo.mutation.EstimatedDuration(); ok {
		_spec.SetField(subtopic.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedEstimatedDuration(); ok {
		_spec.AddField(subtopic.FieldEstimatedDuration, field.TypeInt, value)
	}
	_node = &Subtopic{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
