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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (tu *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetSubjectID sets the "subject_id" field.
func (tu *TopicUpdate) SetSubjectID(i int64) *TopicUpdate {
	tu.mutation.ResetSubjectID()
	tu.mutation.SetSubjectID(i)
	return tu
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableSubjectID(i *int64) *TopicUpdate {
	if i != nil {
		tu.SetSubjectID(*i)
	}
	return tu
}

// AddSubjectID adds i to the "subject_id" field.
func (tu *TopicUpdate) AddSubjectID(i int64) *TopicUpdate {
	tu.mutation.AddSubjectID(i)
	return tu
}

// SetParentTopicID sets the "parent_topic_id" field.
func (tu *TopicUpdate) SetParentTopicID(i int64) *TopicUpdate {
	tu.mutation.ResetParentTopicID()
	tu.mutation.SetParentTopicID(i)
	return tu
}

// SetNillableParentTopicID sets the "parent_topic_id" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableParentTopicID(i *int64) *TopicUpdate {
	if i != nil {
		tu.SetParentTopicID(*i)
	}
	return tu
}

// AddParentTopicID adds i to the "parent_topic_id" field.
func (tu *TopicUpdate) AddParentTopicID(i int64) *TopicUpdate {
	tu.mutation.AddParentTopicID(i)
	return tu
}

// ClearParentTopicID clears the value of the "parent_topic_id" field.
func (tu *TopicUpdate) ClearParentTopicID() *TopicUpdate {
	tu.mutation.ClearParentTopicID()
	return tu
}

// SetTitle sets the "title" field.
func (tu *TopicUpdate) SetTitle(s string) *TopicUpdate {
	tu.mutation.SetTitle(s)
	return tu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableTitle(s *string) *TopicUpdate {
	if s != nil {
		tu.SetTitle(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TopicUpdate) SetDescription(s string) *TopicUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TopicUpdate) SetNillableDescription(s *string) *TopicUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// Mutation returns the TopicMutation object of the builder.
func (tu *TopicUpdate) Mutation() *TopicMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TopicUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TopicUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TopicUpdate) check() error {
	if v, ok := tu.mutation.Title(); ok {
		if err := topic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Topic.title": %w`, err)}
		}
	}
	return nil
}

func (tu *TopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.SubjectID(); ok {
		_spec.SetField(topic.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedSubjectID(); ok {
		_spec.AddField(topic.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.ParentTopicID(); ok {
		_spec.SetField(topic.FieldParentTopicID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedParentTopicID(); ok {
		_spec.AddField(topic.FieldParentTopicID, field.TypeInt64, value)
	}
	if tu.mutation.ParentTopicIDCleared() {
		_spec.ClearField(topic.FieldParentTopicID, field.TypeInt64)
	}
	if value, ok := tu.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetSubjectID sets the "subject_id" field.
func (tuo *TopicUpdateOne) SetSubjectID(i int64) *TopicUpdateOne {
	tuo.mutation.ResetSubjectID()
	tuo.mutation.SetSubjectID(i)
	return tuo
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableSubjectID(i *int64) *TopicUpdateOne {
	if i != nil {
		tuo.SetSubjectID(*i)
	}
	return tuo
}

// AddSubjectID adds i to the "subject_id" field.
func (tuo *TopicUpdateOne) AddSubjectID(i int64) *TopicUpdateOne {
	tuo.mutation.AddSubjectID(i)
	return tuo
}

// SetParentTopicID sets the "parent_topic_id" field.
func (tuo *TopicUpdateOne) SetParentTopicID(i int64) *TopicUpdateOne {
	tuo.mutation.ResetParentTopicID()
	tuo.mutation.SetParentTopicID(i)
	return tuo
}

// SetNillableParentTopicID sets the "parent_topic_id" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableParentTopicID(i *int64) *TopicUpdateOne {
	if i != nil {
		tuo.SetParentTopicID(*i)
	}
	return tuo
}

// AddParentTopicID adds i to the "parent_topic_id" field.
func (tuo *TopicUpdateOne) AddParentTopicID(i int64) *TopicUpdateOne {
	tuo.mutation.AddParentTopicID(i)
	return tuo
}

// ClearParentTopicID clears the value of the "parent_topic_id" field.
func (tuo *TopicUpdateOne) ClearParentTopicID() *TopicUpdateOne {
	tuo.mutation.ClearParentTopicID()
	return tuo
}

// SetTitle sets the "title" field.
func (tuo *TopicUpdateOne) SetTitle(s string) *TopicUpdateOne {
	tuo.mutation.SetTitle(s)
	return tuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableTitle(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetTitle(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TopicUpdateOne) SetDescription(s string) *TopicUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TopicUpdateOne) SetNillableDescription(s *string) *TopicUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// Mutation returns the TopicMutation object of the builder.
func (tuo *TopicUpdateOne) Mutation() *TopicMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (tuo *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Topic entity.
func (tuo *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TopicUpdateOne) check() error {
	if v, ok := tuo.mutation.Title(); ok {
		if err := topic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Topic.title": %w`, err)}
		}
	}
	return nil
}

func (tuo *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.SubjectID(); ok {
		_spec.SetField(topic.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedSubjectID(); ok {
		_spec.AddField(topic.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.ParentTopicID(); ok {
		_spec.SetField(topic.FieldParentTopicID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedParentTopicID(); ok {
		_spec.AddField(topic.FieldParentTopicID, field.TypeInt64, value)
	}
	if tuo.mutation.ParentTopicIDCleared() {
		_spec.ClearField(topic.FieldParentTopicID, field.TypeInt64)
	}
	if value, ok := tuo.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	_node = &Topic{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
