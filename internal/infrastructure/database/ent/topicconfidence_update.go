// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
)

// TopicConfidenceUpdate is the builder for updating TopicConfidence entities.
type TopicConfidenceUpdate struct {
	config
	hooks    []Hook
	mutation *TopicConfidenceMutation
}

// Where appends a list predicates to the TopicConfidenceUpdate builder.
func (tcu *TopicConfidenceUpdate) Where(ps ...predicate.TopicConfidence) *TopicConfidenceUpdate {
	tcu.mutation.Where(ps...)
	return tcu
}

// SetUserID sets the "user_id" field.
func (tcu *TopicConfidenceUpdate) SetUserID(i int64) *TopicConfidenceUpdate {
	tcu.mutation.ResetUserID()
	tcu.mutation.SetUserID(i)
	return tcu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tcu *TopicConfidenceUpdate) SetNillableUserID(i *int64) *TopicConfidenceUpdate {
	if i != nil {
		tcu.SetUserID(*i)
	}
	return tcu
}

// AddUserID adds i to the "user_id" field.
func (tcu *TopicConfidenceUpdate) AddUserID(i int64) *TopicConfidenceUpdate {
	tcu.mutation.AddUserID(i)
	return tcu
}

// SetTopicID sets the "topic_id" field.
func (tcu *TopicConfidenceUpdate) SetTopicID(i int64) *TopicConfidenceUpdate {
	tcu.mutation.ResetTopicID()
	tcu.mutation.SetTopicID(i)
	return tcu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tcu *TopicConfidenceUpdate) SetNillableTopicID(i *int64) *TopicConfidenceUpdate {
	if i != nil {
		tcu.SetTopicID(*i)
	}
	return tcu
}

// AddTopicID adds i to the "topic_id" field.
func (tcu *TopicConfidenceUpdate) AddTopicID(i int64) *TopicConfidenceUpdate {
	tcu.mutation.AddTopicID(i)
	return tcu
}

// SetPercent sets the "percent" field.
func (tcu *TopicConfidenceUpdate) SetPercent(i int) *TopicConfidenceUpdate {
	tcu.mutation.ResetPercent()
	tcu.mutation.SetPercent(i)
	return tcu
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (tcu *TopicConfidenceUpdate) SetNillablePercent(i *int) *TopicConfidenceUpdate {
	if i != nil {
		tcu.SetPercent(*i)
	}
	return tcu
}

// AddPercent adds i to the "percent" field.
func (tcu *TopicConfidenceUpdate) AddPercent(i int) *TopicConfidenceUpdate {
	tcu.mutation.AddPercent(i)
	return tcu
}

// SetPriority sets the "priority" field.
func (tcu *TopicConfidenceUpdate) SetPriority(b bool) *TopicConfidenceUpdate {
	tcu.mutation.SetPriority(b)
	return tcu
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tcu *TopicConfidenceUpdate) SetNillablePriority(b *bool) *TopicConfidenceUpdate {
	if b != nil {
		tcu.SetPriority(*b)
	}
	return tcu
}

// SetLastUpdated sets the "last_updated" field.
func (tcu *TopicConfidenceUpdate) SetLastUpdated(t time.Time) *TopicConfidenceUpdate {
	tcu.mutation.SetLastUpdated(t)
	return tcu
}

// Mutation returns the TopicConfidenceMutation object of the builder.
func (tcu *TopicConfidenceUpdate) Mutation() *TopicConfidenceMutation {
	return tcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tcu *TopicConfidenceUpdate) Save(ctx context.Context) (int, error) {
	tcu.defaults()
	return withHooks(ctx, tcu.sqlSave, tcu.mutation, tcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tcu *TopicConfidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := tcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tcu *TopicConfidenceUpdate) Exec(ctx context.Context) error {
	_, err := tcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcu *TopicConfidenceUpdate) ExecX(ctx context.Context) {
	if err := tcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tcu *TopicConfidenceUpdate) defaults() {
	if _, ok := tcu.mutation.LastUpdated(); !ok {
		v := topicconfidence.UpdateDefaultLastUpdated()
		tcu.mutation.SetLastUpdated(v)
	}
}

func (tcu *TopicConfidenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicconfidence.Table, topicconfidence.Columns, sqlgraph.NewFieldSpec(topicconfidence.FieldID, field.TypeInt))
	if ps := tcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tcu.mutation.UserID(); ok {
		_spec.SetField(topicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tcu.mutation.AddedUserID(); ok {
		_spec.AddField(topicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tcu.mutation.TopicID(); ok {
		_spec.SetField(topicconfidence.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tcu.mutation.AddedTopicID(); ok {
		_spec.AddField(topicconfidence.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tcu.mutation.Percent(); ok {
		_spec.SetField(topicconfidence.FieldPercent, field.TypeInt, value)
	}
	if value, ok := tcu.mutation.AddedPercent(); ok {
		_spec.AddField(topicconfidence.FieldPercent, field.TypeInt, value)
	}
	if value, ok := tcu.mutation.Priority(); ok {
		_spec.SetField(topicconfidence.FieldPriority, field.TypeBool, value)
	}
	if value, ok := tcu.mutation.LastUpdated(); ok {
		_spec.SetField(topicconfidence.FieldLastUpdated, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicconfidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tcu.mutation.done = true
	return n, nil
}

// TopicConfidenceUpdateOne is the builder for updating a single TopicConfidence entity.
type TopicConfidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicConfidenceMutation
}

// SetUserID sets the "user_id" field.
func (tcuo *TopicConfidenceUpdateOne) SetUserID(i int64) *TopicConfidenceUpdateOne {
	tcuo.mutation.ResetUserID()
	tcuo.mutation.SetUserID(i)
	return tcuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tcuo *TopicConfidenceUpdateOne) SetNillableUserID(i *int64) *TopicConfidenceUpdateOne {
	if i != nil {
		tcuo.SetUserID(*i)
	}
	return tcuo
}

// AddUserID adds i to the "user_id" field.
func (tcuo *TopicConfidenceUpdateOne) AddUserID(i int64) *TopicConfidenceUpdateOne {
	tcuo.mutation.AddUserID(i)
	return tcuo
}

// SetTopicID sets the "topic_id" field.
func (tcuo *TopicConfidenceUpdateOne) SetTopicID(i int64) *TopicConfidenceUpdateOne {
	tcuo.mutation.ResetTopicID()
	tcuo.mutation.SetTopicID(i)
	return tcuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tcuo *TopicConfidenceUpdateOne) SetNillableTopicID(i *int64) *TopicConfidenceUpdateOne {
	if i != nil {
		tcuo.SetTopicID(*i)
	}
	return tcuo
}

// AddTopicID adds i to the "topic_id" field.
func (tcuo *TopicConfidenceUpdateOne) AddTopicID(i int64) *TopicConfidenceUpdateOne {
	tcuo.mutation.AddTopicID(i)
	return tcuo
}

// SetPercent sets the "percent" field.
func (tcuo *TopicConfidenceUpdateOne) SetPercent(i int) *TopicConfidenceUpdateOne {
	tcuo.mutation.ResetPercent()
	tcuo.mutation.SetPercent(i)
	return tcuo
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (tcuo *TopicConfidenceUpdateOne) SetNillablePercent(i *int) *TopicConfidenceUpdateOne {
	if i != nil {
		tcuo.SetPercent(*i)
	}
	return tcuo
}

// AddPercent adds i to the "percent" field.
func (tcuo *TopicConfidenceUpdateOne) AddPercent(i int) *TopicConfidenceUpdateOne {
	tcuo.mutation.AddPercent(i)
	return tcuo
}

// SetPriority sets the "priority" field.
func (tcuo *TopicConfidenceUpdateOne) SetPriority(b bool) *TopicConfidenceUpdateOne {
	tcuo.mutation.SetPriority(b)
	return tcuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tcuo *TopicConfidenceUpdateOne) SetNillablePriority(b *bool) *TopicConfidenceUpdateOne {
	if b != nil {
		tcuo.SetPriority(*b)
	}
	return tcuo
}

// SetLastUpdated sets the "last_updated" field.
func (tcuo *TopicConfidenceUpdateOne) SetLastUpdated(t time.Time) *TopicConfidenceUpdateOne {
	tcuo.mutation.SetLastUpdated(t)
	return tcuo
}

// Mutation returns the TopicConfidenceMutation object of the builder.
func (tcuo *TopicConfidenceUpdateOne) Mutation() *TopicConfidenceMutation {
	return tcuo.mutation
}

// Where appends a list predicates to the TopicConfidenceUpdate builder.
func (tcuo *TopicConfidenceUpdateOne) Where(ps ...predicate.TopicConfidence) *TopicConfidenceUpdateOne {
	tcuo.mutation.Where(ps...)
	return tcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tcuo *TopicConfidenceUpdateOne) Select(field string, fields ...string) *TopicConfidenceUpdateOne {
	tcuo.fields = append([]string{field}, fields...)
	return tcuo
}

// Save executes the query and returns the updated TopicConfidence entity.
func (tcuo *TopicConfidenceUpdateOne) Save(ctx context.Context) (*TopicConfidence, error) {
	tcuo.defaults()
	return withHooks(ctx, tcuo.sqlSave, tcuo.mutation, tcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tcuo *TopicConfidenceUpdateOne) SaveX(ctx context.Context) *TopicConfidence {
	node, err := tcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tcuo *TopicConfidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := tcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcuo *TopicConfidenceUpdateOne) ExecX(ctx context.Context) {
	if err := tcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tcuo *TopicConfidenceUpdateOne) defaults() {
	if _, ok := tcuo.mutation.LastUpdated(); !ok {
		v := topicconfidence.UpdateDefaultLastUpdated()
		tcuo.mutation.SetLastUpdated(v)
	}
}

func (tcuo *TopicConfidenceUpdateOne) sqlSave(ctx context.Context) (_node *TopicConfidence, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicconfidence.Table, topicconfidence.Columns, sqlgraph.NewFieldSpec(topicconfidence.FieldID, field.TypeInt))
	id, ok := tcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicConfidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicconfidence.FieldID)
		for _, f := range fields {
			if !topicconfidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicconfidence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tcuo.mutation.UserID(); ok {
		_spec.SetField(topicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tcuo.mutation.AddedUserID(); ok {
		_spec.AddField(topicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := tcuo.mutation.TopicID(); ok {
		_spec.SetField(topicconfidence.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tcuo.mutation.AddedTopicID(); ok {
		_spec.AddField(topicconfidence.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tcuo.mutation.Percent(); ok {
		_spec.SetField(topicconfidence.FieldPercent, field.TypeInt, value)
	}
	if value, ok := tcuo.mutation.AddedPercent(); ok {
		_spec.AddField(topicconfidence.FieldPercent, field.TypeInt, value)
	}
	if value, ok := tcuo.mutation.Priority(); ok {
		_spec.SetField(topicconfidence.FieldPriority, field.TypeBool, value)
	}
	if value, ok := tcuo.mutation.LastUpdated(); ok {
		_spec.SetField(topicconfidence.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &TopicConfidence{config: tcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicconfidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tcuo.mutation.done = true
	return _node, nil
}
