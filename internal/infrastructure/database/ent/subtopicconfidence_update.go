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
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
)

// SubtopicConfidenceUpdate is the builder for updating SubtopicConfidence entities.
type SubtopicConfidenceUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicConfidenceMutation
}

// Where appends a list predicates to the SubtopicConfidenceUpdate builder.
func (scu *SubtopicConfidenceUpdate) Where(ps ...predicate.SubtopicConfidence) *SubtopicConfidenceUpdate {
	scu.mutation.Where(ps...)
	return scu
}

// SetUserID sets the "user_id" field.
func (scu *SubtopicConfidenceUpdate) SetUserID(i int64) *SubtopicConfidenceUpdate {
	scu.mutation.ResetUserID()
	scu.mutation.SetUserID(i)
	return scu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (scu *SubtopicConfidenceUpdate) SetNillableUserID(i *int64) *SubtopicConfidenceUpdate {
	if i != nil {
		scu.SetUserID(*i)
	}
	return scu
}

// AddUserID adds i to the "user_id" field.
func (scu *SubtopicConfidenceUpdate) AddUserID(i int64) *SubtopicConfidenceUpdate {
	scu.mutation.AddUserID(i)
	return scu
}

// SetSubtopicID sets the "subtopic_id" field.
func (scu *SubtopicConfidenceUpdate) SetSubtopicID(i int64) *SubtopicConfidenceUpdate {
	scu.mutation.ResetSubtopicID()
	scu.mutation.SetSubtopicID(i)
	return scu
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (scu *SubtopicConfidenceUpdate) SetNillableSubtopicID(i *int64) *SubtopicConfidenceUpdate {
	if i != nil {
		scu.SetSubtopicID(*i)
	}
	return scu
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (scu *SubtopicConfidenceUpdate) AddSubtopicID(i int64) *SubtopicConfidenceUpdate {
	scu.mutation.AddSubtopicID(i)
	return scu
}

// SetLevel sets the "level" field.
func (scu *SubtopicConfidenceUpdate) SetLevel(i int) *SubtopicConfidenceUpdate {
	scu.mutation.ResetLevel()
	scu.mutation.SetLevel(i)
	return scu
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (scu *SubtopicConfidenceUpdate) SetNillableLevel(i *int) *SubtopicConfidenceUpdate {
	if i != nil {
		scu.SetLevel(*i)
	}
	return scu
}

// AddLevel adds i to the "level" field.
func (scu *SubtopicConfidenceUpdate) AddLevel(i int) *SubtopicConfidenceUpdate {
	scu.mutation.AddLevel(i)
	return scu
}

// SetPriority sets the "priority" field.
func (scu *SubtopicConfidenceUpdate) SetPriority(b bool) *SubtopicConfidenceUpdate {
	scu.mutation.SetPriority(b)
	return scu
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (scu *SubtopicConfidenceUpdate) SetNillablePriority(b *bool) *SubtopicConfidenceUpdate {
	if b != nil {
		scu.SetPriority(*b)
	}
	return scu
}

// SetLastUpdated sets the "last_updated" field.
func (scu *SubtopicConfidenceUpdate) SetLastUpdated(t time.Time) *SubtopicConfidenceUpdate {
	scu.mutation.SetLastUpdated(t)
	return scu
}

// SetLastAddressed sets the "last_addressed" field.
func (scu *SubtopicConfidenceUpdate) SetLastAddressed(t time.Time) *SubtopicConfidenceUpdate {
	scu.mutation.SetLastAddressed(t)
	return scu
}

// SetNillableLastAddressed sets the "last_addressed" field if the given value is not nil.
func (scu *SubtopicConfidenceUpdate) SetNillableLastAddressed(t *time.Time) *SubtopicConfidenceUpdate {
	if t != nil {
		scu.SetLastAddressed(*t)
	}
	return scu
}

// ClearLastAddressed clears the value of the "last_addressed" field.
func (scu *SubtopicConfidenceUpdate) ClearLastAddressed() *SubtopicConfidenceUpdate {
	scu.mutation.ClearLastAddressed()
	return scu
}

// Mutation returns the SubtopicConfidenceMutation object of the builder.
func (scu *SubtopicConfidenceUpdate) Mutation() *SubtopicConfidenceMutation {
	return scu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (scu *SubtopicConfidenceUpdate) Save(ctx context.Context) (int, error) {
	scu.defaults()
	return withHooks(ctx, scu.sqlSave, scu.mutation, scu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (scu *SubtopicConfidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := scu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (scu *SubtopicConfidenceUpdate) Exec(ctx context.Context) error {
	_, err := scu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scu *SubtopicConfidenceUpdate) ExecX(ctx context.Context) {
	if err := scu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (scu *SubtopicConfidenceUpdate) defaults() {
	if _, ok := scu.mutation.LastUpdated(); !ok {
		v := subtopicconfidence.UpdateDefaultLastUpdated()
		scu.mutation.SetLastUpdated(v)
	}
}

func (scu *SubtopicConfidenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(subtopicconfidence.Table, subtopicconfidence.Columns, sqlgraph.NewFieldSpec(subtopicconfidence.FieldID, field.TypeInt))
	if ps := scu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := scu.mutation.UserID(); ok {
		_spec.SetField(subtopicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := scu.mutation.AddedUserID(); ok {
		_spec.AddField(subtopicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := scu.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicconfidence.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := scu.mutation.AddedSubtopicID(); ok {
		_spec.AddField(subtopicconfidence.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := scu.mutation.Level(); ok {
		_spec.SetField(subtopicconfidence.FieldLevel, field.TypeInt, value)
	}
	if value, ok := scu.mutation.AddedLevel(); ok {
		_spec.AddField(subtopicconfidence.FieldLevel, field.TypeInt, value)
	}
	if value, ok := scu.mutation.Priority(); ok {
		_spec.SetField(subtopicconfidence.FieldPriority, field.TypeBool, value)
	}
	if value, ok := scu.mutation.LastUpdated(); ok {
		_spec.SetField(subtopicconfidence.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := scu.mutation.LastAddressed(); ok {
		_spec.SetField(subtopicconfidence.FieldLastAddressed, field.TypeTime, value)
	}
	if scu.mutation.LastAddressedCleared() {
		_spec.ClearField(subtopicconfidence.FieldLastAddressed, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, scu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicconfidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	scu.mutation.done = true
	return n, nil
}

// SubtopicConfidenceUpdateOne is the builder for updating a single SubtopicConfidence entity.
type SubtopicConfidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicConfidenceMutation
}

// SetUserID sets the "user_id" field.
func (scuo *SubtopicConfidenceUpdateOne) SetUserID(i int64) *SubtopicConfidenceUpdateOne {
	scuo.mutation.ResetUserID()
	scuo.mutation.SetUserID(i)
	return scuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (scuo *SubtopicConfidenceUpdateOne) SetNillableUserID(i *int64) *SubtopicConfidenceUpdateOne {
	if i != nil {
		scuo.SetUserID(*i)
	}
	return scuo
}

// AddUserID adds i to the "user_id" field.
func (scuo *SubtopicConfidenceUpdateOne) AddUserID(i int64) *SubtopicConfidenceUpdateOne {
	scuo.mutation.AddUserID(i)
	return scuo
}

// SetSubtopicID sets the "subtopic_id" field.
func (scuo *SubtopicConfidenceUpdateOne) SetSubtopicID(i int64) *SubtopicConfidenceUpdateOne {
	scuo.mutation.ResetSubtopicID()
	scuo.mutation.SetSubtopicID(i)
	return scuo
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (scuo *SubtopicConfidenceUpdateOne) SetNillableSubtopicID(i *int64) *SubtopicConfidenceUpdateOne {
	if i != nil {
		scuo.SetSubtopicID(*i)
	}
	return scuo
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (scuo *SubtopicConfidenceUpdateOne) AddSubtopicID(i int64) *SubtopicConfidenceUpdateOne {
	scuo.mutation.AddSubtopicID(i)
	return scuo
}

// SetLevel sets the "level" field.
func (scuo *SubtopicConfidenceUpdateOne) SetLevel(i int) *SubtopicConfidenceUpdateOne {
	scuo.mutation.ResetLevel()
	scuo.mutation.SetLevel(i)
	return scuo
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (scuo *SubtopicConfidenceUpdateOne) SetNillableLevel(i *int) *SubtopicConfidenceUpdateOne {
	if i != nil {
		scuo.SetLevel(*i)
	}
	return scuo
}

// AddLevel adds i to the "level" field.
func (scuo *SubtopicConfidenceUpdateOne) AddLevel(i int) *SubtopicConfidenceUpdateOne {
	scuo.mutation.AddLevel(i)
	return scuo
}

// SetPriority sets the "priority" field.
func (scuo *SubtopicConfidenceUpdateOne) SetPriority(b bool) *SubtopicConfidenceUpdateOne {
	scuo.mutation.SetPriority(b)
	return scuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (scuo *SubtopicConfidenceUpdateOne) SetNillablePriority(b *bool) *SubtopicConfidenceUpdateOne {
	if b != nil {
		scuo.SetPriority(*b)
	}
	return scuo
}

// SetLastUpdated sets the "last_updated" field.
func (scuo *SubtopicConfidenceUpdateOne) SetLastUpdated(t time.Time) *SubtopicConfidenceUpdateOne {
	scuo.mutation.SetLastUpdated(t)
	return scuo
}

// SetLastAddressed sets the "last_addressed" field.
func (scuo *SubtopicConfidenceUpdateOne) SetLastAddressed(t time.Time) *SubtopicConfidenceUpdateOne {
	scuo.mutation.SetLastAddressed(t)
	return scuo
}

// SetNillableLastAddressed sets the "last_addressed" field if the given value is not nil.
func (scuo *SubtopicConfidenceUpdateOne) SetNillableLastAddressed(t *time.Time) *SubtopicConfidenceUpdateOne {
	if t != nil {
		scuo.SetLastAddressed(*t)
	}
	return scuo
}

// ClearLastAddressed clears the value of the "last_addressed" field.
func (scuo *SubtopicConfidenceUpdateOne) ClearLastAddressed() *SubtopicConfidenceUpdateOne {
	scuo.mutation.ClearLastAddressed()
	return scuo
}

// Mutation returns the SubtopicConfidenceMutation object of the builder.
func (scuo *SubtopicConfidenceUpdateOne) Mutation() *SubtopicConfidenceMutation {
	return scuo.mutation
}

// Where appends a list predicates to the SubtopicConfidenceUpdate builder.
func (scuo *SubtopicConfidenceUpdateOne) Where(ps ...predicate.SubtopicConfidence) *SubtopicConfidenceUpdateOne {
	scuo.mutation.Where(ps...)
	return scuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (scuo *SubtopicConfidenceUpdateOne) Select(field string, fields ...string) *SubtopicConfidenceUpdateOne {
	scuo.fields = append([]string{field}, fields...)
	return scuo
}

// Save executes the query and returns the updated SubtopicConfidence entity.
func (scuo *SubtopicConfidenceUpdateOne) Save(ctx context.Context) (*SubtopicConfidence, error) {
	scuo.defaults()
	return withHooks(ctx, scuo.sqlSave, scuo.mutation, scuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (scuo *SubtopicConfidenceUpdateOne) SaveX(ctx context.Context) *SubtopicConfidence {
	node, err := scuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (scuo *SubtopicConfidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := scuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scuo *SubtopicConfidenceUpdateOne) ExecX(ctx context.Context) {
	if err := scuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (scuo *SubtopicConfidenceUpdateOne) defaults() {
	if _, ok := scuo.mutation.LastUpdated(); !ok {
		v := subtopicconfidence.UpdateDefaultLastUpdated()
		scuo.mutation.SetLastUpdated(v)
	}
}

func (scuo *SubtopicConfidenceUpdateOne) sqlSave(ctx context.Context) (_node *SubtopicConfidence, err error) {
	_spec := sqlgraph.NewUpdateSpec(subtopicconfidence.Table, subtopicconfidence.Columns, sqlgraph.NewFieldSpec(subtopicconfidence.FieldID, field.TypeInt))
	id, ok := scuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubtopicConfidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := scuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopicconfidence.FieldID)
		for _, f := range fields {
			if !subtopicconfidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopicconfidence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := scuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := scuo.mutation.UserID(); ok {
		_spec.SetField(subtopicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := scuo.mutation.AddedUserID(); ok {
		_spec.AddField(subtopicconfidence.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := scuo.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicconfidence.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := scuo.mutation.AddedSubtopicID(); ok {
		_spec.AddField(subtopicconfidence.FieldSubtopicID, field.TypeInt64, value)
	}
	if value, ok := scuo.mutation.Level(); ok {
		_spec.SetField(subtopicconfidence.FieldLevel, field.TypeInt, value)
	}
	if value, ok := scuo.mutation.AddedLevel(); ok {
		_spec.AddField(subtopicconfidence.FieldLevel, field.TypeInt, value)
	}
	if value, ok := scuo.mutation.Priority(); ok {
		_spec.SetField(subtopicconfidence.FieldPriority, field.TypeBool, value)
	}
	if value, ok := scuo.mutation.LastUpdated(); ok {
		_spec.SetField(subtopicconfidence.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := scuo.mutation.LastAddressed(); ok {
		_spec.SetField(subtopicconfidence.FieldLastAddressed, field.TypeTime, value)
	}
	if scuo.mutation.LastAddressedCleared() {
		_spec.ClearField(subtopicconfidence.FieldLastAddressed, field.TypeTime)
	}
	_node = &SubtopicConfidence{config: scuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, scuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicconfidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	scuo.mutation.done = true
	return _node, nil
}
