// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
)

// TaskTypePreferenceDelete is the builder for deleting a TaskTypePreference entity.
type TaskTypePreferenceDelete struct {
	config
	hooks    []Hook
	mutation *TaskTypePreferenceMutation
}

// Where appends a list predicates to the TaskTypePreferenceDelete builder.
func (ttpd *TaskTypePreferenceDelete) Where(ps ...predicate.TaskTypePreference) *TaskTypePreferenceDelete {
	ttpd.mutation.Where(ps...)
	return ttpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ttpd *TaskTypePreferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ttpd.sqlExec, ttpd.mutation, ttpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpd *TaskTypePreferenceDelete) ExecX(ctx context.Context) int {
	n, err := ttpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ttpd *TaskTypePreferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tasktypepreference.Table, sqlgraph.NewFieldSpec(tasktypepreference.FieldID, field.TypeInt))
	if ps := ttpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ttpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ttpd.mutation.done = true
	return affected, err
}

// TaskTypePreferenceDeleteOne is the builder for deleting a single TaskTypePreference entity.
type TaskTypePreferenceDeleteOne struct {
	ttpd *TaskTypePreferenceDelete
}

// Where appends a list predicates to the TaskTypePreferenceDelete builder.
func (ttpdo *TaskTypePreferenceDeleteOne) Where(ps ...predicate.TaskTypePreference) *TaskTypePreferenceDeleteOne {
	ttpdo.ttpd.mutation.Where(ps...)
	return ttpdo
}

// Exec executes the deletion query.
func (ttpdo *TaskTypePreferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := ttpdo.ttpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tasktypepreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ttpdo *TaskTypePreferenceDeleteOne) ExecX(ctx context.Context) {
	if err := ttpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
