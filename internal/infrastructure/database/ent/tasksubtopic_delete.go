// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
)

// TaskSubtopicDelete is the builder for deleting a TaskSubtopic entity.
type TaskSubtopicDelete struct {
	config
	hooks    []Hook
	mutation *TaskSubtopicMutation
}

// Where appends a list predicates to the TaskSubtopicDelete builder.
func (tsd *TaskSubtopicDelete) Where(ps ...predicate.TaskSubtopic) *TaskSubtopicDelete {
	tsd.mutation.Where(ps...)
	return tsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (tsd *TaskSubtopicDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, tsd.sqlExec, tsd.mutation, tsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (tsd *TaskSubtopicDelete) ExecX(ctx context.Context) int {
	n, err := tsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (tsd *TaskSubtopicDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tasksubtopic.Table, sqlgraph.NewFieldSpec(tasksubtopic.FieldID, field.TypeInt))
	if ps := tsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, tsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	tsd.mutation.done = true
	return affected, err
}

// TaskSubtopicDeleteOne is the builder for deleting a single TaskSubtopic entity.
type TaskSubtopicDeleteOne struct {
	tsd *TaskSubtopicDelete
}

// Where appends a list predicates to the TaskSubtopicDelete builder.
func (tsdo *TaskSubtopicDeleteOne) Where(ps ...predicate.TaskSubtopic) *TaskSubtopicDeleteOne {
	tsdo.tsd.mutation.Where(ps...)
	return tsdo
}

// Exec executes the deletion query.
func (tsdo *TaskSubtopicDeleteOne) Exec(ctx context.Context) error {
	n, err := tsdo.tsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tasksubtopic.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tsdo *TaskSubtopicDeleteOne) ExecX(ctx context.Context) {
	if err := tsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
