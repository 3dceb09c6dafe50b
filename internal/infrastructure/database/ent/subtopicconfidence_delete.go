// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
)

// SubtopicConfidenceDelete is the builder for deleting a SubtopicConfidence entity.
type SubtopicConfidenceDelete struct {
	config
	hooks    []Hook
	mutation *SubtopicConfidenceMutation
}

// Where appends a list predicates to the SubtopicConfidenceDelete builder.
func (scd *SubtopicConfidenceDelete) Where(ps ...predicate.SubtopicConfidence) *SubtopicConfidenceDelete {
	scd.mutation.Where(ps...)
	return scd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (scd *SubtopicConfidenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, scd.sqlExec, scd.mutation, scd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (scd *SubtopicConfidenceDelete) ExecX(ctx context.Context) int {
	n, err := scd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (scd *SubtopicConfidenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(subtopicconfidence.Table, sqlgraph.NewFieldSpec(subtopicconfidence.FieldID, field.TypeInt))
	if ps := scd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, scd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	scd.mutation.done = true
	return affected, err
}

// SubtopicConfidenceDeleteOne is the builder for deleting a single SubtopicConfidence entity.
type SubtopicConfidenceDeleteOne struct {
	scd *SubtopicConfidenceDelete
}

// Where appends a list predicates to the SubtopicConfidenceDelete builder.
func (scdo *SubtopicConfidenceDeleteOne) Where(ps ...predicate.SubtopicConfidence) *SubtopicConfidenceDeleteOne {
	scdo.scd.mutation.Where(ps...)
	return scdo
}

// Exec executes the deletion query.
func (scdo *SubtopicConfidenceDeleteOne) Exec(ctx context.Context) error {
	n, err := scdo.scd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{subtopicconfidence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (scdo *SubtopicConfidenceDeleteOne) ExecX(ctx context.Context) {
	if err := scdo.Exec(ctx); err != nil {
		panic(err)
	}
}
