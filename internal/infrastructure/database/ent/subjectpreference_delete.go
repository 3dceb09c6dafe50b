// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
)

// SubjectPreferenceDelete is the builder for deleting a SubjectPreference entity.
type SubjectPreferenceDelete struct {
	config
	hooks    []Hook
	mutation *SubjectPreferenceMutation
}

// Where appends a list predicates to the SubjectPreferenceDelete builder.
func (spd *SubjectPreferenceDelete) Where(ps ...predicate.SubjectPreference) *SubjectPreferenceDelete {
	spd.mutation.Where(ps...)
	return spd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (spd *SubjectPreferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, spd.sqlExec, spd.mutation, spd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (spd *SubjectPreferenceDelete) ExecX(ctx context.Context) int {
	n, err := spd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (spd *SubjectPreferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(subjectpreference.Table, sqlgraph.NewFieldSpec(subjectpreference.FieldID, field.TypeInt))
	if ps := spd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, spd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	spd.mutation.done = true
	return affected, err
}

// SubjectPreferenceDeleteOne is the builder for deleting a single SubjectPreference entity.
type SubjectPreferenceDeleteOne struct {
	spd *SubjectPreferenceDelete
}

// Where appends a list predicates to the SubjectPreferenceDelete builder.
func (spdo *SubjectPreferenceDeleteOne) Where(ps ...predicate.SubjectPreference) *SubjectPreferenceDeleteOne {
	spdo.spd.mutation.Where(ps...)
	return spdo
}

// Exec executes the deletion query.
func (spdo *SubjectPreferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := spdo.spd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{subjectpreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (spdo *SubjectPreferenceDeleteOne) ExecX(ctx context.Context) {
	if err := spdo.Exec(ctx); err != nil {
		panic(err)
	}
}
