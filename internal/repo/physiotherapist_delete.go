// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
)

// PhysiotherapistDelete is the builder for deleting a Physiotherapist entity.
type PhysiotherapistDelete struct {
	config
	hooks    []Hook
	mutation *PhysiotherapistMutation
}

// Where appends a list predicates to the PhysiotherapistDelete builder.
func (_d *PhysiotherapistDelete) Where(ps ...predicate.Physiotherapist) *PhysiotherapistDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PhysiotherapistDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PhysiotherapistDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PhysiotherapistDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(physiotherapist.Table, sqlgraph.NewFieldSpec(physiotherapist.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PhysiotherapistDeleteOne is the builder for deleting a single Physiotherapist entity.
type PhysiotherapistDeleteOne struct {
	_d *PhysiotherapistDelete
}

// Where appends a list predicates to the PhysiotherapistDelete builder.
func (_d *PhysiotherapistDeleteOne) Where(ps ...predicate.Physiotherapist) *PhysiotherapistDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PhysiotherapistDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{physiotherapist.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PhysiotherapistDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
