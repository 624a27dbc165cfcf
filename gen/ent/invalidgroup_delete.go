// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/predicate"
)

// InvalidGroupDelete is the builder for deleting a InvalidGroup entity.
type InvalidGroupDelete struct {
	config
	hooks    []Hook
	mutation *InvalidGroupMutation
}

// Where appends a list predicates to the InvalidGroupDelete builder.
func (_d *InvalidGroupDelete) Where(ps ...predicate.InvalidGroup) *InvalidGroupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvalidGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvalidGroupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvalidGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invalidgroup.Table, sqlgraph.NewFieldSpec(invalidgroup.FieldID, field.TypeInt))
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

// InvalidGroupDeleteOne is the builder for deleting a single InvalidGroup entity.
type InvalidGroupDeleteOne struct {
	_d *InvalidGroupDelete
}

// Where appends a list predicates to the InvalidGroupDelete builder.
func (_d *InvalidGroupDeleteOne) Where(ps ...predicate.InvalidGroup) *InvalidGroupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvalidGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invalidgroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvalidGroupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
