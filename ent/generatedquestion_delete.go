// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/predicate"
)

// GeneratedQuestionDelete is the builder for deleting a GeneratedQuestion entity.
type GeneratedQuestionDelete struct {
	config
	hooks    []Hook
	mutation *GeneratedQuestionMutation
}

// Where appends a list predicates to the GeneratedQuestionDelete builder.
func (_d *GeneratedQuestionDelete) Where(ps ...predicate.GeneratedQuestion) *GeneratedQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneratedQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneratedQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generatedquestion.Table, sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt))
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

// GeneratedQuestionDeleteOne is the builder for deleting a single GeneratedQuestion entity.
type GeneratedQuestionDeleteOne struct {
	_d *GeneratedQuestionDelete
}

// Where appends a list predicates to the GeneratedQuestionDelete builder.
func (_d *GeneratedQuestionDeleteOne) Where(ps ...predicate.GeneratedQuestion) *GeneratedQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneratedQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generatedquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
