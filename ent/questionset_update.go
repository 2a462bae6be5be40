// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/predicate"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// QuestionSetUpdate is the builder for updating QuestionSet entities.
type QuestionSetUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionSetMutation
}

// Where appends a list predicates to the QuestionSetUpdate builder.
func (_u *QuestionSetUpdate) Where(ps ...predicate.QuestionSet) *QuestionSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionSetUpdate) SetSource(v string) *QuestionSetUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionSetUpdate) SetNillableSource(v *string) *QuestionSetUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *QuestionSetUpdate) SetOrigin(v string) *QuestionSetUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *QuestionSetUpdate) SetNillableOrigin(v *string) *QuestionSetUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the GeneratedQuestion entity by IDs.
func (_u *QuestionSetUpdate) AddQuestionIDs(ids ...int) *QuestionSetUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the GeneratedQuestion entity.
func (_u *QuestionSetUpdate) AddQuestions(v ...*GeneratedQuestion) *QuestionSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the QuestionSetMutation object of the builder.
func (_u *QuestionSetUpdate) Mutation() *QuestionSetMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the GeneratedQuestion entity.
func (_u *QuestionSetUpdate) ClearQuestions() *QuestionSetUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to GeneratedQuestion entities by IDs.
func (_u *QuestionSetUpdate) RemoveQuestionIDs(ids ...int) *QuestionSetUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to GeneratedQuestion entities.
func (_u *QuestionSetUpdate) RemoveQuestions(v ...*GeneratedQuestion) *QuestionSetUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionset.Table, questionset.Columns, sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(questionset.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionSetUpdateOne is the builder for updating a single QuestionSet entity.
type QuestionSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionSetMutation
}

// SetSource sets the "source" field.
func (_u *QuestionSetUpdateOne) SetSource(v string) *QuestionSetUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionSetUpdateOne) SetNillableSource(v *string) *QuestionSetUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *QuestionSetUpdateOne) SetOrigin(v string) *QuestionSetUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *QuestionSetUpdateOne) SetNillableOrigin(v *string) *QuestionSetUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the GeneratedQuestion entity by IDs.
func (_u *QuestionSetUpdateOne) AddQuestionIDs(ids ...int) *QuestionSetUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the GeneratedQuestion entity.
func (_u *QuestionSetUpdateOne) AddQuestions(v ...*GeneratedQuestion) *QuestionSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the QuestionSetMutation object of the builder.
func (_u *QuestionSetUpdateOne) Mutation() *QuestionSetMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the GeneratedQuestion entity.
func (_u *QuestionSetUpdateOne) ClearQuestions() *QuestionSetUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to GeneratedQuestion entities by IDs.
func (_u *QuestionSetUpdateOne) RemoveQuestionIDs(ids ...int) *QuestionSetUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to GeneratedQuestion entities.
func (_u *QuestionSetUpdateOne) RemoveQuestions(v ...*GeneratedQuestion) *QuestionSetUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the QuestionSetUpdate builder.
func (_u *QuestionSetUpdateOne) Where(ps ...predicate.QuestionSet) *QuestionSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionSetUpdateOne) Select(field string, fields ...string) *QuestionSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionSet entity.
func (_u *QuestionSetUpdateOne) Save(ctx context.Context) (*QuestionSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionSetUpdateOne) SaveX(ctx context.Context) *QuestionSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionSetUpdateOne) sqlSave(ctx context.Context) (_node *QuestionSet, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionset.Table, questionset.Columns, sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionset.FieldID)
		for _, f := range fields {
			if !questionset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(questionset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(questionset.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionset.QuestionsTable,
			Columns: []string{questionset.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
