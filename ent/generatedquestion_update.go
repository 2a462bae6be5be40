// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/predicate"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// GeneratedQuestionUpdate is the builder for updating GeneratedQuestion entities.
type GeneratedQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedQuestionMutation
}

// Where appends a list predicates to the GeneratedQuestionUpdate builder.
func (_u *GeneratedQuestionUpdate) Where(ps ...predicate.GeneratedQuestion) *GeneratedQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *GeneratedQuestionUpdate) SetPosition(v int) *GeneratedQuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillablePosition(v *int) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *GeneratedQuestionUpdate) AddPosition(v int) *GeneratedQuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GeneratedQuestionUpdate) SetQuestionID(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableQuestionID(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *GeneratedQuestionUpdate) SetText(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableText(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *GeneratedQuestionUpdate) SetTopic(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableTopic(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GeneratedQuestionUpdate) SetDifficulty(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableDifficulty(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *GeneratedQuestionUpdate) SetOptions(v []string) *GeneratedQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *GeneratedQuestionUpdate) AppendOptions(v []string) *GeneratedQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *GeneratedQuestionUpdate) ClearOptions() *GeneratedQuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *GeneratedQuestionUpdate) SetAnswer(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableAnswer(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *GeneratedQuestionUpdate) SetExplanation(v string) *GeneratedQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *GeneratedQuestionUpdate) SetNillableExplanation(v *string) *GeneratedQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetQuestionSetID sets the "question_set" edge to the QuestionSet entity by ID.
func (_u *GeneratedQuestionUpdate) SetQuestionSetID(id string) *GeneratedQuestionUpdate {
	_u.mutation.SetQuestionSetID(id)
	return _u
}

// SetQuestionSet sets the "question_set" edge to the QuestionSet entity.
func (_u *GeneratedQuestionUpdate) SetQuestionSet(v *QuestionSet) *GeneratedQuestionUpdate {
	return _u.SetQuestionSetID(v.ID)
}

// Mutation returns the GeneratedQuestionMutation object of the builder.
func (_u *GeneratedQuestionUpdate) Mutation() *GeneratedQuestionMutation {
	return _u.mutation
}

// ClearQuestionSet clears the "question_set" edge to the QuestionSet entity.
func (_u *GeneratedQuestionUpdate) ClearQuestionSet() *GeneratedQuestionUpdate {
	_u.mutation.ClearQuestionSet()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedQuestionUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := generatedquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuestion.position": %w`, err)}
		}
	}
	if _u.mutation.QuestionSetCleared() && len(_u.mutation.QuestionSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedQuestion.question_set"`)
	}
	return nil
}

func (_u *GeneratedQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedquestion.Table, generatedquestion.Columns, sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(generatedquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(generatedquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(generatedquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(generatedquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(generatedquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generatedquestion.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(generatedquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedquestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(generatedquestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(generatedquestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(generatedquestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.QuestionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedquestion.QuestionSetTable,
			Columns: []string{generatedquestion.QuestionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedquestion.QuestionSetTable,
			Columns: []string{generatedquestion.QuestionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedQuestionUpdateOne is the builder for updating a single GeneratedQuestion entity.
type GeneratedQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedQuestionMutation
}

// SetPosition sets the "position" field.
func (_u *GeneratedQuestionUpdateOne) SetPosition(v int) *GeneratedQuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillablePosition(v *int) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *GeneratedQuestionUpdateOne) AddPosition(v int) *GeneratedQuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GeneratedQuestionUpdateOne) SetQuestionID(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableQuestionID(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *GeneratedQuestionUpdateOne) SetText(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableText(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *GeneratedQuestionUpdateOne) SetTopic(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableTopic(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GeneratedQuestionUpdateOne) SetDifficulty(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableDifficulty(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *GeneratedQuestionUpdateOne) SetOptions(v []string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *GeneratedQuestionUpdateOne) AppendOptions(v []string) *GeneratedQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *GeneratedQuestionUpdateOne) ClearOptions() *GeneratedQuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *GeneratedQuestionUpdateOne) SetAnswer(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableAnswer(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *GeneratedQuestionUpdateOne) SetExplanation(v string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *GeneratedQuestionUpdateOne) SetNillableExplanation(v *string) *GeneratedQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetQuestionSetID sets the "question_set" edge to the QuestionSet entity by ID.
func (_u *GeneratedQuestionUpdateOne) SetQuestionSetID(id string) *GeneratedQuestionUpdateOne {
	_u.mutation.SetQuestionSetID(id)
	return _u
}

// SetQuestionSet sets the "question_set" edge to the QuestionSet entity.
func (_u *GeneratedQuestionUpdateOne) SetQuestionSet(v *QuestionSet) *GeneratedQuestionUpdateOne {
	return _u.SetQuestionSetID(v.ID)
}

// Mutation returns the GeneratedQuestionMutation object of the builder.
func (_u *GeneratedQuestionUpdateOne) Mutation() *GeneratedQuestionMutation {
	return _u.mutation
}

// ClearQuestionSet clears the "question_set" edge to the QuestionSet entity.
func (_u *GeneratedQuestionUpdateOne) ClearQuestionSet() *GeneratedQuestionUpdateOne {
	_u.mutation.ClearQuestionSet()
	return _u
}

// Where appends a list predicates to the GeneratedQuestionUpdate builder.
func (_u *GeneratedQuestionUpdateOne) Where(ps ...predicate.GeneratedQuestion) *GeneratedQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedQuestionUpdateOne) Select(field string, fields ...string) *GeneratedQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedQuestion entity.
func (_u *GeneratedQuestionUpdateOne) Save(ctx context.Context) (*GeneratedQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedQuestionUpdateOne) SaveX(ctx context.Context) *GeneratedQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := generatedquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuestion.position": %w`, err)}
		}
	}
	if _u.mutation.QuestionSetCleared() && len(_u.mutation.QuestionSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedQuestion.question_set"`)
	}
	return nil
}

func (_u *GeneratedQuestionUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedquestion.Table, generatedquestion.Columns, sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedquestion.FieldID)
		for _, f := range fields {
			if !generatedquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedquestion.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(generatedquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(generatedquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(generatedquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(generatedquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(generatedquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(generatedquestion.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(generatedquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generatedquestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(generatedquestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(generatedquestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(generatedquestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.QuestionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedquestion.QuestionSetTable,
			Columns: []string{generatedquestion.QuestionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedquestion.QuestionSetTable,
			Columns: []string{generatedquestion.QuestionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
