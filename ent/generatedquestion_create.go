// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// GeneratedQuestionCreate is the builder for creating a GeneratedQuestion entity.
type GeneratedQuestionCreate struct {
	config
	mutation *GeneratedQuestionMutation
	hooks    []Hook
}

// SetPosition sets the "position" field.
func (_c *GeneratedQuestionCreate) SetPosition(v int) *GeneratedQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *GeneratedQuestionCreate) SetQuestionID(v string) *GeneratedQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *GeneratedQuestionCreate) SetText(v string) *GeneratedQuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *GeneratedQuestionCreate) SetTopic(v string) *GeneratedQuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *GeneratedQuestionCreate) SetNillableTopic(v *string) *GeneratedQuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GeneratedQuestionCreate) SetDifficulty(v string) *GeneratedQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *GeneratedQuestionCreate) SetNillableDifficulty(v *string) *GeneratedQuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *GeneratedQuestionCreate) SetOptions(v []string) *GeneratedQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *GeneratedQuestionCreate) SetAnswer(v string) *GeneratedQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *GeneratedQuestionCreate) SetNillableAnswer(v *string) *GeneratedQuestionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *GeneratedQuestionCreate) SetExplanation(v string) *GeneratedQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *GeneratedQuestionCreate) SetNillableExplanation(v *string) *GeneratedQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetQuestionSetID sets the "question_set" edge to the QuestionSet entity by ID.
func (_c *GeneratedQuestionCreate) SetQuestionSetID(id string) *GeneratedQuestionCreate {
	_c.mutation.SetQuestionSetID(id)
	return _c
}

// SetQuestionSet sets the "question_set" edge to the QuestionSet entity.
func (_c *GeneratedQuestionCreate) SetQuestionSet(v *QuestionSet) *GeneratedQuestionCreate {
	return _c.SetQuestionSetID(v.ID)
}

// Mutation returns the GeneratedQuestionMutation object of the builder.
func (_c *GeneratedQuestionCreate) Mutation() *GeneratedQuestionMutation {
	return _c.mutation
}

// Save creates the GeneratedQuestion in the database.
func (_c *GeneratedQuestionCreate) Save(ctx context.Context) (*GeneratedQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedQuestionCreate) SaveX(ctx context.Context) *GeneratedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedQuestionCreate) defaults() {
	if _, ok := _c.mutation.Topic(); !ok {
		v := generatedquestion.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := generatedquestion.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := generatedquestion.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := generatedquestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedQuestionCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "GeneratedQuestion.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := generatedquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GeneratedQuestion.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "GeneratedQuestion.question_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "GeneratedQuestion.text"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "GeneratedQuestion.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GeneratedQuestion.difficulty"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "GeneratedQuestion.answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "GeneratedQuestion.explanation"`)}
	}
	if len(_c.mutation.QuestionSetIDs()) == 0 {
		return &ValidationError{Name: "question_set", err: errors.New(`ent: missing required edge "GeneratedQuestion.question_set"`)}
	}
	return nil
}

func (_c *GeneratedQuestionCreate) sqlSave(ctx context.Context) (*GeneratedQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedQuestionCreate) createSpec() (*GeneratedQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedquestion.Table, sqlgraph.NewFieldSpec(generatedquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(generatedquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(generatedquestion.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(generatedquestion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(generatedquestion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(generatedquestion.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(generatedquestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(generatedquestion.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(generatedquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if nodes := _c.mutation.QuestionSetIDs(); len(nodes) > 0 {
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
		_node.question_set_questions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GeneratedQuestionCreateBulk is the builder for creating many GeneratedQuestion entities in bulk.
type GeneratedQuestionCreateBulk struct {
	config
	err      error
	builders []*GeneratedQuestionCreate
}

// Save creates the GeneratedQuestion entities in the database.
func (_c *GeneratedQuestionCreateBulk) Save(ctx context.Context) ([]*GeneratedQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GeneratedQuestionCreateBulk) SaveX(ctx context.Context) []*GeneratedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
