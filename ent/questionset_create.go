// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// QuestionSetCreate is the builder for creating a QuestionSet entity.
type QuestionSetCreate struct {
	config
	mutation *QuestionSetMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuestionSetCreate) SetSequence(v int64) *QuestionSetCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestionSetCreate) SetTimestamp(v time.Time) *QuestionSetCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestionSetCreate) SetNillableTimestamp(v *time.Time) *QuestionSetCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuestionSetCreate) SetUserID(v string) *QuestionSetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *QuestionSetCreate) SetSource(v string) *QuestionSetCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuestionSetCreate) SetNillableSource(v *string) *QuestionSetCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *QuestionSetCreate) SetOrigin(v string) *QuestionSetCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *QuestionSetCreate) SetNillableOrigin(v *string) *QuestionSetCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionSetCreate) SetID(v string) *QuestionSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddQuestionIDs adds the "questions" edge to the GeneratedQuestion entity by IDs.
func (_c *QuestionSetCreate) AddQuestionIDs(ids ...int) *QuestionSetCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the GeneratedQuestion entity.
func (_c *QuestionSetCreate) AddQuestions(v ...*GeneratedQuestion) *QuestionSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the QuestionSetMutation object of the builder.
func (_c *QuestionSetCreate) Mutation() *QuestionSetMutation {
	return _c.mutation
}

// Save creates the QuestionSet in the database.
func (_c *QuestionSetCreate) Save(ctx context.Context) (*QuestionSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionSetCreate) SaveX(ctx context.Context) *QuestionSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionSetCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questionset.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := questionset.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Origin(); !ok {
		v := questionset.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionSetCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestionSet.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestionSet.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuestionSet.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := questionset.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionSet.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuestionSet.source"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "QuestionSet.origin"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := questionset.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "QuestionSet.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionSetCreate) sqlSave(ctx context.Context) (*QuestionSet, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuestionSet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionSetCreate) createSpec() (*QuestionSet, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionset.Table, sqlgraph.NewFieldSpec(questionset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questionset.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questionset.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(questionset.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(questionset.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(questionset.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionSetCreateBulk is the builder for creating many QuestionSet entities in bulk.
type QuestionSetCreateBulk struct {
	config
	err      error
	builders []*QuestionSetCreate
}

// Save creates the QuestionSet entities in the database.
func (_c *QuestionSetCreateBulk) Save(ctx context.Context) ([]*QuestionSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionSetMutation)
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
func (_c *QuestionSetCreateBulk) SaveX(ctx context.Context) []*QuestionSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
