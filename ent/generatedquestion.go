// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// GeneratedQuestion is the model entity for the GeneratedQuestion schema.
type GeneratedQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Order within the set
	Position int `json:"position,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Answer choices; empty for free response
	Options []string `json:"options,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedQuestionQuery when eager-loading is set.
	Edges                  GeneratedQuestionEdges `json:"edges"`
	question_set_questions *string
	selectValues           sql.SelectValues
}

// GeneratedQuestionEdges holds the relations/edges for other nodes in the graph.
type GeneratedQuestionEdges struct {
	// QuestionSet holds the value of the question_set edge.
	QuestionSet *QuestionSet `json:"question_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionSetOrErr returns the QuestionSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedQuestionEdges) QuestionSetOrErr() (*QuestionSet, error) {
	if e.QuestionSet != nil {
		return e.QuestionSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionset.Label}
	}
	return nil, &NotLoadedError{edge: "question_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedquestion.FieldOptions:
			values[i] = new([]byte)
		case generatedquestion.FieldID, generatedquestion.FieldPosition:
			values[i] = new(sql.NullInt64)
		case generatedquestion.FieldQuestionID, generatedquestion.FieldText, generatedquestion.FieldTopic, generatedquestion.FieldDifficulty, generatedquestion.FieldAnswer, generatedquestion.FieldExplanation:
			values[i] = new(sql.NullString)
		case generatedquestion.ForeignKeys[0]: // question_set_questions
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedQuestion fields.
func (_m *GeneratedQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generatedquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case generatedquestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case generatedquestion.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case generatedquestion.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case generatedquestion.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case generatedquestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case generatedquestion.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case generatedquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case generatedquestion.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_set_questions", values[i])
			} else if value.Valid {
				_m.question_set_questions = new(string)
				*_m.question_set_questions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestionSet queries the "question_set" edge of the GeneratedQuestion entity.
func (_m *GeneratedQuestion) QueryQuestionSet() *QuestionSetQuery {
	return NewGeneratedQuestionClient(_m.config).QueryQuestionSet(_m)
}

// Update returns a builder for updating this GeneratedQuestion.
// Note that you need to call GeneratedQuestion.Unwrap() before calling this method if this GeneratedQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedQuestion) Update() *GeneratedQuestionUpdateOne {
	return NewGeneratedQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedQuestion) Unwrap() *GeneratedQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedQuestions is a parsable slice of GeneratedQuestion.
type GeneratedQuestions []*GeneratedQuestion
