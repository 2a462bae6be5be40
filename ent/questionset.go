// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// QuestionSet is the model entity for the QuestionSet schema.
type QuestionSet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the row was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Score report the set was generated from
	Source string `json:"source,omitempty"`
	// generated, generated+padded, fallback or empty
	Origin string `json:"origin,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionSetQuery when eager-loading is set.
	Edges        QuestionSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionSetEdges holds the relations/edges for other nodes in the graph.
type QuestionSetEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*GeneratedQuestion `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionSetEdges) QuestionsOrErr() ([]*GeneratedQuestion, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionset.FieldSequence:
			values[i] = new(sql.NullInt64)
		case questionset.FieldID, questionset.FieldUserID, questionset.FieldSource, questionset.FieldOrigin:
			values[i] = new(sql.NullString)
		case questionset.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionSet fields.
func (_m *QuestionSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case questionset.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case questionset.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case questionset.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case questionset.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case questionset.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionSet.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the QuestionSet entity.
func (_m *QuestionSet) QueryQuestions() *GeneratedQuestionQuery {
	return NewQuestionSetClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this QuestionSet.
// Note that you need to call QuestionSet.Unwrap() before calling this method if this QuestionSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionSet) Update() *QuestionSetUpdateOne {
	return NewQuestionSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionSet) Unwrap() *QuestionSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionSet) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteByte(')')
	return builder.String()
}

// QuestionSets is a parsable slice of QuestionSet.
type QuestionSets []*QuestionSet
