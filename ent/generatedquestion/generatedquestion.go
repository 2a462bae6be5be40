// Code generated by ent, DO NOT EDIT.

package generatedquestion

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generatedquestion type in the database.
	Label = "generated_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// EdgeQuestionSet holds the string denoting the question_set edge name in mutations.
	EdgeQuestionSet = "question_set"
	// Table holds the table name of the generatedquestion in the database.
	Table = "generated_questions"
	// QuestionSetTable is the table that holds the question_set relation/edge.
	QuestionSetTable = "generated_questions"
	// QuestionSetInverseTable is the table name for the QuestionSet entity.
	// It exists in this package in order to avoid circular dependency with the "questionset" package.
	QuestionSetInverseTable = "question_sets"
	// QuestionSetColumn is the table column denoting the question_set relation/edge.
	QuestionSetColumn = "question_set_questions"
)

// Columns holds all SQL columns for generatedquestion fields.
var Columns = []string{
	FieldID,
	FieldPosition,
	FieldQuestionID,
	FieldText,
	FieldTopic,
	FieldDifficulty,
	FieldOptions,
	FieldAnswer,
	FieldExplanation,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "generated_questions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"question_set_questions",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultAnswer holds the default value on creation for the "answer" field.
	DefaultAnswer string
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
)

// OrderOption defines the ordering options for the GeneratedQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByQuestionSetField orders the results by question_set field.
func ByQuestionSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionSetStep(), sql.OrderByField(field, opts...))
	}
}
func newQuestionSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionSetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionSetTable, QuestionSetColumn),
	)
}
