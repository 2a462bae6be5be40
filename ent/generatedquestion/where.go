// Code generated by ent, DO NOT EDIT.

package generatedquestion

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/scoreprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldID, id))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldPosition, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldText, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldExplanation, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldPosition, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldQuestionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldText, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldDifficulty, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotNull(FieldOptions))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// HasQuestionSet applies the HasEdge predicate on the "question_set" edge.
func HasQuestionSet() predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionSetTable, QuestionSetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionSetWith applies the HasEdge predicate on the "question_set" edge with a given conditions (other predicates).
func HasQuestionSetWith(preds ...predicate.QuestionSet) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(func(s *sql.Selector) {
		step := newQuestionSetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedQuestion) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedQuestion) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedQuestion) predicate.GeneratedQuestion {
	return predicate.GeneratedQuestion(sql.NotPredicates(p))
}
