// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GeneratedQuestion is the predicate function for generatedquestion builders.
type GeneratedQuestion func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionSet is the predicate function for questionset builders.
type QuestionSet func(*sql.Selector)
