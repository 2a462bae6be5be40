package problemgen

import (
	"strings"
	"unicode/utf8"
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *GeneratedQuestion) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), QuestionID: q.ID, Message: msg}
	}

	if strings.TrimSpace(q.ID) == "" {
		return fail("id is empty")
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("text is empty")
	}
	if utf8.RuneCountInString(q.Text) > 2000 {
		return fail("text exceeds 2000 characters")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	switch q.Difficulty {
	case "", "Easy", "Medium", "Hard":
	default:
		return fail("difficulty must be Easy, Medium or Hard")
	}
	return nil
}

// MultipleChoiceValidator checks that a question has exactly four options
// and that its answer is the letter of one of them.
type MultipleChoiceValidator struct{}

func (v *MultipleChoiceValidator) Name() string { return "multiple-choice" }

func (v *MultipleChoiceValidator) Validate(q *GeneratedQuestion) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), QuestionID: q.ID, Message: msg}
	}

	if len(q.Options) != 4 {
		return fail("must have exactly 4 options")
	}
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail("options must not be empty")
		}
	}
	switch q.Answer {
	case "A", "B", "C", "D":
	default:
		return fail("answer must be a letter A-D")
	}
	return nil
}
