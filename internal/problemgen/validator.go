package problemgen

import "fmt"

// Validator checks a question for well-formedness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *GeneratedQuestion) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator  string // Name of the validator that failed
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question %q: %s", e.Validator, e.QuestionID, e.Message)
}

// runValidators applies vs in order and returns the first failure.
func runValidators(q *GeneratedQuestion, vs []Validator) *ValidationError {
	for _, v := range vs {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
