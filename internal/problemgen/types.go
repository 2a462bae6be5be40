package problemgen

import (
	"github.com/abhisek/scoreprep/internal/report"
)

// DefaultCount is the number of questions produced when the caller does not
// ask for a specific count.
const DefaultCount = 10

// GeneratedQuestion is one practice question returned to the caller.
// Records come either from the generation service or from the fallback
// bank and are not modified after they are returned.
type GeneratedQuestion struct {
	// ID is unique within a single result.
	ID string `json:"id" yaml:"id"`

	// Text is the question prompt, including any passage it refers to.
	Text string `json:"text" yaml:"text"`

	// Topic is the taxonomy topic the question targets.
	Topic string `json:"topic" yaml:"topic"`

	Difficulty report.Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// Options holds the four answer choices of a multiple-choice question,
	// in A-D order. Empty for free-response questions.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// Answer is the letter A-D for multiple choice, or the exact value for
	// free response.
	Answer string `json:"answer,omitempty" yaml:"answer,omitempty"`

	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Source describes where the questions of a Result came from.
type Source string

const (
	SourceGenerated       Source = "generated"
	SourceGeneratedPadded Source = "generated+padded"
	SourceFallback        Source = "fallback"
	SourceEmpty           Source = "empty"
)

// State is a step of a single pipeline run.
type State string

const (
	StateStart      State = "start"
	StateParsed     State = "parsed"
	StateGenerating State = "generating"
	StateExtracted  State = "extracted"
	StatePadding    State = "padding"
	StateFallback   State = "fallback"
	StateDone       State = "done"
)

// Result is the outcome of a pipeline run. Questions always holds exactly
// the requested count, or nothing for empty input.
type Result struct {
	Questions  []GeneratedQuestion       `json:"questions"`
	Source     Source                    `json:"source"`
	Report     *report.PerformanceReport `json:"report,omitempty"`
	Allocation map[report.Section]int    `json:"allocation,omitempty"`
	Trace      []State                   `json:"trace"`
	RequestID  string                    `json:"request_id,omitempty"`

	// Err is the failure absorbed on the way to Questions, if any. It is
	// informational only; a Result is always usable.
	Err error `json:"-"`
}

func (r *Result) step(s State) {
	r.Trace = append(r.Trace, s)
}
