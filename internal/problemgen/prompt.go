package problemgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/report"
)

const systemPrompt = `You are an expert tutor who writes practice questions for standardized tests.

Rules:
- Write original questions in the style of the real test for the requested sections and topics.
- Reading and writing questions include the short passage or sentence they ask about inside the question text.
- Math questions state every quantity the student needs. Use plain ASCII for math: ^ for powers, sqrt() for roots, / for fractions.
- Prefer multiple choice with exactly 4 options in A-D order and exactly one correct option; the answer is its letter.
- For a free-response math question, use an empty options array and put the exact value in the answer.
- Distractors should reflect the mistakes a student at this level actually makes.
- Explanations are short: why the answer is right and why the most tempting wrong option is wrong.
- Output only JSON. No commentary before or after it.`

// exampleQuestion anchors the expected output shape in the instruction.
var exampleQuestion = GeneratedQuestion{
	ID:          "q1",
	Text:        "If 3x + 7 = 22, what is the value of 6x - 4?",
	Topic:       "Algebra",
	Difficulty:  report.DifficultyMedium,
	Options:     []string{"11", "26", "30", "34"},
	Answer:      "B",
	Explanation: "3x = 15, so x = 5 and 6x - 4 = 30 - 4 = 26. Choice C is 6x without subtracting 4.",
}

// exampleJSON is exampleQuestion as it appears in the instruction.
var exampleJSON = mustMarshalIndent(exampleQuestion)

func mustMarshalIndent(v any) []byte {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("marshal %T: %v", v, err))
	}
	return b
}

// GenerationRequest is a complete request to the generation service.
type GenerationRequest struct {
	// System is the standing instruction sent as the system prompt.
	System string

	// Instruction is the natural-language request built from the report.
	Instruction string

	// Schema is the required output shape.
	Schema *llm.Schema

	// Count is the number of questions asked for.
	Count int

	// Allocation is the number of questions asked for per section.
	Allocation map[report.Section]int

	// WeakTopics is the focus list per section.
	WeakTopics map[report.Section][]report.Topic
}

// BuildRequest builds a generation request for count questions using the
// default taxonomy.
func BuildRequest(r *report.PerformanceReport, count int) GenerationRequest {
	return BuildRequestFor(report.DefaultTaxonomy(), r, count)
}

// BuildRequestFor builds a generation request for count questions,
// proportioned across the sections of t by incorrect answers.
func BuildRequestFor(t *report.Taxonomy, r *report.PerformanceReport, count int) GenerationRequest {
	if count <= 0 {
		count = DefaultCount
	}
	if r == nil {
		r = report.NewPerformanceReport()
	}

	alloc := Allocate(t, r, count)
	weak := t.WeakTopicsBySection(r)

	return GenerationRequest{
		System:      systemPrompt,
		Instruction: buildInstruction(t, r, count, alloc, weak),
		Schema:      QuestionSetSchema,
		Count:       count,
		Allocation:  alloc,
		WeakTopics:  weak,
	}
}

func buildInstruction(t *report.Taxonomy, r *report.PerformanceReport, count int,
	alloc map[report.Section]int, weak map[report.Section][]report.Topic) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Create exactly %d practice questions for a student, based on this score report.\n\n", count)

	b.WriteString("Overall:\n")
	fmt.Fprintf(&b, "- Total questions: %d\n", r.TotalQuestions)
	fmt.Fprintf(&b, "- Correct answers: %d\n", r.TotalCorrect)
	fmt.Fprintf(&b, "- Incorrect answers: %d\n", r.TotalIncorrect)

	for _, s := range t.SectionNames() {
		sp := r.Section(s)

		fmt.Fprintf(&b, "\nSection: %s\n", s)
		fmt.Fprintf(&b, "- Correct: %d, Incorrect: %d\n", sp.Correct, sp.Incorrect)
		fmt.Fprintf(&b, "- Questions to write for this section: %d\n", alloc[s])

		if ann := topicAnnotations(t, r, s); ann != "" {
			b.WriteString("- Topic performance:\n")
			b.WriteString(ann)
		}

		if len(sp.IncorrectQuestions) > 0 {
			b.WriteString("- Questions answered incorrectly:\n")
			for _, q := range sp.IncorrectQuestions {
				fmt.Fprintf(&b, "  - Question %s: correct answer %s, student answered %s\n",
					q.QuestionNumber, q.CorrectAnswer, q.YourAnswer)
			}
		}

		fmt.Fprintf(&b, "- Focus topics: %s\n", joinTopics(weak[s]))
	}

	b.WriteString("\nOutput format:\n")
	fmt.Fprintf(&b, "- Respond with ONLY a JSON array of exactly %d question objects and nothing else.\n", count)
	b.WriteString("- If the response must be a JSON object, put the array in a field named \"questions\".\n")
	b.WriteString("- Each object has the fields id, text, topic, difficulty (Easy, Medium or Hard), options, answer, explanation.\n")
	b.WriteString("- Use the focus topic names above, spelled exactly, for the topic field.\n")
	b.WriteString("\nExample object:\n")
	b.Write(exampleJSON)
	b.WriteString("\n")

	return b.String()
}

func topicAnnotations(t *report.Taxonomy, r *report.PerformanceReport, s report.Section) string {
	var b strings.Builder
	for _, topic := range t.Topics(s) {
		info, ok := r.TopicInfo(s, topic)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  - %s: %d%% of section, difficulty %s\n", topic, info.Percentage, r.Difficulty(s, topic))
	}
	return b.String()
}

func joinTopics(topics []report.Topic) string {
	if len(topics) == 0 {
		return "None"
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
