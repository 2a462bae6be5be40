package problemgen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/scoreprep/internal/report"
)

const promptReport = `
Information and Ideas (26% of section) [Difficulty level: Hard]
Algebra (35% of section) Difficulty level: Easy
1 Reading and Writing B C; Incorrect
2 Reading and Writing A A; Correct
1 Math 3/4 0.5; Incorrect
2 Math 12 14; Incorrect
3 Math D D; Correct
`

func TestBuildRequest_Instruction(t *testing.T) {
	r := report.Parse(promptReport)
	req := BuildRequest(r, 10)

	checks := []string{
		"Create exactly 10 practice questions",
		"- Total questions: 5",
		"Section: Reading and Writing",
		"- Correct: 1, Incorrect: 1",
		"Section: Math",
		"- Correct: 1, Incorrect: 2",
		"Information and Ideas: 26% of section, difficulty Hard",
		"Algebra: 35% of section, difficulty Easy",
		"Question 1: correct answer B, student answered C",
		"Question 1: correct answer 3/4, student answered 0.5",
		"Question 2: correct answer 12, student answered 14",
		"- Focus topics: Information and Ideas\n",
		"- Focus topics: Algebra, Advanced Math, Problem-Solving and Data Analysis, Geometry and Trigonometry\n",
		"JSON array of exactly 10 question objects",
		`"questions"`,
		"Example object:",
	}
	for _, want := range checks {
		if !strings.Contains(req.Instruction, want) {
			t.Errorf("instruction missing %q\n---\n%s", want, req.Instruction)
		}
	}

	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if req.Schema != QuestionSetSchema {
		t.Error("expected the question set schema")
	}
	if req.Count != 10 {
		t.Errorf("Count = %d, want 10", req.Count)
	}
	if req.Allocation["Reading and Writing"] != 4 || req.Allocation["Math"] != 6 {
		t.Errorf("unexpected allocation %v", req.Allocation)
	}
}

func TestBuildRequest_AllocationLine(t *testing.T) {
	req := BuildRequest(reportWithIncorrect(2, 8), 10)
	if !strings.Contains(req.Instruction, "Questions to write for this section: 2") ||
		!strings.Contains(req.Instruction, "Questions to write for this section: 8") {
		t.Fatalf("allocation not embedded:\n%s", req.Instruction)
	}
}

func TestBuildRequest_DefaultsCount(t *testing.T) {
	req := BuildRequest(nil, 0)
	if req.Count != DefaultCount {
		t.Fatalf("Count = %d, want %d", req.Count, DefaultCount)
	}
	if !strings.Contains(req.Instruction, "exactly 10") {
		t.Fatal("instruction does not ask for the default count")
	}
}

func TestExampleQuestion_IsExtractable(t *testing.T) {
	raw, err := json.Marshal([]GeneratedQuestion{exampleQuestion})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Extract(string(raw), fixedNow)
	if err != nil {
		t.Fatalf("extract example: %v", err)
	}
	if len(got) != 1 || got[0].Answer != "B" || len(got[0].Options) != 4 {
		t.Fatalf("unexpected example round trip: %+v", got)
	}
	if verr := runValidators(&got[0], bankValidators); verr != nil {
		t.Fatalf("example fails validation: %v", verr)
	}
}

func TestBuildRequest_EmbedsExampleJSON(t *testing.T) {
	req := BuildRequest(nil, 4)
	if !strings.Contains(req.Instruction, string(exampleJSON)) {
		t.Fatalf("instruction lacks the worked example:\n%s", req.Instruction)
	}

	var q GeneratedQuestion
	if err := json.Unmarshal(exampleJSON, &q); err != nil {
		t.Fatalf("example JSON does not decode: %v", err)
	}
	if q.ID != exampleQuestion.ID || q.Answer != "B" || len(q.Options) != 4 {
		t.Fatalf("decoded example = %+v", q)
	}
}

func TestQuestionSetSchema_AcceptsExample(t *testing.T) {
	body, _ := json.Marshal(map[string]any{"questions": []GeneratedQuestion{exampleQuestion}})
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatal(err)
	}
	items := doc["questions"].([]any)
	q := items[0].(map[string]any)
	for _, field := range questionItemSchema["required"].([]any) {
		if _, ok := q[field.(string)]; !ok {
			t.Errorf("example lacks required field %q", field)
		}
	}
}
