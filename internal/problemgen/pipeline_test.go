package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/llm"
)

const pipelineReport = `
1 Reading and Writing B C; Incorrect
2 Reading and Writing A A; Correct
1 Math 3/4 0.5; Incorrect
2 Math 12 14; Incorrect
`

func generatedJSON(n int, idPrefix string) string {
	qs := make([]GeneratedQuestion, n)
	for i := range qs {
		qs[i] = GeneratedQuestion{
			ID:          fmt.Sprintf("%s%d", idPrefix, i),
			Text:        fmt.Sprintf("Generated question %d", i),
			Topic:       "Algebra",
			Difficulty:  "Medium",
			Options:     []string{"1", "2", "3", "4"},
			Answer:      "A",
			Explanation: "Because.",
		}
	}
	b, _ := json.Marshal(qs)
	return string(b)
}

func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixedNow }),
	}
	p, err := NewPipeline(append(base, opts...)...)
	require.NoError(t, err)
	return p
}

func assertWellFormed(t *testing.T, qs []GeneratedQuestion, want int) {
	t.Helper()
	require.Len(t, qs, want)
	seen := make(map[string]bool)
	for i, q := range qs {
		assert.NotEmpty(t, q.ID, "question %d has no id", i)
		assert.False(t, seen[q.ID], "duplicate id %q", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Text, "question %d has no text", i)
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	p := newTestPipeline(t, WithProvider(mock))

	for _, text := range []string{"", "   ", "\n\t\n"} {
		res := p.Run(context.Background(), text, 10)
		assert.Empty(t, res.Questions)
		assert.NotNil(t, res.Questions)
		assert.Equal(t, SourceEmpty, res.Source)
		assert.Equal(t, []State{StateStart, StateDone}, res.Trace)
	}
	assert.Equal(t, 0, mock.CallCount())
}

func TestPipeline_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(generatedJSON(10, "g")))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 10)
	assertWellFormed(t, res.Questions, 10)
	assert.Equal(t, SourceGenerated, res.Source)
	assert.Equal(t, []State{StateStart, StateParsed, StateGenerating, StateExtracted, StateDone}, res.Trace)
	assert.NoError(t, res.Err)
	assert.NotEmpty(t, res.RequestID)
	assert.Equal(t, "g0", res.Questions[0].ID)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, systemPrompt, call.System)
	assert.Contains(t, call.Messages[0].Content, "Create exactly 10 practice questions")
	assert.Equal(t, QuestionSetSchema, call.Schema)
}

func TestPipeline_StructuredOutputDisabled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(generatedJSON(3, "g")))
	cfg := DefaultConfig()
	cfg.StructuredOutput = false
	p := newTestPipeline(t, WithConfig(cfg), WithProvider(mock))

	p.Run(context.Background(), pipelineReport, 3)
	require.Equal(t, 1, mock.CallCount())
	assert.Nil(t, mock.Calls[0].Schema)
}

func TestPipeline_WrappedResponse(t *testing.T) {
	raw := "Here you go!\n```json\n{\"questions\": " + generatedJSON(5, "w") + "}\n```"
	mock := llm.NewMockProvider(llm.MockText(raw))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 5)
	assertWellFormed(t, res.Questions, 5)
	assert.Equal(t, SourceGenerated, res.Source)
}

func TestPipeline_Truncates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(generatedJSON(15, "g")))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 10)
	assertWellFormed(t, res.Questions, 10)
	assert.Equal(t, SourceGenerated, res.Source)
	assert.Equal(t, "g9", res.Questions[9].ID)
}

func TestPipeline_Pads(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(generatedJSON(4, "g")))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 10)
	assertWellFormed(t, res.Questions, 10)
	assert.Equal(t, SourceGeneratedPadded, res.Source)
	assert.Equal(t, []State{StateStart, StateParsed, StateGenerating, StateExtracted, StatePadding, StateDone}, res.Trace)

	var insufficient *InsufficientResultsError
	require.ErrorAs(t, res.Err, &insufficient)
	assert.Equal(t, 4, insufficient.Got)

	for i := range 4 {
		assert.Equal(t, fmt.Sprintf("Generated question %d", i), res.Questions[i].Text)
	}
	for _, q := range res.Questions[4:] {
		assert.NotContains(t, q.Text, "Generated question")
	}
}

func TestPipeline_DuplicateGeneratedIDs(t *testing.T) {
	raw := `[{"id":"same","text":"A"},{"id":"same","text":"B"},{"id":"same","text":"C"}]`
	mock := llm.NewMockProvider(llm.MockText(raw))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 3)
	assertWellFormed(t, res.Questions, 3)
	assert.Equal(t, []string{"same", "same-1", "same-2"},
		[]string{res.Questions[0].ID, res.Questions[1].ID, res.Questions[2].ID})
}

func TestPipeline_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		response llm.MockResponse
		kind     string
	}{
		{"provider unavailable", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}}, "unavailable"},
		{"rate limited", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}, "rate_limit"},
		{"malformed response", llm.MockText("I cannot produce JSON today."), "malformed_response"},
		{"empty array", llm.MockText("[]"), "insufficient_results"},
		{"truncated output", llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}}, "max_tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.response)
			p := newTestPipeline(t, WithProvider(mock))

			res := p.Run(context.Background(), pipelineReport, 10)
			assertWellFormed(t, res.Questions, 10)
			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, []State{StateStart, StateParsed, StateGenerating, StateFallback, StateDone}, res.Trace)
			require.Error(t, res.Err)
			assert.Equal(t, tt.kind, failureKind(res.Err))
		})
	}
}

func TestPipeline_InvalidSchemaContentStillUsed(t *testing.T) {
	err := &llm.ErrInvalidResponse{
		Content: json.RawMessage(`{"questions": ` + generatedJSON(2, "s") + `, "note": "extra field"}`),
		Err:     errors.New("additionalProperties 'note' not allowed"),
	}
	mock := llm.NewMockProvider(llm.MockResponse{Err: err})
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), pipelineReport, 2)
	assertWellFormed(t, res.Questions, 2)
	assert.Equal(t, SourceGenerated, res.Source)
}

func TestPipeline_Timeout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(generatedJSON(10, "late")),
		Delay:   5 * time.Second,
	})
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	p := newTestPipeline(t, WithConfig(cfg), WithProvider(mock))

	start := time.Now()
	res := p.Run(context.Background(), pipelineReport, 10)
	assert.True(t, time.Since(start) < 2*time.Second, "generation was not cut off by the timeout")

	assertWellFormed(t, res.Questions, 10)
	assert.Equal(t, SourceFallback, res.Source)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Equal(t, "timeout", failureKind(res.Err))
}

func TestPipeline_NoProviderIsDeterministic(t *testing.T) {
	p := newTestPipeline(t)
	assert.False(t, p.GenerationEnabled())

	first := p.Run(context.Background(), "some report text", 10)
	second := p.Run(context.Background(), "some report text", 10)

	assertWellFormed(t, first.Questions, 10)
	assert.Equal(t, SourceFallback, first.Source)
	assert.Equal(t, []State{StateStart, StateParsed, StateFallback, StateDone}, first.Trace)
	assert.Equal(t, first.Questions, second.Questions)
	assert.NoError(t, first.Err)
}

func TestPipeline_InsufficientDataSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(generatedJSON(10, "g")))
	p := newTestPipeline(t, WithProvider(mock))

	res := p.Run(context.Background(), "nothing recognizable in here", 10)
	assertWellFormed(t, res.Questions, 10)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, 0, mock.CallCount())
}

func TestPipeline_ExactCountAcrossCounts(t *testing.T) {
	p := newTestPipeline(t)
	for _, n := range []int{1, 2, 7, 10, 33} {
		qs := p.GenerateQuestions(context.Background(), pipelineReport, n)
		assertWellFormed(t, qs, n)
	}
}

func TestPipeline_DefaultCount(t *testing.T) {
	p := newTestPipeline(t)
	assert.Len(t, p.GenerateQuestions(context.Background(), pipelineReport, 0), DefaultCount)

	cfg := DefaultConfig()
	cfg.Count = 4
	p = newTestPipeline(t, WithConfig(cfg))
	assert.Len(t, p.GenerateQuestions(context.Background(), pipelineReport, -1), 4)
}

type stubGenerator struct {
	questions []GeneratedQuestion
	err       error
}

func (s stubGenerator) Generate(context.Context, GenerationRequest) ([]GeneratedQuestion, error) {
	return s.questions, s.err
}

func TestPipeline_CustomGenerator(t *testing.T) {
	gen := stubGenerator{questions: []GeneratedQuestion{{Text: "no id"}, {Text: "no id either"}}}
	p := newTestPipeline(t, WithGenerator(gen))

	res := p.Run(context.Background(), pipelineReport, 2)
	assertWellFormed(t, res.Questions, 2)
	assert.True(t, strings.HasPrefix(res.Questions[0].ID, "question-"))
}
