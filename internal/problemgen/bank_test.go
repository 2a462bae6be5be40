package problemgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/report"
)

func loadDefaultBank(t *testing.T) *Bank {
	t.Helper()
	b, err := DefaultBank()
	require.NoError(t, err)
	return b
}

func TestDefaultBank_CoversTaxonomy(t *testing.T) {
	b := loadDefaultBank(t)
	for _, topic := range report.DefaultTaxonomy().AllTopics() {
		tmpls := b.Templates(topic)
		if len(tmpls) < 3 || len(tmpls) > 4 {
			t.Errorf("topic %q has %d templates, want 3-4", topic, len(tmpls))
		}
		for _, q := range tmpls {
			if q.Topic != string(topic) {
				t.Errorf("template %q has topic %q, want %q", q.ID, q.Topic, topic)
			}
			if len(q.Options) != 4 {
				t.Errorf("template %q has %d options", q.ID, len(q.Options))
			}
		}
	}
}

func TestBank_GenerateExactCount(t *testing.T) {
	b := loadDefaultBank(t)
	for _, count := range []int{1, 3, 10, 25, 100} {
		for _, r := range []*report.PerformanceReport{
			nil,
			report.NewPerformanceReport(),
			reportWithIncorrect(3, 9),
			reportWithIncorrect(0, 2),
		} {
			got := b.Generate(r, count, fixedNow)
			if len(got) != count {
				t.Fatalf("Generate(count=%d) returned %d questions", count, len(got))
			}
			seen := make(map[string]bool)
			for _, q := range got {
				if q.ID == "" || seen[q.ID] {
					t.Fatalf("empty or duplicate id %q", q.ID)
				}
				seen[q.ID] = true
			}
		}
	}
}

func TestBank_GenerateNonPositive(t *testing.T) {
	b := loadDefaultBank(t)
	assert.Empty(t, b.Generate(reportWithIncorrect(1, 1), 0, fixedNow))
	assert.Empty(t, b.Generate(reportWithIncorrect(1, 1), -3, fixedNow))
}

func TestBank_GenerateDeterministic(t *testing.T) {
	b := loadDefaultBank(t)
	r := reportWithIncorrect(4, 7)

	first := b.Generate(r, 10, fixedNow)
	second := b.Generate(r, 10, fixedNow)
	assert.Equal(t, first, second)

	// Callers own the returned slices.
	first[0].Options[0] = "changed"
	third := b.Generate(r, 10, fixedNow)
	assert.NotEqual(t, "changed", third[0].Options[0])
}

func TestBank_GenerateIDFormat(t *testing.T) {
	b := loadDefaultBank(t)
	got := b.Generate(nil, 3, fixedNow)
	for i, q := range got {
		suffix := fmt.Sprintf("-%d-%d", fixedNow.UnixMilli(), i)
		assert.True(t, strings.HasSuffix(q.ID, suffix), "id %q lacks suffix %q", q.ID, suffix)
	}
}

func TestBank_GenerateTargetsWeakSections(t *testing.T) {
	b := loadDefaultBank(t)
	tax := b.Taxonomy()

	// Math has more incorrect answers, so it is served first with
	// min(allocation 8, incorrect 8) questions, then Reading and Writing
	// with min(2, 2).
	r := reportWithIncorrect(2, 8)
	got := b.Generate(r, 10, fixedNow)

	for i, q := range got {
		s, ok := tax.SectionOf(report.Topic(q.Topic))
		require.True(t, ok, "unknown topic %q", q.Topic)
		want := mth
		if i >= 8 {
			want = rw
		}
		assert.Equal(t, want, s, "question %d (%s)", i, q.Topic)
	}

	// Math has more than five incorrect answers, so every Math topic is weak
	// and the first four questions cover all four topics in order.
	mathTopics := tax.Topics(mth)
	for i := range mathTopics {
		assert.Equal(t, string(mathTopics[i]), got[i].Topic)
	}
}

func TestBank_GenerateHardTopicsOnly(t *testing.T) {
	b := loadDefaultBank(t)
	r := reportWithIncorrect(0, 3)
	r.Topics = map[report.Section]map[report.Topic]report.TopicDifficultyInfo{
		mth: {"Advanced Math": {Percentage: 35, Difficulty: report.DifficultyHard}},
	}

	got := b.Generate(r, 10, fixedNow)
	for i := range 3 {
		assert.Equal(t, "Advanced Math", got[i].Topic)
	}
	// Round-robin walks the topic's templates in order.
	tmpls := b.Templates("Advanced Math")
	for i := range 3 {
		assert.Equal(t, tmpls[i].Text, got[i].Text)
	}
}

func TestBank_GenerateCyclesWhenNoIncorrect(t *testing.T) {
	b := loadDefaultBank(t)
	all := b.Taxonomy().AllTopics()

	got := b.Generate(report.NewPerformanceReport(), 2*len(all), fixedNow)
	for i, q := range got {
		assert.Equal(t, string(all[i%len(all)]), q.Topic)
	}
	// The second lap takes each topic's next template.
	assert.NotEqual(t, got[0].Text, got[len(all)].Text)
}

func TestParseBank_Errors(t *testing.T) {
	tax := report.DefaultTaxonomy()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "topics: [", "decode question bank"},
		{"unknown topic", "topics:\n  - topic: Calculus\n    templates: []\n", "unknown topic"},
		{"missing topics", "topics:\n  - topic: Algebra\n    templates:\n      - {id: a, text: T, explanation: E, options: [a, b, c, d], answer: A}\n", "has no templates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml), tax)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadBank_CustomTaxonomy(t *testing.T) {
	tax, err := report.ParseTaxonomy([]byte(`
sections:
  - name: English
    topics: [Usage and Mechanics]
  - name: Science
    topics: [Data Representation]
`))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	doc := `
topics:
  - topic: usage and mechanics
    templates:
      - {id: um-1, text: Pick the correct verb., explanation: Agreement., options: [is, are, were, be], answer: A}
  - topic: Data Representation
    templates:
      - {id: dr-1, text: Read the table., explanation: Row two., options: ["1", "2", "3", "4"], answer: B, difficulty: Hard}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	b, err := LoadBank(path, tax)
	require.NoError(t, err)

	got := b.Generate(nil, 3, fixedNow)
	require.Len(t, got, 3)
	assert.Equal(t, "Usage and Mechanics", got[0].Topic)
	assert.Equal(t, "Data Representation", got[1].Topic)
	assert.Equal(t, "Usage and Mechanics", got[2].Topic)
}

func TestBankValidators(t *testing.T) {
	good := GeneratedQuestion{ID: "x", Text: "T", Explanation: "E", Options: []string{"a", "b", "c", "d"}, Answer: "D"}
	assert.Nil(t, runValidators(&good, bankValidators))

	tests := []struct {
		name   string
		mutate func(q *GeneratedQuestion)
		want   string
	}{
		{"empty text", func(q *GeneratedQuestion) { q.Text = " " }, "structural"},
		{"no explanation", func(q *GeneratedQuestion) { q.Explanation = "" }, "structural"},
		{"bad difficulty", func(q *GeneratedQuestion) { q.Difficulty = "Extreme" }, "structural"},
		{"three options", func(q *GeneratedQuestion) { q.Options = q.Options[:3] }, "multiple-choice"},
		{"blank option", func(q *GeneratedQuestion) { q.Options = []string{"a", "", "c", "d"} }, "multiple-choice"},
		{"answer not a letter", func(q *GeneratedQuestion) { q.Answer = "a" }, "multiple-choice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := good.clone()
			tt.mutate(&q)
			verr := runValidators(&q, bankValidators)
			require.NotNil(t, verr)
			assert.Equal(t, tt.want, verr.Validator)
		})
	}
}
