package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `Your Score Report
98 Total Questions
71 Correct Answers
27 Incorrect Answers

Knowledge and Skills
Information and Ideas (26% of section, 12-14 questions) Difficulty level: Medium
Craft and Structure (28% of section, 13-15 questions) [Difficulty level: Hard]
Expression of Ideas (20% of section, 8-12 questions)
Standard English Conventions (26% of section, 11-15 questions) Difficulty level: Easy
Algebra (35% of section, 13-15 questions) Difficulty level: Hard
Advanced Math (35% of section, 13-15 questions) Difficulty level: Medium
Problem-Solving and Data Analysis (15% of section, 5-7 questions) Difficulty level: Easy
Geometry and Trigonometry (15% of section, 5-7 questions) Difficulty level: Hard

Question  Section  Correct Answer  Your Answer  Result
1 Reading and Writing B B; Correct
2 Reading and Writing C A; Incorrect
3 Reading and Writing D D; Correct
1 Math 3/4 0.5; Incorrect
2 Math A A; Correct
3 Math 1,200 1200; Correct
4 Math 7.5 B; Incorrect
`

func TestParse_QuestionRows(t *testing.T) {
	r := Parse("1 Math A B; Incorrect\n2 Math A A; Correct\n")

	math := r.Section("Math")
	assert.Equal(t, 2, math.Total)
	assert.Equal(t, 1, math.Correct)
	assert.Equal(t, 1, math.Incorrect)
	require.Len(t, math.IncorrectQuestions, 1)
	assert.Equal(t, IncorrectQuestion{QuestionNumber: "1", CorrectAnswer: "A", YourAnswer: "B"}, math.IncorrectQuestions[0])
}

func TestParse_SeveralRowsOnOneLine(t *testing.T) {
	r := Parse("1 Math A B; Incorrect 2 Math A A; Correct 3 Math C D; Incorrect")

	math := r.Section("Math")
	assert.Equal(t, 3, math.Total)
	assert.Equal(t, 1, math.Correct)
	assert.Equal(t, 2, math.Incorrect)
	require.Len(t, math.IncorrectQuestions, 2)
	assert.Equal(t, "3", math.IncorrectQuestions[1].QuestionNumber)
	assert.Equal(t, "D", math.IncorrectQuestions[1].YourAnswer)

	assert.Equal(t, 3, r.TotalQuestions)
	assert.Equal(t, 1, r.TotalCorrect)
	assert.Equal(t, 2, r.TotalIncorrect)
}

func TestParse_SummaryOnly(t *testing.T) {
	r := Parse("42 Total Questions\n30 Correct Answers\n12 Incorrect Answers\n")

	assert.Equal(t, 42, r.TotalQuestions)
	assert.Equal(t, 30, r.TotalCorrect)
	assert.Equal(t, 12, r.TotalIncorrect)
	assert.Empty(t, r.Sections)
	assert.True(t, r.HasData())
}

func TestParse_DerivesTotalsFromRows(t *testing.T) {
	r := Parse("1 Math A B; Incorrect\n2 Math A A; Correct\n5 Reading and Writing C C; Correct\n")

	assert.Equal(t, 3, r.TotalQuestions)
	assert.Equal(t, 2, r.TotalCorrect)
	assert.Equal(t, 1, r.TotalIncorrect)
}

func TestParse_PartialSummaryBackfilled(t *testing.T) {
	r := Parse("10 Total Questions\n1 Math A B; Incorrect\n2 Math C C; Correct\n")

	assert.Equal(t, 10, r.TotalQuestions)
	assert.Equal(t, 1, r.TotalCorrect)
	assert.Equal(t, 1, r.TotalIncorrect)
}

func TestParse_FullReport(t *testing.T) {
	r := Parse(sampleReport)

	assert.Equal(t, 98, r.TotalQuestions)
	assert.Equal(t, 71, r.TotalCorrect)
	assert.Equal(t, 27, r.TotalIncorrect)

	rw := r.Section("Reading and Writing")
	assert.Equal(t, 3, rw.Total)
	assert.Equal(t, 1, rw.Incorrect)

	math := r.Section("Math")
	assert.Equal(t, 4, math.Total)
	assert.Equal(t, 2, math.Correct)
	assert.Equal(t, 2, math.Incorrect)
	require.Len(t, math.IncorrectQuestions, 2)
	assert.Equal(t, "3/4", math.IncorrectQuestions[0].CorrectAnswer)
	assert.Equal(t, "0.5", math.IncorrectQuestions[0].YourAnswer)
	assert.Equal(t, "4", math.IncorrectQuestions[1].QuestionNumber)
	assert.Equal(t, "7.5", math.IncorrectQuestions[1].CorrectAnswer)
}

func TestParse_TopicDifficulty(t *testing.T) {
	r := Parse(sampleReport)

	tests := []struct {
		section Section
		topic   Topic
		pct     int
		want    Difficulty
	}{
		{"Reading and Writing", "Information and Ideas", 26, DifficultyMedium},
		{"Reading and Writing", "Craft and Structure", 28, DifficultyHard},
		{"Reading and Writing", "Expression of Ideas", 20, DifficultyMedium},
		{"Reading and Writing", "Standard English Conventions", 26, DifficultyEasy},
		{"Math", "Algebra", 35, DifficultyHard},
		{"Math", "Advanced Math", 35, DifficultyMedium},
		{"Math", "Problem-Solving and Data Analysis", 15, DifficultyEasy},
		{"Math", "Geometry and Trigonometry", 15, DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(string(tt.topic), func(t *testing.T) {
			info, ok := r.TopicInfo(tt.section, tt.topic)
			require.True(t, ok, "missing annotation")
			assert.Equal(t, tt.pct, info.Percentage)
			assert.Equal(t, tt.want, info.Difficulty)
		})
	}
}

func TestParse_SectionCaseInsensitive(t *testing.T) {
	r := Parse("7 math b c; INCORRECT\n")

	math := r.Section("Math")
	assert.Equal(t, 1, math.Incorrect)
	assert.Equal(t, "b", math.IncorrectQuestions[0].CorrectAnswer)
}

func TestParse_NoRecognizableContent(t *testing.T) {
	r := Parse("hello there\nnothing to see here; maybe\n")

	assert.False(t, r.HasData())
	assert.Zero(t, r.TotalQuestions)
	assert.Zero(t, r.TotalCorrect)
	assert.Zero(t, r.TotalIncorrect)
	assert.Empty(t, r.Sections)
}

func TestParse_Invariants(t *testing.T) {
	r := Parse(sampleReport)
	for name, sp := range r.Sections {
		assert.Equal(t, sp.Total, sp.Correct+sp.Incorrect, "section %s", name)
		assert.Len(t, sp.IncorrectQuestions, sp.Incorrect, "section %s", name)
	}
}

func TestParse_MissingDifficultyDefaultsMedium(t *testing.T) {
	r := Parse("Algebra (40% of section)\n")
	info, ok := r.TopicInfo("Math", "Algebra")
	require.True(t, ok)
	assert.Equal(t, DifficultyMedium, info.Difficulty)
	assert.Equal(t, DifficultyMedium, r.Difficulty("Math", "Geometry and Trigonometry"))
}
