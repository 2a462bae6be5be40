package problemgen

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

const oneQuestion = `[{"id":"q1","text":"If 2x = 10, what is x?","topic":"Algebra","difficulty":"Easy","options":["2","5","8","10"],"answer":"B","explanation":"Divide both sides by 2."}]`

func wantOneQuestion() []GeneratedQuestion {
	return []GeneratedQuestion{{
		ID:          "q1",
		Text:        "If 2x = 10, what is x?",
		Topic:       "Algebra",
		Difficulty:  "Easy",
		Options:     []string{"2", "5", "8", "10"},
		Answer:      "B",
		Explanation: "Divide both sides by 2.",
	}}
}

func TestExtract_RecoveryLadder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"raw array", oneQuestion},
		{"surrounding whitespace", "\n\n  " + oneQuestion + "  \n"},
		{"fenced json", "```json\n" + oneQuestion + "\n```"},
		{"fenced without language", "```\n" + oneQuestion + "\n```"},
		{"fenced with prose", "Here are your questions:\n\n```json\n" + oneQuestion + "\n```\nGood luck!"},
		{"questions wrapper", `{"questions": ` + oneQuestion + `}`},
		{"fenced questions wrapper", "```json\n{\"questions\": " + oneQuestion + "}\n```"},
		{"single array field", `{"items": ` + oneQuestion + `, "count": 1}`},
		{"prose before and after", "Sure! Here is the set: " + oneQuestion + " Let me know if you need more."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, wantOneQuestion(), got)
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose only", "I'm sorry, I can't help with that."},
		{"truncated array", `[{"id":"q1","text":"If 2x`},
		{"object without arrays", `{"error": "rate limited"}`},
		{"object with two arrays", `{"a": [1], "b": [2]}`},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw, fixedNow)
			var malformed *MalformedResponseError
			require.True(t, errors.As(err, &malformed), "expected MalformedResponseError, got %v", err)
			assert.Equal(t, tt.raw, malformed.Raw)
		})
	}
}

func TestExtract_Normalization(t *testing.T) {
	raw := `[
		{"text": "No id here", "topic": "Algebra"},
		{"id": "q2", "topic": "Math"},
		"Just a string question",
		42,
		null,
		{"id": 7, "text": "Numeric id", "answer": 3.5, "options": [1, 2, 3, 4]},
		{"id": "q5", "text": "   "}
	]`

	got, err := Extract(raw, fixedNow)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "question-1700000000000-0", got[0].ID)
	assert.Equal(t, "No id here", got[0].Text)
	assert.Nil(t, got[0].Options)
	assert.Empty(t, got[0].Difficulty)

	assert.Equal(t, "q2", got[1].ID)
	assert.Equal(t, PlaceholderText, got[1].Text)

	assert.Equal(t, "question-1700000000000-2", got[2].ID)
	assert.Equal(t, "Just a string question", got[2].Text)

	assert.Equal(t, "7", got[3].ID)
	assert.Equal(t, "3.5", got[3].Answer)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got[3].Options)

	assert.Equal(t, PlaceholderText, got[4].Text)
}

func TestExtract_EmptyArray(t *testing.T) {
	got, err := Extract("[]", fixedNow)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_PassesThroughUnknownValues(t *testing.T) {
	got, err := Extract(`[{"id":"x","text":"T","difficulty":"very hard","options":["a","b"]}]`, fixedNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "very hard", string(got[0].Difficulty))
	assert.Equal(t, []string{"a", "b"}, got[0].Options)
}
