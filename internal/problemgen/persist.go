package problemgen

import (
	"context"
	"fmt"

	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/store"
)

// SaveResult stores the questions of res as a set for userID. source names
// the report the set came from.
func SaveResult(ctx context.Context, repo store.QuestionRepo, userID, source string, res *Result) (string, error) {
	set := &store.QuestionSet{
		UserID:    userID,
		Source:    source,
		Origin:    string(res.Source),
		Questions: make([]store.Question, len(res.Questions)),
	}
	for i, q := range res.Questions {
		set.Questions[i] = store.Question{
			ID:          q.ID,
			Text:        q.Text,
			Topic:       q.Topic,
			Difficulty:  string(q.Difficulty),
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}

	id, err := repo.SaveQuestionSet(ctx, set)
	if err != nil {
		return "", fmt.Errorf("save question set: %w", err)
	}
	return id, nil
}

// FromStored converts persisted questions back to GeneratedQuestion.
func FromStored(qs []store.Question) []GeneratedQuestion {
	out := make([]GeneratedQuestion, len(qs))
	for i, q := range qs {
		out[i] = GeneratedQuestion{
			ID:          q.ID,
			Text:        q.Text,
			Topic:       q.Topic,
			Difficulty:  report.Difficulty(q.Difficulty),
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}
	return out
}
