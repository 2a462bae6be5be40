package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/scoreprep/ent"
	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/questionset"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *questionRepo) SaveQuestionSet(ctx context.Context, set *QuestionSet) (string, error) {
	if set.UserID == "" {
		return "", fmt.Errorf("question set requires a user id")
	}
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now().UTC()
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}

	saved, err := tx.QuestionSet.Create().
		SetID(set.ID).
		SetSequence(seqNum).
		SetTimestamp(set.CreatedAt).
		SetUserID(set.UserID).
		SetSource(set.Source).
		SetOrigin(set.Origin).
		Save(ctx)
	if err != nil {
		return "", rollback(tx, fmt.Errorf("save question set: %w", err))
	}

	if len(set.Questions) > 0 {
		builders := make([]*ent.GeneratedQuestionCreate, len(set.Questions))
		for i, q := range set.Questions {
			b := tx.GeneratedQuestion.Create().
				SetQuestionSet(saved).
				SetPosition(i).
				SetQuestionID(q.ID).
				SetText(q.Text).
				SetTopic(q.Topic).
				SetDifficulty(q.Difficulty).
				SetAnswer(q.Answer).
				SetExplanation(q.Explanation)
			if len(q.Options) > 0 {
				b = b.SetOptions(q.Options)
			}
			builders[i] = b
		}
		if _, err := tx.GeneratedQuestion.CreateBulk(builders...).Save(ctx); err != nil {
			return "", rollback(tx, fmt.Errorf("save questions: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	set.Sequence = seqNum
	return set.ID, nil
}

func (r *questionRepo) GetQuestionSet(ctx context.Context, id string) (*QuestionSet, error) {
	qs, err := r.client.QuestionSet.Query().
		Where(questionset.ID(id)).
		WithQuestions(func(q *ent.GeneratedQuestionQuery) {
			q.Order(ent.Asc(generatedquestion.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question set: %w", err)
	}

	set := toQuestionSet(qs)
	for _, q := range qs.Edges.Questions {
		set.Questions = append(set.Questions, Question{
			ID:          q.QuestionID,
			Text:        q.Text,
			Topic:       q.Topic,
			Difficulty:  q.Difficulty,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return &set, nil
}

func (r *questionRepo) ListQuestionSets(ctx context.Context, userID string, limit int) ([]QuestionSet, error) {
	query := r.client.QuestionSet.Query().
		Where(questionset.UserID(userID)).
		Order(ent.Desc(questionset.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	sets, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}

	out := make([]QuestionSet, len(sets))
	for i, qs := range sets {
		out[i] = toQuestionSet(qs)
	}
	return out, nil
}

func toQuestionSet(qs *ent.QuestionSet) QuestionSet {
	return QuestionSet{
		ID:        qs.ID,
		Sequence:  qs.Sequence,
		CreatedAt: qs.Timestamp,
		UserID:    qs.UserID,
		Source:    qs.Source,
		Origin:    qs.Origin,
	}
}

// rollback aborts tx and returns err, annotated if the rollback also fails.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
