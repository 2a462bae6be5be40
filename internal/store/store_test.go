package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_request_events", "question_sets", "generated_questions", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	s2.Close()
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestSequenceCounter_SharedAcrossEntities(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	first := &QuestionSet{ID: "set-1", UserID: "student-1", Source: "report.txt"}
	if _, err := repo.SaveQuestionSet(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Sequence != 2 {
		t.Fatalf("question set sequence = %d, want 2 (after the event)", first.Sequence)
	}

	// Same id violates the primary key and leaves nothing behind.
	if _, err := repo.SaveQuestionSet(ctx, &QuestionSet{ID: "set-1", UserID: "student-1", Source: "dup"}); err == nil {
		t.Fatal("expected duplicate id to fail")
	}
	got, err := repo.GetQuestionSet(ctx, "set-1")
	if err != nil || got == nil || got.Source != "report.txt" {
		t.Fatalf("original set changed by failed save: %+v, %v", got, err)
	}

	next := &QuestionSet{UserID: "student-1", Source: "report2.txt"}
	if _, err := repo.SaveQuestionSet(ctx, next); err != nil {
		t.Fatalf("save next: %v", err)
	}
	if next.Sequence <= first.Sequence {
		t.Fatalf("sequence after failed save = %d, want > %d", next.Sequence, first.Sequence)
	}

	list, err := repo.ListQuestionSets(ctx, "student-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != next.ID {
		t.Fatalf("unexpected list after failed save: %+v", list)
	}
}

func TestQuestionRepo_QuestionsKeepOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	set := &QuestionSet{UserID: "student-3", Source: "report.pdf", Origin: "generated"}
	for i := range 12 {
		set.Questions = append(set.Questions, Question{ID: fmt.Sprintf("q%d", i+1), Text: "Question", Topic: "Algebra"})
	}
	id, err := repo.SaveQuestionSet(ctx, set)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetQuestionSet(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(got.Questions))
	}
	for i, q := range got.Questions {
		if want := fmt.Sprintf("q%d", i+1); q.ID != want {
			t.Errorf("question %d = %s, want %s", i, q.ID, want)
		}
	}
	if !got.CreatedAt.Equal(set.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, set.CreatedAt)
	}
}

func TestOpen_ExposesEntClient(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{RequestID: "r1", Provider: "mock", Model: "mock", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 20, Success: true, ResponseBody: "[]"},
		{RequestID: "r2", Provider: "mock", Model: "mock", Purpose: "question-gen", Success: false, ErrorKind: "timeout", ErrorMessage: "deadline"},
		{RequestID: "r3", Provider: "gpt-4o-mini", Model: "gpt-4o-mini", Purpose: "other", InputTokens: 10, OutputTokens: 5, LatencyMs: 40, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].RequestID != "r3" {
		t.Errorf("expected newest first, got %q", all[0].RequestID)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen", Limit: 1})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].RequestID != "r2" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
	if filtered[0].Success || filtered[0].ErrorKind != "timeout" {
		t.Errorf("failure fields not round-tripped: %+v", filtered[0])
	}

	byRequest, err := repo.QueryLLMEvents(ctx, QueryOpts{RequestID: "r3"})
	if err != nil {
		t.Fatalf("query by request: %v", err)
	}
	if len(byRequest) != 1 || byRequest[0].Model != "gpt-4o-mini" {
		t.Fatalf("unexpected request filter result: %+v", byRequest)
	}

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].RequestID != "r2" {
		t.Fatalf("unexpected failed-only result: %+v", failed)
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != "[]" || !got.Success {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestEventRepo_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "p", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 10, Success: true},
		{Provider: "p", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 50, OutputTokens: 10, LatencyMs: 30, Success: false},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(byPurpose))
	}
	u := byPurpose[0]
	if u.Calls != 2 || u.Failures != 1 || u.InputTokens != 150 || u.OutputTokens != 50 || u.AvgLatencyMs != 20 {
		t.Errorf("unexpected purpose usage: %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 2 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestQuestionRepo_SaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	set := &QuestionSet{
		UserID: "student-1",
		Source: "report.pdf",
		Origin: "fallback",
		Questions: []Question{
			{ID: "q1", Text: "What is 2+2?", Topic: "Algebra", Difficulty: "Easy", Options: []string{"1", "2", "3", "4"}, Answer: "D"},
			{ID: "q2", Text: "Explain.", Topic: "Craft and Structure"},
		},
	}
	id, err := repo.SaveQuestionSet(ctx, set)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" || set.ID != id || set.Sequence == 0 {
		t.Fatalf("expected id and sequence to be assigned, got %+v", set)
	}

	got, err := repo.GetQuestionSet(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Questions) != 2 {
		t.Fatalf("unexpected set: %+v", got)
	}
	if got.Questions[0].Answer != "D" || len(got.Questions[0].Options) != 4 {
		t.Errorf("question 0 not round-tripped: %+v", got.Questions[0])
	}
	if got.Questions[1].Options != nil {
		t.Errorf("expected nil options, got %v", got.Questions[1].Options)
	}

	if _, err := repo.SaveQuestionSet(ctx, &QuestionSet{UserID: "student-1", Source: "second"}); err != nil {
		t.Fatalf("save second: %v", err)
	}
	list, err := repo.ListQuestionSets(ctx, "student-1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Source != "second" {
		t.Fatalf("unexpected list: %+v", list)
	}

	none, err := repo.GetQuestionSet(ctx, "missing")
	if err != nil || none != nil {
		t.Fatalf("expected nil, nil for missing set; got %v, %v", none, err)
	}
}

func TestQuestionRepo_RequiresUser(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.QuestionRepo().SaveQuestionSet(context.Background(), &QuestionSet{}); err == nil {
		t.Fatal("expected error without user id")
	}
}
