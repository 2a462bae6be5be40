package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	After      int64  // sequence > After
	Purpose    string // exact purpose match when non-empty
	RequestID  string // events of one pipeline run when non-empty
	FailedOnly bool
}

// LLMRequestEventData captures a single generation-service call.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorKind    string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMRequestEventData row.
type LLMEvent struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries generation-service calls.
type EventRepo interface {
	// AppendLLMRequest records a generation-service call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per model for cost estimates.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Question is the persisted form of a generated practice question.
type Question struct {
	ID          string
	Text        string
	Topic       string
	Difficulty  string
	Options     []string
	Answer      string
	Explanation string
}

// QuestionSet is a batch of questions delivered to one user for one source
// document.
type QuestionSet struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	UserID    string
	// Source identifies the score report the set was generated from, e.g. a
	// file name or upload id.
	Source string
	// Origin records how the set was produced ("generated", "fallback", ...).
	Origin    string
	Questions []Question
}

// QuestionRepo persists question sets keyed by user and source.
type QuestionRepo interface {
	// SaveQuestionSet stores the set and returns its assigned id. ID and
	// CreatedAt are filled in when empty; Sequence is always assigned.
	SaveQuestionSet(ctx context.Context, set *QuestionSet) (string, error)

	// GetQuestionSet loads a set with its questions, or nil if not found.
	GetQuestionSet(ctx context.Context, id string) (*QuestionSet, error)

	// ListQuestionSets returns a user's sets newest first, without questions.
	ListQuestionSets(ctx context.Context, userID string, limit int) ([]QuestionSet, error)
}
