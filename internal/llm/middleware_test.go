package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`[]`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, ProviderMock, repo)

	ctx := WithRequestID(WithPurpose(context.Background(), "question-gen"), "run-1")
	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "run-1", e.RequestID)
	assert.Equal(t, "question-gen", e.Purpose)
	assert.True(t, e.Success)
	assert.Equal(t, 12, e.InputTokens)
	assert.Equal(t, "[]", e.ResponseBody)
	assert.Contains(t, e.RequestBody, "[system]\nsys")
	assert.Equal(t, ProviderMock, e.Provider)
	assert.Equal(t, "mock", e.Model)
}

func TestLogging_KeepsInvalidContent(t *testing.T) {
	repo := openEventRepo(t)
	raw := json.RawMessage("Here you go:\n[{\"text\":\"q\"}]")
	mock := NewMockProvider(MockResponse{Err: &ErrInvalidResponse{Content: raw, Err: errors.New("schema")}})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "invalid_response", events[0].ErrorKind)
	assert.Equal(t, string(raw), events[0].ResponseBody)
}

func TestLogging_CapsLargeBodies(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockText(`[]`))
	p := WithLogging(mock, ProviderMock, repo)

	huge := strings.Repeat("1 Math 3 5; Incorrect\n", 10000)
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: huge}}})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Less(t, len(events[0].RequestBody), maxBodyBytes+100)
	assert.Contains(t, events[0].RequestBody, "[truncated")
}

func TestLogging_RecordsFailureKind(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate_limit", events[0].ErrorKind)
	assert.NotEmpty(t, events[0].RequestID)
}

func TestLogging_RecordsAfterDeadline(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`), Delay: time.Second})
	p := WithLogging(mock, ProviderMock, repo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "timeout", events[0].ErrorKind)
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: ProviderNone}, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(ctx, Config{}, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(ctx, Config{Provider: ProviderMock, Retry: RetryConfig{MaxAttempts: 1}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockProvider{}, p)

	p, err = NewProvider(ctx, Config{Provider: ProviderMock, Retry: RetryConfig{MaxAttempts: 3}}, openEventRepo(t))
	require.NoError(t, err)
	assert.IsType(t, &RetryProvider{}, p)
	assert.Equal(t, "mock", p.ModelID())

	p, err = NewProvider(ctx, Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k", Model: "openai/gpt-4o-mini"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: ProviderOpenAI}, nil)
	assert.Error(t, err)

	_, err = NewProvider(ctx, Config{Provider: "bogus"}, nil)
	assert.Error(t, err)
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	base := DefaultConfig()
	cfg, ok := DiscoverConfig(base)
	assert.False(t, ok)
	assert.Equal(t, "", cfg.Provider)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok = DiscoverConfig(base)
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "o-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.NoError(t, cfg.Validate())
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{context.DeadlineExceeded, "timeout"},
		{context.Canceled, "canceled"},
		{&ErrRateLimit{}, "rate_limit"},
		{&ErrInvalidResponse{Err: errors.New("bad")}, "invalid_response"},
		{&ErrMaxTokensExceeded{}, "max_tokens"},
		{&ErrUnauthorized{Err: errors.New("401")}, "unauthorized"},
		{&ErrProviderUnavailable{}, "unavailable"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err))
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.75, c.Cost(1_000_000, 1_000_000), 1e-9)

	assert.NotNil(t, LookupCost("openai/gpt-4o-mini"))
	assert.Nil(t, LookupCost("mock"))
}

func TestRequestIDContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	assert.Equal(t, "abc", RequestIDFrom(WithRequestID(context.Background(), "abc")))
}
