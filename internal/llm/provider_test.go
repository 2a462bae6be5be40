package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockText("Sure! Here are two questions:\n```json\n[]\n```"),
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, first.Text())
	assert.Equal(t, 10, first.Usage.InputTokens)
	assert.Equal(t, "end", first.StopReason)
	assert.Equal(t, "mock", first.Model)

	second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	require.NoError(t, err)
	assert.Contains(t, second.Text(), "```json")
}

func TestMockProvider_EmptyQueueIsUnavailable(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	require.True(t, errors.As(err, &unavail), "got %T", err)
	assert.Equal(t, "unavailable", Kind(err))
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockText(`[]`))

	req := Request{
		System:   "You write SAT practice questions.",
		Messages: []Message{{Role: RoleUser, Content: "Generate 3 Algebra questions."}},
		Schema:   &Schema{Name: "practice-question-set"},
	}
	_, _ = mock.Generate(context.Background(), req)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, req.System, mock.Calls[0].System)
	assert.Equal(t, "practice-question-set", mock.Calls[0].Schema.Name)
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: time.Second}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	require.True(t, errors.As(err, &rl), "got %T", err)
	assert.Equal(t, time.Second, rl.RetryAfter)
}

func TestMockProvider_DelayHonorsContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`), Delay: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := mock.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "timeout", Kind(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestMockProvider_AddResponse(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockText(`[{"text":"q"}]`))

	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"q"}]`, resp.Text())
	assert.Equal(t, "mock", mock.ModelID())
}

func TestResponse_TextNil(t *testing.T) {
	var r *Response
	assert.Equal(t, "", r.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))

	ctx = WithPurpose(ctx, "question-gen")
	assert.Equal(t, "question-gen", PurposeFrom(ctx))
}

func TestConfig_Validate(t *testing.T) {
	withRetry := func(c Config) Config {
		c.Retry = DefaultConfig().Retry
		return c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", withRetry(Config{Provider: ProviderAnthropic}), true},
		{"anthropic with key", withRetry(Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}), false},
		{"openai without key", withRetry(Config{Provider: ProviderOpenAI}), true},
		{"openai with key", withRetry(Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}), false},
		{"gemini without key", withRetry(Config{Provider: ProviderGemini}), true},
		{"gemini with key", withRetry(Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g-test"}}), false},
		{"openrouter without key", withRetry(Config{Provider: ProviderOpenRouter}), true},
		{"openrouter with key", withRetry(Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}), false},
		{"mock needs no key", withRetry(Config{Provider: ProviderMock}), false},
		{"none disables generation", withRetry(Config{Provider: ProviderNone}), false},
		{"unknown provider", withRetry(Config{Provider: "unknown"}), true},
		{"zero attempts", Config{Provider: ProviderMock}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Provider: ProviderNone}.Enabled())
	assert.True(t, Config{Provider: ProviderMock}.Enabled())
}
