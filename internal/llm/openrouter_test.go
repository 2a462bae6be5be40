package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("vendor model passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"})
		require.NoError(t, err)
		assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())
		assert.False(t, p.strict)
	})

	t.Run("friendly names are not mapped", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", p.ModelID())
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		assert.Error(t, err)
	})

	t.Run("empty model", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
		assert.Error(t, err)
	})
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var headers http.Header
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "gen-1",
			"model": "google/gemini-2.0-flash-exp",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `[{"text":"Which choice completes the text?"}]`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "One Craft and Structure question."}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.Equal(t, "Bearer sk-or-test", headers.Get("Authorization"))
	assert.Equal(t, openRouterReferer, headers.Get("HTTP-Referer"))
	assert.Equal(t, openRouterTitle, headers.Get("X-Title"))
	assert.Equal(t, "google/gemini-2.0-flash-exp", resp.Model)
	assert.Equal(t, 20, resp.Usage.TotalTokens)
}
