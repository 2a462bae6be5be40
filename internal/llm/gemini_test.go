package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)
	return &GeminiProvider{client: client, model: "gemini-2.5-flash"}
}

func geminiReply(text, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": finish,
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     30,
				"candidatesTokenCount": 20,
				"totalTokenCount":      50,
			},
		})
	}
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply(`[{"id":"q1","text":"If 3x + 5 = 20, what is x?"}]`, "STOP"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You write SAT practice questions.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate one Algebra question."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Text(), "3x + 5")
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, 30, resp.Usage.InputTokens)
	assert.Equal(t, 50, resp.Usage.TotalTokens)
}

func TestGeminiProvider_MaxTokens(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply(`[{"id":"q1","text":"cut`, "MAX_TOKENS"))

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var maxTok *ErrMaxTokensExceeded
	require.True(t, errors.As(err, &maxTok), "got %T (%v)", err, err)
}

func TestGeminiProvider_SafetyStop(t *testing.T) {
	p := newTestGeminiProvider(t, geminiReply("", "SAFETY"))

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	assert.Equal(t, "invalid_response", Kind(err))
}

func TestGeminiProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		body   map[string]any
		want   string
	}{
		{http.StatusTooManyRequests, map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}, "rate_limit"},
		{http.StatusForbidden, map[string]any{"code": 403, "message": "denied", "status": "PERMISSION_DENIED"}, "unauthorized"},
		{http.StatusBadRequest, map[string]any{"code": 400, "message": "API key not valid. Please pass a valid API key.", "status": "INVALID_ARGUMENT"}, "unauthorized"},
		{http.StatusServiceUnavailable, map[string]any{"code": 503, "message": "overloaded", "status": "UNAVAILABLE"}, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{"error": tt.body})
			})
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			assert.Equal(t, tt.want, Kind(err), "err: %v", err)
		})
	}
}

func TestMapGeminiError_ValueAndPointer(t *testing.T) {
	value := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}
	pointer := &genai.APIError{Code: http.StatusUnauthorized, Status: "UNAUTHENTICATED"}

	assert.Equal(t, "rate_limit", Kind(mapGeminiError(fmt.Errorf("generate: %w", value))))
	assert.Equal(t, "unauthorized", Kind(mapGeminiError(fmt.Errorf("generate: %w", pointer))))
	assert.Equal(t, "unavailable", Kind(mapGeminiError(errors.New("connection reset"))))
}

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": float64(50),
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":         map[string]any{"type": "string"},
						"text":       map[string]any{"type": "string", "minLength": 1},
						"difficulty": map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
						"options":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required":             []any{"id", "text", "difficulty", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	questions := schema.Properties["questions"]
	require.NotNil(t, questions)
	assert.Equal(t, genai.TypeArray, questions.Type)
	require.NotNil(t, questions.MinItems)
	assert.EqualValues(t, 1, *questions.MinItems)
	require.NotNil(t, questions.MaxItems)
	assert.EqualValues(t, 50, *questions.MaxItems)

	item := questions.Items
	require.NotNil(t, item)
	assert.Equal(t, []string{"id", "text", "difficulty", "options"}, item.PropertyOrdering)
	assert.Equal(t, []string{"Easy", "Medium", "Hard"}, item.Properties["difficulty"].Enum)
	assert.Equal(t, genai.TypeString, item.Properties["options"].Items.Type)
	require.NotNil(t, item.Properties["text"].MinLength)
	assert.EqualValues(t, 1, *item.Properties["text"].MinLength)
	assert.Nil(t, item.Properties["id"].MinLength)
}

func TestBuildGeminiSchema_PartialRequiredKeepsDefaultOrder(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":  map[string]any{"type": "string"},
			"notes": map[string]any{"type": "string"},
		},
		"required": []any{"text"},
	})
	assert.Equal(t, []string{"text"}, schema.Required)
	assert.Empty(t, schema.PropertyOrdering)
}
