package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func questionSetSchema() *Schema {
	return &Schema{
		Name:        "test-question-set",
		Description: "A set of practice questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":         map[string]any{"type": "string"},
							"text":       map[string]any{"type": "string", "minLength": 1},
							"difficulty": map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
							"options":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "maxItems": 4},
							"points":     map[string]any{"type": "integer", "minimum": 1},
						},
						"required": []any{"id", "text"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func assertInvalid(t *testing.T, err error, raw string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != raw {
		t.Fatalf("content not preserved: %q", invErr.Content)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"id":"q1","text":"If 2x = 8, what is x?","difficulty":"Easy","options":["2","4","6","8"],"points":1}]}`)
	if err := validateResponse(questionSetSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"id":"q1","text":"Which choice completes the text?"}]}`)
	if err := validateResponse(questionSetSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing wrapper", `[{"id":"q1","text":"t"}]`},
		{"missing required", `{"questions":[{"id":"q1"}]}`},
		{"empty text", `{"questions":[{"id":"q1","text":""}]}`},
		{"wrong type", `{"questions":[{"id":1,"text":"t"}]}`},
		{"bad enum", `{"questions":[{"id":"q1","text":"t","difficulty":"Brutal"}]}`},
		{"too many options", `{"questions":[{"id":"q1","text":"t","options":["a","b","c","d","e"]}]}`},
		{"fractional integer", `{"questions":[{"id":"q1","text":"t","points":1.5}]}`},
		{"malformed", `{"questions":[`},
		{"prose", "Here are your questions:\n[]"},
		{"empty", ``},
		{"whitespace", "  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertInvalid(t, validateResponse(questionSetSchema(), json.RawMessage(tt.raw)), tt.raw)
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SameNameDifferentDefinition(t *testing.T) {
	loose := &Schema{Name: "shared-name", Definition: map[string]any{"type": "array"}}
	strict := &Schema{Name: "shared-name", Definition: map[string]any{"type": "object"}}
	raw := json.RawMessage(`[]`)

	if err := validateResponse(loose, raw); err != nil {
		t.Fatalf("loose schema rejected array: %v", err)
	}
	err := validateResponse(strict, raw)
	if err == nil {
		t.Fatal("strict schema accepted array; cache keyed by name only")
	}
	if !strings.Contains(err.Error(), "shared-name") {
		t.Errorf("error should name the schema: %v", err)
	}
}
