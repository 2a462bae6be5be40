package problemgen

import "github.com/abhisek/scoreprep/internal/llm"

// questionItemSchema describes one question object. Every property is
// required because strict structured-output modes reject optional ones;
// free-response questions send an empty options array.
var questionItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Short unique identifier, e.g. \"q1\"",
		},
		"text": map[string]any{
			"type":        "string",
			"description": "The full question, including any passage or data it refers to",
		},
		"topic": map[string]any{
			"type":        "string",
			"description": "The test topic the question practices, spelled exactly as given",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"Easy", "Medium", "Hard"},
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 answer choices in A-D order, or an empty array for free response",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The letter A-D of the correct option, or the exact value for free response",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the answer is correct and why the main distractor is wrong",
		},
	},
	"required":             []any{"id", "text", "topic", "difficulty", "options", "answer", "explanation"},
	"additionalProperties": false,
}

// QuestionSetSchema is the structured-output schema for a generation
// response. Structured-output modes need an object root, so the array sits
// in a "questions" field; the extractor unwraps it.
var QuestionSetSchema = &llm.Schema{
	Name:        "practice-question-set",
	Description: "A set of standardized-test practice questions targeting a student's weak topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionItemSchema,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
