package problemgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/scoreprep/internal/llm"
)

// PurposeQuestionGen labels question-generation calls in the event log.
const PurposeQuestionGen = "question-gen"

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// Generate sends req to the provider and extracts the questions from the
// response.
func (g *LLMGenerator) Generate(ctx context.Context, req GenerationRequest) ([]GeneratedQuestion, error) {
	ctx = llm.WithPurpose(ctx, PurposeQuestionGen)

	resp, err := g.provider.Generate(ctx, g.llmRequest(req))
	if err != nil {
		// Output that failed schema validation may still hold usable
		// questions; the extractor is more lenient than the schema.
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) && len(inv.Content) > 0 {
			if qs, xerr := Extract(string(inv.Content), g.now()); xerr == nil && len(qs) > 0 {
				return qs, nil
			}
		}
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	qs, err := Extract(resp.Text(), g.now())
	if err != nil {
		return nil, err
	}
	return qs, nil
}

func (g *LLMGenerator) llmRequest(req GenerationRequest) llm.Request {
	out := llm.Request{
		System: req.System,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: req.Instruction},
		},
		MaxTokens:   g.config.maxTokensFor(req.Count),
		Temperature: g.config.Temperature,
	}
	if g.config.StructuredOutput {
		out.Schema = req.Schema
	}
	return out
}
