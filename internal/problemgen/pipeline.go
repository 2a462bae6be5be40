package problemgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/report"
)

// Pipeline turns score-report text into exactly the requested number of
// practice questions. It uses the generation service when one is
// configured and the fallback bank for everything the service cannot
// deliver. A Pipeline is safe for concurrent use.
type Pipeline struct {
	parser    *report.Parser
	bank      *Bank
	generator Generator
	provider  llm.Provider
	config    Config
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithGenerator sets the generation step. A nil generator disables it.
func WithGenerator(g Generator) Option {
	return func(p *Pipeline) { p.generator = g }
}

// WithProvider uses an LLMGenerator over provider as the generation step
// unless WithGenerator is also given. A nil provider adds nothing.
func WithProvider(provider llm.Provider) Option {
	return func(p *Pipeline) { p.provider = provider }
}

// WithBank replaces the embedded fallback bank. The bank's taxonomy is also
// used for parsing.
func WithBank(b *Bank) Option {
	return func(p *Pipeline) { p.bank = b }
}

// WithConfig sets the pipeline configuration.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) { p.config = cfg }
}

// WithLogger sets the logger for absorbed failures and state changes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithClock sets the time source used for synthesized ids.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a Pipeline. Without options it parses with the
// default taxonomy, has no generation step, and falls back to the embedded
// bank.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.bank == nil {
		b, err := DefaultBank()
		if err != nil {
			return nil, fmt.Errorf("load fallback bank: %w", err)
		}
		p.bank = b
	}
	p.parser = report.NewParser(p.bank.Taxonomy())

	if p.generator == nil && p.provider != nil {
		g := New(p.provider, p.config)
		g.now = p.now
		p.generator = g
	}
	return p, nil
}

// Parser returns the report parser used by the pipeline.
func (p *Pipeline) Parser() *report.Parser {
	return p.parser
}

// Bank returns the fallback bank used by the pipeline.
func (p *Pipeline) Bank() *Bank {
	return p.bank
}

// GenerationEnabled reports whether a generation step is configured.
func (p *Pipeline) GenerationEnabled() bool {
	return p.generator != nil
}

// GenerateQuestions returns exactly count questions for the report text, or
// none when the text is blank. A count of zero or less means the configured
// default.
func (p *Pipeline) GenerateQuestions(ctx context.Context, text string, count int) []GeneratedQuestion {
	return p.Run(ctx, text, count).Questions
}

// Run is GenerateQuestions with diagnostics. Failures are absorbed into
// the fallback path and reported in Result.Err.
func (p *Pipeline) Run(ctx context.Context, text string, count int) *Result {
	res := &Result{Trace: []State{StateStart}}
	count = p.resolveCount(count)

	if strings.TrimSpace(text) == "" {
		res.Questions = []GeneratedQuestion{}
		res.Source = SourceEmpty
		res.step(StateDone)
		return res
	}

	r := p.parser.Parse(text)
	res.Report = r
	res.step(StateParsed)

	now := p.now()

	switch {
	case p.generator == nil:
		p.logger.Debug("no generation service configured, using fallback bank")
	case !r.HasData():
		p.logger.Debug("report has no usable data, using fallback bank")
	default:
		if p.generate(ctx, res, r, count, now) {
			return res
		}
	}

	res.step(StateFallback)
	res.Questions = uniqueIDs(p.bank.Generate(r, count, now))
	res.Allocation = Allocate(p.bank.Taxonomy(), r, count)
	res.Source = SourceFallback
	res.step(StateDone)
	return res
}

// generate runs the live path and reports whether it produced the result.
func (p *Pipeline) generate(ctx context.Context, res *Result, r *report.PerformanceReport, count int, now time.Time) bool {
	res.step(StateGenerating)
	res.RequestID = uuid.NewString()

	req := BuildRequestFor(p.bank.Taxonomy(), r, count)
	res.Allocation = req.Allocation

	ctx = llm.WithRequestID(ctx, res.RequestID)
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	qs, err := p.generator.Generate(ctx, req)
	if err == nil && len(qs) == 0 {
		err = &InsufficientResultsError{Want: count, Got: 0}
	}
	if err != nil {
		res.Err = err
		p.logger.Warn("question generation failed, using fallback bank",
			"request_id", res.RequestID, "kind", failureKind(err), "err", err)
		return false
	}
	res.step(StateExtracted)

	if len(qs) > count {
		p.logger.Debug("truncating generated questions", "got", len(qs), "want", count)
		qs = qs[:count]
	}

	res.Source = SourceGenerated
	if len(qs) < count {
		res.step(StatePadding)
		res.Err = &InsufficientResultsError{Want: count, Got: len(qs)}
		p.logger.Warn("padding generated questions from fallback bank",
			"request_id", res.RequestID, "got", len(qs), "want", count)
		qs = append(qs, p.bank.Generate(r, count-len(qs), now)...)
		res.Source = SourceGeneratedPadded
	}

	res.Questions = uniqueIDs(qs)
	res.step(StateDone)
	return true
}

func (p *Pipeline) resolveCount(count int) int {
	if count > 0 {
		return count
	}
	if p.config.Count > 0 {
		return p.config.Count
	}
	return DefaultCount
}

// uniqueIDs fills blank ids and suffixes ids that repeat within qs with
// their position.
func uniqueIDs(qs []GeneratedQuestion) []GeneratedQuestion {
	seen := make(map[string]bool, len(qs))
	for i := range qs {
		id := qs[i].ID
		if id == "" {
			id = fmt.Sprintf("question-%d", i)
		}
		for seen[id] {
			id = fmt.Sprintf("%s-%d", id, i)
		}
		seen[id] = true
		qs[i].ID = id
	}
	return qs
}

func failureKind(err error) string {
	var (
		malformed    *MalformedResponseError
		insufficient *InsufficientResultsError
	)
	switch {
	case errors.As(err, &malformed):
		return "malformed_response"
	case errors.As(err, &insufficient):
		return "insufficient_results"
	}
	return llm.Kind(err)
}
