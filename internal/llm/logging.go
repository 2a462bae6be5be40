package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/scoreprep/internal/store"
)

// maxBodyBytes caps each stored prompt and response. Reports may run to
// megabytes; the event log only needs enough to diagnose a bad generation.
const maxBodyBytes = 64 << 10

// LoggingProvider records every request as a store event and emits a debug
// log line per call.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithLogging wraps a Provider with event logging. provider names the
// backend ("openai", "gemini", ...) for the event log.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo, logger: slog.Default()}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		RequestID:   requestID,
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: capBody(serializeRequest(req)),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = capBody(string(resp.Content))
	}
	if err != nil {
		data.ErrorKind = Kind(err)
		data.ErrorMessage = err.Error()
		data.ResponseBody = capBody(string(failedContent(err)))
	}

	l.logger.Debug("generation request",
		"request_id", requestID,
		"provider", l.provider,
		"model", data.Model,
		"latency", latency,
		"in", data.InputTokens,
		"out", data.OutputTokens,
		"kind", data.ErrorKind)

	// Recording must never fail the request. The context may already be
	// past its deadline here, so the write gets its own short budget.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if logErr := l.eventRepo.AppendLLMRequest(logCtx, data); logErr != nil {
		l.logger.Warn("failed to record LLM request event", "request_id", requestID, "err", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// failedContent returns whatever the model produced before the call was
// classified as failed.
func failedContent(err error) json.RawMessage {
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return inv.Content
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return maxTok.Content
	}
	return nil
}

func capBody(s string) string {
	if len(s) <= maxBodyBytes {
		return s
	}
	return s[:maxBodyBytes] + fmt.Sprintf("\n[truncated %d bytes]", len(s)-maxBodyBytes)
}

// serializeRequest renders the request as tagged plain-text blocks.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
