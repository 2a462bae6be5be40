package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/scoreprep/ent"
	"github.com/abhisek/scoreprep/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorKind(data.ErrorKind).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Purpose != "" {
		query = query.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.RequestID != "" {
		query = query.Where(llmrequestevent.RequestID(opts.RequestID))
	}
	if opts.FailedOnly {
		query = query.Where(llmrequestevent.Success(false))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEvent, len(events))
	for i, e := range events {
		records[i] = toLLMEvent(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := toLLMEvent(e)
	return &rec, nil
}

// usageRows loads the columns the usage reports aggregate over, leaving
// the prompt and response bodies in the database.
func (r *eventRepo) usageRows(ctx context.Context) ([]*ent.LLMRequestEvent, error) {
	return r.client.LLMRequestEvent.Query().
		Select(
			llmrequestevent.FieldModel,
			llmrequestevent.FieldPurpose,
			llmrequestevent.FieldSuccess,
			llmrequestevent.FieldInputTokens,
			llmrequestevent.FieldOutputTokens,
			llmrequestevent.FieldLatencyMs,
		).
		All(ctx)
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	events, err := r.usageRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}

	byPurpose := make(map[string]*PurposeUsage)
	latency := make(map[string]int64)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Calls++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for purpose, u := range byPurpose {
		u.AvgLatencyMs = latency[purpose] / int64(u.Calls)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	events, err := r.usageRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func toLLMEvent(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			RequestID:    e.RequestID,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorKind:    e.ErrorKind,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
