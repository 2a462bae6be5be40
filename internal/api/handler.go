package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/report"
	"github.com/abhisek/scoreprep/internal/reportsrc"
	"github.com/abhisek/scoreprep/internal/store"
)

// MaxCount caps the number of questions one request may ask for.
const MaxCount = 50

// Handler serves the question API.
type Handler struct {
	pipeline  *problemgen.Pipeline
	questions store.QuestionRepo
	provider  string
	logger    *slog.Logger
}

// NewHandler creates a Handler. questions may be nil, which disables saving
// and listing question sets.
func NewHandler(p *problemgen.Pipeline, questions store.QuestionRepo, provider string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if provider == "" {
		provider = "none"
	}
	return &Handler{
		pipeline:  p,
		questions: questions,
		provider:  provider,
		logger:    logger,
	}
}

type generateRequest struct {
	Text   string `json:"text"`
	Count  int    `json:"count"`
	UserID string `json:"user_id"`
	Source string `json:"source"`
}

type generateResponse struct {
	Questions  []problemgen.GeneratedQuestion `json:"questions"`
	Source     problemgen.Source              `json:"source"`
	Allocation map[report.Section]int         `json:"allocation,omitempty"`
	RequestID  string                         `json:"request_id,omitempty"`
	SetID      string                         `json:"set_id,omitempty"`
}

type parseResponse struct {
	Report         *report.PerformanceReport         `json:"report"`
	WeakTopics     map[report.Section][]report.Topic `json:"weak_topics"`
	RankedSections []report.Section                  `json:"ranked_sections"`
	HasData        bool                              `json:"has_data"`
}

type questionSetResponse struct {
	ID        string                         `json:"id"`
	UserID    string                         `json:"user_id"`
	Source    string                         `json:"source"`
	Origin    string                         `json:"origin"`
	CreatedAt time.Time                      `json:"created_at"`
	Questions []problemgen.GeneratedQuestion `json:"questions,omitempty"`
}

func jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}

// HealthCheck reports liveness and the configured generation provider.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]any{
		"status":             "ok",
		"llm_provider":       h.provider,
		"generation_enabled": h.pipeline.GenerationEnabled(),
		"timestamp":          time.Now().UTC(),
	}, http.StatusOK)
}

// ParseReport returns the performance summary of a report.
func (h *Handler) ParseReport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		errorResponse(w, "report text is required", http.StatusBadRequest)
		return
	}

	parser := h.pipeline.Parser()
	t := parser.Taxonomy()
	rep := parser.Parse(req.Text)

	jsonResponse(w, parseResponse{
		Report:         rep,
		WeakTopics:     t.WeakTopicsBySection(rep),
		RankedSections: t.RankByIncorrect(rep),
		HasData:        rep.HasData(),
	}, http.StatusOK)
}

// GenerateQuestions produces a practice set for a report and saves it when
// a user id is given.
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Count < 0 || req.Count > MaxCount {
		errorResponse(w, fmt.Sprintf("count must be between 0 and %d", MaxCount), http.StatusBadRequest)
		return
	}
	if req.UserID != "" && h.questions == nil {
		errorResponse(w, "question storage is not configured", http.StatusServiceUnavailable)
		return
	}

	res := h.pipeline.Run(r.Context(), req.Text, req.Count)
	if res.Err != nil {
		h.logger.Info("question set served with fallback content",
			"source", res.Source, "request_id", res.RequestID, "err", res.Err)
	}

	resp := generateResponse{
		Questions:  res.Questions,
		Source:     res.Source,
		Allocation: res.Allocation,
		RequestID:  res.RequestID,
	}

	if req.UserID != "" && len(res.Questions) > 0 {
		id, err := problemgen.SaveResult(r.Context(), h.questions, req.UserID, req.Source, res)
		if err != nil {
			h.logger.Error("save question set", "user_id", req.UserID, "err", err)
			errorResponse(w, "failed to save question set", http.StatusInternalServerError)
			return
		}
		resp.SetID = id
	}

	jsonResponse(w, resp, http.StatusOK)
}

// ListQuestionSets returns a user's saved sets, newest first.
func (h *Handler) ListQuestionSets(w http.ResponseWriter, r *http.Request) {
	if h.questions == nil {
		errorResponse(w, "question storage is not configured", http.StatusServiceUnavailable)
		return
	}

	userID := mux.Vars(r)["userID"]
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			errorResponse(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	sets, err := h.questions.ListQuestionSets(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("list question sets", "user_id", userID, "err", err)
		errorResponse(w, "failed to list question sets", http.StatusInternalServerError)
		return
	}

	out := make([]questionSetResponse, len(sets))
	for i, s := range sets {
		out[i] = toSetResponse(&s)
	}
	jsonResponse(w, map[string]any{
		"question_sets": out,
		"count":         len(out),
	}, http.StatusOK)
}

// GetQuestionSet returns one saved set with its questions.
func (h *Handler) GetQuestionSet(w http.ResponseWriter, r *http.Request) {
	if h.questions == nil {
		errorResponse(w, "question storage is not configured", http.StatusServiceUnavailable)
		return
	}

	id := mux.Vars(r)["id"]
	set, err := h.questions.GetQuestionSet(r.Context(), id)
	if err != nil {
		h.logger.Error("get question set", "id", id, "err", err)
		errorResponse(w, "failed to load question set", http.StatusInternalServerError)
		return
	}
	if set == nil {
		errorResponse(w, "question set not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, toSetResponse(set), http.StatusOK)
}

func toSetResponse(s *store.QuestionSet) questionSetResponse {
	resp := questionSetResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Source:    s.Source,
		Origin:    s.Origin,
		CreatedAt: s.CreatedAt,
	}
	if len(s.Questions) > 0 {
		resp.Questions = problemgen.FromStored(s.Questions)
	}
	return resp
}

// decodeGenerateRequest accepts a JSON body or a multipart upload with the
// report in a "file" field (text or PDF) and the other fields as form
// values.
func decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (generateRequest, error) {
	var req generateRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body := http.MaxBytesReader(w, r.Body, reportsrc.MaxSize)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
		return req, nil
	}

	if err := r.ParseMultipartForm(reportsrc.MaxSize); err != nil {
		return req, fmt.Errorf("invalid upload: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return req, errors.New("no file in upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, reportsrc.MaxSize+1))
	if err != nil {
		return req, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > reportsrc.MaxSize {
		return req, reportsrc.ErrTooLarge
	}
	isPDF := strings.EqualFold(header.Header.Get("Content-Type"), "application/pdf")
	if req.Text, err = reportsrc.Decode(data, isPDF); err != nil {
		return req, fmt.Errorf("read upload: %w", err)
	}

	if s := r.FormValue("count"); s != "" {
		if req.Count, err = strconv.Atoi(s); err != nil {
			return req, fmt.Errorf("invalid count %q", s)
		}
	}
	req.UserID = r.FormValue("user_id")
	req.Source = r.FormValue("source")
	if req.Source == "" {
		req.Source = header.Filename
	}
	return req, nil
}
