package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/llm"
	"github.com/abhisek/scoreprep/internal/problemgen"
	"github.com/abhisek/scoreprep/internal/store"
)

const sampleReport = `
40 Total Questions
31 Correct Answers
9 Incorrect Answers
1 Reading and Writing B C; Incorrect
2 Reading and Writing A A; Correct
1 Math 12 14; Incorrect
2 Math 3 3; Correct
`

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type testServer struct {
	url   string
	store *store.Store
	mock  *llm.MockProvider
}

func newTestServer(t *testing.T, withStore bool, responses ...llm.MockResponse) *testServer {
	t.Helper()

	ts := &testServer{}
	opts := []problemgen.Option{problemgen.WithLogger(quiet)}
	provider := "none"
	if len(responses) > 0 {
		ts.mock = llm.NewMockProvider(responses...)
		opts = append(opts, problemgen.WithProvider(ts.mock))
		provider = llm.ProviderMock
	}
	p, err := problemgen.NewPipeline(opts...)
	require.NoError(t, err)

	var repo store.QuestionRepo
	if withStore {
		s, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		ts.store = s
		repo = s.QuestionRepo()
	}

	srv := httptest.NewServer(NewRouter(NewHandler(p, repo, provider, quiet), nil))
	t.Cleanup(srv.Close)
	ts.url = srv.URL
	return ts
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func mockQuestions(n int) string {
	qs := make([]problemgen.GeneratedQuestion, n)
	for i := range qs {
		qs[i] = problemgen.GeneratedQuestion{
			ID:      fmt.Sprintf("m%d", i),
			Text:    fmt.Sprintf("Mock question %d", i),
			Topic:   "Algebra",
			Options: []string{"1", "2", "3", "4"},
			Answer:  "C",
		}
	}
	b, _ := json.Marshal(qs)
	return string(b)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, false)

	resp, body := getJSON(t, ts.url+"/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "none", body["llm_provider"])
	assert.Equal(t, false, body["generation_enabled"])
}

func TestParseReport(t *testing.T) {
	ts := newTestServer(t, false)

	resp, body := postJSON(t, ts.url+"/api/v1/reports/parse", map[string]any{"text": sampleReport})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rep := body["report"].(map[string]any)
	assert.EqualValues(t, 40, rep["total_questions"])
	assert.EqualValues(t, 9, rep["total_incorrect"])
	assert.Equal(t, true, body["has_data"])

	ranked := body["ranked_sections"].([]any)
	require.Len(t, ranked, 2)
	assert.Contains(t, body["weak_topics"], "Math")
}

func TestParseReport_Errors(t *testing.T) {
	ts := newTestServer(t, false)

	resp, body := postJSON(t, ts.url+"/api/v1/reports/parse", map[string]any{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	raw, err := http.Post(ts.url+"/api/v1/reports/parse", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
	raw.Body.Close()
}

func TestGenerateQuestions_Fallback(t *testing.T) {
	ts := newTestServer(t, false)

	resp, body := postJSON(t, ts.url+"/api/v1/questions", map[string]any{"text": sampleReport, "count": 7})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, string(problemgen.SourceFallback), body["source"])
	assert.Len(t, body["questions"], 7)
	assert.Nil(t, body["set_id"])
}

func TestGenerateQuestions_Generated(t *testing.T) {
	ts := newTestServer(t, false, llm.MockText(mockQuestions(5)))

	resp, body := postJSON(t, ts.url+"/api/v1/questions", map[string]any{"text": sampleReport, "count": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, string(problemgen.SourceGenerated), body["source"])
	assert.Len(t, body["questions"], 5)
	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, 1, ts.mock.CallCount())
}

func TestGenerateQuestions_EmptyText(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := postJSON(t, ts.url+"/api/v1/questions", map[string]any{"text": "", "user_id": "u1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, string(problemgen.SourceEmpty), body["source"])
	assert.Empty(t, body["questions"])
	assert.Nil(t, body["set_id"])
}

func TestGenerateQuestions_InvalidCount(t *testing.T) {
	ts := newTestServer(t, false)

	for _, count := range []int{-1, MaxCount + 1} {
		resp, body := postJSON(t, ts.url+"/api/v1/questions", map[string]any{"text": sampleReport, "count": count})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "count %d", count)
		assert.NotEmpty(t, body["error"])
	}
}

func TestGenerateQuestions_SaveWithoutStore(t *testing.T) {
	ts := newTestServer(t, false)

	resp, _ := postJSON(t, ts.url+"/api/v1/questions", map[string]any{"text": sampleReport, "user_id": "u1"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestQuestionSets_SaveListGet(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := postJSON(t, ts.url+"/api/v1/questions", map[string]any{
		"text": sampleReport, "count": 3, "user_id": "student-1", "source": "march.pdf",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	setID, _ := body["set_id"].(string)
	require.NotEmpty(t, setID)

	resp, body = getJSON(t, ts.url+"/api/v1/users/student-1/question-sets")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["count"])
	sets := body["question_sets"].([]any)
	first := sets[0].(map[string]any)
	assert.Equal(t, setID, first["id"])
	assert.Equal(t, "march.pdf", first["source"])
	assert.Equal(t, string(problemgen.SourceFallback), first["origin"])

	resp, body = getJSON(t, ts.url+"/api/v1/question-sets/"+setID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["questions"], 3)

	resp, _ = getJSON(t, ts.url+"/api/v1/question-sets/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = getJSON(t, ts.url+"/api/v1/users/student-1/question-sets?limit=zero")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = getJSON(t, ts.url+"/api/v1/users/nobody/question-sets")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["count"])
}

func TestQuestionSets_NoStore(t *testing.T) {
	ts := newTestServer(t, false)

	resp, _ := getJSON(t, ts.url+"/api/v1/users/student-1/question-sets")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGenerateQuestions_MultipartUpload(t *testing.T) {
	ts := newTestServer(t, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "report.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleReport))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("count", "4"))
	require.NoError(t, mw.WriteField("user_id", "student-2"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.url+"/api/v1/questions", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode, body["error"])
	assert.Len(t, body["questions"], 4)

	sets, err := ts.store.QuestionRepo().ListQuestionSets(context.Background(), "student-2", 0)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "report.txt", sets[0].Source)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.url + "/api/v1/questions")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMethodNotAllowed_ReadRoutes(t *testing.T) {
	ts := newTestServer(t, false)

	for _, path := range []string{"/api/v1/health", "/api/v1/question-sets/abc", "/api/v1/users/student-1/question-sets"} {
		resp, err := http.Post(ts.url+path, "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
	}

	resp, err := http.Get(ts.url + "/api/v1/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	p, err := problemgen.NewPipeline(problemgen.WithLogger(quiet))
	require.NoError(t, err)
	h := NewRouter(NewHandler(p, nil, "", quiet), []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	p, err := problemgen.NewPipeline(problemgen.WithLogger(quiet))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveListener(ctx, ln, NewRouter(NewHandler(p, nil, "", quiet), nil), quiet) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
