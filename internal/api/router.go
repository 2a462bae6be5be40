package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const apiPrefix = "/api/v1"

// NewRouter builds the HTTP handler with all endpoints and CORS applied.
// An empty allowedOrigins allows any origin.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(h.logger))

	// Routes sit on the root router: a PathPrefix subrouter answers a
	// method mismatch with 404 instead of 405.
	r.HandleFunc(apiPrefix+"/health", h.HealthCheck).Methods(http.MethodGet)

	// Reports
	r.HandleFunc(apiPrefix+"/reports/parse", h.ParseReport).Methods(http.MethodPost)

	// Questions
	r.HandleFunc(apiPrefix+"/questions", h.GenerateQuestions).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/question-sets/{id}", h.GetQuestionSet).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/users/{userID}/question-sets", h.ListQuestionSets).Methods(http.MethodGet)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}
