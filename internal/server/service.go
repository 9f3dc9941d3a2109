// Package server exposes the extraction pipeline and project history as a
// JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scopelens/scopelens/internal/history"
	"github.com/scopelens/scopelens/internal/pipeline"
)

type Service struct {
	logger         *slog.Logger
	processor      *pipeline.Processor
	store          *history.Store
	maxUploadBytes int64
}

func NewService(logger *slog.Logger, processor *pipeline.Processor, store *history.Store, maxUploadBytes int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 25 << 20
	}
	return &Service{
		logger:         logger,
		processor:      processor,
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes builds the HTTP router.
func (s *Service) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/projects", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Get("/", s.handleList)
		r.Delete("/", s.handleClear)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

// instrument records request duration against the chi route pattern so path
// parameters don't explode the label set.
func (s *Service) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}
		recordHTTPRequestDuration(r.Method, pattern, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
