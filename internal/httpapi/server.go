// Package httpapi exposes the tax engine over HTTP: a synchronous
// POST /v1/reports endpoint, a GET /v1/reports/{cache-key} cached
// lookup, and a /v1/reports/stream websocket that accepts a
// createReportRequest as its first message and pushes one progress
// event per completed check (SPEC_FULL.md §11).
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/spiffler33/taxhawk/internal/cache"
	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/orchestrator"
	"github.com/spiffler33/taxhawk/pkg/logger"
)

// Server wires the orchestrator and cache behind chi routes.
type Server struct {
	router       chi.Router
	orchestrator *orchestrator.Orchestrator
	store        *cache.Store
	log          zerolog.Logger
}

// New builds a Server. store may be nil, in which case every request is
// computed fresh and GET /v1/reports/{id} is unavailable.
func New(log zerolog.Logger, store *cache.Store) *Server {
	s := &Server{
		orchestrator: orchestrator.New(log),
		store:        store,
		log:          logger.Scoped(log, "httpapi"),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/v1/reports", func(r chi.Router) {
		r.Post("/", s.handleCreateReport)
		r.Get("/{id}", s.handleGetReport)
		r.Get("/stream", s.handleStreamReport)
	})
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s
}

// Router exposes the underlying chi.Router for http.ListenAndServe.
func (s *Server) Router() chi.Router { return s.router }

type createReportRequest struct {
	Profile  model.SalaryProfile `json:"profile"`
	Holdings model.Holdings      `json:"holdings"`
	Options  model.Options       `json:"options"`
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report := s.orchestrator.Evaluate(req.Profile, req.Holdings, req.Options)

	if s.store != nil {
		if key, err := cache.Key(req.Profile, req.Holdings, req.Options); err == nil {
			if err := s.store.Put(r.Context(), key, report); err != nil {
				s.log.Warn().Err(err).Msg("failed to cache report")
			}
		}
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "cache not configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	report, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "cache lookup failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

