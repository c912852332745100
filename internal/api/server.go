package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/docview/internal/config"
	"github.com/dgallion1/docview/internal/pipeline"
	"github.com/dgallion1/docview/internal/stats"
	"github.com/dgallion1/docview/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docview.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	docs         *store.Store
	renderStats  *stats.Latency
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, renderStats *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		docs:         orch.Documents(),
		renderStats:  renderStats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocviewAPIKey, s.log))

		r.Post("/api/documents", s.handleIngest)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)

		r.Get("/api/documents", s.handleListDocuments)
		r.Route("/api/documents/{docID}", func(r chi.Router) {
			r.Get("/", s.handleGetDocument)
			r.Delete("/", s.handleDeleteDocument)
			r.Get("/search", s.handleSearch)
			r.Get("/pages/{page}", s.handlePage)
			r.Get("/active", s.handleActive)
		})

		r.Get("/api/stats/render", s.handleRenderStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"documents":   s.docs.Len(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
