package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/rollprep/internal/program"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *program.Service
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *program.Service, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/state", s.handleState)
	s.router.Get("/api/v1/triage", s.handleTriage)

	// Mutating endpoints (API key required when one is configured)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/plan/generate", s.handleGenerateWeek)
		r.Post("/api/v1/logs", s.handleLogSession)
		r.Post("/api/v1/actions/{kind}", s.handleQuickAction)
		r.Post("/api/v1/week/advance", s.handleAdvanceWeek)
		r.Put("/api/v1/profile", s.handleUpdateProfile)
		r.Put("/api/v1/readiness", s.handleUpdateReadiness)
	})
}
