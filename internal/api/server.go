// Package api exposes the card-generation pipeline over HTTP for tooling
// that prefers uploads to a local binary. Each request runs one synchronous
// pipeline pass; there is no queue and no state between requests.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmasdeu/ankigen/internal/cards"
	"github.com/jmasdeu/ankigen/internal/config"
)

// Server is the HTTP surface of ankigen.
type Server struct {
	router chi.Router
	rules  cards.Rules
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(rules cards.Rules, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		rules: rules,
		log:   log,
		cfg:   cfg,
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

	// API endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.Server.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.Server.APIKey, s.log))
		}
		r.Post("/api/cards", s.handleGenerateCards)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
