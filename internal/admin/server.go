// Package admin exposes a running engine.Coordinator's queue depth and
// utilization over a small read-only HTTP surface, for a long-lived
// demo process to be observed externally. It never mutates the
// Coordinator: submission stays in-process only, so the "no wire
// protocol" boundary of the scheduling core is preserved.
package admin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/loomwork/loom/internal/logging"
	"github.com/loomwork/loom/pkg/engine"
)

// Server is the read-only introspection HTTP server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	coord     *engine.Coordinator
	startTime time.Time
}

// New creates a Server wrapping coord, with all routes registered.
func New(coord *engine.Coordinator, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logging.ForComponent(logger, "admin"),
		coord:     coord,
		startTime: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/pending", s.handlePending)
	r.Get("/utilization", s.handleUtilization)
}
