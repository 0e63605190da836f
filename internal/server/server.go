// Package server exposes the solvers over HTTP.
//
// The API is a small JSON-over-HTTP surface intended for batch tooling and
// experiment drivers that do not want to shell out to the CLI:
//
//	POST /v1/count      evaluate a fixed arrangement
//	POST /v1/minimize   exact crossing minimization
//	POST /v1/decide     bounded decision variant
//	GET  /healthz       liveness probe
//
// Solved instances are cached by graph hash through the same cache backends
// the CLI uses.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/linarr-project/linarr/pkg/cache"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxVertices rejects minimize/decide requests above this size before
	// the solver runs. Zero means the solver's own capacity limit applies.
	MaxVertices int

	// MemoWidth is passed through to the subset solver.
	MemoWidth int
}

// Server routes solver requests and owns the result cache.
type Server struct {
	cfg    Config
	logger *log.Logger
	store  cache.Cache
	keyer  cache.Keyer
	router chi.Router
}

// New builds a server. The cache may be a null cache; it is closed by Close,
// not by the caller.
func New(cfg Config, logger *log.Logger, store cache.Cache) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
		keyer:  cache.NewDefaultKeyer(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/count", s.handleCount)
		r.Post("/minimize", s.handleMinimize)
		r.Post("/decide", s.handleDecide)
	})
	s.router = r
	return s
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Close releases the result cache.
func (s *Server) Close() error { return s.store.Close() }

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a 10 second drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // solver runs can outlast any fixed write budget
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
