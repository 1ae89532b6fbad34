// Package server exposes rendered faces over HTTP.
//
// Routes:
//
//	GET /healthz                        liveness and build version
//	GET /faces                          expressions and their configurations
//	GET /faces/{expression}.png         rasterized face (cols, rows, scale, bg)
//	GET /faces/{expression}.txt         half-block text (cols, rows, bg, color)
//	GET /stats                          cache counters
//
// All routes share one synchronized store, so a face requested at the same
// size twice is rasterized once.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/errors"
)

// Default viewport for requests without cols/rows.
const (
	DefaultCols = 40
	DefaultRows = 20
)

// Store is the subset of *cache.Synchronized the server needs.
type Store interface {
	cache.Fetcher
	Stats() cache.Stats
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMaxCells caps cols and rows per request.
func WithMaxCells(n int) Option {
	return func(s *Server) { s.maxCells = n }
}

// Server serves faces from a shared store.
type Server struct {
	store    Store
	logger   *log.Logger
	maxCells int
	router   chi.Router
}

// New builds a server around store.
func New(store Store, opts ...Option) *Server {
	s := &Server{
		store:    store,
		logger:   log.Default(),
		maxCells: 400,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxCells > errors.MaxCells {
		s.maxCells = errors.MaxCells
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Route("/faces", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{file}", s.handleFace)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}
