// Package server exposes puzzle generation over HTTP. Generated puzzles
// are persisted in a [Store] and generation results are memoized in a
// [cache.Cache] keyed by the normalized input.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridwright/gridwright/pkg/cache"
)

type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// New builds the server. cacheTTL bounds the lifetime of memoized generation
// results; zero or negative selects [cache.DefaultTTL].
func New(addr string, logger *log.Logger, store Store, gencache cache.Cache, cacheTTL time.Duration) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	addRoutes(r, logger, store, gencache, cacheTTL)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

func addRoutes(r chi.Router, logger *log.Logger, store Store, gencache cache.Cache, cacheTTL time.Duration) {
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultTTL
	}
	r.Get("/healthz", handleHealth(logger, store, gencache))
	r.Route("/api/puzzles", func(r chi.Router) {
		r.Post("/", handleCreatePuzzle(logger, store, gencache, cacheTTL))
		r.Get("/{id}", handleGetPuzzle(store))
	})
}

func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.logger.Info("server listening", "addr", ln.Addr().String())

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func requestLogger(logger *log.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
