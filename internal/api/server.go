// Package api implements the Specband HTTP API.
//
// The API exposes the assignment pipeline over HTTP for deployments where
// frequency planning runs as a shared service. A single endpoint accepts a
// network recipe and returns the computed assignment:
//
//	POST /v1/assignments
//
// Requests carry pipeline options as JSON; responses carry the assignment
// snapshot plus run statistics. Each run is tagged with a UUID so log lines
// across the pipeline stages can be correlated.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/specband/specband/pkg/observability"
	"github.com/specband/specband/pkg/pipeline"
)

// Server handles API requests by running the assignment pipeline.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
}

// NewServer creates an API server. The defaults seed every request's options,
// so config-file generator settings apply to API callers too.
func NewServer(runner *pipeline.Runner, logger *log.Logger, defaults pipeline.Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:   runner,
		logger:   logger,
		defaults: defaults,
	}
}

// Handler builds the routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/assignments", s.handleAssignments)

	return r
}

// observe logs each request and forwards timing to the API hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		observability.API().OnRequest(req.Context(), req.Method, req.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		elapsed := time.Since(start)
		observability.API().OnResponse(req.Context(), req.Method, req.URL.Path, ww.Status(), elapsed)
		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(req.Context()),
			"duration", elapsed.Round(time.Millisecond))
	})
}

// Serve runs the API server on addr until ctx is canceled, then shuts down
// gracefully with a short drain window.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
