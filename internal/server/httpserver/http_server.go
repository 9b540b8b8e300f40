// Package httpserver assembles the site's HTTP surface: page routes, static
// assets, health and metrics, wrapped in the shared middleware chain.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/emberandoak/website/internal/metrics"
	"github.com/emberandoak/website/internal/server/handlers"
	"github.com/emberandoak/website/internal/server/middleware"
	"github.com/emberandoak/website/internal/templates"
)

// Options configures the server beyond its listen address.
type Options struct {
	Addr     string
	Handlers *handlers.Handlers
	Metrics  *metrics.PrometheusRecorder
	Logger   *slog.Logger
}

// Server serves the site over HTTP.
type Server struct {
	opts   Options
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
}

// New assembles the route table and middleware chain. The listener is not
// bound until Start.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	opts.Handlers.Register(mux)
	mux.Handle("GET /static/", templates.Static())
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics.Handler())
	}

	var rec metrics.Recorder = metrics.Noop{}
	if opts.Metrics != nil {
		rec = opts.Metrics
	}
	chain := middleware.Chain(logger, rec)

	return &Server{
		opts:   opts,
		logger: logger,
		srv: &http.Server{
			Handler:           chain(mux),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Listen binds the listen address. Binding is split from Serve so an
// occupied port fails fast with a clear error instead of a log line from a
// background goroutine.
func (s *Server) Listen(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.opts.Addr, err)
	}
	s.ln = ln
	return nil
}

// Serve accepts connections until Stop or a listener error. Listen must have
// succeeded first.
func (s *Server) Serve() error {
	s.logger.Info("HTTP server started", slog.String("addr", s.ln.Addr().String()))
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// Start binds and serves in one call.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve()
}

// Handler exposes the fully assembled handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr reports the bound address, useful when Addr was ":0".
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.opts.Addr
	}
	return s.ln.Addr().String()
}

// Stop drains in-flight requests until the context expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server stopping")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
