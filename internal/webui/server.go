package webui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medsum/internal/config"
	"medsum/internal/logging"
	"medsum/internal/upload"
)

const shutdownTimeout = 5 * time.Second

// Server hosts the upload page on the configured bind address.
type Server struct {
	bind      string
	maxUpload int64
	client    upload.Summarizer
	logger    *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

// New builds a server around client. The summarizer is shared across
// requests; each request gets its own controller.
func New(cfg *config.Config, client upload.Summarizer, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("webui: config required")
	}
	if client == nil {
		return nil, errors.New("webui: summarizer required")
	}
	s := &Server{
		bind:      strings.TrimSpace(cfg.Web.Bind),
		maxUpload: cfg.MaxUploadBytes(),
		client:    client,
		logger:    logging.NewComponentLogger(logger, "webui"),
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler, useful for httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)
	r.Post("/reset", s.handleReset)
	return r
}

// Start listens on the bind address and serves until ctx ends or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("web listen: %w", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("web server error", logging.Args(logging.Error(err))...)
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("web server listening", logging.Args(logging.String("address", listener.Addr().String()))...)
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, waiting briefly for in-flight uploads.
func (s *Server) Stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request", logging.Args(
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", ww.Status()),
				logging.Int("bytes", ww.BytesWritten()),
				logging.Duration("elapsed", time.Since(start)),
				logging.String("request_id", middleware.GetReqID(r.Context())),
				logging.String("remote", r.RemoteAddr),
			)...)
		})
	}
}
