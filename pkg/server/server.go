package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer interface {
	Run() error
	Shutdown() error
}

type httpServer struct {
	srv *http.Server
}

type Option func(*http.Server)

func WithAddr(host string, port uint16) Option {
	return func(s *http.Server) {
		s.Addr = fmt.Sprintf("%s:%d", host, port)
	}
}

func WithTimeout(read, write, idle time.Duration) Option {
	return func(s *http.Server) {
		s.ReadTimeout = read
		s.WriteTimeout = write
		s.IdleTimeout = idle
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *http.Server) {
		s.Handler = handler
	}
}

func NewHTTPServer(opts ...Option) HTTPServer {
	srv := &http.Server{}

	for _, opt := range opts {
		opt(srv)
	}

	return &httpServer{srv: srv}
}

func (s *httpServer) Run() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server stopped: %w", err)
	}

	return nil
}

func (s *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
