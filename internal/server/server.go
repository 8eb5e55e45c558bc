package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/internal/cache"
	"github.com/njchilds90/gosolve/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server wires the tool handler, the rate limiter and the cache into an
// http.Server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	cache      cache.Repository
	logger     *slog.Logger
}

// New builds a server from cfg. repo may be nil to disable caching; it is
// closed when the server stops.
func New(cfg config.Config, solver *gosolve.Solver, repo cache.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []HandlerOption{
		WithLogger(logger),
		WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	}
	if repo != nil {
		opts = append(opts, WithCache(repo))
	}

	var handler http.Handler = NewHandler(solver, opts...)
	s := &Server{cache: repo, logger: logger}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		handler = RateLimitMiddleware(s.limiter, handler)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Addr() string { return s.httpServer.Addr }

// Run listens on the configured port until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.release()
		return fmt.Errorf("net.Listen() > %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully and releases the limiter and cache.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.release()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gosolve tool server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("httpServer.Serve() > %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down tool server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpServer.Shutdown() > %w", err)
	}
	return nil
}

func (s *Server) release() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}
}
