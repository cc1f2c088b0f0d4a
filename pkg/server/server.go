// Package server exposes filtering sessions over HTTP.
//
// Each client creates a session, posts dimension changes to it and reads
// back the selection, the selectable values per dimension and the visible
// items. Sessions live in memory until a client deletes them or, with
// server.session_ttl set, until they sit idle longer than that.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// ShutdownTimeout bounds how long ListenAndServe waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server serves the session API for one catalog.
type Server struct {
	cfg        *config.Config
	store      *Store
	metrics    *Metrics
	sorter     *display.Sorter
	sessionTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics uses m instead of a fresh metrics registry.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithSessionTTL overrides server.session_ttl; zero disables expiry.
func WithSessionTTL(d time.Duration) Option {
	return func(s *Server) {
		s.sessionTTL = d
	}
}

// New creates a server for engine's catalog.
//
// Parameters:
//   - cfg: Labels and locale
//   - engine: Engine every session evaluates against
//   - opts: Optional settings
//
// Returns:
//   - *Server: The server
//   - error: When the configured locale is invalid
func New(cfg *config.Config, engine *filtering.Engine, opts ...Option) (*Server, error) {
	sorter, err := display.NewSorter(cfg.GetLocale())
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, store: NewStore(engine), sorter: sorter, sessionTTL: cfg.GetSessionTTL()}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s, nil
}

// Store returns the session store.
func (s *Server) Store() *Store {
	return s.store
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware)

	r.Get("/healthz", healthHandler)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)
			r.Post("/changes", s.applyChange)
			r.Post("/reset", s.resetSession)
			r.Post("/undo", s.undoSession)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
//
// Returns:
//   - error: When listening fails or shutdown times out
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.sessionTTL > 0 {
		expireCtx, stopExpiry := context.WithCancel(ctx)
		defer stopExpiry()
		go s.expireSessions(expireCtx, expiryInterval(s.sessionTTL))
	}

	errCh := make(chan error, 1)
	go func() {
		verbose.Infof("Session service listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	verbose.Infof("Session service stopped")
	return <-errCh
}

// expireSessions drops idle sessions every interval until ctx is done.
func (s *Server) expireSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Server) sweep() {
	if n := s.store.Expire(s.sessionTTL); n > 0 {
		verbose.Infof("Expired %d idle sessions", n)
	}
	s.metrics.sessionsActive.Set(float64(s.store.Len()))
}

// expiryInterval checks often enough that a session outlives its TTL by at
// most half of it, and at most once a second.
func expiryInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, time.Second)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		verbose.Printf("HTTP %s %s %d %s %s",
			r.Method,
			r.URL.Path,
			ww.Status(),
			time.Since(start),
			middleware.GetReqID(r.Context()),
		)
	})
}
