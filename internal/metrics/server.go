package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter exposes /metrics for gatherer and a /healthz liveness probe.
func NewRouter(gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Server serves the metrics router until its context is cancelled.
type Server struct {
	srv    *http.Server
	logger zerolog.Logger
	done   chan struct{}
}

// NewServer creates a metrics server bound to addr.
func NewServer(addr string, gatherer prometheus.Gatherer, logger zerolog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(gatherer),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		logger: logger.With().Str("component", "MetricsServer").Logger(),
		done:   make(chan struct{}),
	}
}

// Done is closed once a started server has finished shutting down.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start binds the listener and serves in the background. Bind errors are returned.
// The server shuts down when ctx is done.
func (s *Server) Start(ctx context.Context) (net.Addr, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(s.done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Metrics server graceful shutdown failed")
		}
	}()

	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Metrics server started")
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Metrics server stopped")
		}
	}()

	return ln.Addr(), nil
}
