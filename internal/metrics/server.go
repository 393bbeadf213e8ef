package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gozar/internal/config"
)

const readHeaderTimeout = 5 * time.Second

// Server exposes the registry on /metrics. It is inert when no address is
// configured.
type Server struct {
	logger   *zap.Logger
	addr     string
	server   *http.Server
	listener net.Listener
}

func NewServer(lc fx.Lifecycle, cfg *config.Config, reg *prometheus.Registry, logger *zap.Logger) *Server {
	s := &Server{
		logger: logger.With(zap.String("component", "metrics_server")),
		addr:   cfg.Metrics.Addr,
	}
	if s.addr == "" {
		return s
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})
	return s
}

// Enabled reports whether the endpoint is configured.
func (s *Server) Enabled() bool {
	return s.server != nil
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

func (s *Server) start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	s.logger.Info("serving metrics", zap.String("addr", s.Addr()))
	return nil
}

func (s *Server) stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down metrics server: %w", err)
	}
	return nil
}
