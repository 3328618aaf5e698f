package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/clusterlens/clusterlens/pkg/auditor"
)

// Server exposes audit reports over HTTP. It runs the audit loop in the
// background and serves the most recent report.
type Server struct {
	cfg     *Config
	name    string
	version string
	runner  auditor.Runner

	mu     sync.RWMutex
	ready  bool
	latest *auditor.Report

	limiter *rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the service name reported by the health endpoints.
func WithName(name string) Option {
	return func(s *Server) { s.name = name }
}

// WithVersion sets the version reported by the health endpoints.
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithRunner sets the audit runner invoked by the background loop.
func WithRunner(runner auditor.Runner) Option {
	return func(s *Server) { s.runner = runner }
}

// New builds a Server from the given options.
func New(opts ...Option) *Server {
	s := &Server{
		cfg:  DefaultConfig(),
		name: "clusterlens",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateLimitBurst)
	return s
}

// Run starts the HTTP server and the audit loop, blocking until the
// context is cancelled or a termination signal arrives.
func (s *Server) Run(ctx context.Context) error {
	if s.runner == nil {
		return errors.New("no audit runner configured")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(s.cfg.Address, strconv.Itoa(s.cfg.Port)),
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.auditLoop(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// auditLoop runs the first audit immediately, announces readiness, then
// repeats on the configured interval. A failed run keeps the previous
// report in place.
func (s *Server) auditLoop(ctx context.Context) error {
	s.runAudit(ctx)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Debug("sd_notify failed", "error", err)
	}

	if s.cfg.AuditInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.cfg.AuditInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runAudit(ctx)
		}
	}
}

func (s *Server) runAudit(ctx context.Context) {
	start := time.Now()
	report, err := s.runner.Run(ctx)
	if err != nil {
		slog.Error("audit run failed", "error", err)
		return
	}
	s.setReport(report)
	slog.Info("audit run completed",
		"duration", time.Since(start).Round(time.Millisecond),
		"pods", len(report.Inventory.Pods),
		"configmaps", len(report.Inventory.ConfigMaps),
		"nodes", len(report.Inventory.Nodes),
		"phaseErrors", len(report.Errors))
}
