package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/clusterlens/clusterlens/pkg/auditor"
	"github.com/clusterlens/clusterlens/pkg/k8s/provider"
	"github.com/clusterlens/clusterlens/pkg/logging"
	"github.com/clusterlens/clusterlens/pkg/server"
)

const (
	name           = "clusterlens-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/clusterlens/clusterlens/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config carries the settings the serve command exposes as flags.
type Config struct {
	Kubeconfig    string
	Namespaces    []string
	ExcludeAttrs  []string
	Port          int
	AuditInterval time.Duration
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, wires the audit runner, and handles graceful
// shutdown. Returns an error if the server fails to start or encounters a
// fatal error.
func Serve(ctx context.Context, cfg Config) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	runner := &auditor.Auditor{
		Version: version,
		Provider: &provider.Provider{
			Kubeconfig: cfg.Kubeconfig,
			Requested:  cfg.Namespaces,
		},
		ExcludeAttrs: cfg.ExcludeAttrs,
	}

	srvCfg := server.DefaultConfig()
	if cfg.Port != 0 {
		srvCfg.Port = cfg.Port
	}
	if cfg.AuditInterval != 0 {
		srvCfg.AuditInterval = cfg.AuditInterval
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(srvCfg),
		server.WithRunner(runner),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
