package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/clusterlens/clusterlens/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the inventory API server",
		Description: `Starts an HTTP server that audits the cluster on an interval and serves
the latest report.

# Endpoints

  /health        liveness probe
  /ready         readiness probe (ready after the first audit)
  /metrics       Prometheus metrics
  /v1/inventory  latest report; ?kind=pods|configmaps|nodes for a subset

# Examples

Serve on the default port, re-auditing every 10 minutes:
  lensctl serve

Serve on port 9090, re-auditing every minute, two namespaces only:
  lensctl serve --port 9090 --interval 1m -n default -n kube-system`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port to listen on",
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Value:   10 * time.Minute,
				Usage:   "Interval between audit runs (0 runs a single audit at startup)",
			},
			namespacesFlag,
			excludeFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Config{
				Kubeconfig:    cmd.String("kubeconfig"),
				Namespaces:    cmd.StringSlice("namespace"),
				ExcludeAttrs:  cmd.StringSlice("exclude-attr"),
				Port:          int(cmd.Int("port")),
				AuditInterval: cmd.Duration("interval"),
			})
		},
	}
}
