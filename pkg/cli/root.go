package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/clusterlens/clusterlens/pkg/logging"
)

const name = "lensctl"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/clusterlens/clusterlens/pkg/cli.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output destination: file path, '-' for stdout, or cm://namespace/name for a ConfigMap",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "Output format (json, yaml, table)",
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:  "kubeconfig",
		Usage: "Path to the kubeconfig file (default: $KUBECONFIG, then ~/.kube/config, then in-cluster)",
	}

	namespacesFlag = &cli.StringSliceFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "Namespace to audit (can be repeated; default: all namespaces)",
	}

	excludeFlag = &cli.StringSliceFlag{
		Name:  "exclude-attr",
		Usage: "Label/annotation key pattern to drop from collected records (prefix*, *suffix, *contains*, or exact; can be repeated)",
	}
)

// Run builds the root command and executes it with the given arguments.
func Run(ctx context.Context, args []string) error {
	logging.SetDefaultStructuredLogger(name, version)

	root := &cli.Command{
		Name:                  name,
		Usage:                 "Collect and serve normalized Kubernetes cluster inventory",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Commands: []*cli.Command{
			auditCmd(),
			serveCmd(),
			publishCmd(),
			versionCmd(),
		},
	}

	return root.Run(ctx, args)
}

// commandLister prints the visible subcommand names, one per line, for
// shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Fprintln(os.Stdout, sub.Name)
	}
}
