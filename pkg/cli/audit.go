package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/clusterlens/clusterlens/pkg/auditor"
	"github.com/clusterlens/clusterlens/pkg/k8s/provider"
	"github.com/clusterlens/clusterlens/pkg/serializer"
)

func auditCmd() *cli.Command {
	return &cli.Command{
		Name:                  "audit",
		EnableShellCompletion: true,
		Usage:                 "Collect a point-in-time inventory of cluster resources",
		Description: `Collects pods, config maps, and nodes from the cluster and writes a
normalized inventory report including:
  - Pod metadata, host flags, security contexts, and all container groups
  - ConfigMap metadata and data
  - Node metadata, system info, and the local-node marker

Failures inside a collection phase never abort the run; they are recorded
in the report alongside the records that were collected.

The report can be output in JSON, YAML, or table format.

# Examples

Audit all namespaces, print YAML to stdout:
  lensctl audit

Audit two namespaces into a JSON file:
  lensctl audit -n default -n kube-system --format json --output report.json

Write the report into a ConfigMap:
  lensctl audit --output cm://clusterlens/report

Drop noisy labels and annotations:
  lensctl audit --exclude-attr 'kubectl.kubernetes.io/*' --exclude-attr '*revision'`,
		Flags: []cli.Flag{
			namespacesFlag,
			excludeFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer closeSerializer(ser)

			a := &auditor.Auditor{
				Version: version,
				Provider: &provider.Provider{
					Kubeconfig: cmd.String("kubeconfig"),
					Requested:  cmd.StringSlice("namespace"),
				},
				Serializer:   ser,
				ExcludeAttrs: cmd.StringSlice("exclude-attr"),
			}

			report, err := a.Run(ctx)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			slog.Info("audit complete",
				slog.Int("pods", len(report.Inventory.Pods)),
				slog.Int("configmaps", len(report.Inventory.ConfigMaps)),
				slog.Int("nodes", len(report.Inventory.Nodes)),
				slog.Int("errors", len(report.Errors)),
			)
			return nil
		},
	}
}
