package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/clusterlens/clusterlens/pkg/auditor"
	"github.com/clusterlens/clusterlens/pkg/oci"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Push an audit report to an OCI registry",
		Description: `Packages a previously generated report file as an OCI artifact and pushes
it to a registry, so reports can be versioned and distributed alongside
container images.

# Examples

Push a report with an explicit tag:
  lensctl publish --report report.json --ref ghcr.io/acme/reports:2026-08-26

Push to a local registry over plain HTTP:
  lensctl publish -r report.yaml --ref localhost:5000/reports --plain-http`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the report file to publish (json or yaml)",
			},
			&cli.StringFlag{
				Name:     "ref",
				Required: true,
				Usage:    "OCI reference to push to (e.g., ghcr.io/org/reports:tag; default tag: latest)",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry (for local development)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reportPath := cmd.String("report")

			// Fail on malformed reports before touching the registry.
			report, err := auditor.ReportFromFile(reportPath)
			if err != nil {
				return fmt.Errorf("failed to load report %q: %w", reportPath, err)
			}
			if report.Kind != auditor.KindReport {
				return fmt.Errorf("file %q is not an audit report (kind: %q)", reportPath, report.Kind)
			}

			digest, err := oci.Push(ctx, reportPath, cmd.String("ref"), cmd.Bool("plain-http"))
			if err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}

			slog.Info("report published",
				slog.String("ref", cmd.String("ref")),
				slog.String("digest", digest),
			)
			return nil
		},
	}
}
