// Package cli implements the command-line interface for the lensctl tool.
//
// # Overview
//
// The lensctl CLI audits a Kubernetes cluster and produces a normalized
// inventory report of pods, config maps, and nodes. It is designed for
// cluster administrators and auditors who need a portable, point-in-time
// view of cluster state.
//
// # Commands
//
// audit - Collect a cluster inventory:
//
//	lensctl audit [--namespace NS]... [--format yaml|json|table] [--output FILE]
//	lensctl audit --output cm://namespace/configmap-name  # ConfigMap output
//
// Collects pods, config maps, and nodes, normalizes them into UID-keyed
// records, and writes the report to a file, stdout, or a Kubernetes
// ConfigMap. Phase failures never abort the run; they are recorded in the
// report next to the partial results.
//
// serve - Run the inventory API server:
//
//	lensctl serve [--port PORT] [--interval DURATION] [--namespace NS]...
//
// Audits the cluster on an interval and serves the latest report over HTTP,
// with health/readiness probes and Prometheus metrics.
//
// publish - Push a report to an OCI registry:
//
//	lensctl publish --report report.json --ref ghcr.io/org/reports:tag
//
// Packages a report file as an OCI artifact and pushes it to a registry.
//
// # Global Flags
//
//	--output, -o   Output destination (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	KUBECONFIG       Path to kubeconfig file
//	PORT             Override the serve port
//	AUDIT_INTERVAL   Override the serve audit interval
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/auditor - Audit orchestration and report assembly
//   - pkg/collector - Resource collection phases
//   - pkg/serializer - Output formatting (including ConfigMap)
//   - pkg/oci - OCI artifact packaging and push
//   - pkg/server - HTTP API server
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/clusterlens/clusterlens/pkg/cli.version=1.0.0'"
package cli
