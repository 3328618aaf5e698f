package auditor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clusterlens/clusterlens/pkg/collector"
	"github.com/clusterlens/clusterlens/pkg/collector/core"
	"github.com/clusterlens/clusterlens/pkg/inventory"
	"github.com/clusterlens/clusterlens/pkg/k8s/provider"
	"github.com/clusterlens/clusterlens/pkg/serializer"
)

// Auditor coordinates one audit pass: it resolves the namespaces to inspect,
// runs the collection phases in order, and assembles the report. Collection
// is deliberately sequential; the local-node phase reads the node phase
// output, and a point-in-time pass has no concurrent writers.
type Auditor struct {
	// Version is the collector version stamped into report metadata.
	Version string

	// Provider supplies the API client and the namespace set.
	Provider *provider.Provider

	// Factory creates the collectors. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer receives the finished report. If nil, the report is only
	// returned to the caller.
	Serializer serializer.Serializer

	// ExcludeAttrs are wildcard patterns for labels and annotations to
	// drop from collected records.
	ExcludeAttrs []string

	// Hostname overrides local hostname resolution for the local-node
	// phase. Nil means os.Hostname.
	Hostname core.HostnameFunc
}

// Run executes one audit pass and returns the report. A failure to reach the
// cluster at all is an error; failures inside collection phases are not, and
// surface as report errors alongside the partial inventory.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	slog.Debug("starting audit run")

	start := time.Now()
	defer func() {
		auditRunDuration.Observe(time.Since(start).Seconds())
	}()

	namespaces, err := a.Provider.Namespaces(ctx)
	if err != nil {
		auditRunTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to resolve namespaces: %w", err)
	}

	clientset, err := a.Provider.Client()
	if err != nil {
		auditRunTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if a.Factory == nil {
		a.Factory = &collector.DefaultFactory{
			ClientSet:    clientset,
			Namespaces:   namespaces,
			ExcludeAttrs: a.ExcludeAttrs,
			Hostname:     a.Hostname,
		}
	}

	report := NewReport(a.Version)
	report.Metadata["namespaces"] = strings.Join(namespaces, ",")

	// Cluster facts feed report metadata; losing them degrades the report
	// but never blocks resource collection.
	phaseStart := time.Now()
	info, err := a.Factory.CreateClusterInfoCollector().Collect(ctx)
	auditPhaseDuration.WithLabelValues("cluster-info").Observe(time.Since(phaseStart).Seconds())
	if err != nil {
		slog.Error("failed to collect cluster info", slog.String("error", err.Error()))
		report.Errors = append(report.Errors, inventory.PhaseError{Phase: "cluster-info", Error: err.Error()})
	} else {
		for k, v := range info {
			report.Metadata["cluster-"+k] = v
		}
	}

	phaseStart = time.Now()
	inv, phaseErrs := a.Factory.CreateCoreCollector().Collect(ctx)
	auditPhaseDuration.WithLabelValues("core").Observe(time.Since(phaseStart).Seconds())
	report.Inventory = inv
	report.Errors = append(report.Errors, phaseErrs...)

	auditResourceCount.WithLabelValues("pods").Set(float64(len(inv.Pods)))
	auditResourceCount.WithLabelValues("configmaps").Set(float64(len(inv.ConfigMaps)))
	auditResourceCount.WithLabelValues("nodes").Set(float64(len(inv.Nodes)))
	auditPhaseErrors.Set(float64(len(report.Errors)))
	auditRunTotal.WithLabelValues("success").Inc()

	slog.Debug("audit run complete",
		slog.Int("pods", len(inv.Pods)),
		slog.Int("configmaps", len(inv.ConfigMaps)),
		slog.Int("nodes", len(inv.Nodes)),
		slog.Int("errors", len(report.Errors)),
	)

	if a.Serializer != nil {
		if err := a.Serializer.Serialize(ctx, report); err != nil {
			slog.Error("failed to serialize report", slog.String("error", err.Error()))
			return report, fmt.Errorf("failed to serialize report: %w", err)
		}
	}

	return report, nil
}
