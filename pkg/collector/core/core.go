package core

import (
	"context"
	"log/slog"

	"k8s.io/client-go/kubernetes"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// Phase names used in logs and phase errors.
const (
	PhasePods       = "pods"
	PhaseConfigMaps = "configmaps"
	PhaseNodes      = "nodes"
	PhaseLocalNode  = "local-node"
)

// HostnameFunc resolves the local machine's hostname. It is injected so the
// local-node phase can be exercised without touching the host.
type HostnameFunc func() (string, error)

// Collector retrieves pods, config maps, and nodes from the cluster API and
// normalizes them into an inventory. The phases run strictly in order: pods,
// config maps, nodes, then the local-node marker, which reads the node phase
// output and makes no API call. Each phase catches and logs its own failure
// and never prevents a later phase from running.
type Collector struct {
	// ClientSet is the Kubernetes API client.
	ClientSet kubernetes.Interface

	// Namespaces is the set of namespaces to list pods in.
	Namespaces []string

	// ExcludeAttrs are wildcard patterns for labels and annotations to
	// drop from collected records. Empty means keep everything.
	ExcludeAttrs []string

	// Hostname overrides local hostname resolution. Nil means os.Hostname.
	Hostname HostnameFunc
}

// Collect runs the four collection phases and returns the inventory together
// with the errors caught at phase boundaries. The inventory is never nil and
// the call never fails as a whole; a phase that errored contributes whatever
// records it accumulated before failing.
func (c *Collector) Collect(ctx context.Context) (*inventory.Inventory, []inventory.PhaseError) {
	inv := inventory.New()
	var errs []inventory.PhaseError

	phases := []struct {
		name string
		run  func(context.Context, *inventory.Inventory) error
	}{
		{PhasePods, c.collectPods},
		{PhaseConfigMaps, c.collectConfigMaps},
		{PhaseNodes, c.collectNodes},
		{PhaseLocalNode, c.markLocalNode},
	}

	for _, phase := range phases {
		if err := phase.run(ctx, inv); err != nil {
			slog.Error("collection phase failed",
				slog.String("phase", phase.name),
				slog.String("error", err.Error()),
			)
			errs = append(errs, inventory.PhaseError{Phase: phase.name, Error: err.Error()})
		}
	}

	slog.Debug("collection complete",
		slog.Int("pods", len(inv.Pods)),
		slog.Int("configmaps", len(inv.ConfigMaps)),
		slog.Int("nodes", len(inv.Nodes)),
		slog.Int("errors", len(errs)),
	)

	return inv, errs
}

// filterAttrs applies the exclusion patterns to a label or annotation map.
func (c *Collector) filterAttrs(attrs map[string]string) map[string]string {
	if len(c.ExcludeAttrs) == 0 {
		return attrs
	}
	return inventory.FilterOut(attrs, c.ExcludeAttrs)
}
