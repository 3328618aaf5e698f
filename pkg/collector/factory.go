package collector

import (
	"k8s.io/client-go/kubernetes"

	"github.com/clusterlens/clusterlens/pkg/collector/cluster"
	"github.com/clusterlens/clusterlens/pkg/collector/core"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateCoreCollector() Collector
	CreateClusterInfoCollector() InfoCollector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// ClientSet is the Kubernetes API client shared by all collectors.
	ClientSet kubernetes.Interface

	// Namespaces is the resolved set of namespaces to audit.
	Namespaces []string

	// ExcludeAttrs are wildcard patterns for labels and annotations to
	// drop from collected records.
	ExcludeAttrs []string

	// Hostname overrides local hostname resolution. Nil means os.Hostname.
	Hostname core.HostnameFunc
}

// CreateCoreCollector creates the pod, config map, and node collector.
func (f *DefaultFactory) CreateCoreCollector() Collector {
	return &core.Collector{
		ClientSet:    f.ClientSet,
		Namespaces:   f.Namespaces,
		ExcludeAttrs: f.ExcludeAttrs,
		Hostname:     f.Hostname,
	}
}

// CreateClusterInfoCollector creates the API server info collector.
func (f *DefaultFactory) CreateClusterInfoCollector() InfoCollector {
	return &cluster.Collector{ClientSet: f.ClientSet}
}
