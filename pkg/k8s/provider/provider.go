package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agnivade/levenshtein"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/clusterlens/clusterlens/pkg/k8s/client"
)

// Provider supplies the collection phases with an authenticated clientset
// and the set of namespaces to audit. Namespaces are resolved lazily on the
// first call and cached for the provider's lifetime.
type Provider struct {
	// ClientSet is the Kubernetes API client. If nil, a client is built
	// from the ambient kubeconfig on first use.
	ClientSet kubernetes.Interface

	// Kubeconfig is an explicit kubeconfig path. Empty means automatic
	// discovery (KUBECONFIG, ~/.kube/config, in-cluster).
	Kubeconfig string

	// Requested restricts the audit to these namespaces. Empty means all
	// namespaces visible to the credentials.
	Requested []string

	mu       sync.Mutex
	resolved []string
}

// Client returns the clientset, building one if none was injected.
func (p *Provider) Client() (kubernetes.Interface, error) {
	if p.ClientSet != nil {
		return p.ClientSet, nil
	}

	var err error
	if p.Kubeconfig != "" {
		p.ClientSet, _, err = client.Build(p.Kubeconfig)
	} else {
		p.ClientSet, _, err = client.Get()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return p.ClientSet, nil
}

// Namespaces returns the namespaces to audit. When specific namespaces were
// requested, each is validated against the cluster and unknown names are
// rejected with the closest existing namespace as a hint. Otherwise every
// namespace visible to the credentials is returned. The result is cached.
func (p *Provider) Namespaces(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved != nil {
		return p.resolved, nil
	}

	cs, err := p.Client()
	if err != nil {
		return nil, err
	}

	list, err := cs.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	existing := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		existing = append(existing, ns.Name)
	}

	if len(p.Requested) == 0 {
		slog.Debug("resolved all cluster namespaces", slog.Int("count", len(existing)))
		p.resolved = existing
		return p.resolved, nil
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	for _, name := range p.Requested {
		if known[name] {
			continue
		}
		if hint := closest(name, existing); hint != "" {
			return nil, fmt.Errorf("namespace %q not found, did you mean %q?", name, hint)
		}
		return nil, fmt.Errorf("namespace %q not found", name)
	}

	p.resolved = append([]string(nil), p.Requested...)
	return p.resolved, nil
}

// closest returns the candidate with the smallest edit distance to name,
// or empty when nothing is reasonably close.
func closest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	// A hint further away than half the name is noise, not a typo.
	if bestDist < 0 || bestDist > len(name)/2+1 {
		return ""
	}
	return best
}
