package core

import (
	"context"
	"fmt"
	"os"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// markLocalNode flags every collected node whose name equals the local
// hostname, identifying the node hosting the running collector. The step is
// best-effort: it makes no API call, and a hostname lookup failure leaves
// every Inside flag false. A hostname mismatch legitimately matches zero
// nodes, for example when auditing from outside the cluster.
func (c *Collector) markLocalNode(_ context.Context, inv *inventory.Inventory) error {
	hostname := c.Hostname
	if hostname == nil {
		hostname = os.Hostname
	}

	name, err := hostname()
	if err != nil {
		return fmt.Errorf("failed to resolve local hostname: %w", err)
	}

	for _, node := range inv.Nodes {
		if node.Name == name {
			node.Inside = true
		}
	}
	return nil
}
