package core

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// collectNodes lists all cluster nodes. Nodes are cluster-scoped, so the
// record namespace is the "cluster-wide" placeholder whenever the API
// reports none. Every node starts with Inside false; the local-node phase
// resolves the flag afterwards.
func (c *Collector) collectNodes(ctx context.Context, inv *inventory.Inventory) error {
	nodes, err := c.ClientSet.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	for _, node := range nodes.Items {
		namespace := node.Namespace
		if namespace == "" {
			namespace = inventory.ClusterWideNamespace
		}

		inv.Nodes[string(node.UID)] = &inventory.Node{
			UID:           string(node.UID),
			Name:          node.Name,
			Namespace:     namespace,
			Labels:        c.filterAttrs(node.Labels),
			Annotations:   c.filterAttrs(node.Annotations),
			Unschedulable: node.Spec.Unschedulable,
			NodeInfo:      inventory.Flatten(node.Status.NodeInfo),
		}
	}
	return nil
}
