package core

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// collectConfigMaps lists config maps across all namespaces in one call and
// copies them verbatim into the inventory. Data stays nil when the API
// reports no data field. KubeletArgs is reserved for kubelet argument
// extraction and always starts empty.
func (c *Collector) collectConfigMaps(ctx context.Context, inv *inventory.Inventory) error {
	cms, err := c.ClientSet.CoreV1().ConfigMaps(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list config maps: %w", err)
	}

	for _, cm := range cms.Items {
		inv.ConfigMaps[string(cm.UID)] = inventory.ConfigMap{
			UID:         string(cm.UID),
			Name:        cm.Name,
			Namespace:   cm.Namespace,
			Data:        cm.Data,
			Labels:      c.filterAttrs(cm.Labels),
			Annotations: c.filterAttrs(cm.Annotations),
			KubeletArgs: []string{},
		}
	}
	return nil
}
