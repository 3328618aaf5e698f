package cluster

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/client-go/kubernetes"
)

// Collector retrieves facts about the cluster itself from the API server.
type Collector struct {
	ClientSet kubernetes.Interface
}

// Collect returns API server version information for report metadata.
func (c *Collector) Collect(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	serverVersion, err := c.ClientSet.Discovery().ServerVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes version: %w", err)
	}

	slog.Debug("collected kubernetes version", slog.String("version", serverVersion.GitVersion))

	return map[string]string{
		"version":   serverVersion.GitVersion,
		"platform":  serverVersion.Platform,
		"goVersion": serverVersion.GoVersion,
	}, nil
}
