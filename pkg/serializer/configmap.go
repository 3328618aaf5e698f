package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/clusterlens/clusterlens/pkg/k8s/client"
)

// URI scheme constants for output destinations
const (
	// ConfigMapURIScheme is the URI scheme for Kubernetes ConfigMap destinations.
	// Format: cm://namespace/configmap-name
	ConfigMapURIScheme = "cm://"

	// StdoutURI is the special URI indicating output should be written to stdout.
	StdoutURI = "-"
)

// ConfigMapWriter serializes values into a Kubernetes ConfigMap, so an
// in-cluster audit can leave its report where other workloads can read it.
type ConfigMapWriter struct {
	// ClientSet is the Kubernetes API client. If nil, one is built from the
	// ambient kubeconfig on first use.
	ClientSet kubernetes.Interface

	format    Format
	namespace string
	name      string
}

// NewConfigMapWriter parses a cm://namespace/name URI into a writer.
func NewConfigMapWriter(format Format, uri string) (*ConfigMapWriter, error) {
	rest := strings.TrimPrefix(uri, ConfigMapURIScheme)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid ConfigMap URI %q, expected cm://namespace/name", uri)
	}
	if format.IsUnknown() || format == FormatTable {
		format = FormatJSON
	}
	return &ConfigMapWriter{format: format, namespace: parts[0], name: parts[1]}, nil
}

// Serialize marshals v and creates or updates the target ConfigMap with a
// single data key named after the format.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	var (
		raw []byte
		err error
		key string
	)
	switch w.format {
	case FormatYAML:
		raw, err = yaml.Marshal(v)
		key = "report.yaml"
	default:
		raw, err = json.MarshalIndent(v, "", "  ")
		key = "report.json"
	}
	if err != nil {
		return fmt.Errorf("failed to serialize for configmap: %w", err)
	}

	if w.ClientSet == nil {
		w.ClientSet, _, err = client.Get()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: w.name, Namespace: w.namespace},
		Data:       map[string]string{key: string(raw)},
	}

	cms := w.ClientSet.CoreV1().ConfigMaps(w.namespace)
	if _, err := cms.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
		if !apierrors.IsAlreadyExists(err) {
			return fmt.Errorf("failed to create configmap %s/%s: %w", w.namespace, w.name, err)
		}
		if _, err := cms.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
			return fmt.Errorf("failed to update configmap %s/%s: %w", w.namespace, w.name, err)
		}
	}
	return nil
}
