package inventory

import (
	"encoding/json"
)

// ClusterWideNamespace is the placeholder namespace recorded for resources
// that are not namespaced, such as nodes.
const ClusterWideNamespace = "cluster-wide"

// EnvVar is a single environment entry on a container. Values are taken
// directly from the pod spec; references to config maps or secrets are not
// resolved.
type EnvVar struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Container is the normalized view of a single container within a pod,
// regardless of whether it came from the standard, init, or ephemeral group.
type Container struct {
	Name            string         `json:"name" yaml:"name"`
	Image           string         `json:"image" yaml:"image"`
	ImageRef        *ImageRef      `json:"imageRef,omitempty" yaml:"imageRef,omitempty"`
	Command         []string       `json:"command,omitempty" yaml:"command,omitempty"`
	Ports           []int32        `json:"ports,omitempty" yaml:"ports,omitempty"`
	Env             []EnvVar       `json:"env,omitempty" yaml:"env,omitempty"`
	SecurityContext map[string]any `json:"securityContext" yaml:"securityContext"`
}

// Pod is the normalized view of a pod. Containers holds every container of
// the pod keyed by name; name collisions across groups resolve in favor of
// the later group (standard, then init, then ephemeral).
type Pod struct {
	UID             string               `json:"uid" yaml:"uid"`
	Name            string               `json:"name" yaml:"name"`
	Namespace       string               `json:"namespace" yaml:"namespace"`
	Labels          map[string]string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations     map[string]string    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	NodeName        string               `json:"nodeName,omitempty" yaml:"nodeName,omitempty"`
	ServiceAccount  string               `json:"serviceAccount,omitempty" yaml:"serviceAccount,omitempty"`
	StatusPhase     string               `json:"statusPhase,omitempty" yaml:"statusPhase,omitempty"`
	PodIP           string               `json:"podIP,omitempty" yaml:"podIP,omitempty"`
	HostIP          string               `json:"hostIP,omitempty" yaml:"hostIP,omitempty"`
	HostPID         bool                 `json:"hostPID,omitempty" yaml:"hostPID,omitempty"`
	HostIPC         bool                 `json:"hostIPC,omitempty" yaml:"hostIPC,omitempty"`
	HostNetwork     bool                 `json:"hostNetwork,omitempty" yaml:"hostNetwork,omitempty"`
	SecurityContext map[string]any       `json:"securityContext" yaml:"securityContext"`
	Containers      map[string]Container `json:"containers,omitempty" yaml:"containers,omitempty"`
}

// ConfigMap is the normalized view of a config map. Data stays nil when the
// API reports no data field, so consumers can tell "absent" from "empty".
// KubeletArgs is reserved for kubelet argument extraction and always starts
// empty.
type ConfigMap struct {
	UID         string            `json:"uid" yaml:"uid"`
	Name        string            `json:"name" yaml:"name"`
	Namespace   string            `json:"namespace" yaml:"namespace"`
	Data        map[string]string `json:"data,omitempty" yaml:"data,omitempty"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	KubeletArgs []string          `json:"kubeletArgs" yaml:"kubeletArgs"`
}

// Node is the normalized view of a cluster node. Inside marks the node whose
// name matches the hostname of the machine running the collector; it may be
// false for every node when the collector runs off-cluster.
type Node struct {
	UID           string            `json:"uid" yaml:"uid"`
	Name          string            `json:"name" yaml:"name"`
	Namespace     string            `json:"namespace" yaml:"namespace"`
	Labels        map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations   map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Unschedulable bool              `json:"unschedulable,omitempty" yaml:"unschedulable,omitempty"`
	NodeInfo      map[string]any    `json:"nodeInfo,omitempty" yaml:"nodeInfo,omitempty"`
	Inside        bool              `json:"inside" yaml:"inside"`
}

// PhaseError records a failure caught at a collection phase boundary.
// Phases degrade independently: a failed phase contributes a PhaseError and
// whatever records it accumulated, and later phases still run.
type PhaseError struct {
	Phase string `json:"phase" yaml:"phase"`
	Error string `json:"error" yaml:"error"`
}

// Inventory is a point-in-time snapshot of the collected cluster resources,
// each kind keyed by the UID the API server assigned. It is populated once
// during collection and treated as read-only afterwards.
type Inventory struct {
	Pods       map[string]Pod       `json:"pods" yaml:"pods"`
	ConfigMaps map[string]ConfigMap `json:"configMaps" yaml:"configMaps"`
	Nodes      map[string]*Node     `json:"nodes" yaml:"nodes"`
}

// New returns an empty Inventory with all collections initialized.
func New() *Inventory {
	return &Inventory{
		Pods:       make(map[string]Pod),
		ConfigMaps: make(map[string]ConfigMap),
		Nodes:      make(map[string]*Node),
	}
}

// Flatten converts an API object into a generic key-value mapping using its
// canonical JSON field names. It is used for opaque pass-through fields such
// as security contexts and node system info, where the set of keys is owned
// by the Kubernetes API rather than this package. Returns nil on nil input
// or when the value cannot be represented as an object.
func Flatten(v any) map[string]any {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
