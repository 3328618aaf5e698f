package core

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// collectPods lists the pods of every audited namespace and normalizes each
// one. An error anywhere in the iteration aborts only this phase; pods
// already accumulated stay in the inventory.
func (c *Collector) collectPods(ctx context.Context, inv *inventory.Inventory) error {
	for _, namespace := range c.Namespaces {
		pods, err := c.ClientSet.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return fmt.Errorf("failed to list pods in namespace %q: %w", namespace, err)
		}

		for _, pod := range pods.Items {
			inv.Pods[string(pod.UID)] = c.newPod(pod)
		}
	}
	return nil
}

// newPod builds a normalized pod record. Containers from all three groups
// merge into one map keyed by name; on a name collision the later group wins
// (standard, then init, then ephemeral).
func (c *Collector) newPod(pod corev1.Pod) inventory.Pod {
	containers := make(map[string]inventory.Container)
	for _, ctr := range pod.Spec.Containers {
		containers[ctr.Name] = newContainer(ctr)
	}
	for _, ctr := range pod.Spec.InitContainers {
		containers[ctr.Name] = newContainer(ctr)
	}
	for _, ec := range pod.Spec.EphemeralContainers {
		// EphemeralContainerCommon mirrors Container field for field.
		containers[ec.Name] = newContainer(corev1.Container(ec.EphemeralContainerCommon))
	}

	return inventory.Pod{
		UID:             string(pod.UID),
		Name:            pod.Name,
		Namespace:       pod.Namespace,
		Labels:          c.filterAttrs(pod.Labels),
		Annotations:     c.filterAttrs(pod.Annotations),
		NodeName:        pod.Spec.NodeName,
		ServiceAccount:  pod.Spec.ServiceAccountName,
		StatusPhase:     string(pod.Status.Phase),
		PodIP:           pod.Status.PodIP,
		HostIP:          pod.Status.HostIP,
		HostPID:         pod.Spec.HostPID,
		HostIPC:         pod.Spec.HostIPC,
		HostNetwork:     pod.Spec.HostNetwork,
		SecurityContext: flattenSecurityContext(pod.Spec.SecurityContext),
		Containers:      containers,
	}
}

// newContainer normalizes a single container spec. Environment values are
// taken as declared; references to config maps or secrets are not resolved.
func newContainer(ctr corev1.Container) inventory.Container {
	out := inventory.Container{
		Name:            ctr.Name,
		Image:           ctr.Image,
		ImageRef:        inventory.ParseImageRef(ctr.Image),
		Command:         ctr.Command,
		SecurityContext: flattenSecurityContext(ctr.SecurityContext),
	}

	if len(ctr.Ports) > 0 {
		out.Ports = make([]int32, 0, len(ctr.Ports))
		for _, port := range ctr.Ports {
			out.Ports = append(out.Ports, port.ContainerPort)
		}
	}

	if len(ctr.Env) > 0 {
		out.Env = make([]inventory.EnvVar, 0, len(ctr.Env))
		for _, env := range ctr.Env {
			out.Env = append(out.Env, inventory.EnvVar{Name: env.Name, Value: env.Value})
		}
	}

	return out
}

// flattenSecurityContext reduces a pod or container security context to a
// generic key-value mapping. An unset context yields an empty map, not nil.
func flattenSecurityContext(sc any) map[string]any {
	if out := inventory.Flatten(sc); out != nil {
		return out
	}
	return map[string]any{}
}
