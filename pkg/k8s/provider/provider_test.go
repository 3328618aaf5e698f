package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestProviderNamespaces_All(t *testing.T) {
	fakeClient := fake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kube-system"}},
	)
	p := &Provider{ClientSet: fakeClient}

	got, err := p.Namespaces(context.Background())
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "kube-system"}, got)
}

func TestProviderNamespaces_RequestedValid(t *testing.T) {
	fakeClient := fake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "payments"}},
	)
	p := &Provider{ClientSet: fakeClient, Requested: []string{"payments"}}

	got, err := p.Namespaces(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"payments"}, got)
}

func TestProviderNamespaces_UnknownSuggestsClosest(t *testing.T) {
	fakeClient := fake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "payments"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
	)
	p := &Provider{ClientSet: fakeClient, Requested: []string{"payment"}}

	_, err := p.Namespaces(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "payments"`)
}

func TestProviderNamespaces_Cached(t *testing.T) {
	fakeClient := fake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
	)
	p := &Provider{ClientSet: fakeClient}

	first, err := p.Namespaces(context.Background())
	assert.NoError(t, err)

	// A namespace created after the first resolution must not appear;
	// the provider hands out a point-in-time set.
	_, err = fakeClient.CoreV1().Namespaces().Create(
		context.Background(),
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "late"}},
		metav1.CreateOptions{},
	)
	assert.NoError(t, err)

	second, err := p.Namespaces(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
