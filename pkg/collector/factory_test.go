package collector_test

import (
	"testing"

	"k8s.io/client-go/kubernetes/fake"

	"github.com/clusterlens/clusterlens/pkg/collector"
	"github.com/clusterlens/clusterlens/pkg/collector/core"
)

func TestDefaultFactory_CreateCoreCollector(t *testing.T) {
	factory := &collector.DefaultFactory{
		ClientSet:    fake.NewClientset(),
		Namespaces:   []string{"default"},
		ExcludeAttrs: []string{"*internal*"},
	}

	col := factory.CreateCoreCollector()
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}

	coreCollector, ok := col.(*core.Collector)
	if !ok {
		t.Fatal("Expected *core.Collector")
	}
	if len(coreCollector.Namespaces) != 1 || coreCollector.Namespaces[0] != "default" {
		t.Errorf("Expected [default], got %v", coreCollector.Namespaces)
	}
	if len(coreCollector.ExcludeAttrs) != 1 {
		t.Errorf("Expected exclusion patterns to propagate, got %v", coreCollector.ExcludeAttrs)
	}
}

func TestDefaultFactory_CreateClusterInfoCollector(t *testing.T) {
	factory := &collector.DefaultFactory{ClientSet: fake.NewClientset()}

	col := factory.CreateClusterInfoCollector()
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}
}
