package oci

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oras.land/oras-go/v2/content/memory"
)

func TestPack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"kind":"AuditReport"}`), 0o600))

	target := memory.New()
	manifest, err := Pack(context.Background(), target, path, "v1")
	require.NoError(t, err)
	assert.Equal(t, ArtifactType, manifest.ArtifactType)
	assert.NotEmpty(t, manifest.Digest)

	// The tag must resolve in the target to the packed manifest.
	resolved, err := target.Resolve(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, manifest.Digest, resolved.Digest)
}

func TestPack_MissingFile(t *testing.T) {
	target := memory.New()
	_, err := Pack(context.Background(), target, filepath.Join(t.TempDir(), "absent.json"), "v1")
	assert.Error(t, err)
}

func TestPush_InvalidReference(t *testing.T) {
	_, err := Push(context.Background(), "report.json", "not a valid ref!", false)
	assert.Error(t, err)
}
