package oci

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"

	"github.com/clusterlens/clusterlens/pkg/serializer"
)

const (
	// ArtifactType identifies audit report artifacts in a registry.
	ArtifactType = "application/vnd.clusterlens.report.v1"

	jsonMediaType = "application/vnd.clusterlens.report.v1+json"
	yamlMediaType = "application/vnd.clusterlens.report.v1+yaml"
)

// Pack stages the report file as an OCI artifact in the given target under
// the given tag and returns the manifest descriptor.
func Pack(ctx context.Context, target oras.Target, path, tag string) (ocispec.Descriptor, error) {
	store, err := file.New(filepath.Dir(path))
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("failed to create file store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("failed to close file store", "error", closeErr)
		}
	}()

	mediaType := jsonMediaType
	if serializer.FormatFromPath(path) == serializer.FormatYAML {
		mediaType = yamlMediaType
	}

	layer, err := store.Add(ctx, filepath.Base(path), mediaType, path)
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("failed to stage report %q: %w", path, err)
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{Layers: []ocispec.Descriptor{layer}})
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := store.Tag(ctx, manifest, tag); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("failed to tag manifest: %w", err)
	}

	if _, err := oras.Copy(ctx, store, tag, target, tag, oras.DefaultCopyOptions); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("failed to copy artifact: %w", err)
	}

	return manifest, nil
}

// Push publishes the report at path to an OCI registry reference such as
// registry.example.com/audit/reports:2026-08-26. PlainHTTP is for local
// registries without TLS.
func Push(ctx context.Context, path, ref string, plainHTTP bool) (string, error) {
	repo, err := remote.NewRepository(ref)
	if err != nil {
		return "", fmt.Errorf("invalid registry reference %q: %w", ref, err)
	}
	repo.PlainHTTP = plainHTTP

	tag := repo.Reference.Reference
	if tag == "" {
		tag = "latest"
	}

	manifest, err := Pack(ctx, repo, path, tag)
	if err != nil {
		return "", err
	}

	slog.Debug("pushed report",
		slog.String("ref", ref),
		slog.String("digest", manifest.Digest.String()),
	)
	return manifest.Digest.String(), nil
}
