package auditor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/clusterlens/clusterlens/pkg/inventory"
	"github.com/clusterlens/clusterlens/pkg/serializer"
)

const (
	// APIVersion identifies the report schema.
	APIVersion = "clusterlens.dev/v1"

	// KindReport is the kind recorded on serialized reports.
	KindReport = "AuditReport"
)

// Report is the serializable result of one audit run: the normalized
// inventory plus run metadata and the errors caught at phase boundaries.
type Report struct {
	APIVersion string                 `json:"apiVersion" yaml:"apiVersion"`
	Kind       string                 `json:"kind" yaml:"kind"`
	Metadata   map[string]string      `json:"metadata" yaml:"metadata"`
	Inventory  *inventory.Inventory   `json:"inventory" yaml:"inventory"`
	Errors     []inventory.PhaseError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewReport returns an empty report stamped with the collector version and
// the current time.
func NewReport(version string) *Report {
	return &Report{
		APIVersion: APIVersion,
		Kind:       KindReport,
		Metadata: map[string]string{
			"report-version": version,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		},
		Inventory: inventory.New(),
	}
}

// ReportFromFile loads a Report from the specified file path, inferring the
// encoding from the extension.
func ReportFromFile(path string) (*Report, error) {
	fileFormat := serializer.FormatFromPath(path)
	slog.Debug("determined report file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	reader, err := serializer.NewFileReader(fileFormat, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var report Report
	if err := reader.Deserialize(&report); err != nil {
		return nil, fmt.Errorf("failed to deserialize report from %q: %w", path, err)
	}

	slog.Debug("loaded report from file",
		slog.String("path", path),
		slog.String("kind", report.Kind),
		slog.String("apiVersion", report.APIVersion),
	)

	return &report, nil
}
