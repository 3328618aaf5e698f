package serializer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deserializer reads a serialized value back from a destination.
type Deserializer interface {
	Deserialize(v any) error
	Close() error
}

// Reader deserializes values from a file.
type Reader struct {
	format Format
	file   *os.File
}

// NewFileReader opens path for deserialization in the given format.
// Table output is write-only and cannot be read back.
func NewFileReader(format Format, path string) (*Reader, error) {
	if format == FormatTable {
		return nil, fmt.Errorf("format %q cannot be deserialized", format)
	}
	if format.IsUnknown() {
		format = FormatFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return &Reader{format: format, file: f}, nil
}

// Deserialize decodes the file contents into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatYAML:
		if err := yaml.NewDecoder(r.file).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r.file).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize json: %w", err)
		}
	}
	return nil
}

// Close releases the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	f := r.file
	r.file = nil
	return f.Close()
}
