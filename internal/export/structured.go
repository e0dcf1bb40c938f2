package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONExporter writes entries as a JSON array
type JSONExporter struct {
	Indent string
}

// Format returns the format this exporter writes
func (e *JSONExporter) Format() Format {
	return FormatJSON
}

// Export writes rows as JSON
func (e *JSONExporter) Export(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	if rows == nil {
		rows = []Row{}
	}
	return enc.Encode(rows)
}

// YAMLExporter writes entries as a YAML sequence
type YAMLExporter struct{}

// Format returns the format this exporter writes
func (e *YAMLExporter) Format() Format {
	return FormatYAML
}

// Export writes rows as YAML
func (e *YAMLExporter) Export(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if rows == nil {
		rows = []Row{}
	}
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
