package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ralt/coreupdater/internal/models"
)

// Format names an export format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Exporter interface for writing a core updater list
type Exporter interface {
	// Export writes entries, in order, to w
	Export(w io.Writer, entries []Row) error

	// Format returns the format this exporter writes
	Format() Format
}

// Row is one exported entry, optionally with its install state
type Row struct {
	models.Entry `yaml:",inline"`

	Installed *bool `json:"installed,omitempty" yaml:"installed,omitempty"`
	UpToDate  *bool `json:"up_to_date,omitempty" yaml:"up_to_date,omitempty"`
}

// NewExporter returns the exporter for a format name
func NewExporter(format string) (Exporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatText, "":
		return &TextExporter{}, nil
	case FormatJSON:
		return &JSONExporter{Indent: "  "}, nil
	case FormatYAML, "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// Rows wraps entries without install state
func Rows(entries []models.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		rows[i] = Row{Entry: entry}
	}
	return rows
}
