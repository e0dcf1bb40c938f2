package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ralt/coreupdater/internal/utils"
)

// TextExporter writes entries as blank line separated "Field: value"
// stanzas. Header entries become a single "Header:" or "Section:" line.
type TextExporter struct{}

// Format returns the format this exporter writes
func (e *TextExporter) Format() Format {
	return FormatText
}

// Export writes rows as text stanzas
func (e *TextExporter) Export(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)

	for _, row := range rows {
		switch {
		case row.IsManufacturerHeader:
			fmt.Fprintf(bw, "Header: %s\n\n", row.DisplayName)
			continue
		case row.IsConsoleHeader:
			fmt.Fprintf(bw, "Section: %s\n\n", row.DisplayName)
			continue
		}

		// Required fields
		fmt.Fprintf(bw, "Core: %s\n", row.DisplayName)
		fmt.Fprintf(bw, "Filename: %s\n", row.RemoteFilename)

		// Optional fields
		if row.RemoteCorePath != "" {
			fmt.Fprintf(bw, "URL: %s\n", row.RemoteCorePath)
		}
		if row.LocalCorePath != "" {
			fmt.Fprintf(bw, "Path: %s\n", row.LocalCorePath)
		}
		if row.LocalInfoPath != "" {
			fmt.Fprintf(bw, "Info: %s\n", row.LocalInfoPath)
		}
		if row.Description != "" {
			fmt.Fprintf(bw, "Description: %s\n", row.Description)
		}
		if len(row.Licenses) > 0 {
			fmt.Fprintf(bw, "License: %s\n", strings.Join(row.Licenses, ", "))
		}
		if row.CRC != 0 {
			fmt.Fprintf(bw, "CRC32: %s\n", utils.FormatCRC32(row.CRC))
		}
		if !row.Date.IsZero() {
			fmt.Fprintf(bw, "Date: %04d-%02d-%02d\n", row.Date.Year, row.Date.Month, row.Date.Day)
		}
		if row.IsExperimental {
			bw.WriteString("Experimental: yes\n")
		}
		if row.Installed != nil {
			fmt.Fprintf(bw, "Installed: %s\n", yesNo(*row.Installed))
		}
		if row.UpToDate != nil {
			fmt.Fprintf(bw, "Up-To-Date: %s\n", yesNo(*row.UpToDate))
		}

		// Blank line between cores
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
