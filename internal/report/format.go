// Package report builds, sorts, and renders stack comparison rows.
// Rows are transient per-invocation projections of catalog stacks; the
// package knows nothing about where stacks come from or where rendered
// output goes.
package report

import "fmt"

// Format specifies the output serialization format.
type Format string

const (
	// FormatTable produces an aligned plain-text table.
	FormatTable Format = "table"

	// FormatCSV produces comma-separated values.
	FormatCSV Format = "csv"

	// FormatJSON produces an indented JSON array.
	FormatJSON Format = "json"
)

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTable: {
		Name:        FormatTable,
		MIMEType:    "text/plain",
		Extension:   ".txt",
		Description: "Aligned plain-text table",
	},
	FormatCSV: {
		Name:        FormatCSV,
		MIMEType:    "text/csv",
		Extension:   ".csv",
		Description: "Comma-separated values",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "Indented JSON array",
	},
}

// formatOrder lists the formats in presentation order for help text and
// error messages.
var formatOrder = []Format{FormatTable, FormatCSV, FormatJSON}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatNames returns the supported format names in presentation order.
func FormatNames() []string {
	names := make([]string, len(formatOrder))
	for i, f := range formatOrder {
		names[i] = string(f)
	}
	return names
}

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported format: %s", s)
	}
	return f, nil
}

// Render serializes rows to the specified format. Table and CSV output
// follow the given header order; JSON ignores headers and emits every
// row field with keys sorted alphabetically.
func Render(format Format, rows []Row, headers []string) (string, error) {
	switch format {
	case FormatTable:
		return renderTable(rows, headers), nil
	case FormatCSV:
		return renderCSV(rows, headers), nil
	case FormatJSON:
		return renderJSON(rows)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
