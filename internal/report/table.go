package report

import "strings"

// renderTable formats rows as an aligned plain-text table. Each column
// is as wide as its widest stringified value or its uppercased header
// label; every cell, the last in a line included, is left-justified and
// padded to the column width, and cells are joined with two spaces. The
// output carries no trailing newline.
func renderTable(rows []Row, headers []string) string {
	widths := make(map[string]int, len(headers))
	for _, h := range headers {
		widths[h] = len(strings.ToUpper(h))
	}
	for _, row := range rows {
		for _, h := range headers {
			if n := len(cellString(row[h])); n > widths[h] {
				widths[h] = n
			}
		}
	}

	cells := make([]string, len(headers))
	var sb strings.Builder

	for i, h := range headers {
		cells[i] = pad(strings.ToUpper(h), widths[h])
	}
	sb.WriteString(strings.Join(cells, "  "))
	sb.WriteByte('\n')

	for i, h := range headers {
		cells[i] = strings.Repeat("-", widths[h])
	}
	sb.WriteString(strings.Join(cells, "  "))

	for _, row := range rows {
		sb.WriteByte('\n')
		for i, h := range headers {
			cells[i] = pad(cellString(row[h]), widths[h])
		}
		sb.WriteString(strings.Join(cells, "  "))
	}
	return sb.String()
}

// pad left-justifies s in a field of the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
