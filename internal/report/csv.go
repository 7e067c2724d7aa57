package report

import "strings"

// renderCSV formats rows as comma-separated lines: one header line
// (names not uppercased), then one line per row. Values are quoted only
// when they contain a comma, double quote, or newline; encoding/csv is
// not used because it also quotes values with leading spaces and always
// terminates records with a newline. The output carries no trailing
// newline.
func renderCSV(rows []Row, headers []string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))

	cells := make([]string, len(headers))
	for _, row := range rows {
		sb.WriteByte('\n')
		for i, h := range headers {
			cells[i] = escapeCSV(cellString(row[h]))
		}
		sb.WriteString(strings.Join(cells, ","))
	}
	return sb.String()
}

// escapeCSV wraps a value in double quotes, doubling any inner quotes,
// when it contains a comma, double quote, or newline.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
