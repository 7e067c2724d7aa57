package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// renderJSON serializes rows as a JSON array of objects with two-space
// indentation. Go marshals map keys in sorted order, which gives the
// alphabetical key ordering inside each object. HTML escaping is off so
// characters like & pass through literally, and the encoder's trailing
// newline is stripped because the caller appends the final newline.
func renderJSON(rows []Row) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return "", fmt.Errorf("encoding rows: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
