package report

import (
	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// Row maps a field name to its display value for one stack. Values are
// strings, ints, or float64 scores; renderers stringify them per format.
type Row map[string]any

// Headers returns the column order for table and CSV output: the eight
// base fields, plus composite_score when the score column is shown.
func Headers(includeScore bool) []string {
	headers := types.FieldOrder()
	if includeScore {
		headers = append(headers, types.FieldCompositeScore)
	}
	return headers
}

// BuildRows projects stacks into renderable rows, preserving input
// order. Each row carries the eight base fields; the composite score is
// added only when includeScore is set. The description field is kept
// out of rows so every renderer shows the same field set.
func BuildRows(stacks []types.PrivacyStack, includeScore bool) []Row {
	rows := make([]Row, 0, len(stacks))
	for _, s := range stacks {
		row := Row{
			types.FieldKey:               s.Key,
			types.FieldName:              s.Name,
			types.FieldFamily:            s.Family,
			types.FieldPrivacyLevel:      s.PrivacyLevel,
			types.FieldSoundnessFocus:    s.SoundnessFocus,
			types.FieldPerformanceCost:   s.PerformanceCost,
			types.FieldDevComplexity:     s.DevComplexity,
			types.FieldEcosystemMaturity: s.EcosystemMaturity,
		}
		if includeScore {
			row[types.FieldCompositeScore] = s.CompositeScore()
		}
		rows = append(rows, row)
	}
	return rows
}
