package report

import "sort"

// SortRows returns rows ordered by the named field. When sortBy is
// empty the input slice is returned unchanged; otherwise a sorted copy
// is returned and the input is left untouched. The sort is stable, so
// rows with equal keys keep their original relative order, in both
// ascending and descending direction.
func SortRows(rows []Row, sortBy string, descending bool) []Row {
	if sortBy == "" {
		return rows
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareCells(sorted[i][sortBy], sorted[j][sortBy])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}
