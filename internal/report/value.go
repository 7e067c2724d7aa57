package report

import (
	"fmt"
	"strconv"
	"strings"
)

// cellString converts a row value to its display string. Missing values
// (nil) render as the empty string. Floats use the shortest decimal
// representation that round-trips, so 6.15 prints as "6.15".
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// asFloat reports whether a cell value is numeric for comparison, and
// its numeric value. Missing values (nil) compare as zero.
func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case int:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}

// compareCells orders two cell values: numerically when both are
// numeric, lexically when both are strings. A numeric value sorts
// before a string so mixed columns still have a total order.
func compareCells(a, b any) int {
	na, aNum := asFloat(a)
	nb, bNum := asFloat(b)
	switch {
	case aNum && bNum:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(cellString(a), cellString(b))
}
