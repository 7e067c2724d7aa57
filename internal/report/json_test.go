package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSON_SortedKeysAndIndent(t *testing.T) {
	rows := []Row{
		{"zeta": 1, "alpha": "a", "mid": 2.5},
	}

	got, err := renderJSON(rows)
	require.NoError(t, err)

	want := "[" + "\n" +
		"  {" + "\n" +
		`    "alpha": "a",` + "\n" +
		`    "mid": 2.5,` + "\n" +
		`    "zeta": 1` + "\n" +
		"  }" + "\n" +
		"]"
	assert.Equal(t, want, got)
}

func TestRenderJSON_FullCatalog(t *testing.T) {
	rows := BuildRows(testStacks(), true)

	got, err := renderJSON(rows)
	require.NoError(t, err)

	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	require.Len(t, decoded, 3)
	for _, obj := range decoded {
		assert.Len(t, obj, 9)
	}
	assert.Equal(t, 6.15, decoded[0]["composite_score"])
	assert.Equal(t, "zama", decoded[1]["key"])

	// Keys inside each object appear in alphabetical order
	first := strings.Index(got, `"composite_score"`)
	last := strings.Index(got, `"soundness_focus"`)
	require.Greater(t, first, 0)
	assert.Less(t, first, last)
}

func TestRenderJSON_NoHTMLEscaping(t *testing.T) {
	rows := []Row{
		{"family": "FHE + Web3 & <more>"},
	}

	got, err := renderJSON(rows)
	require.NoError(t, err)
	assert.Contains(t, got, `"FHE + Web3 & <more>"`)
	assert.NotContains(t, got, `\u0026`)
	assert.NotContains(t, got, `\u003c`)
}

func TestRenderJSON_EmptyRows(t *testing.T) {
	got, err := renderJSON([]Row{})
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}
