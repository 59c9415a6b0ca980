package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"NAME", "ROLE"},
		[][]string{
			{"Alice Weber", "Vorsitz"},
			{"Bo", "Mitglied"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	// Cells pad to the widest column, so ROLE starts at the same offset
	// in every row.
	assert.Equal(t, strings.Index(lines[1], "Vorsitz"), strings.Index(lines[2], "Mitglied"))
}

func TestRenderTable_EmptyRows(t *testing.T) {
	out := renderTable([]string{"NAME"}, nil)

	assert.Contains(t, out, "NAME")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestRenderTable_ShortRowsPad(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"only-a"}},
	)

	assert.Contains(t, out, "only-a")
}

func TestRenderCount(t *testing.T) {
	assert.Contains(t, renderCount(3, "decisions"), "3 decisions")
}
