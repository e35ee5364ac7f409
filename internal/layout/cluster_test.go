package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

func TestClusterRows_GroupsByY(t *testing.T) {
	tokens := []renderer.Token{
		{X: 200, Y: 100.5, Text: "12,50"},
		{X: 50, Y: 100, Text: "TURBOT"},
		{X: 50, Y: 120, Text: "SOLE"},
		{X: 200, Y: 121, Text: "24,00"},
	}

	rows := ClusterRows(tokens, 2.0)
	require.Len(t, rows, 2)

	assert.Equal(t, "TURBOT", rows[0].Tokens[0].Text)
	assert.Equal(t, "12,50", rows[0].Tokens[1].Text)
	assert.Equal(t, "SOLE", rows[1].Tokens[0].Text)
	assert.Equal(t, "24,00", rows[1].Tokens[1].Text)
}

func TestClusterRows_ZeroToleranceKeepsLinesApart(t *testing.T) {
	tokens := []renderer.Token{
		{X: 10, Y: 100, Text: "a"},
		{X: 10, Y: 100.4, Text: "b"},
	}

	rows := ClusterRows(tokens, 0)
	assert.Len(t, rows, 2)

	rows = ClusterRows(tokens, 1.0)
	assert.Len(t, rows, 1)
}

func TestClusterRows_Empty(t *testing.T) {
	assert.Nil(t, ClusterRows(nil, 2.0))
}

func TestRowMerge(t *testing.T) {
	row := Row{Tokens: []renderer.Token{
		{X: 50, Y: 100, Text: "BAR", FontSize: 8},
		{X: 120, Y: 102, Text: "DE", FontSize: 12, Bold: true},
		{X: 160, Y: 101, Text: "LIGNE", FontSize: 8},
	}}

	line := row.Merge()
	assert.Equal(t, "BAR DE LIGNE", line.Text)
	assert.Equal(t, 50.0, line.X)
	assert.Equal(t, 101.0, line.Y)
	assert.Equal(t, 12.0, line.FontSize)
	assert.True(t, line.Bold)
}

func TestSplitAtRatio(t *testing.T) {
	tokens := []renderer.Token{
		{X: 100, Text: "left"},
		{X: 297, Text: "left edge"},
		{X: 298, Text: "right"},
		{X: 500, Text: "far right"},
	}

	left, right := SplitAtRatio(tokens, 595, 0.5)
	require.Len(t, left, 2)
	require.Len(t, right, 2)
	assert.Equal(t, "left", left[0].Text)
	assert.Equal(t, "right", right[0].Text)
}

func TestSplitBands_DropsTokensOutsideEveryBand(t *testing.T) {
	bands := []Band{{Min: 0, Max: 190}, {Min: 341, Max: 600}}
	tokens := []renderer.Token{
		{X: 50, Text: "col1"},
		{X: 250, Text: "gutter"},
		{X: 400, Text: "col2"},
	}

	cols := SplitBands(tokens, bands)
	require.Len(t, cols, 2)
	require.Len(t, cols[0], 1)
	require.Len(t, cols[1], 1)
	assert.Equal(t, "col1", cols[0][0].Text)
	assert.Equal(t, "col2", cols[1][0].Text)
}
