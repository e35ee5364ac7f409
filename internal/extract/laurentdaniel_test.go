package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

// Board geometry: three columns, price and quality at fixed fractions of
// the page width. The rightmost token pins the width at 600 so the percent
// thresholds line up with the calibration.
func laurentDanielDoc() fakeDoc {
	return singlePage(600, []renderer.Token{
		{X: 300, Y: 50, Text: "le lundi 15 janvier 2024"},
		{X: 200, Y: 60, Text: "EURO/KG"},

		// First column: indented category header, then product rows.
		{X: 80, Y: 120, Text: "TURBOT"},
		{X: 10, Y: 140, Text: "turbot 2/3"},
		{X: 160, Y: 140, Text: "28,50"},
		{X: 188, Y: 140, Text: "extra"},
		{X: 10, Y: 160, Text: "st pierre pb"},
		{X: 165, Y: 160, Text: "-"},

		// Second column: category rows are the all-uppercase ones.
		{X: 250, Y: 120, Text: "LOTTE"},
		{X: 200, Y: 140, Text: "lotte queue"},
		{X: 340, Y: 140, Text: "12,00"},

		// Third column header pins the page width.
		{X: 600, Y: 110, Text: "HUITRES"},
	})
}

func TestLaurentDanielExtract(t *testing.T) {
	ex, err := NewLaurentDanielExtractor()
	require.NoError(t, err)

	records, err := ex.Extract(context.Background(), laurentDanielDoc(), Options{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	turbot := records[0]
	assert.Equal(t, "turbot 2/3 extra", turbot.Product)
	assert.Equal(t, "LD_turbot2/3_extra", turbot.ProviderCode)
	assert.Equal(t, "LD_turbot2/3_extra_2024-01-15", turbot.KeyDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), turbot.Date)
	require.NotNil(t, turbot.Price)
	assert.Equal(t, 28.50, *turbot.Price)
	assert.Equal(t, "TURBOT", turbot.Category)
	assert.Equal(t, "EXTRA", turbot.Quality)
	assert.Equal(t, "2/3", turbot.SizeGrade)

	stPierre := records[1]
	assert.Equal(t, "st pierre pb", stPierre.Product)
	assert.Equal(t, "SAINT PIERRE", stPierre.Category, "name prefix overrides the column header")
	assert.Nil(t, stPierre.Price, "dash means no quote today")
	assert.Equal(t, "PB", stPierre.CatchMethod)

	lotte := records[2]
	assert.Equal(t, "lotte queue", lotte.Product)
	assert.Equal(t, "LOTTE", lotte.Category)
	assert.Equal(t, "QUEUE", lotte.Cut)
	require.NotNil(t, lotte.Price)
	assert.Equal(t, 12.00, *lotte.Price)
}

func TestLaurentDanielExtract_HeaderStaysInColumn(t *testing.T) {
	ex, err := NewLaurentDanielExtractor()
	require.NoError(t, err)

	doc := singlePage(600, []renderer.Token{
		{X: 300, Y: 50, Text: "le lundi 15 janvier 2024"},

		{X: 80, Y: 120, Text: "TURBOT"},
		{X: 10, Y: 140, Text: "turbot 2/3"},
		{X: 160, Y: 140, Text: "28,50"},

		// Second column has no header of its own.
		{X: 200, Y: 140, Text: "sole entiere"},
		{X: 340, Y: 140, Text: "15,00"},

		// Third column header pins the page width.
		{X: 600, Y: 110, Text: "HUITRES"},
	})

	records, err := ex.Extract(context.Background(), doc, Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "TURBOT", records[0].Category)
	assert.Equal(t, "", records[1].Category, "a header from the first column must not carry into the second")
}

func TestLaurentDanielExtract_NoDate(t *testing.T) {
	ex, err := NewLaurentDanielExtractor()
	require.NoError(t, err)

	doc := singlePage(600, []renderer.Token{
		{X: 10, Y: 140, Text: "turbot"},
		{X: 160, Y: 140, Text: "28,50"},
	})

	_, err = ex.Extract(context.Background(), doc, Options{})
	assert.ErrorIs(t, err, ErrNoDate)
}

func TestLDCalibre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"TURBOT 2/3", "2/3"},
		{"BAR 1,5/2", "1,5/2"},
		{"LOTTE 3+", "3+"},
		{"SARDINE 30GR", "30gr"},
		{"SOLE EXTRA", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ldCalibre(tt.in), tt.in)
	}
}
