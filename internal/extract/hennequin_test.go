package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

func hennequinDoc() fakeDoc {
	return singlePage(595, []renderer.Token{
		// Header band with the date line.
		{X: 200, Y: 41, Text: "MERCURIALE DU 17/01/2024"},
		// Footer noise.
		{X: 20, Y: 760, Text: _hnqFooter},

		// Left column, one category with a quality note.
		{X: 19.5, Y: 150, Text: "BAR LIGNE"},
		{X: 31, Y: 170, Text: "BAR 2/3....."},
		{X: 260, Y: 170, Text: "24,50"},
		{X: 44, Y: 185, Text: "EXTRA"},

		// Wrapped product name over two product lines.
		{X: 31, Y: 205, Text: "BAR PIECE DE"},
		{X: 31, Y: 218, Text: "3KG ET +"},
		{X: 260, Y: 218, Text: "26,00"},

		// Right column.
		{X: 302, Y: 150, Text: "DORADE ROYALE"},
		{X: 315, Y: 170, Text: "DORADE ROYALE SAUVAGE"},
		{X: 545, Y: 170, Text: "19,90"},
	})
}

const _hnqFooter = "HENNEQUIN MAREE - RUNGIS"

func TestHennequinExtract(t *testing.T) {
	ex, err := NewHennequinExtractor()
	require.NoError(t, err)

	records, err := ex.Extract(context.Background(), hennequinDoc(), Options{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	bar := records[0]
	assert.Equal(t, "BAR 2/3 EXTRA", bar.Product, "quality folds into the name, trailing dots dropped")
	assert.Equal(t, "HNQ_bar_2/3_extra", bar.ProviderCode)
	assert.Equal(t, "HNQ_bar_2/3_extra_2024-01-17", bar.KeyDate)
	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), bar.Date)
	require.NotNil(t, bar.Price)
	assert.Equal(t, 24.50, *bar.Price)
	assert.Equal(t, "BAR", bar.Category, "category alias strips the catch method")
	assert.Equal(t, "LIGNE", bar.CatchMethod, "method read from the category header")
	assert.Equal(t, "EXTRA", bar.Quality)
	assert.Equal(t, "2/3", bar.SizeGrade)

	piece := records[1]
	assert.Equal(t, "BAR PIECE DE 3KG ET +", piece.Product, "wrapped name lines merge")
	require.NotNil(t, piece.Price)
	assert.Equal(t, 26.00, *piece.Price)

	dorade := records[2]
	assert.Equal(t, "DORADE ROYALE SAUVAGE", dorade.Product)
	assert.Equal(t, "DORADE", dorade.Category)
	assert.Equal(t, "SAUVAGE", dorade.CatchMethod)
	require.NotNil(t, dorade.Price)
	assert.Equal(t, 19.90, *dorade.Price)
}

func TestHennequinExtract_PriceWithoutProductSkipped(t *testing.T) {
	ex, err := NewHennequinExtractor()
	require.NoError(t, err)

	doc := singlePage(595, []renderer.Token{
		{X: 200, Y: 41, Text: "DU 17/01/2024"},
		{X: 19.5, Y: 150, Text: "TURBOT"},
		{X: 260, Y: 170, Text: "31,00"},
	})

	_, err = ex.Extract(context.Background(), doc, Options{})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestAttachHennequinQualities(t *testing.T) {
	lines := []hennequinLine{
		{role: "category", text: "BAR"},
		{role: "product", text: "BAR 2/3"},
		{role: "quality", text: "EXTRA"},
		{role: "quality", text: "PECHE LOCALE"},
		{role: "price", text: "24,50"},
	}

	merged := attachHennequinQualities(lines)
	require.Len(t, merged, 3)
	assert.Equal(t, "BAR 2/3", merged[1].text)
	assert.Equal(t, "EXTRA / PECHE LOCALE", merged[1].quality)
}

func TestHennequinCalibre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"BAR 2/3", "2/3"},
		{"BAR PIECE +3", "+3"},
		{"HUITRES N° 2", "N°2"},
		{"CREVETTES JUMBO", "JUMBO"},
		{"GAMBAS GROSSES", "GROS"},
		{"SOLE EXTRA", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hennequinCalibre(tt.in), tt.in)
	}
}
