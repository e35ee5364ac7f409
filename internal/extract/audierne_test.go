package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

func audierneDoc() fakeDoc {
	return singlePage(595, []renderer.Token{
		// Letterhead and date line.
		{X: 50, Y: 30, Text: "Cours du 15/01/2024", FontSize: 8},
		{X: 50, Y: 45, Text: "VIVIERS DE BRETAGNE", FontSize: 8},

		// Left column: a specific section with a continuation line.
		{X: 50, Y: 100, Text: "TURBOT", FontSize: 12},
		{X: 50, Y: 120, Text: "TURBOT 2/3 LIGNE.......12,50", FontSize: 8},
		{X: 50, Y: 132, Text: "PREMIUM", FontSize: 7},

		// Right column: a generic section refined from the product name.
		{X: 350, Y: 100, Text: "SAUMONS", FontSize: 12},
		{X: 350, Y: 120, Text: "FILET SAUMON TRIM C VDK 4,5/5.....18,90", FontSize: 8},
	})
}

func TestAudierneExtract(t *testing.T) {
	ex, err := NewAudierneExtractor()
	require.NoError(t, err)

	records, err := ex.Extract(context.Background(), audierneDoc(), Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	turbot := records[0]
	assert.Equal(t, "TURBOT 2/3 LIGNE PREMIUM", turbot.Product)
	assert.Equal(t, "AUD_turbot_2_3_ligne_premium", turbot.ProviderCode)
	assert.Equal(t, "AUD_turbot_2_3_ligne_premium_2024-01-15", turbot.KeyDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), turbot.Date)
	require.NotNil(t, turbot.Price)
	assert.Equal(t, 12.50, *turbot.Price)
	assert.Equal(t, "TURBOT", turbot.Category)
	assert.Equal(t, "LIGNE", turbot.CatchMethod)
	assert.Equal(t, "PREMIUM", turbot.Quality)
	assert.Equal(t, "2/3", turbot.SizeGrade)

	saumon := records[1]
	assert.Equal(t, "FILET SAUMON TRIM C VDK 4,5/5", saumon.Product)
	require.NotNil(t, saumon.Price)
	assert.Equal(t, 18.90, *saumon.Price)
	assert.Equal(t, "SAUMON", saumon.Category, "generic section refined from name")
	assert.Equal(t, "FILET", saumon.Cut)
	assert.Equal(t, "DANEMARK", saumon.Origin)
	assert.Equal(t, "TRIM C", saumon.Trim)
	assert.Equal(t, "4,5/5", saumon.SizeGrade)
	assert.Contains(t, saumon.RawInfo, "Origine:DANEMARK")
}

func TestAudierneExtract_FallbackDate(t *testing.T) {
	ex, err := NewAudierneExtractor()
	require.NoError(t, err)

	doc := singlePage(595, []renderer.Token{
		{X: 50, Y: 100, Text: "SOLE", FontSize: 12},
		{X: 50, Y: 120, Text: "SOLE 400/600......32,00", FontSize: 8},
	})

	_, err = ex.Extract(context.Background(), doc, Options{})
	assert.ErrorIs(t, err, ErrNoDate)

	records, err := ex.Extract(context.Background(), doc, Options{FallbackDate: "2024-03-01"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestAudierneExtract_NoRows(t *testing.T) {
	ex, err := NewAudierneExtractor()
	require.NoError(t, err)

	doc := singlePage(595, []renderer.Token{
		{X: 50, Y: 30, Text: "Cours du 15/01/2024", FontSize: 8},
		{X: 50, Y: 60, Text: "Bonjour à tous", FontSize: 8},
	})

	_, err = ex.Extract(context.Background(), doc, Options{})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestIsAudierneSection(t *testing.T) {
	assert.True(t, isAudierneSection("TURBOT"))
	assert.True(t, isAudierneSection("TOURTEAUX - ARAIGNEES"))
	assert.True(t, isAudierneSection("ENCORNET ROUGE"), "short uppercase run")

	assert.False(t, isAudierneSection("PREMIUM"), "continuation word")
	assert.False(t, isAudierneSection("TRIM C"), "continuation word")
	assert.False(t, isAudierneSection("400/600"), "size grade")
	assert.False(t, isAudierneSection("Turbot"), "mixed case")
	assert.False(t, isAudierneSection("SOLE......12,50"), "priced line")
	assert.False(t, isAudierneSection("PB"), "too short")
}

func TestAudierneProductPrice(t *testing.T) {
	name, price, ok := audierneProductPrice("LOTTE 1/2.......14,00")
	require.True(t, ok)
	assert.Equal(t, "LOTTE 1/2", name)
	assert.Equal(t, 14.00, price)

	name, price, ok = audierneProductPrice("MERLAN PELEE 9,80")
	require.True(t, ok)
	assert.Equal(t, "MERLAN PELEE", name)
	assert.Equal(t, 9.80, price)

	// A bare number run is a grade column, not a product.
	_, _, ok = audierneProductPrice("400/600 12,50")
	assert.False(t, ok)

	_, _, ok = audierneProductPrice("TURBOT")
	assert.False(t, ok)
}

func TestAudierneCalibre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"HOMARD T3 (800/900)", "T3 (800/900)"},
		{"HOMARD T2", "T2"},
		{"BAR 400/600", "400/600"},
		{"HUITRES N°3", "N°3"},
		{"SARDINE 30GR", "30gr"},
		{"SOLE EXTRA", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, audierneCalibre(tt.in), tt.in)
	}
}
