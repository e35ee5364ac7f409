package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

func vvqmDoc() fakeDoc {
	return fakeDoc{pages: []renderer.Page{
		{
			Number: 1, Width: 842, Height: 595,
			Tokens: []renderer.Token{
				{X: 300, Y: 30, Text: "Mercuriale au 15.01.2024"},

				// Right area governed by a bold section title.
				{X: 520, Y: 100, Text: "CRUSTACES BRETONS", Bold: true},
				{X: 420, Y: 150, Text: "TOURTEAU"},
				{X: 510, Y: 150, Text: "8.9", Bold: true},

				// Left area: product, grade, bold price.
				{X: 50, Y: 200, Text: "BAR LIGNE"},
				{X: 150, Y: 200, Text: "2/3"},
				{X: 200, Y: 200, Text: "18.5", Bold: true},

				// No grade token between product and price.
				{X: 50, Y: 240, Text: "DOS CABILLAUD"},
				{X: 250, Y: 240, Text: "21", Bold: true},
			},
		},
		{
			// Repeated row on a later page is deduplicated.
			Number: 2, Width: 842, Height: 595,
			Tokens: []renderer.Token{
				{X: 50, Y: 200, Text: "BAR LIGNE"},
				{X: 150, Y: 200, Text: "2/3"},
				{X: 200, Y: 200, Text: "18.5", Bold: true},
			},
		},
	}}
}

func TestVVQMExtract(t *testing.T) {
	ex, err := NewVVQMExtractor()
	require.NoError(t, err)

	records, err := ex.Extract(context.Background(), vvqmDoc(), Options{})
	require.NoError(t, err)
	require.Len(t, records, 3, "duplicate row dropped")

	tourteau := records[0]
	assert.Equal(t, "TOURTEAU", tourteau.Product)
	assert.Equal(t, "CRUSTACES BRETONS", tourteau.Category, "bold title governs the right column")
	require.NotNil(t, tourteau.Price)
	assert.Equal(t, 8.9, *tourteau.Price)

	bar := records[1]
	assert.Equal(t, "BAR LIGNE - 2/3", bar.Product)
	assert.Equal(t, "VVQM_BAR_LIGNE_2/3", bar.ProviderCode)
	assert.Equal(t, "VVQM_BAR_LIGNE_2/3_2024-01-15", bar.KeyDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), bar.Date)
	require.NotNil(t, bar.Price)
	assert.Equal(t, 18.5, *bar.Price)
	assert.Equal(t, "2/3", bar.SizeGrade)
	assert.Equal(t, "LIGNE", bar.CatchMethod)
	assert.Equal(t, "BAR", bar.Category)

	dos := records[2]
	assert.Equal(t, "DOS CABILLAUD", dos.Product)
	assert.Equal(t, "", dos.SizeGrade)
	assert.Equal(t, "DOS", dos.Cut)
	assert.Equal(t, "CABILLAUD", dos.Category)
	require.NotNil(t, dos.Price)
	assert.Equal(t, 21.0, *dos.Price)
}

func TestVVQMExtract_NoDate(t *testing.T) {
	ex, err := NewVVQMExtractor()
	require.NoError(t, err)

	doc := singlePage(842, []renderer.Token{
		{X: 50, Y: 200, Text: "BAR"},
		{X: 200, Y: 200, Text: "18.5", Bold: true},
	})

	_, err = ex.Extract(context.Background(), doc, Options{})
	assert.ErrorIs(t, err, ErrNoDate)
}

func TestIsVVQMPriceToken(t *testing.T) {
	assert.True(t, isVVQMPriceToken("18.5"))
	assert.True(t, isVVQMPriceToken("21"))
	assert.True(t, isVVQMPriceToken("-1"))
	assert.False(t, isVVQMPriceToken("2/3"))
	assert.False(t, isVVQMPriceToken("BAR"))
	assert.False(t, isVVQMPriceToken("18,5"))
}

func TestParseVVQMProductName(t *testing.T) {
	var rec RawRecord
	species := parseVVQMProductName("FILET LIEU JAUNE LIGNE VIDÉ", &rec)
	assert.Equal(t, "LIEU JAUNE", species)
	assert.Equal(t, "FILET", rec.Cut)
	assert.Equal(t, "LIGNE", rec.CatchMethod)
	assert.Equal(t, "VIDÉ", rec.State)

	rec = RawRecord{}
	species = parseVVQMProductName("BAR DE LIGNE IKE VAT", &rec)
	assert.Equal(t, "BAR", species)
	assert.Equal(t, "LIGNE IKEJIME", rec.CatchMethod)
	assert.Equal(t, "ATLANTIQUE", rec.Origin)

	rec = RawRecord{}
	species = parseVVQMProductName("SOLE VIDE", &rec)
	assert.Equal(t, "SOLE", species)
	assert.Equal(t, "VIDÉ", rec.State)
}

func TestVVQMCategoryForSpecies(t *testing.T) {
	assert.Equal(t, "ROUGET BARBET", vvqmCategoryForSpecies("ROUGET"))
	assert.Equal(t, "BARBUE", vvqmCategoryForSpecies("BARBUE"))
	assert.Equal(t, "SAINT PIERRE", vvqmCategoryForSpecies("ST PIERRE"))
	assert.Equal(t, "POISSON", vvqmCategoryForSpecies("GAMBAS"))
	assert.Equal(t, "POISSON", vvqmCategoryForSpecies(""))
}
