package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func demarneWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{
		OddHeader: "Mercuriale du 15/01/2024",
	}))

	set := func(cell, value string) {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}

	// Paragraph header: bilingual category, column titles in row 1.
	set("A1", "SAUMON SUPÉRIEUR NORVÈGE / Superior salmon")
	set("D1", "Code")

	// Two article rows sharing merged calibre and origin cells. The second
	// row leaves the variant cell empty, so the variant carries down.
	set("A2", "Filet de saumon / Salmon fillet")
	set("B2", "TRIM D")
	set("C2", "6/7")
	set("D2", "12345")
	set("E2", "NORVEGE")
	set("F2", "COLIS 10KG")
	set("G2", "18,90")
	set("H2", "KG")
	require.NoError(t, f.MergeCell(sheet, "C2", "C3"))
	require.NoError(t, f.MergeCell(sheet, "E2", "E3"))

	set("D3", "12346")
	set("G3", "19,90")

	// Banner row between paragraphs, not an article.
	set("A4", "LA MARÉE")

	return f
}

func TestDemarneExtract(t *testing.T) {
	ex := NewDemarneExtractor()

	records, err := ex.Extract(context.Background(), demarneWorkbook(t), Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "12345", first.ProviderCode)
	assert.Equal(t, "12345_2024-01-15", first.KeyDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "SAUMON SUPÉRIEUR NORVÈGE", first.Category)
	assert.Equal(t, "Superior salmon", first.CategoryEN)
	assert.Equal(t, "Filet de saumon", first.Variant)
	assert.Equal(t, "Salmon fillet", first.VariantEN)
	assert.Equal(t, "TRIM D", first.Label)
	assert.Equal(t, "6/7", first.SizeGrade)
	assert.Equal(t, "NORVEGE", first.Origin)
	require.NotNil(t, first.Price)
	assert.Equal(t, 18.90, *first.Price)
	assert.Equal(t, "SAUMON SUPÉRIEUR NORVÈGE - Filet de saumon - TRIM D - 6/7", first.Product)
	assert.Contains(t, first.RawInfo, "Colisage:COLIS 10KG")
	assert.Contains(t, first.RawInfo, "Unité:KG")

	second := records[1]
	assert.Equal(t, "12346", second.ProviderCode)
	assert.Equal(t, "Filet de saumon", second.Variant, "variant carries down")
	assert.Equal(t, "Salmon fillet", second.VariantEN, "translation propagated")
	assert.Equal(t, "6/7", second.SizeGrade, "merged calibre cell")
	assert.Equal(t, "NORVEGE", second.Origin, "merged origin cell")
	require.NotNil(t, second.Price)
	assert.Equal(t, 19.90, *second.Price)
}

func TestDemarneExtract_MissingDate(t *testing.T) {
	ex := NewDemarneExtractor()
	f := excelize.NewFile()

	_, err := ex.Extract(context.Background(), f, Options{})
	assert.ErrorIs(t, err, ErrNoDate)

	_, err = ex.Extract(context.Background(), f, Options{FallbackDate: "2024-01-15"})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestSplitFrEn(t *testing.T) {
	fr, en := splitFrEn("SAUMON SUPÉRIEUR / Superior salmon")
	assert.Equal(t, "SAUMON SUPÉRIEUR", fr)
	assert.Equal(t, "Superior salmon", en)

	fr, en = splitFrEn("MOULES DE BOUCHOT / bouchot mussels")
	assert.Equal(t, "MOULES DE BOUCHOT", fr)
	assert.Equal(t, "bouchot mussels", en)

	fr, en = splitFrEn("CABILLAUD ENTIER")
	assert.Equal(t, "CABILLAUD ENTIER", fr)
	assert.Equal(t, "", en)
}

func TestDemarneFishingMethod(t *testing.T) {
	assert.Equal(t, "LIGNE", demarneFishingMethod("", "BAR DE LIGNE", "", ""))
	assert.Equal(t, "IKEJIME", demarneFishingMethod("", "BAR", "Bar ikejime", ""))
	assert.Equal(t, "LIGNE", demarneFishingMethod("", "BAR CHALUT", "Bar de ligne", ""), "variant outranks category")
	assert.Equal(t, "", demarneFishingMethod("FILET DE LIEU", "FILETS", "", ""), "FILET is a cut, not a method")
}
