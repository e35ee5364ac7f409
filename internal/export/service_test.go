package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lacriee/prices-tracker/gen/ent"
)

func strPtr(s string) *string { return &s }
func fPtr(f float64) *float64 { return &f }

func TestWriteWorkbook(t *testing.T) {
	recs := []*ent.PriceRecord{
		{
			KeyDate:      "AUD_turbot_2_3_2024-01-15",
			Vendor:       "AUDIERNE",
			ProviderCode: "AUD_turbot_2_3",
			PriceDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Product:      "TURBOT 2/3",
			Price:        fPtr(12.5),
			Category:     strPtr("TURBOT"),
			SizeGrade:    strPtr("2/3"),
			Quality:      strPtr("PREMIUM"),
			CatchMethod:  strPtr("LIGNE"),
		},
		{
			KeyDate:      "DEM_12345_2024-01-15",
			Vendor:       "DEMARNE",
			ProviderCode: "DEM_12345",
			PriceDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Product:      "FILET DE SAUMON",
			// no price published this week
		},
	}

	out, err := writeWorkbook(recs)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	const sheet = "Prices"
	for i, want := range priceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "header column %d", i+1)
	}

	get := func(cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "2024-01-15", get("A2"))
	assert.Equal(t, "AUDIERNE", get("B2"))
	assert.Equal(t, "TURBOT", get("C2"))
	assert.Equal(t, "TURBOT 2/3", get("D2"))
	assert.Equal(t, "12.5", get("E2"))
	assert.Equal(t, "2/3", get("F2"))
	assert.Equal(t, "PREMIUM", get("G2"))
	assert.Equal(t, "LIGNE", get("H2"))
	assert.Equal(t, "AUD_turbot_2_3", get("R2"))

	// optional columns stay blank, not "nil"
	assert.Equal(t, "", get("C3"))
	assert.Equal(t, "", get("E3"))
	assert.Equal(t, "FILET DE SAUMON", get("D3"))
}

func TestWriteWorkbookEmpty(t *testing.T) {
	out, err := writeWorkbook(nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Prices")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
