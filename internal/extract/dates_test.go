package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindDocumentDate_Grammars(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		vendor constants.Vendor
		want   time.Time
	}{
		{"slash", "Cours du 15/01/2024", constants.VendorAudierne, date(2024, 1, 15)},
		{"dot", "Mercuriale au 03.06.2024", constants.VendorVVQM, date(2024, 6, 3)},
		{"iso", "export 2024-01-15", constants.VendorHennequin, date(2024, 1, 15)},
		{"french text", "le lundi 15 janvier 2024", constants.VendorLaurentDaniel, date(2024, 1, 15)},
		{"french accented month", "vendredi 2 février 2024", constants.VendorLaurentDaniel, date(2024, 2, 2)},
		{"french unaccented month", "3 fevrier 2024", constants.VendorLaurentDaniel, date(2024, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindDocumentDate(tt.text, tt.vendor)
			require.True(t, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDocumentDate_VendorOrder(t *testing.T) {
	// Both a French text date and a slash date are present; the vendor's
	// preferred grammar wins.
	text := "tarif du lundi 15 janvier 2024, édité le 20/01/2024"

	got, found := FindDocumentDate(text, constants.VendorLaurentDaniel)
	require.True(t, found)
	assert.Equal(t, date(2024, 1, 15), got)

	got, found = FindDocumentDate(text, constants.VendorHennequin)
	require.True(t, found)
	assert.Equal(t, date(2024, 1, 20), got)
}

func TestFindDocumentDate_RejectsImpossibleDates(t *testing.T) {
	_, found := FindDocumentDate("32/01/2024", constants.VendorAudierne)
	assert.False(t, found)

	_, found = FindDocumentDate("30/02/2024", constants.VendorAudierne)
	assert.False(t, found)

	_, found = FindDocumentDate("15/01/1824", constants.VendorAudierne)
	assert.False(t, found)

	_, found = FindDocumentDate("no date here", constants.VendorAudierne)
	assert.False(t, found)
}

func TestParseFallbackDate(t *testing.T) {
	for _, s := range []string{"2024-01-15", "15/01/2024", "15.01.2024", " 2024-01-15 "} {
		got, err := ParseFallbackDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, date(2024, 1, 15), got, s)
	}

	_, err := ParseFallbackDate("January 15th")
	assert.ErrorIs(t, err, ErrNoDate)
}
