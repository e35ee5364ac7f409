package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/renderer"
)

// fakeDoc is a hand-built rendered document for extractor tests.
type fakeDoc struct {
	pages  []renderer.Page
	header string
}

func (d fakeDoc) Pages() []renderer.Page { return d.pages }
func (d fakeDoc) HeaderText() string     { return d.header }

func singlePage(width float64, tokens []renderer.Token) fakeDoc {
	return fakeDoc{pages: []renderer.Page{{Number: 1, Width: width, Height: 842, Tokens: tokens}}}
}

func TestForVendor(t *testing.T) {
	for _, vendor := range []constants.Vendor{
		constants.VendorAudierne,
		constants.VendorHennequin,
		constants.VendorLaurentDaniel,
		constants.VendorVVQM,
	} {
		ex, err := ForVendor(vendor)
		require.NoError(t, err, vendor)
		assert.Equal(t, vendor, ex.Vendor())
	}
}

func TestForVendor_DemarneNeedsWorkbookExtractor(t *testing.T) {
	_, err := ForVendor(constants.VendorDemarne)
	assert.Error(t, err)

	_, err = ForVendor(constants.Vendor("UNKNOWN"))
	assert.Error(t, err)
}

func TestKeyDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "AUD_turbot_2024-01-15", keyDate("AUD_turbot", d))
}

func TestResolveDate(t *testing.T) {
	docDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := resolveDate(docDate, true, Options{})
	require.NoError(t, err)
	assert.Equal(t, docDate, got)

	got, err = resolveDate(time.Time{}, false, Options{FallbackDate: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = resolveDate(time.Time{}, false, Options{})
	assert.ErrorIs(t, err, ErrNoDate)
}
