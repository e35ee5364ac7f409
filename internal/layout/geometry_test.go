package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
)

func TestForVendor_AllPDFVendorsCalibrated(t *testing.T) {
	for _, vendor := range []constants.Vendor{
		constants.VendorAudierne,
		constants.VendorHennequin,
		constants.VendorLaurentDaniel,
		constants.VendorVVQM,
	} {
		geo, err := ForVendor(vendor)
		require.NoError(t, err, vendor)
		require.NotNil(t, geo, vendor)
	}
}

func TestForVendor_NoGeometryForWorkbookVendor(t *testing.T) {
	_, err := ForVendor(constants.VendorDemarne)
	assert.Error(t, err)
}

func TestGeometry_LaurentDanielColumns(t *testing.T) {
	geo, err := ForVendor(constants.VendorLaurentDaniel)
	require.NoError(t, err)

	require.Len(t, geo.Columns, 3)
	require.Len(t, geo.PricePct, 3)
	require.Len(t, geo.QualityMinPct, 3)
	require.Len(t, geo.CategoryMinPct, 3)
	assert.Equal(t, 100.0, geo.MinY)
}

func TestGeometry_RoleFor(t *testing.T) {
	geo, err := ForVendor(constants.VendorHennequin)
	require.NoError(t, err)

	assert.Equal(t, "category", geo.RoleFor(19.5))
	assert.Equal(t, "product", geo.RoleFor(31))
	assert.Equal(t, "product", geo.RoleFor(315))
	assert.Equal(t, "quality", geo.RoleFor(44))
	assert.Equal(t, "price", geo.RoleFor(260))
	assert.Equal(t, "", geo.RoleFor(150))
}

func TestBand_Contains(t *testing.T) {
	b := Band{Min: 40, Max: 42}
	assert.True(t, b.Contains(40))
	assert.True(t, b.Contains(42))
	assert.False(t, b.Contains(42.1))
}

func TestLoadGeometries_RejectsUnknownVendor(t *testing.T) {
	doc := []byte(`{"NOT_A_VENDOR": {"y_tolerance": 1.0}}`)
	_, err := loadGeometries(doc, layoutsSchemaJSON)
	assert.Error(t, err)
}

func TestCategoryFold(t *testing.T) {
	fold := CategoryFold{}
	assert.Equal(t, "", fold.Current())

	fold.Set("TURBOT")
	assert.Equal(t, "TURBOT", fold.Current())

	fold.Set("SOLE")
	assert.Equal(t, "SOLE", fold.Current())

	fold.Reset()
	assert.Equal(t, "", fold.Current())
}

func TestSectionIndex_At(t *testing.T) {
	idx := SectionIndex{}
	assert.True(t, idx.Empty())
	assert.Equal(t, "", idx.At(100))

	idx.Add(200, "CRUSTACES BRETONS")
	idx.Add(100, "COQUILLAGES")
	assert.False(t, idx.Empty())

	assert.Equal(t, "", idx.At(50))
	assert.Equal(t, "COQUILLAGES", idx.At(100))
	assert.Equal(t, "COQUILLAGES", idx.At(199))
	assert.Equal(t, "CRUSTACES BRETONS", idx.At(300))
}
