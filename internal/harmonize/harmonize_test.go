package harmonize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/extract"
)

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func TestHarmonize_CarriesIdentity(t *testing.T) {
	price := 12.5
	raw := extract.RawRecord{
		Vendor:       constants.VendorAudierne,
		KeyDate:      "AUD_turbot_2024-01-15",
		ProviderCode: "AUD_turbot",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Product:      "TURBOT 2/3",
		Price:        &price,
		Category:     "TURBOT",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "AUD_turbot_2024-01-15", rec.KeyDate)
	assert.Equal(t, "AUDIERNE", rec.Vendor)
	assert.Equal(t, "AUD_turbot", rec.ProviderCode)
	assert.Equal(t, raw.Date, rec.PriceDate)
	assert.Equal(t, "TURBOT 2/3", rec.Product)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 12.5, *rec.Price)
	assert.Equal(t, "TURBOT", strVal(rec.Category))
}

func TestHarmonize_Deterministic(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:   constants.VendorHennequin,
		Product:  "BAR 2/3 EXTRA",
		Category: "BAR LIGNE",
		Quality:  "EXTRA",
	}
	a := Harmonize(raw)
	b := Harmonize(raw)
	assert.Equal(t, a, b)
}

func TestHarmonize_VocabularyMappings(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:       constants.VendorAudierne,
		Product:      "ST PIERRE VIDEE",
		Category:     "ST PIERRE",
		CatchMethod:  "PT BATEAU",
		State:        "VIDEE",
		Origin:       "VDK, VAT",
		Quality:      "QUALITE PREMIUM",
		SizeGrade:    "1,5/2",
		Conservation: "SURGELEE",
		Trim:         "TRIM C",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "SAINT PIERRE", strVal(rec.Category))
	assert.Equal(t, "PB", strVal(rec.CatchMethod))
	assert.Equal(t, "VIDE", strVal(rec.State))
	assert.Equal(t, "DANEMARK, ATLANTIQUE", strVal(rec.Origin))
	assert.Equal(t, "PREMIUM", strVal(rec.Quality))
	assert.Equal(t, "1.5/2", strVal(rec.SizeGrade))
	assert.Equal(t, "SURGELE", strVal(rec.Conservation))
	assert.Equal(t, "TRIM_C", strVal(rec.TrimCode))
	assert.Equal(t, "Vidé", strVal(rec.Cut), "prep state from the name")
}

func TestHarmonize_FiletBeforeSpeciesIsCut(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:   constants.VendorAudierne,
		Product:  "FILET SAUMON VDK",
		Category: "FILET DE POISSONS",
		Cut:      "FILET",
		Origin:   "VDK",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "SAUMON", strVal(rec.Category))
	assert.Equal(t, "FILET", strVal(rec.Cut))
	assert.Nil(t, rec.CatchMethod)
	assert.Equal(t, "DANEMARK", strVal(rec.Origin))
}

func TestHarmonize_FiletAfterSpeciesIsMethod(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:  constants.VendorLaurentDaniel,
		Product: "BAR FILET",
		Cut:     "FILET",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "BAR", strVal(rec.Category))
	assert.Equal(t, "FILET", strVal(rec.CatchMethod), "net fishery, not a cut")
	assert.Nil(t, rec.Cut)
}

func TestHarmonize_SauvageIsProductionType(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:      constants.VendorHennequin,
		Product:     "DORADE ROYALE SAUVAGE",
		Category:    "DORADE",
		CatchMethod: "SAUVAGE",
	}

	rec := Harmonize(raw)
	assert.Nil(t, rec.CatchMethod)
	assert.Equal(t, "SAUVAGE", strVal(rec.ProductionType))
}

func TestHarmonize_IkejimeIsSlaughterTechnique(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:      constants.VendorVVQM,
		Product:     "BAR LIGNE IKEJIME",
		CatchMethod: "LIGNE IKEJIME",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "LIGNE", strVal(rec.CatchMethod))
	assert.Equal(t, "IKEJIME", strVal(rec.SlaughterTechnique))
}

func TestHarmonize_ColorStates(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:   constants.VendorLaurentDaniel,
		Product:  "ENCORNET BLANCHE",
		Category: "ENCORNET",
		State:    "BLANCHE",
	}

	rec := Harmonize(raw)
	assert.Nil(t, rec.State)
	assert.Equal(t, "BLANCHE", strVal(rec.Color))
}

func TestHarmonize_AquacultureOrigin(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:   constants.VendorAudierne,
		Product:  "SAUMON AQ",
		Category: "SAUMONS",
		Origin:   "AQ",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "SAUMON", strVal(rec.Category))
	assert.Nil(t, rec.Origin)
	assert.Equal(t, "ELEVAGE", strVal(rec.ProductionType))
}

func TestHarmonize_DoradeGriseRefinedFromName(t *testing.T) {
	raw := extract.RawRecord{
		Vendor:   constants.VendorHennequin,
		Product:  "DORADE GRISE PETITE",
		Category: "DORADE",
	}

	rec := Harmonize(raw)
	assert.Equal(t, "DORADE GRISE", strVal(rec.Category))
}

func TestNormalizeCalibre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1,5/2", "1.5/2"},
		{"500/+", "500+"},
		{"+500", "500+"},
		{"400/600", "400/600"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCalibre(tt.in), tt.in)
	}
}

func TestAnalyzeFilet(t *testing.T) {
	m := analyzeFilet("FILET DE BAR")
	assert.True(t, m.isCut)
	assert.False(t, m.isMethod)
	assert.Equal(t, "BAR", m.species)

	m = analyzeFilet("BAR FILET")
	assert.True(t, m.isMethod)
	assert.False(t, m.isCut)
	assert.Equal(t, "BAR", m.species)

	m = analyzeFilet("FILET DE POISSON")
	assert.True(t, m.isCut, "no recognized species defaults to cut")
	assert.Empty(t, m.species)

	m = analyzeFilet("BAR ENTIER")
	assert.False(t, m.isCut)
	assert.False(t, m.isMethod)
}
