package harmonize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/extract"
)

func demarneRaw() extract.RawRecord {
	return extract.RawRecord{
		Vendor:       constants.VendorDemarne,
		KeyDate:      "12345_2024-01-15",
		ProviderCode: "12345",
	}
}

func TestHarmonizeDemarne_CategoryCarriesAttributes(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "SAUMON SUPÉRIEUR NORVÈGE"
	raw.Variant = "Filet de saumon"
	raw.Label = "TRIM D"
	raw.SizeGrade = "6/7"
	raw.Origin = "NORVEGE"
	raw.Product = "SAUMON SUPÉRIEUR NORVÈGE - Filet de saumon - TRIM D - 6/7"

	rec := Harmonize(raw)
	assert.Equal(t, "SAUMON", strVal(rec.Category))
	assert.Equal(t, "SUP", strVal(rec.Quality))
	assert.Equal(t, "NORVEGE", strVal(rec.Origin))
	assert.Equal(t, "TRIM_D", strVal(rec.TrimCode))
	assert.Nil(t, rec.Label, "trim codes are not certification labels")
	assert.Equal(t, "FILET", strVal(rec.Cut), "cut read from the variant")
	assert.Equal(t, "6/7", strVal(rec.SizeGrade))
}

func TestHarmonizeDemarne_GenericCategoryUsesVariantSpecies(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "POISSON PLAT"
	raw.Variant = "Dos de cabillaud"

	rec := Harmonize(raw)
	assert.Equal(t, "CABILLAUD", strVal(rec.Category))
	assert.Equal(t, "DOS", strVal(rec.Cut))
}

func TestHarmonizeDemarne_FiletCategories(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "FILETS POISSON BLANC"
	raw.Variant = "Filet de lieu noir"

	rec := Harmonize(raw)
	assert.Equal(t, "LIEU NOIR", strVal(rec.Category))
	assert.Equal(t, "FILET", strVal(rec.Cut))

	raw = demarneRaw()
	raw.Category = "FILET DE TRUITE"

	rec = Harmonize(raw)
	assert.Equal(t, "TRUITE", strVal(rec.Category))
	assert.Equal(t, "FILET", strVal(rec.Cut))
}

func TestHarmonizeDemarne_FiletSpeciesNormalization(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "FILET DE LOUP"

	rec := Harmonize(raw)
	assert.Equal(t, "LOUP DE MER", strVal(rec.Category))

	raw = demarneRaw()
	raw.Category = "FILET DE PERCHE"

	rec = Harmonize(raw)
	assert.Equal(t, "PERCHE DU NIL", strVal(rec.Category))
}

func TestHarmonizeDemarne_PrefixSpeciesIsDeterministic(t *testing.T) {
	// Several spellings share a prefix (SAUMONETTE and SAUMON, LIEU NOIR
	// and LIEU). Repeated runs must always pick the longer one.
	for i := 0; i < 100; i++ {
		raw := demarneRaw()
		raw.Category = "AUTRES POISSONS"
		raw.Variant = "Saumonettes"

		rec := Harmonize(raw)
		assert.Equal(t, "SAUMONETTE", strVal(rec.Category))
	}

	for i := 0; i < 100; i++ {
		assert.Equal(t, "SAUMONETTE", normalizeFiletSpecies("SAUMONETTES"))
		assert.Equal(t, "LIEU NOIR", normalizeFiletSpecies("LIEU NOIRE"))
		assert.Equal(t, "MERLUCHON", normalizeFiletSpecies("MERLUCHONS"))
	}
}

func TestHarmonizeDemarne_OriginFallsBackToCategory(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "BAR ELEVAGE NORVEGE"
	raw.Origin = "3 kg"

	rec := Harmonize(raw)
	assert.Equal(t, "BAR", strVal(rec.Category))
	assert.Equal(t, "NORVEGE", strVal(rec.Origin), "weight in the origin column is noise")
	assert.Equal(t, "ELEVAGE", strVal(rec.ProductionType))
}

func TestHarmonizeDemarne_OriginMapping(t *testing.T) {
	tests := []struct{ in, want string }{
		{"DANNEMARK", "DANEMARK"},
		{"UK", "ROYAUME-UNI"},
		{"UK - DK", "ROYAUME-UNI, DANEMARK"},
		{"ANE", "ATLANTIQUE N-EST"},
		{"MED", "MEDITERRANEE"},
		{"BRETAGNE", "BRETAGNE"},
	}
	for _, tt := range tests {
		raw := demarneRaw()
		raw.Category = "BAR"
		raw.Origin = tt.in
		rec := Harmonize(raw)
		assert.Equal(t, tt.want, strVal(rec.Origin), tt.in)
	}
}

func TestHarmonizeDemarne_LabelsAndTrim(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "SAUMON ECOSSE"
	raw.Label = "MSC / Trim C"

	rec := Harmonize(raw)
	assert.Equal(t, "MSC", strVal(rec.Label))
	assert.Equal(t, "TRIM_C", strVal(rec.TrimCode))

	raw.Label = "LABEL ROUGE BIO"
	rec = Harmonize(raw)
	assert.Equal(t, "BIO, LABEL ROUGE", strVal(rec.Label))
	assert.Nil(t, rec.TrimCode)
}

func TestHarmonizeDemarne_IkejimeSplitsFromMethod(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "BAR"
	raw.CatchMethod = "IKEJIME"

	rec := Harmonize(raw)
	assert.Nil(t, rec.CatchMethod)
	assert.Equal(t, "IKEJIME", strVal(rec.SlaughterTechnique))
}

func TestHarmonizeDemarne_OysterBrands(t *testing.T) {
	for _, brand := range []string{"LA PERLE NOIRE", "LA SPECIALE DU CHEF", "KYS N°3", "HUITRE CREUSE"} {
		raw := demarneRaw()
		raw.Category = brand
		rec := Harmonize(raw)
		assert.Equal(t, "HUITRES", strVal(rec.Category), brand)
	}
}

func TestHarmonizeDemarne_VariantStateAndPrep(t *testing.T) {
	raw := demarneRaw()
	raw.Category = "DORADE"
	raw.Variant = "Dorade grise vidée"
	raw.Product = "DORADE - Dorade grise vidée"

	rec := Harmonize(raw)
	assert.Equal(t, "DORADE GRISE", strVal(rec.Category))
	assert.Equal(t, "VIDE", strVal(rec.State))
	assert.Equal(t, "Vidé", strVal(rec.Cut), "prep state from the full name")
}
