// Package harmonize maps raw vendor records onto the canonical taxonomy:
// one species vocabulary, one attribute vocabulary, accents stripped and
// vendor shorthand expanded. Demarne gets its own path because its workbook
// splits the information across category, variant and label columns.
package harmonize

import (
	"strings"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/entity"
	"github.com/lacriee/prices-tracker/internal/extract"
)

// Harmonize converts a raw record into a canonical price record. The input
// is never mutated; calling twice yields the same output.
func Harmonize(raw extract.RawRecord) entity.PriceRecord {
	rec := entity.PriceRecord{
		KeyDate:      raw.KeyDate,
		Vendor:       string(raw.Vendor),
		ProviderCode: raw.ProviderCode,
		PriceDate:    raw.Date,
		Product:      raw.Product,
		Price:        raw.Price,
		RawInfo:      ptr(raw.RawInfo),
	}

	if raw.Vendor == constants.VendorDemarne {
		harmonizeDemarne(raw, &rec)
		return rec
	}
	harmonizeGeneric(raw, &rec)
	return rec
}

func harmonizeGeneric(raw extract.RawRecord, rec *entity.PriceRecord) {
	method := raw.CatchMethod
	cut := raw.Cut

	// Category first, it can claim FILET as cut or method for the record.
	category, cutFromCat, methodFromCat := normalizeCategory(raw.Category, raw.Product)
	rec.Category = ptr(category)
	if cutFromCat != "" && cut == "" {
		cut = cutFromCat
	}
	if methodFromCat != "" {
		if method == "" {
			method = methodFromCat
		}
		if methodFromCat == "FILET" && cut == "FILET" {
			cut = ""
		}
	}

	normMethod, prodType, slaughter := normalizeCatchMethod(method)
	rec.CatchMethod = ptr(normMethod)
	rec.SlaughterTechnique = ptr(slaughter)
	if prodType != "" {
		rec.ProductionType = ptr(prodType)
	}

	state, color := normalizeState(raw.State)
	rec.State = ptr(state)
	rec.Color = ptr(color)

	origin, originProdType := normalizeOrigin(raw.Origin)
	rec.Origin = ptr(origin)
	if rec.ProductionType == nil && originProdType != "" {
		rec.ProductionType = ptr(originProdType)
	}

	rec.Quality = ptr(normalizeQuality(raw.Quality))

	// FILET after the species in the name is the net fishery, not a cut,
	// unless the category already settled the question.
	if methodFromCat == "" && strings.Contains(strings.ToUpper(raw.Product), "FILET") {
		if m := analyzeFilet(raw.Product); m.isMethod {
			if rec.CatchMethod == nil {
				rec.CatchMethod = ptr("FILET")
			}
			if cut == "FILET" {
				cut = ""
			}
		}
	}

	if cut != "" {
		cut = normalizeCut(cut)
	}
	if cut == "" && reDecoupeKeyword.MatchString(strings.ToUpper(raw.Product)) {
		cut = "DECOUPE"
	}

	rec.SizeGrade = ptr(NormalizeCalibre(raw.SizeGrade))
	rec.Conservation = ptr(normalizeConservation(raw.Conservation))
	rec.TrimCode = ptr(normalizeTrim(raw.Trim))
	rec.Cut = ptr(combineCutWithPrepStates(cut, extractPrepStates(raw.Product)))
	rec.Label = ptr(strings.TrimSpace(raw.Label))
}

// normalizeCategory returns the canonical category plus any cut or catch
// method the category name itself encodes.
func normalizeCategory(category, productName string) (out, cutFromCat, methodFromCat string) {
	if category == "" {
		if productName != "" && strings.Contains(strings.ToUpper(productName), "FILET") {
			m := analyzeFilet(productName)
			if m.isMethod {
				methodFromCat = "FILET"
			} else {
				cutFromCat = "FILET"
			}
			if m.species != "" {
				out = m.species
			} else if sp := extract.ExtractSpecies(productName); sp != "" {
				out = sp
			}
		}
		return out, cutFromCat, methodFromCat
	}

	cat := extract.NormalizeValue(category)

	if strings.Contains(cat, "FILET") {
		m := analyzeFilet(cat)
		if m.isMethod {
			methodFromCat = "FILET"
			if m.species != "" {
				out = m.species
			}
		} else {
			cutFromCat = "FILET"
			if m.species != "" {
				out = m.species
			} else if sp := extract.ExtractSpecies(productName); sp != "" {
				out = sp
			}
		}
		return out, cutFromCat, methodFromCat
	}

	if mapped, ok := categoryMapping[cat]; ok {
		return mapped, "", ""
	}
	out = cat

	// A DORADE with GRISE in the product name is the grey sea bream.
	if productName != "" && strings.Contains(out, "DORADE") {
		if strings.Contains(extract.NormalizeValue(productName), "GRISE") {
			out = "DORADE GRISE"
		}
	}
	return out, "", ""
}

// normalizeCatchMethod expands shorthand and splits out values that belong
// to other fields: SAUVAGE describes production, IKEJIME the slaughter
// technique ("LIGNE IKEJIME" becomes method LIGNE plus technique IKEJIME).
func normalizeCatchMethod(method string) (out, productionType, slaughter string) {
	if method == "" {
		return "", "", ""
	}
	m := extract.NormalizeValue(method)

	if m == "SAUVAGE" {
		return "", "SAUVAGE", ""
	}

	words := strings.Fields(m)
	var kept []string
	for _, w := range words {
		if w == "IKEJIME" {
			slaughter = "IKEJIME"
			continue
		}
		kept = append(kept, w)
	}
	m = strings.Join(kept, " ")

	if mapped, ok := catchMethodMapping[m]; ok {
		return mapped, "", slaughter
	}
	return m, "", slaughter
}

func normalizeState(state string) (out, color string) {
	if state == "" {
		return "", ""
	}
	s := extract.NormalizeValue(state)
	if _, isColor := stateColors[s]; isColor {
		return "", s
	}
	if mapped, ok := stateMapping[s]; ok {
		return mapped, ""
	}
	return s, ""
}

// normalizeOrigin handles comma separated multi-origins, each mapped on its
// own, and pulls aquaculture marks out into the production type.
func normalizeOrigin(origin string) (out, productionType string) {
	if origin == "" {
		return "", ""
	}
	var kept []string
	for _, part := range strings.Split(origin, ",") {
		o := extract.NormalizeValue(part)
		if o == "" {
			continue
		}
		if pt, ok := originProductionType[o]; ok {
			productionType = pt
			continue
		}
		if mapped, ok := originMapping[o]; ok {
			o = mapped
		}
		kept = append(kept, o)
	}
	return strings.Join(kept, ", "), productionType
}

func normalizeQuality(quality string) string {
	if quality == "" {
		return ""
	}
	q := extract.NormalizeValue(quality)
	if mapped, ok := qualityMapping[q]; ok {
		return mapped
	}
	return q
}

func normalizeCut(cut string) string {
	c := extract.NormalizeValue(cut)
	if c == "FT" {
		return "FILET"
	}
	return c
}

func normalizeConservation(conservation string) string {
	if conservation == "" {
		return ""
	}
	c := extract.NormalizeValue(conservation)
	if mapped, ok := conservationMapping[c]; ok {
		return mapped
	}
	return c
}

func normalizeTrim(trim string) string {
	if trim == "" {
		return ""
	}
	t := extract.NormalizeValue(trim)
	if mapped, ok := trimMapping[t]; ok {
		return mapped
	}
	return t
}

// NormalizeCalibre unifies decimal separators and plus notation: "1,5/2"
// becomes "1.5/2", "500/+" and "+500" both become "500+".
func NormalizeCalibre(calibre string) string {
	if calibre == "" {
		return ""
	}
	c := strings.TrimSpace(calibre)
	c = reCalibreDecimal.ReplaceAllString(c, "$1.$2")
	c = reCalibreSlashPlus.ReplaceAllString(c, "$1+")
	c = reCalibreLeadPlus.ReplaceAllString(c, "$1+")
	return c
}

// ptr returns nil for the empty string so optional columns stay NULL.
func ptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
