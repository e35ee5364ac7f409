package harmonize

import (
	"regexp"
	"strings"

	"github.com/lacriee/prices-tracker/internal/entity"
	"github.com/lacriee/prices-tracker/internal/extract"
)

// Demarne encodes several attributes inside its category names ("SAUMON
// SUPÉRIEUR NORVÈGE"), its variants ("Dos de cabillaud") and its label
// column (certifications and salmon trims). These tables pull them apart.

var demarneLabels = []string{"MSC", "BIO", "ASC", "LABEL ROUGE", "IGP", "AOP"}

type patternValue struct {
	re    *regexp.Regexp
	value string
}

func pv(pattern, value string) patternValue {
	return patternValue{re: regexp.MustCompile(pattern), value: value}
}

func firstPattern(rules []patternValue, text string) string {
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.value
		}
	}
	return ""
}

// Species read from the start of a category name, most specific first.
var demarneSpeciesRules = []patternValue{
	pv(`^SAUMON\b`, "SAUMON"),
	pv(`^BAR\b`, "BAR"),
	pv(`^DORADE\s+GRISE\b`, "DORADE GRISE"),
	pv(`^DORADE\b`, "DORADE"),
	pv(`^CREVETTE\b`, "CREVETTES"),
	pv(`^HOMARD\b`, "HOMARD"),
	pv(`^LANGOUSTE\b`, "LANGOUSTE"),
	pv(`^LANGOUSTINE\b`, "LANGOUSTINE"),
	pv(`^LOTTE\b`, "LOTTE"),
	pv(`^TURBOT\b`, "TURBOT"),
	pv(`^SAINT\s*PIERRE\b`, "SAINT PIERRE"),
	pv(`^CONGRE\b`, "CONGRE"),
	pv(`^MAIGRE\b`, "MAIGRE"),
	pv(`^ENCORNET\b`, "ENCORNET"),
	pv(`^POULPE\b`, "POULPE"),
	pv(`^SEICHE\b`, "SEICHE"),
	pv(`^MOULE`, "MOULES"),
	pv(`^TOURTEAU\b`, "TOURTEAU"),
	pv(`^THON\b`, "THON"),
	pv(`^SANDRE\b`, "SANDRE"),
	pv(`^TRUITE\b`, "TRUITE"),
	pv(`^SOLE\b`, "SOLE"),
	pv(`^PAGEOT\b`, "PAGEOT"),
	pv(`^AILE DE RAIE\b`, "RAIE"),
	pv(`^COQUILLE\s*SAINT\s*JACQUES\b`, "COQUILLE ST JACQUES"),
	pv(`^NOIX DE ST JACQUES\b`, "NOIX ST JACQUES"),
	// Oyster house brands all collapse to HUITRES.
	pv(`^HUITRE`, "HUITRES"),
	pv(`^LA BELON\b`, "HUITRES"),
	pv(`^LA CELTIQUE\b`, "HUITRES"),
	pv(`^LA FINE\b`, "HUITRES"),
	pv(`^LA PERLE NOIRE\b`, "HUITRES"),
	pv(`^LA SPECIALE\b`, "HUITRES"),
	pv(`^PLATE DE BRETAGNE\b`, "HUITRES"),
	pv(`^SPECIALE`, "HUITRES"),
	pv(`^KYS\b`, "HUITRES"),
	pv(`^ETOILE\b`, "HUITRES"),
	pv(`^COQUILLAGES`, "COQUILLAGES"),
	pv(`^CRUSTACES`, "CRUSTACES"),
}

var demarneOriginRules = []patternValue{
	pv(`\bNORVEGE\b`, "NORVEGE"),
	pv(`\bECOSSE\b`, "ECOSSE"),
	pv(`\bBRETAGNE\b`, "BRETAGNE"),
	pv(`\bMADAGASCAR\b`, "MADAGASCAR"),
	pv(`\bCANADIEN\b`, "CANADA"),
	pv(`\bEUROPEEN\b`, "EUROPE"),
}

var demarneProductionRules = []patternValue{
	pv(`\bSAUVAGE\b`, "SAUVAGE"),
	pv(`\bELEVAGE\b`, "ELEVAGE"),
}

var demarneQualityRules = []patternValue{
	pv(`\bSUPERIEUR\b`, "SUP"),
	pv(`\bPREMIUM\b`, "PREMIUM"),
	pv(`\bLABEL ROUGE\b`, "LABEL ROUGE"),
}

var demarneStateRules = []patternValue{
	pv(`\bENTIERE?\b`, "ENTIER"),
	pv(`\bVIDEE?\b`, "VIDE"),
	pv(`\bGRATTEE?\b`, "GRATTE"),
	pv(`\bCUITE?\b`, "CUIT"),
	pv(`\bVIVANTE?\b`, "VIVANT"),
	pv(`\bFUMEE?\b`, "FUME"),
	pv(`\bDECORTIQUE`, "DECORTIQUE"),
}

var demarneCutRules = []patternValue{
	pv(`\bFILETS?\b`, "FILET"),
	pv(`\bDOS\b`, "DOS"),
	pv(`\bQUEUE\b`, "QUEUE"),
	pv(`\bPAVE\b`, "PAVE"),
	pv(`\bLONGE\b`, "LONGE"),
	pv(`\bAILE\b`, "AILE"),
	pv(`\bNOIX\b`, "NOIX"),
	pv(`\bPINCE\b`, "PINCE"),
	pv(`\bDARNE\b`, "DARNE"),
	pv(`\bSTEAK\b`, "STEAK"),
}

// Categories that say nothing about the species; it hides in the variant.
var demarneGenericCategories = map[string]struct{}{
	"DOS": {}, "AUTRES POISSONS": {}, "POISSON PLAT": {}, "POISSON ENTIER": {},
	"PETIT POISSON": {}, "POISSON DE ROCHE": {}, "POISSONS EXOTIQUES": {},
	"POISSONS D'EAU DOUCE": {},
}

var variantCutRules = []struct {
	re  *regexp.Regexp
	cut string
}{
	{regexp.MustCompile(`(?i)DOS\s+(?:DE\s+|D')([A-Za-zÀ-ÿ]+(?:\s+[A-Za-zÀ-ÿ]+)?)`), "DOS"},
	{regexp.MustCompile(`(?i)FILETS?\s+(?:DE\s+|D')([A-Za-zÀ-ÿ]+(?:\s+[A-Za-zÀ-ÿ]+)?)`), "FILET"},
	{regexp.MustCompile(`(?i)PAVE\s+(?:DE\s+)?([A-Za-zÀ-ÿ]+(?:\s+[A-Za-zÀ-ÿ]+)?)`), "PAVE"},
	{regexp.MustCompile(`(?i)STEAK\s+([A-Za-zÀ-ÿ]+)`), "STEAK"},
}

var (
	reFiletCatSpecies = regexp.MustCompile(`FILETS?\s+(?:DE\s+|D')([A-Z]+)`)
	reFiletCatGeneric = regexp.MustCompile(`(FILETS?\s+POISSON\s+(BLANC|BLEU)|POISSONS?\s+FILETS?)`)
	reFiletVarSpecies = regexp.MustCompile(`FILET\s+(?:DE\s+|D')?([A-Za-z]+(?:\s+[A-Za-z]+)?)`)
	reFiletVarAlt     = regexp.MustCompile(`(?:PAVE|AILE)\s+DE\s+([A-Z]+)`)
	reSpeciesSuffix   = regexp.MustCompile(`(?i)\s+(S|A|S/P|MSC|VDK|LIGNE|VIDE|VIDÉ|A/P|BLANC)$`)
	reVariantSuffix   = regexp.MustCompile(`(?i)\s+(S|A|VDK|LIGNE|VIDE|VIDÉ|GROS|ROUGE)$`)
	reDemarneTrim     = regexp.MustCompile(`TRIM\s*([BCDE])`)
	reDemarneWeight   = regexp.MustCompile(`(?i)^\d+\s*(kg|grs?|g)\s*$`)
)

type speciesSpelling struct {
	spelling string
	species  string
}

// Species spellings that need correction when pulled out of FILET and
// variant phrases. Exact match is tried before the prefix scan, and the
// order puts every longer spelling ahead of any spelling that prefixes it
// (SAUMONETTE before SAUMON, LIEU NOIR before LIEU) so the prefix scan is
// deterministic.
var filetSpeciesNormalize = []speciesSpelling{
	{"LIEU NOIR", "LIEU NOIR"}, {"LIEU JAUNE", "LIEU JAUNE"}, {"LIEU", "LIEU JAUNE"},
	{"LINGUE BLEUE", "LINGUE"}, {"LINGUE", "LINGUE"},
	{"LIMANDE", "LIMANDE"},
	{"PERCHE DU NIL", "PERCHE DU NIL"}, {"PERCHE", "PERCHE DU NIL"},
	{"DORADE GRISE", "DORADE GRISE"}, {"DORADE CORYPHENE", "MAHI MAHI"}, {"DORADE", "DORADE"},
	{"ROUGET BARBET", "ROUGET BARBET"}, {"ROUGET", "ROUGET"},
	{"COLIN ALASKA", "COLIN"}, {"COLIN", "COLIN"},
	{"MEROU BADECHE", "MEROU"}, {"MEROU THIOFF", "MEROU"},
	{"MEROU A POINTS BLEUS", "MEROU"}, {"MEROU", "MEROU"},
	{"RASCASSE ROUGE", "RASCASSE"}, {"RASCASSE", "RASCASSE"},
	{"REQUIN PEAU BLEUE", "REQUIN"}, {"REQUIN", "REQUIN"},
	{"MAHI MAHI", "MAHI MAHI"}, {"MAHI", "MAHI MAHI"},
	{"BADECHE ROUGE", "BADECHE"}, {"BADECHE", "BADECHE"},
	{"OMBLE CHEVALIER", "OMBLE CHEVALIER"}, {"OMBLE", "OMBLE CHEVALIER"},
	{"SAUMONETTE EMISSOLE", "SAUMONETTE"}, {"SAUMONETTE", "SAUMONETTE"},
	{"SAUMON", "SAUMON"},
	{"MERLUCHON", "MERLUCHON"}, {"MERLU", "MERLU"}, {"MERLAN", "MERLAN"},
	{"BARBUE", "BARBUE"}, {"BARRACUDA", "BARRACUDA"}, {"BAR", "BAR"},
	{"HARENGS", "HARENG"}, {"HARENG", "HARENG"},
	{"CABILLAUD", "CABILLAUD"}, {"EGLEFIN", "EGLEFIN"},
	{"SEBASTE", "SEBASTE"}, {"LOUP", "LOUP DE MER"},
	{"JULIENNE", "JULIENNE"}, {"FLETAN", "FLETAN"},
	{"TACAUD", "TACAUD"}, {"SABRE", "SABRE"}, {"PLIE", "PLIE"},
	{"THON", "THON"}, {"ESPADON", "ESPADON"},
	{"MAQUEREAU", "MAQUEREAU"}, {"SARDINE", "SARDINE"},
	{"TRUITE", "TRUITE"}, {"SANDRE", "SANDRE"}, {"LOTTE", "LOTTE"},
	{"ANCHOIS", "ANCHOIS"}, {"SOLE", "SOLE"}, {"RAIE", "RAIE"},
	{"TURBOT", "TURBOT"}, {"MORUE", "MORUE"}, {"BROCHET", "BROCHET"},
	{"PAGEOT", "PAGEOT"}, {"PAGRE", "PAGRE"}, {"GRONDIN", "GRONDIN"},
	{"CARRELET", "CARRELET"}, {"CHINCHARD", "CHINCHARD"},
	{"EPERLAN", "EPERLAN"}, {"HOKI", "HOKI"}, {"MULET", "MULET"},
}

var demarneOriginMapping = map[string]string{
	"ECOSSE":    "ECOSSE",
	"DANNEMARK": "DANEMARK",
	"NORVEGE":   "NORVEGE",
	"ANE":       "ATLANTIQUE N-EST",
	"AML":       "MADAGASCAR",
	"UK":        "ROYAUME-UNI",
	"UK - DK":   "ROYAUME-UNI, DANEMARK",
	"USA":       "USA",
	"U.S.A":     "USA",
	"MED":       "MEDITERRANEE",
}

func harmonizeDemarne(raw extract.RawRecord, rec *entity.PriceRecord) {
	category, prodType, quality, state, originFromCat, cutFromCat := normalizeDemarneCategory(raw.Category, raw.Variant)
	rec.Category = ptr(category)
	if prodType != "" {
		rec.ProductionType = ptr(prodType)
	}
	rec.Quality = ptr(quality)

	cut := cutFromCat
	varCut, varState := normalizeDemarneVariant(raw.Variant)
	if cut == "" {
		cut = varCut
	}
	if state == "" {
		state = varState
	}
	rec.State = ptr(state)

	label, trim := normalizeDemarneLabel(raw.Label)
	rec.Label = ptr(label)
	rec.TrimCode = ptr(trim)

	// The origin column sometimes holds a stray weight; fall back to the
	// origin named inside the category.
	origin := cleanDemarneOrigin(raw.Origin)
	if origin == "" {
		origin = originFromCat
	}
	rec.Origin = ptr(origin)

	method, methodProdType, slaughter := normalizeCatchMethod(raw.CatchMethod)
	rec.CatchMethod = ptr(method)
	rec.SlaughterTechnique = ptr(slaughter)
	if rec.ProductionType == nil && methodProdType != "" {
		rec.ProductionType = ptr(methodProdType)
	}

	rec.SizeGrade = ptr(NormalizeCalibre(raw.SizeGrade))
	rec.Cut = ptr(combineCutWithPrepStates(cut, extractPrepStates(raw.Product)))
}

func normalizeDemarneCategory(category, variant string) (out, prodType, quality, state, origin, cut string) {
	if category == "" {
		return "", "", "", "", "", ""
	}
	catUpper := extract.NormalizeValue(category)

	switch {
	case strings.Contains(catUpper, "FILET"):
		cut = "FILET"
		if sp := speciesFromFiletCategory(catUpper, variant); sp != "" {
			out = sp
		} else {
			out = catUpper
		}
	default:
		if _, generic := demarneGenericCategories[catUpper]; generic {
			sp, varCut := speciesFromVariant(variant)
			if sp != "" {
				out = sp
				cut = varCut
			} else {
				out = catUpper
			}
		} else {
			out = firstPattern(demarneSpeciesRules, catUpper)
			if out == "" {
				out = catUpper
			}
		}
	}

	prodType = firstPattern(demarneProductionRules, catUpper)
	quality = firstPattern(demarneQualityRules, catUpper)
	state = firstPattern(demarneStateRules, catUpper)
	origin = firstPattern(demarneOriginRules, catUpper)

	if variant != "" && out == "DORADE" {
		if strings.Contains(extract.NormalizeValue(variant), "GRISE") {
			out = "DORADE GRISE"
		}
	}
	return out, prodType, quality, state, origin, cut
}

// speciesFromFiletCategory reads "FILET DE TRUITE" style categories, or for
// generic ones ("FILETS POISSON BLANC") the species named in the variant.
func speciesFromFiletCategory(catUpper, variant string) string {
	if reFiletCatGeneric.MatchString(catUpper) {
		if variant == "" {
			return ""
		}
		varUpper := extract.NormalizeValue(variant)
		if m := reFiletVarSpecies.FindStringSubmatch(varUpper); m != nil {
			return normalizeFiletSpecies(m[1])
		}
		if m := reFiletVarAlt.FindStringSubmatch(varUpper); m != nil {
			return normalizeFiletSpecies(m[1])
		}
		return ""
	}
	if m := reFiletCatSpecies.FindStringSubmatch(catUpper); m != nil {
		return normalizeFiletSpecies(m[1])
	}
	return ""
}

// speciesFromVariant reads "Dos de cabillaud" style variants into species
// and cut, falling back to treating the cleaned variant as a species name.
func speciesFromVariant(variant string) (species, cut string) {
	if variant == "" {
		return "", ""
	}
	varUpper := extract.NormalizeValue(variant)

	for _, r := range variantCutRules {
		if m := r.re.FindStringSubmatch(varUpper); m != nil {
			raw := reSpeciesSuffix.ReplaceAllString(strings.TrimSpace(m[1]), "")
			return normalizeFiletSpecies(raw), r.cut
		}
	}

	raw := reVariantSuffix.ReplaceAllString(varUpper, "")
	species = normalizeFiletSpecies(strings.TrimSpace(raw))
	for _, sp := range filetSpeciesNormalize {
		if species == sp.species {
			return species, ""
		}
	}
	if sp := firstPattern(demarneSpeciesRules, species); sp != "" {
		return sp, ""
	}
	return species, ""
}

func normalizeFiletSpecies(raw string) string {
	s := extract.NormalizeValue(raw)
	for _, sp := range filetSpeciesNormalize {
		if s == sp.spelling {
			return sp.species
		}
	}
	for _, sp := range filetSpeciesNormalize {
		if strings.HasPrefix(s, sp.spelling) {
			return sp.species
		}
	}
	return s
}

func normalizeDemarneVariant(variant string) (cut, state string) {
	if variant == "" {
		return "", ""
	}
	varUpper := extract.NormalizeValue(variant)
	return firstPattern(demarneCutRules, varUpper), firstPattern(demarneStateRules, varUpper)
}

// normalizeDemarneLabel splits the label column into certifications and the
// salmon trim code.
func normalizeDemarneLabel(label string) (out, trim string) {
	if label == "" {
		return "", ""
	}
	labelUpper := extract.NormalizeValue(label)

	var found []string
	for _, l := range demarneLabels {
		if strings.Contains(labelUpper, l) {
			found = append(found, l)
		}
	}
	out = strings.Join(found, ", ")

	if m := reDemarneTrim.FindStringSubmatch(labelUpper); m != nil {
		trim = "TRIM_" + m[1]
	}
	return out, trim
}

func cleanDemarneOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" || reDemarneWeight.MatchString(origin) {
		return ""
	}
	o := extract.NormalizeValue(origin)
	if mapped, ok := demarneOriginMapping[o]; ok {
		return mapped
	}
	return o
}
