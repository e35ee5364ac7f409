package harmonize

import "regexp"

// Vocabulary mappings from vendor spellings to the canonical taxonomy.
// Keys are compared after upper-casing and accent stripping.

var categoryMapping = map[string]string{
	"PLIE/ CARRELET":       "CARRELET",
	"PLIE/CARRELET":        "CARRELET",
	"CRUSTACES BRETONS":    "CRUSTACES",
	"CRUSTACES CUITS PAST": "CRUSTACES",
	"TOURTEAUX":            "TOURTEAU",
	"ARAIGNEES":            "ARAIGNEE",
	"HOMARDS":              "HOMARD",
	"LANGOUSTINES":         "LANGOUSTINE",
	"LANGOUSTES":           "LANGOUSTE",
	"HUITRES":              "HUITRE",
	"BULOTS":               "BULOT",
	"BIGORNEAUX":           "BIGORNEAU",
	"PALOURDES":            "PALOURDE",
	"OURSINS":              "OURSIN",
	"ST PIERRE":            "SAINT PIERRE",
	"SAUMONS":              "SAUMON",
	"LIEU":                 "LIEU JAUNE",
	"LIMANDE SOLE":         "LIMANDE",
	"DIVERS POISSONS":      "DIVERS",
}

var catchMethodMapping = map[string]string{
	"PT BATEAU":    "PB",
	"PETIT BATEAU": "PB",
}

var qualityMapping = map[string]string{
	"QUALITE PREMIUM": "PREMIUM",
}

var stateMapping = map[string]string{
	"VIDEE":      "VIDE",
	"PELEE":      "PELE",
	"CORAILLEES": "CORAILLE",
	"CORAIL":     "CORAILLE",
	"DESARETEE":  "DESARETE",
	"ENTIERE":    "ENTIER",
}

// States that are really shell colors, moved to the color field.
var stateColors = map[string]struct{}{
	"ROUGE": {}, "BLANCHE": {}, "NOIRE": {},
}

var originMapping = map[string]string{
	"BRETON": "BRETAGNE",
	"VAT":    "ATLANTIQUE",
	"VDK":    "DANEMARK",
	"AQ":     "AQUACULTURE",
	"ECOS":   "ECOSSE",
	"IRL":    "IRLANDE",
	"VDA":    "AUDIERNE",
}

// Origins that actually describe how the fish was produced.
var originProductionType = map[string]string{
	"AQUACULTURE": "ELEVAGE",
	"AQ":          "ELEVAGE",
}

var conservationMapping = map[string]string{
	"CONGELEE": "CONGELE",
	"SURGELEE": "SURGELE",
}

var trimMapping = map[string]string{
	"TRIM B": "TRIM_B",
	"TRIM C": "TRIM_C",
	"TRIM D": "TRIM_D",
	"TRIM E": "TRIM_E",
}

var (
	reCalibreDecimal   = regexp.MustCompile(`(\d),(\d)`)
	reCalibreSlashPlus = regexp.MustCompile(`(\d+)/\+`)
	reCalibreLeadPlus  = regexp.MustCompile(`^\+(\d+)$`)
	reDecoupeKeyword   = regexp.MustCompile(`\bD[EÉ]COUPE\b`)
)
