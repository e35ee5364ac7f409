package extract

import "regexp"

// Species patterns ordered most specific first, so ROUGET BARBET wins over
// ROUGET and LIEU JAUNE over a bare LIEU elsewhere in the name.
var speciesRules = []attrRule{
	rule(`\bROUGET\s*BARBET\b`, "ROUGET BARBET"),
	rule(`\bROUGET\b`, "ROUGET"),
	rule(`\bSAINT\s*PIERRE\b`, "SAINT PIERRE"),
	rule(`\bST\s*PIERRE\b`, "SAINT PIERRE"),
	rule(`\bLIEU\s*JAUNE\b`, "LIEU JAUNE"),
	rule(`\bLIEU\s*NOIR\b`, "LIEU NOIR"),
	rule(`\bDORADE\s*PAGRE\b`, "DORADE PAGRE"),
	rule(`\bCOQUILLE\s*ST\s*JACQUES\b`, "COQUILLE ST JACQUES"),
	rule(`\bNOIX\s*ST\s*JACQUES\b`, "NOIX ST JACQUES"),
	rule(`\bBAR\b`, "BAR"),
	rule(`\bBARBUE\b`, "BARBUE"),
	rule(`\bTURBOT\b`, "TURBOT"),
	rule(`\bSOLE\b`, "SOLE"),
	rule(`\bPAGEOT\b`, "PAGEOT"),
	rule(`\bCABILLAUD\b`, "CABILLAUD"),
	rule(`\bMERLU\b`, "MERLU"),
	rule(`\bMERLAN\b`, "MERLAN"),
	rule(`\bLOTTE\b`, "LOTTE"),
	rule(`\bDORADE\s+GRISE\b`, "DORADE GRISE"),
	rule(`\bDORADE\b`, "DORADE"),
	rule(`\bRAIE\b`, "RAIE"),
	rule(`\bSAUMON\b`, "SAUMON"),
	rule(`\bTHON\b`, "THON"),
	rule(`\bMAIGRE\b`, "MAIGRE"),
	rule(`\bCONGRE\b`, "CONGRE"),
	rule(`\bGRONDIN\b`, "GRONDIN"),
	rule(`\bPAGRE\b`, "PAGRE"),
	rule(`\bENCORNET\b`, "ENCORNET"),
	rule(`\bPOULPE\b`, "POULPE"),
	rule(`\bSEICHE\b`, "SEICHE"),
	rule(`\bTOURTEAUX?\b`, "TOURTEAU"),
	rule(`\bARAIGNEES?\b`, "ARAIGNEE"),
	rule(`\bCRABES?\b`, "CRABE"),
	rule(`\bHOMARD\b`, "HOMARD"),
	rule(`\bLANGOUSTE\b`, "LANGOUSTE"),
	rule(`\bLANGOUSTINE\b`, "LANGOUSTINE"),
	rule(`\bCREVETTE\b`, "CREVETTES"),
	rule(`\bLIMANDE\b`, "LIMANDE"),
	rule(`\bCARRELET\b`, "CARRELET"),
	rule(`\bESPADON\b`, "ESPADON"),
	rule(`\bMOSTELLE\b`, "MOSTELLE"),
	rule(`\bJULIENNE\b`, "JULIENNE"),
	rule(`\bGRENADIER\b`, "GRENADIER"),
	rule(`\bELINGUE\b`, "ELINGUE"),
	rule(`\bSABRE\b`, "SABRE"),
	rule(`\bBROSME\b`, "BROSME"),
	rule(`\bTACAUD\b`, "TACAUD"),
	rule(`\bLINGUE\b`, "LINGUE"),
	rule(`\bMORUETTE\b`, "MORUETTE"),
	rule(`\bANON\b`, "ANON"),
}

// ExtractSpecies returns the species named in a product name, or "".
func ExtractSpecies(productName string) string {
	if productName == "" {
		return ""
	}
	return firstAttr(speciesRules, NormalizeValue(productName))
}

// FindSpecies reports the species and the byte offset of its first match.
func FindSpecies(text string) (species string, pos int, found bool) {
	for _, r := range speciesRules {
		if loc := r.re.FindStringIndex(text); loc != nil {
			return r.value, loc[0], true
		}
	}
	return "", -1, false
}

// Derived products name a species without being one; a soupe de poisson
// stays in its generic section.
var reSpeciesDisqualifier = regexp.MustCompile(`\b(SOUPE|PATES?|RILLETTES?|TERRINE|BEURRE|SAUCE|TARAMA)\b`)

// RefineGenericCategory replaces a vendor's catch-all section (DIVERS,
// COQUILLAGES, FILETS and the like) with the species read from the product
// name. Specific sections pass through unchanged.
func RefineGenericCategory(category, productName string, generic map[string]struct{}) string {
	if category != "" {
		if _, ok := generic[NormalizeValue(category)]; !ok {
			return category
		}
	}
	if reSpeciesDisqualifier.MatchString(NormalizeValue(productName)) {
		return category
	}
	if sp := ExtractSpecies(productName); sp != "" {
		return sp
	}
	return category
}
