package extract

import (
	"regexp"
	"strings"
)

// attrRule is one entry of an ordered attribute table. Tables are scanned
// top to bottom and the first hit wins, so more specific patterns must come
// before the generic ones they shadow (IRLANDE before IRL, ROUGET BARBET
// before ROUGET).
type attrRule struct {
	re    *regexp.Regexp
	value string // canonical value; empty means keep the matched text
}

func rule(pattern, value string) attrRule {
	return attrRule{re: regexp.MustCompile(pattern), value: value}
}

// firstAttr returns the canonical value of the first matching rule.
func firstAttr(rules []attrRule, text string) string {
	for _, r := range rules {
		if m := r.re.FindString(text); m != "" {
			if r.value != "" {
				return r.value
			}
			return m
		}
	}
	return ""
}

// allAttrs collects every matching rule once, in table order. Used for
// origins, where a line can carry several provenance marks.
func allAttrs(rules []attrRule, text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range rules {
		if m := r.re.FindString(text); m != "" {
			v := r.value
			if v == "" {
				v = m
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func joinAttrs(values []string) string {
	return strings.Join(values, ", ")
}

// Size grade patterns shared across the PDF vendors.
var (
	reCalibreRange  = regexp.MustCompile(`(\d+(?:[,.]?\d*)?)\s*/\s*(\d+(?:[,.]?\d*)?(?:kg|gr)?|\+)`)
	reCalibrePlus   = regexp.MustCompile(`(\d+)\s*\+`)
	reCalibreNumero = regexp.MustCompile(`N°\s*(\d+)`)
	reCalibreWeight = regexp.MustCompile(`(?i)\b(\d+)\s*(gr|kg)\b`)
	reCalibreTGrade = regexp.MustCompile(`\bT\s*(\d+)\b(?:\s*\(([^)]*)\))?`)
	reTrimGrade     = regexp.MustCompile(`TRIM\s*([A-E])`)
)

// rangeCalibre matches "400/600", "1,5/2kg" or "300/+" style grades.
func rangeCalibre(text string) string {
	if m := reCalibreRange.FindStringSubmatch(text); m != nil {
		return m[1] + "/" + m[2]
	}
	return ""
}
