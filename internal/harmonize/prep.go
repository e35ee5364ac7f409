package harmonize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lacriee/prices-tracker/internal/extract"
)

// Preparation states read from product names. Names are accent stripped
// before matching, the patterns are plain ASCII. Compound forms first so
// NON VIDÉ is not misread as VIDÉ. Matches keep their position so the
// combined value lists states in the order the vendor wrote them.
var prepStatePatterns = []struct {
	re    *regexp.Regexp
	value string
}{
	{regexp.MustCompile(`\bNON\s+VIDEE?S?\b`), "Non vidé"},
	{regexp.MustCompile(`\bENTIERE?S?\b`), "Entier"},
	{regexp.MustCompile(`\bVIDEE?S?\b`), "Vidé"},
	{regexp.MustCompile(`\bGRATTEE?S?\b`), "Gratté"},
	{regexp.MustCompile(`\bETETEE?S?\b`), "Étêté"},
	{regexp.MustCompile(`\bECAILLEE?S?\b`), "Écaillé"},
	{regexp.MustCompile(`\bPAREE?S?\b`), "Paré"},
	{regexp.MustCompile(`\bEVISCEREE?S?\b`), "Éviscéré"},
}

// extractPrepStates returns the preparation states named in a product name,
// earliest first, overlapping and duplicate matches dropped.
func extractPrepStates(productName string) []string {
	if productName == "" {
		return nil
	}
	upper := extract.NormalizeValue(productName)

	type match struct {
		start, end int
		value      string
	}
	var matches []match
	for _, p := range prepStatePatterns {
		for _, loc := range p.re.FindAllStringIndex(upper, -1) {
			matches = append(matches, match{start: loc[0], end: loc[1], value: p.value})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var states []string
	seen := make(map[string]struct{})
	var covered []match
	for _, m := range matches {
		overlaps := false
		for _, c := range covered {
			if m.start < c.end && m.end > c.start {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		if _, dup := seen[m.value]; dup {
			continue
		}
		states = append(states, m.value)
		seen[m.value] = struct{}{}
		covered = append(covered, m)
	}
	return states
}

// combineCutWithPrepStates joins the physical cut and the preparation
// states into one field, "FILET, Vidé, Gratté" style, deduplicated case
// insensitively.
func combineCutWithPrepStates(cut string, prepStates []string) string {
	var parts []string
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		parts = append(parts, s)
	}
	add(cut)
	for _, s := range prepStates {
		add(s)
	}
	return strings.Join(parts, ", ")
}
