package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lacriee/prices-tracker/constants"
)

// Date grammars seen across the vendor documents. Each vendor prints its
// price date differently, so lookup order is tuned per vendor to avoid a
// grammar matching an unrelated number run first.
type dateGrammar int

const (
	grammarSlash      dateGrammar = iota // DD/MM/YYYY
	grammarDot                           // DD.MM.YYYY
	grammarISO                           // YYYY-MM-DD
	grammarFrenchText                    // 12 janvier 2024
)

var (
	reDateSlash  = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	reDateDot    = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	reDateISO    = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reDateFrench = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-zéèêûôîàç]+)\s+(\d{4})`)
)

var monthsFR = map[string]time.Month{
	"janvier": time.January, "fevrier": time.February, "février": time.February,
	"mars": time.March, "avril": time.April, "mai": time.May,
	"juin": time.June, "juillet": time.July, "aout": time.August,
	"août": time.August, "septembre": time.September, "octobre": time.October,
	"novembre": time.November, "decembre": time.December, "décembre": time.December,
}

var vendorGrammarOrder = map[constants.Vendor][]dateGrammar{
	constants.VendorLaurentDaniel: {grammarFrenchText, grammarSlash, grammarDot, grammarISO},
	constants.VendorDemarne:       {grammarSlash, grammarISO, grammarFrenchText, grammarDot},
	constants.VendorVVQM:          {grammarDot, grammarSlash, grammarISO, grammarFrenchText},
	constants.VendorHennequin:     {grammarSlash, grammarISO, grammarFrenchText, grammarDot},
}

var defaultGrammarOrder = []dateGrammar{grammarSlash, grammarFrenchText, grammarDot, grammarISO}

// FindDocumentDate scans free text for the price date using the vendor's
// grammar preference order.
func FindDocumentDate(text string, vendor constants.Vendor) (time.Time, bool) {
	order, ok := vendorGrammarOrder[vendor]
	if !ok {
		order = defaultGrammarOrder
	}
	for _, g := range order {
		if d, ok := matchGrammar(g, text); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func matchGrammar(g dateGrammar, text string) (time.Time, bool) {
	switch g {
	case grammarSlash:
		if m := reDateSlash.FindStringSubmatch(text); m != nil {
			return makeDate(m[3], m[2], m[1])
		}
	case grammarDot:
		if m := reDateDot.FindStringSubmatch(text); m != nil {
			return makeDate(m[3], m[2], m[1])
		}
	case grammarISO:
		if m := reDateISO.FindStringSubmatch(text); m != nil {
			return makeDate(m[1], m[2], m[3])
		}
	case grammarFrenchText:
		for _, m := range reDateFrench.FindAllStringSubmatch(text, -1) {
			month, ok := monthsFR[strings.ToLower(m[2])]
			if !ok {
				continue
			}
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			if d, ok := validDate(year, month, day); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

func makeDate(y, m, d string) (time.Time, bool) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	return validDate(year, time.Month(month), day)
}

func validDate(year int, month time.Month, day int) (time.Time, bool) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// ParseFallbackDate parses an operator-supplied date string.
func ParseFallbackDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02.01.2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, want YYYY-MM-DD or DD/MM/YYYY: %w", s, ErrNoDate)
}
