package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks so that VIDÉ and VIDE compare equal.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeValue upper-cases, trims and strips accents for pattern matching.
func NormalizeValue(s string) string {
	return StripAccents(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeCode lowers a product name into a stable code fragment: accents
// stripped, every non-alphanumeric run collapsed to a single underscore.
func NormalizeCode(s string) string {
	s = strings.ToLower(StripAccents(s))
	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// infoTrail accumulates the "Label:value" audit trail kept on each record.
type infoTrail struct {
	parts []string
}

func (t *infoTrail) add(label, value string) {
	if value == "" {
		return
	}
	t.parts = append(t.parts, label+":"+value)
}

func (t *infoTrail) String() string {
	return strings.Join(t.parts, " | ")
}
