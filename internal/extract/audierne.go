package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/layout"
	"github.com/lacriee/prices-tracker/internal/renderer"
)

// Audierne publishes a two column price list. Section titles are printed in
// a larger font and apply to every product below them, in reading order left
// column then right column, carrying over across pages. A product line is
// "NAME ....... 12,34"; attribute continuations ("TRIM C", "PREMIUM") follow
// on their own small font line and belong to the product above.
type audierneExtractor struct {
	geo *layout.Geometry
}

func NewAudierneExtractor() (Extractor, error) {
	geo, err := layout.ForVendor(constants.VendorAudierne)
	if err != nil {
		return nil, err
	}
	return &audierneExtractor{geo: geo}, nil
}

func (e *audierneExtractor) Vendor() constants.Vendor { return constants.VendorAudierne }

var audierneGenericCategories = map[string]struct{}{
	"DIVERS": {}, "DIVERS POISSONS": {}, "COQUILLAGES": {}, "CRUSTACES": {},
	"CRUSTACES CUITS PAST": {}, "POISSONS BLEUS": {}, "FILET DE POISSONS": {},
	"SAUMONS": {},
}

var (
	reAudDottedPrice = regexp.MustCompile(`^(.+?)\.{2,}\s*(\d{1,3},\d{2})\s*$`)
	reAudPlainPrice  = regexp.MustCompile(`^(.+?)\s+(\d{1,3},\d{2})\s*$`)
	reAudDigitsOnly  = regexp.MustCompile(`^[\d\s/,\.]+$`)
	reAudTrailPrice  = regexp.MustCompile(`\d+,\d{2}\s*$`)
)

// Page furniture skipped outright: letterhead, greetings, contact lines.
var audiernePageNoise = []string{
	"viviers", "audierne", "cours du", "page ", "bonjour", "voici nos",
	"poissons / crustaces", "demande de pi", "opportunit", "bonne journ",
	"@", "rue mole", "+33", ".fr",
}

// Lines that start like these are never section titles even when uppercase.
var audierneHeaderPrefixes = []string{
	"bonjour", "cours du", "page ", "opportunit", "bonne journ",
	"viviers", "audierne", "poissons / crustaces", "demande de",
}

// Isolated attribute words printed on their own line under a product.
var audierneContinuationWords = map[string]struct{}{
	"PREMIUM": {}, "PASTEURISE": {}, "BLANCHE": {}, "NOIRE": {}, "PB": {},
	"LIGNE": {}, "PELÉE": {}, "PELEE": {}, "NP": {}, "VAT": {}, "VDK": {},
	"VIDE": {}, "TRIM": {}, "ECOS": {}, "IRL": {}, "NORVEGE": {}, "ECOSSE": {},
	"FRANCE": {}, "AP": {}, "TRIM C": {}, "TRIM D": {}, "TRIM E": {},
	"SUP": {}, "EXTRA": {}, "BIO": {},
}

var audierneKnownSections = map[string]struct{}{
	"LANGOUSTE": {}, "HOMARD": {}, "TOURTEAUX": {}, "ARAIGNEES": {},
	"TOURTEAUX - ARAIGNEES": {}, "CRUSTACES CUITS PAST": {}, "TURBOT": {},
	"BARBUE": {}, "SOLE": {}, "LOTTE": {}, "MERLU": {}, "POULPE": {},
	"ENCORNET": {}, "BAR": {}, "LIEU JAUNE": {}, "SAINT PIERRE": {},
	"ROUGET BARBET": {}, "GRONDIN": {}, "VIEILLE": {}, "CONGRE": {},
	"DORADE": {}, "DORADE GRISE": {}, "CABILLAUD": {}, "PAGEOT": {},
	"MERLAN": {}, "PAGRE": {}, "TACAUD": {}, "RAIE": {}, "THON": {},
	"POISSONS BLEUS": {}, "DIVERS POISSONS": {}, "FILET DE POISSONS": {},
	"SAUMONS": {}, "FILET SAUMON": {}, "COQUILLAGES": {},
}

var audierneCalibreHints = []*regexp.Regexp{
	regexp.MustCompile(`\d+/\d+`),
	regexp.MustCompile(`(?i)\d+\s*gr`),
	regexp.MustCompile(`(?i)\d+\s*kg`),
	regexp.MustCompile(`\bT\d+`),
	regexp.MustCompile(`\d+\.\d+`),
	regexp.MustCompile(`N°\d+`),
}

func (e *audierneExtractor) Extract(ctx context.Context, doc renderer.Document, opts Options) ([]RawRecord, error) {
	var records []RawRecord
	var docDate time.Time
	dateFound := false
	fold := layout.CategoryFold{}

	for _, page := range doc.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !dateFound {
			docDate, dateFound = FindDocumentDate(pageText(page), constants.VendorAudierne)
		}
		left, right := layout.SplitAtRatio(page.Tokens, page.Width, e.geo.ColumnSplitRatio)
		for _, colTokens := range [][]renderer.Token{left, right} {
			lines := mergeRows(layout.ClusterRows(colTokens, e.geo.YTolerance))
			records = append(records, e.scanColumn(lines, &fold)...)
		}
	}

	date, err := resolveDate(docDate, dateFound, opts)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Date = date
		records[i].KeyDate = keyDate(records[i].ProviderCode, date)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

// scanColumn walks one column top to bottom. A priced line is held pending
// until the next line is known, because attribute continuations extend the
// name after the price was already read.
func (e *audierneExtractor) scanColumn(lines []layout.Line, fold *layout.CategoryFold) []RawRecord {
	var out []RawRecord
	pendingName := ""
	var pendingPrice float64

	flush := func() {
		if pendingName != "" {
			out = append(out, e.buildRecord(pendingName, pendingPrice, fold.Current()))
			pendingName = ""
		}
	}

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" || isAudiernePageNoise(text) {
			continue
		}

		if line.FontSize >= e.geo.SectionFontMin && isAudierneSection(text) {
			flush()
			fold.Set(text)
			continue
		}

		name, price, ok := audierneProductPrice(text)
		if ok {
			flush()
			pendingName = name
			pendingPrice = price
		} else if line.FontSize < e.geo.SectionFontMin && pendingName != "" {
			pendingName += " " + text
		}
	}
	flush()
	return out
}

func (e *audierneExtractor) buildRecord(name string, price float64, section string) RawRecord {
	code := "AUD_" + NormalizeCode(name)
	p := price
	rec := RawRecord{
		Vendor:       constants.VendorAudierne,
		ProviderCode: code,
		Product:      name,
		Price:        &p,
		Category:     RefineGenericCategory(section, name, audierneGenericCategories),
	}
	parseAudierneAttributes(&rec)
	return rec
}

func isAudiernePageNoise(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range audiernePageNoise {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isAudierneSection(text string) bool {
	if reAudTrailPrice.MatchString(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range audierneHeaderPrefixes {
		if strings.HasPrefix(lower, w) {
			return false
		}
	}
	if len(text) <= 2 || text != strings.ToUpper(text) {
		return false
	}
	if strings.Contains(text, "..") {
		return false
	}
	if _, ok := audierneContinuationWords[text]; ok {
		return false
	}
	for _, re := range audierneCalibreHints {
		if re.MatchString(text) {
			return false
		}
	}
	if _, ok := audierneKnownSections[text]; ok {
		return true
	}
	return len(strings.Fields(text)) <= 4
}

func audierneProductPrice(text string) (string, float64, bool) {
	if m := reAudDottedPrice.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), parseCommaFloat(m[2]), true
	}
	if m := reAudPlainPrice.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if !reAudDigitsOnly.MatchString(name) {
			return name, parseCommaFloat(m[2]), true
		}
	}
	return "", 0, false
}

func parseCommaFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return f
}

var (
	audierneMethodRules = []attrRule{
		rule(`\bLIGNE\b`, "LIGNE"),
		rule(`\bCHALUT\b`, "CHALUT"),
		rule(`\bPB\b`, "PB"),
	}
	audierneQualityRules = []attrRule{
		rule(`\bPREMIUM\b`, "PREMIUM"),
		rule(`\bSUP\b`, "SUP"),
		rule(`\bEXTRA\b`, "EXTRA"),
		rule(`\bBIO\b`, "BIO"),
	}
	audierneCutRules = []attrRule{
		rule(`\bFILET\b`, "FILET"),
		rule(`\bDOS\b`, "DOS"),
		rule(`\bDARNE\b`, "DARNE"),
		rule(`\bPAVE\b`, "PAVE"),
		rule(`\bCOEUR\b`, "COEUR"),
		rule(`\bQUEUE\b`, "QUEUE"),
		rule(`\bAILE\b`, "AILE"),
		rule(`\bCHAIR\b`, "CHAIR"),
	}
	audierneStateRules = []attrRule{
		rule(`\bDECONGELE[ES]?\b`, "DECONGELE"),
		rule(`\bPASTEURISE[ES]?\b`, "PASTEURISE"),
		rule(`\bVIVANT[ES]?\b`, "VIVANT"),
		rule(`\bCUIT[ES]?\b`, "CUIT"),
		rule(`\bSPECIALES?\b`, "SPECIALES"),
	}
	audierneOriginRules = []attrRule{
		rule(`\bVDK\b`, "DANEMARK"),
		rule(`\bVAT\b`, "ATLANTIQUE"),
		rule(`\bECOS(?:SE)?\b`, "ECOSSE"),
		rule(`\bNORVEGE\b`, "NORVEGE"),
		rule(`\bIRLANDE\b`, "IRLANDE"),
		rule(`\bIRL\b`, "IRLANDE"),
		rule(`\bFRANCE\b`, "FRANCE"),
		rule(`\bCANCALE\b`, "CANCALE"),
		rule(`\bVDA\b`, "AUDIERNE"),
		rule(`\bAQ\b`, "AQUACULTURE"),
	}
)

func parseAudierneAttributes(rec *RawRecord) {
	text := strings.ToUpper(rec.Product)
	var trail infoTrail

	rec.CatchMethod = firstAttr(audierneMethodRules, text)
	trail.add("Méthode", rec.CatchMethod)
	rec.Quality = firstAttr(audierneQualityRules, text)
	trail.add("Qualité", rec.Quality)
	rec.Cut = firstAttr(audierneCutRules, text)
	trail.add("Découpe", rec.Cut)
	rec.State = firstAttr(audierneStateRules, text)
	trail.add("État", rec.State)

	origins := allAttrs(audierneOriginRules, text)
	for _, o := range origins {
		trail.add("Origine", o)
	}
	rec.Origin = joinAttrs(origins)

	if m := reTrimGrade.FindStringSubmatch(text); m != nil {
		rec.Trim = "TRIM " + m[1]
		trail.add("Trim", rec.Trim)
	}

	rec.SizeGrade = audierneCalibre(text)
	trail.add("Calibre", rec.SizeGrade)

	rec.RawInfo = trail.String()
}

// audierneCalibre tries the grade notations in order of specificity: tank
// sizes (T2, with optional weight range), numeric ranges, oyster numbers,
// then plain weights.
func audierneCalibre(text string) string {
	if m := reCalibreTGrade.FindStringSubmatch(text); m != nil {
		grade := "T" + m[1]
		if m[2] != "" {
			grade += " (" + m[2] + ")"
		}
		return grade
	}
	if g := rangeCalibre(text); g != "" {
		return g
	}
	if m := reCalibreNumero.FindStringSubmatch(text); m != nil {
		return "N°" + m[1]
	}
	if m := reCalibreWeight.FindStringSubmatch(text); m != nil {
		return m[1] + strings.ToLower(m[2])
	}
	return ""
}

func pageText(page renderer.Page) string {
	var b strings.Builder
	for _, t := range page.Tokens {
		b.WriteString(t.Text)
		b.WriteByte(' ')
	}
	return b.String()
}

func mergeRows(rows []layout.Row) []layout.Line {
	lines := make([]layout.Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r.Merge())
	}
	return lines
}
