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

// Laurent-Daniel uses a three column board. Within a column the price and
// the quality note sit at fixed fractions of the page width, calibrated per
// column in the layout config; whatever falls left of the price band is the
// product name. Category headers are indented rows of uppercase words.
type laurentDanielExtractor struct {
	geo *layout.Geometry
}

func NewLaurentDanielExtractor() (Extractor, error) {
	geo, err := layout.ForVendor(constants.VendorLaurentDaniel)
	if err != nil {
		return nil, err
	}
	return &laurentDanielExtractor{geo: geo}, nil
}

func (e *laurentDanielExtractor) Vendor() constants.Vendor { return constants.VendorLaurentDaniel }

var reLDNumeric = regexp.MustCompile(`\d+[,.\-]?\d*|^-$`)

// Product name prefixes that override the column's running category header.
var ldCategoryRules = []struct{ prefix, category string }{
	{"lieu jaune", "lieu"},
	{"cabillaud", "cabillaud"},
	{"anon", "anon"},
	{"carrelet", "carrelet"},
	{"sardine", "sardine"},
	{"maquereaux", "maquereaux"},
	{"merou", "merou"},
	{"merlan", "merlan"},
	{"maigre", "maigre"},
	{"saumon", "saumon"},
	{"st pierre", "SAINT PIERRE"},
}

func (e *laurentDanielExtractor) Extract(ctx context.Context, doc renderer.Document, opts Options) ([]RawRecord, error) {
	pages := doc.Pages()

	var docDate time.Time
	dateFound := false
	for _, page := range pages {
		if !dateFound {
			docDate, dateFound = FindDocumentDate(pageText(page), constants.VendorLaurentDaniel)
		}
	}
	date, err := resolveDate(docDate, dateFound, opts)
	if err != nil {
		return nil, err
	}

	// Board area only, the EURO/KG unit header is noise.
	var tokens []renderer.Token
	maxX := 600.0
	for _, page := range pages {
		for _, t := range page.Tokens {
			text := strings.TrimSpace(t.Text)
			if text == "" || t.Y < e.geo.MinY || strings.EqualFold(text, "EURO/KG") {
				continue
			}
			tokens = append(tokens, t)
		}
	}
	if len(tokens) > 0 {
		maxX = 0
		for _, t := range tokens {
			if t.X > maxX {
				maxX = t.X
			}
		}
	}

	var records []RawRecord
	var fold layout.CategoryFold
	for colIdx, colTokens := range layout.SplitBands(tokens, e.geo.Columns) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// A running header never carries into the next column.
		fold.Reset()
		for _, row := range layout.ClusterRows(colTokens, e.geo.YTolerance) {
			if rec, ok := e.scanRow(row, colIdx, maxX, &fold, date); ok {
				records = append(records, rec)
			}
		}
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

func (e *laurentDanielExtractor) scanRow(row layout.Row, colIdx int, maxX float64, fold *layout.CategoryFold, date time.Time) (RawRecord, bool) {
	pct := func(x float64) float64 {
		if maxX <= 0 {
			return 0
		}
		return 100 * x / maxX
	}

	if e.isCategoryRow(row, colIdx, pct) {
		var words []string
		for _, t := range row.Tokens {
			if t.Text != "-" {
				words = append(words, t.Text)
			}
		}
		if len(words) > 0 {
			fold.Set(strings.Trim(strings.Join(words, " "), "- "))
		}
		return RawRecord{}, false
	}

	var productWords []string
	priceText := ""
	quality := ""
	for _, t := range row.Tokens {
		switch {
		case pct(t.X) >= e.geo.QualityMinPct[colIdx]:
			quality = t.Text
		case e.geo.PricePct[colIdx].Contains(pct(t.X)):
			// Non-numeric words in the price band are quality notes
			// that drifted left.
			if reLDNumeric.MatchString(t.Text) {
				priceText = t.Text
			} else {
				quality = t.Text
			}
		default:
			productWords = append(productWords, t.Text)
		}
	}
	product := strings.Join(productWords, " ")
	if product == "" {
		return RawRecord{}, false
	}
	return buildLDRecord(product, quality, priceText, fold.Current(), date), true
}

func (e *laurentDanielExtractor) isCategoryRow(row layout.Row, colIdx int, pct func(float64) float64) bool {
	minPct := e.geo.CategoryMinPct[colIdx]
	if minPct < 0 {
		for _, t := range row.Tokens {
			if t.Text != strings.ToUpper(t.Text) {
				return false
			}
		}
		return true
	}
	rowMin := pct(row.Tokens[0].X)
	for _, t := range row.Tokens {
		if p := pct(t.X); p < rowMin {
			rowMin = p
		}
	}
	return rowMin >= minPct
}

func buildLDRecord(product, quality, priceText, category string, date time.Time) RawRecord {
	lower := strings.ToLower(product)
	for _, r := range ldCategoryRules {
		if strings.HasPrefix(lower, r.prefix) {
			category = r.category
			break
		}
	}
	category = strings.ToUpper(category)

	name := strings.TrimSpace(product + " " + quality)
	code := "LD_" + strings.ReplaceAll(product, " ", "") + "_" + quality
	rec := RawRecord{
		Vendor:       constants.VendorLaurentDaniel,
		KeyDate:      keyDate(code, date),
		ProviderCode: code,
		Date:         date,
		Product:      name,
		Category:     category,
	}
	priceText = strings.ReplaceAll(strings.TrimSpace(priceText), ",", ".")
	if priceText != "" && priceText != "-" {
		if f, err := strconv.ParseFloat(priceText, 64); err == nil {
			rec.Price = &f
		}
	}
	parseLDAttributes(&rec)
	return rec
}

var (
	ldMethodRules = []attrRule{
		rule(`\bLIGNE\b`, "LIGNE"),
		rule(`\bPB\b`, "PB"),
		rule(`\bDK\b`, "DK"),
		rule(`\bCHALUT\b`, "CHALUT"),
		rule(`\bPLONGEE\b`, "PLONGEE"),
	}
	ldQualityRules = []attrRule{
		rule(`\bEXTRA\b`, "EXTRA"),
		rule(`\bSUP\b`, "SUP"),
		rule(`\bXX\b`, "XX"),
		rule(`\bSF\b`, "SF"),
		rule(`\bPREMIUM\b`, "PREMIUM"),
	}
	ldCutRules = []attrRule{
		rule(`\bFILET\b`, "FILET"),
		rule(`\bQUEUE\b`, "QUEUE"),
		rule(`\bDOS\b`, "DOS"),
		rule(`\bDARNE\b`, "DARNE"),
		rule(`\bPAVE\b`, "PAVE"),
		rule(`\bAILE\b`, "AILE"),
		rule(`\bCHAIR\b`, "CHAIR"),
		rule(`\bBLANC\b`, "BLANC"),
	}
	ldStateRules = []attrRule{
		rule(`\bPELEE?\b`, "PELEE"),
		rule(`\bGLACE\b`, "GLACE"),
		rule(`\bVIVANT[ES]?\b`, "VIVANT"),
		rule(`\bROUGE\b`, "ROUGE"),
		rule(`\bBLANCHE\b`, "BLANCHE"),
		rule(`\bNOIRE?\b`, "NOIRE"),
		rule(`\bCUIT[ES]?\b`, "CUIT"),
		rule(`\bVIDEE?\b`, "VIDEE"),
	}
	ldOriginRules = []attrRule{
		rule(`\bROSCOFF\b`, "ROSCOFF"),
		rule(`\bBRETON\b`, "BRETON"),
		rule(`\bECOSSE\b`, "ECOSSE"),
		rule(`\bGLENAN\b`, "GLENAN"),
		rule(`\bFRANCE\b`, "FRANCE"),
		rule(`\bIRLANDE\b`, "IRLANDE"),
		rule(`\bNORVEGE\b`, "NORVEGE"),
	}
	reLDRange = regexp.MustCompile(`\b(\d+(?:[,.]?\d*)?)\s*/\s*(\d+(?:[,.]?\d*)?|\+)`)
	reLDPlus  = regexp.MustCompile(`\b(\d+)\+`)
)

func parseLDAttributes(rec *RawRecord) {
	text := strings.ToUpper(rec.Product)
	var trail infoTrail

	rec.CatchMethod = firstAttr(ldMethodRules, text)
	trail.add("Méthode", rec.CatchMethod)
	rec.Quality = firstAttr(ldQualityRules, text)
	trail.add("Qualité", rec.Quality)
	rec.Cut = firstAttr(ldCutRules, text)
	trail.add("Découpe", rec.Cut)
	rec.State = firstAttr(ldStateRules, text)
	trail.add("État", rec.State)

	origins := allAttrs(ldOriginRules, text)
	for _, o := range origins {
		trail.add("Origine", o)
	}
	rec.Origin = joinAttrs(origins)

	rec.SizeGrade = ldCalibre(text)
	trail.add("Calibre", rec.SizeGrade)

	rec.RawInfo = trail.String()
}

func ldCalibre(text string) string {
	if m := reLDRange.FindStringSubmatch(text); m != nil {
		return m[1] + "/" + m[2]
	}
	if m := reLDPlus.FindStringSubmatch(text); m != nil {
		return m[1] + "+"
	}
	if m := reCalibreWeight.FindStringSubmatch(text); m != nil {
		return m[1] + strings.ToLower(m[2])
	}
	return ""
}
