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

// Hennequin lays out two columns with a fixed x position per field: category
// names sit leftmost, product names indented under them, quality and size
// notes indented further, and the price flush right. The classifier is the
// role band table in the layout config; lines outside every band are page
// furniture and dropped.
type hennequinExtractor struct {
	geo *layout.Geometry
}

func NewHennequinExtractor() (Extractor, error) {
	geo, err := layout.ForVendor(constants.VendorHennequin)
	if err != nil {
		return nil, err
	}
	return &hennequinExtractor{geo: geo}, nil
}

func (e *hennequinExtractor) Vendor() constants.Vendor { return constants.VendorHennequin }

var hennequinGenericCategories = map[string]struct{}{
	`COUPE "FAIT MAISON"`: {}, "COUPE FAIT MAISON": {}, `COUPE " FAIT MAISON "`: {},
	"CUISSON": {}, "VIVIERS": {}, "COQUILLAGES": {},
}

// Some category headers name the catch method or a sub-variety rather than
// the species alone.
var hennequinCategoryAliases = map[string]string{
	"BAR PETIT BATEAU": "BAR",
	"BAR LIGNE":        "BAR",
	"DORADE ROYALE":    "DORADE",
	"DORADE SAR":       "DORADE",
	"DORADE GRISE":     "DORADE GRISE",
}

type hennequinLine struct {
	role    string
	text    string
	quality string
}

func (e *hennequinExtractor) Extract(ctx context.Context, doc renderer.Document, opts Options) ([]RawRecord, error) {
	var classified []hennequinLine
	var docDate time.Time
	dateFound := false

	for _, page := range doc.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		left, right := layout.SplitAtRatio(page.Tokens, page.Width, e.geo.ColumnSplitRatio)
		for _, colTokens := range [][]renderer.Token{left, right} {
			for _, row := range layout.ClusterRows(colTokens, e.geo.YTolerance) {
				if row.Y > e.geo.FooterMinY {
					continue
				}
				if row.Y < e.geo.HeaderMaxY {
					if !dateFound && e.geo.DateBand != nil && e.geo.DateBand.Contains(row.Y) {
						docDate, dateFound = FindDocumentDate(row.Merge().Text, constants.VendorHennequin)
					}
					continue
				}
				classified = append(classified, e.classifyRow(row)...)
			}
		}
	}

	date, err := resolveDate(docDate, dateFound, opts)
	if err != nil {
		return nil, err
	}

	records := e.assemble(attachHennequinQualities(classified), date)
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

// classifyRow splits one visual row into role-tagged fragments. A token
// opens a fragment when its x sits in a role band; tokens between bands are
// continuation words of the fragment to their left. Product and price share
// a row, so a row commonly yields two fragments.
func (e *hennequinExtractor) classifyRow(row layout.Row) []hennequinLine {
	var out []hennequinLine
	for _, t := range row.Tokens {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		if role := e.geo.RoleFor(t.X); role != "" {
			out = append(out, hennequinLine{role: role, text: text})
			continue
		}
		if len(out) > 0 {
			out[len(out)-1].text += " " + text
		}
	}
	return out
}

// attachHennequinQualities folds each quality line into the product line
// above it, then merges runs of consecutive product lines, which happen when
// a long name wraps.
func attachHennequinQualities(lines []hennequinLine) []hennequinLine {
	lastProduct := -1
	for i := range lines {
		switch lines[i].role {
		case "product":
			lastProduct = i
		case "quality":
			if lastProduct >= 0 {
				if lines[lastProduct].quality != "" {
					lines[lastProduct].quality += " / " + lines[i].text
				} else {
					lines[lastProduct].quality = lines[i].text
				}
			}
		}
	}

	var merged []hennequinLine
	for i := 0; i < len(lines); i++ {
		if lines[i].role == "quality" {
			continue
		}
		if lines[i].role != "product" {
			merged = append(merged, lines[i])
			continue
		}
		cur := lines[i]
		for i+1 < len(lines) && lines[i+1].role == "product" {
			i++
			cur.text += " " + lines[i].text
			if lines[i].quality != "" {
				if cur.quality != "" {
					cur.quality += " " + lines[i].quality
				} else {
					cur.quality = lines[i].quality
				}
			}
		}
		merged = append(merged, cur)
	}
	return merged
}

var reTrailingDots = regexp.MustCompile(`\.*$`)

func (e *hennequinExtractor) assemble(lines []hennequinLine, date time.Time) []RawRecord {
	var records []RawRecord
	category := ""
	var pendingProduct, pendingQuality string
	havePending := false

	for _, line := range lines {
		switch line.role {
		case "category":
			category = line.text
			havePending = false
		case "product":
			pendingProduct = line.text
			pendingQuality = line.quality
			havePending = true
		case "price":
			if !havePending {
				continue
			}
			records = append(records, buildHennequinRecord(pendingProduct, pendingQuality, category, line.text, date))
			havePending = false
		}
	}
	return records
}

func buildHennequinRecord(product, quality, category, priceText string, date time.Time) RawRecord {
	name := strings.TrimSpace(reTrailingDots.ReplaceAllString(product, ""))
	if quality != "" {
		name = strings.TrimSpace(name + " " + quality)
	}

	headerText := strings.TrimSpace(category)
	if mapped, ok := hennequinCategoryAliases[headerText]; ok {
		category = mapped
	}
	category = RefineGenericCategory(category, name, hennequinGenericCategories)

	code := "HNQ_" + strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	rec := RawRecord{
		Vendor:       constants.VendorHennequin,
		KeyDate:      keyDate(code, date),
		ProviderCode: code,
		Date:         date,
		Product:      name,
		Category:     category,
	}
	priceText = strings.ReplaceAll(strings.ReplaceAll(priceText, ",", "."), " ", "")
	if f, err := strconv.ParseFloat(priceText, 64); err == nil {
		rec.Price = &f
	}
	parseHennequinAttributes(&rec, headerText)
	return rec
}

var (
	hennequinMethodRules = []attrRule{
		rule(`\bPT\s+BATEAU\b`, "PT BATEAU"),
		rule(`\bPETIT\s+BATEAU\b`, "PT BATEAU"),
		rule(`\bDE\s+LIGNE\b`, "LIGNE"),
		rule(`\bLIGNE\b`, "LIGNE"),
		rule(`\bSENNEUR\b`, "SENNEUR"),
		rule(`\bSAUVAGE\b`, "SAUVAGE"),
		rule(`\bPECHE\s+LOCALE\b`, "PECHE LOCALE"),
		rule(`\bCASIER\b`, "CASIER"),
		rule(`\bCHALUT\b`, "CHALUT"),
		rule(`\bPALANGRE\b`, "PALANGRE"),
		rule(`\bFILEYEUR\b`, "FILEYEUR"),
	}
	hennequinQualityRules = []attrRule{
		rule(`\bEXTRA\s+PINS?\b`, "EXTRA PINS"),
		rule(`\bQUALITE\s+PREMIUM\b`, "QUALITE PREMIUM"),
		rule(`\bEXTRA\b`, "EXTRA"),
		rule(`\bSUP\b`, "SUP"),
	}
	hennequinCutRules = []attrRule{
		rule(`\bFILET\b`, "FILET"),
		rule(`\bQUEUE\b`, "QUEUE"),
		rule(`\bAILE\b`, "AILE"),
		rule(`\bLONGE\b`, "LONGE"),
		rule(`\bPINCE\b`, "PINCE"),
		rule(`\bCUISSES?\b`, "CUISSES"),
		rule(`\bFT\b`, "FILET"),
		rule(`\bDOS\b`, "DOS"),
	}
	hennequinStateRules = []attrRule{
		rule(`\bVIDEE?\b`, "VIDEE"),
		rule(`\bPELEE?\b`, "PELEE"),
		rule(`\bCORAILLEE?S?\b`, "CORAILLEES"),
		rule(`\bDEGRESSE?E?\b`, "DEGRESSEE"),
		rule(`\bDESARETE?E?\b`, "DESARETEE"),
		rule(`\bVIVANT\b`, "VIVANT"),
		rule(`\bCUITE?S?\b`, "CUIT"),
		rule(`\bDECORTIQUEE?S?\b`, "DECORTIQUEES"),
	}
	hennequinConservationRules = []attrRule{
		rule(`\bSURGELEE?S?\b`, "SURGELEE"),
		rule(`\bCONGELEE?S?\b`, "CONGELEE"),
		rule(`\bIQF\b`, "IQF"),
		rule(`\bFRAIS\b`, "FRAIS"),
	}
	hennequinOriginRules = []attrRule{
		rule(`\bFAO\s*87\b`, "FAO87"),
		rule(`\bFAO\s*27\b`, "FAO27"),
		rule(`\bFRANCE\b`, "FRANCE"),
		rule(`\bVENDEE\b`, "VENDEE"),
		rule(`\bBRETAGNE\b`, "BRETAGNE"),
		rule(`\bILES?\s+FEROE\b`, "ILES FEROE"),
		rule(`\bECOSSE\b`, "ECOSSE"),
		rule(`\bMADAGASCAR\b`, "MADAGASCAR"),
		rule(`\bVIETNAM\b`, "VIETNAM"),
		rule(`\bEQUATEUR\b`, "EQUATEUR"),
		rule(`\bNORVEGE\b`, "NORVEGE"),
		rule(`\bESPAGNE\b`, "ESPAGNE"),
		rule(`\bPORTUGAL\b`, "PORTUGAL"),
		rule(`\bIRLANDE\b`, "IRLANDE"),
		rule(`\bVAT\b`, "ATLANTIQUE"),
	}
	hennequinSizeKeywordRules = []attrRule{
		rule(`\bJUMBO\b`, "JUMBO"),
		rule(`\bXXL\b`, "XXL"),
		rule(`\bXL\b`, "XL"),
		rule(`\bGEANTS?\b`, "GEANT"),
		rule(`\bGROSSE?S?\b`, "GROS"),
		rule(`\bPETITS?\b`, "PETIT"),
		rule(`\bMOYENS?\b`, "MOYEN"),
	}
	reHnqRange  = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)\b`)
	reHnqPlus   = regexp.MustCompile(`(\+\d+(?:\.\d+)?)\b`)
	reHnqNumero = regexp.MustCompile(`\b(N°\s?\d+)\b`)
)

// parseHennequinAttributes reads attributes from the product name and the
// original category header, which often carries the catch method that the
// alias mapping strips from the stored category.
func parseHennequinAttributes(rec *RawRecord, headerText string) {
	combined := strings.ToUpper(rec.Product)
	if headerText != "" {
		combined = strings.ToUpper(headerText) + " " + combined
	}
	var trail infoTrail

	rec.CatchMethod = firstAttr(hennequinMethodRules, combined)
	trail.add("Méthode", rec.CatchMethod)
	rec.Quality = firstAttr(hennequinQualityRules, combined)
	trail.add("Qualité", rec.Quality)
	rec.Cut = firstAttr(hennequinCutRules, combined)
	trail.add("Découpe", rec.Cut)
	rec.State = firstAttr(hennequinStateRules, combined)
	trail.add("État", rec.State)
	rec.Conservation = firstAttr(hennequinConservationRules, combined)
	trail.add("Conservation", rec.Conservation)

	origins := allAttrs(hennequinOriginRules, combined)
	for _, o := range origins {
		trail.add("Origine", o)
	}
	rec.Origin = joinAttrs(origins)

	// Size grade comes from the name alone, category headers never carry it.
	rec.SizeGrade = hennequinCalibre(strings.ToUpper(rec.Product))
	trail.add("Calibre", rec.SizeGrade)

	rec.RawInfo = trail.String()
}

func hennequinCalibre(text string) string {
	if m := reHnqRange.FindStringSubmatch(text); m != nil {
		return m[1] + "/" + m[2]
	}
	if m := reHnqPlus.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := reHnqNumero.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(m[1], " ", "")
	}
	return firstAttr(hennequinSizeKeywordRules, text)
}
