package extract

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/layout"
	"github.com/lacriee/prices-tracker/internal/renderer"
)

// VVQM prints a grid of product, size grade and price tokens with no ruled
// structure at all. Prices are the bold numeric tokens; the product and
// grade for each price are the nearest tokens to its left on the same
// visual row. Section titles (also bold) only govern the rightmost column.
type vvqmExtractor struct {
	geo *layout.Geometry
}

func NewVVQMExtractor() (Extractor, error) {
	geo, err := layout.ForVendor(constants.VendorVVQM)
	if err != nil {
		return nil, err
	}
	return &vvqmExtractor{geo: geo}, nil
}

func (e *vvqmExtractor) Vendor() constants.Vendor { return constants.VendorVVQM }

var vvqmGenericCategories = map[string]struct{}{
	"POISSON": {}, "COQUILLAGES": {}, "CRUSTACES": {}, "CRUSTACES BRETONS": {},
	"FILETS": {},
}

var vvqmSectionTitles = []string{"COQUILLAGES", "CRUSTACES BRETONS", "FILETS"}

var (
	reVVQMPrice  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	reVVQMNumber = regexp.MustCompile(`^-?\d+$`)
)

func isVVQMPriceToken(s string) bool {
	return reVVQMPrice.MatchString(strings.TrimSpace(s))
}

func isVVQMCalibreToken(s string) bool {
	s = strings.TrimSpace(s)
	return strings.Contains(s, "/") || s == "0" || reVVQMNumber.MatchString(s)
}

type vvqmRow struct {
	product string
	calibre string
	price   float64
	section string
}

func (e *vvqmExtractor) Extract(ctx context.Context, doc renderer.Document, opts Options) ([]RawRecord, error) {
	var rows []vvqmRow
	var docDate time.Time
	dateFound := false

	for _, page := range doc.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !dateFound {
			docDate, dateFound = FindDocumentDate(pageText(page), constants.VendorVVQM)
		}
		rows = append(rows, e.scanPage(page)...)
	}

	date, err := resolveDate(docDate, dateFound, opts)
	if err != nil {
		return nil, err
	}

	records := make([]RawRecord, 0, len(rows))
	seen := make(map[string]struct{})
	for _, row := range rows {
		dedupKey := row.product + "\x00" + row.calibre + "\x00" + strconv.FormatFloat(row.price, 'f', -1, 64)
		if _, dup := seen[dedupKey]; dup {
			continue
		}
		seen[dedupKey] = struct{}{}
		records = append(records, buildVVQMRecord(row, date))
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

func (e *vvqmExtractor) scanPage(page renderer.Page) []vvqmRow {
	type pricePos struct {
		y, x  float64
		value float64
	}
	var prices []pricePos
	sections := layout.SectionIndex{}

	for _, t := range page.Tokens {
		text := strings.TrimSpace(t.Text)
		if text == "" || !t.Bold {
			continue
		}
		if isVVQMPriceToken(text) {
			v, _ := strconv.ParseFloat(text, 64)
			prices = append(prices, pricePos{y: t.Y, x: t.X, value: v})
			continue
		}
		if t.Y > e.geo.SectionMinY {
			upper := strings.ToUpper(text)
			for _, title := range vvqmSectionTitles {
				if strings.Contains(upper, title) {
					sections.Add(t.Y, title)
					break
				}
			}
		}
	}

	used := make(map[pricePos]struct{})
	var rows []vvqmRow

	for _, cluster := range layout.ClusterRows(page.Tokens, e.geo.YTolerance) {
		if len(cluster.Tokens) == 0 {
			continue
		}
		yLine := cluster.Tokens[0].Y

		var linePrices []pricePos
		for _, p := range prices {
			if _, taken := used[p]; !taken && abs(p.y-yLine) <= e.geo.YTolerance {
				linePrices = append(linePrices, p)
			}
		}
		sort.Slice(linePrices, func(i, j int) bool { return linePrices[i].x < linePrices[j].x })

		for _, p := range linePrices {
			var left []renderer.Token
			for _, t := range cluster.Tokens {
				if t.X < p.x {
					left = append(left, t)
				}
			}
			if len(left) == 0 {
				continue
			}

			last := left[len(left)-1]
			var product, calibre string
			switch {
			case isVVQMCalibreToken(last.Text) && p.x-last.X < e.geo.CalibreMaxDist:
				calibre = last.Text
				if len(left) >= 2 {
					product = left[len(left)-2].Text
				}
			case len(left) >= 2 && isVVQMCalibreToken(left[len(left)-2].Text) && p.x-left[len(left)-2].X < e.geo.CalibreMaxDist:
				calibre = left[len(left)-2].Text
				product = last.Text
			default:
				product = last.Text
			}

			section := ""
			if p.x >= e.geo.SectionMinX {
				section = sections.At(yLine)
			}
			rows = append(rows, vvqmRow{
				product: strings.TrimSpace(product),
				calibre: strings.TrimSpace(calibre),
				price:   p.value,
				section: section,
			})
			used[p] = struct{}{}
		}
	}
	return rows
}

func buildVVQMRecord(row vvqmRow, date time.Time) RawRecord {
	name := row.product
	if row.calibre != "" {
		name = row.product + " - " + row.calibre
	}

	code := "VVQM_" + strings.ReplaceAll(strings.ReplaceAll(row.product+"__"+row.calibre, " ", "_"), "__", "_")
	code = strings.TrimRight(code, "_")

	price := row.price
	rec := RawRecord{
		Vendor:       constants.VendorVVQM,
		KeyDate:      keyDate(code, date),
		ProviderCode: code,
		Date:         date,
		Product:      name,
		Price:        &price,
		SizeGrade:    row.calibre,
	}

	species := parseVVQMProductName(row.product, &rec)
	if row.section != "" {
		rec.Category = row.section
	} else {
		rec.Category = vvqmCategoryForSpecies(species)
	}
	rec.Category = RefineGenericCategory(rec.Category, name, vvqmGenericCategories)

	var trail infoTrail
	trail.add("Espèce", species)
	trail.add("Méthode", rec.CatchMethod)
	trail.add("État", rec.State)
	trail.add("Découpe", rec.Cut)
	trail.add("Origine", rec.Origin)
	trail.add("Calibre", rec.SizeGrade)
	rec.RawInfo = trail.String()
	return rec
}

// parseVVQMProductName peels known attribute words off the product name;
// whatever is left is the species. Returns the species.
func parseVVQMProductName(product string, rec *RawRecord) string {
	upper := strings.ToUpper(strings.TrimSpace(product))
	parts := strings.Fields(upper)
	if len(parts) == 0 {
		return ""
	}

	switch parts[0] {
	case "DOS", "FILET", "JOUE", "LONGE":
		rec.Cut = parts[0]
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return upper
	}

	var methods []string
	if newParts, ok := removeWord(parts, "PB"); ok {
		parts = newParts
		methods = append(methods, "PB")
	}
	if newParts, ok := removeWord(parts, "LIGNE"); ok {
		parts = newParts
		methods = append(methods, "LIGNE")
		parts, _ = removeWord(parts, "DE")
	}
	if newParts, ok := removeWord(parts, "IKEJIME"); ok {
		parts = newParts
		methods = append(methods, "IKEJIME")
	}
	if newParts, ok := removeWord(parts, "IKE"); ok {
		parts = newParts
		methods = append(methods, "IKEJIME")
	}
	rec.CatchMethod = strings.Join(methods, " ")

	for _, state := range []string{"VIDÉ", "VIDE", "VIDÉE", "CORAIL", "BLANCHE", "VIVANT", "DÉC", "ENTIERE", "ENTIÈRE"} {
		if newParts, ok := removeWord(parts, state); ok {
			parts = newParts
			switch state {
			case "VIDE", "VIDÉE":
				rec.State = "VIDÉ"
			case "ENTIERE":
				rec.State = "ENTIÈRE"
			default:
				rec.State = state
			}
			break
		}
	}

	if newParts, ok := removeWord(parts, "VAT"); ok {
		parts = newParts
		rec.Origin = "ATLANTIQUE"
	} else if newParts, ok := removeWord(parts, "VDK"); ok {
		parts = newParts
		rec.Origin = "DANEMARK"
	}

	if len(parts) == 0 {
		return upper
	}
	return strings.Join(parts, " ")
}

func removeWord(parts []string, word string) ([]string, bool) {
	for i, p := range parts {
		if p == word {
			return append(parts[:i:i], parts[i+1:]...), true
		}
	}
	return parts, false
}

// Specific multi-word species first, BARBUE before the BAR substring.
var vvqmPrioritySpecies = []struct{ pattern, category string }{
	{"ROUGET BARBET", "ROUGET BARBET"},
	{"ROUGET", "ROUGET BARBET"},
	{"BARBUE", "BARBUE"},
	{"LIEU JAUNE", "LIEU JAUNE"},
	{"LIEU NOIR", "LIEU NOIR"},
	{"ST PIERRE", "SAINT PIERRE"},
	{"SAINT PIERRE", "SAINT PIERRE"},
	{"COQUILLE ST JACQUES", "COQUILLE ST JACQUES"},
	{"NOIX ST JACQUES", "NOIX ST JACQUES"},
	{"NOIX SAINT JACQUES", "NOIX ST JACQUES"},
}

var vvqmSpeciesCategories = []struct{ pattern, category string }{
	{"BAR", "BAR"}, {"TURBOT", "TURBOT"}, {"MERLU", "MERLU"}, {"MERLAN", "MERLAN"},
	{"CABILLAUD", "CABILLAUD"}, {"SOLE", "SOLE"}, {"DORADE", "DORADE"},
	{"LOTTE", "LOTTE"}, {"CARRELET", "CARRELET"}, {"MAIGRE", "MAIGRE"},
	{"GRONDIN", "GRONDIN"}, {"RAIE", "RAIE"}, {"LIMANDE", "LIMANDE"},
	{"ENCORNET", "ENCORNET"}, {"POULPE", "POULPE"}, {"SEICHE", "SEICHE"},
	{"CONGRE", "CONGRE"}, {"PAGEOT", "PAGEOT"}, {"PAGRE", "PAGRE"},
	{"JULIENNE", "JULIENNE"}, {"SARDINE", "SARDINE"}, {"MULET", "MULET"},
	{"VIVE", "VIVE"}, {"SEBASTE", "SEBASTE"}, {"BICHE", "BICHE"},
	{"EMISSOLE", "EMISSOLE"}, {"ROUSSETTE", "ROUSSETTE"}, {"MAQUEREAU", "MAQUEREAU"},
	{"THON", "THON"}, {"ESPADON", "ESPADON"}, {"ELINGUE", "ELINGUE"},
	{"BROSME", "BROSME"}, {"MOSTELLE", "MOSTELLE"}, {"GRENADIER", "GRENADIER"},
	{"SABRE", "SABRE"}, {"ANON", "ANON"},
	{"COQUILLE", "COQUILLE ST JACQUES"}, {"NOIX", "NOIX ST JACQUES"},
	{"COQUES", "COQUES"}, {"PALOURDE", "PALOURDE"},
	{"ARAIGNEE", "ARAIGNEE"}, {"TOURTEAU", "TOURTEAU"}, {"HOMARD", "HOMARD"},
	{"LANGOUSTE", "LANGOUSTE"}, {"CREVETTE", "CREVETTE"}, {"BOUQUET", "BOUQUET"},
}

func vvqmCategoryForSpecies(species string) string {
	if species == "" {
		return "POISSON"
	}
	upper := strings.ToUpper(species)
	for _, m := range vvqmPrioritySpecies {
		if strings.Contains(upper, m.pattern) {
			return m.category
		}
	}
	for _, m := range vvqmSpeciesCategories {
		if strings.Contains(upper, m.pattern) {
			return m.category
		}
	}
	return "POISSON"
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
