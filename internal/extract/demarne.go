package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lacriee/prices-tracker/constants"
)

// Demarne publishes an XLSX workbook instead of a PDF. Category headers and
// variant rows share column A, the numeric article code in column D marks a
// sellable row, and the size grade and origin columns use merged cells that
// span several rows. The price date lives in the sheet's odd page header.
type DemarneExtractor struct{}

func NewDemarneExtractor() *DemarneExtractor { return &DemarneExtractor{} }

func (e *DemarneExtractor) Vendor() constants.Vendor { return constants.VendorDemarne }

// Workbook columns, zero based.
const (
	demarneColName      = 0 // category header or variant
	demarneColLabel     = 1
	demarneColCalibre   = 2 // merged
	demarneColCode      = 3
	demarneColOrigin    = 4 // merged
	demarneColPackaging = 5
	demarneColPrice     = 6
	demarneColUnit      = 7
)

// Section banners between paragraphs, never categories.
var demarneSeparators = map[string]struct{}{
	"LA MARÉE": {}, "LA MAREE": {}, "LES COQUILLAGES": {},
}

var (
	reSplitFrEnUpper = regexp.MustCompile(`^(.+?)\s*/\s*([A-Z].+)$`)
	reSplitFrEnLoose = regexp.MustCompile(`^(.+?)\s+/\s*(.+)$`)
)

// splitFrEn splits a bilingual "FRANÇAIS / English" cell. A slash inside a
// word ("Trim B/D") is not a split point.
func splitFrEn(text string) (fr, en string) {
	text = strings.TrimSpace(text)
	if m := reSplitFrEnUpper.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := reSplitFrEnLoose.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return text, ""
}

// Catch method keywords in priority order; FILET is deliberately absent, it
// is a cut, not a method.
var demarneMethodRules = []attrRule{
	rule(`\bDE LIGNE\b`, "LIGNE"),
	rule(`\bLIGNE\b`, "LIGNE"),
	rule(`\bIKEJIME\b`, "IKEJIME"),
	rule(`\bIKE\b`, "IKEJIME"),
	rule(`\bPB\b`, "PB"),
	rule(`\bCASIER\b`, "CASIER"),
	rule(`\bCHALUT\b`, "CHALUT"),
	rule(`\bPALANGRE\b`, "PALANGRE"),
	rule(`\bFILEYEUR\b`, "FILEYEUR"),
}

// demarneFishingMethod searches the fields most likely to carry the method
// first: variant, then label, category, and the full name last.
func demarneFishingMethod(productName, category, variant, label string) string {
	for _, text := range []string{variant, label, category, productName} {
		if text == "" {
			continue
		}
		if m := firstAttr(demarneMethodRules, strings.ToUpper(strings.TrimSpace(text))); m != "" {
			return m
		}
	}
	return ""
}

// Extract walks the active sheet of a Demarne workbook.
func (e *DemarneExtractor) Extract(ctx context.Context, f *excelize.File, opts Options) ([]RawRecord, error) {
	sheet := f.GetSheetName(0)

	docDate, dateFound := e.headerDate(f, sheet)
	date, err := resolveDate(docDate, dateFound, opts)
	if err != nil {
		return nil, err
	}

	merged, err := mergedCellMap(f, sheet)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var (
		records              []RawRecord
		category, categoryEN string
		variant, variantEN   string
	)

	cell := func(rowIdx int, row []string, col int) string {
		if v, ok := merged[[2]int{rowIdx + 1, col + 1}]; ok {
			return strings.TrimSpace(v)
		}
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	for idx, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := cell(idx, row, demarneColName)
		label := cell(idx, row, demarneColLabel)
		calibre := cell(idx, row, demarneColCalibre)
		code := cell(idx, row, demarneColCode)
		origin := cell(idx, row, demarneColOrigin)
		packaging := cell(idx, row, demarneColPackaging)
		priceText := cell(idx, row, demarneColPrice)
		unit := cell(idx, row, demarneColUnit)

		// Paragraph header row: column D holds the column title.
		if code == "Code" || code == "Calibre" || code == "Caliber" {
			if _, sep := demarneSeparators[name]; name != "" && !sep {
				category, categoryEN = splitFrEn(name)
				variant, variantEN = "", ""
			}
			continue
		}
		if code == "" {
			continue
		}
		if _, err := strconv.ParseFloat(code, 64); err != nil {
			// Not an article code, probably a separator row.
			continue
		}

		if _, sep := demarneSeparators[name]; name != "" && !sep {
			variant, variantEN = splitFrEn(name)
		}

		var nameParts []string
		for _, p := range []string{category, variant, label, calibre} {
			if p != "" {
				nameParts = append(nameParts, p)
			}
		}
		productName := strings.Join(nameParts, " - ")

		rec := RawRecord{
			Vendor:       constants.VendorDemarne,
			KeyDate:      keyDate(code, date),
			ProviderCode: code,
			Date:         date,
			Product:      productName,
			Category:     category,
			CategoryEN:   categoryEN,
			Variant:      variant,
			VariantEN:    variantEN,
			Label:        label,
			SizeGrade:    calibre,
			Origin:       origin,
			CatchMethod:  demarneFishingMethod(productName, category, variant, label),
		}
		if priceText != "" {
			if p, err := strconv.ParseFloat(strings.ReplaceAll(priceText, ",", "."), 64); err == nil {
				rec.Price = &p
			}
		}
		var trail infoTrail
		trail.add("Colisage", packaging)
		trail.add("Unité", unit)
		rec.RawInfo = trail.String()

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRows
	}
	propagateVariantTranslations(records)
	return records, nil
}

func (e *DemarneExtractor) headerDate(f *excelize.File, sheet string) (time.Time, bool) {
	opts, err := f.GetHeaderFooter(sheet)
	if err != nil || opts == nil {
		return time.Time{}, false
	}
	return FindDocumentDate(opts.OddHeader, constants.VendorDemarne)
}

// mergedCellMap maps every (row, col) covered by a merged range to the
// range's top left value, both 1-based.
func mergedCellMap(f *excelize.File, sheet string) (map[[2]int]string, error) {
	ranges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	out := make(map[[2]int]string)
	for _, mc := range ranges {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		value := mc.GetCellValue()
		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				out[[2]int{r, c}] = value
			}
		}
	}
	return out, nil
}

// propagateVariantTranslations copies the English variant text onto rows
// where the same French variant appears without its translation.
func propagateVariantTranslations(records []RawRecord) {
	translations := make(map[string]string)
	for _, r := range records {
		if r.Variant != "" && r.VariantEN != "" {
			translations[r.Variant] = r.VariantEN
		}
	}
	if len(translations) == 0 {
		return
	}
	for i := range records {
		if records[i].VariantEN == "" {
			if en, ok := translations[records[i].Variant]; ok {
				records[i].VariantEN = en
			}
		}
	}
}
