// Package extract turns rendered vendor price documents into raw price
// records. Each vendor has its own extractor keyed on the document layout;
// all extractors emit the same RawRecord shape, which the harmonize package
// then maps onto the canonical taxonomy.
package extract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/renderer"
)

var (
	// ErrNoDate is returned when neither the document nor the fallback
	// option yields a price date.
	ErrNoDate = errors.New("extract: no price date found")
	// ErrNoRows is returned when a document renders fine but no product
	// rows are recognized, which usually means the layout drifted.
	ErrNoRows = errors.New("extract: no product rows recognized")
)

// Options carries per-run extraction settings.
type Options struct {
	// FallbackDate is used when the document carries no parseable date.
	// Accepted formats are YYYY-MM-DD, DD/MM/YYYY and DD.MM.YYYY.
	FallbackDate string
}

// RawRecord is a single price line as the vendor published it, before any
// vocabulary harmonization. String fields are empty when the vendor did not
// state the attribute.
type RawRecord struct {
	Vendor       constants.Vendor
	KeyDate      string
	ProviderCode string
	Date         time.Time

	Product  string
	Price    *float64
	Category string

	CatchMethod  string
	Quality      string
	Cut          string
	State        string
	Conservation string
	Origin       string
	SizeGrade    string
	Trim         string
	Label        string

	// Demarne bilingual columns.
	Variant    string
	VariantEN  string
	CategoryEN string

	// RawInfo is the audit trail of attribute captures, "Label:value"
	// pairs joined with " | ".
	RawInfo string
}

// Extractor parses one vendor's document layout.
type Extractor interface {
	Vendor() constants.Vendor
	Extract(ctx context.Context, doc renderer.Document, opts Options) ([]RawRecord, error)
}

// ForVendor returns the extractor for a vendor.
func ForVendor(vendor constants.Vendor) (Extractor, error) {
	switch vendor {
	case constants.VendorAudierne:
		return NewAudierneExtractor()
	case constants.VendorHennequin:
		return NewHennequinExtractor()
	case constants.VendorLaurentDaniel:
		return NewLaurentDanielExtractor()
	case constants.VendorVVQM:
		return NewVVQMExtractor()
	case constants.VendorDemarne:
		return nil, fmt.Errorf("vendor %s publishes workbooks, use NewDemarneExtractor", vendor)
	default:
		return nil, fmt.Errorf("no extractor registered for vendor %q", vendor)
	}
}

// keyDate builds the identity key shared by all vendors, provider code plus
// the price date.
func keyDate(code string, date time.Time) string {
	return code + "_" + date.Format("2006-01-02")
}

// resolveDate picks the document date when present, otherwise the fallback.
func resolveDate(docDate time.Time, found bool, opts Options) (time.Time, error) {
	if found {
		return docDate, nil
	}
	if opts.FallbackDate != "" {
		return ParseFallbackDate(opts.FallbackDate)
	}
	return time.Time{}, ErrNoDate
}
