package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lacriee/prices-tracker/gen/ent"
	"github.com/lacriee/prices-tracker/internal/repository"
	"github.com/lacriee/prices-tracker/internal/utils"
)

// Service is a tiny façade over the record repository that produces XLSX
// bytes for spot-checking loads.
type Service struct {
	records repository.PriceRecordRepository
	logger  *slog.Logger
}

func NewService(records repository.PriceRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

var priceHeaders = []string{
	"Date",
	"Vendor",
	"Category",
	"Product",
	"Price",
	"Size Grade",
	"Quality",
	"Catch Method",
	"Cut",
	"State",
	"Origin",
	"Production",
	"Slaughter",
	"Color",
	"Conservation",
	"Label",
	"Trim",
	"Code",
	"Raw Info",
}

// ExportPricesXLSX returns an XLSX workbook (as bytes) covering the given
// date window, optionally restricted to a set of vendors.
func (s *Service) ExportPricesXLSX(ctx context.Context, from, to time.Time, vendors []string) ([]byte, error) {
	start := time.Now()

	recs, err := s.records.ListByDateRange(ctx, from, to, vendors)
	if err != nil {
		return nil, fmt.Errorf("query price records: %w", err)
	}

	buf, err := writeWorkbook(recs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"from", from.Format("2006-01-02"),
		"to", to.Format("2006-01-02"),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

func writeWorkbook(recs []*ent.PriceRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Prices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range priceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.PriceDate.Format("2006-01-02"))
		write(2, r.Vendor)
		write(3, utils.StrOrEmpty(r.Category))
		write(4, r.Product)
		if r.Price != nil {
			write(5, *r.Price)
		} else {
			write(5, "")
		}
		write(6, utils.StrOrEmpty(r.SizeGrade))
		write(7, utils.StrOrEmpty(r.Quality))
		write(8, utils.StrOrEmpty(r.CatchMethod))
		write(9, utils.StrOrEmpty(r.Cut))
		write(10, utils.StrOrEmpty(r.State))
		write(11, utils.StrOrEmpty(r.Origin))
		write(12, utils.StrOrEmpty(r.ProductionType))
		write(13, utils.StrOrEmpty(r.SlaughterTechnique))
		write(14, utils.StrOrEmpty(r.Color))
		write(15, utils.StrOrEmpty(r.Conservation))
		write(16, utils.StrOrEmpty(r.Label))
		write(17, utils.StrOrEmpty(r.TrimCode))
		write(18, r.ProviderCode)
		write(19, utils.StrOrEmpty(r.RawInfo))

		row++
	}

	// Widen the columns a reader scans first
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 16) // vendor
	_ = f.SetColWidth(sheet, "C", "C", 22) // category
	_ = f.SetColWidth(sheet, "D", "D", 42) // product
	_ = f.SetColWidth(sheet, "E", "E", 10) // price
	_ = f.SetColWidth(sheet, "R", "R", 28) // code
	_ = f.SetColWidth(sheet, "S", "S", 48) // raw info

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
