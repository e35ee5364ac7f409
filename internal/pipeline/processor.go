package processor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/internal/archive"
	"github.com/lacriee/prices-tracker/internal/common"
	"github.com/lacriee/prices-tracker/internal/entity"
	"github.com/lacriee/prices-tracker/internal/extract"
	"github.com/lacriee/prices-tracker/internal/harmonize"
	"github.com/lacriee/prices-tracker/internal/renderer"
	"github.com/lacriee/prices-tracker/internal/repository"
)

// Processor runs one vendor document through archive, extraction,
// harmonization and the warehouse upsert. Documents are independent of each
// other, so callers may process several concurrently.
type Processor struct {
	Logger   *slog.Logger
	Renderer renderer.Renderer
	Archive  *archive.Store
	Files    repository.SourceFileRepository
	Jobs     repository.ImportJobRepository
	Records  repository.PriceRecordRepository
}

func NewProcessor(
	logger *slog.Logger,
	rend renderer.Renderer,
	store *archive.Store,
	files repository.SourceFileRepository,
	jobs repository.ImportJobRepository,
	records repository.PriceRecordRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:   logger,
		Renderer: rend,
		Archive:  store,
		Files:    files,
		Jobs:     jobs,
		Records:  records,
	}
}

// Result summarizes one processed document.
type Result struct {
	FileID           uuid.UUID
	JobID            uuid.UUID
	PriceDate        time.Time
	RowsExtracted    int
	RowsLoaded       int
	RowsUnrecognized int
}

// ProcessDocument archives the document, then extracts, harmonizes and
// upserts its records. The archive write happens before anything can fail so
// the original bytes survive even a broken document. Re-running the same
// document is safe: the file row is keyed by content hash and records are
// keyed by (vendor, key_date).
func (p *Processor) ProcessDocument(ctx context.Context, vendor constants.Vendor, filename string, content []byte, fallbackDate string) (*Result, error) {
	now := time.Now().UTC()

	entry, err := p.Archive.Save(string(vendor), filename, now, content)
	if err != nil {
		p.Logger.Error("pipeline.archive.failed", "vendor", vendor, "filename", filename, "err", err)
		return nil, err
	}

	ext := constants.NormalizeExt(filepath.Ext(filename))
	fileRow, existed, err := p.Files.UpsertByHash(ctx, string(vendor), filename, ext, entry.Path, entry.Size, entry.Hash, now)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("pipeline.archive.ok", "vendor", vendor, "filename", filename, "file_id", fileRow.ID, "seen_before", existed)

	job, err := p.Jobs.Start(ctx, fileRow.ID, string(vendor), constants.FormatForExt(ext))
	if err != nil {
		return nil, err
	}
	res := &Result{FileID: fileRow.ID, JobID: job.ID}
	ctx = common.WithJobID(ctx, job.ID.String())

	if err := p.Jobs.MarkExtracting(ctx, job.ID); err != nil {
		return res, err
	}
	raws, err := p.extractRecords(ctx, vendor, content, extract.Options{FallbackDate: fallbackDate})
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "vendor", vendor, "job_id", job.ID, "err", err)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return res, err
	}
	res.RowsExtracted = len(raws)
	res.PriceDate = raws[0].Date
	p.Logger.Info("pipeline.extract.ok", "vendor", vendor, "job_id", job.ID, "rows", len(raws), "price_date", res.PriceDate.Format("2006-01-02"))

	if err := p.Jobs.MarkLoading(ctx, job.ID, res.PriceDate, len(raws)); err != nil {
		return res, err
	}

	harmonized := make([]*entity.PriceRecord, 0, len(raws))
	for _, raw := range raws {
		rec := harmonize.Harmonize(raw)
		if rec.Category == nil {
			res.RowsUnrecognized++
		}
		harmonized = append(harmonized, &rec)
	}

	written, err := p.Records.UpsertBatch(ctx, job.ID, harmonized)
	res.RowsLoaded = written
	if err != nil {
		p.Logger.Error("pipeline.load.failed", "vendor", vendor, "job_id", job.ID, "err", err)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return res, err
	}
	p.Logger.Info("pipeline.load.ok", "vendor", vendor, "job_id", job.ID, "rows_loaded", written, "rows_unrecognized", res.RowsUnrecognized)

	if err := p.Jobs.FinishSuccess(ctx, job.ID, res.RowsLoaded, res.RowsUnrecognized); err != nil {
		return res, err
	}
	return res, nil
}

// extractRecords dispatches on the vendor's document format.
func (p *Processor) extractRecords(ctx context.Context, vendor constants.Vendor, content []byte, opts extract.Options) ([]extract.RawRecord, error) {
	if vendor == constants.VendorDemarne {
		wb, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer wb.Close()
		return extract.NewDemarneExtractor().Extract(ctx, wb, opts)
	}

	ex, err := extract.ForVendor(vendor)
	if err != nil {
		return nil, err
	}
	doc, err := p.Renderer.Render(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return ex.Extract(ctx, doc, opts)
}
