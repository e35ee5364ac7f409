package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lacriee/prices-tracker/gen/ent"
	entrecord "github.com/lacriee/prices-tracker/gen/ent/pricerecord"
	"github.com/lacriee/prices-tracker/internal/entity"
)

// upsertChunkSize keeps a bulk insert under the Postgres parameter cap.
const upsertChunkSize = 100

type PriceRecordRepository interface {
	// UpsertBatch inserts records, replacing attribute columns when a row
	// with the same (vendor, key_date) already exists. Returns the number
	// of rows written.
	UpsertBatch(ctx context.Context, jobID uuid.UUID, records []*entity.PriceRecord) (int, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.PriceRecord, error)
	ListByDateRange(ctx context.Context, from, to time.Time, vendors []string) ([]*ent.PriceRecord, error)
}

type priceRecordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPriceRecordRepository(entc *ent.Client, logger *slog.Logger) PriceRecordRepository {
	return &priceRecordRepo{ent: entc, logger: logger}
}

func (r *priceRecordRepo) UpsertBatch(ctx context.Context, jobID uuid.UUID, records []*entity.PriceRecord) (int, error) {
	written := 0
	for start := 0; start < len(records); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		builders := make([]*ent.PriceRecordCreate, 0, len(chunk))
		for _, rec := range chunk {
			builders = append(builders, r.createBuilder(jobID, rec))
		}
		err := r.ent.PriceRecord.CreateBulk(builders...).
			OnConflictColumns(entrecord.FieldVendor, entrecord.FieldKeyDate).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			r.logger.Error("price_record upsert failed", "job_id", jobID, "offset", start, "error", err)
			return written, err
		}
		written += len(chunk)
	}
	r.logger.Info("price_record batch upserted", "job_id", jobID, "rows", written)
	return written, nil
}

func (r *priceRecordRepo) createBuilder(jobID uuid.UUID, rec *entity.PriceRecord) *ent.PriceRecordCreate {
	return r.ent.PriceRecord.Create().
		SetKeyDate(rec.KeyDate).
		SetVendor(rec.Vendor).
		SetProviderCode(rec.ProviderCode).
		SetPriceDate(rec.PriceDate).
		SetProduct(rec.Product).
		SetJobID(jobID).
		SetNillablePrice(rec.Price).
		SetNillableCategory(rec.Category).
		SetNillableSizeGrade(rec.SizeGrade).
		SetNillableQuality(rec.Quality).
		SetNillableCatchMethod(rec.CatchMethod).
		SetNillableCut(rec.Cut).
		SetNillableState(rec.State).
		SetNillableOrigin(rec.Origin).
		SetNillableProductionType(rec.ProductionType).
		SetNillableSlaughterTechnique(rec.SlaughterTechnique).
		SetNillableColor(rec.Color).
		SetNillableConservation(rec.Conservation).
		SetNillableLabel(rec.Label).
		SetNillableTrimCode(rec.TrimCode).
		SetNillableRawInfo(rec.RawInfo)
}

func (r *priceRecordRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.PriceRecord, error) {
	rows, err := r.ent.PriceRecord.Query().
		Where(entrecord.JobID(jobID)).
		Order(ent.Asc(entrecord.FieldCategory), ent.Asc(entrecord.FieldProduct)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list price records by job", "job_id", jobID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *priceRecordRepo) ListByDateRange(ctx context.Context, from, to time.Time, vendors []string) ([]*ent.PriceRecord, error) {
	q := r.ent.PriceRecord.Query().
		Where(
			entrecord.PriceDateGTE(from),
			entrecord.PriceDateLTE(to),
		)
	if len(vendors) > 0 {
		q = q.Where(entrecord.VendorIn(vendors...))
	}
	rows, err := q.
		Order(ent.Asc(entrecord.FieldPriceDate), ent.Asc(entrecord.FieldVendor), ent.Asc(entrecord.FieldCategory), ent.Asc(entrecord.FieldProduct)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list price records by date range", "from", from, "to", to, "error", err)
		return nil, err
	}
	return rows, nil
}
