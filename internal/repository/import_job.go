package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/gen/ent"
)

type ImportJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, vendor, format string) (*ent.ImportJob, error)
	MarkExtracting(ctx context.Context, jobID uuid.UUID) error
	MarkLoading(ctx context.Context, jobID uuid.UUID, priceDate time.Time, rowsExtracted int) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, rowsLoaded, rowsUnrecognized int) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type importJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, logger *slog.Logger) ImportJobRepository {
	return &importJobRepo{ent: entc, logger: logger}
}

func (r *importJobRepo) Start(ctx context.Context, fileID uuid.UUID, vendor, format string) (*ent.ImportJob, error) {
	job, err := r.ent.ImportJob.
		Create().
		SetFileID(fileID).
		SetVendor(vendor).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job start failed", "file_id", fileID, "vendor", vendor, "error", err)
		return nil, err
	}
	r.logger.Info("import_job started", "job_id", job.ID, "file_id", fileID, "vendor", vendor, "format", format)
	return job, nil
}

func (r *importJobRepo) MarkExtracting(ctx context.Context, jobID uuid.UUID) error {
	return r.setStatus(ctx, jobID, constants.JobStatusExtracting)
}

func (r *importJobRepo) MarkLoading(ctx context.Context, jobID uuid.UUID, priceDate time.Time, rowsExtracted int) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusLoading)).
		SetPriceDate(priceDate).
		SetRowsExtracted(rowsExtracted).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job mark loading failed", "job_id", jobID, "error", err)
	}
	return err
}

func (r *importJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, rowsLoaded, rowsUnrecognized int) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetRowsLoaded(rowsLoaded).
		SetRowsUnrecognized(rowsUnrecognized).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job finish(COMPLETED) failed", "job_id", jobID, "error", err)
		return err
	}
	r.logger.Info("import_job completed", "job_id", jobID, "rows_loaded", rowsLoaded, "rows_unrecognized", rowsUnrecognized)
	return nil
}

func (r *importJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job finish(FAILED) failed", "job_id", jobID, "error", err)
		return err
	}
	r.logger.Warn("import_job failed", "job_id", jobID, "error", message)
	return nil
}

func (r *importJobRepo) setStatus(ctx context.Context, jobID uuid.UUID, status constants.JobStatus) error {
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job status update failed", "job_id", jobID, "status", status, "error", err)
	}
	return err
}
