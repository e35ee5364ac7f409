package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lacriee/prices-tracker/gen/ent"
	entfile "github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

type SourceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error)
	GetByVendorAndHash(ctx context.Context, vendor string, hash []byte) (*ent.SourceFile, error)
	Create(ctx context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error)
	// UpsertByHash returns the existing row when the same document was
	// already archived for this vendor. The bool reports whether the row
	// existed before the call.
	UpsertByHash(ctx context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, bool, error)
}

type sourceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSourceFileRepository(entc *ent.Client, logger *slog.Logger) SourceFileRepository {
	return &sourceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *sourceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	return r.ent.SourceFile.Get(ctx, id)
}

func (r *sourceFileRepo) GetByVendorAndHash(ctx context.Context, vendor string, hash []byte) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Query().
		Where(
			entfile.Vendor(vendor),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *sourceFileRepo) Create(ctx context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Create().
		SetVendor(vendor).
		SetFilename(filename).
		SetFileExt(ext).
		SetArchivePath(archivePath).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create source file", "vendor", vendor, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *sourceFileRepo) UpsertByHash(ctx context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, bool, error) {
	if existing, err := r.GetByVendorAndHash(ctx, vendor, hash); err == nil {
		r.logger.Debug("source file already archived", "vendor", vendor, "filename", filename, "file_id", existing.ID)
		return existing, true, nil
	}
	row, err := r.Create(ctx, vendor, filename, ext, archivePath, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
