package utils

import (
	"time"

	"github.com/lacriee/prices-tracker/gen/ent"
	"github.com/lacriee/prices-tracker/internal/entity"
)

// StrOrEmpty dereferences an optional string column.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToPriceRecord(e *ent.PriceRecord) *entity.PriceRecord {
	return &entity.PriceRecord{
		ID:                 e.ID,
		KeyDate:            e.KeyDate,
		Vendor:             e.Vendor,
		ProviderCode:       e.ProviderCode,
		PriceDate:          e.PriceDate,
		Product:            e.Product,
		Price:              e.Price,
		Category:           e.Category,
		SizeGrade:          e.SizeGrade,
		Quality:            e.Quality,
		CatchMethod:        e.CatchMethod,
		Cut:                e.Cut,
		State:              e.State,
		Origin:             e.Origin,
		ProductionType:     e.ProductionType,
		SlaughterTechnique: e.SlaughterTechnique,
		Color:              e.Color,
		Conservation:       e.Conservation,
		Label:              e.Label,
		TrimCode:           e.TrimCode,
		RawInfo:            e.RawInfo,
		JobID:              e.JobID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToImportJob(e *ent.ImportJob) *entity.ImportJob {
	return &entity.ImportJob{
		ID:               e.ID,
		FileID:           e.FileID,
		Vendor:           e.Vendor,
		Format:           e.Format,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
		Status:           e.Status,
		ErrorMessage:     e.ErrorMessage,
		PriceDate:        e.PriceDate,
		RowsExtracted:    e.RowsExtracted,
		RowsLoaded:       e.RowsLoaded,
		RowsUnrecognized: e.RowsUnrecognized,
	}
}

func ToSourceFile(e *ent.SourceFile) *entity.SourceFile {
	return &entity.SourceFile{
		ID:          e.ID,
		Vendor:      e.Vendor,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		ArchivePath: e.ArchivePath,
		ContentHash: e.ContentHash,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}
