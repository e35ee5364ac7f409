package processor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lacriee/prices-tracker/constants"
	"github.com/lacriee/prices-tracker/gen/ent"
	"github.com/lacriee/prices-tracker/internal/archive"
	"github.com/lacriee/prices-tracker/internal/entity"
	"github.com/lacriee/prices-tracker/internal/renderer"
)

type fakeFiles struct {
	row *ent.SourceFile
}

func (f *fakeFiles) GetByID(context.Context, uuid.UUID) (*ent.SourceFile, error) {
	return f.row, nil
}

func (f *fakeFiles) GetByVendorAndHash(context.Context, string, []byte) (*ent.SourceFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeFiles) Create(_ context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error) {
	f.row = &ent.SourceFile{
		ID:          uuid.New(),
		Vendor:      vendor,
		Filename:    filename,
		FileExt:     ext,
		ArchivePath: archivePath,
		ContentHash: hash,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	return f.row, nil
}

func (f *fakeFiles) UpsertByHash(ctx context.Context, vendor, filename, ext, archivePath string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, bool, error) {
	row, err := f.Create(ctx, vendor, filename, ext, archivePath, size, hash, uploadedAt)
	return row, false, err
}

type fakeJobs struct {
	statuses      []string
	priceDate     time.Time
	rowsExtracted int
	rowsLoaded    int
	unrecognized  int
	failureMsg    string
}

func (j *fakeJobs) Start(_ context.Context, fileID uuid.UUID, vendor, format string) (*ent.ImportJob, error) {
	j.statuses = append(j.statuses, string(constants.JobStatusQueued))
	return &ent.ImportJob{ID: uuid.New(), FileID: fileID, Vendor: vendor, Format: format}, nil
}

func (j *fakeJobs) MarkExtracting(context.Context, uuid.UUID) error {
	j.statuses = append(j.statuses, string(constants.JobStatusExtracting))
	return nil
}

func (j *fakeJobs) MarkLoading(_ context.Context, _ uuid.UUID, priceDate time.Time, rowsExtracted int) error {
	j.statuses = append(j.statuses, string(constants.JobStatusLoading))
	j.priceDate = priceDate
	j.rowsExtracted = rowsExtracted
	return nil
}

func (j *fakeJobs) FinishSuccess(_ context.Context, _ uuid.UUID, rowsLoaded, rowsUnrecognized int) error {
	j.statuses = append(j.statuses, string(constants.JobStatusCompleted))
	j.rowsLoaded = rowsLoaded
	j.unrecognized = rowsUnrecognized
	return nil
}

func (j *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	j.statuses = append(j.statuses, string(constants.JobStatusFailed))
	j.failureMsg = message
	return nil
}

type fakeRecords struct {
	upserted []*entity.PriceRecord
}

func (r *fakeRecords) UpsertBatch(_ context.Context, _ uuid.UUID, records []*entity.PriceRecord) (int, error) {
	r.upserted = append(r.upserted, records...)
	return len(records), nil
}

func (r *fakeRecords) ListByJob(context.Context, uuid.UUID) ([]*ent.PriceRecord, error) {
	return nil, nil
}

func (r *fakeRecords) ListByDateRange(context.Context, time.Time, time.Time, []string) ([]*ent.PriceRecord, error) {
	return nil, nil
}

func demarneWorkbookBytes(t *testing.T, withDate bool) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if withDate {
		require.NoError(t, f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{
			OddHeader: "Mercuriale du 15/01/2024",
		}))
	}
	require.NoError(t, f.SetCellValue(sheet, "A1", "SAUMON NORVÈGE / Norway salmon"))
	require.NoError(t, f.SetCellValue(sheet, "D1", "Code"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Filet de saumon / Salmon fillet"))
	require.NoError(t, f.SetCellValue(sheet, "D2", "12345"))
	require.NoError(t, f.SetCellValue(sheet, "G2", "18,90"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func newTestProcessor(t *testing.T) (*Processor, *fakeJobs, *fakeRecords) {
	t.Helper()
	jobs := &fakeJobs{}
	records := &fakeRecords{}
	proc := NewProcessor(nil, renderer.JSONRenderer{}, archive.NewStore(t.TempDir(), nil), &fakeFiles{}, jobs, records)
	return proc, jobs, records
}

func TestProcessDocument(t *testing.T) {
	proc, jobs, records := newTestProcessor(t)

	res, err := proc.ProcessDocument(context.Background(), constants.VendorDemarne, "mercuriale.xlsx", demarneWorkbookBytes(t, true), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"QUEUED", "EXTRACTING", "LOADING", "COMPLETED"}, jobs.statuses)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), jobs.priceDate)
	assert.Equal(t, 1, jobs.rowsExtracted)
	assert.Equal(t, 1, jobs.rowsLoaded)

	assert.Equal(t, 1, res.RowsExtracted)
	assert.Equal(t, 1, res.RowsLoaded)
	require.Len(t, records.upserted, 1)
	rec := records.upserted[0]
	assert.Equal(t, "DEMARNE", rec.Vendor)
	assert.Equal(t, "12345", rec.ProviderCode)
	assert.Equal(t, "12345_2024-01-15", rec.KeyDate)
}

func TestProcessDocumentExtractFailureFailsJob(t *testing.T) {
	proc, jobs, records := newTestProcessor(t)

	_, err := proc.ProcessDocument(context.Background(), constants.VendorDemarne, "mercuriale.xlsx", demarneWorkbookBytes(t, false), "")
	require.Error(t, err)

	assert.Equal(t, []string{"QUEUED", "EXTRACTING", "FAILED"}, jobs.statuses)
	assert.NotEmpty(t, jobs.failureMsg)
	assert.Empty(t, records.upserted)
}

func TestProcessDocumentFallbackDate(t *testing.T) {
	proc, jobs, _ := newTestProcessor(t)

	res, err := proc.ProcessDocument(context.Background(), constants.VendorDemarne, "mercuriale.xlsx", demarneWorkbookBytes(t, false), "2024-02-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), res.PriceDate)
	assert.Equal(t, []string{"QUEUED", "EXTRACTING", "LOADING", "COMPLETED"}, jobs.statuses)
}
