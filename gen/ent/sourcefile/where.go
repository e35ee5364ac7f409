// Code generated by ent, DO NOT EDIT.

package sourcefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldID, id))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldVendor, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileExt, v))
}

// ArchivePath applies equality check predicate on the "archive_path" field. It's identical to ArchivePathEQ.
func ArchivePath(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldArchivePath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldContentHash, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileSize, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldVendor, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldFileExt, v))
}

// ArchivePathEQ applies the EQ predicate on the "archive_path" field.
func ArchivePathEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldArchivePath, v))
}

// ArchivePathNEQ applies the NEQ predicate on the "archive_path" field.
func ArchivePathNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldArchivePath, v))
}

// ArchivePathIn applies the In predicate on the "archive_path" field.
func ArchivePathIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldArchivePath, vs...))
}

// ArchivePathNotIn applies the NotIn predicate on the "archive_path" field.
func ArchivePathNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldArchivePath, vs...))
}

// ArchivePathGT applies the GT predicate on the "archive_path" field.
func ArchivePathGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldArchivePath, v))
}

// ArchivePathGTE applies the GTE predicate on the "archive_path" field.
func ArchivePathGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldArchivePath, v))
}

// ArchivePathLT applies the LT predicate on the "archive_path" field.
func ArchivePathLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldArchivePath, v))
}

// ArchivePathLTE applies the LTE predicate on the "archive_path" field.
func ArchivePathLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldArchivePath, v))
}

// ArchivePathContains applies the Contains predicate on the "archive_path" field.
func ArchivePathContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldArchivePath, v))
}

// ArchivePathHasPrefix applies the HasPrefix predicate on the "archive_path" field.
func ArchivePathHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldArchivePath, v))
}

// ArchivePathHasSuffix applies the HasSuffix predicate on the "archive_path" field.
func ArchivePathHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldArchivePath, v))
}

// ArchivePathEqualFold applies the EqualFold predicate on the "archive_path" field.
func ArchivePathEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldArchivePath, v))
}

// ArchivePathContainsFold applies the ContainsFold predicate on the "archive_path" field.
func ArchivePathContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldArchivePath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldContentHash, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFileSize, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.SourceFile {
	return predicate.SourceFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ImportJob) predicate.SourceFile {
	return predicate.SourceFile(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.NotPredicates(p))
}
