// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/db/ent/schema"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescVendor is the schema descriptor for vendor field.
	importjobDescVendor := importjobFields[2].Descriptor()
	// importjob.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	importjob.VendorValidator = func() func(string) error {
		validators := importjobDescVendor.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(vendor string) error {
			for _, fn := range fns {
				if err := fn(vendor); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// importjobDescFormat is the schema descriptor for format field.
	importjobDescFormat := importjobFields[3].Descriptor()
	// importjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	importjob.FormatValidator = func() func(string) error {
		validators := importjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[4].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[6].Descriptor()
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescRowsExtracted is the schema descriptor for rows_extracted field.
	importjobDescRowsExtracted := importjobFields[9].Descriptor()
	// importjob.DefaultRowsExtracted holds the default value on creation for the rows_extracted field.
	importjob.DefaultRowsExtracted = importjobDescRowsExtracted.Default.(int)
	// importjob.RowsExtractedValidator is a validator for the "rows_extracted" field. It is called by the builders before save.
	importjob.RowsExtractedValidator = importjobDescRowsExtracted.Validators[0].(func(int) error)
	// importjobDescRowsLoaded is the schema descriptor for rows_loaded field.
	importjobDescRowsLoaded := importjobFields[10].Descriptor()
	// importjob.DefaultRowsLoaded holds the default value on creation for the rows_loaded field.
	importjob.DefaultRowsLoaded = importjobDescRowsLoaded.Default.(int)
	// importjob.RowsLoadedValidator is a validator for the "rows_loaded" field. It is called by the builders before save.
	importjob.RowsLoadedValidator = importjobDescRowsLoaded.Validators[0].(func(int) error)
	// importjobDescRowsUnrecognized is the schema descriptor for rows_unrecognized field.
	importjobDescRowsUnrecognized := importjobFields[11].Descriptor()
	// importjob.DefaultRowsUnrecognized holds the default value on creation for the rows_unrecognized field.
	importjob.DefaultRowsUnrecognized = importjobDescRowsUnrecognized.Default.(int)
	// importjob.RowsUnrecognizedValidator is a validator for the "rows_unrecognized" field. It is called by the builders before save.
	importjob.RowsUnrecognizedValidator = importjobDescRowsUnrecognized.Validators[0].(func(int) error)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	pricerecordFields := schema.PriceRecord{}.Fields()
	_ = pricerecordFields
	// pricerecordDescKeyDate is the schema descriptor for key_date field.
	pricerecordDescKeyDate := pricerecordFields[1].Descriptor()
	// pricerecord.KeyDateValidator is a validator for the "key_date" field. It is called by the builders before save.
	pricerecord.KeyDateValidator = pricerecordDescKeyDate.Validators[0].(func(string) error)
	// pricerecordDescVendor is the schema descriptor for vendor field.
	pricerecordDescVendor := pricerecordFields[2].Descriptor()
	// pricerecord.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	pricerecord.VendorValidator = func() func(string) error {
		validators := pricerecordDescVendor.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(vendor string) error {
			for _, fn := range fns {
				if err := fn(vendor); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pricerecordDescProviderCode is the schema descriptor for provider_code field.
	pricerecordDescProviderCode := pricerecordFields[3].Descriptor()
	// pricerecord.ProviderCodeValidator is a validator for the "provider_code" field. It is called by the builders before save.
	pricerecord.ProviderCodeValidator = pricerecordDescProviderCode.Validators[0].(func(string) error)
	// pricerecordDescProduct is the schema descriptor for product field.
	pricerecordDescProduct := pricerecordFields[6].Descriptor()
	// pricerecord.ProductValidator is a validator for the "product" field. It is called by the builders before save.
	pricerecord.ProductValidator = pricerecordDescProduct.Validators[0].(func(string) error)
	// pricerecordDescCreatedAt is the schema descriptor for created_at field.
	pricerecordDescCreatedAt := pricerecordFields[22].Descriptor()
	// pricerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	pricerecord.DefaultCreatedAt = pricerecordDescCreatedAt.Default.(func() time.Time)
	// pricerecordDescUpdatedAt is the schema descriptor for updated_at field.
	pricerecordDescUpdatedAt := pricerecordFields[23].Descriptor()
	// pricerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pricerecord.DefaultUpdatedAt = pricerecordDescUpdatedAt.Default.(func() time.Time)
	// pricerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pricerecord.UpdateDefaultUpdatedAt = pricerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pricerecordDescID is the schema descriptor for id field.
	pricerecordDescID := pricerecordFields[0].Descriptor()
	// pricerecord.DefaultID holds the default value on creation for the id field.
	pricerecord.DefaultID = pricerecordDescID.Default.(func() uuid.UUID)
	sourcefileFields := schema.SourceFile{}.Fields()
	_ = sourcefileFields
	// sourcefileDescVendor is the schema descriptor for vendor field.
	sourcefileDescVendor := sourcefileFields[1].Descriptor()
	// sourcefile.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	sourcefile.VendorValidator = func() func(string) error {
		validators := sourcefileDescVendor.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(vendor string) error {
			for _, fn := range fns {
				if err := fn(vendor); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sourcefileDescFilename is the schema descriptor for filename field.
	sourcefileDescFilename := sourcefileFields[2].Descriptor()
	// sourcefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourcefile.FilenameValidator = sourcefileDescFilename.Validators[0].(func(string) error)
	// sourcefileDescFileExt is the schema descriptor for file_ext field.
	sourcefileDescFileExt := sourcefileFields[3].Descriptor()
	// sourcefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	sourcefile.FileExtValidator = sourcefileDescFileExt.Validators[0].(func(string) error)
	// sourcefileDescArchivePath is the schema descriptor for archive_path field.
	sourcefileDescArchivePath := sourcefileFields[4].Descriptor()
	// sourcefile.ArchivePathValidator is a validator for the "archive_path" field. It is called by the builders before save.
	sourcefile.ArchivePathValidator = sourcefileDescArchivePath.Validators[0].(func(string) error)
	// sourcefileDescContentHash is the schema descriptor for content_hash field.
	sourcefileDescContentHash := sourcefileFields[5].Descriptor()
	// sourcefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sourcefile.ContentHashValidator = sourcefileDescContentHash.Validators[0].(func([]byte) error)
	// sourcefileDescFileSize is the schema descriptor for file_size field.
	sourcefileDescFileSize := sourcefileFields[6].Descriptor()
	// sourcefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourcefile.FileSizeValidator = sourcefileDescFileSize.Validators[0].(func(int) error)
	// sourcefileDescUploadedAt is the schema descriptor for uploaded_at field.
	sourcefileDescUploadedAt := sourcefileFields[7].Descriptor()
	// sourcefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourcefile.DefaultUploadedAt = sourcefileDescUploadedAt.Default.(func() time.Time)
	// sourcefileDescID is the schema descriptor for id field.
	sourcefileDescID := sourcefileFields[0].Descriptor()
	// sourcefile.DefaultID holds the default value on creation for the id field.
	sourcefile.DefaultID = sourcefileDescID.Default.(func() uuid.UUID)
}
