// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldVendor, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// PriceDate applies equality check predicate on the "price_date" field. It's identical to PriceDateEQ.
func PriceDate(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPriceDate, v))
}

// RowsExtracted applies equality check predicate on the "rows_extracted" field. It's identical to RowsExtractedEQ.
func RowsExtracted(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsExtracted, v))
}

// RowsLoaded applies equality check predicate on the "rows_loaded" field. It's identical to RowsLoadedEQ.
func RowsLoaded(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsLoaded, v))
}

// RowsUnrecognized applies equality check predicate on the "rows_unrecognized" field. It's identical to RowsUnrecognizedEQ.
func RowsUnrecognized(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsUnrecognized, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFileID, vs...))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldVendor, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PriceDateEQ applies the EQ predicate on the "price_date" field.
func PriceDateEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPriceDate, v))
}

// PriceDateNEQ applies the NEQ predicate on the "price_date" field.
func PriceDateNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldPriceDate, v))
}

// PriceDateIn applies the In predicate on the "price_date" field.
func PriceDateIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldPriceDate, vs...))
}

// PriceDateNotIn applies the NotIn predicate on the "price_date" field.
func PriceDateNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldPriceDate, vs...))
}

// PriceDateGT applies the GT predicate on the "price_date" field.
func PriceDateGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldPriceDate, v))
}

// PriceDateGTE applies the GTE predicate on the "price_date" field.
func PriceDateGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldPriceDate, v))
}

// PriceDateLT applies the LT predicate on the "price_date" field.
func PriceDateLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldPriceDate, v))
}

// PriceDateLTE applies the LTE predicate on the "price_date" field.
func PriceDateLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldPriceDate, v))
}

// PriceDateIsNil applies the IsNil predicate on the "price_date" field.
func PriceDateIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldPriceDate))
}

// PriceDateNotNil applies the NotNil predicate on the "price_date" field.
func PriceDateNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldPriceDate))
}

// RowsExtractedEQ applies the EQ predicate on the "rows_extracted" field.
func RowsExtractedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsExtracted, v))
}

// RowsExtractedNEQ applies the NEQ predicate on the "rows_extracted" field.
func RowsExtractedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldRowsExtracted, v))
}

// RowsExtractedIn applies the In predicate on the "rows_extracted" field.
func RowsExtractedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldRowsExtracted, vs...))
}

// RowsExtractedNotIn applies the NotIn predicate on the "rows_extracted" field.
func RowsExtractedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldRowsExtracted, vs...))
}

// RowsExtractedGT applies the GT predicate on the "rows_extracted" field.
func RowsExtractedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldRowsExtracted, v))
}

// RowsExtractedGTE applies the GTE predicate on the "rows_extracted" field.
func RowsExtractedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldRowsExtracted, v))
}

// RowsExtractedLT applies the LT predicate on the "rows_extracted" field.
func RowsExtractedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldRowsExtracted, v))
}

// RowsExtractedLTE applies the LTE predicate on the "rows_extracted" field.
func RowsExtractedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldRowsExtracted, v))
}

// RowsLoadedEQ applies the EQ predicate on the "rows_loaded" field.
func RowsLoadedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsLoaded, v))
}

// RowsLoadedNEQ applies the NEQ predicate on the "rows_loaded" field.
func RowsLoadedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldRowsLoaded, v))
}

// RowsLoadedIn applies the In predicate on the "rows_loaded" field.
func RowsLoadedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldRowsLoaded, vs...))
}

// RowsLoadedNotIn applies the NotIn predicate on the "rows_loaded" field.
func RowsLoadedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldRowsLoaded, vs...))
}

// RowsLoadedGT applies the GT predicate on the "rows_loaded" field.
func RowsLoadedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldRowsLoaded, v))
}

// RowsLoadedGTE applies the GTE predicate on the "rows_loaded" field.
func RowsLoadedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldRowsLoaded, v))
}

// RowsLoadedLT applies the LT predicate on the "rows_loaded" field.
func RowsLoadedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldRowsLoaded, v))
}

// RowsLoadedLTE applies the LTE predicate on the "rows_loaded" field.
func RowsLoadedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldRowsLoaded, v))
}

// RowsUnrecognizedEQ applies the EQ predicate on the "rows_unrecognized" field.
func RowsUnrecognizedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRowsUnrecognized, v))
}

// RowsUnrecognizedNEQ applies the NEQ predicate on the "rows_unrecognized" field.
func RowsUnrecognizedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldRowsUnrecognized, v))
}

// RowsUnrecognizedIn applies the In predicate on the "rows_unrecognized" field.
func RowsUnrecognizedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldRowsUnrecognized, vs...))
}

// RowsUnrecognizedNotIn applies the NotIn predicate on the "rows_unrecognized" field.
func RowsUnrecognizedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldRowsUnrecognized, vs...))
}

// RowsUnrecognizedGT applies the GT predicate on the "rows_unrecognized" field.
func RowsUnrecognizedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldRowsUnrecognized, v))
}

// RowsUnrecognizedGTE applies the GTE predicate on the "rows_unrecognized" field.
func RowsUnrecognizedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldRowsUnrecognized, v))
}

// RowsUnrecognizedLT applies the LT predicate on the "rows_unrecognized" field.
func RowsUnrecognizedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldRowsUnrecognized, v))
}

// RowsUnrecognizedLTE applies the LTE predicate on the "rows_unrecognized" field.
func RowsUnrecognizedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldRowsUnrecognized, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.SourceFile) predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecords applies the HasEdge predicate on the "records" edge.
func HasRecords() predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordsWith applies the HasEdge predicate on the "records" edge with a given conditions (other predicates).
func HasRecordsWith(preds ...predicate.PriceRecord) predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := newRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.NotPredicates(p))
}
