// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importjob type in the database.
	Label = "import_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPriceDate holds the string denoting the price_date field in the database.
	FieldPriceDate = "price_date"
	// FieldRowsExtracted holds the string denoting the rows_extracted field in the database.
	FieldRowsExtracted = "rows_extracted"
	// FieldRowsLoaded holds the string denoting the rows_loaded field in the database.
	FieldRowsLoaded = "rows_loaded"
	// FieldRowsUnrecognized holds the string denoting the rows_unrecognized field in the database.
	FieldRowsUnrecognized = "rows_unrecognized"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeRecords holds the string denoting the records edge name in mutations.
	EdgeRecords = "records"
	// Table holds the table name of the importjob in the database.
	Table = "import_job"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "import_job"
	// FileInverseTable is the table name for the SourceFile entity.
	// It exists in this package in order to avoid circular dependency with the "sourcefile" package.
	FileInverseTable = "source_file"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// RecordsTable is the table that holds the records relation/edge.
	RecordsTable = "price_record"
	// RecordsInverseTable is the table name for the PriceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "pricerecord" package.
	RecordsInverseTable = "price_record"
	// RecordsColumn is the table column denoting the records relation/edge.
	RecordsColumn = "job_id"
)

// Columns holds all SQL columns for importjob fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldVendor,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldPriceDate,
	FieldRowsExtracted,
	FieldRowsLoaded,
	FieldRowsUnrecognized,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	VendorValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRowsExtracted holds the default value on creation for the "rows_extracted" field.
	DefaultRowsExtracted int
	// RowsExtractedValidator is a validator for the "rows_extracted" field. It is called by the builders before save.
	RowsExtractedValidator func(int) error
	// DefaultRowsLoaded holds the default value on creation for the "rows_loaded" field.
	DefaultRowsLoaded int
	// RowsLoadedValidator is a validator for the "rows_loaded" field. It is called by the builders before save.
	RowsLoadedValidator func(int) error
	// DefaultRowsUnrecognized holds the default value on creation for the "rows_unrecognized" field.
	DefaultRowsUnrecognized int
	// RowsUnrecognizedValidator is a validator for the "rows_unrecognized" field. It is called by the builders before save.
	RowsUnrecognizedValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPriceDate orders the results by the price_date field.
func ByPriceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceDate, opts...).ToFunc()
}

// ByRowsExtracted orders the results by the rows_extracted field.
func ByRowsExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsExtracted, opts...).ToFunc()
}

// ByRowsLoaded orders the results by the rows_loaded field.
func ByRowsLoaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsLoaded, opts...).ToFunc()
}

// ByRowsUnrecognized orders the results by the rows_unrecognized field.
func ByRowsUnrecognized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsUnrecognized, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecordsCount orders the results by records count.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordsStep(), opts...)
	}
}

// ByRecords orders the results by records terms.
func ByRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
	)
}
