// Code generated by ent, DO NOT EDIT.

package pricerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pricerecord type in the database.
	Label = "price_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKeyDate holds the string denoting the key_date field in the database.
	FieldKeyDate = "key_date"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldProviderCode holds the string denoting the provider_code field in the database.
	FieldProviderCode = "provider_code"
	// FieldPriceDate holds the string denoting the price_date field in the database.
	FieldPriceDate = "price_date"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldProduct holds the string denoting the product field in the database.
	FieldProduct = "product"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldSizeGrade holds the string denoting the size_grade field in the database.
	FieldSizeGrade = "size_grade"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldCatchMethod holds the string denoting the catch_method field in the database.
	FieldCatchMethod = "catch_method"
	// FieldCut holds the string denoting the cut field in the database.
	FieldCut = "cut"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldProductionType holds the string denoting the production_type field in the database.
	FieldProductionType = "production_type"
	// FieldSlaughterTechnique holds the string denoting the slaughter_technique field in the database.
	FieldSlaughterTechnique = "slaughter_technique"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldConservation holds the string denoting the conservation field in the database.
	FieldConservation = "conservation"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldTrimCode holds the string denoting the trim_code field in the database.
	FieldTrimCode = "trim_code"
	// FieldRawInfo holds the string denoting the raw_info field in the database.
	FieldRawInfo = "raw_info"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the pricerecord in the database.
	Table = "price_record"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "price_record"
	// JobInverseTable is the table name for the ImportJob entity.
	// It exists in this package in order to avoid circular dependency with the "importjob" package.
	JobInverseTable = "import_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for pricerecord fields.
var Columns = []string{
	FieldID,
	FieldKeyDate,
	FieldVendor,
	FieldProviderCode,
	FieldPriceDate,
	FieldJobID,
	FieldProduct,
	FieldCategory,
	FieldPrice,
	FieldSizeGrade,
	FieldQuality,
	FieldCatchMethod,
	FieldCut,
	FieldState,
	FieldOrigin,
	FieldProductionType,
	FieldSlaughterTechnique,
	FieldColor,
	FieldConservation,
	FieldLabel,
	FieldTrimCode,
	FieldRawInfo,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// KeyDateValidator is a validator for the "key_date" field. It is called by the builders before save.
	KeyDateValidator func(string) error
	// VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	VendorValidator func(string) error
	// ProviderCodeValidator is a validator for the "provider_code" field. It is called by the builders before save.
	ProviderCodeValidator func(string) error
	// ProductValidator is a validator for the "product" field. It is called by the builders before save.
	ProductValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PriceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKeyDate orders the results by the key_date field.
func ByKeyDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyDate, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByProviderCode orders the results by the provider_code field.
func ByProviderCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderCode, opts...).ToFunc()
}

// ByPriceDate orders the results by the price_date field.
func ByPriceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceDate, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByProduct orders the results by the product field.
func ByProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProduct, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// BySizeGrade orders the results by the size_grade field.
func BySizeGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeGrade, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByCatchMethod orders the results by the catch_method field.
func ByCatchMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatchMethod, opts...).ToFunc()
}

// ByCut orders the results by the cut field.
func ByCut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCut, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByProductionType orders the results by the production_type field.
func ByProductionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductionType, opts...).ToFunc()
}

// BySlaughterTechnique orders the results by the slaughter_technique field.
func BySlaughterTechnique(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlaughterTechnique, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByConservation orders the results by the conservation field.
func ByConservation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConservation, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByTrimCode orders the results by the trim_code field.
func ByTrimCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrimCode, opts...).ToFunc()
}

// ByRawInfo orders the results by the raw_info field.
func ByRawInfo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawInfo, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
