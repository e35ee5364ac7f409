// Code generated by ent, DO NOT EDIT.

package pricerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldID, id))
}

// KeyDate applies equality check predicate on the "key_date" field. It's identical to KeyDateEQ.
func KeyDate(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldKeyDate, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldVendor, v))
}

// ProviderCode applies equality check predicate on the "provider_code" field. It's identical to ProviderCodeEQ.
func ProviderCode(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProviderCode, v))
}

// PriceDate applies equality check predicate on the "price_date" field. It's identical to PriceDateEQ.
func PriceDate(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPriceDate, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldJobID, v))
}

// Product applies equality check predicate on the "product" field. It's identical to ProductEQ.
func Product(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProduct, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCategory, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPrice, v))
}

// SizeGrade applies equality check predicate on the "size_grade" field. It's identical to SizeGradeEQ.
func SizeGrade(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldSizeGrade, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldQuality, v))
}

// CatchMethod applies equality check predicate on the "catch_method" field. It's identical to CatchMethodEQ.
func CatchMethod(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCatchMethod, v))
}

// Cut applies equality check predicate on the "cut" field. It's identical to CutEQ.
func Cut(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCut, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldState, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldOrigin, v))
}

// ProductionType applies equality check predicate on the "production_type" field. It's identical to ProductionTypeEQ.
func ProductionType(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProductionType, v))
}

// SlaughterTechnique applies equality check predicate on the "slaughter_technique" field. It's identical to SlaughterTechniqueEQ.
func SlaughterTechnique(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldSlaughterTechnique, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldColor, v))
}

// Conservation applies equality check predicate on the "conservation" field. It's identical to ConservationEQ.
func Conservation(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldConservation, v))
}

// TrimCode applies equality check predicate on the "trim_code" field. It's identical to TrimCodeEQ.
func TrimCode(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldTrimCode, v))
}

// RawInfo applies equality check predicate on the "raw_info" field. It's identical to RawInfoEQ.
func RawInfo(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldRawInfo, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyDateEQ applies the EQ predicate on the "key_date" field.
func KeyDateEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldKeyDate, v))
}

// KeyDateNEQ applies the NEQ predicate on the "key_date" field.
func KeyDateNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldKeyDate, v))
}

// KeyDateIn applies the In predicate on the "key_date" field.
func KeyDateIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldKeyDate, vs...))
}

// KeyDateNotIn applies the NotIn predicate on the "key_date" field.
func KeyDateNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldKeyDate, vs...))
}

// KeyDateGT applies the GT predicate on the "key_date" field.
func KeyDateGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldKeyDate, v))
}

// KeyDateGTE applies the GTE predicate on the "key_date" field.
func KeyDateGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldKeyDate, v))
}

// KeyDateLT applies the LT predicate on the "key_date" field.
func KeyDateLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldKeyDate, v))
}

// KeyDateLTE applies the LTE predicate on the "key_date" field.
func KeyDateLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldKeyDate, v))
}

// KeyDateContains applies the Contains predicate on the "key_date" field.
func KeyDateContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldKeyDate, v))
}

// KeyDateHasPrefix applies the HasPrefix predicate on the "key_date" field.
func KeyDateHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldKeyDate, v))
}

// KeyDateHasSuffix applies the HasSuffix predicate on the "key_date" field.
func KeyDateHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldKeyDate, v))
}

// KeyDateEqualFold applies the EqualFold predicate on the "key_date" field.
func KeyDateEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldKeyDate, v))
}

// KeyDateContainsFold applies the ContainsFold predicate on the "key_date" field.
func KeyDateContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldKeyDate, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldVendor, v))
}

// ProviderCodeEQ applies the EQ predicate on the "provider_code" field.
func ProviderCodeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProviderCode, v))
}

// ProviderCodeNEQ applies the NEQ predicate on the "provider_code" field.
func ProviderCodeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldProviderCode, v))
}

// ProviderCodeIn applies the In predicate on the "provider_code" field.
func ProviderCodeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldProviderCode, vs...))
}

// ProviderCodeNotIn applies the NotIn predicate on the "provider_code" field.
func ProviderCodeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldProviderCode, vs...))
}

// ProviderCodeGT applies the GT predicate on the "provider_code" field.
func ProviderCodeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldProviderCode, v))
}

// ProviderCodeGTE applies the GTE predicate on the "provider_code" field.
func ProviderCodeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldProviderCode, v))
}

// ProviderCodeLT applies the LT predicate on the "provider_code" field.
func ProviderCodeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldProviderCode, v))
}

// ProviderCodeLTE applies the LTE predicate on the "provider_code" field.
func ProviderCodeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldProviderCode, v))
}

// ProviderCodeContains applies the Contains predicate on the "provider_code" field.
func ProviderCodeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldProviderCode, v))
}

// ProviderCodeHasPrefix applies the HasPrefix predicate on the "provider_code" field.
func ProviderCodeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldProviderCode, v))
}

// ProviderCodeHasSuffix applies the HasSuffix predicate on the "provider_code" field.
func ProviderCodeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldProviderCode, v))
}

// ProviderCodeEqualFold applies the EqualFold predicate on the "provider_code" field.
func ProviderCodeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldProviderCode, v))
}

// ProviderCodeContainsFold applies the ContainsFold predicate on the "provider_code" field.
func ProviderCodeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldProviderCode, v))
}

// PriceDateEQ applies the EQ predicate on the "price_date" field.
func PriceDateEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPriceDate, v))
}

// PriceDateNEQ applies the NEQ predicate on the "price_date" field.
func PriceDateNEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldPriceDate, v))
}

// PriceDateIn applies the In predicate on the "price_date" field.
func PriceDateIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldPriceDate, vs...))
}

// PriceDateNotIn applies the NotIn predicate on the "price_date" field.
func PriceDateNotIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldPriceDate, vs...))
}

// PriceDateGT applies the GT predicate on the "price_date" field.
func PriceDateGT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldPriceDate, v))
}

// PriceDateGTE applies the GTE predicate on the "price_date" field.
func PriceDateGTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldPriceDate, v))
}

// PriceDateLT applies the LT predicate on the "price_date" field.
func PriceDateLT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldPriceDate, v))
}

// PriceDateLTE applies the LTE predicate on the "price_date" field.
func PriceDateLTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldPriceDate, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldJobID))
}

// ProductEQ applies the EQ predicate on the "product" field.
func ProductEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProduct, v))
}

// ProductNEQ applies the NEQ predicate on the "product" field.
func ProductNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldProduct, v))
}

// ProductIn applies the In predicate on the "product" field.
func ProductIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldProduct, vs...))
}

// ProductNotIn applies the NotIn predicate on the "product" field.
func ProductNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldProduct, vs...))
}

// ProductGT applies the GT predicate on the "product" field.
func ProductGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldProduct, v))
}

// ProductGTE applies the GTE predicate on the "product" field.
func ProductGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldProduct, v))
}

// ProductLT applies the LT predicate on the "product" field.
func ProductLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldProduct, v))
}

// ProductLTE applies the LTE predicate on the "product" field.
func ProductLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldProduct, v))
}

// ProductContains applies the Contains predicate on the "product" field.
func ProductContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldProduct, v))
}

// ProductHasPrefix applies the HasPrefix predicate on the "product" field.
func ProductHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldProduct, v))
}

// ProductHasSuffix applies the HasSuffix predicate on the "product" field.
func ProductHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldProduct, v))
}

// ProductEqualFold applies the EqualFold predicate on the "product" field.
func ProductEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldProduct, v))
}

// ProductContainsFold applies the ContainsFold predicate on the "product" field.
func ProductContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldProduct, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldCategory, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldPrice))
}

// SizeGradeEQ applies the EQ predicate on the "size_grade" field.
func SizeGradeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldSizeGrade, v))
}

// SizeGradeNEQ applies the NEQ predicate on the "size_grade" field.
func SizeGradeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldSizeGrade, v))
}

// SizeGradeIn applies the In predicate on the "size_grade" field.
func SizeGradeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldSizeGrade, vs...))
}

// SizeGradeNotIn applies the NotIn predicate on the "size_grade" field.
func SizeGradeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldSizeGrade, vs...))
}

// SizeGradeGT applies the GT predicate on the "size_grade" field.
func SizeGradeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldSizeGrade, v))
}

// SizeGradeGTE applies the GTE predicate on the "size_grade" field.
func SizeGradeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldSizeGrade, v))
}

// SizeGradeLT applies the LT predicate on the "size_grade" field.
func SizeGradeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldSizeGrade, v))
}

// SizeGradeLTE applies the LTE predicate on the "size_grade" field.
func SizeGradeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldSizeGrade, v))
}

// SizeGradeContains applies the Contains predicate on the "size_grade" field.
func SizeGradeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldSizeGrade, v))
}

// SizeGradeHasPrefix applies the HasPrefix predicate on the "size_grade" field.
func SizeGradeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldSizeGrade, v))
}

// SizeGradeHasSuffix applies the HasSuffix predicate on the "size_grade" field.
func SizeGradeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldSizeGrade, v))
}

// SizeGradeIsNil applies the IsNil predicate on the "size_grade" field.
func SizeGradeIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldSizeGrade))
}

// SizeGradeNotNil applies the NotNil predicate on the "size_grade" field.
func SizeGradeNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldSizeGrade))
}

// SizeGradeEqualFold applies the EqualFold predicate on the "size_grade" field.
func SizeGradeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldSizeGrade, v))
}

// SizeGradeContainsFold applies the ContainsFold predicate on the "size_grade" field.
func SizeGradeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldSizeGrade, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldQuality, v))
}

// QualityContains applies the Contains predicate on the "quality" field.
func QualityContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldQuality, v))
}

// QualityHasPrefix applies the HasPrefix predicate on the "quality" field.
func QualityHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldQuality, v))
}

// QualityHasSuffix applies the HasSuffix predicate on the "quality" field.
func QualityHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldQuality, v))
}

// QualityIsNil applies the IsNil predicate on the "quality" field.
func QualityIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldQuality))
}

// QualityNotNil applies the NotNil predicate on the "quality" field.
func QualityNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldQuality))
}

// QualityEqualFold applies the EqualFold predicate on the "quality" field.
func QualityEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldQuality, v))
}

// QualityContainsFold applies the ContainsFold predicate on the "quality" field.
func QualityContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldQuality, v))
}

// CatchMethodEQ applies the EQ predicate on the "catch_method" field.
func CatchMethodEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCatchMethod, v))
}

// CatchMethodNEQ applies the NEQ predicate on the "catch_method" field.
func CatchMethodNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCatchMethod, v))
}

// CatchMethodIn applies the In predicate on the "catch_method" field.
func CatchMethodIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCatchMethod, vs...))
}

// CatchMethodNotIn applies the NotIn predicate on the "catch_method" field.
func CatchMethodNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCatchMethod, vs...))
}

// CatchMethodGT applies the GT predicate on the "catch_method" field.
func CatchMethodGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCatchMethod, v))
}

// CatchMethodGTE applies the GTE predicate on the "catch_method" field.
func CatchMethodGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCatchMethod, v))
}

// CatchMethodLT applies the LT predicate on the "catch_method" field.
func CatchMethodLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCatchMethod, v))
}

// CatchMethodLTE applies the LTE predicate on the "catch_method" field.
func CatchMethodLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCatchMethod, v))
}

// CatchMethodContains applies the Contains predicate on the "catch_method" field.
func CatchMethodContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldCatchMethod, v))
}

// CatchMethodHasPrefix applies the HasPrefix predicate on the "catch_method" field.
func CatchMethodHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldCatchMethod, v))
}

// CatchMethodHasSuffix applies the HasSuffix predicate on the "catch_method" field.
func CatchMethodHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldCatchMethod, v))
}

// CatchMethodIsNil applies the IsNil predicate on the "catch_method" field.
func CatchMethodIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldCatchMethod))
}

// CatchMethodNotNil applies the NotNil predicate on the "catch_method" field.
func CatchMethodNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldCatchMethod))
}

// CatchMethodEqualFold applies the EqualFold predicate on the "catch_method" field.
func CatchMethodEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldCatchMethod, v))
}

// CatchMethodContainsFold applies the ContainsFold predicate on the "catch_method" field.
func CatchMethodContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldCatchMethod, v))
}

// CutEQ applies the EQ predicate on the "cut" field.
func CutEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCut, v))
}

// CutNEQ applies the NEQ predicate on the "cut" field.
func CutNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCut, v))
}

// CutIn applies the In predicate on the "cut" field.
func CutIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCut, vs...))
}

// CutNotIn applies the NotIn predicate on the "cut" field.
func CutNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCut, vs...))
}

// CutGT applies the GT predicate on the "cut" field.
func CutGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCut, v))
}

// CutGTE applies the GTE predicate on the "cut" field.
func CutGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCut, v))
}

// CutLT applies the LT predicate on the "cut" field.
func CutLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCut, v))
}

// CutLTE applies the LTE predicate on the "cut" field.
func CutLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCut, v))
}

// CutContains applies the Contains predicate on the "cut" field.
func CutContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldCut, v))
}

// CutHasPrefix applies the HasPrefix predicate on the "cut" field.
func CutHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldCut, v))
}

// CutHasSuffix applies the HasSuffix predicate on the "cut" field.
func CutHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldCut, v))
}

// CutIsNil applies the IsNil predicate on the "cut" field.
func CutIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldCut))
}

// CutNotNil applies the NotNil predicate on the "cut" field.
func CutNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldCut))
}

// CutEqualFold applies the EqualFold predicate on the "cut" field.
func CutEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldCut, v))
}

// CutContainsFold applies the ContainsFold predicate on the "cut" field.
func CutContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldCut, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldState, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginIsNil applies the IsNil predicate on the "origin" field.
func OriginIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldOrigin))
}

// OriginNotNil applies the NotNil predicate on the "origin" field.
func OriginNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldOrigin))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldOrigin, v))
}

// ProductionTypeEQ applies the EQ predicate on the "production_type" field.
func ProductionTypeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldProductionType, v))
}

// ProductionTypeNEQ applies the NEQ predicate on the "production_type" field.
func ProductionTypeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldProductionType, v))
}

// ProductionTypeIn applies the In predicate on the "production_type" field.
func ProductionTypeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldProductionType, vs...))
}

// ProductionTypeNotIn applies the NotIn predicate on the "production_type" field.
func ProductionTypeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldProductionType, vs...))
}

// ProductionTypeGT applies the GT predicate on the "production_type" field.
func ProductionTypeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldProductionType, v))
}

// ProductionTypeGTE applies the GTE predicate on the "production_type" field.
func ProductionTypeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldProductionType, v))
}

// ProductionTypeLT applies the LT predicate on the "production_type" field.
func ProductionTypeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldProductionType, v))
}

// ProductionTypeLTE applies the LTE predicate on the "production_type" field.
func ProductionTypeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldProductionType, v))
}

// ProductionTypeContains applies the Contains predicate on the "production_type" field.
func ProductionTypeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldProductionType, v))
}

// ProductionTypeHasPrefix applies the HasPrefix predicate on the "production_type" field.
func ProductionTypeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldProductionType, v))
}

// ProductionTypeHasSuffix applies the HasSuffix predicate on the "production_type" field.
func ProductionTypeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldProductionType, v))
}

// ProductionTypeIsNil applies the IsNil predicate on the "production_type" field.
func ProductionTypeIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldProductionType))
}

// ProductionTypeNotNil applies the NotNil predicate on the "production_type" field.
func ProductionTypeNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldProductionType))
}

// ProductionTypeEqualFold applies the EqualFold predicate on the "production_type" field.
func ProductionTypeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldProductionType, v))
}

// ProductionTypeContainsFold applies the ContainsFold predicate on the "production_type" field.
func ProductionTypeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldProductionType, v))
}

// SlaughterTechniqueEQ applies the EQ predicate on the "slaughter_technique" field.
func SlaughterTechniqueEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueNEQ applies the NEQ predicate on the "slaughter_technique" field.
func SlaughterTechniqueNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueIn applies the In predicate on the "slaughter_technique" field.
func SlaughterTechniqueIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldSlaughterTechnique, vs...))
}

// SlaughterTechniqueNotIn applies the NotIn predicate on the "slaughter_technique" field.
func SlaughterTechniqueNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldSlaughterTechnique, vs...))
}

// SlaughterTechniqueGT applies the GT predicate on the "slaughter_technique" field.
func SlaughterTechniqueGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueGTE applies the GTE predicate on the "slaughter_technique" field.
func SlaughterTechniqueGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueLT applies the LT predicate on the "slaughter_technique" field.
func SlaughterTechniqueLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueLTE applies the LTE predicate on the "slaughter_technique" field.
func SlaughterTechniqueLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueContains applies the Contains predicate on the "slaughter_technique" field.
func SlaughterTechniqueContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueHasPrefix applies the HasPrefix predicate on the "slaughter_technique" field.
func SlaughterTechniqueHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueHasSuffix applies the HasSuffix predicate on the "slaughter_technique" field.
func SlaughterTechniqueHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueIsNil applies the IsNil predicate on the "slaughter_technique" field.
func SlaughterTechniqueIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldSlaughterTechnique))
}

// SlaughterTechniqueNotNil applies the NotNil predicate on the "slaughter_technique" field.
func SlaughterTechniqueNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldSlaughterTechnique))
}

// SlaughterTechniqueEqualFold applies the EqualFold predicate on the "slaughter_technique" field.
func SlaughterTechniqueEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldSlaughterTechnique, v))
}

// SlaughterTechniqueContainsFold applies the ContainsFold predicate on the "slaughter_technique" field.
func SlaughterTechniqueContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldSlaughterTechnique, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldColor, v))
}

// ConservationEQ applies the EQ predicate on the "conservation" field.
func ConservationEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldConservation, v))
}

// ConservationNEQ applies the NEQ predicate on the "conservation" field.
func ConservationNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldConservation, v))
}

// ConservationIn applies the In predicate on the "conservation" field.
func ConservationIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldConservation, vs...))
}

// ConservationNotIn applies the NotIn predicate on the "conservation" field.
func ConservationNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldConservation, vs...))
}

// ConservationGT applies the GT predicate on the "conservation" field.
func ConservationGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldConservation, v))
}

// ConservationGTE applies the GTE predicate on the "conservation" field.
func ConservationGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldConservation, v))
}

// ConservationLT applies the LT predicate on the "conservation" field.
func ConservationLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldConservation, v))
}

// ConservationLTE applies the LTE predicate on the "conservation" field.
func ConservationLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldConservation, v))
}

// ConservationContains applies the Contains predicate on the "conservation" field.
func ConservationContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldConservation, v))
}

// ConservationHasPrefix applies the HasPrefix predicate on the "conservation" field.
func ConservationHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldConservation, v))
}

// ConservationHasSuffix applies the HasSuffix predicate on the "conservation" field.
func ConservationHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldConservation, v))
}

// ConservationIsNil applies the IsNil predicate on the "conservation" field.
func ConservationIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldConservation))
}

// ConservationNotNil applies the NotNil predicate on the "conservation" field.
func ConservationNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldConservation))
}

// ConservationEqualFold applies the EqualFold predicate on the "conservation" field.
func ConservationEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldConservation, v))
}

// ConservationContainsFold applies the ContainsFold predicate on the "conservation" field.
func ConservationContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldConservation, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldLabel, v))
}

// TrimCodeEQ applies the EQ predicate on the "trim_code" field.
func TrimCodeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldTrimCode, v))
}

// TrimCodeNEQ applies the NEQ predicate on the "trim_code" field.
func TrimCodeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldTrimCode, v))
}

// TrimCodeIn applies the In predicate on the "trim_code" field.
func TrimCodeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldTrimCode, vs...))
}

// TrimCodeNotIn applies the NotIn predicate on the "trim_code" field.
func TrimCodeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldTrimCode, vs...))
}

// TrimCodeGT applies the GT predicate on the "trim_code" field.
func TrimCodeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldTrimCode, v))
}

// TrimCodeGTE applies the GTE predicate on the "trim_code" field.
func TrimCodeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldTrimCode, v))
}

// TrimCodeLT applies the LT predicate on the "trim_code" field.
func TrimCodeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldTrimCode, v))
}

// TrimCodeLTE applies the LTE predicate on the "trim_code" field.
func TrimCodeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldTrimCode, v))
}

// TrimCodeContains applies the Contains predicate on the "trim_code" field.
func TrimCodeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldTrimCode, v))
}

// TrimCodeHasPrefix applies the HasPrefix predicate on the "trim_code" field.
func TrimCodeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldTrimCode, v))
}

// TrimCodeHasSuffix applies the HasSuffix predicate on the "trim_code" field.
func TrimCodeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldTrimCode, v))
}

// TrimCodeIsNil applies the IsNil predicate on the "trim_code" field.
func TrimCodeIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldTrimCode))
}

// TrimCodeNotNil applies the NotNil predicate on the "trim_code" field.
func TrimCodeNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldTrimCode))
}

// TrimCodeEqualFold applies the EqualFold predicate on the "trim_code" field.
func TrimCodeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldTrimCode, v))
}

// TrimCodeContainsFold applies the ContainsFold predicate on the "trim_code" field.
func TrimCodeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldTrimCode, v))
}

// RawInfoEQ applies the EQ predicate on the "raw_info" field.
func RawInfoEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldRawInfo, v))
}

// RawInfoNEQ applies the NEQ predicate on the "raw_info" field.
func RawInfoNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldRawInfo, v))
}

// RawInfoIn applies the In predicate on the "raw_info" field.
func RawInfoIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldRawInfo, vs...))
}

// RawInfoNotIn applies the NotIn predicate on the "raw_info" field.
func RawInfoNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldRawInfo, vs...))
}

// RawInfoGT applies the GT predicate on the "raw_info" field.
func RawInfoGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldRawInfo, v))
}

// RawInfoGTE applies the GTE predicate on the "raw_info" field.
func RawInfoGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldRawInfo, v))
}

// RawInfoLT applies the LT predicate on the "raw_info" field.
func RawInfoLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldRawInfo, v))
}

// RawInfoLTE applies the LTE predicate on the "raw_info" field.
func RawInfoLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldRawInfo, v))
}

// RawInfoContains applies the Contains predicate on the "raw_info" field.
func RawInfoContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldRawInfo, v))
}

// RawInfoHasPrefix applies the HasPrefix predicate on the "raw_info" field.
func RawInfoHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldRawInfo, v))
}

// RawInfoHasSuffix applies the HasSuffix predicate on the "raw_info" field.
func RawInfoHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldRawInfo, v))
}

// RawInfoIsNil applies the IsNil predicate on the "raw_info" field.
func RawInfoIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldRawInfo))
}

// RawInfoNotNil applies the NotNil predicate on the "raw_info" field.
func RawInfoNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldRawInfo))
}

// RawInfoEqualFold applies the EqualFold predicate on the "raw_info" field.
func RawInfoEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldRawInfo, v))
}

// RawInfoContainsFold applies the ContainsFold predicate on the "raw_info" field.
func RawInfoContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldRawInfo, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.PriceRecord {
	return predicate.PriceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ImportJob) predicate.PriceRecord {
	return predicate.PriceRecord(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.NotPredicates(p))
}
