// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/predicate"
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
)

// PriceRecordUpdate is the builder for updating PriceRecord entities.
type PriceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PriceRecordMutation
}

// Where appends a list predicates to the PriceRecordUpdate builder.
func (_u *PriceRecordUpdate) Where(ps ...predicate.PriceRecord) *PriceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKeyDate sets the "key_date" field.
func (_u *PriceRecordUpdate) SetKeyDate(v string) *PriceRecordUpdate {
	_u.mutation.SetKeyDate(v)
	return _u
}

// SetNillableKeyDate sets the "key_date" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableKeyDate(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetKeyDate(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *PriceRecordUpdate) SetVendor(v string) *PriceRecordUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableVendor(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetProviderCode sets the "provider_code" field.
func (_u *PriceRecordUpdate) SetProviderCode(v string) *PriceRecordUpdate {
	_u.mutation.SetProviderCode(v)
	return _u
}

// SetNillableProviderCode sets the "provider_code" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableProviderCode(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetProviderCode(*v)
	}
	return _u
}

// SetPriceDate sets the "price_date" field.
func (_u *PriceRecordUpdate) SetPriceDate(v time.Time) *PriceRecordUpdate {
	_u.mutation.SetPriceDate(v)
	return _u
}

// SetNillablePriceDate sets the "price_date" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillablePriceDate(v *time.Time) *PriceRecordUpdate {
	if v != nil {
		_u.SetPriceDate(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PriceRecordUpdate) SetJobID(v uuid.UUID) *PriceRecordUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableJobID(v *uuid.UUID) *PriceRecordUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PriceRecordUpdate) ClearJobID() *PriceRecordUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetProduct sets the "product" field.
func (_u *PriceRecordUpdate) SetProduct(v string) *PriceRecordUpdate {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableProduct(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PriceRecordUpdate) SetCategory(v string) *PriceRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCategory(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PriceRecordUpdate) ClearCategory() *PriceRecordUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetPrice sets the "price" field.
func (_u *PriceRecordUpdate) SetPrice(v float64) *PriceRecordUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillablePrice(v *float64) *PriceRecordUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PriceRecordUpdate) AddPrice(v float64) *PriceRecordUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *PriceRecordUpdate) ClearPrice() *PriceRecordUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetSizeGrade sets the "size_grade" field.
func (_u *PriceRecordUpdate) SetSizeGrade(v string) *PriceRecordUpdate {
	_u.mutation.SetSizeGrade(v)
	return _u
}

// SetNillableSizeGrade sets the "size_grade" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableSizeGrade(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetSizeGrade(*v)
	}
	return _u
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (_u *PriceRecordUpdate) ClearSizeGrade() *PriceRecordUpdate {
	_u.mutation.ClearSizeGrade()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *PriceRecordUpdate) SetQuality(v string) *PriceRecordUpdate {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableQuality(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// ClearQuality clears the value of the "quality" field.
func (_u *PriceRecordUpdate) ClearQuality() *PriceRecordUpdate {
	_u.mutation.ClearQuality()
	return _u
}

// SetCatchMethod sets the "catch_method" field.
func (_u *PriceRecordUpdate) SetCatchMethod(v string) *PriceRecordUpdate {
	_u.mutation.SetCatchMethod(v)
	return _u
}

// SetNillableCatchMethod sets the "catch_method" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCatchMethod(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetCatchMethod(*v)
	}
	return _u
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (_u *PriceRecordUpdate) ClearCatchMethod() *PriceRecordUpdate {
	_u.mutation.ClearCatchMethod()
	return _u
}

// SetCut sets the "cut" field.
func (_u *PriceRecordUpdate) SetCut(v string) *PriceRecordUpdate {
	_u.mutation.SetCut(v)
	return _u
}

// SetNillableCut sets the "cut" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCut(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetCut(*v)
	}
	return _u
}

// ClearCut clears the value of the "cut" field.
func (_u *PriceRecordUpdate) ClearCut() *PriceRecordUpdate {
	_u.mutation.ClearCut()
	return _u
}

// SetState sets the "state" field.
func (_u *PriceRecordUpdate) SetState(v string) *PriceRecordUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableState(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *PriceRecordUpdate) ClearState() *PriceRecordUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *PriceRecordUpdate) SetOrigin(v string) *PriceRecordUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableOrigin(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *PriceRecordUpdate) ClearOrigin() *PriceRecordUpdate {
	_u.mutation.ClearOrigin()
	return _u
}

// SetProductionType sets the "production_type" field.
func (_u *PriceRecordUpdate) SetProductionType(v string) *PriceRecordUpdate {
	_u.mutation.SetProductionType(v)
	return _u
}

// SetNillableProductionType sets the "production_type" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableProductionType(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetProductionType(*v)
	}
	return _u
}

// ClearProductionType clears the value of the "production_type" field.
func (_u *PriceRecordUpdate) ClearProductionType() *PriceRecordUpdate {
	_u.mutation.ClearProductionType()
	return _u
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (_u *PriceRecordUpdate) SetSlaughterTechnique(v string) *PriceRecordUpdate {
	_u.mutation.SetSlaughterTechnique(v)
	return _u
}

// SetNillableSlaughterTechnique sets the "slaughter_technique" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableSlaughterTechnique(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetSlaughterTechnique(*v)
	}
	return _u
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (_u *PriceRecordUpdate) ClearSlaughterTechnique() *PriceRecordUpdate {
	_u.mutation.ClearSlaughterTechnique()
	return _u
}

// SetColor sets the "color" field.
func (_u *PriceRecordUpdate) SetColor(v string) *PriceRecordUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableColor(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *PriceRecordUpdate) ClearColor() *PriceRecordUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetConservation sets the "conservation" field.
func (_u *PriceRecordUpdate) SetConservation(v string) *PriceRecordUpdate {
	_u.mutation.SetConservation(v)
	return _u
}

// SetNillableConservation sets the "conservation" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableConservation(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetConservation(*v)
	}
	return _u
}

// ClearConservation clears the value of the "conservation" field.
func (_u *PriceRecordUpdate) ClearConservation() *PriceRecordUpdate {
	_u.mutation.ClearConservation()
	return _u
}

// SetLabel sets the "label" field.
func (_u *PriceRecordUpdate) SetLabel(v string) *PriceRecordUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableLabel(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *PriceRecordUpdate) ClearLabel() *PriceRecordUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetTrimCode sets the "trim_code" field.
func (_u *PriceRecordUpdate) SetTrimCode(v string) *PriceRecordUpdate {
	_u.mutation.SetTrimCode(v)
	return _u
}

// SetNillableTrimCode sets the "trim_code" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableTrimCode(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetTrimCode(*v)
	}
	return _u
}

// ClearTrimCode clears the value of the "trim_code" field.
func (_u *PriceRecordUpdate) ClearTrimCode() *PriceRecordUpdate {
	_u.mutation.ClearTrimCode()
	return _u
}

// SetRawInfo sets the "raw_info" field.
func (_u *PriceRecordUpdate) SetRawInfo(v string) *PriceRecordUpdate {
	_u.mutation.SetRawInfo(v)
	return _u
}

// SetNillableRawInfo sets the "raw_info" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableRawInfo(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetRawInfo(*v)
	}
	return _u
}

// ClearRawInfo clears the value of the "raw_info" field.
func (_u *PriceRecordUpdate) ClearRawInfo() *PriceRecordUpdate {
	_u.mutation.ClearRawInfo()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceRecordUpdate) SetCreatedAt(v time.Time) *PriceRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCreatedAt(v *time.Time) *PriceRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PriceRecordUpdate) SetUpdatedAt(v time.Time) *PriceRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_u *PriceRecordUpdate) SetJob(v *ImportJob) *PriceRecordUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_u *PriceRecordUpdate) Mutation() *PriceRecordMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (_u *PriceRecordUpdate) ClearJob() *PriceRecordUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PriceRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PriceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PriceRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceRecordUpdate) check() error {
	if v, ok := _u.mutation.KeyDate(); ok {
		if err := pricerecord.KeyDateValidator(v); err != nil {
			return &ValidationError{Name: "key_date", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.key_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vendor(); ok {
		if err := pricerecord.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderCode(); ok {
		if err := pricerecord.ProviderCodeValidator(v); err != nil {
			return &ValidationError{Name: "provider_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.provider_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := pricerecord.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.product": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricerecord.Table, pricerecord.Columns, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeyDate(); ok {
		_spec.SetField(pricerecord.FieldKeyDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(pricerecord.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderCode(); ok {
		_spec.SetField(pricerecord.FieldProviderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceDate(); ok {
		_spec.SetField(pricerecord.FieldPriceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(pricerecord.FieldProduct, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pricerecord.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pricerecord.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(pricerecord.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(pricerecord.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(pricerecord.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SizeGrade(); ok {
		_spec.SetField(pricerecord.FieldSizeGrade, field.TypeString, value)
	}
	if _u.mutation.SizeGradeCleared() {
		_spec.ClearField(pricerecord.FieldSizeGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(pricerecord.FieldQuality, field.TypeString, value)
	}
	if _u.mutation.QualityCleared() {
		_spec.ClearField(pricerecord.FieldQuality, field.TypeString)
	}
	if value, ok := _u.mutation.CatchMethod(); ok {
		_spec.SetField(pricerecord.FieldCatchMethod, field.TypeString, value)
	}
	if _u.mutation.CatchMethodCleared() {
		_spec.ClearField(pricerecord.FieldCatchMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Cut(); ok {
		_spec.SetField(pricerecord.FieldCut, field.TypeString, value)
	}
	if _u.mutation.CutCleared() {
		_spec.ClearField(pricerecord.FieldCut, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pricerecord.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(pricerecord.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(pricerecord.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(pricerecord.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.ProductionType(); ok {
		_spec.SetField(pricerecord.FieldProductionType, field.TypeString, value)
	}
	if _u.mutation.ProductionTypeCleared() {
		_spec.ClearField(pricerecord.FieldProductionType, field.TypeString)
	}
	if value, ok := _u.mutation.SlaughterTechnique(); ok {
		_spec.SetField(pricerecord.FieldSlaughterTechnique, field.TypeString, value)
	}
	if _u.mutation.SlaughterTechniqueCleared() {
		_spec.ClearField(pricerecord.FieldSlaughterTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(pricerecord.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(pricerecord.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conservation(); ok {
		_spec.SetField(pricerecord.FieldConservation, field.TypeString, value)
	}
	if _u.mutation.ConservationCleared() {
		_spec.ClearField(pricerecord.FieldConservation, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(pricerecord.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(pricerecord.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.TrimCode(); ok {
		_spec.SetField(pricerecord.FieldTrimCode, field.TypeString, value)
	}
	if _u.mutation.TrimCodeCleared() {
		_spec.ClearField(pricerecord.FieldTrimCode, field.TypeString)
	}
	if value, ok := _u.mutation.RawInfo(); ok {
		_spec.SetField(pricerecord.FieldRawInfo, field.TypeString, value)
	}
	if _u.mutation.RawInfoCleared() {
		_spec.ClearField(pricerecord.FieldRawInfo, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricerecord.JobTable,
			Columns: []string{pricerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricerecord.JobTable,
			Columns: []string{pricerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PriceRecordUpdateOne is the builder for updating a single PriceRecord entity.
type PriceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PriceRecordMutation
}

// SetKeyDate sets the "key_date" field.
func (_u *PriceRecordUpdateOne) SetKeyDate(v string) *PriceRecordUpdateOne {
	_u.mutation.SetKeyDate(v)
	return _u
}

// SetNillableKeyDate sets the "key_date" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableKeyDate(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetKeyDate(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *PriceRecordUpdateOne) SetVendor(v string) *PriceRecordUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableVendor(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetProviderCode sets the "provider_code" field.
func (_u *PriceRecordUpdateOne) SetProviderCode(v string) *PriceRecordUpdateOne {
	_u.mutation.SetProviderCode(v)
	return _u
}

// SetNillableProviderCode sets the "provider_code" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableProviderCode(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetProviderCode(*v)
	}
	return _u
}

// SetPriceDate sets the "price_date" field.
func (_u *PriceRecordUpdateOne) SetPriceDate(v time.Time) *PriceRecordUpdateOne {
	_u.mutation.SetPriceDate(v)
	return _u
}

// SetNillablePriceDate sets the "price_date" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillablePriceDate(v *time.Time) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetPriceDate(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PriceRecordUpdateOne) SetJobID(v uuid.UUID) *PriceRecordUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableJobID(v *uuid.UUID) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PriceRecordUpdateOne) ClearJobID() *PriceRecordUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetProduct sets the "product" field.
func (_u *PriceRecordUpdateOne) SetProduct(v string) *PriceRecordUpdateOne {
	_u.mutation.SetProduct(v)
	return _u
}

// SetNillableProduct sets the "product" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableProduct(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetProduct(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PriceRecordUpdateOne) SetCategory(v string) *PriceRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCategory(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PriceRecordUpdateOne) ClearCategory() *PriceRecordUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetPrice sets the "price" field.
func (_u *PriceRecordUpdateOne) SetPrice(v float64) *PriceRecordUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillablePrice(v *float64) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PriceRecordUpdateOne) AddPrice(v float64) *PriceRecordUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *PriceRecordUpdateOne) ClearPrice() *PriceRecordUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetSizeGrade sets the "size_grade" field.
func (_u *PriceRecordUpdateOne) SetSizeGrade(v string) *PriceRecordUpdateOne {
	_u.mutation.SetSizeGrade(v)
	return _u
}

// SetNillableSizeGrade sets the "size_grade" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableSizeGrade(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetSizeGrade(*v)
	}
	return _u
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (_u *PriceRecordUpdateOne) ClearSizeGrade() *PriceRecordUpdateOne {
	_u.mutation.ClearSizeGrade()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *PriceRecordUpdateOne) SetQuality(v string) *PriceRecordUpdateOne {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableQuality(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// ClearQuality clears the value of the "quality" field.
func (_u *PriceRecordUpdateOne) ClearQuality() *PriceRecordUpdateOne {
	_u.mutation.ClearQuality()
	return _u
}

// SetCatchMethod sets the "catch_method" field.
func (_u *PriceRecordUpdateOne) SetCatchMethod(v string) *PriceRecordUpdateOne {
	_u.mutation.SetCatchMethod(v)
	return _u
}

// SetNillableCatchMethod sets the "catch_method" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCatchMethod(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCatchMethod(*v)
	}
	return _u
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (_u *PriceRecordUpdateOne) ClearCatchMethod() *PriceRecordUpdateOne {
	_u.mutation.ClearCatchMethod()
	return _u
}

// SetCut sets the "cut" field.
func (_u *PriceRecordUpdateOne) SetCut(v string) *PriceRecordUpdateOne {
	_u.mutation.SetCut(v)
	return _u
}

// SetNillableCut sets the "cut" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCut(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCut(*v)
	}
	return _u
}

// ClearCut clears the value of the "cut" field.
func (_u *PriceRecordUpdateOne) ClearCut() *PriceRecordUpdateOne {
	_u.mutation.ClearCut()
	return _u
}

// SetState sets the "state" field.
func (_u *PriceRecordUpdateOne) SetState(v string) *PriceRecordUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableState(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *PriceRecordUpdateOne) ClearState() *PriceRecordUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *PriceRecordUpdateOne) SetOrigin(v string) *PriceRecordUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableOrigin(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// ClearOrigin clears the value of the "origin" field.
func (_u *PriceRecordUpdateOne) ClearOrigin() *PriceRecordUpdateOne {
	_u.mutation.ClearOrigin()
	return _u
}

// SetProductionType sets the "production_type" field.
func (_u *PriceRecordUpdateOne) SetProductionType(v string) *PriceRecordUpdateOne {
	_u.mutation.SetProductionType(v)
	return _u
}

// SetNillableProductionType sets the "production_type" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableProductionType(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetProductionType(*v)
	}
	return _u
}

// ClearProductionType clears the value of the "production_type" field.
func (_u *PriceRecordUpdateOne) ClearProductionType() *PriceRecordUpdateOne {
	_u.mutation.ClearProductionType()
	return _u
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (_u *PriceRecordUpdateOne) SetSlaughterTechnique(v string) *PriceRecordUpdateOne {
	_u.mutation.SetSlaughterTechnique(v)
	return _u
}

// SetNillableSlaughterTechnique sets the "slaughter_technique" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableSlaughterTechnique(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetSlaughterTechnique(*v)
	}
	return _u
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (_u *PriceRecordUpdateOne) ClearSlaughterTechnique() *PriceRecordUpdateOne {
	_u.mutation.ClearSlaughterTechnique()
	return _u
}

// SetColor sets the "color" field.
func (_u *PriceRecordUpdateOne) SetColor(v string) *PriceRecordUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableColor(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *PriceRecordUpdateOne) ClearColor() *PriceRecordUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetConservation sets the "conservation" field.
func (_u *PriceRecordUpdateOne) SetConservation(v string) *PriceRecordUpdateOne {
	_u.mutation.SetConservation(v)
	return _u
}

// SetNillableConservation sets the "conservation" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableConservation(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetConservation(*v)
	}
	return _u
}

// ClearConservation clears the value of the "conservation" field.
func (_u *PriceRecordUpdateOne) ClearConservation() *PriceRecordUpdateOne {
	_u.mutation.ClearConservation()
	return _u
}

// SetLabel sets the "label" field.
func (_u *PriceRecordUpdateOne) SetLabel(v string) *PriceRecordUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableLabel(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *PriceRecordUpdateOne) ClearLabel() *PriceRecordUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetTrimCode sets the "trim_code" field.
func (_u *PriceRecordUpdateOne) SetTrimCode(v string) *PriceRecordUpdateOne {
	_u.mutation.SetTrimCode(v)
	return _u
}

// SetNillableTrimCode sets the "trim_code" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableTrimCode(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetTrimCode(*v)
	}
	return _u
}

// ClearTrimCode clears the value of the "trim_code" field.
func (_u *PriceRecordUpdateOne) ClearTrimCode() *PriceRecordUpdateOne {
	_u.mutation.ClearTrimCode()
	return _u
}

// SetRawInfo sets the "raw_info" field.
func (_u *PriceRecordUpdateOne) SetRawInfo(v string) *PriceRecordUpdateOne {
	_u.mutation.SetRawInfo(v)
	return _u
}

// SetNillableRawInfo sets the "raw_info" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableRawInfo(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetRawInfo(*v)
	}
	return _u
}

// ClearRawInfo clears the value of the "raw_info" field.
func (_u *PriceRecordUpdateOne) ClearRawInfo() *PriceRecordUpdateOne {
	_u.mutation.ClearRawInfo()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceRecordUpdateOne) SetCreatedAt(v time.Time) *PriceRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PriceRecordUpdateOne) SetUpdatedAt(v time.Time) *PriceRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_u *PriceRecordUpdateOne) SetJob(v *ImportJob) *PriceRecordUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_u *PriceRecordUpdateOne) Mutation() *PriceRecordMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (_u *PriceRecordUpdateOne) ClearJob() *PriceRecordUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the PriceRecordUpdate builder.
func (_u *PriceRecordUpdateOne) Where(ps ...predicate.PriceRecord) *PriceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PriceRecordUpdateOne) Select(field string, fields ...string) *PriceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PriceRecord entity.
func (_u *PriceRecordUpdateOne) Save(ctx context.Context) (*PriceRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceRecordUpdateOne) SaveX(ctx context.Context) *PriceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PriceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PriceRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.KeyDate(); ok {
		if err := pricerecord.KeyDateValidator(v); err != nil {
			return &ValidationError{Name: "key_date", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.key_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vendor(); ok {
		if err := pricerecord.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderCode(); ok {
		if err := pricerecord.ProviderCodeValidator(v); err != nil {
			return &ValidationError{Name: "provider_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.provider_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Product(); ok {
		if err := pricerecord.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.product": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceRecordUpdateOne) sqlSave(ctx context.Context) (_node *PriceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricerecord.Table, pricerecord.Columns, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PriceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pricerecord.FieldID)
		for _, f := range fields {
			if !pricerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pricerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeyDate(); ok {
		_spec.SetField(pricerecord.FieldKeyDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(pricerecord.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderCode(); ok {
		_spec.SetField(pricerecord.FieldProviderCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceDate(); ok {
		_spec.SetField(pricerecord.FieldPriceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Product(); ok {
		_spec.SetField(pricerecord.FieldProduct, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pricerecord.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pricerecord.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(pricerecord.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(pricerecord.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(pricerecord.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SizeGrade(); ok {
		_spec.SetField(pricerecord.FieldSizeGrade, field.TypeString, value)
	}
	if _u.mutation.SizeGradeCleared() {
		_spec.ClearField(pricerecord.FieldSizeGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(pricerecord.FieldQuality, field.TypeString, value)
	}
	if _u.mutation.QualityCleared() {
		_spec.ClearField(pricerecord.FieldQuality, field.TypeString)
	}
	if value, ok := _u.mutation.CatchMethod(); ok {
		_spec.SetField(pricerecord.FieldCatchMethod, field.TypeString, value)
	}
	if _u.mutation.CatchMethodCleared() {
		_spec.ClearField(pricerecord.FieldCatchMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Cut(); ok {
		_spec.SetField(pricerecord.FieldCut, field.TypeString, value)
	}
	if _u.mutation.CutCleared() {
		_spec.ClearField(pricerecord.FieldCut, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pricerecord.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(pricerecord.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(pricerecord.FieldOrigin, field.TypeString, value)
	}
	if _u.mutation.OriginCleared() {
		_spec.ClearField(pricerecord.FieldOrigin, field.TypeString)
	}
	if value, ok := _u.mutation.ProductionType(); ok {
		_spec.SetField(pricerecord.FieldProductionType, field.TypeString, value)
	}
	if _u.mutation.ProductionTypeCleared() {
		_spec.ClearField(pricerecord.FieldProductionType, field.TypeString)
	}
	if value, ok := _u.mutation.SlaughterTechnique(); ok {
		_spec.SetField(pricerecord.FieldSlaughterTechnique, field.TypeString, value)
	}
	if _u.mutation.SlaughterTechniqueCleared() {
		_spec.ClearField(pricerecord.FieldSlaughterTechnique, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(pricerecord.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(pricerecord.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conservation(); ok {
		_spec.SetField(pricerecord.FieldConservation, field.TypeString, value)
	}
	if _u.mutation.ConservationCleared() {
		_spec.ClearField(pricerecord.FieldConservation, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(pricerecord.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(pricerecord.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.TrimCode(); ok {
		_spec.SetField(pricerecord.FieldTrimCode, field.TypeString, value)
	}
	if _u.mutation.TrimCodeCleared() {
		_spec.ClearField(pricerecord.FieldTrimCode, field.TypeString)
	}
	if value, ok := _u.mutation.RawInfo(); ok {
		_spec.SetField(pricerecord.FieldRawInfo, field.TypeString, value)
	}
	if _u.mutation.RawInfoCleared() {
		_spec.ClearField(pricerecord.FieldRawInfo, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricerecord.JobTable,
			Columns: []string{pricerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricerecord.JobTable,
			Columns: []string{pricerecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PriceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
