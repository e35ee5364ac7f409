// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
)

// PriceRecordCreate is the builder for creating a PriceRecord entity.
type PriceRecordCreate struct {
	config
	mutation *PriceRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKeyDate sets the "key_date" field.
func (_c *PriceRecordCreate) SetKeyDate(v string) *PriceRecordCreate {
	_c.mutation.SetKeyDate(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *PriceRecordCreate) SetVendor(v string) *PriceRecordCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetProviderCode sets the "provider_code" field.
func (_c *PriceRecordCreate) SetProviderCode(v string) *PriceRecordCreate {
	_c.mutation.SetProviderCode(v)
	return _c
}

// SetPriceDate sets the "price_date" field.
func (_c *PriceRecordCreate) SetPriceDate(v time.Time) *PriceRecordCreate {
	_c.mutation.SetPriceDate(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *PriceRecordCreate) SetJobID(v uuid.UUID) *PriceRecordCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableJobID(v *uuid.UUID) *PriceRecordCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetProduct sets the "product" field.
func (_c *PriceRecordCreate) SetProduct(v string) *PriceRecordCreate {
	_c.mutation.SetProduct(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PriceRecordCreate) SetCategory(v string) *PriceRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCategory(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *PriceRecordCreate) SetPrice(v float64) *PriceRecordCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillablePrice(v *float64) *PriceRecordCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetSizeGrade sets the "size_grade" field.
func (_c *PriceRecordCreate) SetSizeGrade(v string) *PriceRecordCreate {
	_c.mutation.SetSizeGrade(v)
	return _c
}

// SetNillableSizeGrade sets the "size_grade" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableSizeGrade(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetSizeGrade(*v)
	}
	return _c
}

// SetQuality sets the "quality" field.
func (_c *PriceRecordCreate) SetQuality(v string) *PriceRecordCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableQuality(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetQuality(*v)
	}
	return _c
}

// SetCatchMethod sets the "catch_method" field.
func (_c *PriceRecordCreate) SetCatchMethod(v string) *PriceRecordCreate {
	_c.mutation.SetCatchMethod(v)
	return _c
}

// SetNillableCatchMethod sets the "catch_method" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCatchMethod(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetCatchMethod(*v)
	}
	return _c
}

// SetCut sets the "cut" field.
func (_c *PriceRecordCreate) SetCut(v string) *PriceRecordCreate {
	_c.mutation.SetCut(v)
	return _c
}

// SetNillableCut sets the "cut" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCut(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetCut(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PriceRecordCreate) SetState(v string) *PriceRecordCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableState(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *PriceRecordCreate) SetOrigin(v string) *PriceRecordCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableOrigin(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetProductionType sets the "production_type" field.
func (_c *PriceRecordCreate) SetProductionType(v string) *PriceRecordCreate {
	_c.mutation.SetProductionType(v)
	return _c
}

// SetNillableProductionType sets the "production_type" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableProductionType(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetProductionType(*v)
	}
	return _c
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (_c *PriceRecordCreate) SetSlaughterTechnique(v string) *PriceRecordCreate {
	_c.mutation.SetSlaughterTechnique(v)
	return _c
}

// SetNillableSlaughterTechnique sets the "slaughter_technique" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableSlaughterTechnique(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetSlaughterTechnique(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *PriceRecordCreate) SetColor(v string) *PriceRecordCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableColor(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetConservation sets the "conservation" field.
func (_c *PriceRecordCreate) SetConservation(v string) *PriceRecordCreate {
	_c.mutation.SetConservation(v)
	return _c
}

// SetNillableConservation sets the "conservation" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableConservation(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetConservation(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *PriceRecordCreate) SetLabel(v string) *PriceRecordCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableLabel(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetTrimCode sets the "trim_code" field.
func (_c *PriceRecordCreate) SetTrimCode(v string) *PriceRecordCreate {
	_c.mutation.SetTrimCode(v)
	return _c
}

// SetNillableTrimCode sets the "trim_code" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableTrimCode(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetTrimCode(*v)
	}
	return _c
}

// SetRawInfo sets the "raw_info" field.
func (_c *PriceRecordCreate) SetRawInfo(v string) *PriceRecordCreate {
	_c.mutation.SetRawInfo(v)
	return _c
}

// SetNillableRawInfo sets the "raw_info" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableRawInfo(v *string) *PriceRecordCreate {
	if v != nil {
		_c.SetRawInfo(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PriceRecordCreate) SetCreatedAt(v time.Time) *PriceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCreatedAt(v *time.Time) *PriceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PriceRecordCreate) SetUpdatedAt(v time.Time) *PriceRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableUpdatedAt(v *time.Time) *PriceRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PriceRecordCreate) SetID(v uuid.UUID) *PriceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableID(v *uuid.UUID) *PriceRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ImportJob entity.
func (_c *PriceRecordCreate) SetJob(v *ImportJob) *PriceRecordCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_c *PriceRecordCreate) Mutation() *PriceRecordMutation {
	return _c.mutation
}

// Save creates the PriceRecord in the database.
func (_c *PriceRecordCreate) Save(ctx context.Context) (*PriceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PriceRecordCreate) SaveX(ctx context.Context) *PriceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PriceRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pricerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pricerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pricerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PriceRecordCreate) check() error {
	if _, ok := _c.mutation.KeyDate(); !ok {
		return &ValidationError{Name: "key_date", err: errors.New(`ent: missing required field "PriceRecord.key_date"`)}
	}
	if v, ok := _c.mutation.KeyDate(); ok {
		if err := pricerecord.KeyDateValidator(v); err != nil {
			return &ValidationError{Name: "key_date", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.key_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "PriceRecord.vendor"`)}
	}
	if v, ok := _c.mutation.Vendor(); ok {
		if err := pricerecord.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.vendor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderCode(); !ok {
		return &ValidationError{Name: "provider_code", err: errors.New(`ent: missing required field "PriceRecord.provider_code"`)}
	}
	if v, ok := _c.mutation.ProviderCode(); ok {
		if err := pricerecord.ProviderCodeValidator(v); err != nil {
			return &ValidationError{Name: "provider_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.provider_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceDate(); !ok {
		return &ValidationError{Name: "price_date", err: errors.New(`ent: missing required field "PriceRecord.price_date"`)}
	}
	if _, ok := _c.mutation.Product(); !ok {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required field "PriceRecord.product"`)}
	}
	if v, ok := _c.mutation.Product(); ok {
		if err := pricerecord.ProductValidator(v); err != nil {
			return &ValidationError{Name: "product", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.product": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PriceRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PriceRecord.updated_at"`)}
	}
	return nil
}

func (_c *PriceRecordCreate) sqlSave(ctx context.Context) (*PriceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PriceRecordCreate) createSpec() (*PriceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PriceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricerecord.Table, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.KeyDate(); ok {
		_spec.SetField(pricerecord.FieldKeyDate, field.TypeString, value)
		_node.KeyDate = value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(pricerecord.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.ProviderCode(); ok {
		_spec.SetField(pricerecord.FieldProviderCode, field.TypeString, value)
		_node.ProviderCode = value
	}
	if value, ok := _c.mutation.PriceDate(); ok {
		_spec.SetField(pricerecord.FieldPriceDate, field.TypeTime, value)
		_node.PriceDate = value
	}
	if value, ok := _c.mutation.Product(); ok {
		_spec.SetField(pricerecord.FieldProduct, field.TypeString, value)
		_node.Product = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(pricerecord.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(pricerecord.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.SizeGrade(); ok {
		_spec.SetField(pricerecord.FieldSizeGrade, field.TypeString, value)
		_node.SizeGrade = &value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(pricerecord.FieldQuality, field.TypeString, value)
		_node.Quality = &value
	}
	if value, ok := _c.mutation.CatchMethod(); ok {
		_spec.SetField(pricerecord.FieldCatchMethod, field.TypeString, value)
		_node.CatchMethod = &value
	}
	if value, ok := _c.mutation.Cut(); ok {
		_spec.SetField(pricerecord.FieldCut, field.TypeString, value)
		_node.Cut = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(pricerecord.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(pricerecord.FieldOrigin, field.TypeString, value)
		_node.Origin = &value
	}
	if value, ok := _c.mutation.ProductionType(); ok {
		_spec.SetField(pricerecord.FieldProductionType, field.TypeString, value)
		_node.ProductionType = &value
	}
	if value, ok := _c.mutation.SlaughterTechnique(); ok {
		_spec.SetField(pricerecord.FieldSlaughterTechnique, field.TypeString, value)
		_node.SlaughterTechnique = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(pricerecord.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.Conservation(); ok {
		_spec.SetField(pricerecord.FieldConservation, field.TypeString, value)
		_node.Conservation = &value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(pricerecord.FieldLabel, field.TypeString, value)
		_node.Label = &value
	}
	if value, ok := _c.mutation.TrimCode(); ok {
		_spec.SetField(pricerecord.FieldTrimCode, field.TypeString, value)
		_node.TrimCode = &value
	}
	if value, ok := _c.mutation.RawInfo(); ok {
		_spec.SetField(pricerecord.FieldRawInfo, field.TypeString, value)
		_node.RawInfo = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pricerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PriceRecord.Create().
//		SetKeyDate(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PriceRecordUpsert) {
//			SetKeyDate(v+v).
//		}).
//		Exec(ctx)
func (_c *PriceRecordCreate) OnConflict(opts ...sql.ConflictOption) *PriceRecordUpsertOne {
	_c.conflict = opts
	return &PriceRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PriceRecordCreate) OnConflictColumns(columns ...string) *PriceRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PriceRecordUpsertOne{
		create: _c,
	}
}

type (
	// PriceRecordUpsertOne is the builder for "upsert"-ing
	//  one PriceRecord node.
	PriceRecordUpsertOne struct {
		create *PriceRecordCreate
	}

	// PriceRecordUpsert is the "OnConflict" setter.
	PriceRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetKeyDate sets the "key_date" field.
func (u *PriceRecordUpsert) SetKeyDate(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldKeyDate, v)
	return u
}

// UpdateKeyDate sets the "key_date" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateKeyDate() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldKeyDate)
	return u
}

// SetVendor sets the "vendor" field.
func (u *PriceRecordUpsert) SetVendor(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateVendor() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldVendor)
	return u
}

// SetProviderCode sets the "provider_code" field.
func (u *PriceRecordUpsert) SetProviderCode(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldProviderCode, v)
	return u
}

// UpdateProviderCode sets the "provider_code" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateProviderCode() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldProviderCode)
	return u
}

// SetPriceDate sets the "price_date" field.
func (u *PriceRecordUpsert) SetPriceDate(v time.Time) *PriceRecordUpsert {
	u.Set(pricerecord.FieldPriceDate, v)
	return u
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdatePriceDate() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldPriceDate)
	return u
}

// SetJobID sets the "job_id" field.
func (u *PriceRecordUpsert) SetJobID(v uuid.UUID) *PriceRecordUpsert {
	u.Set(pricerecord.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateJobID() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *PriceRecordUpsert) ClearJobID() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldJobID)
	return u
}

// SetProduct sets the "product" field.
func (u *PriceRecordUpsert) SetProduct(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldProduct, v)
	return u
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateProduct() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldProduct)
	return u
}

// SetCategory sets the "category" field.
func (u *PriceRecordUpsert) SetCategory(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateCategory() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *PriceRecordUpsert) ClearCategory() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldCategory)
	return u
}

// SetPrice sets the "price" field.
func (u *PriceRecordUpsert) SetPrice(v float64) *PriceRecordUpsert {
	u.Set(pricerecord.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdatePrice() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *PriceRecordUpsert) AddPrice(v float64) *PriceRecordUpsert {
	u.Add(pricerecord.FieldPrice, v)
	return u
}

// ClearPrice clears the value of the "price" field.
func (u *PriceRecordUpsert) ClearPrice() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldPrice)
	return u
}

// SetSizeGrade sets the "size_grade" field.
func (u *PriceRecordUpsert) SetSizeGrade(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldSizeGrade, v)
	return u
}

// UpdateSizeGrade sets the "size_grade" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateSizeGrade() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldSizeGrade)
	return u
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (u *PriceRecordUpsert) ClearSizeGrade() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldSizeGrade)
	return u
}

// SetQuality sets the "quality" field.
func (u *PriceRecordUpsert) SetQuality(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldQuality, v)
	return u
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateQuality() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldQuality)
	return u
}

// ClearQuality clears the value of the "quality" field.
func (u *PriceRecordUpsert) ClearQuality() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldQuality)
	return u
}

// SetCatchMethod sets the "catch_method" field.
func (u *PriceRecordUpsert) SetCatchMethod(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldCatchMethod, v)
	return u
}

// UpdateCatchMethod sets the "catch_method" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateCatchMethod() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldCatchMethod)
	return u
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (u *PriceRecordUpsert) ClearCatchMethod() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldCatchMethod)
	return u
}

// SetCut sets the "cut" field.
func (u *PriceRecordUpsert) SetCut(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldCut, v)
	return u
}

// UpdateCut sets the "cut" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateCut() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldCut)
	return u
}

// ClearCut clears the value of the "cut" field.
func (u *PriceRecordUpsert) ClearCut() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldCut)
	return u
}

// SetState sets the "state" field.
func (u *PriceRecordUpsert) SetState(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateState() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *PriceRecordUpsert) ClearState() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldState)
	return u
}

// SetOrigin sets the "origin" field.
func (u *PriceRecordUpsert) SetOrigin(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldOrigin, v)
	return u
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateOrigin() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldOrigin)
	return u
}

// ClearOrigin clears the value of the "origin" field.
func (u *PriceRecordUpsert) ClearOrigin() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldOrigin)
	return u
}

// SetProductionType sets the "production_type" field.
func (u *PriceRecordUpsert) SetProductionType(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldProductionType, v)
	return u
}

// UpdateProductionType sets the "production_type" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateProductionType() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldProductionType)
	return u
}

// ClearProductionType clears the value of the "production_type" field.
func (u *PriceRecordUpsert) ClearProductionType() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldProductionType)
	return u
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (u *PriceRecordUpsert) SetSlaughterTechnique(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldSlaughterTechnique, v)
	return u
}

// UpdateSlaughterTechnique sets the "slaughter_technique" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateSlaughterTechnique() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldSlaughterTechnique)
	return u
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (u *PriceRecordUpsert) ClearSlaughterTechnique() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldSlaughterTechnique)
	return u
}

// SetColor sets the "color" field.
func (u *PriceRecordUpsert) SetColor(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldColor, v)
	return u
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateColor() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldColor)
	return u
}

// ClearColor clears the value of the "color" field.
func (u *PriceRecordUpsert) ClearColor() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldColor)
	return u
}

// SetConservation sets the "conservation" field.
func (u *PriceRecordUpsert) SetConservation(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldConservation, v)
	return u
}

// UpdateConservation sets the "conservation" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateConservation() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldConservation)
	return u
}

// ClearConservation clears the value of the "conservation" field.
func (u *PriceRecordUpsert) ClearConservation() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldConservation)
	return u
}

// SetLabel sets the "label" field.
func (u *PriceRecordUpsert) SetLabel(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateLabel() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldLabel)
	return u
}

// ClearLabel clears the value of the "label" field.
func (u *PriceRecordUpsert) ClearLabel() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldLabel)
	return u
}

// SetTrimCode sets the "trim_code" field.
func (u *PriceRecordUpsert) SetTrimCode(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldTrimCode, v)
	return u
}

// UpdateTrimCode sets the "trim_code" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateTrimCode() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldTrimCode)
	return u
}

// ClearTrimCode clears the value of the "trim_code" field.
func (u *PriceRecordUpsert) ClearTrimCode() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldTrimCode)
	return u
}

// SetRawInfo sets the "raw_info" field.
func (u *PriceRecordUpsert) SetRawInfo(v string) *PriceRecordUpsert {
	u.Set(pricerecord.FieldRawInfo, v)
	return u
}

// UpdateRawInfo sets the "raw_info" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateRawInfo() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldRawInfo)
	return u
}

// ClearRawInfo clears the value of the "raw_info" field.
func (u *PriceRecordUpsert) ClearRawInfo() *PriceRecordUpsert {
	u.SetNull(pricerecord.FieldRawInfo)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PriceRecordUpsert) SetCreatedAt(v time.Time) *PriceRecordUpsert {
	u.Set(pricerecord.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateCreatedAt() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PriceRecordUpsert) SetUpdatedAt(v time.Time) *PriceRecordUpsert {
	u.Set(pricerecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PriceRecordUpsert) UpdateUpdatedAt() *PriceRecordUpsert {
	u.SetExcluded(pricerecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pricerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PriceRecordUpsertOne) UpdateNewValues() *PriceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pricerecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PriceRecordUpsertOne) Ignore() *PriceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PriceRecordUpsertOne) DoNothing() *PriceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PriceRecordCreate.OnConflict
// documentation for more info.
func (u *PriceRecordUpsertOne) Update(set func(*PriceRecordUpsert)) *PriceRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PriceRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyDate sets the "key_date" field.
func (u *PriceRecordUpsertOne) SetKeyDate(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetKeyDate(v)
	})
}

// UpdateKeyDate sets the "key_date" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateKeyDate() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateKeyDate()
	})
}

// SetVendor sets the "vendor" field.
func (u *PriceRecordUpsertOne) SetVendor(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateVendor() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateVendor()
	})
}

// SetProviderCode sets the "provider_code" field.
func (u *PriceRecordUpsertOne) SetProviderCode(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProviderCode(v)
	})
}

// UpdateProviderCode sets the "provider_code" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateProviderCode() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProviderCode()
	})
}

// SetPriceDate sets the "price_date" field.
func (u *PriceRecordUpsertOne) SetPriceDate(v time.Time) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetPriceDate(v)
	})
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdatePriceDate() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdatePriceDate()
	})
}

// SetJobID sets the "job_id" field.
func (u *PriceRecordUpsertOne) SetJobID(v uuid.UUID) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateJobID() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PriceRecordUpsertOne) ClearJobID() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearJobID()
	})
}

// SetProduct sets the "product" field.
func (u *PriceRecordUpsertOne) SetProduct(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateProduct() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProduct()
	})
}

// SetCategory sets the "category" field.
func (u *PriceRecordUpsertOne) SetCategory(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateCategory() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *PriceRecordUpsertOne) ClearCategory() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCategory()
	})
}

// SetPrice sets the "price" field.
func (u *PriceRecordUpsertOne) SetPrice(v float64) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PriceRecordUpsertOne) AddPrice(v float64) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdatePrice() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdatePrice()
	})
}

// ClearPrice clears the value of the "price" field.
func (u *PriceRecordUpsertOne) ClearPrice() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearPrice()
	})
}

// SetSizeGrade sets the "size_grade" field.
func (u *PriceRecordUpsertOne) SetSizeGrade(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetSizeGrade(v)
	})
}

// UpdateSizeGrade sets the "size_grade" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateSizeGrade() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateSizeGrade()
	})
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (u *PriceRecordUpsertOne) ClearSizeGrade() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearSizeGrade()
	})
}

// SetQuality sets the "quality" field.
func (u *PriceRecordUpsertOne) SetQuality(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateQuality() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateQuality()
	})
}

// ClearQuality clears the value of the "quality" field.
func (u *PriceRecordUpsertOne) ClearQuality() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearQuality()
	})
}

// SetCatchMethod sets the "catch_method" field.
func (u *PriceRecordUpsertOne) SetCatchMethod(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCatchMethod(v)
	})
}

// UpdateCatchMethod sets the "catch_method" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateCatchMethod() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCatchMethod()
	})
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (u *PriceRecordUpsertOne) ClearCatchMethod() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCatchMethod()
	})
}

// SetCut sets the "cut" field.
func (u *PriceRecordUpsertOne) SetCut(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCut(v)
	})
}

// UpdateCut sets the "cut" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateCut() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCut()
	})
}

// ClearCut clears the value of the "cut" field.
func (u *PriceRecordUpsertOne) ClearCut() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCut()
	})
}

// SetState sets the "state" field.
func (u *PriceRecordUpsertOne) SetState(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateState() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *PriceRecordUpsertOne) ClearState() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearState()
	})
}

// SetOrigin sets the "origin" field.
func (u *PriceRecordUpsertOne) SetOrigin(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateOrigin() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateOrigin()
	})
}

// ClearOrigin clears the value of the "origin" field.
func (u *PriceRecordUpsertOne) ClearOrigin() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearOrigin()
	})
}

// SetProductionType sets the "production_type" field.
func (u *PriceRecordUpsertOne) SetProductionType(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProductionType(v)
	})
}

// UpdateProductionType sets the "production_type" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateProductionType() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProductionType()
	})
}

// ClearProductionType clears the value of the "production_type" field.
func (u *PriceRecordUpsertOne) ClearProductionType() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearProductionType()
	})
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (u *PriceRecordUpsertOne) SetSlaughterTechnique(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetSlaughterTechnique(v)
	})
}

// UpdateSlaughterTechnique sets the "slaughter_technique" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateSlaughterTechnique() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateSlaughterTechnique()
	})
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (u *PriceRecordUpsertOne) ClearSlaughterTechnique() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearSlaughterTechnique()
	})
}

// SetColor sets the "color" field.
func (u *PriceRecordUpsertOne) SetColor(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateColor() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *PriceRecordUpsertOne) ClearColor() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearColor()
	})
}

// SetConservation sets the "conservation" field.
func (u *PriceRecordUpsertOne) SetConservation(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetConservation(v)
	})
}

// UpdateConservation sets the "conservation" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateConservation() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateConservation()
	})
}

// ClearConservation clears the value of the "conservation" field.
func (u *PriceRecordUpsertOne) ClearConservation() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearConservation()
	})
}

// SetLabel sets the "label" field.
func (u *PriceRecordUpsertOne) SetLabel(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateLabel() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *PriceRecordUpsertOne) ClearLabel() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearLabel()
	})
}

// SetTrimCode sets the "trim_code" field.
func (u *PriceRecordUpsertOne) SetTrimCode(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetTrimCode(v)
	})
}

// UpdateTrimCode sets the "trim_code" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateTrimCode() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateTrimCode()
	})
}

// ClearTrimCode clears the value of the "trim_code" field.
func (u *PriceRecordUpsertOne) ClearTrimCode() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearTrimCode()
	})
}

// SetRawInfo sets the "raw_info" field.
func (u *PriceRecordUpsertOne) SetRawInfo(v string) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetRawInfo(v)
	})
}

// UpdateRawInfo sets the "raw_info" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateRawInfo() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateRawInfo()
	})
}

// ClearRawInfo clears the value of the "raw_info" field.
func (u *PriceRecordUpsertOne) ClearRawInfo() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearRawInfo()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PriceRecordUpsertOne) SetCreatedAt(v time.Time) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateCreatedAt() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PriceRecordUpsertOne) SetUpdatedAt(v time.Time) *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PriceRecordUpsertOne) UpdateUpdatedAt() *PriceRecordUpsertOne {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PriceRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PriceRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PriceRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PriceRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PriceRecordUpsertOne.ID is not supported by MySQL driver. Use PriceRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PriceRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PriceRecordCreateBulk is the builder for creating many PriceRecord entities in bulk.
type PriceRecordCreateBulk struct {
	config
	err      error
	builders []*PriceRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the PriceRecord entities in the database.
func (_c *PriceRecordCreateBulk) Save(ctx context.Context) ([]*PriceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PriceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PriceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PriceRecordCreateBulk) SaveX(ctx context.Context) []*PriceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PriceRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PriceRecordUpsert) {
//			SetKeyDate(v+v).
//		}).
//		Exec(ctx)
func (_c *PriceRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *PriceRecordUpsertBulk {
	_c.conflict = opts
	return &PriceRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PriceRecordCreateBulk) OnConflictColumns(columns ...string) *PriceRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PriceRecordUpsertBulk{
		create: _c,
	}
}

// PriceRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of PriceRecord nodes.
type PriceRecordUpsertBulk struct {
	create *PriceRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pricerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PriceRecordUpsertBulk) UpdateNewValues() *PriceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pricerecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PriceRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PriceRecordUpsertBulk) Ignore() *PriceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PriceRecordUpsertBulk) DoNothing() *PriceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PriceRecordCreateBulk.OnConflict
// documentation for more info.
func (u *PriceRecordUpsertBulk) Update(set func(*PriceRecordUpsert)) *PriceRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PriceRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyDate sets the "key_date" field.
func (u *PriceRecordUpsertBulk) SetKeyDate(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetKeyDate(v)
	})
}

// UpdateKeyDate sets the "key_date" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateKeyDate() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateKeyDate()
	})
}

// SetVendor sets the "vendor" field.
func (u *PriceRecordUpsertBulk) SetVendor(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateVendor() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateVendor()
	})
}

// SetProviderCode sets the "provider_code" field.
func (u *PriceRecordUpsertBulk) SetProviderCode(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProviderCode(v)
	})
}

// UpdateProviderCode sets the "provider_code" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateProviderCode() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProviderCode()
	})
}

// SetPriceDate sets the "price_date" field.
func (u *PriceRecordUpsertBulk) SetPriceDate(v time.Time) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetPriceDate(v)
	})
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdatePriceDate() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdatePriceDate()
	})
}

// SetJobID sets the "job_id" field.
func (u *PriceRecordUpsertBulk) SetJobID(v uuid.UUID) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateJobID() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *PriceRecordUpsertBulk) ClearJobID() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearJobID()
	})
}

// SetProduct sets the "product" field.
func (u *PriceRecordUpsertBulk) SetProduct(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProduct(v)
	})
}

// UpdateProduct sets the "product" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateProduct() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProduct()
	})
}

// SetCategory sets the "category" field.
func (u *PriceRecordUpsertBulk) SetCategory(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateCategory() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *PriceRecordUpsertBulk) ClearCategory() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCategory()
	})
}

// SetPrice sets the "price" field.
func (u *PriceRecordUpsertBulk) SetPrice(v float64) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PriceRecordUpsertBulk) AddPrice(v float64) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdatePrice() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdatePrice()
	})
}

// ClearPrice clears the value of the "price" field.
func (u *PriceRecordUpsertBulk) ClearPrice() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearPrice()
	})
}

// SetSizeGrade sets the "size_grade" field.
func (u *PriceRecordUpsertBulk) SetSizeGrade(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetSizeGrade(v)
	})
}

// UpdateSizeGrade sets the "size_grade" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateSizeGrade() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateSizeGrade()
	})
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (u *PriceRecordUpsertBulk) ClearSizeGrade() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearSizeGrade()
	})
}

// SetQuality sets the "quality" field.
func (u *PriceRecordUpsertBulk) SetQuality(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateQuality() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateQuality()
	})
}

// ClearQuality clears the value of the "quality" field.
func (u *PriceRecordUpsertBulk) ClearQuality() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearQuality()
	})
}

// SetCatchMethod sets the "catch_method" field.
func (u *PriceRecordUpsertBulk) SetCatchMethod(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCatchMethod(v)
	})
}

// UpdateCatchMethod sets the "catch_method" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateCatchMethod() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCatchMethod()
	})
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (u *PriceRecordUpsertBulk) ClearCatchMethod() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCatchMethod()
	})
}

// SetCut sets the "cut" field.
func (u *PriceRecordUpsertBulk) SetCut(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCut(v)
	})
}

// UpdateCut sets the "cut" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateCut() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCut()
	})
}

// ClearCut clears the value of the "cut" field.
func (u *PriceRecordUpsertBulk) ClearCut() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearCut()
	})
}

// SetState sets the "state" field.
func (u *PriceRecordUpsertBulk) SetState(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateState() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *PriceRecordUpsertBulk) ClearState() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearState()
	})
}

// SetOrigin sets the "origin" field.
func (u *PriceRecordUpsertBulk) SetOrigin(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateOrigin() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateOrigin()
	})
}

// ClearOrigin clears the value of the "origin" field.
func (u *PriceRecordUpsertBulk) ClearOrigin() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearOrigin()
	})
}

// SetProductionType sets the "production_type" field.
func (u *PriceRecordUpsertBulk) SetProductionType(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetProductionType(v)
	})
}

// UpdateProductionType sets the "production_type" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateProductionType() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateProductionType()
	})
}

// ClearProductionType clears the value of the "production_type" field.
func (u *PriceRecordUpsertBulk) ClearProductionType() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearProductionType()
	})
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (u *PriceRecordUpsertBulk) SetSlaughterTechnique(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetSlaughterTechnique(v)
	})
}

// UpdateSlaughterTechnique sets the "slaughter_technique" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateSlaughterTechnique() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateSlaughterTechnique()
	})
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (u *PriceRecordUpsertBulk) ClearSlaughterTechnique() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearSlaughterTechnique()
	})
}

// SetColor sets the "color" field.
func (u *PriceRecordUpsertBulk) SetColor(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetColor(v)
	})
}

// UpdateColor sets the "color" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateColor() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateColor()
	})
}

// ClearColor clears the value of the "color" field.
func (u *PriceRecordUpsertBulk) ClearColor() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearColor()
	})
}

// SetConservation sets the "conservation" field.
func (u *PriceRecordUpsertBulk) SetConservation(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetConservation(v)
	})
}

// UpdateConservation sets the "conservation" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateConservation() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateConservation()
	})
}

// ClearConservation clears the value of the "conservation" field.
func (u *PriceRecordUpsertBulk) ClearConservation() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearConservation()
	})
}

// SetLabel sets the "label" field.
func (u *PriceRecordUpsertBulk) SetLabel(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateLabel() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *PriceRecordUpsertBulk) ClearLabel() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearLabel()
	})
}

// SetTrimCode sets the "trim_code" field.
func (u *PriceRecordUpsertBulk) SetTrimCode(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetTrimCode(v)
	})
}

// UpdateTrimCode sets the "trim_code" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateTrimCode() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateTrimCode()
	})
}

// ClearTrimCode clears the value of the "trim_code" field.
func (u *PriceRecordUpsertBulk) ClearTrimCode() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearTrimCode()
	})
}

// SetRawInfo sets the "raw_info" field.
func (u *PriceRecordUpsertBulk) SetRawInfo(v string) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetRawInfo(v)
	})
}

// UpdateRawInfo sets the "raw_info" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateRawInfo() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateRawInfo()
	})
}

// ClearRawInfo clears the value of the "raw_info" field.
func (u *PriceRecordUpsertBulk) ClearRawInfo() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.ClearRawInfo()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PriceRecordUpsertBulk) SetCreatedAt(v time.Time) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateCreatedAt() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PriceRecordUpsertBulk) SetUpdatedAt(v time.Time) *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PriceRecordUpsertBulk) UpdateUpdatedAt() *PriceRecordUpsertBulk {
	return u.Update(func(s *PriceRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PriceRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PriceRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PriceRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PriceRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
