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
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileID sets the "file_id" field.
func (_c *ImportJobCreate) SetFileID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *ImportJobCreate) SetVendor(v string) *ImportJobCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ImportJobCreate) SetFormat(v string) *ImportJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportJobCreate) SetFinishedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFinishedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPriceDate sets the "price_date" field.
func (_c *ImportJobCreate) SetPriceDate(v time.Time) *ImportJobCreate {
	_c.mutation.SetPriceDate(v)
	return _c
}

// SetNillablePriceDate sets the "price_date" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillablePriceDate(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetPriceDate(*v)
	}
	return _c
}

// SetRowsExtracted sets the "rows_extracted" field.
func (_c *ImportJobCreate) SetRowsExtracted(v int) *ImportJobCreate {
	_c.mutation.SetRowsExtracted(v)
	return _c
}

// SetNillableRowsExtracted sets the "rows_extracted" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableRowsExtracted(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetRowsExtracted(*v)
	}
	return _c
}

// SetRowsLoaded sets the "rows_loaded" field.
func (_c *ImportJobCreate) SetRowsLoaded(v int) *ImportJobCreate {
	_c.mutation.SetRowsLoaded(v)
	return _c
}

// SetNillableRowsLoaded sets the "rows_loaded" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableRowsLoaded(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetRowsLoaded(*v)
	}
	return _c
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (_c *ImportJobCreate) SetRowsUnrecognized(v int) *ImportJobCreate {
	_c.mutation.SetRowsUnrecognized(v)
	return _c
}

// SetNillableRowsUnrecognized sets the "rows_unrecognized" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableRowsUnrecognized(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetRowsUnrecognized(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the SourceFile entity.
func (_c *ImportJobCreate) SetFile(v *SourceFile) *ImportJobCreate {
	return _c.SetFileID(v.ID)
}

// AddRecordIDs adds the "records" edge to the PriceRecord entity by IDs.
func (_c *ImportJobCreate) AddRecordIDs(ids ...uuid.UUID) *ImportJobCreate {
	_c.mutation.AddRecordIDs(ids...)
	return _c
}

// AddRecords adds the "records" edges to the PriceRecord entity.
func (_c *ImportJobCreate) AddRecords(v ...*PriceRecord) *ImportJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := importjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.RowsExtracted(); !ok {
		v := importjob.DefaultRowsExtracted
		_c.mutation.SetRowsExtracted(v)
	}
	if _, ok := _c.mutation.RowsLoaded(); !ok {
		v := importjob.DefaultRowsLoaded
		_c.mutation.SetRowsLoaded(v)
	}
	if _, ok := _c.mutation.RowsUnrecognized(); !ok {
		v := importjob.DefaultRowsUnrecognized
		_c.mutation.SetRowsUnrecognized(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ImportJob.file_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "ImportJob.vendor"`)}
	}
	if v, ok := _c.mutation.Vendor(); ok {
		if err := importjob.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "ImportJob.vendor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ImportJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ImportJob.started_at"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowsExtracted(); !ok {
		return &ValidationError{Name: "rows_extracted", err: errors.New(`ent: missing required field "ImportJob.rows_extracted"`)}
	}
	if v, ok := _c.mutation.RowsExtracted(); ok {
		if err := importjob.RowsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "rows_extracted", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_extracted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowsLoaded(); !ok {
		return &ValidationError{Name: "rows_loaded", err: errors.New(`ent: missing required field "ImportJob.rows_loaded"`)}
	}
	if v, ok := _c.mutation.RowsLoaded(); ok {
		if err := importjob.RowsLoadedValidator(v); err != nil {
			return &ValidationError{Name: "rows_loaded", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_loaded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowsUnrecognized(); !ok {
		return &ValidationError{Name: "rows_unrecognized", err: errors.New(`ent: missing required field "ImportJob.rows_unrecognized"`)}
	}
	if v, ok := _c.mutation.RowsUnrecognized(); ok {
		if err := importjob.RowsUnrecognizedValidator(v); err != nil {
			return &ValidationError{Name: "rows_unrecognized", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_unrecognized": %w`, err)}
		}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ImportJob.file"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
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

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(importjob.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PriceDate(); ok {
		_spec.SetField(importjob.FieldPriceDate, field.TypeTime, value)
		_node.PriceDate = &value
	}
	if value, ok := _c.mutation.RowsExtracted(); ok {
		_spec.SetField(importjob.FieldRowsExtracted, field.TypeInt, value)
		_node.RowsExtracted = value
	}
	if value, ok := _c.mutation.RowsLoaded(); ok {
		_spec.SetField(importjob.FieldRowsLoaded, field.TypeInt, value)
		_node.RowsLoaded = value
	}
	if value, ok := _c.mutation.RowsUnrecognized(); ok {
		_spec.SetField(importjob.FieldRowsUnrecognized, field.TypeInt, value)
		_node.RowsUnrecognized = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importjob.FileTable,
			Columns: []string{importjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importjob.RecordsTable,
			Columns: []string{importjob.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImportJob.Create().
//		SetFileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImportJobUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImportJobCreate) OnConflict(opts ...sql.ConflictOption) *ImportJobUpsertOne {
	_c.conflict = opts
	return &ImportJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImportJobCreate) OnConflictColumns(columns ...string) *ImportJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImportJobUpsertOne{
		create: _c,
	}
}

type (
	// ImportJobUpsertOne is the builder for "upsert"-ing
	//  one ImportJob node.
	ImportJobUpsertOne struct {
		create *ImportJobCreate
	}

	// ImportJobUpsert is the "OnConflict" setter.
	ImportJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileID sets the "file_id" field.
func (u *ImportJobUpsert) SetFileID(v uuid.UUID) *ImportJobUpsert {
	u.Set(importjob.FieldFileID, v)
	return u
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateFileID() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldFileID)
	return u
}

// SetVendor sets the "vendor" field.
func (u *ImportJobUpsert) SetVendor(v string) *ImportJobUpsert {
	u.Set(importjob.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateVendor() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldVendor)
	return u
}

// SetFormat sets the "format" field.
func (u *ImportJobUpsert) SetFormat(v string) *ImportJobUpsert {
	u.Set(importjob.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateFormat() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldFormat)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ImportJobUpsert) SetStartedAt(v time.Time) *ImportJobUpsert {
	u.Set(importjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateStartedAt() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *ImportJobUpsert) SetFinishedAt(v time.Time) *ImportJobUpsert {
	u.Set(importjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateFinishedAt() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ImportJobUpsert) ClearFinishedAt() *ImportJobUpsert {
	u.SetNull(importjob.FieldFinishedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *ImportJobUpsert) SetStatus(v string) *ImportJobUpsert {
	u.Set(importjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateStatus() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *ImportJobUpsert) ClearStatus() *ImportJobUpsert {
	u.SetNull(importjob.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ImportJobUpsert) SetErrorMessage(v string) *ImportJobUpsert {
	u.Set(importjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateErrorMessage() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ImportJobUpsert) ClearErrorMessage() *ImportJobUpsert {
	u.SetNull(importjob.FieldErrorMessage)
	return u
}

// SetPriceDate sets the "price_date" field.
func (u *ImportJobUpsert) SetPriceDate(v time.Time) *ImportJobUpsert {
	u.Set(importjob.FieldPriceDate, v)
	return u
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdatePriceDate() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldPriceDate)
	return u
}

// ClearPriceDate clears the value of the "price_date" field.
func (u *ImportJobUpsert) ClearPriceDate() *ImportJobUpsert {
	u.SetNull(importjob.FieldPriceDate)
	return u
}

// SetRowsExtracted sets the "rows_extracted" field.
func (u *ImportJobUpsert) SetRowsExtracted(v int) *ImportJobUpsert {
	u.Set(importjob.FieldRowsExtracted, v)
	return u
}

// UpdateRowsExtracted sets the "rows_extracted" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateRowsExtracted() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldRowsExtracted)
	return u
}

// AddRowsExtracted adds v to the "rows_extracted" field.
func (u *ImportJobUpsert) AddRowsExtracted(v int) *ImportJobUpsert {
	u.Add(importjob.FieldRowsExtracted, v)
	return u
}

// SetRowsLoaded sets the "rows_loaded" field.
func (u *ImportJobUpsert) SetRowsLoaded(v int) *ImportJobUpsert {
	u.Set(importjob.FieldRowsLoaded, v)
	return u
}

// UpdateRowsLoaded sets the "rows_loaded" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateRowsLoaded() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldRowsLoaded)
	return u
}

// AddRowsLoaded adds v to the "rows_loaded" field.
func (u *ImportJobUpsert) AddRowsLoaded(v int) *ImportJobUpsert {
	u.Add(importjob.FieldRowsLoaded, v)
	return u
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (u *ImportJobUpsert) SetRowsUnrecognized(v int) *ImportJobUpsert {
	u.Set(importjob.FieldRowsUnrecognized, v)
	return u
}

// UpdateRowsUnrecognized sets the "rows_unrecognized" field to the value that was provided on create.
func (u *ImportJobUpsert) UpdateRowsUnrecognized() *ImportJobUpsert {
	u.SetExcluded(importjob.FieldRowsUnrecognized)
	return u
}

// AddRowsUnrecognized adds v to the "rows_unrecognized" field.
func (u *ImportJobUpsert) AddRowsUnrecognized(v int) *ImportJobUpsert {
	u.Add(importjob.FieldRowsUnrecognized, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(importjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImportJobUpsertOne) UpdateNewValues() *ImportJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(importjob.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ImportJobUpsertOne) Ignore() *ImportJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImportJobUpsertOne) DoNothing() *ImportJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImportJobCreate.OnConflict
// documentation for more info.
func (u *ImportJobUpsertOne) Update(set func(*ImportJobUpsert)) *ImportJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImportJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *ImportJobUpsertOne) SetFileID(v uuid.UUID) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateFileID() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFileID()
	})
}

// SetVendor sets the "vendor" field.
func (u *ImportJobUpsertOne) SetVendor(v string) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateVendor() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateVendor()
	})
}

// SetFormat sets the "format" field.
func (u *ImportJobUpsertOne) SetFormat(v string) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateFormat() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFormat()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ImportJobUpsertOne) SetStartedAt(v time.Time) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateStartedAt() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ImportJobUpsertOne) SetFinishedAt(v time.Time) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateFinishedAt() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ImportJobUpsertOne) ClearFinishedAt() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ImportJobUpsertOne) SetStatus(v string) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateStatus() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ImportJobUpsertOne) ClearStatus() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ImportJobUpsertOne) SetErrorMessage(v string) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateErrorMessage() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ImportJobUpsertOne) ClearErrorMessage() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPriceDate sets the "price_date" field.
func (u *ImportJobUpsertOne) SetPriceDate(v time.Time) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetPriceDate(v)
	})
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdatePriceDate() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdatePriceDate()
	})
}

// ClearPriceDate clears the value of the "price_date" field.
func (u *ImportJobUpsertOne) ClearPriceDate() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearPriceDate()
	})
}

// SetRowsExtracted sets the "rows_extracted" field.
func (u *ImportJobUpsertOne) SetRowsExtracted(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsExtracted(v)
	})
}

// AddRowsExtracted adds v to the "rows_extracted" field.
func (u *ImportJobUpsertOne) AddRowsExtracted(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsExtracted(v)
	})
}

// UpdateRowsExtracted sets the "rows_extracted" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateRowsExtracted() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsExtracted()
	})
}

// SetRowsLoaded sets the "rows_loaded" field.
func (u *ImportJobUpsertOne) SetRowsLoaded(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsLoaded(v)
	})
}

// AddRowsLoaded adds v to the "rows_loaded" field.
func (u *ImportJobUpsertOne) AddRowsLoaded(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsLoaded(v)
	})
}

// UpdateRowsLoaded sets the "rows_loaded" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateRowsLoaded() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsLoaded()
	})
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (u *ImportJobUpsertOne) SetRowsUnrecognized(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsUnrecognized(v)
	})
}

// AddRowsUnrecognized adds v to the "rows_unrecognized" field.
func (u *ImportJobUpsertOne) AddRowsUnrecognized(v int) *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsUnrecognized(v)
	})
}

// UpdateRowsUnrecognized sets the "rows_unrecognized" field to the value that was provided on create.
func (u *ImportJobUpsertOne) UpdateRowsUnrecognized() *ImportJobUpsertOne {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsUnrecognized()
	})
}

// Exec executes the query.
func (u *ImportJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImportJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImportJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ImportJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ImportJobUpsertOne.ID is not supported by MySQL driver. Use ImportJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ImportJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
	conflict []sql.ConflictOption
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
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
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ImportJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImportJobUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImportJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ImportJobUpsertBulk {
	_c.conflict = opts
	return &ImportJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImportJobCreateBulk) OnConflictColumns(columns ...string) *ImportJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImportJobUpsertBulk{
		create: _c,
	}
}

// ImportJobUpsertBulk is the builder for "upsert"-ing
// a bulk of ImportJob nodes.
type ImportJobUpsertBulk struct {
	create *ImportJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(importjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImportJobUpsertBulk) UpdateNewValues() *ImportJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(importjob.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ImportJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ImportJobUpsertBulk) Ignore() *ImportJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImportJobUpsertBulk) DoNothing() *ImportJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImportJobCreateBulk.OnConflict
// documentation for more info.
func (u *ImportJobUpsertBulk) Update(set func(*ImportJobUpsert)) *ImportJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImportJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *ImportJobUpsertBulk) SetFileID(v uuid.UUID) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateFileID() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFileID()
	})
}

// SetVendor sets the "vendor" field.
func (u *ImportJobUpsertBulk) SetVendor(v string) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateVendor() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateVendor()
	})
}

// SetFormat sets the "format" field.
func (u *ImportJobUpsertBulk) SetFormat(v string) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateFormat() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFormat()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ImportJobUpsertBulk) SetStartedAt(v time.Time) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateStartedAt() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ImportJobUpsertBulk) SetFinishedAt(v time.Time) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateFinishedAt() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ImportJobUpsertBulk) ClearFinishedAt() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ImportJobUpsertBulk) SetStatus(v string) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateStatus() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ImportJobUpsertBulk) ClearStatus() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ImportJobUpsertBulk) SetErrorMessage(v string) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateErrorMessage() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ImportJobUpsertBulk) ClearErrorMessage() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPriceDate sets the "price_date" field.
func (u *ImportJobUpsertBulk) SetPriceDate(v time.Time) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetPriceDate(v)
	})
}

// UpdatePriceDate sets the "price_date" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdatePriceDate() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdatePriceDate()
	})
}

// ClearPriceDate clears the value of the "price_date" field.
func (u *ImportJobUpsertBulk) ClearPriceDate() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.ClearPriceDate()
	})
}

// SetRowsExtracted sets the "rows_extracted" field.
func (u *ImportJobUpsertBulk) SetRowsExtracted(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsExtracted(v)
	})
}

// AddRowsExtracted adds v to the "rows_extracted" field.
func (u *ImportJobUpsertBulk) AddRowsExtracted(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsExtracted(v)
	})
}

// UpdateRowsExtracted sets the "rows_extracted" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateRowsExtracted() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsExtracted()
	})
}

// SetRowsLoaded sets the "rows_loaded" field.
func (u *ImportJobUpsertBulk) SetRowsLoaded(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsLoaded(v)
	})
}

// AddRowsLoaded adds v to the "rows_loaded" field.
func (u *ImportJobUpsertBulk) AddRowsLoaded(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsLoaded(v)
	})
}

// UpdateRowsLoaded sets the "rows_loaded" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateRowsLoaded() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsLoaded()
	})
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (u *ImportJobUpsertBulk) SetRowsUnrecognized(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.SetRowsUnrecognized(v)
	})
}

// AddRowsUnrecognized adds v to the "rows_unrecognized" field.
func (u *ImportJobUpsertBulk) AddRowsUnrecognized(v int) *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.AddRowsUnrecognized(v)
	})
}

// UpdateRowsUnrecognized sets the "rows_unrecognized" field to the value that was provided on create.
func (u *ImportJobUpsertBulk) UpdateRowsUnrecognized() *ImportJobUpsertBulk {
	return u.Update(func(s *ImportJobUpsert) {
		s.UpdateRowsUnrecognized()
	})
}

// Exec executes the query.
func (u *ImportJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ImportJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImportJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImportJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
