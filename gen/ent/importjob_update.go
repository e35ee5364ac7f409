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
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ImportJobUpdate) SetFileID(v uuid.UUID) *ImportJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFileID(v *uuid.UUID) *ImportJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ImportJobUpdate) SetVendor(v string) *ImportJobUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableVendor(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportJobUpdate) SetFormat(v string) *ImportJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFormat(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ImportJobUpdate) ClearStatus() *ImportJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPriceDate sets the "price_date" field.
func (_u *ImportJobUpdate) SetPriceDate(v time.Time) *ImportJobUpdate {
	_u.mutation.SetPriceDate(v)
	return _u
}

// SetNillablePriceDate sets the "price_date" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillablePriceDate(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetPriceDate(*v)
	}
	return _u
}

// ClearPriceDate clears the value of the "price_date" field.
func (_u *ImportJobUpdate) ClearPriceDate() *ImportJobUpdate {
	_u.mutation.ClearPriceDate()
	return _u
}

// SetRowsExtracted sets the "rows_extracted" field.
func (_u *ImportJobUpdate) SetRowsExtracted(v int) *ImportJobUpdate {
	_u.mutation.ResetRowsExtracted()
	_u.mutation.SetRowsExtracted(v)
	return _u
}

// SetNillableRowsExtracted sets the "rows_extracted" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableRowsExtracted(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetRowsExtracted(*v)
	}
	return _u
}

// AddRowsExtracted adds value to the "rows_extracted" field.
func (_u *ImportJobUpdate) AddRowsExtracted(v int) *ImportJobUpdate {
	_u.mutation.AddRowsExtracted(v)
	return _u
}

// SetRowsLoaded sets the "rows_loaded" field.
func (_u *ImportJobUpdate) SetRowsLoaded(v int) *ImportJobUpdate {
	_u.mutation.ResetRowsLoaded()
	_u.mutation.SetRowsLoaded(v)
	return _u
}

// SetNillableRowsLoaded sets the "rows_loaded" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableRowsLoaded(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetRowsLoaded(*v)
	}
	return _u
}

// AddRowsLoaded adds value to the "rows_loaded" field.
func (_u *ImportJobUpdate) AddRowsLoaded(v int) *ImportJobUpdate {
	_u.mutation.AddRowsLoaded(v)
	return _u
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (_u *ImportJobUpdate) SetRowsUnrecognized(v int) *ImportJobUpdate {
	_u.mutation.ResetRowsUnrecognized()
	_u.mutation.SetRowsUnrecognized(v)
	return _u
}

// SetNillableRowsUnrecognized sets the "rows_unrecognized" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableRowsUnrecognized(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetRowsUnrecognized(*v)
	}
	return _u
}

// AddRowsUnrecognized adds value to the "rows_unrecognized" field.
func (_u *ImportJobUpdate) AddRowsUnrecognized(v int) *ImportJobUpdate {
	_u.mutation.AddRowsUnrecognized(v)
	return _u
}

// SetFile sets the "file" edge to the SourceFile entity.
func (_u *ImportJobUpdate) SetFile(v *SourceFile) *ImportJobUpdate {
	return _u.SetFileID(v.ID)
}

// AddRecordIDs adds the "records" edge to the PriceRecord entity by IDs.
func (_u *ImportJobUpdate) AddRecordIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the PriceRecord entity.
func (_u *ImportJobUpdate) AddRecords(v ...*PriceRecord) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SourceFile entity.
func (_u *ImportJobUpdate) ClearFile() *ImportJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearRecords clears all "records" edges to the PriceRecord entity.
func (_u *ImportJobUpdate) ClearRecords() *ImportJobUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to PriceRecord entities by IDs.
func (_u *ImportJobUpdate) RemoveRecordIDs(ids ...uuid.UUID) *ImportJobUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to PriceRecord entities.
func (_u *ImportJobUpdate) RemoveRecords(v ...*PriceRecord) *ImportJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := importjob.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "ImportJob.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsExtracted(); ok {
		if err := importjob.RowsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "rows_extracted", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsLoaded(); ok {
		if err := importjob.RowsLoadedValidator(v); err != nil {
			return &ValidationError{Name: "rows_loaded", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_loaded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsUnrecognized(); ok {
		if err := importjob.RowsUnrecognizedValidator(v); err != nil {
			return &ValidationError{Name: "rows_unrecognized", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_unrecognized": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.file"`)
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(importjob.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(importjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PriceDate(); ok {
		_spec.SetField(importjob.FieldPriceDate, field.TypeTime, value)
	}
	if _u.mutation.PriceDateCleared() {
		_spec.ClearField(importjob.FieldPriceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RowsExtracted(); ok {
		_spec.SetField(importjob.FieldRowsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsExtracted(); ok {
		_spec.AddField(importjob.FieldRowsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsLoaded(); ok {
		_spec.SetField(importjob.FieldRowsLoaded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsLoaded(); ok {
		_spec.AddField(importjob.FieldRowsLoaded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsUnrecognized(); ok {
		_spec.SetField(importjob.FieldRowsUnrecognized, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsUnrecognized(); ok {
		_spec.AddField(importjob.FieldRowsUnrecognized, field.TypeInt, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ImportJobUpdateOne) SetFileID(v uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ImportJobUpdateOne) SetVendor(v string) *ImportJobUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableVendor(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ImportJobUpdateOne) SetFormat(v string) *ImportJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFormat(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ImportJobUpdateOne) ClearStatus() *ImportJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPriceDate sets the "price_date" field.
func (_u *ImportJobUpdateOne) SetPriceDate(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetPriceDate(v)
	return _u
}

// SetNillablePriceDate sets the "price_date" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillablePriceDate(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetPriceDate(*v)
	}
	return _u
}

// ClearPriceDate clears the value of the "price_date" field.
func (_u *ImportJobUpdateOne) ClearPriceDate() *ImportJobUpdateOne {
	_u.mutation.ClearPriceDate()
	return _u
}

// SetRowsExtracted sets the "rows_extracted" field.
func (_u *ImportJobUpdateOne) SetRowsExtracted(v int) *ImportJobUpdateOne {
	_u.mutation.ResetRowsExtracted()
	_u.mutation.SetRowsExtracted(v)
	return _u
}

// SetNillableRowsExtracted sets the "rows_extracted" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableRowsExtracted(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetRowsExtracted(*v)
	}
	return _u
}

// AddRowsExtracted adds value to the "rows_extracted" field.
func (_u *ImportJobUpdateOne) AddRowsExtracted(v int) *ImportJobUpdateOne {
	_u.mutation.AddRowsExtracted(v)
	return _u
}

// SetRowsLoaded sets the "rows_loaded" field.
func (_u *ImportJobUpdateOne) SetRowsLoaded(v int) *ImportJobUpdateOne {
	_u.mutation.ResetRowsLoaded()
	_u.mutation.SetRowsLoaded(v)
	return _u
}

// SetNillableRowsLoaded sets the "rows_loaded" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableRowsLoaded(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetRowsLoaded(*v)
	}
	return _u
}

// AddRowsLoaded adds value to the "rows_loaded" field.
func (_u *ImportJobUpdateOne) AddRowsLoaded(v int) *ImportJobUpdateOne {
	_u.mutation.AddRowsLoaded(v)
	return _u
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (_u *ImportJobUpdateOne) SetRowsUnrecognized(v int) *ImportJobUpdateOne {
	_u.mutation.ResetRowsUnrecognized()
	_u.mutation.SetRowsUnrecognized(v)
	return _u
}

// SetNillableRowsUnrecognized sets the "rows_unrecognized" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableRowsUnrecognized(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetRowsUnrecognized(*v)
	}
	return _u
}

// AddRowsUnrecognized adds value to the "rows_unrecognized" field.
func (_u *ImportJobUpdateOne) AddRowsUnrecognized(v int) *ImportJobUpdateOne {
	_u.mutation.AddRowsUnrecognized(v)
	return _u
}

// SetFile sets the "file" edge to the SourceFile entity.
func (_u *ImportJobUpdateOne) SetFile(v *SourceFile) *ImportJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddRecordIDs adds the "records" edge to the PriceRecord entity by IDs.
func (_u *ImportJobUpdateOne) AddRecordIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the PriceRecord entity.
func (_u *ImportJobUpdateOne) AddRecords(v ...*PriceRecord) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the SourceFile entity.
func (_u *ImportJobUpdateOne) ClearFile() *ImportJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearRecords clears all "records" edges to the PriceRecord entity.
func (_u *ImportJobUpdateOne) ClearRecords() *ImportJobUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to PriceRecord entities by IDs.
func (_u *ImportJobUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to PriceRecord entities.
func (_u *ImportJobUpdateOne) RemoveRecords(v ...*PriceRecord) *ImportJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := importjob.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "ImportJob.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := importjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ImportJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsExtracted(); ok {
		if err := importjob.RowsExtractedValidator(v); err != nil {
			return &ValidationError{Name: "rows_extracted", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_extracted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsLoaded(); ok {
		if err := importjob.RowsLoadedValidator(v); err != nil {
			return &ValidationError{Name: "rows_loaded", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_loaded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowsUnrecognized(); ok {
		if err := importjob.RowsUnrecognizedValidator(v); err != nil {
			return &ValidationError{Name: "rows_unrecognized", err: fmt.Errorf(`ent: validator failed for field "ImportJob.rows_unrecognized": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.file"`)
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(importjob.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(importjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(importjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PriceDate(); ok {
		_spec.SetField(importjob.FieldPriceDate, field.TypeTime, value)
	}
	if _u.mutation.PriceDateCleared() {
		_spec.ClearField(importjob.FieldPriceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RowsExtracted(); ok {
		_spec.SetField(importjob.FieldRowsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsExtracted(); ok {
		_spec.AddField(importjob.FieldRowsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsLoaded(); ok {
		_spec.SetField(importjob.FieldRowsLoaded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsLoaded(); ok {
		_spec.AddField(importjob.FieldRowsLoaded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsUnrecognized(); ok {
		_spec.SetField(importjob.FieldRowsUnrecognized, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsUnrecognized(); ok {
		_spec.AddField(importjob.FieldRowsUnrecognized, field.TypeInt, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
