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
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// SourceFileUpdate is the builder for updating SourceFile entities.
type SourceFileUpdate struct {
	config
	hooks    []Hook
	mutation *SourceFileMutation
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdate) Where(ps ...predicate.SourceFile) *SourceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *SourceFileUpdate) SetVendor(v string) *SourceFileUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableVendor(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdate) SetFilename(v string) *SourceFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFilename(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdate) SetFileExt(v string) *SourceFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileExt(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *SourceFileUpdate) SetArchivePath(v string) *SourceFileUpdate {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableArchivePath(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdate) SetContentHash(v []byte) *SourceFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdate) SetFileSize(v int) *SourceFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileSize(v *int) *SourceFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdate) AddFileSize(v int) *SourceFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdate) SetUploadedAt(v time.Time) *SourceFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableUploadedAt(v *time.Time) *SourceFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ImportJob entity by IDs.
func (_u *SourceFileUpdate) AddJobIDs(ids ...uuid.UUID) *SourceFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ImportJob entity.
func (_u *SourceFileUpdate) AddJobs(v ...*ImportJob) *SourceFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdate) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ImportJob entity.
func (_u *SourceFileUpdate) ClearJobs() *SourceFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ImportJob entities by IDs.
func (_u *SourceFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *SourceFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ImportJob entities.
func (_u *SourceFileUpdate) RemoveJobs(v ...*ImportJob) *SourceFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdate) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := sourcefile.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "SourceFile.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchivePath(); ok {
		if err := sourcefile.ArchivePathValidator(v); err != nil {
			return &ValidationError{Name: "archive_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.archive_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(sourcefile.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(sourcefile.FieldArchivePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
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
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceFileUpdateOne is the builder for updating a single SourceFile entity.
type SourceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceFileMutation
}

// SetVendor sets the "vendor" field.
func (_u *SourceFileUpdateOne) SetVendor(v string) *SourceFileUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableVendor(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdateOne) SetFilename(v string) *SourceFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFilename(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdateOne) SetFileExt(v string) *SourceFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileExt(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *SourceFileUpdateOne) SetArchivePath(v string) *SourceFileUpdateOne {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableArchivePath(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdateOne) SetContentHash(v []byte) *SourceFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdateOne) SetFileSize(v int) *SourceFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileSize(v *int) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdateOne) AddFileSize(v int) *SourceFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdateOne) SetUploadedAt(v time.Time) *SourceFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableUploadedAt(v *time.Time) *SourceFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddJobIDs adds the "jobs" edge to the ImportJob entity by IDs.
func (_u *SourceFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *SourceFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ImportJob entity.
func (_u *SourceFileUpdateOne) AddJobs(v ...*ImportJob) *SourceFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdateOne) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ImportJob entity.
func (_u *SourceFileUpdateOne) ClearJobs() *SourceFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ImportJob entities by IDs.
func (_u *SourceFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *SourceFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ImportJob entities.
func (_u *SourceFileUpdateOne) RemoveJobs(v ...*ImportJob) *SourceFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdateOne) Where(ps ...predicate.SourceFile) *SourceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceFileUpdateOne) Select(field string, fields ...string) *SourceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceFile entity.
func (_u *SourceFileUpdateOne) Save(ctx context.Context) (*SourceFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdateOne) SaveX(ctx context.Context) *SourceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdateOne) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := sourcefile.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "SourceFile.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchivePath(); ok {
		if err := sourcefile.ArchivePathValidator(v); err != nil {
			return &ValidationError{Name: "archive_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.archive_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceFileUpdateOne) sqlSave(ctx context.Context) (_node *SourceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcefile.FieldID)
		for _, f := range fields {
			if !sourcefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcefile.FieldID {
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
		_spec.SetField(sourcefile.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(sourcefile.FieldArchivePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourcefile.JobsTable,
			Columns: []string{sourcefile.JobsColumn},
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
	_node = &SourceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
