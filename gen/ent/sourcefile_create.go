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
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// SourceFileCreate is the builder for creating a SourceFile entity.
type SourceFileCreate struct {
	config
	mutation *SourceFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVendor sets the "vendor" field.
func (_c *SourceFileCreate) SetVendor(v string) *SourceFileCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SourceFileCreate) SetFilename(v string) *SourceFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *SourceFileCreate) SetFileExt(v string) *SourceFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetArchivePath sets the "archive_path" field.
func (_c *SourceFileCreate) SetArchivePath(v string) *SourceFileCreate {
	_c.mutation.SetArchivePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceFileCreate) SetContentHash(v []byte) *SourceFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *SourceFileCreate) SetFileSize(v int) *SourceFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SourceFileCreate) SetUploadedAt(v time.Time) *SourceFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableUploadedAt(v *time.Time) *SourceFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceFileCreate) SetID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableID(v *uuid.UUID) *SourceFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ImportJob entity by IDs.
func (_c *SourceFileCreate) AddJobIDs(ids ...uuid.UUID) *SourceFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ImportJob entity.
func (_c *SourceFileCreate) AddJobs(v ...*ImportJob) *SourceFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_c *SourceFileCreate) Mutation() *SourceFileMutation {
	return _c.mutation
}

// Save creates the SourceFile in the database.
func (_c *SourceFileCreate) Save(ctx context.Context) (*SourceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceFileCreate) SaveX(ctx context.Context) *SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := sourcefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sourcefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceFileCreate) check() error {
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "SourceFile.vendor"`)}
	}
	if v, ok := _c.mutation.Vendor(); ok {
		if err := sourcefile.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "SourceFile.vendor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SourceFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "SourceFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArchivePath(); !ok {
		return &ValidationError{Name: "archive_path", err: errors.New(`ent: missing required field "SourceFile.archive_path"`)}
	}
	if v, ok := _c.mutation.ArchivePath(); ok {
		if err := sourcefile.ArchivePathValidator(v); err != nil {
			return &ValidationError{Name: "archive_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.archive_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SourceFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "SourceFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SourceFile.uploaded_at"`)}
	}
	return nil
}

func (_c *SourceFileCreate) sqlSave(ctx context.Context) (*SourceFile, error) {
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

func (_c *SourceFileCreate) createSpec() (*SourceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcefile.Table, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(sourcefile.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ArchivePath(); ok {
		_spec.SetField(sourcefile.FieldArchivePath, field.TypeString, value)
		_node.ArchivePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceFile.Create().
//		SetVendor(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceFileUpsert) {
//			SetVendor(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceFileCreate) OnConflict(opts ...sql.ConflictOption) *SourceFileUpsertOne {
	_c.conflict = opts
	return &SourceFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceFileCreate) OnConflictColumns(columns ...string) *SourceFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceFileUpsertOne{
		create: _c,
	}
}

type (
	// SourceFileUpsertOne is the builder for "upsert"-ing
	//  one SourceFile node.
	SourceFileUpsertOne struct {
		create *SourceFileCreate
	}

	// SourceFileUpsert is the "OnConflict" setter.
	SourceFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendor sets the "vendor" field.
func (u *SourceFileUpsert) SetVendor(v string) *SourceFileUpsert {
	u.Set(sourcefile.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateVendor() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldVendor)
	return u
}

// SetFilename sets the "filename" field.
func (u *SourceFileUpsert) SetFilename(v string) *SourceFileUpsert {
	u.Set(sourcefile.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateFilename() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldFilename)
	return u
}

// SetFileExt sets the "file_ext" field.
func (u *SourceFileUpsert) SetFileExt(v string) *SourceFileUpsert {
	u.Set(sourcefile.FieldFileExt, v)
	return u
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateFileExt() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldFileExt)
	return u
}

// SetArchivePath sets the "archive_path" field.
func (u *SourceFileUpsert) SetArchivePath(v string) *SourceFileUpsert {
	u.Set(sourcefile.FieldArchivePath, v)
	return u
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateArchivePath() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldArchivePath)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *SourceFileUpsert) SetContentHash(v []byte) *SourceFileUpsert {
	u.Set(sourcefile.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateContentHash() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldContentHash)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *SourceFileUpsert) SetFileSize(v int) *SourceFileUpsert {
	u.Set(sourcefile.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateFileSize() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *SourceFileUpsert) AddFileSize(v int) *SourceFileUpsert {
	u.Add(sourcefile.FieldFileSize, v)
	return u
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *SourceFileUpsert) SetUploadedAt(v time.Time) *SourceFileUpsert {
	u.Set(sourcefile.FieldUploadedAt, v)
	return u
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *SourceFileUpsert) UpdateUploadedAt() *SourceFileUpsert {
	u.SetExcluded(sourcefile.FieldUploadedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcefile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceFileUpsertOne) UpdateNewValues() *SourceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcefile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceFileUpsertOne) Ignore() *SourceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceFileUpsertOne) DoNothing() *SourceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceFileCreate.OnConflict
// documentation for more info.
func (u *SourceFileUpsertOne) Update(set func(*SourceFileUpsert)) *SourceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendor sets the "vendor" field.
func (u *SourceFileUpsertOne) SetVendor(v string) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateVendor() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateVendor()
	})
}

// SetFilename sets the "filename" field.
func (u *SourceFileUpsertOne) SetFilename(v string) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateFilename() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFilename()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *SourceFileUpsertOne) SetFileExt(v string) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateFileExt() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFileExt()
	})
}

// SetArchivePath sets the "archive_path" field.
func (u *SourceFileUpsertOne) SetArchivePath(v string) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetArchivePath(v)
	})
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateArchivePath() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateArchivePath()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SourceFileUpsertOne) SetContentHash(v []byte) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateContentHash() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateContentHash()
	})
}

// SetFileSize sets the "file_size" field.
func (u *SourceFileUpsertOne) SetFileSize(v int) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *SourceFileUpsertOne) AddFileSize(v int) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateFileSize() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *SourceFileUpsertOne) SetUploadedAt(v time.Time) *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *SourceFileUpsertOne) UpdateUploadedAt() *SourceFileUpsertOne {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *SourceFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceFileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceFileUpsertOne.ID is not supported by MySQL driver. Use SourceFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceFileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceFileCreateBulk is the builder for creating many SourceFile entities in bulk.
type SourceFileCreateBulk struct {
	config
	err      error
	builders []*SourceFileCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceFile entities in the database.
func (_c *SourceFileCreateBulk) Save(ctx context.Context) ([]*SourceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceFileMutation)
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
func (_c *SourceFileCreateBulk) SaveX(ctx context.Context) []*SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceFileUpsert) {
//			SetVendor(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceFileUpsertBulk {
	_c.conflict = opts
	return &SourceFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceFileCreateBulk) OnConflictColumns(columns ...string) *SourceFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceFileUpsertBulk{
		create: _c,
	}
}

// SourceFileUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceFile nodes.
type SourceFileUpsertBulk struct {
	create *SourceFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcefile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceFileUpsertBulk) UpdateNewValues() *SourceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcefile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceFileUpsertBulk) Ignore() *SourceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceFileUpsertBulk) DoNothing() *SourceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceFileCreateBulk.OnConflict
// documentation for more info.
func (u *SourceFileUpsertBulk) Update(set func(*SourceFileUpsert)) *SourceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendor sets the "vendor" field.
func (u *SourceFileUpsertBulk) SetVendor(v string) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateVendor() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateVendor()
	})
}

// SetFilename sets the "filename" field.
func (u *SourceFileUpsertBulk) SetFilename(v string) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateFilename() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFilename()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *SourceFileUpsertBulk) SetFileExt(v string) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateFileExt() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFileExt()
	})
}

// SetArchivePath sets the "archive_path" field.
func (u *SourceFileUpsertBulk) SetArchivePath(v string) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetArchivePath(v)
	})
}

// UpdateArchivePath sets the "archive_path" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateArchivePath() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateArchivePath()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SourceFileUpsertBulk) SetContentHash(v []byte) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateContentHash() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateContentHash()
	})
}

// SetFileSize sets the "file_size" field.
func (u *SourceFileUpsertBulk) SetFileSize(v int) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *SourceFileUpsertBulk) AddFileSize(v int) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateFileSize() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetUploadedAt sets the "uploaded_at" field.
func (u *SourceFileUpsertBulk) SetUploadedAt(v time.Time) *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.SetUploadedAt(v)
	})
}

// UpdateUploadedAt sets the "uploaded_at" field to the value that was provided on create.
func (u *SourceFileUpsertBulk) UpdateUploadedAt() *SourceFileUpsertBulk {
	return u.Update(func(s *SourceFileUpsert) {
		s.UpdateUploadedAt()
	})
}

// Exec executes the query.
func (u *SourceFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
