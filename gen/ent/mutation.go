// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/predicate"
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportJob   = "ImportJob"
	TypePriceRecord = "PriceRecord"
	TypeSourceFile  = "SourceFile"
)

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	vendor               *string
	format               *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	price_date           *time.Time
	rows_extracted       *int
	addrows_extracted    *int
	rows_loaded          *int
	addrows_loaded       *int
	rows_unrecognized    *int
	addrows_unrecognized *int
	clearedFields        map[string]struct{}
	file                 *uuid.UUID
	clearedfile          bool
	records              map[uuid.UUID]struct{}
	removedrecords       map[uuid.UUID]struct{}
	clearedrecords       bool
	done                 bool
	oldValue             func(context.Context) (*ImportJob, error)
	predicates           []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ImportJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ImportJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ImportJobMutation) ResetFileID() {
	m.file = nil
}

// SetVendor sets the "vendor" field.
func (m *ImportJobMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *ImportJobMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *ImportJobMutation) ResetVendor() {
	m.vendor = nil
}

// SetFormat sets the "format" field.
func (m *ImportJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ImportJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ImportJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ImportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ImportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ImportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[importjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ImportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ImportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, importjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ImportJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[importjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ImportJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[importjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, importjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetPriceDate sets the "price_date" field.
func (m *ImportJobMutation) SetPriceDate(t time.Time) {
	m.price_date = &t
}

// PriceDate returns the value of the "price_date" field in the mutation.
func (m *ImportJobMutation) PriceDate() (r time.Time, exists bool) {
	v := m.price_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceDate returns the old "price_date" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldPriceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceDate: %w", err)
	}
	return oldValue.PriceDate, nil
}

// ClearPriceDate clears the value of the "price_date" field.
func (m *ImportJobMutation) ClearPriceDate() {
	m.price_date = nil
	m.clearedFields[importjob.FieldPriceDate] = struct{}{}
}

// PriceDateCleared returns if the "price_date" field was cleared in this mutation.
func (m *ImportJobMutation) PriceDateCleared() bool {
	_, ok := m.clearedFields[importjob.FieldPriceDate]
	return ok
}

// ResetPriceDate resets all changes to the "price_date" field.
func (m *ImportJobMutation) ResetPriceDate() {
	m.price_date = nil
	delete(m.clearedFields, importjob.FieldPriceDate)
}

// SetRowsExtracted sets the "rows_extracted" field.
func (m *ImportJobMutation) SetRowsExtracted(i int) {
	m.rows_extracted = &i
	m.addrows_extracted = nil
}

// RowsExtracted returns the value of the "rows_extracted" field in the mutation.
func (m *ImportJobMutation) RowsExtracted() (r int, exists bool) {
	v := m.rows_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsExtracted returns the old "rows_extracted" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldRowsExtracted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsExtracted: %w", err)
	}
	return oldValue.RowsExtracted, nil
}

// AddRowsExtracted adds i to the "rows_extracted" field.
func (m *ImportJobMutation) AddRowsExtracted(i int) {
	if m.addrows_extracted != nil {
		*m.addrows_extracted += i
	} else {
		m.addrows_extracted = &i
	}
}

// AddedRowsExtracted returns the value that was added to the "rows_extracted" field in this mutation.
func (m *ImportJobMutation) AddedRowsExtracted() (r int, exists bool) {
	v := m.addrows_extracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsExtracted resets all changes to the "rows_extracted" field.
func (m *ImportJobMutation) ResetRowsExtracted() {
	m.rows_extracted = nil
	m.addrows_extracted = nil
}

// SetRowsLoaded sets the "rows_loaded" field.
func (m *ImportJobMutation) SetRowsLoaded(i int) {
	m.rows_loaded = &i
	m.addrows_loaded = nil
}

// RowsLoaded returns the value of the "rows_loaded" field in the mutation.
func (m *ImportJobMutation) RowsLoaded() (r int, exists bool) {
	v := m.rows_loaded
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsLoaded returns the old "rows_loaded" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldRowsLoaded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsLoaded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsLoaded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsLoaded: %w", err)
	}
	return oldValue.RowsLoaded, nil
}

// AddRowsLoaded adds i to the "rows_loaded" field.
func (m *ImportJobMutation) AddRowsLoaded(i int) {
	if m.addrows_loaded != nil {
		*m.addrows_loaded += i
	} else {
		m.addrows_loaded = &i
	}
}

// AddedRowsLoaded returns the value that was added to the "rows_loaded" field in this mutation.
func (m *ImportJobMutation) AddedRowsLoaded() (r int, exists bool) {
	v := m.addrows_loaded
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsLoaded resets all changes to the "rows_loaded" field.
func (m *ImportJobMutation) ResetRowsLoaded() {
	m.rows_loaded = nil
	m.addrows_loaded = nil
}

// SetRowsUnrecognized sets the "rows_unrecognized" field.
func (m *ImportJobMutation) SetRowsUnrecognized(i int) {
	m.rows_unrecognized = &i
	m.addrows_unrecognized = nil
}

// RowsUnrecognized returns the value of the "rows_unrecognized" field in the mutation.
func (m *ImportJobMutation) RowsUnrecognized() (r int, exists bool) {
	v := m.rows_unrecognized
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsUnrecognized returns the old "rows_unrecognized" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldRowsUnrecognized(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsUnrecognized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsUnrecognized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsUnrecognized: %w", err)
	}
	return oldValue.RowsUnrecognized, nil
}

// AddRowsUnrecognized adds i to the "rows_unrecognized" field.
func (m *ImportJobMutation) AddRowsUnrecognized(i int) {
	if m.addrows_unrecognized != nil {
		*m.addrows_unrecognized += i
	} else {
		m.addrows_unrecognized = &i
	}
}

// AddedRowsUnrecognized returns the value that was added to the "rows_unrecognized" field in this mutation.
func (m *ImportJobMutation) AddedRowsUnrecognized() (r int, exists bool) {
	v := m.addrows_unrecognized
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsUnrecognized resets all changes to the "rows_unrecognized" field.
func (m *ImportJobMutation) ResetRowsUnrecognized() {
	m.rows_unrecognized = nil
	m.addrows_unrecognized = nil
}

// ClearFile clears the "file" edge to the SourceFile entity.
func (m *ImportJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[importjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the SourceFile entity was cleared.
func (m *ImportJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ImportJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ImportJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// AddRecordIDs adds the "records" edge to the PriceRecord entity by ids.
func (m *ImportJobMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the PriceRecord entity.
func (m *ImportJobMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the PriceRecord entity was cleared.
func (m *ImportJobMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the PriceRecord entity by IDs.
func (m *ImportJobMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the PriceRecord entity.
func (m *ImportJobMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ImportJobMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ImportJobMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file != nil {
		fields = append(fields, importjob.FieldFileID)
	}
	if m.vendor != nil {
		fields = append(fields, importjob.FieldVendor)
	}
	if m.format != nil {
		fields = append(fields, importjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.price_date != nil {
		fields = append(fields, importjob.FieldPriceDate)
	}
	if m.rows_extracted != nil {
		fields = append(fields, importjob.FieldRowsExtracted)
	}
	if m.rows_loaded != nil {
		fields = append(fields, importjob.FieldRowsLoaded)
	}
	if m.rows_unrecognized != nil {
		fields = append(fields, importjob.FieldRowsUnrecognized)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldFileID:
		return m.FileID()
	case importjob.FieldVendor:
		return m.Vendor()
	case importjob.FieldFormat:
		return m.Format()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldFinishedAt:
		return m.FinishedAt()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldPriceDate:
		return m.PriceDate()
	case importjob.FieldRowsExtracted:
		return m.RowsExtracted()
	case importjob.FieldRowsLoaded:
		return m.RowsLoaded()
	case importjob.FieldRowsUnrecognized:
		return m.RowsUnrecognized()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldFileID:
		return m.OldFileID(ctx)
	case importjob.FieldVendor:
		return m.OldVendor(ctx)
	case importjob.FieldFormat:
		return m.OldFormat(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldPriceDate:
		return m.OldPriceDate(ctx)
	case importjob.FieldRowsExtracted:
		return m.OldRowsExtracted(ctx)
	case importjob.FieldRowsLoaded:
		return m.OldRowsLoaded(ctx)
	case importjob.FieldRowsUnrecognized:
		return m.OldRowsUnrecognized(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case importjob.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case importjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldPriceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceDate(v)
		return nil
	case importjob.FieldRowsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsExtracted(v)
		return nil
	case importjob.FieldRowsLoaded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsLoaded(v)
		return nil
	case importjob.FieldRowsUnrecognized:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsUnrecognized(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addrows_extracted != nil {
		fields = append(fields, importjob.FieldRowsExtracted)
	}
	if m.addrows_loaded != nil {
		fields = append(fields, importjob.FieldRowsLoaded)
	}
	if m.addrows_unrecognized != nil {
		fields = append(fields, importjob.FieldRowsUnrecognized)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldRowsExtracted:
		return m.AddedRowsExtracted()
	case importjob.FieldRowsLoaded:
		return m.AddedRowsLoaded()
	case importjob.FieldRowsUnrecognized:
		return m.AddedRowsUnrecognized()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldRowsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsExtracted(v)
		return nil
	case importjob.FieldRowsLoaded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsLoaded(v)
		return nil
	case importjob.FieldRowsUnrecognized:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsUnrecognized(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldFinishedAt) {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.FieldCleared(importjob.FieldStatus) {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldPriceDate) {
		fields = append(fields, importjob.FieldPriceDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case importjob.FieldStatus:
		m.ClearStatus()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldPriceDate:
		m.ClearPriceDate()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldFileID:
		m.ResetFileID()
		return nil
	case importjob.FieldVendor:
		m.ResetVendor()
		return nil
	case importjob.FieldFormat:
		m.ResetFormat()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldPriceDate:
		m.ResetPriceDate()
		return nil
	case importjob.FieldRowsExtracted:
		m.ResetRowsExtracted()
		return nil
	case importjob.FieldRowsLoaded:
		m.ResetRowsLoaded()
		return nil
	case importjob.FieldRowsUnrecognized:
		m.ResetRowsUnrecognized()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, importjob.EdgeFile)
	}
	if m.records != nil {
		edges = append(edges, importjob.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case importjob.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecords != nil {
		edges = append(edges, importjob.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case importjob.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, importjob.EdgeFile)
	}
	if m.clearedrecords {
		edges = append(edges, importjob.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	switch name {
	case importjob.EdgeFile:
		return m.clearedfile
	case importjob.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	switch name {
	case importjob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	switch name {
	case importjob.EdgeFile:
		m.ResetFile()
		return nil
	case importjob.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// PriceRecordMutation represents an operation that mutates the PriceRecord nodes in the graph.
type PriceRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	key_date            *string
	vendor              *string
	provider_code       *string
	price_date          *time.Time
	product             *string
	category            *string
	price               *float64
	addprice            *float64
	size_grade          *string
	quality             *string
	catch_method        *string
	cut                 *string
	state               *string
	origin              *string
	production_type     *string
	slaughter_technique *string
	color               *string
	conservation        *string
	label               *string
	trim_code           *string
	raw_info            *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	job                 *uuid.UUID
	clearedjob          bool
	done                bool
	oldValue            func(context.Context) (*PriceRecord, error)
	predicates          []predicate.PriceRecord
}

var _ ent.Mutation = (*PriceRecordMutation)(nil)

// pricerecordOption allows management of the mutation configuration using functional options.
type pricerecordOption func(*PriceRecordMutation)

// newPriceRecordMutation creates new mutation for the PriceRecord entity.
func newPriceRecordMutation(c config, op Op, opts ...pricerecordOption) *PriceRecordMutation {
	m := &PriceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePriceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPriceRecordID sets the ID field of the mutation.
func withPriceRecordID(id uuid.UUID) pricerecordOption {
	return func(m *PriceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PriceRecord
		)
		m.oldValue = func(ctx context.Context) (*PriceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PriceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPriceRecord sets the old PriceRecord of the mutation.
func withPriceRecord(node *PriceRecord) pricerecordOption {
	return func(m *PriceRecordMutation) {
		m.oldValue = func(context.Context) (*PriceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PriceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PriceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PriceRecord entities.
func (m *PriceRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PriceRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PriceRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PriceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeyDate sets the "key_date" field.
func (m *PriceRecordMutation) SetKeyDate(s string) {
	m.key_date = &s
}

// KeyDate returns the value of the "key_date" field in the mutation.
func (m *PriceRecordMutation) KeyDate() (r string, exists bool) {
	v := m.key_date
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyDate returns the old "key_date" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldKeyDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyDate: %w", err)
	}
	return oldValue.KeyDate, nil
}

// ResetKeyDate resets all changes to the "key_date" field.
func (m *PriceRecordMutation) ResetKeyDate() {
	m.key_date = nil
}

// SetVendor sets the "vendor" field.
func (m *PriceRecordMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *PriceRecordMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *PriceRecordMutation) ResetVendor() {
	m.vendor = nil
}

// SetProviderCode sets the "provider_code" field.
func (m *PriceRecordMutation) SetProviderCode(s string) {
	m.provider_code = &s
}

// ProviderCode returns the value of the "provider_code" field in the mutation.
func (m *PriceRecordMutation) ProviderCode() (r string, exists bool) {
	v := m.provider_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderCode returns the old "provider_code" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldProviderCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderCode: %w", err)
	}
	return oldValue.ProviderCode, nil
}

// ResetProviderCode resets all changes to the "provider_code" field.
func (m *PriceRecordMutation) ResetProviderCode() {
	m.provider_code = nil
}

// SetPriceDate sets the "price_date" field.
func (m *PriceRecordMutation) SetPriceDate(t time.Time) {
	m.price_date = &t
}

// PriceDate returns the value of the "price_date" field in the mutation.
func (m *PriceRecordMutation) PriceDate() (r time.Time, exists bool) {
	v := m.price_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceDate returns the old "price_date" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldPriceDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceDate: %w", err)
	}
	return oldValue.PriceDate, nil
}

// ResetPriceDate resets all changes to the "price_date" field.
func (m *PriceRecordMutation) ResetPriceDate() {
	m.price_date = nil
}

// SetJobID sets the "job_id" field.
func (m *PriceRecordMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PriceRecordMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *PriceRecordMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[pricerecord.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *PriceRecordMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PriceRecordMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, pricerecord.FieldJobID)
}

// SetProduct sets the "product" field.
func (m *PriceRecordMutation) SetProduct(s string) {
	m.product = &s
}

// Product returns the value of the "product" field in the mutation.
func (m *PriceRecordMutation) Product() (r string, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProduct returns the old "product" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldProduct(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProduct: %w", err)
	}
	return oldValue.Product, nil
}

// ResetProduct resets all changes to the "product" field.
func (m *PriceRecordMutation) ResetProduct() {
	m.product = nil
}

// SetCategory sets the "category" field.
func (m *PriceRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PriceRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *PriceRecordMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[pricerecord.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *PriceRecordMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *PriceRecordMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, pricerecord.FieldCategory)
}

// SetPrice sets the "price" field.
func (m *PriceRecordMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *PriceRecordMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *PriceRecordMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *PriceRecordMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *PriceRecordMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[pricerecord.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *PriceRecordMutation) PriceCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *PriceRecordMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, pricerecord.FieldPrice)
}

// SetSizeGrade sets the "size_grade" field.
func (m *PriceRecordMutation) SetSizeGrade(s string) {
	m.size_grade = &s
}

// SizeGrade returns the value of the "size_grade" field in the mutation.
func (m *PriceRecordMutation) SizeGrade() (r string, exists bool) {
	v := m.size_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeGrade returns the old "size_grade" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldSizeGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeGrade: %w", err)
	}
	return oldValue.SizeGrade, nil
}

// ClearSizeGrade clears the value of the "size_grade" field.
func (m *PriceRecordMutation) ClearSizeGrade() {
	m.size_grade = nil
	m.clearedFields[pricerecord.FieldSizeGrade] = struct{}{}
}

// SizeGradeCleared returns if the "size_grade" field was cleared in this mutation.
func (m *PriceRecordMutation) SizeGradeCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldSizeGrade]
	return ok
}

// ResetSizeGrade resets all changes to the "size_grade" field.
func (m *PriceRecordMutation) ResetSizeGrade() {
	m.size_grade = nil
	delete(m.clearedFields, pricerecord.FieldSizeGrade)
}

// SetQuality sets the "quality" field.
func (m *PriceRecordMutation) SetQuality(s string) {
	m.quality = &s
}

// Quality returns the value of the "quality" field in the mutation.
func (m *PriceRecordMutation) Quality() (r string, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldQuality(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// ClearQuality clears the value of the "quality" field.
func (m *PriceRecordMutation) ClearQuality() {
	m.quality = nil
	m.clearedFields[pricerecord.FieldQuality] = struct{}{}
}

// QualityCleared returns if the "quality" field was cleared in this mutation.
func (m *PriceRecordMutation) QualityCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldQuality]
	return ok
}

// ResetQuality resets all changes to the "quality" field.
func (m *PriceRecordMutation) ResetQuality() {
	m.quality = nil
	delete(m.clearedFields, pricerecord.FieldQuality)
}

// SetCatchMethod sets the "catch_method" field.
func (m *PriceRecordMutation) SetCatchMethod(s string) {
	m.catch_method = &s
}

// CatchMethod returns the value of the "catch_method" field in the mutation.
func (m *PriceRecordMutation) CatchMethod() (r string, exists bool) {
	v := m.catch_method
	if v == nil {
		return
	}
	return *v, true
}

// OldCatchMethod returns the old "catch_method" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCatchMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatchMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatchMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatchMethod: %w", err)
	}
	return oldValue.CatchMethod, nil
}

// ClearCatchMethod clears the value of the "catch_method" field.
func (m *PriceRecordMutation) ClearCatchMethod() {
	m.catch_method = nil
	m.clearedFields[pricerecord.FieldCatchMethod] = struct{}{}
}

// CatchMethodCleared returns if the "catch_method" field was cleared in this mutation.
func (m *PriceRecordMutation) CatchMethodCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldCatchMethod]
	return ok
}

// ResetCatchMethod resets all changes to the "catch_method" field.
func (m *PriceRecordMutation) ResetCatchMethod() {
	m.catch_method = nil
	delete(m.clearedFields, pricerecord.FieldCatchMethod)
}

// SetCut sets the "cut" field.
func (m *PriceRecordMutation) SetCut(s string) {
	m.cut = &s
}

// Cut returns the value of the "cut" field in the mutation.
func (m *PriceRecordMutation) Cut() (r string, exists bool) {
	v := m.cut
	if v == nil {
		return
	}
	return *v, true
}

// OldCut returns the old "cut" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCut(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCut: %w", err)
	}
	return oldValue.Cut, nil
}

// ClearCut clears the value of the "cut" field.
func (m *PriceRecordMutation) ClearCut() {
	m.cut = nil
	m.clearedFields[pricerecord.FieldCut] = struct{}{}
}

// CutCleared returns if the "cut" field was cleared in this mutation.
func (m *PriceRecordMutation) CutCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldCut]
	return ok
}

// ResetCut resets all changes to the "cut" field.
func (m *PriceRecordMutation) ResetCut() {
	m.cut = nil
	delete(m.clearedFields, pricerecord.FieldCut)
}

// SetState sets the "state" field.
func (m *PriceRecordMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *PriceRecordMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *PriceRecordMutation) ClearState() {
	m.state = nil
	m.clearedFields[pricerecord.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *PriceRecordMutation) StateCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *PriceRecordMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, pricerecord.FieldState)
}

// SetOrigin sets the "origin" field.
func (m *PriceRecordMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *PriceRecordMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldOrigin(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ClearOrigin clears the value of the "origin" field.
func (m *PriceRecordMutation) ClearOrigin() {
	m.origin = nil
	m.clearedFields[pricerecord.FieldOrigin] = struct{}{}
}

// OriginCleared returns if the "origin" field was cleared in this mutation.
func (m *PriceRecordMutation) OriginCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldOrigin]
	return ok
}

// ResetOrigin resets all changes to the "origin" field.
func (m *PriceRecordMutation) ResetOrigin() {
	m.origin = nil
	delete(m.clearedFields, pricerecord.FieldOrigin)
}

// SetProductionType sets the "production_type" field.
func (m *PriceRecordMutation) SetProductionType(s string) {
	m.production_type = &s
}

// ProductionType returns the value of the "production_type" field in the mutation.
func (m *PriceRecordMutation) ProductionType() (r string, exists bool) {
	v := m.production_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProductionType returns the old "production_type" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldProductionType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductionType: %w", err)
	}
	return oldValue.ProductionType, nil
}

// ClearProductionType clears the value of the "production_type" field.
func (m *PriceRecordMutation) ClearProductionType() {
	m.production_type = nil
	m.clearedFields[pricerecord.FieldProductionType] = struct{}{}
}

// ProductionTypeCleared returns if the "production_type" field was cleared in this mutation.
func (m *PriceRecordMutation) ProductionTypeCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldProductionType]
	return ok
}

// ResetProductionType resets all changes to the "production_type" field.
func (m *PriceRecordMutation) ResetProductionType() {
	m.production_type = nil
	delete(m.clearedFields, pricerecord.FieldProductionType)
}

// SetSlaughterTechnique sets the "slaughter_technique" field.
func (m *PriceRecordMutation) SetSlaughterTechnique(s string) {
	m.slaughter_technique = &s
}

// SlaughterTechnique returns the value of the "slaughter_technique" field in the mutation.
func (m *PriceRecordMutation) SlaughterTechnique() (r string, exists bool) {
	v := m.slaughter_technique
	if v == nil {
		return
	}
	return *v, true
}

// OldSlaughterTechnique returns the old "slaughter_technique" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldSlaughterTechnique(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlaughterTechnique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlaughterTechnique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlaughterTechnique: %w", err)
	}
	return oldValue.SlaughterTechnique, nil
}

// ClearSlaughterTechnique clears the value of the "slaughter_technique" field.
func (m *PriceRecordMutation) ClearSlaughterTechnique() {
	m.slaughter_technique = nil
	m.clearedFields[pricerecord.FieldSlaughterTechnique] = struct{}{}
}

// SlaughterTechniqueCleared returns if the "slaughter_technique" field was cleared in this mutation.
func (m *PriceRecordMutation) SlaughterTechniqueCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldSlaughterTechnique]
	return ok
}

// ResetSlaughterTechnique resets all changes to the "slaughter_technique" field.
func (m *PriceRecordMutation) ResetSlaughterTechnique() {
	m.slaughter_technique = nil
	delete(m.clearedFields, pricerecord.FieldSlaughterTechnique)
}

// SetColor sets the "color" field.
func (m *PriceRecordMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *PriceRecordMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *PriceRecordMutation) ClearColor() {
	m.color = nil
	m.clearedFields[pricerecord.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *PriceRecordMutation) ColorCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *PriceRecordMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, pricerecord.FieldColor)
}

// SetConservation sets the "conservation" field.
func (m *PriceRecordMutation) SetConservation(s string) {
	m.conservation = &s
}

// Conservation returns the value of the "conservation" field in the mutation.
func (m *PriceRecordMutation) Conservation() (r string, exists bool) {
	v := m.conservation
	if v == nil {
		return
	}
	return *v, true
}

// OldConservation returns the old "conservation" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldConservation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConservation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConservation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConservation: %w", err)
	}
	return oldValue.Conservation, nil
}

// ClearConservation clears the value of the "conservation" field.
func (m *PriceRecordMutation) ClearConservation() {
	m.conservation = nil
	m.clearedFields[pricerecord.FieldConservation] = struct{}{}
}

// ConservationCleared returns if the "conservation" field was cleared in this mutation.
func (m *PriceRecordMutation) ConservationCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldConservation]
	return ok
}

// ResetConservation resets all changes to the "conservation" field.
func (m *PriceRecordMutation) ResetConservation() {
	m.conservation = nil
	delete(m.clearedFields, pricerecord.FieldConservation)
}

// SetLabel sets the "label" field.
func (m *PriceRecordMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *PriceRecordMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *PriceRecordMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[pricerecord.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *PriceRecordMutation) LabelCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *PriceRecordMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, pricerecord.FieldLabel)
}

// SetTrimCode sets the "trim_code" field.
func (m *PriceRecordMutation) SetTrimCode(s string) {
	m.trim_code = &s
}

// TrimCode returns the value of the "trim_code" field in the mutation.
func (m *PriceRecordMutation) TrimCode() (r string, exists bool) {
	v := m.trim_code
	if v == nil {
		return
	}
	return *v, true
}

// OldTrimCode returns the old "trim_code" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldTrimCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrimCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrimCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrimCode: %w", err)
	}
	return oldValue.TrimCode, nil
}

// ClearTrimCode clears the value of the "trim_code" field.
func (m *PriceRecordMutation) ClearTrimCode() {
	m.trim_code = nil
	m.clearedFields[pricerecord.FieldTrimCode] = struct{}{}
}

// TrimCodeCleared returns if the "trim_code" field was cleared in this mutation.
func (m *PriceRecordMutation) TrimCodeCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldTrimCode]
	return ok
}

// ResetTrimCode resets all changes to the "trim_code" field.
func (m *PriceRecordMutation) ResetTrimCode() {
	m.trim_code = nil
	delete(m.clearedFields, pricerecord.FieldTrimCode)
}

// SetRawInfo sets the "raw_info" field.
func (m *PriceRecordMutation) SetRawInfo(s string) {
	m.raw_info = &s
}

// RawInfo returns the value of the "raw_info" field in the mutation.
func (m *PriceRecordMutation) RawInfo() (r string, exists bool) {
	v := m.raw_info
	if v == nil {
		return
	}
	return *v, true
}

// OldRawInfo returns the old "raw_info" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldRawInfo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawInfo: %w", err)
	}
	return oldValue.RawInfo, nil
}

// ClearRawInfo clears the value of the "raw_info" field.
func (m *PriceRecordMutation) ClearRawInfo() {
	m.raw_info = nil
	m.clearedFields[pricerecord.FieldRawInfo] = struct{}{}
}

// RawInfoCleared returns if the "raw_info" field was cleared in this mutation.
func (m *PriceRecordMutation) RawInfoCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldRawInfo]
	return ok
}

// ResetRawInfo resets all changes to the "raw_info" field.
func (m *PriceRecordMutation) ResetRawInfo() {
	m.raw_info = nil
	delete(m.clearedFields, pricerecord.FieldRawInfo)
}

// SetCreatedAt sets the "created_at" field.
func (m *PriceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PriceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PriceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PriceRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PriceRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PriceRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ImportJob entity.
func (m *PriceRecordMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[pricerecord.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ImportJob entity was cleared.
func (m *PriceRecordMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *PriceRecordMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *PriceRecordMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the PriceRecordMutation builder.
func (m *PriceRecordMutation) Where(ps ...predicate.PriceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PriceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PriceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PriceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PriceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PriceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PriceRecord).
func (m *PriceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PriceRecordMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.key_date != nil {
		fields = append(fields, pricerecord.FieldKeyDate)
	}
	if m.vendor != nil {
		fields = append(fields, pricerecord.FieldVendor)
	}
	if m.provider_code != nil {
		fields = append(fields, pricerecord.FieldProviderCode)
	}
	if m.price_date != nil {
		fields = append(fields, pricerecord.FieldPriceDate)
	}
	if m.job != nil {
		fields = append(fields, pricerecord.FieldJobID)
	}
	if m.product != nil {
		fields = append(fields, pricerecord.FieldProduct)
	}
	if m.category != nil {
		fields = append(fields, pricerecord.FieldCategory)
	}
	if m.price != nil {
		fields = append(fields, pricerecord.FieldPrice)
	}
	if m.size_grade != nil {
		fields = append(fields, pricerecord.FieldSizeGrade)
	}
	if m.quality != nil {
		fields = append(fields, pricerecord.FieldQuality)
	}
	if m.catch_method != nil {
		fields = append(fields, pricerecord.FieldCatchMethod)
	}
	if m.cut != nil {
		fields = append(fields, pricerecord.FieldCut)
	}
	if m.state != nil {
		fields = append(fields, pricerecord.FieldState)
	}
	if m.origin != nil {
		fields = append(fields, pricerecord.FieldOrigin)
	}
	if m.production_type != nil {
		fields = append(fields, pricerecord.FieldProductionType)
	}
	if m.slaughter_technique != nil {
		fields = append(fields, pricerecord.FieldSlaughterTechnique)
	}
	if m.color != nil {
		fields = append(fields, pricerecord.FieldColor)
	}
	if m.conservation != nil {
		fields = append(fields, pricerecord.FieldConservation)
	}
	if m.label != nil {
		fields = append(fields, pricerecord.FieldLabel)
	}
	if m.trim_code != nil {
		fields = append(fields, pricerecord.FieldTrimCode)
	}
	if m.raw_info != nil {
		fields = append(fields, pricerecord.FieldRawInfo)
	}
	if m.created_at != nil {
		fields = append(fields, pricerecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pricerecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PriceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pricerecord.FieldKeyDate:
		return m.KeyDate()
	case pricerecord.FieldVendor:
		return m.Vendor()
	case pricerecord.FieldProviderCode:
		return m.ProviderCode()
	case pricerecord.FieldPriceDate:
		return m.PriceDate()
	case pricerecord.FieldJobID:
		return m.JobID()
	case pricerecord.FieldProduct:
		return m.Product()
	case pricerecord.FieldCategory:
		return m.Category()
	case pricerecord.FieldPrice:
		return m.Price()
	case pricerecord.FieldSizeGrade:
		return m.SizeGrade()
	case pricerecord.FieldQuality:
		return m.Quality()
	case pricerecord.FieldCatchMethod:
		return m.CatchMethod()
	case pricerecord.FieldCut:
		return m.Cut()
	case pricerecord.FieldState:
		return m.State()
	case pricerecord.FieldOrigin:
		return m.Origin()
	case pricerecord.FieldProductionType:
		return m.ProductionType()
	case pricerecord.FieldSlaughterTechnique:
		return m.SlaughterTechnique()
	case pricerecord.FieldColor:
		return m.Color()
	case pricerecord.FieldConservation:
		return m.Conservation()
	case pricerecord.FieldLabel:
		return m.Label()
	case pricerecord.FieldTrimCode:
		return m.TrimCode()
	case pricerecord.FieldRawInfo:
		return m.RawInfo()
	case pricerecord.FieldCreatedAt:
		return m.CreatedAt()
	case pricerecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PriceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pricerecord.FieldKeyDate:
		return m.OldKeyDate(ctx)
	case pricerecord.FieldVendor:
		return m.OldVendor(ctx)
	case pricerecord.FieldProviderCode:
		return m.OldProviderCode(ctx)
	case pricerecord.FieldPriceDate:
		return m.OldPriceDate(ctx)
	case pricerecord.FieldJobID:
		return m.OldJobID(ctx)
	case pricerecord.FieldProduct:
		return m.OldProduct(ctx)
	case pricerecord.FieldCategory:
		return m.OldCategory(ctx)
	case pricerecord.FieldPrice:
		return m.OldPrice(ctx)
	case pricerecord.FieldSizeGrade:
		return m.OldSizeGrade(ctx)
	case pricerecord.FieldQuality:
		return m.OldQuality(ctx)
	case pricerecord.FieldCatchMethod:
		return m.OldCatchMethod(ctx)
	case pricerecord.FieldCut:
		return m.OldCut(ctx)
	case pricerecord.FieldState:
		return m.OldState(ctx)
	case pricerecord.FieldOrigin:
		return m.OldOrigin(ctx)
	case pricerecord.FieldProductionType:
		return m.OldProductionType(ctx)
	case pricerecord.FieldSlaughterTechnique:
		return m.OldSlaughterTechnique(ctx)
	case pricerecord.FieldColor:
		return m.OldColor(ctx)
	case pricerecord.FieldConservation:
		return m.OldConservation(ctx)
	case pricerecord.FieldLabel:
		return m.OldLabel(ctx)
	case pricerecord.FieldTrimCode:
		return m.OldTrimCode(ctx)
	case pricerecord.FieldRawInfo:
		return m.OldRawInfo(ctx)
	case pricerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pricerecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PriceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pricerecord.FieldKeyDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyDate(v)
		return nil
	case pricerecord.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case pricerecord.FieldProviderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderCode(v)
		return nil
	case pricerecord.FieldPriceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceDate(v)
		return nil
	case pricerecord.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case pricerecord.FieldProduct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProduct(v)
		return nil
	case pricerecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case pricerecord.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case pricerecord.FieldSizeGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeGrade(v)
		return nil
	case pricerecord.FieldQuality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case pricerecord.FieldCatchMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatchMethod(v)
		return nil
	case pricerecord.FieldCut:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCut(v)
		return nil
	case pricerecord.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case pricerecord.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case pricerecord.FieldProductionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductionType(v)
		return nil
	case pricerecord.FieldSlaughterTechnique:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlaughterTechnique(v)
		return nil
	case pricerecord.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case pricerecord.FieldConservation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConservation(v)
		return nil
	case pricerecord.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case pricerecord.FieldTrimCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrimCode(v)
		return nil
	case pricerecord.FieldRawInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawInfo(v)
		return nil
	case pricerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pricerecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PriceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PriceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, pricerecord.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PriceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pricerecord.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pricerecord.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown PriceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PriceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pricerecord.FieldJobID) {
		fields = append(fields, pricerecord.FieldJobID)
	}
	if m.FieldCleared(pricerecord.FieldCategory) {
		fields = append(fields, pricerecord.FieldCategory)
	}
	if m.FieldCleared(pricerecord.FieldPrice) {
		fields = append(fields, pricerecord.FieldPrice)
	}
	if m.FieldCleared(pricerecord.FieldSizeGrade) {
		fields = append(fields, pricerecord.FieldSizeGrade)
	}
	if m.FieldCleared(pricerecord.FieldQuality) {
		fields = append(fields, pricerecord.FieldQuality)
	}
	if m.FieldCleared(pricerecord.FieldCatchMethod) {
		fields = append(fields, pricerecord.FieldCatchMethod)
	}
	if m.FieldCleared(pricerecord.FieldCut) {
		fields = append(fields, pricerecord.FieldCut)
	}
	if m.FieldCleared(pricerecord.FieldState) {
		fields = append(fields, pricerecord.FieldState)
	}
	if m.FieldCleared(pricerecord.FieldOrigin) {
		fields = append(fields, pricerecord.FieldOrigin)
	}
	if m.FieldCleared(pricerecord.FieldProductionType) {
		fields = append(fields, pricerecord.FieldProductionType)
	}
	if m.FieldCleared(pricerecord.FieldSlaughterTechnique) {
		fields = append(fields, pricerecord.FieldSlaughterTechnique)
	}
	if m.FieldCleared(pricerecord.FieldColor) {
		fields = append(fields, pricerecord.FieldColor)
	}
	if m.FieldCleared(pricerecord.FieldConservation) {
		fields = append(fields, pricerecord.FieldConservation)
	}
	if m.FieldCleared(pricerecord.FieldLabel) {
		fields = append(fields, pricerecord.FieldLabel)
	}
	if m.FieldCleared(pricerecord.FieldTrimCode) {
		fields = append(fields, pricerecord.FieldTrimCode)
	}
	if m.FieldCleared(pricerecord.FieldRawInfo) {
		fields = append(fields, pricerecord.FieldRawInfo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PriceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PriceRecordMutation) ClearField(name string) error {
	switch name {
	case pricerecord.FieldJobID:
		m.ClearJobID()
		return nil
	case pricerecord.FieldCategory:
		m.ClearCategory()
		return nil
	case pricerecord.FieldPrice:
		m.ClearPrice()
		return nil
	case pricerecord.FieldSizeGrade:
		m.ClearSizeGrade()
		return nil
	case pricerecord.FieldQuality:
		m.ClearQuality()
		return nil
	case pricerecord.FieldCatchMethod:
		m.ClearCatchMethod()
		return nil
	case pricerecord.FieldCut:
		m.ClearCut()
		return nil
	case pricerecord.FieldState:
		m.ClearState()
		return nil
	case pricerecord.FieldOrigin:
		m.ClearOrigin()
		return nil
	case pricerecord.FieldProductionType:
		m.ClearProductionType()
		return nil
	case pricerecord.FieldSlaughterTechnique:
		m.ClearSlaughterTechnique()
		return nil
	case pricerecord.FieldColor:
		m.ClearColor()
		return nil
	case pricerecord.FieldConservation:
		m.ClearConservation()
		return nil
	case pricerecord.FieldLabel:
		m.ClearLabel()
		return nil
	case pricerecord.FieldTrimCode:
		m.ClearTrimCode()
		return nil
	case pricerecord.FieldRawInfo:
		m.ClearRawInfo()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PriceRecordMutation) ResetField(name string) error {
	switch name {
	case pricerecord.FieldKeyDate:
		m.ResetKeyDate()
		return nil
	case pricerecord.FieldVendor:
		m.ResetVendor()
		return nil
	case pricerecord.FieldProviderCode:
		m.ResetProviderCode()
		return nil
	case pricerecord.FieldPriceDate:
		m.ResetPriceDate()
		return nil
	case pricerecord.FieldJobID:
		m.ResetJobID()
		return nil
	case pricerecord.FieldProduct:
		m.ResetProduct()
		return nil
	case pricerecord.FieldCategory:
		m.ResetCategory()
		return nil
	case pricerecord.FieldPrice:
		m.ResetPrice()
		return nil
	case pricerecord.FieldSizeGrade:
		m.ResetSizeGrade()
		return nil
	case pricerecord.FieldQuality:
		m.ResetQuality()
		return nil
	case pricerecord.FieldCatchMethod:
		m.ResetCatchMethod()
		return nil
	case pricerecord.FieldCut:
		m.ResetCut()
		return nil
	case pricerecord.FieldState:
		m.ResetState()
		return nil
	case pricerecord.FieldOrigin:
		m.ResetOrigin()
		return nil
	case pricerecord.FieldProductionType:
		m.ResetProductionType()
		return nil
	case pricerecord.FieldSlaughterTechnique:
		m.ResetSlaughterTechnique()
		return nil
	case pricerecord.FieldColor:
		m.ResetColor()
		return nil
	case pricerecord.FieldConservation:
		m.ResetConservation()
		return nil
	case pricerecord.FieldLabel:
		m.ResetLabel()
		return nil
	case pricerecord.FieldTrimCode:
		m.ResetTrimCode()
		return nil
	case pricerecord.FieldRawInfo:
		m.ResetRawInfo()
		return nil
	case pricerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pricerecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PriceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, pricerecord.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PriceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pricerecord.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PriceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PriceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PriceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, pricerecord.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PriceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case pricerecord.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PriceRecordMutation) ClearEdge(name string) error {
	switch name {
	case pricerecord.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PriceRecordMutation) ResetEdge(name string) error {
	switch name {
	case pricerecord.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord edge %s", name)
}

// SourceFileMutation represents an operation that mutates the SourceFile nodes in the graph.
type SourceFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	vendor        *string
	filename      *string
	file_ext      *string
	archive_path  *string
	content_hash  *[]byte
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*SourceFile, error)
	predicates    []predicate.SourceFile
}

var _ ent.Mutation = (*SourceFileMutation)(nil)

// sourcefileOption allows management of the mutation configuration using functional options.
type sourcefileOption func(*SourceFileMutation)

// newSourceFileMutation creates new mutation for the SourceFile entity.
func newSourceFileMutation(c config, op Op, opts ...sourcefileOption) *SourceFileMutation {
	m := &SourceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceFileID sets the ID field of the mutation.
func withSourceFileID(id uuid.UUID) sourcefileOption {
	return func(m *SourceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceFile
		)
		m.oldValue = func(ctx context.Context) (*SourceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceFile sets the old SourceFile of the mutation.
func withSourceFile(node *SourceFile) sourcefileOption {
	return func(m *SourceFileMutation) {
		m.oldValue = func(context.Context) (*SourceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceFile entities.
func (m *SourceFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendor sets the "vendor" field.
func (m *SourceFileMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *SourceFileMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *SourceFileMutation) ResetVendor() {
	m.vendor = nil
}

// SetFilename sets the "filename" field.
func (m *SourceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SourceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SourceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *SourceFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *SourceFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *SourceFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetArchivePath sets the "archive_path" field.
func (m *SourceFileMutation) SetArchivePath(s string) {
	m.archive_path = &s
}

// ArchivePath returns the value of the "archive_path" field in the mutation.
func (m *SourceFileMutation) ArchivePath() (r string, exists bool) {
	v := m.archive_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivePath returns the old "archive_path" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldArchivePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivePath: %w", err)
	}
	return oldValue.ArchivePath, nil
}

// ResetArchivePath resets all changes to the "archive_path" field.
func (m *SourceFileMutation) ResetArchivePath() {
	m.archive_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *SourceFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SourceFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SourceFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SourceFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SourceFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SourceFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SourceFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SourceFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ImportJob entity by ids.
func (m *SourceFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ImportJob entity.
func (m *SourceFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ImportJob entity was cleared.
func (m *SourceFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ImportJob entity by IDs.
func (m *SourceFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ImportJob entity.
func (m *SourceFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SourceFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SourceFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SourceFileMutation builder.
func (m *SourceFileMutation) Where(ps ...predicate.SourceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceFile).
func (m *SourceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.vendor != nil {
		fields = append(fields, sourcefile.FieldVendor)
	}
	if m.filename != nil {
		fields = append(fields, sourcefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, sourcefile.FieldFileExt)
	}
	if m.archive_path != nil {
		fields = append(fields, sourcefile.FieldArchivePath)
	}
	if m.content_hash != nil {
		fields = append(fields, sourcefile.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sourcefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldVendor:
		return m.Vendor()
	case sourcefile.FieldFilename:
		return m.Filename()
	case sourcefile.FieldFileExt:
		return m.FileExt()
	case sourcefile.FieldArchivePath:
		return m.ArchivePath()
	case sourcefile.FieldContentHash:
		return m.ContentHash()
	case sourcefile.FieldFileSize:
		return m.FileSize()
	case sourcefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcefile.FieldVendor:
		return m.OldVendor(ctx)
	case sourcefile.FieldFilename:
		return m.OldFilename(ctx)
	case sourcefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case sourcefile.FieldArchivePath:
		return m.OldArchivePath(ctx)
	case sourcefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourcefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case sourcefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case sourcefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sourcefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case sourcefile.FieldArchivePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivePath(v)
		return nil
	case sourcefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sourcefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceFileMutation) ResetField(name string) error {
	switch name {
	case sourcefile.FieldVendor:
		m.ResetVendor()
		return nil
	case sourcefile.FieldFilename:
		m.ResetFilename()
		return nil
	case sourcefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case sourcefile.FieldArchivePath:
		m.ResetArchivePath()
		return nil
	case sourcefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourcefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sourcefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceFileMutation) ResetEdge(name string) error {
	switch name {
	case sourcefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown SourceFile edge %s", name)
}
