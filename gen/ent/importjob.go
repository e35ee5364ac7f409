// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lacriee/prices-tracker/gen/ent/importjob"
	"github.com/lacriee/prices-tracker/gen/ent/sourcefile"
)

// ImportJob is the model entity for the ImportJob schema.
type ImportJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// Vendor holds the value of the "vendor" field.
	Vendor string `json:"vendor,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// PriceDate holds the value of the "price_date" field.
	PriceDate *time.Time `json:"price_date,omitempty"`
	// RowsExtracted holds the value of the "rows_extracted" field.
	RowsExtracted int `json:"rows_extracted,omitempty"`
	// RowsLoaded holds the value of the "rows_loaded" field.
	RowsLoaded int `json:"rows_loaded,omitempty"`
	// RowsUnrecognized holds the value of the "rows_unrecognized" field.
	RowsUnrecognized int `json:"rows_unrecognized,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportJobQuery when eager-loading is set.
	Edges        ImportJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportJobEdges holds the relations/edges for other nodes in the graph.
type ImportJobEdges struct {
	// File holds the value of the file edge.
	File *SourceFile `json:"file,omitempty"`
	// Records holds the value of the records edge.
	Records []*PriceRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImportJobEdges) FileOrErr() (*SourceFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sourcefile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e ImportJobEdges) RecordsOrErr() ([]*PriceRecord, error) {
	if e.loadedTypes[1] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importjob.FieldRowsExtracted, importjob.FieldRowsLoaded, importjob.FieldRowsUnrecognized:
			values[i] = new(sql.NullInt64)
		case importjob.FieldVendor, importjob.FieldFormat, importjob.FieldStatus, importjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case importjob.FieldStartedAt, importjob.FieldFinishedAt, importjob.FieldPriceDate:
			values[i] = new(sql.NullTime)
		case importjob.FieldID, importjob.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportJob fields.
func (_m *ImportJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importjob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case importjob.FieldVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor", values[i])
			} else if value.Valid {
				_m.Vendor = value.String
			}
		case importjob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case importjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case importjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case importjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case importjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case importjob.FieldPriceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field price_date", values[i])
			} else if value.Valid {
				_m.PriceDate = new(time.Time)
				*_m.PriceDate = value.Time
			}
		case importjob.FieldRowsExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_extracted", values[i])
			} else if value.Valid {
				_m.RowsExtracted = int(value.Int64)
			}
		case importjob.FieldRowsLoaded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_loaded", values[i])
			} else if value.Valid {
				_m.RowsLoaded = int(value.Int64)
			}
		case importjob.FieldRowsUnrecognized:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_unrecognized", values[i])
			} else if value.Valid {
				_m.RowsUnrecognized = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportJob.
// This includes values selected through modifiers, order, etc.
func (_m *ImportJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ImportJob entity.
func (_m *ImportJob) QueryFile() *SourceFileQuery {
	return NewImportJobClient(_m.config).QueryFile(_m)
}

// QueryRecords queries the "records" edge of the ImportJob entity.
func (_m *ImportJob) QueryRecords() *PriceRecordQuery {
	return NewImportJobClient(_m.config).QueryRecords(_m)
}

// Update returns a builder for updating this ImportJob.
// Note that you need to call ImportJob.Unwrap() before calling this method if this ImportJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportJob) Update() *ImportJobUpdateOne {
	return NewImportJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportJob) Unwrap() *ImportJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportJob) String() string {
	var builder strings.Builder
	builder.WriteString("ImportJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("vendor=")
	builder.WriteString(_m.Vendor)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PriceDate; v != nil {
		builder.WriteString("price_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("rows_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsExtracted))
	builder.WriteString(", ")
	builder.WriteString("rows_loaded=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsLoaded))
	builder.WriteString(", ")
	builder.WriteString("rows_unrecognized=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsUnrecognized))
	builder.WriteByte(')')
	return builder.String()
}

// ImportJobs is a parsable slice of ImportJob.
type ImportJobs []*ImportJob
