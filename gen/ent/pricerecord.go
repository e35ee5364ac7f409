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
	"github.com/lacriee/prices-tracker/gen/ent/pricerecord"
)

// PriceRecord is the model entity for the PriceRecord schema.
type PriceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// KeyDate holds the value of the "key_date" field.
	KeyDate string `json:"key_date,omitempty"`
	// Vendor holds the value of the "vendor" field.
	Vendor string `json:"vendor,omitempty"`
	// ProviderCode holds the value of the "provider_code" field.
	ProviderCode string `json:"provider_code,omitempty"`
	// PriceDate holds the value of the "price_date" field.
	PriceDate time.Time `json:"price_date,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *uuid.UUID `json:"job_id,omitempty"`
	// Product holds the value of the "product" field.
	Product string `json:"product,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// SizeGrade holds the value of the "size_grade" field.
	SizeGrade *string `json:"size_grade,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality *string `json:"quality,omitempty"`
	// CatchMethod holds the value of the "catch_method" field.
	CatchMethod *string `json:"catch_method,omitempty"`
	// Cut holds the value of the "cut" field.
	Cut *string `json:"cut,omitempty"`
	// State holds the value of the "state" field.
	State *string `json:"state,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin *string `json:"origin,omitempty"`
	// ProductionType holds the value of the "production_type" field.
	ProductionType *string `json:"production_type,omitempty"`
	// SlaughterTechnique holds the value of the "slaughter_technique" field.
	SlaughterTechnique *string `json:"slaughter_technique,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// Conservation holds the value of the "conservation" field.
	Conservation *string `json:"conservation,omitempty"`
	// Label holds the value of the "label" field.
	Label *string `json:"label,omitempty"`
	// TrimCode holds the value of the "trim_code" field.
	TrimCode *string `json:"trim_code,omitempty"`
	// RawInfo holds the value of the "raw_info" field.
	RawInfo *string `json:"raw_info,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PriceRecordQuery when eager-loading is set.
	Edges        PriceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PriceRecordEdges holds the relations/edges for other nodes in the graph.
type PriceRecordEdges struct {
	// Job holds the value of the job edge.
	Job *ImportJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PriceRecordEdges) JobOrErr() (*ImportJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: importjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PriceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pricerecord.FieldJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pricerecord.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case pricerecord.FieldKeyDate, pricerecord.FieldVendor, pricerecord.FieldProviderCode, pricerecord.FieldProduct, pricerecord.FieldCategory, pricerecord.FieldSizeGrade, pricerecord.FieldQuality, pricerecord.FieldCatchMethod, pricerecord.FieldCut, pricerecord.FieldState, pricerecord.FieldOrigin, pricerecord.FieldProductionType, pricerecord.FieldSlaughterTechnique, pricerecord.FieldColor, pricerecord.FieldConservation, pricerecord.FieldLabel, pricerecord.FieldTrimCode, pricerecord.FieldRawInfo:
			values[i] = new(sql.NullString)
		case pricerecord.FieldPriceDate, pricerecord.FieldCreatedAt, pricerecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case pricerecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PriceRecord fields.
func (_m *PriceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pricerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pricerecord.FieldKeyDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_date", values[i])
			} else if value.Valid {
				_m.KeyDate = value.String
			}
		case pricerecord.FieldVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor", values[i])
			} else if value.Valid {
				_m.Vendor = value.String
			}
		case pricerecord.FieldProviderCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_code", values[i])
			} else if value.Valid {
				_m.ProviderCode = value.String
			}
		case pricerecord.FieldPriceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field price_date", values[i])
			} else if value.Valid {
				_m.PriceDate = value.Time
			}
		case pricerecord.FieldJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(uuid.UUID)
				*_m.JobID = *value.S.(*uuid.UUID)
			}
		case pricerecord.FieldProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product", values[i])
			} else if value.Valid {
				_m.Product = value.String
			}
		case pricerecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case pricerecord.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case pricerecord.FieldSizeGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size_grade", values[i])
			} else if value.Valid {
				_m.SizeGrade = new(string)
				*_m.SizeGrade = value.String
			}
		case pricerecord.FieldQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = new(string)
				*_m.Quality = value.String
			}
		case pricerecord.FieldCatchMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catch_method", values[i])
			} else if value.Valid {
				_m.CatchMethod = new(string)
				*_m.CatchMethod = value.String
			}
		case pricerecord.FieldCut:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cut", values[i])
			} else if value.Valid {
				_m.Cut = new(string)
				*_m.Cut = value.String
			}
		case pricerecord.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = new(string)
				*_m.State = value.String
			}
		case pricerecord.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = new(string)
				*_m.Origin = value.String
			}
		case pricerecord.FieldProductionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field production_type", values[i])
			} else if value.Valid {
				_m.ProductionType = new(string)
				*_m.ProductionType = value.String
			}
		case pricerecord.FieldSlaughterTechnique:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slaughter_technique", values[i])
			} else if value.Valid {
				_m.SlaughterTechnique = new(string)
				*_m.SlaughterTechnique = value.String
			}
		case pricerecord.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = new(string)
				*_m.Color = value.String
			}
		case pricerecord.FieldConservation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conservation", values[i])
			} else if value.Valid {
				_m.Conservation = new(string)
				*_m.Conservation = value.String
			}
		case pricerecord.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = new(string)
				*_m.Label = value.String
			}
		case pricerecord.FieldTrimCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trim_code", values[i])
			} else if value.Valid {
				_m.TrimCode = new(string)
				*_m.TrimCode = value.String
			}
		case pricerecord.FieldRawInfo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_info", values[i])
			} else if value.Valid {
				_m.RawInfo = new(string)
				*_m.RawInfo = value.String
			}
		case pricerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pricerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PriceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PriceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the PriceRecord entity.
func (_m *PriceRecord) QueryJob() *ImportJobQuery {
	return NewPriceRecordClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this PriceRecord.
// Note that you need to call PriceRecord.Unwrap() before calling this method if this PriceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PriceRecord) Update() *PriceRecordUpdateOne {
	return NewPriceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PriceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PriceRecord) Unwrap() *PriceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PriceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PriceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PriceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key_date=")
	builder.WriteString(_m.KeyDate)
	builder.WriteString(", ")
	builder.WriteString("vendor=")
	builder.WriteString(_m.Vendor)
	builder.WriteString(", ")
	builder.WriteString("provider_code=")
	builder.WriteString(_m.ProviderCode)
	builder.WriteString(", ")
	builder.WriteString("price_date=")
	builder.WriteString(_m.PriceDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("product=")
	builder.WriteString(_m.Product)
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SizeGrade; v != nil {
		builder.WriteString("size_grade=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Quality; v != nil {
		builder.WriteString("quality=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CatchMethod; v != nil {
		builder.WriteString("catch_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Cut; v != nil {
		builder.WriteString("cut=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.State; v != nil {
		builder.WriteString("state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Origin; v != nil {
		builder.WriteString("origin=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProductionType; v != nil {
		builder.WriteString("production_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SlaughterTechnique; v != nil {
		builder.WriteString("slaughter_technique=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Color; v != nil {
		builder.WriteString("color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Conservation; v != nil {
		builder.WriteString("conservation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Label; v != nil {
		builder.WriteString("label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TrimCode; v != nil {
		builder.WriteString("trim_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawInfo; v != nil {
		builder.WriteString("raw_info=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PriceRecords is a parsable slice of PriceRecord.
type PriceRecords []*PriceRecord
