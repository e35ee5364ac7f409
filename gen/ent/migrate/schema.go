// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportJobColumns holds the columns for the "import_job" table.
	ImportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "price_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "rows_extracted", Type: field.TypeInt, Default: 0},
		{Name: "rows_loaded", Type: field.TypeInt, Default: 0},
		{Name: "rows_unrecognized", Type: field.TypeInt, Default: 0},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ImportJobTable holds the schema information for the "import_job" table.
	ImportJobTable = &schema.Table{
		Name:       "import_job",
		Columns:    ImportJobColumns,
		PrimaryKey: []*schema.Column{ImportJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_job_source_file_jobs",
				Columns:    []*schema.Column{ImportJobColumns[11]},
				RefColumns: []*schema.Column{SourceFileColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_vendor_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[1], ImportJobColumns[5], ImportJobColumns[3]},
			},
			{
				Name:    "importjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[11]},
			},
		},
	}
	// PriceRecordColumns holds the columns for the "price_record" table.
	PriceRecordColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key_date", Type: field.TypeString},
		{Name: "vendor", Type: field.TypeString},
		{Name: "provider_code", Type: field.TypeString},
		{Name: "price_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "product", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "size_grade", Type: field.TypeString, Nullable: true},
		{Name: "quality", Type: field.TypeString, Nullable: true},
		{Name: "catch_method", Type: field.TypeString, Nullable: true},
		{Name: "cut", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "origin", Type: field.TypeString, Nullable: true},
		{Name: "production_type", Type: field.TypeString, Nullable: true},
		{Name: "slaughter_technique", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "conservation", Type: field.TypeString, Nullable: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "trim_code", Type: field.TypeString, Nullable: true},
		{Name: "raw_info", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
	}
	// PriceRecordTable holds the schema information for the "price_record" table.
	PriceRecordTable = &schema.Table{
		Name:       "price_record",
		Columns:    PriceRecordColumns,
		PrimaryKey: []*schema.Column{PriceRecordColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "price_record_import_job_records",
				Columns:    []*schema.Column{PriceRecordColumns[23]},
				RefColumns: []*schema.Column{ImportJobColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pricerecord_vendor_key_date",
				Unique:  true,
				Columns: []*schema.Column{PriceRecordColumns[2], PriceRecordColumns[1]},
			},
			{
				Name:    "pricerecord_vendor_price_date",
				Unique:  false,
				Columns: []*schema.Column{PriceRecordColumns[2], PriceRecordColumns[4]},
			},
			{
				Name:    "pricerecord_category",
				Unique:  false,
				Columns: []*schema.Column{PriceRecordColumns[6]},
			},
		},
	}
	// SourceFileColumns holds the columns for the "source_file" table.
	SourceFileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "archive_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// SourceFileTable holds the schema information for the "source_file" table.
	SourceFileTable = &schema.Table{
		Name:       "source_file",
		Columns:    SourceFileColumns,
		PrimaryKey: []*schema.Column{SourceFileColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcefile_vendor_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourceFileColumns[1], SourceFileColumns[5]},
			},
			{
				Name:    "sourcefile_vendor_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SourceFileColumns[1], SourceFileColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportJobTable,
		PriceRecordTable,
		SourceFileTable,
	}
)

func init() {
	ImportJobTable.ForeignKeys[0].RefTable = SourceFileTable
	ImportJobTable.Annotation = &entsql.Annotation{
		Table: "import_job",
	}
	PriceRecordTable.ForeignKeys[0].RefTable = ImportJobTable
	PriceRecordTable.Annotation = &entsql.Annotation{
		Table: "price_record",
	}
	SourceFileTable.Annotation = &entsql.Annotation{
		Table: "source_file",
	}
}
