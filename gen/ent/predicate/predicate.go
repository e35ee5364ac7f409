// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// PriceRecord is the predicate function for pricerecord builders.
type PriceRecord func(*sql.Selector)

// SourceFile is the predicate function for sourcefile builders.
type SourceFile func(*sql.Selector)
