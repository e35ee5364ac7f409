package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob represents an import job for data transfer between layers.
type ImportJob struct {
	ID               uuid.UUID  `json:"id"`
	FileID           uuid.UUID  `json:"file_id"`
	Vendor           string     `json:"vendor"`
	Format           string     `json:"format"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	Status           *string    `json:"status,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	PriceDate        *time.Time `json:"price_date,omitempty"`
	RowsExtracted    int        `json:"rows_extracted"`
	RowsLoaded       int        `json:"rows_loaded"`
	RowsUnrecognized int        `json:"rows_unrecognized"`
}
