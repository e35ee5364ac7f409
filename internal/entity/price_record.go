package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceRecord represents a harmonized price row for data transfer between layers.
type PriceRecord struct {
	ID                 uuid.UUID  `json:"id"`
	KeyDate            string     `json:"key_date"`
	Vendor             string     `json:"vendor"`
	ProviderCode       string     `json:"provider_code"`
	PriceDate          time.Time  `json:"price_date"`
	Product            string     `json:"product"`
	Category           *string    `json:"category,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	SizeGrade          *string    `json:"size_grade,omitempty"`
	Quality            *string    `json:"quality,omitempty"`
	CatchMethod        *string    `json:"catch_method,omitempty"`
	Cut                *string    `json:"cut,omitempty"`
	State              *string    `json:"state,omitempty"`
	Origin             *string    `json:"origin,omitempty"`
	ProductionType     *string    `json:"production_type,omitempty"`
	SlaughterTechnique *string    `json:"slaughter_technique,omitempty"`
	Color              *string    `json:"color,omitempty"`
	Conservation       *string    `json:"conservation,omitempty"`
	Label              *string    `json:"label,omitempty"`
	TrimCode           *string    `json:"trim_code,omitempty"`
	RawInfo            *string    `json:"raw_info,omitempty"`
	JobID              *uuid.UUID `json:"job_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
