package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceFile represents an archived vendor document for data transfer between layers.
type SourceFile struct {
	ID          uuid.UUID `json:"id"`
	Vendor      string    `json:"vendor"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	ArchivePath string    `json:"archive_path"`
	ContentHash []byte    `json:"content_hash"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
