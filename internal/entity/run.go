package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionRun represents one cached extraction of a source document.
type ExtractionRun struct {
	ID         uuid.UUID `json:"id"`
	SourcePath string    `json:"source_path"`
	FileHash   string    `json:"file_hash"`
	PayDate    string    `json:"pay_date"`
	FieldCount int       `json:"field_count"`
	RecordJSON string    `json:"record_json"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
