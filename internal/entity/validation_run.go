package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ValidationRun represents one pipeline execution for data transfer between layers.
type ValidationRun struct {
	ID                uuid.UUID       `json:"id"`
	Filename          string          `json:"filename"`
	DocumentType      string          `json:"document_type"`
	DocumentCategory  string          `json:"document_category"`
	UserID            string          `json:"user_id"`
	Status            string          `json:"status"`
	Score             float64         `json:"score"`
	TotalRecords      int             `json:"total_records"`
	MatchedRecords    int             `json:"matched_records"`
	MismatchedRecords int             `json:"mismatched_records"`
	ProcessingDetails json.RawMessage `json:"processing_details,omitempty"`
	ErrorMessage      *string         `json:"error_message,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
