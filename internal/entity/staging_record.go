package entity

import (
	"time"

	"github.com/google/uuid"
)

// StagingRecord represents a mapped uploaded row for data transfer between layers.
type StagingRecord struct {
	ID               uuid.UUID  `json:"id"`
	Filename         string     `json:"filename"`
	DocumentType     string     `json:"document_type"`
	DocumentCategory string     `json:"document_category"`
	HeaderRow        int        `json:"header_row"`
	UserID           string     `json:"user_id"`
	Connector        string     `json:"connector"`
	SumValue         float64    `json:"sum_value"`
	BranchCode       *string    `json:"branch_code,omitempty"`
	BranchName       *string    `json:"branch_name,omitempty"`
	OutletCode       *string    `json:"outlet_code,omitempty"`
	OutletName       *string    `json:"outlet_name,omitempty"`
	DocDate          *time.Time `json:"doc_date,omitempty"`
	RowIndex         int        `json:"row_index"`
	CreatedAt        time.Time  `json:"created_at"`
}

// UploadScope identifies the (filename, document type, document category)
// triple that owns a set of staging records.
type UploadScope struct {
	Filename         string
	DocumentType     string
	DocumentCategory string
}
