package entity

import "github.com/google/uuid"

// InvalidGroup is a group-level mismatch for one connector key.
type InvalidGroup struct {
	ID               int       `json:"id"`
	RunID            uuid.UUID `json:"run_id"`
	Connector        string    `json:"connector"`
	Category         string    `json:"category"`
	ErrorText        string    `json:"error_text"`
	UploadedTotal    float64   `json:"uploaded_total"`
	SourceTotal      float64   `json:"source_total"`
	DiscrepancyValue float64   `json:"discrepancy_value"`
}

// MatchedGroup is a group-level match for one connector key.
type MatchedGroup struct {
	ID            int       `json:"id"`
	RunID         uuid.UUID `json:"run_id"`
	Connector     string    `json:"connector"`
	Note          string    `json:"note"`
	UploadedTotal float64   `json:"uploaded_total"`
	SourceTotal   float64   `json:"source_total"`
	Difference    float64   `json:"difference"`
}

// InvalidRow is the per-row projection of an InvalidGroup.
type InvalidRow struct {
	ID            int       `json:"id"`
	RunID         uuid.UUID `json:"run_id"`
	Connector     string    `json:"connector"`
	RowIndex      int       `json:"row_index"`
	Category      string    `json:"category"`
	ErrorText     string    `json:"error_text"`
	UploadedValue float64   `json:"uploaded_value"`
}

// MatchedRow is the per-row projection of a MatchedGroup.
type MatchedRow struct {
	ID            int       `json:"id"`
	RunID         uuid.UUID `json:"run_id"`
	Connector     string    `json:"connector"`
	RowIndex      int       `json:"row_index"`
	Note          string    `json:"note"`
	UploadedValue float64   `json:"uploaded_value"`
	SourceTotal   float64   `json:"source_total"`
}

// MappingStats summarizes one Row Mapper pass over an upload.
type MappingStats struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
