package pipeline

import (
	"github.com/google/uuid"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
)

// Request identifies one pipeline execution.
type Request struct {
	// Path is the stored upload on the local filesystem.
	Path             string
	Filename         string
	DocumentType     string
	DocumentCategory string
	UserID           string
	HeaderRow        int
	// RunID, when set, is an existing processing run to update in place
	// (async path); nil means the persister creates a new run.
	RunID *uuid.UUID
}

func (r Request) Scope() entity.UploadScope {
	return entity.UploadScope{
		Filename:         r.Filename,
		DocumentType:     r.DocumentType,
		DocumentCategory: r.DocumentCategory,
	}
}

// runContext is the shared state threaded through the stages. Each field is
// written by exactly one stage and read-only afterwards:
//
//	Config      — resolve stage
//	Mapping     — map stage
//	SourceMap   — source aggregate stage
//	UploadedMap — uploaded aggregate stage
//	Groups      — compare stage
//	InvalidRows, MatchedRows — classify stage
//	Run         — persist stage
//	TimingsMS   — every stage appends its own entry
type runContext struct {
	req    Request
	Config mapping.ResolvedConfig

	Mapping     entity.MappingStats
	SourceMap   map[string]float64
	UploadedMap map[string]float64

	Groups      GroupResult
	InvalidRows []*entity.InvalidRow
	MatchedRows []*entity.MatchedRow

	Run       *entity.ValidationRun
	TimingsMS map[string]int64
}
