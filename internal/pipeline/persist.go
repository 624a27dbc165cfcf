package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// ComputeScore returns the percentage of matched groups rounded to two
// decimals. An empty upload scores a clean 100.00.
func ComputeScore(matched, total int) float64 {
	if total <= 0 {
		return 100.00
	}
	return math.Round(float64(matched)/float64(total)*100*100) / 100
}

// Persister finalizes a pipeline execution: score, counts, and the atomic
// run + child-table write.
type Persister struct {
	Results repository.ResultsRepository
	Logger  *slog.Logger
}

func NewPersister(results repository.ResultsRepository, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{Results: results, Logger: logger}
}

func (p *Persister) Persist(ctx context.Context, rc *runContext) (*entity.ValidationRun, error) {
	total := len(rc.UploadedMap)
	mismatched := len(rc.Groups.Invalid)
	matched := total - mismatched

	details := map[string]any{
		"mapping":     rc.Mapping,
		"timings_ms":  rc.TimingsMS,
		"finished_at": time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}

	req := repository.PersistResultsRequest{
		RunID: rc.req.RunID,
		Run: repository.CreateRunRequest{
			Filename:         rc.req.Filename,
			DocumentType:     rc.req.DocumentType,
			DocumentCategory: rc.req.DocumentCategory,
			UserID:           rc.req.UserID,
		},
		Score:             ComputeScore(matched, total),
		TotalRecords:      total,
		MatchedRecords:    matched,
		MismatchedRecords: mismatched,
		ProcessingDetails: raw,
		InvalidGroups:     rc.Groups.Invalid,
		MatchedGroups:     rc.Groups.Matched,
		InvalidRows:       rc.InvalidRows,
		MatchedRows:       rc.MatchedRows,
	}
	return p.Results.PersistRun(ctx, req)
}
