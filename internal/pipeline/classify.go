package pipeline

import (
	"context"
	"log/slog"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// Classifier projects the comparator's group outcomes onto the individual
// staging rows for drill-down. It reuses the group classification directly,
// so the tolerance rule lives in Compare alone.
type Classifier struct {
	Staging repository.StagingRepository
	Logger  *slog.Logger
}

func NewClassifier(staging repository.StagingRepository, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{Staging: staging, Logger: logger}
}

// Classify fetches the staging rows behind every classified connector key and
// emits one row record per staging row, inheriting the group's verdict.
func (c *Classifier) Classify(ctx context.Context, scope entity.UploadScope, groups GroupResult) ([]*entity.InvalidRow, []*entity.MatchedRow, error) {
	invalidByKey := make(map[string]*entity.InvalidGroup, len(groups.Invalid))
	invalidKeys := make([]string, 0, len(groups.Invalid))
	for _, g := range groups.Invalid {
		invalidByKey[g.Connector] = g
		invalidKeys = append(invalidKeys, g.Connector)
	}
	matchedByKey := make(map[string]*entity.MatchedGroup, len(groups.Matched))
	matchedKeys := make([]string, 0, len(groups.Matched))
	for _, g := range groups.Matched {
		matchedByKey[g.Connector] = g
		matchedKeys = append(matchedKeys, g.Connector)
	}

	var invalidRows []*entity.InvalidRow
	if len(invalidKeys) > 0 {
		recs, err := c.Staging.FetchByConnectors(ctx, scope, invalidKeys)
		if err != nil {
			return nil, nil, err
		}
		invalidRows = make([]*entity.InvalidRow, 0, len(recs))
		for _, rec := range recs {
			g := invalidByKey[rec.Connector]
			if g == nil {
				continue
			}
			invalidRows = append(invalidRows, &entity.InvalidRow{
				Connector:     rec.Connector,
				RowIndex:      rec.RowIndex,
				Category:      g.Category,
				ErrorText:     g.ErrorText,
				UploadedValue: rec.SumValue,
			})
		}
	}

	var matchedRows []*entity.MatchedRow
	if len(matchedKeys) > 0 {
		recs, err := c.Staging.FetchByConnectors(ctx, scope, matchedKeys)
		if err != nil {
			return nil, nil, err
		}
		matchedRows = make([]*entity.MatchedRow, 0, len(recs))
		for _, rec := range recs {
			g := matchedByKey[rec.Connector]
			if g == nil {
				continue
			}
			matchedRows = append(matchedRows, &entity.MatchedRow{
				Connector:     rec.Connector,
				RowIndex:      rec.RowIndex,
				Note:          g.Note,
				UploadedValue: rec.SumValue,
				SourceTotal:   g.SourceTotal,
			})
		}
	}

	c.Logger.Info("pipeline.classify.ok",
		"filename", scope.Filename,
		"invalid_rows", len(invalidRows),
		"matched_rows", len(matchedRows),
	)
	return invalidRows, matchedRows, nil
}
