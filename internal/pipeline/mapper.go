package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/ingest"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// Mapper turns ingested rows into staging records and replaces the scope's
// prior staging data, making mapping idempotent per upload.
type Mapper struct {
	Reader  ingest.Reader
	Staging repository.StagingRepository
	Logger  *slog.Logger
}

func NewMapper(reader ingest.Reader, staging repository.StagingRepository, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{Reader: reader, Staging: staging, Logger: logger}
}

// Map reads the upload at req.Path and writes its staging records.
// Rows with an empty connector are skipped (counted, not errored); rows whose
// required columns are absent from the sheet or whose sum cannot be parsed
// are failures (counted, not fatal).
func (m *Mapper) Map(ctx context.Context, req Request, cfg mapping.ResolvedConfig) (entity.MappingStats, error) {
	start := time.Now()
	rows, err := m.Reader.ReadRows(ctx, req.Path, req.HeaderRow)
	if err != nil {
		return entity.MappingStats{}, fmt.Errorf("read upload: %w", err)
	}

	var stats entity.MappingStats
	records := make([]*entity.StagingRecord, 0, len(rows))
	for _, row := range rows {
		rec, outcome := m.mapRow(row, req, cfg)
		switch outcome {
		case rowAccepted:
			records = append(records, rec)
			stats.Accepted++
		case rowSkipped:
			stats.Skipped++
		case rowFailed:
			stats.Failed++
		}
	}

	if err := m.Staging.ReplaceForScope(ctx, req.Scope(), records); err != nil {
		return stats, fmt.Errorf("replace staging records: %w", err)
	}

	m.Logger.Info("pipeline.map.ok",
		"filename", req.Filename,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

type rowOutcome int

const (
	rowAccepted rowOutcome = iota
	rowSkipped
	rowFailed
)

func (m *Mapper) mapRow(row ingest.Row, req Request, cfg mapping.ResolvedConfig) (*entity.StagingRecord, rowOutcome) {
	connectorCol := ingest.NormalizeColumn(cfg.UploadedConnector)
	sumCol := ingest.NormalizeColumn(cfg.UploadedSum)

	rawConnector, hasConnector := row.Values[connectorCol]
	rawSum, hasSum := row.Values[sumCol]
	if !hasConnector || !hasSum {
		m.Logger.Debug("pipeline.map.row_failed", "row", row.Index, "reason", "missing_columns")
		return nil, rowFailed
	}

	connector := strings.TrimSpace(rawConnector)
	if connector == "" {
		return nil, rowSkipped
	}

	sum, ok := mapping.ParseAmount(rawSum)
	if !ok {
		m.Logger.Debug("pipeline.map.row_failed", "row", row.Index, "reason", "unparseable_sum", "raw", rawSum)
		return nil, rowFailed
	}

	rec := &entity.StagingRecord{
		Filename:         req.Filename,
		DocumentType:     req.DocumentType,
		DocumentCategory: req.DocumentCategory,
		HeaderRow:        req.HeaderRow,
		UserID:           req.UserID,
		Connector:        connector,
		SumValue:         sum,
		RowIndex:         row.Index,
	}
	rec.BranchCode = optColumn(row, cfg.Metadata.BranchCode)
	rec.BranchName = optColumn(row, cfg.Metadata.BranchName)
	rec.OutletCode = optColumn(row, cfg.Metadata.OutletCode)
	rec.OutletName = optColumn(row, cfg.Metadata.OutletName)
	if raw := row.Get(cfg.Metadata.DocDate); raw != "" {
		if t, err := parseDocDate(raw); err == nil {
			rec.DocDate = &t
		}
	}
	return rec, rowAccepted
}

func optColumn(row ingest.Row, column string) *string {
	if column == "" {
		return nil
	}
	v := row.Get(column)
	if v == "" {
		return nil
	}
	return &v
}

// parseDocDate accepts the date layouts seen in branch exports.
func parseDocDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02-01-2006", "2006/01/02"} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", raw)
}
