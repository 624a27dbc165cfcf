package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// Service is a tiny façade over the run tables that produces XLSX bytes for
// downloadable discrepancy reports.
type Service struct {
	ent    *ent.Client
	runs   repository.RunRepository
	logger *slog.Logger
}

func NewService(entc *ent.Client, runs repository.RunRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, runs: runs, logger: logger}
}

// ExportRunXLSX returns a workbook with one summary sheet plus the run's
// invalid and matched groups, and a suggested download filename.
func (s *Service) ExportRunXLSX(ctx context.Context, runID uuid.UUID) (string, []byte, error) {
	start := time.Now()

	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return "", nil, err
	}

	invalid, err := s.ent.InvalidGroup.Query().
		Where(invalidgroup.RunID(runID)).
		Order(ent.Asc(invalidgroup.FieldConnector)).
		All(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("query invalid groups: %w", err)
	}
	matched, err := s.ent.MatchedGroup.Query().
		Where(matchedgroup.RunID(runID)).
		Order(ent.Asc(matchedgroup.FieldConnector)).
		All(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("query matched groups: %w", err)
	}

	f := excelize.NewFile()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", nil, err
	}
	summary := [][2]any{
		{"Filename", run.Filename},
		{"Document Type", run.DocumentType},
		{"Document Category", run.DocumentCategory},
		{"Status", run.Status},
		{"Score", run.Score},
		{"Total Records", run.TotalRecords},
		{"Matched Records", run.MatchedRecords},
		{"Mismatched Records", run.MismatchedRecords},
		{"Created At", run.CreatedAt.Format(time.RFC3339)},
	}
	for i, kv := range summary {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(summarySheet, keyCell, kv[0])
		_ = f.SetCellValue(summarySheet, valCell, kv[1])
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 22)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	const invalidSheet = "Invalid Groups"
	if _, err := f.NewSheet(invalidSheet); err != nil {
		return "", nil, err
	}
	writeHeader(f, invalidSheet, []string{
		"Connector", "Category", "Error", "Uploaded Total", "Source Total", "Discrepancy",
	})
	for i, g := range invalid {
		row := i + 2
		writeCell(f, invalidSheet, 1, row, g.Connector)
		writeCell(f, invalidSheet, 2, row, g.Category)
		writeCell(f, invalidSheet, 3, row, g.ErrorText)
		writeCell(f, invalidSheet, 4, row, g.UploadedTotal)
		writeCell(f, invalidSheet, 5, row, g.SourceTotal)
		writeCell(f, invalidSheet, 6, row, g.DiscrepancyValue)
	}
	_ = f.SetColWidth(invalidSheet, "A", "A", 28)
	_ = f.SetColWidth(invalidSheet, "B", "C", 22)
	_ = f.SetColWidth(invalidSheet, "D", "F", 16)

	const matchedSheet = "Matched Groups"
	if _, err := f.NewSheet(matchedSheet); err != nil {
		return "", nil, err
	}
	writeHeader(f, matchedSheet, []string{
		"Connector", "Note", "Uploaded Total", "Source Total", "Difference",
	})
	for i, g := range matched {
		row := i + 2
		writeCell(f, matchedSheet, 1, row, g.Connector)
		writeCell(f, matchedSheet, 2, row, g.Note)
		writeCell(f, matchedSheet, 3, row, g.UploadedTotal)
		writeCell(f, matchedSheet, 4, row, g.SourceTotal)
		writeCell(f, matchedSheet, 5, row, g.Difference)
	}
	_ = f.SetColWidth(matchedSheet, "A", "A", 28)
	_ = f.SetColWidth(matchedSheet, "B", "B", 22)
	_ = f.SetColWidth(matchedSheet, "C", "E", 16)

	if index, _ := f.GetSheetIndex(summarySheet); index != -1 {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("xlsx write: %w", err)
	}

	name := fmt.Sprintf("validation-report-%s-%s.xlsx",
		run.DocumentType, run.CreatedAt.Format("20060102"))

	s.logger.Info("export.xlsx.ok",
		"run_id", runID.String(),
		"invalid_groups", len(invalid),
		"matched_groups", len(matched),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return name, buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func writeCell(f *excelize.File, sheet string, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}
