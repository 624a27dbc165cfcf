package server

import (
	"context"
	"strings"

	v1 "github.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/utils"
)

// ListInvalidGroups pages through a run's group-level mismatches, optionally
// narrowed by connector substring and discrepancy category.
func (s *ValidationService) ListInvalidGroups(ctx context.Context, req *v1.ListInvalidGroupsRequest) (*v1.ListInvalidGroupsResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}
	limit, offset, page, pageSize := normalizePage(req.GetPage(), req.GetPageSize())

	groups, total, err := s.results.ListInvalidGroups(ctx, runID, repository.ListOptions{
		Search:   strings.TrimSpace(req.GetSearch()),
		Category: strings.TrimSpace(req.GetCategory()),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := &v1.ListInvalidGroupsResponse{
		Total:    int32(total),
		Page:     page,
		PageSize: pageSize,
		Groups:   make([]*v1.InvalidGroup, 0, len(groups)),
	}
	for _, g := range groups {
		out.Groups = append(out.Groups, utils.ToPBInvalidGroup(g))
	}
	return out, nil
}

// ListMatchedRows pages through a run's per-row matches, optionally narrowed
// by connector substring and match note.
func (s *ValidationService) ListMatchedRows(ctx context.Context, req *v1.ListMatchedRowsRequest) (*v1.ListMatchedRowsResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}
	limit, offset, page, pageSize := normalizePage(req.GetPage(), req.GetPageSize())

	rows, total, err := s.results.ListMatchedRows(ctx, runID, repository.ListOptions{
		Search: strings.TrimSpace(req.GetSearch()),
		Note:   strings.TrimSpace(req.GetNote()),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := &v1.ListMatchedRowsResponse{
		Total:    int32(total),
		Page:     page,
		PageSize: pageSize,
		Rows:     make([]*v1.MatchedRow, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, utils.ToPBMatchedRow(row))
	}
	return out, nil
}

func (s *ValidationService) ExportReport(ctx context.Context, req *v1.ExportReportRequest) (*v1.ExportReportResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}

	name, content, err := s.exporter.ExportRunXLSX(ctx, runID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "run_id", runID, "err", err)
		return nil, toStatusError(err)
	}

	return &v1.ExportReportResponse{
		Filename: name,
		Content:  content,
	}, nil
}
