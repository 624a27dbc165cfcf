package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	v1 "github.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/async"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/pipeline"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/utils"
)

type ValidationService struct {
	v1.UnimplementedValidationServiceServer
	processor *pipeline.Processor
	queue     async.Queue
	runs      repository.RunRepository
	results   repository.ResultsRepository
	exporter  ReportExporter
	logger    *slog.Logger
}

// ReportExporter renders one run's persisted results as XLSX bytes.
type ReportExporter interface {
	ExportRunXLSX(ctx context.Context, runID uuid.UUID) (string, []byte, error)
}

func NewValidationService(
	proc *pipeline.Processor,
	queue async.Queue,
	runs repository.RunRepository,
	results repository.ResultsRepository,
	exporter ReportExporter,
	logger *slog.Logger,
) *ValidationService {
	return &ValidationService{
		processor: proc,
		queue:     queue,
		runs:      runs,
		results:   results,
		exporter:  exporter,
		logger:    logger,
	}
}

func validateRequest(req *v1.ValidateRequest) (pipeline.Request, error) {
	out := pipeline.Request{
		Path:             strings.TrimSpace(req.GetPath()),
		Filename:         strings.TrimSpace(req.GetFilename()),
		DocumentType:     strings.TrimSpace(req.GetDocumentType()),
		DocumentCategory: strings.TrimSpace(req.GetDocumentCategory()),
		UserID:           strings.TrimSpace(req.GetUserId()),
		HeaderRow:        int(req.GetHeaderRow()),
	}
	switch {
	case out.Path == "":
		return out, common.InvalidArgumentError("path is required")
	case out.Filename == "":
		return out, common.InvalidArgumentError("filename is required")
	case out.DocumentType == "":
		return out, common.InvalidArgumentError("document_type is required")
	case out.DocumentCategory == "":
		return out, common.InvalidArgumentError("document_category is required")
	case out.UserID == "":
		return out, common.InvalidArgumentError("user_id is required")
	}
	if out.HeaderRow < 1 {
		out.HeaderRow = 1
	}
	return out, nil
}

// Validate runs the pipeline inline. Suitable for small files only; large
// uploads go through ValidateAsync.
func (s *ValidationService) Validate(ctx context.Context, req *v1.ValidateRequest) (*v1.ValidateResponse, error) {
	preq, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("validate.sync.start", "filename", preq.Filename, "document_type", preq.DocumentType)
	run, stats, err := s.processor.Run(ctx, preq)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &v1.ValidateResponse{
		Run: utils.ToPBRun(run),
		Mapping: &v1.MappingStats{
			Accepted: int32(stats.Accepted),
			Skipped:  int32(stats.Skipped),
			Failed:   int32(stats.Failed),
		},
	}, nil
}

// ValidateAsync creates a processing run and hands it to the worker queue.
func (s *ValidationService) ValidateAsync(ctx context.Context, req *v1.ValidateRequest) (*v1.ValidateAsyncResponse, error) {
	preq, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	run, err := s.runs.Create(ctx, repository.CreateRunRequest{
		Filename:         preq.Filename,
		DocumentType:     preq.DocumentType,
		DocumentCategory: preq.DocumentCategory,
		UserID:           preq.UserID,
	})
	if err != nil {
		s.logger.Error("validate.async.create_run_failed", "filename", preq.Filename, "err", err)
		return nil, common.InternalError("create run failed")
	}

	preq.RunID = &run.ID
	err = s.queue.Enqueue(ctx, async.Job{
		RunID:       run.ID,
		Request:     preq,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		// the run row exists but will never be picked up; fail it now
		_ = s.runs.MarkFailed(ctx, run.ID, err.Error())
		return nil, toStatusError(err)
	}

	return &v1.ValidateAsyncResponse{
		RunId:  run.ID.String(),
		Status: run.Status,
	}, nil
}

func (s *ValidationService) GetStatus(ctx context.Context, req *v1.GetStatusRequest) (*v1.GetStatusResponse, error) {
	runID, err := parseRunID(req.GetRunId())
	if err != nil {
		return nil, err
	}
	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return nil, toStatusError(err)
	}
	out := &v1.GetStatusResponse{
		Status:            run.Status,
		Score:             run.Score,
		TotalRecords:      int32(run.TotalRecords),
		MatchedRecords:    int32(run.MatchedRecords),
		MismatchedRecords: int32(run.MismatchedRecords),
	}
	if run.ErrorMessage != nil {
		out.ErrorMessage = *run.ErrorMessage
	}
	return out, nil
}

func (s *ValidationService) ListRuns(ctx context.Context, req *v1.ListRunsRequest) (*v1.ListRunsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.InvalidArgumentError("user_id is required")
	}
	limit, offset, _, _ := normalizePage(req.GetPage(), req.GetPageSize())
	runs, total, err := s.runs.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("list runs failed", "user_id", userID, "err", err)
		return nil, common.InternalError("list runs failed")
	}
	out := &v1.ListRunsResponse{Total: int32(total), Runs: make([]*v1.ValidationRun, 0, len(runs))}
	for _, r := range runs {
		out.Runs = append(out.Runs, utils.ToPBRun(r))
	}
	return out, nil
}

func parseRunID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("run_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("run_id must be a UUID")
	}
	return id, nil
}

// toStatusError maps pipeline and repository failures onto gRPC codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidDocumentType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNoSourceData),
		errors.Is(err, common.ErrNoMappedData):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrRunInProgress):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrNotFound) || ent.IsNotFound(err):
		return status.Error(codes.NotFound, "run not found")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
