package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/utils"
)

// CreateRunRequest wraps parameters for starting a new run in processing state.
type CreateRunRequest struct {
	Filename         string
	DocumentType     string
	DocumentCategory string
	UserID           string
}

type RunRepository interface {
	Create(ctx context.Context, req CreateRunRequest) (*entity.ValidationRun, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ValidationRun, error)
	// MarkFailed stamps the run terminal-failed with the error text.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	// MergeProcessingDetails shallow-merges patch into processing_details.
	MergeProcessingDetails(ctx context.Context, id uuid.UUID, patch map[string]any) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ValidationRun, int, error)
}

type runRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunRepository(entc *ent.Client, log *slog.Logger) RunRepository {
	return &runRepo{ent: entc, log: log}
}

func (r *runRepo) Create(ctx context.Context, req CreateRunRequest) (*entity.ValidationRun, error) {
	run, err := r.ent.ValidationRun.Create().
		SetFilename(req.Filename).
		SetDocumentType(req.DocumentType).
		SetDocumentCategory(req.DocumentCategory).
		SetUserID(req.UserID).
		SetStatus(string(constants.RunStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("run create failed", "filename", req.Filename, "err", err)
		return nil, err
	}
	r.log.Info("run.created", "run_id", run.ID, "filename", req.Filename,
		"document_type", req.DocumentType, "document_category", req.DocumentCategory)
	return utils.ToValidationRun(run), nil
}

func (r *runRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ValidationRun, error) {
	run, err := r.ent.ValidationRun.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToValidationRun(run), nil
}

func (r *runRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.ValidationRun.UpdateOneID(id).
		SetStatus(string(constants.RunStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("run mark failed errored", "run_id", id, "err", err)
		return err
	}
	r.log.Warn("run.failed", "run_id", id, "error", message)
	return nil
}

func (r *runRepo) MergeProcessingDetails(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	run, err := r.ent.ValidationRun.Get(ctx, id)
	if err != nil {
		return err
	}
	details := map[string]any{}
	if len(run.ProcessingDetails) > 0 {
		if err := json.Unmarshal(run.ProcessingDetails, &details); err != nil {
			r.log.Warn("run processing_details unreadable, overwriting", "run_id", id, "err", err)
			details = map[string]any{}
		}
	}
	for k, v := range patch {
		details[k] = v
	}
	details["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	_, err = r.ent.ValidationRun.UpdateOneID(id).
		SetProcessingDetails(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("run details merge failed", "run_id", id, "err", err)
	}
	return err
}

func (r *runRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ValidationRun, int, error) {
	q := r.ent.ValidationRun.Query().
		Where(validationrun.UserID(userID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	runs, err := q.
		Order(ent.Desc(validationrun.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		r.log.Error("run list failed", "user_id", userID, "err", err)
		return nil, 0, err
	}
	out := make([]*entity.ValidationRun, len(runs))
	for i, run := range runs {
		out[i] = utils.ToValidationRun(run)
	}
	return out, total, nil
}
