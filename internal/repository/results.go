package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/utils"
)

// PersistResultsRequest carries one pipeline execution's complete result set.
// When RunID is set (async re-run path) the existing run row is updated in
// place and its prior child rows are dropped; otherwise a new run is created.
type PersistResultsRequest struct {
	RunID *uuid.UUID
	Run   CreateRunRequest

	Score             float64
	TotalRecords      int
	MatchedRecords    int
	MismatchedRecords int
	ProcessingDetails json.RawMessage

	InvalidGroups []*entity.InvalidGroup
	MatchedGroups []*entity.MatchedGroup
	InvalidRows   []*entity.InvalidRow
	MatchedRows   []*entity.MatchedRow
}

// ListOptions controls paginated result retrieval.
type ListOptions struct {
	Search   string // connector substring, case-insensitive
	Category string // invalid groups: discrepancy category
	Note     string // matched rows: match note
	Limit    int
	Offset   int
}

type ResultsRepository interface {
	// PersistRun writes the run row and all four child tables atomically.
	PersistRun(ctx context.Context, req PersistResultsRequest) (*entity.ValidationRun, error)
	ListInvalidGroups(ctx context.Context, runID uuid.UUID, opts ListOptions) ([]*entity.InvalidGroup, int, error)
	ListMatchedRows(ctx context.Context, runID uuid.UUID, opts ListOptions) ([]*entity.MatchedRow, int, error)
}

type resultsRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewResultsRepository(entc *ent.Client, log *slog.Logger) ResultsRepository {
	return &resultsRepo{ent: entc, log: log}
}

func (r *resultsRepo) PersistRun(ctx context.Context, req PersistResultsRequest) (*entity.ValidationRun, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin results tx: %w", err)
	}
	run, err := r.persistInTx(ctx, tx, req)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit results tx: %w", err)
	}
	r.log.Info("results.persisted",
		"run_id", run.ID,
		"score", req.Score,
		"total", req.TotalRecords,
		"matched", req.MatchedRecords,
		"mismatched", req.MismatchedRecords,
		"invalid_groups", len(req.InvalidGroups),
		"matched_groups", len(req.MatchedGroups),
	)
	return utils.ToValidationRun(run), nil
}

func (r *resultsRepo) persistInTx(ctx context.Context, tx *ent.Tx, req PersistResultsRequest) (*ent.ValidationRun, error) {
	var run *ent.ValidationRun
	var err error

	if req.RunID != nil {
		// re-run: drop prior children, keep the run row (id + created_at survive)
		id := *req.RunID
		for _, del := range []func() error{
			func() error {
				_, e := tx.InvalidGroup.Delete().Where(invalidgroup.RunID(id)).Exec(ctx)
				return e
			},
			func() error {
				_, e := tx.MatchedGroup.Delete().Where(matchedgroup.RunID(id)).Exec(ctx)
				return e
			},
			func() error {
				_, e := tx.InvalidRow.Delete().Where(invalidrow.RunID(id)).Exec(ctx)
				return e
			},
			func() error {
				_, e := tx.MatchedRow.Delete().Where(matchedrow.RunID(id)).Exec(ctx)
				return e
			},
		} {
			if err := del(); err != nil {
				return nil, fmt.Errorf("clear prior results: %w", err)
			}
		}
		upd := tx.ValidationRun.UpdateOneID(id).
			SetStatus(string(constants.RunStatusCompleted)).
			SetScore(req.Score).
			SetTotalRecords(req.TotalRecords).
			SetMatchedRecords(req.MatchedRecords).
			SetMismatchedRecords(req.MismatchedRecords).
			ClearErrorMessage()
		if len(req.ProcessingDetails) > 0 {
			upd.SetProcessingDetails(req.ProcessingDetails)
		}
		run, err = upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update run: %w", err)
		}
	} else {
		create := tx.ValidationRun.Create().
			SetFilename(req.Run.Filename).
			SetDocumentType(req.Run.DocumentType).
			SetDocumentCategory(req.Run.DocumentCategory).
			SetUserID(req.Run.UserID).
			SetStatus(string(constants.RunStatusCompleted)).
			SetScore(req.Score).
			SetTotalRecords(req.TotalRecords).
			SetMatchedRecords(req.MatchedRecords).
			SetMismatchedRecords(req.MismatchedRecords)
		if len(req.ProcessingDetails) > 0 {
			create.SetProcessingDetails(req.ProcessingDetails)
		}
		run, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create run: %w", err)
		}
	}

	runID := run.ID
	for start := 0; start < len(req.InvalidGroups); start += constants.GroupInsertBatchSize {
		end := min(start+constants.GroupInsertBatchSize, len(req.InvalidGroups))
		builders := make([]*ent.InvalidGroupCreate, 0, end-start)
		for _, g := range req.InvalidGroups[start:end] {
			builders = append(builders, tx.InvalidGroup.Create().
				SetRunID(runID).
				SetConnector(g.Connector).
				SetCategory(g.Category).
				SetErrorText(g.ErrorText).
				SetUploadedTotal(g.UploadedTotal).
				SetSourceTotal(g.SourceTotal).
				SetDiscrepancyValue(g.DiscrepancyValue))
		}
		if err := tx.InvalidGroup.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("insert invalid groups: %w", err)
		}
	}

	for start := 0; start < len(req.MatchedGroups); start += constants.GroupInsertBatchSize {
		end := min(start+constants.GroupInsertBatchSize, len(req.MatchedGroups))
		builders := make([]*ent.MatchedGroupCreate, 0, end-start)
		for _, g := range req.MatchedGroups[start:end] {
			builders = append(builders, tx.MatchedGroup.Create().
				SetRunID(runID).
				SetConnector(g.Connector).
				SetNote(g.Note).
				SetUploadedTotal(g.UploadedTotal).
				SetSourceTotal(g.SourceTotal).
				SetDifference(g.Difference))
		}
		if err := tx.MatchedGroup.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("insert matched groups: %w", err)
		}
	}

	for start := 0; start < len(req.InvalidRows); start += constants.RowInsertBatchSize {
		end := min(start+constants.RowInsertBatchSize, len(req.InvalidRows))
		builders := make([]*ent.InvalidRowCreate, 0, end-start)
		for _, row := range req.InvalidRows[start:end] {
			builders = append(builders, tx.InvalidRow.Create().
				SetRunID(runID).
				SetConnector(row.Connector).
				SetRowIndex(row.RowIndex).
				SetCategory(row.Category).
				SetErrorText(row.ErrorText).
				SetUploadedValue(row.UploadedValue))
		}
		if err := tx.InvalidRow.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("insert invalid rows: %w", err)
		}
	}

	for start := 0; start < len(req.MatchedRows); start += constants.RowInsertBatchSize {
		end := min(start+constants.RowInsertBatchSize, len(req.MatchedRows))
		builders := make([]*ent.MatchedRowCreate, 0, end-start)
		for _, row := range req.MatchedRows[start:end] {
			builders = append(builders, tx.MatchedRow.Create().
				SetRunID(runID).
				SetConnector(row.Connector).
				SetRowIndex(row.RowIndex).
				SetNote(row.Note).
				SetUploadedValue(row.UploadedValue).
				SetSourceTotal(row.SourceTotal))
		}
		if err := tx.MatchedRow.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("insert matched rows: %w", err)
		}
	}

	return run, nil
}

func (r *resultsRepo) ListInvalidGroups(ctx context.Context, runID uuid.UUID, opts ListOptions) ([]*entity.InvalidGroup, int, error) {
	q := r.ent.InvalidGroup.Query().Where(invalidgroup.RunID(runID))
	if opts.Search != "" {
		q = q.Where(invalidgroup.ConnectorContainsFold(opts.Search))
	}
	if opts.Category != "" {
		q = q.Where(invalidgroup.Category(opts.Category))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	groups, err := q.
		Order(ent.Asc(invalidgroup.FieldConnector)).
		Limit(opts.Limit).
		Offset(opts.Offset).
		All(ctx)
	if err != nil {
		r.log.Error("list invalid groups failed", "run_id", runID, "err", err)
		return nil, 0, err
	}
	out := make([]*entity.InvalidGroup, len(groups))
	for i, g := range groups {
		out[i] = utils.ToInvalidGroup(g)
	}
	return out, total, nil
}

func (r *resultsRepo) ListMatchedRows(ctx context.Context, runID uuid.UUID, opts ListOptions) ([]*entity.MatchedRow, int, error) {
	q := r.ent.MatchedRow.Query().Where(matchedrow.RunID(runID))
	if opts.Search != "" {
		q = q.Where(matchedrow.ConnectorContainsFold(opts.Search))
	}
	if opts.Note != "" {
		q = q.Where(matchedrow.Note(opts.Note))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows, err := q.
		Order(ent.Asc(matchedrow.FieldConnector), ent.Asc(matchedrow.FieldRowIndex)).
		Limit(opts.Limit).
		Offset(opts.Offset).
		All(ctx)
	if err != nil {
		r.log.Error("list matched rows failed", "run_id", runID, "err", err)
		return nil, 0, err
	}
	out := make([]*entity.MatchedRow, len(rows))
	for i, row := range rows {
		out[i] = utils.ToMatchedRow(row)
	}
	return out, total, nil
}
