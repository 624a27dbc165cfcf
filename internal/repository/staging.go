package repository

import (
	"context"
	"log/slog"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/utils"
)

type StagingRepository interface {
	// ReplaceForScope deletes every staging record owned by the scope and
	// bulk-inserts the replacements in one transaction, so re-mapping the
	// same upload is idempotent.
	ReplaceForScope(ctx context.Context, scope entity.UploadScope, records []*entity.StagingRecord) error
	// AggregateByConnector sums sum_value grouped by connector over the scope.
	AggregateByConnector(ctx context.Context, scope entity.UploadScope) (map[string]float64, error)
	// FetchByConnectors returns all staging rows whose connector is in keys,
	// batching the IN lookups.
	FetchByConnectors(ctx context.Context, scope entity.UploadScope, keys []string) ([]*entity.StagingRecord, error)
	CountForScope(ctx context.Context, scope entity.UploadScope) (int, error)
}

type stagingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStagingRepository(entc *ent.Client, log *slog.Logger) StagingRepository {
	return &stagingRepo{ent: entc, log: log}
}

func (r *stagingRepo) ReplaceForScope(ctx context.Context, scope entity.UploadScope, records []*entity.StagingRecord) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.log.Error("staging replace: begin tx failed", "err", err)
		return err
	}
	deleted, err := tx.StagingRecord.Delete().
		Where(
			stagingrecord.Filename(scope.Filename),
			stagingrecord.DocumentType(scope.DocumentType),
			stagingrecord.DocumentCategory(scope.DocumentCategory),
		).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("staging replace: delete failed", "filename", scope.Filename, "err", err)
		return err
	}

	for start := 0; start < len(records); start += constants.StagingInsertBatchSize {
		end := min(start+constants.StagingInsertBatchSize, len(records))
		builders := make([]*ent.StagingRecordCreate, 0, end-start)
		for _, rec := range records[start:end] {
			b := tx.StagingRecord.Create().
				SetFilename(rec.Filename).
				SetDocumentType(rec.DocumentType).
				SetDocumentCategory(rec.DocumentCategory).
				SetHeaderRow(rec.HeaderRow).
				SetUserID(rec.UserID).
				SetConnector(rec.Connector).
				SetSumValue(rec.SumValue).
				SetRowIndex(rec.RowIndex).
				SetNillableBranchCode(rec.BranchCode).
				SetNillableBranchName(rec.BranchName).
				SetNillableOutletCode(rec.OutletCode).
				SetNillableOutletName(rec.OutletName).
				SetNillableDocDate(rec.DocDate)
			builders = append(builders, b)
		}
		if err := tx.StagingRecord.CreateBulk(builders...).Exec(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("staging replace: bulk insert failed", "filename", scope.Filename, "batch_start", start, "err", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.Error("staging replace: commit failed", "filename", scope.Filename, "err", err)
		return err
	}
	r.log.Info("staging.replaced",
		"filename", scope.Filename,
		"document_type", scope.DocumentType,
		"document_category", scope.DocumentCategory,
		"deleted", deleted,
		"inserted", len(records),
	)
	return nil
}

func (r *stagingRepo) AggregateByConnector(ctx context.Context, scope entity.UploadScope) (map[string]float64, error) {
	var rows []struct {
		Connector string  `json:"connector"`
		Sum       float64 `json:"sum"`
	}
	err := r.ent.StagingRecord.Query().
		Where(
			stagingrecord.Filename(scope.Filename),
			stagingrecord.DocumentType(scope.DocumentType),
			stagingrecord.DocumentCategory(scope.DocumentCategory),
		).
		GroupBy(stagingrecord.FieldConnector).
		Aggregate(ent.Sum(stagingrecord.FieldSumValue)).
		Scan(ctx, &rows)
	if err != nil {
		r.log.Error("staging aggregate failed", "filename", scope.Filename, "err", err)
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Connector] = row.Sum
	}
	return out, nil
}

func (r *stagingRepo) FetchByConnectors(ctx context.Context, scope entity.UploadScope, keys []string) ([]*entity.StagingRecord, error) {
	var out []*entity.StagingRecord
	for start := 0; start < len(keys); start += constants.ClassifyKeyBatchSize {
		end := min(start+constants.ClassifyKeyBatchSize, len(keys))
		recs, err := r.ent.StagingRecord.Query().
			Where(
				stagingrecord.Filename(scope.Filename),
				stagingrecord.DocumentType(scope.DocumentType),
				stagingrecord.DocumentCategory(scope.DocumentCategory),
				stagingrecord.ConnectorIn(keys[start:end]...),
			).
			Order(ent.Asc(stagingrecord.FieldRowIndex)).
			All(ctx)
		if err != nil {
			r.log.Error("staging fetch by connectors failed", "filename", scope.Filename, "batch_start", start, "err", err)
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, utils.ToStagingRecord(rec))
		}
	}
	return out, nil
}

func (r *stagingRepo) CountForScope(ctx context.Context, scope entity.UploadScope) (int, error) {
	n, err := r.ent.StagingRecord.Query().
		Where(
			stagingrecord.Filename(scope.Filename),
			stagingrecord.DocumentType(scope.DocumentType),
			stagingrecord.DocumentCategory(scope.DocumentCategory),
		).
		Count(ctx)
	if err != nil {
		r.log.Error("staging count failed", "filename", scope.Filename, "err", err)
		return 0, err
	}
	return n, nil
}
