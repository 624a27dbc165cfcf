package utils

import (
	"time"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	validationpb "github.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToValidationRun(e *ent.ValidationRun) *entity.ValidationRun {
	return &entity.ValidationRun{
		ID:                e.ID,
		Filename:          e.Filename,
		DocumentType:      e.DocumentType,
		DocumentCategory:  e.DocumentCategory,
		UserID:            e.UserID,
		Status:            e.Status,
		Score:             e.Score,
		TotalRecords:      e.TotalRecords,
		MatchedRecords:    e.MatchedRecords,
		MismatchedRecords: e.MismatchedRecords,
		ProcessingDetails: e.ProcessingDetails,
		ErrorMessage:      e.ErrorMessage,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToStagingRecord(e *ent.StagingRecord) *entity.StagingRecord {
	return &entity.StagingRecord{
		ID:               e.ID,
		Filename:         e.Filename,
		DocumentType:     e.DocumentType,
		DocumentCategory: e.DocumentCategory,
		HeaderRow:        e.HeaderRow,
		UserID:           e.UserID,
		Connector:        e.Connector,
		SumValue:         e.SumValue,
		BranchCode:       e.BranchCode,
		BranchName:       e.BranchName,
		OutletCode:       e.OutletCode,
		OutletName:       e.OutletName,
		DocDate:          e.DocDate,
		RowIndex:         e.RowIndex,
		CreatedAt:        e.CreatedAt,
	}
}

func ToInvalidGroup(e *ent.InvalidGroup) *entity.InvalidGroup {
	return &entity.InvalidGroup{
		ID:               e.ID,
		RunID:            e.RunID,
		Connector:        e.Connector,
		Category:         e.Category,
		ErrorText:        e.ErrorText,
		UploadedTotal:    e.UploadedTotal,
		SourceTotal:      e.SourceTotal,
		DiscrepancyValue: e.DiscrepancyValue,
	}
}

func ToMatchedGroup(e *ent.MatchedGroup) *entity.MatchedGroup {
	return &entity.MatchedGroup{
		ID:            e.ID,
		RunID:         e.RunID,
		Connector:     e.Connector,
		Note:          e.Note,
		UploadedTotal: e.UploadedTotal,
		SourceTotal:   e.SourceTotal,
		Difference:    e.Difference,
	}
}

func ToMatchedRow(e *ent.MatchedRow) *entity.MatchedRow {
	return &entity.MatchedRow{
		ID:            e.ID,
		RunID:         e.RunID,
		Connector:     e.Connector,
		RowIndex:      e.RowIndex,
		Note:          e.Note,
		UploadedValue: e.UploadedValue,
		SourceTotal:   e.SourceTotal,
	}
}

func ToPBRun(r *entity.ValidationRun) *validationpb.ValidationRun {
	return &validationpb.ValidationRun{
		Id:                r.ID.String(),
		Filename:          r.Filename,
		DocumentType:      r.DocumentType,
		DocumentCategory:  r.DocumentCategory,
		UserId:            r.UserID,
		Status:            r.Status,
		Score:             r.Score,
		TotalRecords:      int32(r.TotalRecords),
		MatchedRecords:    int32(r.MatchedRecords),
		MismatchedRecords: int32(r.MismatchedRecords),
		ErrorMessage:      strOrEmpty(r.ErrorMessage),
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvalidGroup(g *entity.InvalidGroup) *validationpb.InvalidGroup {
	return &validationpb.InvalidGroup{
		Connector:        g.Connector,
		Category:         g.Category,
		ErrorText:        g.ErrorText,
		UploadedTotal:    g.UploadedTotal,
		SourceTotal:      g.SourceTotal,
		DiscrepancyValue: g.DiscrepancyValue,
	}
}

func ToPBMatchedRow(r *entity.MatchedRow) *validationpb.MatchedRow {
	return &validationpb.MatchedRow{
		Connector:     r.Connector,
		RowIndex:      int32(r.RowIndex),
		Note:          r.Note,
		UploadedValue: r.UploadedValue,
		SourceTotal:   r.SourceTotal,
	}
}
