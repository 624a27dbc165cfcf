package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

func samplePersistRequest() PersistResultsRequest {
	return PersistResultsRequest{
		Run: CreateRunRequest{
			Filename:         "jan.xlsx",
			DocumentType:     "purchase",
			DocumentCategory: "regular",
			UserID:           "u-1",
		},
		Score:             66.67,
		TotalRecords:      3,
		MatchedRecords:    2,
		MismatchedRecords: 1,
		ProcessingDetails: json.RawMessage(`{"mapping":{"accepted":3,"skipped":0,"failed":0}}`),
		InvalidGroups: []*entity.InvalidGroup{
			{Connector: "F-003", Category: string(constants.MismatchDiscrepancy), ErrorText: "difference 5000.00 exceeds tolerance 1000.01", UploadedTotal: 6000, SourceTotal: 1000, DiscrepancyValue: 5000},
		},
		MatchedGroups: []*entity.MatchedGroup{
			{Connector: "F-001", Note: string(constants.NoteSumMatched), UploadedTotal: 100, SourceTotal: 100},
			{Connector: "F-002", Note: string(constants.NoteRounding), UploadedTotal: 200, SourceTotal: 199, Difference: 1},
		},
		InvalidRows: []*entity.InvalidRow{
			{Connector: "F-003", RowIndex: 3, Category: string(constants.MismatchDiscrepancy), ErrorText: "difference 5000.00 exceeds tolerance 1000.01", UploadedValue: 6000},
		},
		MatchedRows: []*entity.MatchedRow{
			{Connector: "F-001", RowIndex: 1, Note: string(constants.NoteSumMatched), UploadedValue: 100, SourceTotal: 100},
			{Connector: "F-002", RowIndex: 2, Note: string(constants.NoteRounding), UploadedValue: 200, SourceTotal: 199},
		},
	}
}

func TestPersistRunCreatesCompletedRun(t *testing.T) {
	ctx := context.Background()
	repo := NewResultsRepository(openTestClient(t), slog.Default())

	run, err := repo.PersistRun(ctx, samplePersistRequest())
	if err != nil {
		t.Fatalf("PersistRun: %v", err)
	}
	if run.Status != string(constants.RunStatusCompleted) {
		t.Errorf("status = %q, want completed", run.Status)
	}
	if run.Score != 66.67 {
		t.Errorf("score = %v, want 66.67", run.Score)
	}
	if run.TotalRecords != 3 || run.MatchedRecords != 2 || run.MismatchedRecords != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", run.TotalRecords, run.MatchedRecords, run.MismatchedRecords)
	}

	groups, total, err := repo.ListInvalidGroups(ctx, run.ID, ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("ListInvalidGroups: %v", err)
	}
	if total != 1 || len(groups) != 1 {
		t.Fatalf("invalid groups total = %d, len = %d, want 1/1", total, len(groups))
	}
	if groups[0].Connector != "F-003" || groups[0].DiscrepancyValue != 5000 {
		t.Errorf("unexpected invalid group: %+v", groups[0])
	}

	rows, total, err := repo.ListMatchedRows(ctx, run.ID, ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("ListMatchedRows: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("matched rows total = %d, len = %d, want 2/2", total, len(rows))
	}
	if rows[0].Connector != "F-001" {
		t.Errorf("rows not ordered by connector: %+v", rows[0])
	}
}

func TestPersistRunRerunReplacesChildren(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewResultsRepository(client, slog.Default())
	runs := NewRunRepository(client, slog.Default())

	created, err := runs.Create(ctx, CreateRunRequest{
		Filename:         "jan.xlsx",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != string(constants.RunStatusProcessing) {
		t.Fatalf("new run status = %q, want processing", created.Status)
	}

	req := samplePersistRequest()
	req.RunID = &created.ID
	if _, err := repo.PersistRun(ctx, req); err != nil {
		t.Fatalf("first PersistRun: %v", err)
	}

	// re-run with a different outcome: children are fully replaced
	rerun := samplePersistRequest()
	rerun.RunID = &created.ID
	rerun.Score = 100.00
	rerun.MatchedRecords = 3
	rerun.MismatchedRecords = 0
	rerun.InvalidGroups = nil
	rerun.InvalidRows = nil
	updated, err := repo.PersistRun(ctx, rerun)
	if err != nil {
		t.Fatalf("second PersistRun: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("re-run changed the run id: %s -> %s", created.ID, updated.ID)
	}
	if updated.Score != 100.00 {
		t.Errorf("score = %v, want 100.00", updated.Score)
	}

	_, total, err := repo.ListInvalidGroups(ctx, created.ID, ListOptions{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("invalid groups after re-run = %d, want 0", total)
	}
}

func TestListInvalidGroupsFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewResultsRepository(openTestClient(t), slog.Default())

	req := samplePersistRequest()
	req.InvalidGroups = []*entity.InvalidGroup{
		{Connector: "F-100", Category: string(constants.MismatchKeyNotFound), ErrorText: "connector F-100 not found in source data", UploadedTotal: 10, DiscrepancyValue: 10},
		{Connector: "F-200", Category: string(constants.MismatchDiscrepancy), ErrorText: "difference 9.00 exceeds tolerance 1.00", UploadedTotal: 10, SourceTotal: 1, DiscrepancyValue: 9},
		{Connector: "G-300", Category: string(constants.MismatchKeyNotFound), ErrorText: "connector G-300 not found in source data", UploadedTotal: 5, DiscrepancyValue: 5},
	}
	run, err := repo.PersistRun(ctx, req)
	if err != nil {
		t.Fatalf("PersistRun: %v", err)
	}

	_, total, err := repo.ListInvalidGroups(ctx, run.ID, ListOptions{Category: string(constants.MismatchKeyNotFound), Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("key_not_found total = %d, want 2", total)
	}

	groups, total, err := repo.ListInvalidGroups(ctx, run.ID, ListOptions{Search: "f-1", Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || groups[0].Connector != "F-100" {
		t.Errorf("search f-1: total = %d, groups = %+v", total, groups)
	}

	// paging
	groups, total, err = repo.ListInvalidGroups(ctx, run.ID, ListOptions{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(groups) != 1 {
		t.Errorf("page 2: total = %d, len = %d, want 3/1", total, len(groups))
	}
}

func TestRunRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	runs := NewRunRepository(openTestClient(t), slog.Default())

	created, err := runs.Create(ctx, CreateRunRequest{
		Filename:         "feb.csv",
		DocumentType:     "sales",
		DocumentCategory: "retur",
		UserID:           "u-2",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := runs.MergeProcessingDetails(ctx, created.ID, map[string]any{"attempts": 1}); err != nil {
		t.Fatalf("MergeProcessingDetails: %v", err)
	}
	if err := runs.MergeProcessingDetails(ctx, created.ID, map[string]any{"submitted_at": "2026-08-31T00:00:00Z"}); err != nil {
		t.Fatalf("MergeProcessingDetails: %v", err)
	}

	if err := runs.MarkFailed(ctx, created.ID, "exhausted 3 attempts: source table has no rows"); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	got, err := runs.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(constants.RunStatusFailed) {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	var details map[string]any
	if err := json.Unmarshal(got.ProcessingDetails, &details); err != nil {
		t.Fatalf("processing details: %v", err)
	}
	if details["attempts"] != float64(1) || details["submitted_at"] != "2026-08-31T00:00:00Z" {
		t.Errorf("details merge lost keys: %v", details)
	}

	list, total, err := runs.ListByUser(ctx, "u-2", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Errorf("ListByUser = %d/%d, want 1/1", total, len(list))
	}
	if _, total, _ := runs.ListByUser(ctx, "someone-else", 10, 0); total != 0 {
		t.Errorf("foreign user total = %d, want 0", total)
	}
}
