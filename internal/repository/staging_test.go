package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _, err := OpenSQLiteMemory(context.Background())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func stagingRecord(scope entity.UploadScope, connector string, sum float64, rowIndex int) *entity.StagingRecord {
	return &entity.StagingRecord{
		Filename:         scope.Filename,
		DocumentType:     scope.DocumentType,
		DocumentCategory: scope.DocumentCategory,
		HeaderRow:        1,
		UserID:           "u-1",
		Connector:        connector,
		SumValue:         sum,
		RowIndex:         rowIndex,
	}
}

func TestStagingReplaceAndAggregate(t *testing.T) {
	ctx := context.Background()
	repo := NewStagingRepository(openTestClient(t), slog.Default())
	scope := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "regular"}

	records := []*entity.StagingRecord{
		stagingRecord(scope, "F-001", 100, 1),
		stagingRecord(scope, "F-001", 150, 2),
		stagingRecord(scope, "F-002", 300, 3),
	}
	if err := repo.ReplaceForScope(ctx, scope, records); err != nil {
		t.Fatalf("ReplaceForScope: %v", err)
	}

	sums, err := repo.AggregateByConnector(ctx, scope)
	if err != nil {
		t.Fatalf("AggregateByConnector: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("got %d connector groups, want 2", len(sums))
	}
	if sums["F-001"] != 250 {
		t.Errorf("F-001 sum = %v, want 250", sums["F-001"])
	}
	if sums["F-002"] != 300 {
		t.Errorf("F-002 sum = %v, want 300", sums["F-002"])
	}

	n, err := repo.CountForScope(ctx, scope)
	if err != nil {
		t.Fatalf("CountForScope: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestStagingReplaceDropsPriorUpload(t *testing.T) {
	ctx := context.Background()
	repo := NewStagingRepository(openTestClient(t), slog.Default())
	scope := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "regular"}

	first := []*entity.StagingRecord{stagingRecord(scope, "F-001", 100, 1)}
	if err := repo.ReplaceForScope(ctx, scope, first); err != nil {
		t.Fatalf("first ReplaceForScope: %v", err)
	}
	second := []*entity.StagingRecord{stagingRecord(scope, "F-009", 900, 1)}
	if err := repo.ReplaceForScope(ctx, scope, second); err != nil {
		t.Fatalf("second ReplaceForScope: %v", err)
	}

	sums, err := repo.AggregateByConnector(ctx, scope)
	if err != nil {
		t.Fatalf("AggregateByConnector: %v", err)
	}
	if _, ok := sums["F-001"]; ok {
		t.Error("prior upload's rows survived the replace")
	}
	if sums["F-009"] != 900 {
		t.Errorf("F-009 sum = %v, want 900", sums["F-009"])
	}
}

func TestStagingScopeIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewStagingRepository(openTestClient(t), slog.Default())

	regular := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "regular"}
	retur := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "purchase", DocumentCategory: "retur"}

	if err := repo.ReplaceForScope(ctx, regular, []*entity.StagingRecord{stagingRecord(regular, "F-001", 100, 1)}); err != nil {
		t.Fatal(err)
	}
	if err := repo.ReplaceForScope(ctx, retur, []*entity.StagingRecord{stagingRecord(retur, "R-001", 50, 1)}); err != nil {
		t.Fatal(err)
	}
	// replacing one scope must not touch the sibling
	if err := repo.ReplaceForScope(ctx, regular, nil); err != nil {
		t.Fatal(err)
	}

	n, err := repo.CountForScope(ctx, retur)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("retur scope count = %d, want 1", n)
	}
}

func TestStagingFetchByConnectors(t *testing.T) {
	ctx := context.Background()
	repo := NewStagingRepository(openTestClient(t), slog.Default())
	scope := entity.UploadScope{Filename: "jan.xlsx", DocumentType: "sales", DocumentCategory: "regular"}

	records := []*entity.StagingRecord{
		stagingRecord(scope, "T-002", 20, 2),
		stagingRecord(scope, "T-001", 10, 1),
		stagingRecord(scope, "T-003", 30, 3),
	}
	if err := repo.ReplaceForScope(ctx, scope, records); err != nil {
		t.Fatal(err)
	}

	recs, err := repo.FetchByConnectors(ctx, scope, []string{"T-001", "T-003"})
	if err != nil {
		t.Fatalf("FetchByConnectors: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Connector != "T-001" || recs[1].Connector != "T-003" {
		t.Errorf("records out of row order: %s, %s", recs[0].Connector, recs[1].Connector)
	}

	recs, err = repo.FetchByConnectors(ctx, scope, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("empty key list returned %d records", len(recs))
	}
}
