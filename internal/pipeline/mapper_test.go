package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/ingest"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _, err := repository.OpenSQLiteMemory(context.Background())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func purchaseConfig(t *testing.T) mapping.ResolvedConfig {
	t.Helper()
	cfg, err := mapping.NewResolver(1000.01, nil).Resolve("purchase", "regular")
	if err != nil {
		t.Fatalf("resolve purchase/regular: %v", err)
	}
	return cfg
}

func TestMapperMap(t *testing.T) {
	ctx := context.Background()
	staging := repository.NewStagingRepository(openTestClient(t), slog.Default())
	mapper := NewMapper(ingest.NewReader(nil), staging, slog.Default())

	content := "No Faktur,Total Pembelian,Kode Cabang,Tanggal\n" +
		"F-001,1000,JKT,2026-01-15\n" +
		"F-001,\"Rp 2.500,00\",JKT,2026-01-16\n" +
		",999,JKT,2026-01-17\n" + // no connector: skipped
		"F-003,not-a-number,JKT,2026-01-18\n" // bad sum: failed
	path := filepath.Join(t.TempDir(), "jan.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	req := Request{
		Path:             path,
		Filename:         "jan.csv",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}
	stats, err := mapper.Map(ctx, req, purchaseConfig(t))
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if stats.Accepted != 2 || stats.Skipped != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want accepted 2, skipped 1, failed 1", stats)
	}

	sums, err := staging.AggregateByConnector(ctx, req.Scope())
	if err != nil {
		t.Fatalf("AggregateByConnector: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("got %d connector groups, want 1", len(sums))
	}
	if sums["F-001"] != 3500 {
		t.Errorf("F-001 sum = %v, want 1000 + 2500", sums["F-001"])
	}

	recs, err := staging.FetchByConnectors(ctx, req.Scope(), []string{"F-001"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d staging rows, want 2", len(recs))
	}
	first := recs[0]
	if first.BranchCode == nil || *first.BranchCode != "JKT" {
		t.Errorf("branch code = %v, want JKT", first.BranchCode)
	}
	if first.DocDate == nil || first.DocDate.Format("2006-01-02") != "2026-01-15" {
		t.Errorf("doc date = %v, want 2026-01-15", first.DocDate)
	}
	if first.RowIndex != 1 {
		t.Errorf("row index = %d, want 1", first.RowIndex)
	}
}

func TestMapperMapReplacesPreviousUpload(t *testing.T) {
	ctx := context.Background()
	staging := repository.NewStagingRepository(openTestClient(t), slog.Default())
	mapper := NewMapper(ingest.NewReader(nil), staging, slog.Default())

	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	req := Request{
		Filename:         "jan.csv",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}

	req.Path = write("v1.csv", "No Faktur,Total Pembelian\nF-001,100\nF-002,200\n")
	if _, err := mapper.Map(ctx, req, purchaseConfig(t)); err != nil {
		t.Fatal(err)
	}
	req.Path = write("v2.csv", "No Faktur,Total Pembelian\nF-009,900\n")
	if _, err := mapper.Map(ctx, req, purchaseConfig(t)); err != nil {
		t.Fatal(err)
	}

	sums, err := staging.AggregateByConnector(ctx, req.Scope())
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 || sums["F-009"] != 900 {
		t.Errorf("sums = %v, want only F-009:900 after re-map", sums)
	}
}

func TestClassifierInheritsGroupVerdict(t *testing.T) {
	ctx := context.Background()
	staging := repository.NewStagingRepository(openTestClient(t), slog.Default())
	classifier := NewClassifier(staging, slog.Default())

	scope := entity.UploadScope{Filename: "jan.csv", DocumentType: "purchase", DocumentCategory: "regular"}
	seed := []*entity.StagingRecord{
		{Filename: scope.Filename, DocumentType: scope.DocumentType, DocumentCategory: scope.DocumentCategory, HeaderRow: 1, UserID: "u-1", Connector: "F-001", SumValue: 100, RowIndex: 1},
		{Filename: scope.Filename, DocumentType: scope.DocumentType, DocumentCategory: scope.DocumentCategory, HeaderRow: 1, UserID: "u-1", Connector: "F-001", SumValue: 150, RowIndex: 2},
		{Filename: scope.Filename, DocumentType: scope.DocumentType, DocumentCategory: scope.DocumentCategory, HeaderRow: 1, UserID: "u-1", Connector: "F-002", SumValue: 300, RowIndex: 3},
	}
	if err := staging.ReplaceForScope(ctx, scope, seed); err != nil {
		t.Fatal(err)
	}

	groups := Compare(
		map[string]float64{"F-001": 250, "F-002": 300},
		map[string]float64{"F-001": 250},
		0,
	)

	invalidRows, matchedRows, err := classifier.Classify(ctx, scope, groups)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if len(matchedRows) != 2 {
		t.Fatalf("got %d matched rows, want 2 (both F-001 staging rows)", len(matchedRows))
	}
	if matchedRows[0].RowIndex != 1 || matchedRows[1].RowIndex != 2 {
		t.Errorf("matched rows out of order: %d, %d", matchedRows[0].RowIndex, matchedRows[1].RowIndex)
	}
	if matchedRows[0].UploadedValue != 100 {
		t.Errorf("matched row carries group total %v, want row value 100", matchedRows[0].UploadedValue)
	}
	if matchedRows[0].SourceTotal != 250 {
		t.Errorf("matched row source total = %v, want group total 250", matchedRows[0].SourceTotal)
	}

	if len(invalidRows) != 1 {
		t.Fatalf("got %d invalid rows, want 1", len(invalidRows))
	}
	if invalidRows[0].Connector != "F-002" || invalidRows[0].Category != "key_not_found" {
		t.Errorf("invalid row = %+v", invalidRows[0])
	}
}
