package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/ingest"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// stubSource serves a fixed aggregate in place of the Postgres source tables.
type stubSource struct {
	rows map[string]float64
}

func (s stubSource) AggregateByConnector(_ context.Context, _, _, _ string) (map[string]float64, error) {
	return s.rows, nil
}

func (s stubSource) Count(_ context.Context, _ string) (int64, error) {
	return int64(len(s.rows)), nil
}

func newTestProcessor(t *testing.T, source repository.SourceRepository) (*Processor, repository.ResultsRepository) {
	t.Helper()
	logger := slog.Default()
	client := openTestClient(t)
	staging := repository.NewStagingRepository(client, logger)
	results := repository.NewResultsRepository(client, logger)

	resolver := mapping.NewResolver(1000.01, logger)
	mapper := NewMapper(ingest.NewReader(nil), staging, logger)
	classifier := NewClassifier(staging, logger)
	persister := NewPersister(results, logger)
	return NewProcessor(resolver, mapper, staging, source, classifier, persister, logger), results
}

func writeUpload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jan.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessorRunEndToEnd(t *testing.T) {
	source := stubSource{rows: map[string]float64{
		"F-001": 250,  // exact match against 100+150
		"F-002": 290,  // within tolerance of 300
		"F-003": 9000, // far off 300
	}}
	proc, results := newTestProcessor(t, source)

	content := "No Faktur,Total Pembelian\n" +
		"F-001,100\n" +
		"F-001,150\n" +
		"F-002,300\n" +
		"F-003,300\n" +
		"F-004,400\n" // not in source
	req := Request{
		Path:             writeUpload(t, content),
		Filename:         "jan.csv",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}

	run, stats, err := proc.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Accepted != 5 {
		t.Errorf("accepted = %d, want 5", stats.Accepted)
	}
	if run.Status != string(constants.RunStatusCompleted) {
		t.Errorf("status = %q, want completed", run.Status)
	}
	// 4 connector groups; F-003 and F-004 fail
	if run.TotalRecords != 4 || run.MatchedRecords != 2 || run.MismatchedRecords != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2", run.TotalRecords, run.MatchedRecords, run.MismatchedRecords)
	}
	if run.Score != 50.00 {
		t.Errorf("score = %v, want 50.00", run.Score)
	}

	groups, total, err := results.ListInvalidGroups(context.Background(), run.ID, repository.ListOptions{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Fatalf("invalid groups = %d, want 2", total)
	}
	categories := map[string]string{}
	for _, g := range groups {
		categories[g.Connector] = g.Category
	}
	if categories["F-003"] != string(constants.MismatchDiscrepancy) {
		t.Errorf("F-003 category = %q, want discrepancy", categories["F-003"])
	}
	if categories["F-004"] != string(constants.MismatchKeyNotFound) {
		t.Errorf("F-004 category = %q, want key_not_found", categories["F-004"])
	}

	rows, total, err := results.ListMatchedRows(context.Background(), run.ID, repository.ListOptions{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	// F-001 has two staging rows, F-002 one
	if total != 3 || len(rows) != 3 {
		t.Errorf("matched rows = %d/%d, want 3/3", total, len(rows))
	}
}

func TestProcessorRunEmptySourceTable(t *testing.T) {
	proc, _ := newTestProcessor(t, stubSource{rows: map[string]float64{}})

	req := Request{
		Path:             writeUpload(t, "No Faktur,Total Pembelian\nF-001,100\n"),
		Filename:         "jan.csv",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}
	_, _, err := proc.Run(context.Background(), req)
	if !errors.Is(err, common.ErrNoSourceData) {
		t.Errorf("err = %v, want ErrNoSourceData", err)
	}
}

func TestProcessorRunNoMappedRows(t *testing.T) {
	proc, _ := newTestProcessor(t, stubSource{rows: map[string]float64{"F-001": 1}})

	// header only, nothing maps
	req := Request{
		Path:             writeUpload(t, "No Faktur,Total Pembelian\n"),
		Filename:         "jan.csv",
		DocumentType:     "purchase",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}
	_, _, err := proc.Run(context.Background(), req)
	if !errors.Is(err, common.ErrNoMappedData) {
		t.Errorf("err = %v, want ErrNoMappedData", err)
	}
}

func TestProcessorRunUnknownDocumentType(t *testing.T) {
	proc, _ := newTestProcessor(t, stubSource{rows: map[string]float64{"F-001": 1}})

	req := Request{
		Path:             writeUpload(t, "a,b\n1,2\n"),
		Filename:         "jan.csv",
		DocumentType:     "invoice",
		DocumentCategory: "regular",
		UserID:           "u-1",
		HeaderRow:        1,
	}
	_, _, err := proc.Run(context.Background(), req)
	if !errors.Is(err, common.ErrInvalidDocumentType) {
		t.Errorf("err = %v, want ErrInvalidDocumentType", err)
	}
}
