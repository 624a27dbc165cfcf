package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
)

func TestResolveBuiltins(t *testing.T) {
	r := NewResolver(1000.01, nil)

	tests := []struct {
		docType  string
		category string

		wantTable        string
		wantUploadedConn string
		wantSourceConn   string
		wantUploadedSum  string
	}{
		{"purchase", "regular", "purchases_source", "no_faktur", "invoice_number", "total_pembelian"},
		{"purchase", "retur", "purchases_source", "no_retur", "return_number", "total_retur"},
		{"sales", "regular", "sales_source", "no_transaksi", "transaction_number", "total_penjualan"},
		{"sales", "retur", "sales_source", "no_retur", "return_number", "total_retur"},
	}

	for _, tt := range tests {
		t.Run(tt.docType+"/"+tt.category, func(t *testing.T) {
			cfg, err := r.Resolve(tt.docType, tt.category)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if cfg.SourceTable != tt.wantTable {
				t.Errorf("source table = %q, want %q", cfg.SourceTable, tt.wantTable)
			}
			if cfg.UploadedConnector != tt.wantUploadedConn {
				t.Errorf("uploaded connector = %q, want %q", cfg.UploadedConnector, tt.wantUploadedConn)
			}
			if cfg.SourceConnector != tt.wantSourceConn {
				t.Errorf("source connector = %q, want %q", cfg.SourceConnector, tt.wantSourceConn)
			}
			if cfg.UploadedSum != tt.wantUploadedSum {
				t.Errorf("uploaded sum = %q, want %q", cfg.UploadedSum, tt.wantUploadedSum)
			}
			if cfg.Tolerance != 1000.01 {
				t.Errorf("tolerance = %v, want default 1000.01", cfg.Tolerance)
			}
		})
	}
}

func TestResolveUnknownPair(t *testing.T) {
	r := NewResolver(1000.01, nil)
	for _, pair := range [][2]string{
		{"purchase", "unknown"},
		{"invoice", "regular"},
		{"", ""},
	} {
		_, err := r.Resolve(pair[0], pair[1])
		if !errors.Is(err, common.ErrInvalidDocumentType) {
			t.Errorf("Resolve(%q, %q) err = %v, want ErrInvalidDocumentType", pair[0], pair[1], err)
		}
	}
}

func TestResolveToleranceOverride(t *testing.T) {
	r := NewResolver(1000.01, nil)
	override := 0.5
	r.Replace(map[configKey]DocumentConfig{
		{"purchase", "regular"}: {
			SourceTable:      "purchases_source",
			ConnectorColumns: []string{"a", "b"},
			SumColumns:       []string{"c", "d"},
			Tolerance:        &override,
		},
	})

	cfg, err := r.Resolve("purchase", "regular")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Tolerance != 0.5 {
		t.Errorf("tolerance = %v, want override 0.5", cfg.Tolerance)
	}
}

func TestResolveIncompleteColumns(t *testing.T) {
	r := NewResolver(1000.01, nil)
	r.Replace(map[configKey]DocumentConfig{
		{"purchase", "regular"}: {
			SourceTable:      "purchases_source",
			ConnectorColumns: []string{"only_uploaded"},
			SumColumns:       []string{"c", "d"},
		},
	})
	if _, err := r.Resolve("purchase", "regular"); !errors.Is(err, common.ErrInvalidDocumentType) {
		t.Errorf("err = %v, want ErrInvalidDocumentType for partial connector pair", err)
	}
}

func TestLoadMappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	content := `{
	  "mappings": [
	    {
	      "document_type": "purchase",
	      "document_category": "regular",
	      "source_table": "custom_purchases",
	      "connector_columns": ["col_a", "col_b"],
	      "sum_columns": ["sum_a", "sum_b"],
	      "tolerance": 2.5
	    }
	  ]
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(1000.01, nil)
	if err := r.LoadMappingFile(path); err != nil {
		t.Fatalf("LoadMappingFile: %v", err)
	}

	cfg, err := r.Resolve("purchase", "regular")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.SourceTable != "custom_purchases" {
		t.Errorf("source table = %q, want custom_purchases", cfg.SourceTable)
	}
	if cfg.Tolerance != 2.5 {
		t.Errorf("tolerance = %v, want 2.5", cfg.Tolerance)
	}

	// the file replaces the table wholesale, built-ins are gone
	if _, err := r.Resolve("sales", "regular"); !errors.Is(err, common.ErrInvalidDocumentType) {
		t.Errorf("expected built-in sales mapping to be replaced, got err = %v", err)
	}
}

func TestLoadMappingFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing sum columns", content: `{"mappings":[{"document_type":"purchase","document_category":"regular","source_table":"t","connector_columns":["a","b"]}]}`},
		{name: "single connector column", content: `{"mappings":[{"document_type":"purchase","document_category":"regular","source_table":"t","connector_columns":["a"],"sum_columns":["c","d"]}]}`},
		{name: "negative tolerance", content: `{"mappings":[{"document_type":"purchase","document_category":"regular","source_table":"t","connector_columns":["a","b"],"sum_columns":["c","d"],"tolerance":-1}]}`},
		{name: "empty mappings", content: `{"mappings":[]}`},
		{name: "not json", content: `mappings: []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mapping.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			r := NewResolver(1000.01, nil)
			if err := r.LoadMappingFile(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
