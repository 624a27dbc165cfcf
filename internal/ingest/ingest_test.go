package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no_faktur", "no_faktur"},
		{"No. Faktur ", "no_faktur"},
		{"NO FAKTUR", "no_faktur"},
		{"Total Pembelian (Rp)", "total_pembelian_rp"},
		{"  Kode-Cabang  ", "kode_cabang"},
		{"tanggal", "tanggal"},
		{"", ""},
		{"___", ""},
		{"A  B", "a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeColumn(tt.in); got != tt.want {
				t.Errorf("NormalizeColumn(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRowGet(t *testing.T) {
	row := Row{Index: 1, Values: map[string]string{"no_faktur": " F-001 ", "total": "100"}}
	if got := row.Get("No. Faktur"); got != "F-001" {
		t.Errorf("Get(\"No. Faktur\") = %q, want F-001", got)
	}
	if got := row.Get("missing"); got != "" {
		t.Errorf("Get(\"missing\") = %q, want empty", got)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSVCommaDelimited(t *testing.T) {
	path := writeTemp(t, "upload.csv", "No Faktur,Total Pembelian\nF-001,1000\nF-002,2500.50\n")

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].Get("no_faktur"); got != "F-001" {
		t.Errorf("row 0 no_faktur = %q, want F-001", got)
	}
	if got := rows[1].Get("total_pembelian"); got != "2500.50" {
		t.Errorf("row 1 total_pembelian = %q, want 2500.50", got)
	}
	if rows[0].Index != 1 || rows[1].Index != 2 {
		t.Errorf("row indexes = %d, %d, want 1, 2", rows[0].Index, rows[1].Index)
	}
}

func TestReadCSVSemicolonDelimited(t *testing.T) {
	path := writeTemp(t, "upload.csv", "No Faktur;Total Pembelian\nF-001;1.234,56\n")

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Get("total_pembelian"); got != "1.234,56" {
		t.Errorf("total_pembelian = %q, want raw 1.234,56", got)
	}
}

func TestReadCSVHeaderRowOffset(t *testing.T) {
	content := "exported by system,,\nperiod: 2026-01,,\nNo Faktur,Total Pembelian,Keterangan\nF-001,1000,ok\n"
	path := writeTemp(t, "upload.csv", content)

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 3)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Get("no_faktur"); got != "F-001" {
		t.Errorf("no_faktur = %q, want F-001", got)
	}
	if rows[0].Index != 1 {
		t.Errorf("index = %d, want 1 (counted from header)", rows[0].Index)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := writeTemp(t, "upload.csv", "a,b,c\n1,2\n3,4,5,6\n")

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].Get("c"); got != "" {
		t.Errorf("short row c = %q, want empty", got)
	}
}

func TestReadRowsMissingHeader(t *testing.T) {
	path := writeTemp(t, "upload.csv", "a,b\n1,2\n")
	if _, err := NewReader(nil).ReadRows(context.Background(), path, 5); err == nil {
		t.Error("expected error for header row past EOF")
	}
}

func TestReadRowsUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "upload.pdf", "junk")
	if _, err := NewReader(nil).ReadRows(context.Background(), path, 1); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
