package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	build(f)
	path := filepath.Join(t.TempDir(), "upload.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadExcel(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		_ = f.SetSheetRow("Sheet1", "A1", &[]any{"No Faktur", "Total Pembelian"})
		_ = f.SetSheetRow("Sheet1", "A2", &[]any{"F-001", 1000})
		_ = f.SetSheetRow("Sheet1", "A3", &[]any{"F-002", 2500.5})
	})

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
	if got := rows[1].Get("total_pembelian"); got != "2500.5" {
		t.Errorf("row 1 total_pembelian = %q, want 2500.5", got)
	}
}

func TestReadExcelMergedCells(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		_ = f.SetSheetRow("Sheet1", "A1", &[]any{"Cabang", "No Faktur", "Total"})
		_ = f.SetSheetRow("Sheet1", "A2", &[]any{"JKT", "F-001", 100})
		_ = f.SetSheetRow("Sheet1", "B3", &[]any{"F-002", 200})
		_ = f.MergeCell("Sheet1", "A2", "A3")
	})

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// the merged value carries into the covered cell
	if got := rows[1].Get("cabang"); got != "JKT" {
		t.Errorf("row 1 cabang = %q, want JKT from merged range", got)
	}
}

func TestReadExcelHeaderRowOffset(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		_ = f.SetSheetRow("Sheet1", "A1", &[]any{"Laporan Penjualan"})
		_ = f.SetSheetRow("Sheet1", "A2", &[]any{"No Transaksi", "Total Penjualan"})
		_ = f.SetSheetRow("Sheet1", "A3", &[]any{"T-100", 500})
	})

	rows, err := NewReader(nil).ReadRows(context.Background(), path, 2)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Get("no_transaksi"); got != "T-100" {
		t.Errorf("no_transaksi = %q, want T-100", got)
	}
}
