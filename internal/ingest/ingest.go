package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
)

// Row is one data row of an uploaded sheet, keyed by normalized column name.
// Index is the 1-based position in the original file, counting from the row
// after the header.
type Row struct {
	Index  int
	Values map[string]string
}

// Get returns the trimmed cell value for a normalized column name.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Values[NormalizeColumn(column)])
}

// Reader produces header-keyed rows from an uploaded tabular file.
type Reader interface {
	ReadRows(ctx context.Context, path string, headerRow int) ([]Row, error)
}

type reader struct {
	logger *slog.Logger
}

// NewReader returns a Reader dispatching on file extension (.csv, .xls, .xlsx).
func NewReader(logger *slog.Logger) Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &reader{logger: logger}
}

func (r *reader) ReadRows(ctx context.Context, path string, headerRow int) ([]Row, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
	switch ext {
	case "csv":
		return readCSV(ctx, path, headerRow, r.logger)
	default:
		return readExcel(ctx, path, headerRow, r.logger)
	}
}

// NormalizeColumn lowercases a header cell and collapses it to [a-z0-9_],
// so "No. Faktur " and "no_faktur" address the same column.
func NormalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func rowFromCells(header []string, cells []string, index int) Row {
	values := make(map[string]string, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if i < len(cells) {
			values[h] = cells[i]
		} else {
			values[h] = ""
		}
	}
	return Row{Index: index, Values: values}
}

func normalizeHeader(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = NormalizeColumn(c)
	}
	return out
}
