package ingest

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

func readCSV(ctx context.Context, path string, headerRow int, logger *slog.Logger) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	var rows []Row
	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line+1, err)
		}
		line++
		switch {
		case line < headerRow:
			continue
		case line == headerRow:
			header = normalizeHeader(record)
		default:
			rows = append(rows, rowFromCells(header, record, line-headerRow))
		}
	}
	if header == nil {
		return nil, fmt.Errorf("csv has no header row at line %d", headerRow)
	}
	logger.Debug("ingest.csv.read", "path", path, "rows", len(rows), "delimiter", string(delim))
	return rows, nil
}

// sniffDelimiter peeks the first line and picks ';' over ',' when it wins the
// count. Exports from id-ID locale Excel use semicolons.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	peek, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return 0, err
	}
	first := string(peek)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';', nil
	}
	return ',', nil
}
