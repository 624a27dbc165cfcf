package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

func readExcel(ctx context.Context, path string, headerRow int, logger *slog.Logger) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("ingest.excel.close_failed", "path", path, "error", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(cells) < headerRow {
		return nil, fmt.Errorf("sheet %q has no header row at %d", sheet, headerRow)
	}

	merged, err := mergedValues(f, sheet)
	if err != nil {
		return nil, err
	}

	header := normalizeHeader(cells[headerRow-1])
	rows := make([]Row, 0, len(cells)-headerRow)
	for i := headerRow; i < len(cells); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := cells[i]
		// propagate merged master-cell values into covered blanks
		for col := range header {
			if col < len(line) && line[col] != "" {
				continue
			}
			if v, ok := merged[cellKey{row: i + 1, col: col + 1}]; ok {
				for col >= len(line) {
					line = append(line, "")
				}
				line[col] = v
			}
		}
		rows = append(rows, rowFromCells(header, line, i-headerRow+1))
	}
	logger.Debug("ingest.excel.read", "path", path, "sheet", sheet, "rows", len(rows), "merged_ranges", len(merged))
	return rows, nil
}

type cellKey struct {
	row, col int
}

// mergedValues maps every cell covered by a merged range to the range's value.
func mergedValues(f *excelize.File, sheet string) (map[cellKey]string, error) {
	ranges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merged cells: %w", err)
	}
	out := make(map[cellKey]string)
	for _, mc := range ranges {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		v := mc.GetCellValue()
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				out[cellKey{row: r, col: c}] = v
			}
		}
	}
	return out, nil
}
