package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"studentportal/backend/report"
)

// WorkbookSource reads ranges from a local .xlsx workbook, one sheet per
// range. Used for development and offline demos against an exported copy
// of the spreadsheet.
type WorkbookSource struct {
	Path string
}

func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{Path: path}
}

// FetchRanges opens the workbook and reads each range's sheet. A range
// like "Students!A1:Z" maps to the sheet named before the "!". Sheets
// missing from the workbook yield empty tables.
func (w *WorkbookSource) FetchRanges(ctx context.Context, ranges []string) ([]report.Table, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("sheets: open workbook: %w", err)
	}
	defer f.Close()

	tables := make([]report.Table, len(ranges))
	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := sheetName(r)
		rows, err := f.GetRows(name)
		if err != nil {
			// Missing sheet: zero rows, not a failure.
			continue
		}
		tables[i] = report.Table(rows)
	}
	return tables, nil
}

func sheetName(r string) string {
	if i := strings.Index(r, "!"); i >= 0 {
		return r[:i]
	}
	return r
}
