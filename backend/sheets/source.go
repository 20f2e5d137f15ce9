package sheets

import (
	"context"

	"studentportal/backend/config"
	"studentportal/backend/report"
)

// Source fetches raw tables for a list of sheet ranges. Implementations
// must return tables in request order and turn an empty or missing range
// into a zero-row table rather than an error.
type Source interface {
	FetchRanges(ctx context.Context, ranges []string) ([]report.Table, error)
}

// NewSource picks the data source from config: a local workbook when
// WORKBOOK_PATH is set, otherwise the Google Sheets values API.
func NewSource(cfg *config.Config) Source {
	if cfg.WorkbookPath != "" {
		return NewWorkbookSource(cfg.WorkbookPath)
	}
	return NewAPISource(cfg.SheetsBaseURL, cfg.SheetID, cfg.SheetsAPIKey)
}
