package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"studentportal/backend/report"
)

// APISource reads ranges through the Google Sheets v4 values:batchGet
// endpoint using an API key (the sheet must be link-readable).
type APISource struct {
	BaseURL string
	SheetID string
	APIKey  string
	Client  *http.Client
}

func NewAPISource(baseURL, sheetID, apiKey string) *APISource {
	return &APISource{
		BaseURL: baseURL,
		SheetID: sheetID,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type batchGetResponse struct {
	ValueRanges []struct {
		Range  string          `json:"range"`
		Values [][]interface{} `json:"values"`
	} `json:"valueRanges"`
}

// FetchRanges performs one batchGet for all ranges. The API returns value
// ranges in request order; missing trailing ranges come back as empty
// tables so the caller always receives len(ranges) tables.
func (s *APISource) FetchRanges(ctx context.Context, ranges []string) ([]report.Table, error) {
	q := url.Values{}
	q.Set("key", s.APIKey)
	q.Set("majorDimension", "ROWS")
	for _, r := range ranges {
		q.Add("ranges", r)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values:batchGet?%s",
		s.BaseURL, url.PathEscape(s.SheetID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: unexpected status %s", resp.Status)
	}

	var payload batchGetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("sheets: decode response: %w", err)
	}

	tables := make([]report.Table, len(ranges))
	for i := range ranges {
		if i >= len(payload.ValueRanges) {
			continue
		}
		tables[i] = toTable(payload.ValueRanges[i].Values)
	}
	return tables, nil
}

func toTable(values [][]interface{}) report.Table {
	t := make(report.Table, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		t[i] = cells
	}
	return t
}

// cellString coerces an API cell to a string. UNFORMATTED responses can
// carry numbers and bools; nil means an empty cell.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}
