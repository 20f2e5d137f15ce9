package report

import "strings"

// Table is one raw sheet range: ordered rows of string cells. Row 0 is the
// header row by convention. An empty table (no header, no rows) is valid.
type Table [][]string

// Headers returns the header row, or nil for an empty table.
func (t Table) Headers() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// DataRows returns every row after the header.
func (t Table) DataRows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// cell returns the trimmed cell at col, or "" when col is out of range
// (ragged rows and unresolved columns both land here).
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// capitalizeFirstLetter uppercases the first letter of s. Used for turning
// raw group keys ("math") into display labels ("Math").
func capitalizeFirstLetter(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// displayLabel converts a raw lowercase group key into its display form:
// underscores become spaces and each word is capitalized.
func displayLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		words[i] = capitalizeFirstLetter(w)
	}
	return strings.Join(words, " ")
}
