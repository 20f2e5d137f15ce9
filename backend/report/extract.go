package report

import "studentportal/backend/models"

// Shape selects how a sheet encodes a student's records.
type Shape int

const (
	// Vertical sheets hold one row per record; a student owns every row
	// whose key column matches.
	Vertical Shape = iota
	// Horizontal sheets hold one row per student, with repeated fields
	// encoded as suffix-named columns.
	Horizontal
)

// FindRow returns the single data row whose key column equals key.
// The key match is exact string equality on the trimmed cell, never a
// substring match.
func FindRow(t Table, key string) ([]string, error) {
	kc := findKeyColumn(t.Headers())
	if kc == NotFound {
		return nil, models.ErrKeyColumnMissing
	}
	for _, row := range t.DataRows() {
		if cell(row, kc) == key {
			return row, nil
		}
	}
	return nil, models.ErrStudentNotFound
}

// FilterRows returns every data row matching key, preserving sheet order.
func FilterRows(t Table, key string) ([][]string, error) {
	kc := findKeyColumn(t.Headers())
	if kc == NotFound {
		return nil, models.ErrKeyColumnMissing
	}
	var rows [][]string
	for _, row := range t.DataRows() {
		if cell(row, kc) == key {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// studentRow is FindRow with secondary-sheet semantics: a missing key
// column or an absent student degrades to no row instead of an error.
func studentRow(t Table, key string) []string {
	row, err := FindRow(t, key)
	if err != nil {
		return nil
	}
	return row
}
