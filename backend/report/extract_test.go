package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studentportal/backend/models"
)

var studentsTable = Table{
	{"Admission No", "Student Name", "Class"},
	{"12345", "Aarav Sharma", "5A"},
	{"12346", "Diya Patel", "5A"},
	{"12345", "Duplicate Row", "5B"},
}

func TestFindRow(t *testing.T) {
	row, err := FindRow(studentsTable, "12346")
	assert.NoError(t, err)
	assert.Equal(t, "Diya Patel", row[1])

	// First matching row wins.
	row, err = FindRow(studentsTable, "12345")
	assert.NoError(t, err)
	assert.Equal(t, "Aarav Sharma", row[1])

	_, err = FindRow(studentsTable, "99999")
	assert.ErrorIs(t, err, models.ErrStudentNotFound)

	// Exact match only: "1234" must not match "12345".
	_, err = FindRow(studentsTable, "1234")
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
}

func TestFindRowKeyColumnMissing(t *testing.T) {
	table := Table{
		{"Name", "Class"},
		{"Aarav Sharma", "5A"},
	}
	_, err := FindRow(table, "12345")
	assert.ErrorIs(t, err, models.ErrKeyColumnMissing)
}

func TestFindRowEmptyTable(t *testing.T) {
	_, err := FindRow(nil, "12345")
	assert.ErrorIs(t, err, models.ErrKeyColumnMissing)

	_, err = FindRow(Table{{"Roll No"}}, "12345")
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
}

func TestFilterRows(t *testing.T) {
	rows, err := FilterRows(studentsTable, "12345")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	// Sheet order preserved.
	assert.Equal(t, "Aarav Sharma", rows[0][1])
	assert.Equal(t, "Duplicate Row", rows[1][1])

	rows, err = FilterRows(studentsTable, "99999")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStudentRowDegrades(t *testing.T) {
	// Secondary-sheet semantics: both error kinds become "no row".
	assert.Nil(t, studentRow(Table{{"Name"}}, "12345"))
	assert.Nil(t, studentRow(studentsTable, "99999"))
	assert.NotNil(t, studentRow(studentsTable, "12346"))
}
