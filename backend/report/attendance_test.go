package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentportal/backend/models"
)

func TestBuildAttendanceSparseApril(t *testing.T) {
	headers := []string{"Roll No", "01/04/2024", "02/04/2024", "03/04/2024", "04/04/2024"}
	row := []string{"7", "P", "P", "A", "P"}

	summary := BuildAttendance(headers, row)

	require.Len(t, summary.Months, 1)
	month := summary.Months[0]
	assert.Equal(t, 3, month.Month) // April, 0-indexed
	assert.Equal(t, 2024, month.Year)
	assert.Equal(t, 4, month.TotalDays)
	assert.Equal(t, 3, month.DaysPresent)
	assert.Equal(t, 1, month.DaysAbsent)
	assert.Equal(t, "75.0", month.Percentage)

	// Calendar completion: exactly one entry per day of a 30-day April.
	require.Len(t, month.Days, 30)
	seen := make(map[int]bool)
	for i, d := range month.Days {
		assert.Equal(t, i+1, d.DayOfMonth) // ascending, no gaps
		assert.False(t, seen[d.DayOfMonth], "duplicate day %d", d.DayOfMonth)
		seen[d.DayOfMonth] = true
	}

	// The 26 synthesized days are all non-school sundays or no-school gaps.
	synthesized := 0
	for _, d := range month.Days {
		if d.DayOfMonth >= 1 && d.DayOfMonth <= 4 {
			continue
		}
		synthesized++
		assert.False(t, d.IsSchoolDay)
		if time.Date(2024, time.April, d.DayOfMonth, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			assert.Equal(t, StatusSunday, d.Status)
		} else {
			assert.Equal(t, StatusNoSchool, d.Status)
			assert.True(t, d.IsHoliday)
		}
	}
	assert.Equal(t, 26, synthesized)

	assert.Equal(t, "2024-25", summary.AcademicYear)
	assert.Equal(t, 4, summary.YearToDate.TotalDays)
	assert.Equal(t, 3, summary.YearToDate.DaysPresent)
}

func TestBuildAttendanceClassification(t *testing.T) {
	headers := []string{"01/07/2024", "Time", "02/07/2024", "03/07/2024", "04/07/2024", "05/07/2024", "07/07/2024"}
	row := []string{"P", "Came Late", "1", "Holiday", "", "A", "Sun"}

	summary := BuildAttendance(headers, row)
	require.Len(t, summary.Months, 1)
	days := summary.Months[0].Days

	byDay := make(map[int]models.AttendanceDay)
	for _, d := range days {
		byDay[d.DayOfMonth] = d
	}

	assert.Equal(t, StatusPresent, byDay[1].Status)
	assert.Equal(t, "late", byDay[1].TimeStatus) // adjacent time cell

	assert.Equal(t, StatusPresent, byDay[2].Status)
	assert.Equal(t, "on-time", byDay[2].TimeStatus) // no time column after it

	assert.Equal(t, StatusHoliday, byDay[3].Status)
	assert.True(t, byDay[3].IsHoliday)
	assert.False(t, byDay[3].IsSchoolDay)

	assert.Equal(t, StatusDayOfWeek, byDay[4].Status)
	assert.False(t, byDay[4].IsSchoolDay)

	assert.Equal(t, StatusAbsent, byDay[5].Status)
	assert.Equal(t, "", byDay[5].TimeStatus)

	assert.Equal(t, StatusSunday, byDay[7].Status)

	// Only the three school days count.
	assert.Equal(t, 3, summary.Months[0].TotalDays)
	assert.Equal(t, 2, summary.Months[0].DaysPresent)
	assert.Equal(t, 1, summary.Months[0].DaysAbsent)
}

func TestBuildAttendanceMultipleMonths(t *testing.T) {
	headers := []string{"30/04/2024", "01/05/2024", "02/05/2024"}
	row := []string{"P", "A", "P"}

	summary := BuildAttendance(headers, row)

	require.Len(t, summary.Months, 2)
	assert.Equal(t, 3, summary.Months[0].Month) // April before May
	assert.Equal(t, 4, summary.Months[1].Month)
	assert.Len(t, summary.Months[0].Days, 30)
	assert.Len(t, summary.Months[1].Days, 31)

	assert.Equal(t, 3, summary.YearToDate.TotalDays)
	assert.Equal(t, 2, summary.YearToDate.DaysPresent)
	assert.Equal(t, 1, summary.YearToDate.DaysAbsent)
	assert.Equal(t, "66.7", summary.YearToDate.Percentage)
}

func TestBuildAttendanceNoDates(t *testing.T) {
	summary := BuildAttendance([]string{"Roll No", "Total"}, []string{"7", "12"})

	assert.Empty(t, summary.Months)
	assert.Equal(t, defaultAcademicYear, summary.AcademicYear)
	assert.Equal(t, "0.0", summary.YearToDate.Percentage)
}

func TestAcademicYearLabel(t *testing.T) {
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-25", academicYearLabel(march, true))

	april := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-26", academicYearLabel(april, true))

	assert.Equal(t, "2024-25", academicYearLabel(time.Time{}, false))

	// Century rollover keeps two digits.
	dec2099 := time.Date(2099, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2099-00", academicYearLabel(dec2099, true))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75.0", formatPercent(3, 4))
	assert.Equal(t, "0.0", formatPercent(0, 0)) // divide-by-zero guard
	assert.Equal(t, "100.0", formatPercent(5, 5))
	assert.Equal(t, "66.7", formatPercent(2, 3))
}

func TestBuildMonthlyAttendance(t *testing.T) {
	headers := []string{
		"admission_no",
		"june_working", "june_present", "june_absent", "june_percent",
		"july_working", "july_present", "july_absent", "july_percent",
		"january_working", "january_present", "january_absent", "january_percent",
		"august_working", "august_present", "august_absent", "august_percent",
	}
	row := []string{
		"12345",
		"20", "18", "2", "90.0",
		"22", "20", "2", "",
		"18", "17", "1", "94.4%",
		"0", "0", "0", "",
	}
	now := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	summary := BuildMonthlyAttendance(headers, row, now)

	require.Len(t, summary.Months, 3) // august dropped: no working days
	assert.Equal(t, "2024-25", summary.AcademicYear)

	// Chronological order; January belongs to the next calendar year.
	assert.Equal(t, 5, summary.Months[0].Month)
	assert.Equal(t, 2024, summary.Months[0].Year)
	assert.Equal(t, 6, summary.Months[1].Month)
	assert.Equal(t, 0, summary.Months[2].Month)
	assert.Equal(t, 2025, summary.Months[2].Year)

	// Source percentage trusted when present, computed when blank.
	assert.Equal(t, "90.0", summary.Months[0].Percentage)
	assert.Equal(t, "90.9", summary.Months[1].Percentage)
	assert.Equal(t, "94.4", summary.Months[2].Percentage) // "%" stripped

	assert.Equal(t, 60, summary.YearToDate.TotalDays)
	assert.Equal(t, 55, summary.YearToDate.DaysPresent)
}

func TestHasDateHeaders(t *testing.T) {
	assert.True(t, HasDateHeaders([]string{"Roll No", "01/04/2024"}))
	assert.False(t, HasDateHeaders([]string{"Roll No", "june_working"}))
	assert.False(t, HasDateHeaders(nil))
}
