package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"studentportal/backend/models"
)

// Day statuses produced by the calendar builder.
const (
	StatusPresent   = "present"
	StatusAbsent    = "absent"
	StatusSunday    = "sunday"
	StatusHoliday   = "holiday"
	StatusDayOfWeek = "day-of-week"
	StatusNoSchool  = "no-school"
)

// defaultAcademicYear is the label used when no date was observed at all.
const defaultAcademicYear = "2024-25"

type monthKey struct {
	year  int
	month time.Month
}

type monthBucket struct {
	days    map[int]models.AttendanceDay
	present int
	absent  int
}

// BuildAttendance reconstructs the attendance calendar from date-named
// columns. Every date-like header contributes one classified day; after
// processing, each month is completed so that exactly one entry exists per
// calendar day, then per-month and year-to-date aggregates are computed.
func BuildAttendance(headers, row []string) models.AttendanceSummary {
	buckets := make(map[monthKey]*monthBucket)
	var latest time.Time
	seen := false

	for i, h := range headers {
		date, ok := ParseDate(h)
		if !ok {
			continue
		}
		if !seen || date.After(latest) {
			latest = date
			seen = true
		}

		day := classifyDay(date, cell(row, i), timeCell(headers, row, i))

		key := monthKey{date.Year(), date.Month()}
		b := buckets[key]
		if b == nil {
			b = &monthBucket{days: make(map[int]models.AttendanceDay)}
			buckets[key] = b
		}

		// Counters track school days only; re-add after a duplicate column
		// overwrite so nothing is counted twice.
		if prev, dup := b.days[date.Day()]; dup && prev.IsSchoolDay {
			if prev.Status == StatusPresent {
				b.present--
			} else {
				b.absent--
			}
		}
		b.days[date.Day()] = day
		if day.IsSchoolDay {
			if day.Status == StatusPresent {
				b.present++
			} else {
				b.absent++
			}
		}
	}

	summary := models.AttendanceSummary{
		Months:       make([]models.AttendanceMonth, 0, len(buckets)),
		AcademicYear: academicYearLabel(latest, seen),
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	for _, k := range keys {
		b := buckets[k]
		completeMonth(k, b)

		days := make([]models.AttendanceDay, 0, len(b.days))
		for _, d := range b.days {
			days = append(days, d)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].DayOfMonth < days[j].DayOfMonth })

		total := b.present + b.absent
		summary.Months = append(summary.Months, models.AttendanceMonth{
			Month:       int(k.month) - 1,
			Year:        k.year,
			TotalDays:   total,
			DaysPresent: b.present,
			DaysAbsent:  b.absent,
			Percentage:  formatPercent(b.present, total),
			Days:        days,
		})

		summary.YearToDate.TotalDays += total
		summary.YearToDate.DaysPresent += b.present
		summary.YearToDate.DaysAbsent += b.absent
	}
	summary.YearToDate.Percentage = formatPercent(summary.YearToDate.DaysPresent, summary.YearToDate.TotalDays)

	return summary
}

// classifyDay turns one status cell into a calendar day entry. Matching is
// case-insensitive: sun/s means Sunday, hol/h a holiday, a blank cell a
// day-of-week placeholder, anything else a school day (present when the
// cell contains "p" or equals "1").
func classifyDay(date time.Time, status, timeStatus string) models.AttendanceDay {
	day := models.AttendanceDay{DayOfMonth: date.Day()}
	s := strings.ToLower(status)

	switch {
	case strings.Contains(s, "sun") || s == "s":
		day.Status = StatusSunday
		day.DayName = date.Weekday().String()
	case strings.Contains(s, "hol") || s == "h":
		day.Status = StatusHoliday
		day.IsHoliday = true
		day.DayName = date.Weekday().String()
	case s == "":
		day.Status = StatusDayOfWeek
		day.DayName = date.Weekday().String()
	default:
		day.IsSchoolDay = true
		if strings.Contains(s, "p") || s == "1" {
			day.Status = StatusPresent
			t := strings.ToLower(timeStatus)
			if strings.Contains(t, "late") || strings.Contains(t, "came") {
				day.TimeStatus = "late"
			} else {
				day.TimeStatus = "on-time"
			}
		} else {
			day.Status = StatusAbsent
		}
	}
	return day
}

// timeCell returns the cell adjacent to a date column when the next header
// is a time qualifier rather than another date.
func timeCell(headers, row []string, col int) string {
	next := col + 1
	if next >= len(headers) {
		return ""
	}
	if !strings.Contains(strings.ToLower(headers[next]), "time") {
		return ""
	}
	return cell(row, next)
}

// completeMonth synthesizes an entry for every day of the month not
// explicitly present: Sundays stay Sundays, every other gap is a no-school
// day flagged as a holiday. Synthesized days never touch the counters.
func completeMonth(k monthKey, b *monthBucket) {
	last := time.Date(k.year, k.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= last; d++ {
		if _, ok := b.days[d]; ok {
			continue
		}
		date := time.Date(k.year, k.month, d, 0, 0, 0, 0, time.UTC)
		day := models.AttendanceDay{
			DayOfMonth: d,
			DayName:    date.Weekday().String(),
		}
		if date.Weekday() == time.Sunday {
			day.Status = StatusSunday
		} else {
			day.Status = StatusNoSchool
			day.IsHoliday = true
		}
		b.days[d] = day
	}
}

// academicYearLabel derives the April-to-March schooling-year label from
// the latest observed date.
func academicYearLabel(latest time.Time, seen bool) string {
	if !seen {
		return defaultAcademicYear
	}
	year := latest.Year()
	if latest.Month() >= time.April {
		return fmt.Sprintf("%d-%02d", year, (year+1)%100)
	}
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}

// formatPercent renders present/total as a percentage fixed to 1 decimal,
// guarding the zero-total case.
func formatPercent(present, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(present)/float64(total)*100)
}

// monthNumbers resolves month-name group keys for the monthly fallback.
var monthNumbers = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "sept": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// BuildMonthlyAttendance is the fallback for attendance sheets that carry
// per-month summary columns (<month>_working, _present, _absent, _percent)
// instead of per-date columns. Counts and the source percentage are
// trusted as given; day lists stay empty. Years are anchored to the
// academic year containing now.
func BuildMonthlyAttendance(headers, row []string, now time.Time) models.AttendanceSummary {
	startYear := now.Year()
	if now.Month() < time.April {
		startYear--
	}

	groups := DecodeSuffixGroups(headers, row, "_working", positiveNumber, "_present", "_absent", "_percent")

	summary := models.AttendanceSummary{
		Months:       make([]models.AttendanceMonth, 0, len(groups)),
		AcademicYear: fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100),
	}

	for _, g := range groups {
		month, ok := monthNumbers[g.Key]
		if !ok {
			continue
		}
		year := startYear
		if month < time.April {
			year++
		}

		total := int(parseNumber(g.Values["_working"]))
		present := int(parseNumber(g.Values["_present"]))
		absent := int(parseNumber(g.Values["_absent"]))

		percent := strings.TrimSuffix(strings.TrimSpace(g.Values["_percent"]), "%")
		if percent == "" {
			percent = formatPercent(present, total)
		}

		summary.Months = append(summary.Months, models.AttendanceMonth{
			Month:       int(month) - 1,
			Year:        year,
			TotalDays:   total,
			DaysPresent: present,
			DaysAbsent:  absent,
			Percentage:  percent,
			Days:        []models.AttendanceDay{},
		})

		summary.YearToDate.TotalDays += total
		summary.YearToDate.DaysPresent += present
		summary.YearToDate.DaysAbsent += absent
	}

	sort.Slice(summary.Months, func(i, j int) bool {
		if summary.Months[i].Year != summary.Months[j].Year {
			return summary.Months[i].Year < summary.Months[j].Year
		}
		return summary.Months[i].Month < summary.Months[j].Month
	})

	summary.YearToDate.Percentage = formatPercent(summary.YearToDate.DaysPresent, summary.YearToDate.TotalDays)
	return summary
}

// HasDateHeaders reports whether any header parses as a calendar date,
// selecting between the calendar and monthly attendance models.
func HasDateHeaders(headers []string) bool {
	for _, h := range headers {
		if _, ok := ParseDate(h); ok {
			return true
		}
	}
	return false
}
