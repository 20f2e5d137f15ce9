package report

import (
	"strconv"
	"strings"
	"time"
)

// genericLayouts are tried in order when a cell matches none of the
// slash/dash shapes handled explicitly.
var genericLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// LooksLikeDate reports whether a header cell is date-like: it splits into
// exactly 3 parts on "/" or "-", or generic parsing succeeds. Empty cells
// are never date-like.
func LooksLikeDate(c string) bool {
	s := strings.TrimSpace(c)
	if s == "" {
		return false
	}
	if len(strings.Split(s, "/")) == 3 || len(strings.Split(s, "-")) == 3 {
		return true
	}
	_, ok := parseGeneric(s)
	return ok
}

// ParseDate parses a cell into a calendar date. Slash dates with two short
// leading parts are read day-first (DD/MM/YYYY wins over MM/DD/YYYY when
// both parts look day-or-month-sized), other slash dates month-first, dash
// dates as ISO YYYY-MM-DD. Returns false on anything unparseable or on an
// invalid calendar date; callers skip, never fail.
func ParseDate(c string) (time.Time, bool) {
	s := strings.TrimSpace(c)
	if s == "" {
		return time.Time{}, false
	}

	if parts := strings.Split(s, "/"); len(parts) == 3 {
		if len(strings.TrimSpace(parts[0])) <= 2 && len(strings.TrimSpace(parts[1])) <= 2 {
			// day/month/year
			return calendarDate(parts[2], parts[1], parts[0])
		}
		// month/day/year
		return calendarDate(parts[2], parts[0], parts[1])
	}

	if parts := strings.Split(s, "-"); len(parts) == 3 {
		return calendarDate(parts[0], parts[1], parts[2])
	}

	return parseGeneric(s)
}

// calendarDate builds a date from year/month/day strings, rejecting
// combinations that do not exist on the calendar (time.Date would silently
// normalize Feb 30 into March).
func calendarDate(ys, ms, ds string) (time.Time, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(ms))
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(ds))
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func parseGeneric(s string) (time.Time, bool) {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseSortDate parses a record's date field for ordering. DD-MM-YYYY-like
// strings are reversed into ISO before parsing so they sort correctly;
// everything else goes through ParseDate.
func parseSortDate(c string) (time.Time, bool) {
	s := strings.TrimSpace(c)
	if parts := strings.Split(s, "-"); len(parts) == 3 && len(strings.TrimSpace(parts[2])) == 4 {
		return calendarDate(parts[2], parts[1], parts[0])
	}
	return ParseDate(s)
}
