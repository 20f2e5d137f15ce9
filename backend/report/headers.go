package report

import "strings"

// NotFound is the sentinel column index for a header that did not resolve.
// It is a valid non-error state: callers treat the field as empty.
const NotFound = -1

// Matcher decides whether a single header cell satisfies a logical field.
type Matcher func(header string) bool

// Exact matches a header equal to field, case-insensitively.
func Exact(field string) Matcher {
	field = strings.ToLower(field)
	return func(h string) bool {
		return strings.ToLower(strings.TrimSpace(h)) == field
	}
}

// Contains matches a header containing term, case-insensitively.
func Contains(term string) Matcher {
	term = strings.ToLower(term)
	return func(h string) bool {
		return strings.Contains(strings.ToLower(h), term)
	}
}

// ContainsExcept matches a header containing term but none of the excluded
// terms. Used to tell a student-name column from father_name/mother_name.
func ContainsExcept(term string, except ...string) Matcher {
	include := Contains(term)
	excluded := make([]Matcher, len(except))
	for i, e := range except {
		excluded[i] = Contains(e)
	}
	return func(h string) bool {
		if !include(h) {
			return false
		}
		for _, ex := range excluded {
			if ex(h) {
				return false
			}
		}
		return true
	}
}

// FindColumn returns the first header index matching m, scanning left to
// right. Left-to-right order is what disambiguates duplicate-ish headers.
func FindColumn(headers []string, m Matcher) int {
	for i, h := range headers {
		if m(h) {
			return i
		}
	}
	return NotFound
}

// FindColumnAny evaluates matchers in order and returns the column resolved
// by the first matcher that hits anything.
func FindColumnAny(headers []string, matchers ...Matcher) int {
	for _, m := range matchers {
		if i := FindColumn(headers, m); i != NotFound {
			return i
		}
	}
	return NotFound
}

// findKeyColumn resolves the student key column: a header containing
// "roll", else "admission", else "id".
func findKeyColumn(headers []string) int {
	return FindColumnAny(headers, Contains("roll"), Contains("admission"), Contains("id"))
}

// headerIndex builds a case-insensitive header -> column map. The first
// occurrence of a duplicate header wins.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}
